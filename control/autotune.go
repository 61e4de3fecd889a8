package control

import (
	"github.com/matt-g-everett/ledfx/fx"
	"github.com/matt-g-everett/ledfx/palette"
)

// Autotune applies an effect's own speed, intensity and palette when it starts
// and switches itself off once the user moves one of those controls.
type Autotune struct {
	Active bool

	speed     float64
	intensity float64
	palette   string
}

// Start resolves whether autotune is on for this activation and, if so, applies
// the defaults. Preset values win over defaults.
func (a *Autotune) Start(c Controls, p Presets, effect uint8) {
	a.Active = Chain{Surface: c, Presets: p, Effect: effect}.AutotuneEnabled()
	if a.Active {
		a.apply(c, p, effect)
	}
}

func (a *Autotune) apply(c Controls, p Presets, effect uint8) {
	if p.Speed == nil {
		a.speed = float64(fx.DefaultSpeed(effect))
		c.SetNumber(Speed, a.speed)
	} else {
		a.speed, _ = c.Number(Speed)
	}

	if p.Intensity == nil {
		a.intensity = float64(fx.DefaultIntensity(effect))
		c.SetNumber(Intensity, a.intensity)
	} else {
		a.intensity, _ = c.Number(Intensity)
	}

	if p.Palette == nil {
		a.palette = palette.Name(fx.NaturalPalette(effect))
		c.SetChoice(Palette, a.palette)
	} else {
		a.palette, _ = c.Choice(Palette)
	}
	logger.Debug("autotune applied", "effect", fx.Name(effect), "speed", a.speed,
		"intensity", a.intensity, "palette", a.palette)
}

// Update follows the autotune switch. Turning it on reapplies the defaults and a
// manual change of speed, intensity or palette while it is on turns it off.
func (a *Autotune) Update(c Controls, p Presets, effect uint8) {
	enabled, ok := c.Switch(AutotuneSwitch)
	if !ok {
		// Without a switch the decision made at Start stands.
		return
	}

	switch {
	case enabled && !a.Active:
		a.apply(c, p, effect)
		a.Active = true
	case !enabled && a.Active:
		a.Active = false
	case enabled && a.Active:
		if a.overridden(c) {
			logger.Info("autotune disabled by manual change", "effect", fx.Name(effect))
			c.SetSwitch(AutotuneSwitch, false)
			a.Active = false
		}
	}
}

func (a *Autotune) overridden(c Controls) bool {
	if v, ok := c.Number(Speed); ok && v != a.speed {
		return true
	}
	if v, ok := c.Number(Intensity); ok && v != a.intensity {
		return true
	}
	if v, ok := c.Choice(Palette); ok && v != a.palette {
		return true
	}
	return false
}
