package control

import (
	"github.com/matt-g-everett/ledfx/fx"
	"github.com/matt-g-everett/ledfx/palette"
)

// Fallback durations in ms.
const (
	DefaultPhaseMs      = 1000
	DefaultTransitionMs = 1500
)

// Chain resolves effective settings for one effect. Each setting walks its own
// priority order over forced effect behaviour, live controls, presets and per
// effect defaults.
type Chain struct {
	Surface Surface
	Presets Presets
	Effect  uint8
	// LightTransitionMs is the light's default transition length, zero when unset.
	LightTransitionMs uint32
}

func (c Chain) number(name string) (float64, bool) {
	if c.Surface == nil {
		return 0, false
	}
	return c.Surface.Number(name)
}

func (c Chain) choice(name string) (string, bool) {
	if c.Surface == nil {
		return "", false
	}
	return c.Surface.Choice(name)
}

func (c Chain) flag(name string) (bool, bool) {
	if c.Surface == nil {
		return false, false
	}
	return c.Surface.Switch(name)
}

// Speed is the live speed, else the preset, else the effect's default.
func (c Chain) Speed() uint8 {
	if v, ok := c.number(Speed); ok {
		return toByte(v)
	}
	if c.Presets.Speed != nil {
		return *c.Presets.Speed
	}
	return fx.DefaultSpeed(c.Effect)
}

// Intensity is the live intensity, else the preset, else the effect's default.
func (c Chain) Intensity() uint8 {
	if v, ok := c.number(Intensity); ok {
		return toByte(v)
	}
	if c.Presets.Intensity != nil {
		return *c.Presets.Intensity
	}
	return fx.DefaultIntensity(c.Effect)
}

// Palette is the palette id to render with. Monochromatic effects are always
// solid; otherwise the choice, the preset and finally Default apply.
func (c Chain) Palette() uint8 {
	if fx.IsMonochromatic(c.Effect) {
		return palette.Solid
	}
	if name, ok := c.choice(Palette); ok {
		return palette.ID(name)
	}
	if c.Presets.Palette != nil {
		return palette.ID(*c.Presets.Palette)
	}
	return palette.Default
}

// PaletteName is the display name of the rendered palette with Default resolved.
func (c Chain) PaletteName() string {
	id := c.Palette()
	if id == palette.Default {
		id = fx.NaturalPalette(c.Effect)
	}
	return palette.Name(id)
}

func (c Chain) Mirror() bool {
	if v, ok := c.flag(Mirror); ok {
		return v
	}
	return c.Presets.Mirror != nil && *c.Presets.Mirror
}

func (c Chain) IntroUsePalette() bool {
	v, _ := c.flag(IntroUsePalette)
	return v
}

func (c Chain) ForceWhite() bool {
	v, _ := c.flag(ForceWhite)
	return v
}

func (c Chain) Debug() bool {
	v, _ := c.flag(Debug)
	return v
}

// AutotuneEnabled is the preset, else the switch, else true.
func (c Chain) AutotuneEnabled() bool {
	if c.Presets.Autotune != nil {
		return *c.Presets.Autotune
	}
	if v, ok := c.flag(AutotuneSwitch); ok {
		return v
	}
	return true
}

// IntroMode is the monochromatic mode, else the live selector, else the preset.
func (c Chain) IntroMode() Mode {
	if m, ok := MonochromaticMode(c.Effect); ok {
		return m
	}
	if s, ok := c.choice(IntroEffect); ok {
		m, _ := ParseMode(s)
		return m
	}
	if c.Presets.Intro != nil {
		m, _ := ParseMode(*c.Presets.Intro)
		return m
	}
	return None
}

// IntroDuration in ms. Morse runs for its full sequence; otherwise the live
// control, the preset, the monochromatic speed mapping and one second apply in
// that order.
func (c Chain) IntroDuration(mode Mode, speed uint8) uint32 {
	if mode == Morse {
		return IntroMorseBits * MorseUnit(speed)
	}
	return floor(c.duration(IntroDuration, c.Presets.IntroDuration, 0))
}

// OutroMode is the monochromatic mode, else the live selector, else the preset,
// else the intro mode.
func (c Chain) OutroMode(intro Mode) Mode {
	if m, ok := MonochromaticMode(c.Effect); ok {
		return m
	}
	if s, ok := c.choice(OutroEffect); ok {
		m, _ := ParseMode(s)
		return m
	}
	if c.Presets.Outro != nil {
		m, _ := ParseMode(*c.Presets.Outro)
		return m
	}
	return intro
}

// OutroIntensity is the live intensity, else the effect's default.
func (c Chain) OutroIntensity() uint8 {
	if v, ok := c.number(Intensity); ok {
		return toByte(v)
	}
	return fx.DefaultIntensity(c.Effect)
}

// OutroDuration in ms. Morse runs for its full sequence, timed from the live
// intensity or 128. Monochromatic effects without a speed take one second;
// otherwise the light's default transition is the last resort before one second.
func (c Chain) OutroDuration(mode Mode) uint32 {
	if mode == Morse {
		rate := uint8(128)
		if v, ok := c.number(Intensity); ok {
			rate = toByte(v)
		}
		return OutroMorseBits * MorseUnit(rate)
	}
	return floor(c.duration(OutroDuration, c.Presets.OutroDuration, c.LightTransitionMs))
}

func (c Chain) duration(name string, preset *float64, fallback uint32) uint32 {
	if v, ok := c.number(name); ok {
		return seconds(v)
	}
	if preset != nil {
		return seconds(*preset)
	}
	if _, ok := MonochromaticMode(c.Effect); ok {
		if v, ok := c.number(Speed); ok {
			return SweepDuration(v)
		}
		return DefaultPhaseMs
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultPhaseMs
}

// TransitionMs is the intro to main cross-fade length, zero for none.
// Monochromatic effects never cross-fade.
func (c Chain) TransitionMs() uint32 {
	if fx.IsMonochromatic(c.Effect) {
		return 0
	}
	if v, ok := c.number(TransitionDuration); ok {
		return seconds(v)
	}
	return DefaultTransitionMs
}

func seconds(v float64) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(v * 1000)
}

func floor(ms uint32) uint32 {
	if ms == 0 {
		return 1
	}
	return ms
}
