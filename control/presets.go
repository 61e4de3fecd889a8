package control

// Presets are configured values pushed onto the controls when an effect starts.
// A nil field is not configured.
type Presets struct {
	Speed           *uint8   `yaml:"speed"`
	Intensity       *uint8   `yaml:"intensity"`
	Palette         *string  `yaml:"palette"`
	Mirror          *bool    `yaml:"mirror"`
	Intro           *string  `yaml:"intro"`
	IntroDuration   *float64 `yaml:"introDuration"`
	IntroUsePalette *bool    `yaml:"introUsePalette"`
	ForceWhite      *bool    `yaml:"forceWhite"`
	Timer           *float64 `yaml:"timer"`
	Outro           *string  `yaml:"outro"`
	OutroDuration   *float64 `yaml:"outroDuration"`
	Autotune        *bool    `yaml:"autotune"`
}

// Apply writes the presets onto c. Speed, intensity, palette and mirror are
// enforced on every start; the rest only on the first activation, and the intro
// and outro choices only while they are still unset or None so a user's pick
// survives.
func (p Presets) Apply(c Controls, first bool) {
	if p.Speed != nil {
		c.SetNumber(Speed, float64(*p.Speed))
	}
	if p.Intensity != nil {
		c.SetNumber(Intensity, float64(*p.Intensity))
	}
	if p.Palette != nil {
		c.SetChoice(Palette, *p.Palette)
	}
	if p.Mirror != nil {
		c.SetSwitch(Mirror, *p.Mirror)
	}
	if !first {
		return
	}

	if p.Intro != nil && unsetMode(c, IntroEffect) {
		c.SetChoice(IntroEffect, *p.Intro)
	}
	if p.IntroDuration != nil {
		c.SetNumber(IntroDuration, *p.IntroDuration)
	}
	if p.IntroUsePalette != nil {
		c.SetSwitch(IntroUsePalette, *p.IntroUsePalette)
	}
	if p.ForceWhite != nil {
		c.SetSwitch(ForceWhite, *p.ForceWhite)
	}
	if p.Timer != nil {
		c.SetNumber(Timer, *p.Timer)
	}
	if p.Outro != nil && unsetMode(c, OutroEffect) {
		c.SetChoice(OutroEffect, *p.Outro)
	}
	if p.OutroDuration != nil {
		c.SetNumber(OutroDuration, *p.OutroDuration)
	}
}

func unsetMode(s Surface, name string) bool {
	cur, ok := s.Choice(name)
	return !ok || cur == "" || cur == None.String()
}
