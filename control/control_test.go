package control

import (
	"testing"

	"github.com/matt-g-everett/ledfx/fx"
	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/runner"
)

func u8(v uint8) *uint8 { return &v }
func f64(v float64) *float64 { return &v }
func str(v string) *string { return &v }
func boolean(v bool) *bool { return &v }

func TestIntroModePriority(t *testing.T) {
	v := NewValues()
	v.SetChoice(IntroEffect, "Fade")

	tests := []struct {
		name    string
		effect  uint8
		surface Surface
		presets Presets
		want    Mode
	}{
		{"forced preset wins", fx.IDStardustSweep, v, Presets{Intro: str("Wipe")}, Glitter},
		{"live selector", fx.IDAurora, v, Presets{Intro: str("Wipe")}, Fade},
		{"config preset", fx.IDAurora, NewValues(), Presets{Intro: str("Morse Code")}, Morse},
		{"nothing set", fx.IDAurora, NewValues(), Presets{}, None},
	}
	for _, test := range tests {
		c := Chain{Surface: test.surface, Presets: test.presets, Effect: test.effect}
		if got := c.IntroMode(); got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}
}

func TestIntroDurationPriority(t *testing.T) {
	live := NewValues()
	live.SetNumber(IntroDuration, 2.5)

	speed := NewValues()
	speed.SetNumber(Speed, 255)

	tests := []struct {
		name    string
		effect  uint8
		surface Surface
		presets Presets
		mode    Mode
		want    uint32
	}{
		{"live control", fx.IDAurora, live, Presets{IntroDuration: f64(4)}, Wipe, 2500},
		{"preset", fx.IDAurora, NewValues(), Presets{IntroDuration: f64(4)}, Wipe, 4000},
		{"monochromatic speed mapping", fx.IDHorizonSweep, speed, Presets{}, Wipe, 10000},
		{"fallback", fx.IDAurora, NewValues(), Presets{}, Wipe, 1000},
		{"morse sequence", fx.IDAurora, live, Presets{}, Morse, 19 * 80},
	}
	for _, test := range tests {
		c := Chain{Surface: test.surface, Presets: test.presets, Effect: test.effect}
		if got := c.IntroDuration(test.mode, 255); got != test.want {
			t.Errorf("%s: got %d, want %d", test.name, got, test.want)
		}
	}
}

func TestZeroDurationIsFloored(t *testing.T) {
	v := NewValues()
	v.SetNumber(IntroDuration, 0)
	c := Chain{Surface: v, Effect: fx.IDAurora}
	if got := c.IntroDuration(Wipe, 128); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestOutroResolution(t *testing.T) {
	c := Chain{Surface: NewValues(), Effect: fx.IDAurora, LightTransitionMs: 700}
	if got := c.OutroMode(Center); got != Center {
		t.Errorf("outro should follow the intro mode, got %v", got)
	}
	if got := c.OutroDuration(Wipe); got != 700 {
		t.Errorf("outro should fall back to the light transition, got %d", got)
	}

	v := NewValues()
	v.SetNumber(Intensity, 0)
	c = Chain{Surface: v, Effect: fx.IDTransmission}
	if got := c.OutroMode(Wipe); got != Morse {
		t.Errorf("transmission forces morse, got %v", got)
	}
	if got := c.OutroDuration(Morse); got != 35*180 {
		t.Errorf("morse outro = %d, want %d", got, 35*180)
	}
}

func TestMonochromaticOutroWithoutSpeed(t *testing.T) {
	c := Chain{Surface: NewValues(), Effect: fx.IDCurtainSweep, LightTransitionMs: 700}
	if got := c.OutroDuration(Center); got != DefaultPhaseMs {
		t.Errorf("monochromatic outro without speed = %d, want %d", got, DefaultPhaseMs)
	}
	if got := c.IntroDuration(Center, 0); got != DefaultPhaseMs {
		t.Errorf("monochromatic intro without speed = %d, want %d", got, DefaultPhaseMs)
	}

	v := NewValues()
	v.SetNumber(Speed, 255)
	c.Surface = v
	if got := c.OutroDuration(Center); got != 10000 {
		t.Errorf("monochromatic outro at full speed = %d, want 10000", got)
	}
}

func TestMorseOutroWithoutIntensity(t *testing.T) {
	c := Chain{Surface: NewValues(), Effect: fx.IDFire}
	if got, want := c.OutroDuration(Morse), uint32(OutroMorseBits)*MorseUnit(128); got != want {
		t.Errorf("morse outro = %d, want %d", got, want)
	}
	if got := c.OutroIntensity(); got != fx.DefaultIntensity(fx.IDFire) {
		t.Errorf("outro intensity = %d, want the effect default", got)
	}
}

func TestTransitionDisabledForMonochromatic(t *testing.T) {
	v := NewValues()
	v.SetNumber(TransitionDuration, 3)
	if got := (Chain{Surface: v, Effect: fx.IDCurtainSweep}).TransitionMs(); got != 0 {
		t.Errorf("monochromatic transition = %d, want 0", got)
	}
	if got := (Chain{Surface: v, Effect: fx.IDAurora}).TransitionMs(); got != 3000 {
		t.Errorf("transition = %d, want 3000", got)
	}
	if got := (Chain{Surface: NewValues(), Effect: fx.IDAurora}).TransitionMs(); got != DefaultTransitionMs {
		t.Errorf("default transition = %d", got)
	}
}

func TestParameterDefaults(t *testing.T) {
	c := Chain{Surface: NewValues(), Effect: fx.IDAurora}
	if c.Speed() != 24 || c.Intensity() != fx.DefaultIntensity(fx.IDAurora) {
		t.Errorf("missing controls should use the effect defaults: %d %d", c.Speed(), c.Intensity())
	}
	if c.PaletteName() != "Aurora" {
		t.Errorf("palette name = %q", c.PaletteName())
	}
	c.Presets.Speed = u8(200)
	if c.Speed() != 200 {
		t.Errorf("preset speed ignored")
	}
	if (Chain{Effect: fx.IDStardustSweep}).Palette() != palette.Solid {
		t.Errorf("monochromatic effects render solid")
	}
}

func TestPresetsOnlyFillUnsetModes(t *testing.T) {
	v := NewValues()
	v.SetChoice(IntroEffect, "Glitter")
	p := Presets{Intro: str("Wipe"), Outro: str("Fade"), Speed: u8(10), Mirror: boolean(true)}
	p.Apply(v, true)

	if got, _ := v.Choice(IntroEffect); got != "Glitter" {
		t.Errorf("user intro choice overwritten with %q", got)
	}
	if got, _ := v.Choice(OutroEffect); got != "Fade" {
		t.Errorf("outro preset not applied: %q", got)
	}
	if got, _ := v.Number(Speed); got != 10 {
		t.Errorf("speed preset not applied: %v", got)
	}

	v.SetChoice(OutroEffect, "None")
	p.Outro = str("Wipe")
	p.Apply(v, false)
	if got, _ := v.Choice(OutroEffect); got != "None" {
		t.Errorf("later activations must not touch the outro choice, got %q", got)
	}
}

func TestAutotune(t *testing.T) {
	v := NewValues()
	v.SetSwitch(AutotuneSwitch, true)
	var a Autotune
	a.Start(v, Presets{}, fx.IDFire)
	if !a.Active {
		t.Fatal("autotune should be active")
	}
	if got, _ := v.Number(Speed); got != float64(fx.DefaultSpeed(fx.IDFire)) {
		t.Errorf("speed = %v", got)
	}
	if got, _ := v.Choice(Palette); got != "Fire" {
		t.Errorf("palette = %q", got)
	}

	a.Update(v, Presets{}, fx.IDFire)
	if !a.Active {
		t.Fatal("autotune should survive an unchanged frame")
	}

	v.SetNumber(Intensity, 3)
	a.Update(v, Presets{}, fx.IDFire)
	if a.Active {
		t.Errorf("manual change should disable autotune")
	}
	if on, _ := v.Switch(AutotuneSwitch); on {
		t.Errorf("the autotune switch should be turned off")
	}
}

func TestAutotuneDisabledByPreset(t *testing.T) {
	v := NewValues()
	var a Autotune
	a.Start(v, Presets{Autotune: boolean(false)}, fx.IDFire)
	a.Update(v, Presets{Autotune: boolean(false)}, fx.IDFire)
	if a.Active {
		t.Errorf("autotune preset false should keep it off")
	}
	if _, ok := v.Number(Speed); ok {
		t.Errorf("defaults should not be applied")
	}
}

func TestControllerTargetsSegments(t *testing.T) {
	strip := pixel.NewStrip(20)
	runners := runner.Build([]runner.Region{{ID: "a", Start: 0, Stop: 10}, {ID: "b", Start: 10, Stop: 20}},
		strip, fx.IDStatic, runner.Options{})
	v := NewValues()
	c := NewController(v)
	for _, r := range runners {
		c.Register(r)
	}
	c.Register(runners[0])
	if len(c.Runners()) != 2 {
		t.Fatalf("duplicate registration")
	}

	v.SetNumber(Speed, 77)
	if runners[0].Seg.Speed != 77 || runners[1].Seg.Speed != 77 {
		t.Errorf("unset target should broadcast")
	}

	v.SetChoice(TargetSegment, "b")
	v.SetNumber(Intensity, 5)
	v.SetChoice(Palette, "Lava")
	if runners[0].Seg.Intensity == 5 || runners[1].Seg.Intensity != 5 {
		t.Errorf("intensity should only reach region b")
	}
	if runners[1].Seg.Palette != palette.Lava || runners[0].Seg.Palette == palette.Lava {
		t.Errorf("palette should only reach region b")
	}

	v.SetSwitch(Debug, true)
	if !runners[0].Debug || !runners[1].Debug {
		t.Errorf("debug goes to every runner")
	}

	c.Unregister(runners[1])
	v.SetChoice(TargetSegment, AllSegments)
	v.SetNumber(Speed, 9)
	if runners[1].Seg.Speed == 9 {
		t.Errorf("unregistered runner still receives changes")
	}
}

func TestSleepTimer(t *testing.T) {
	v := NewValues()
	c := NewController(v)
	v.SetNumber(Timer, 2)
	off := 0
	c.TimerTick(func() { off++ })
	if got, _ := v.Number(Timer); got != 1 || off != 0 {
		t.Fatalf("after one minute: timer %v, off %d", got, off)
	}
	c.TimerTick(func() { off++ })
	if got, _ := v.Number(Timer); got != 0 || off != 1 {
		t.Fatalf("after two minutes: timer %v, off %d", got, off)
	}
	c.TimerTick(func() { off++ })
	if off != 1 {
		t.Errorf("expired timer fired again")
	}
}

func TestTurningOffResetsTimer(t *testing.T) {
	v := NewValues()
	c := NewController(v)
	v.SetNumber(Timer, 30)
	c.Observe(true)
	c.Observe(false)
	if got, _ := v.Number(Timer); got != 0 {
		t.Errorf("timer = %v, want 0", got)
	}
}

func TestMorse(t *testing.T) {
	if MorseUnit(255) != 80 || MorseUnit(0) != 180 {
		t.Errorf("unit = %d/%d", MorseUnit(255), MorseUnit(0))
	}
	// The intro opens with three lit units then a gap.
	for bit, want := range []bool{true, true, true, false} {
		if got := MorseOn(IntroMorseMask, IntroMorseBits, 100, uint32(bit*100+50), true); got != want {
			t.Errorf("bit %d = %v, want %v", bit, got, want)
		}
	}
	if !MorseOn(IntroMorseMask, IntroMorseBits, 100, 100*19, true) {
		t.Errorf("intro holds on after the sequence")
	}
	if MorseOn(OutroMorseMask, OutroMorseBits, 100, 100*35, false) {
		t.Errorf("outro holds off after the sequence")
	}
}

func TestValuesUpdate(t *testing.T) {
	v := NewValues()
	var changes []Change
	v.Watch(func(c Change) { changes = append(changes, c) })
	v.Update(map[string]interface{}{Speed: 12, Mirror: true, Palette: "Ice", "bogus": []int{1}})
	if len(changes) != 3 {
		t.Fatalf("got %d changes, want 3", len(changes))
	}
	v.SetNumber(Speed, 12)
	if len(changes) != 3 {
		t.Errorf("an unchanged write should not notify")
	}
}

func TestControllerMirrorKeepsRegionOrientation(t *testing.T) {
	strip := pixel.NewStrip(20)
	runners := runner.Build([]runner.Region{{ID: "a", Start: 0, Stop: 10}, {ID: "b", Start: 10, Stop: 20, Mirror: true}},
		strip, fx.IDStatic, runner.Options{})
	v := NewValues()
	c := NewController(v)
	for _, r := range runners {
		c.Register(r)
	}
	v.SetSwitch(Mirror, true)
	if !runners[0].Seg.Mirror {
		t.Errorf("switch on should mirror region a")
	}
	v.SetSwitch(Mirror, false)
	if runners[0].Seg.Mirror || !runners[1].Seg.Mirror {
		t.Errorf("switch off: a=%v b=%v, want false true", runners[0].Seg.Mirror, runners[1].Seg.Mirror)
	}
}
