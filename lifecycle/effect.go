package lifecycle

import (
	"github.com/matt-g-everett/ledfx/control"
	"github.com/matt-g-everett/ledfx/fx"
	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/runner"
)

// notifyInterval is how often the now playing metadata is repeated, in ms.
const notifyInterval = 5000

// Phase is where an effect is in its lifecycle.
type Phase int

const (
	Off Phase = iota
	Intro
	Main
	// Transition is Main with the intro snapshot still dissolving over it.
	Transition
)

func (p Phase) String() string {
	switch p {
	case Intro:
		return "intro"
	case Main:
		return "main"
	case Transition:
		return "transition"
	}
	return "off"
}

// Metadata describes what is playing.
type Metadata struct {
	Effect  string `json:"effect" yaml:"effect"`
	Palette string `json:"palette" yaml:"palette"`
}

// Options configures an Effect.
type Options struct {
	ID      uint8
	Name    string
	Presets control.Presets
	// IntervalMs is the minimum time between rendered frames.
	IntervalMs uint32
	Regions    []runner.Region
	Light      Light
	Buffer     pixel.Buffer
	Controls   control.Controls
	// Controller pushes live changes onto the runners. Without one the effect
	// pulls the controls every frame.
	Controller *control.Controller
	Palettes   *palette.Set
	Notify     func(Metadata)
}

// Effect is one selectable light effect. It owns its runners from Start until
// Stop hands them to an outro or releases them.
type Effect struct {
	opts     Options
	runners  []*runner.Runner
	autotune control.Autotune
	started  bool

	phase         Phase
	introStart    uint32
	introMode     control.Mode
	introDuration uint32
	fade          *fadeIn
	xfade         *crossfade

	lastApply  uint32
	applied    bool
	palette    string
	lastNotify uint32
}

type fadeIn struct {
	start    uint32
	duration uint32
}

// New creates an instance of an Effect.
func New(opts Options) *Effect {
	e := new(Effect)
	e.opts = opts
	if e.opts.Name == "" {
		e.opts.Name = fx.Name(opts.ID)
	}
	if e.opts.Controls == nil {
		if e.opts.Controller != nil {
			e.opts.Controls = e.opts.Controller.Values()
		} else {
			e.opts.Controls = control.NewValues()
		}
	}
	return e
}

// ID returns the effect id.
func (e *Effect) ID() uint8 {
	return e.opts.ID
}

// Name returns the display name.
func (e *Effect) Name() string {
	return e.opts.Name
}

// Phase returns the current lifecycle phase.
func (e *Effect) Phase() Phase {
	return e.phase
}

// Runners returns the runners the effect currently owns, primary first.
func (e *Effect) Runners() []*runner.Runner {
	return e.runners
}

// Chain returns the settings resolver for this effect.
func (e *Effect) Chain() control.Chain {
	return control.Chain{
		Surface:           e.opts.Controls,
		Presets:           e.opts.Presets,
		Effect:            e.opts.ID,
		LightTransitionMs: e.opts.Light.DefaultTransitionMs(),
	}
}

// Metadata returns the effect name and the palette actually rendered.
func (e *Effect) Metadata() Metadata {
	name := e.Chain().PaletteName()
	if len(e.runners) > 0 {
		name = palette.Name(e.runners[0].PaletteID())
	}
	return Metadata{Effect: e.opts.Name, Palette: name}
}

// Start activates the effect. turningOn is set when the light has just gone
// from off to on, the only case that plays an intro.
func (e *Effect) Start(now uint32, turningOn bool) {
	first := !e.started
	e.started = true
	e.ensureRunners()

	e.autotune.Start(e.opts.Controls, e.opts.Presets, e.opts.ID)
	e.opts.Presets.Apply(e.opts.Controls, first)
	e.seed()

	e.applied = false
	e.introMode = control.None
	e.xfade = nil
	e.fade = nil
	e.phase = Main
	e.notify(now)

	if !turningOn || fx.BypassesIntro(e.opts.ID) {
		return
	}
	chain := e.Chain()
	mode := chain.IntroMode()
	if mode == control.None {
		if ms := e.opts.Light.DefaultTransitionMs(); ms > 0 {
			e.fade = &fadeIn{start: now, duration: ms}
		}
		return
	}
	e.introMode = mode
	e.introDuration = chain.IntroDuration(mode, chain.Speed())
	e.introStart = now
	e.phase = Intro
	logger.Info("intro started", "effect", e.opts.Name, "mode", mode, "ms", e.introDuration)
}

func (e *Effect) ensureRunners() {
	if e.runners != nil {
		return
	}
	e.runners = runner.Build(e.opts.Regions, e.opts.Buffer, e.opts.ID, runner.Options{
		Gamma:      e.opts.Light.Gamma(),
		IntervalMs: e.opts.IntervalMs,
		Palettes:   e.opts.Palettes,
	})
	if e.opts.Controller != nil {
		for _, r := range e.runners {
			e.opts.Controller.Register(r)
		}
	}
	logger.Info("runners created", "effect", e.opts.Name, "count", len(e.runners))
}

// seed copies the resolved settings onto every runner.
func (e *Effect) seed() {
	chain := e.Chain()
	for _, r := range e.runners {
		r.Seg.Speed = chain.Speed()
		r.Seg.Intensity = chain.Intensity()
		r.Seg.Palette = chain.Palette()
		r.SetMirror(chain.Mirror())
		r.Debug = chain.Debug()
	}
}

// Apply renders one frame if the update interval has passed and reports whether
// it did.
func (e *Effect) Apply(now uint32) bool {
	if len(e.runners) == 0 {
		return false
	}
	if e.applied && now-e.lastApply < e.opts.IntervalMs {
		return false
	}
	e.applied = true
	e.lastApply = now

	e.runControls(now)
	target := e.targetColor()
	for _, r := range e.runners {
		r.SetColor(target)
		r.SyncGamma(e.opts.Light.Gamma())
	}

	if e.phase == Intro {
		e.renderIntro(now)
		e.opts.Buffer.Show()
		return true
	}

	for _, r := range e.runners {
		r.Service(now)
	}
	if bri := e.opts.Light.Brightness(); bri < 0.99 {
		e.scale(bri)
	}
	if e.fade != nil {
		p := progressOf(now-e.fade.start, e.fade.duration)
		e.scale(p)
		if p >= 1 {
			e.fade = nil
		}
	}
	if e.xfade != nil && e.xfade.blend(e.opts.Buffer, now) {
		e.xfade = nil
		e.phase = Main
		logger.Debug("transition finished", "effect", e.opts.Name)
	}
	e.opts.Buffer.Show()
	return true
}

func (e *Effect) scale(f float64) {
	for _, r := range e.runners {
		scaleRange(e.opts.Buffer, r.Seg.Start, r.Seg.Stop, f)
	}
}

func (e *Effect) runControls(now uint32) {
	e.autotune.Update(e.opts.Controls, e.opts.Presets, e.opts.ID)

	if e.opts.Controller == nil {
		e.seed()
	}
	if fx.IsMonochromatic(e.opts.ID) {
		for _, r := range e.runners {
			r.Seg.Palette = palette.Solid
		}
	}

	name := e.Metadata().Palette
	if name != e.palette || now-e.lastNotify >= notifyInterval {
		e.notify(now)
	}
}

func (e *Effect) notify(now uint32) {
	m := e.Metadata()
	e.palette = m.Palette
	e.lastNotify = now
	if e.opts.Notify != nil {
		e.opts.Notify(m)
	}
}

// targetColor is the light's color, white when unset, with the force white
// switch moving all of it onto the white channel.
func (e *Effect) targetColor() pixel.Color {
	c := e.opts.Light.Color()
	if c.IsBlack() {
		c = pixel.White
	}
	if e.Chain().ForceWhite() {
		w := c.W
		for _, v := range []uint8{c.R, c.G, c.B} {
			if v > w {
				w = v
			}
		}
		c = pixel.Color{W: w}
	}
	return c
}

func (e *Effect) renderIntro(now uint32) {
	elapsed := now - e.introStart
	progress := progressOf(elapsed, e.introDuration)
	chain := e.Chain()

	bri := e.opts.Light.Brightness()
	if bri < 0.01 {
		bri = 0.01
	}
	color := e.targetColor().Multiply(bri)
	var intensity float64
	if v, ok := e.opts.Controls.Number(control.Intensity); ok {
		intensity = v
	}

	for _, r := range e.runners {
		p := painter{
			buffer:     e.opts.Buffer,
			r:          r,
			color:      color,
			brightness: bri,
			usePalette: (chain.IntroUsePalette() || fx.IsMonochromatic(e.opts.ID)) && !palette.IsSolid(r.PaletteID()),
			reverse:    r.Seg.Mirror,
			intensity:  intensity,
		}
		switch e.introMode {
		case control.Wipe:
			p.wipe(progress, false)
		case control.Center:
			p.wipe(progress, true)
		case control.Fade:
			p.fade(progress)
		case control.Glitter:
			p.glitter(progress)
		case control.TwinPulse:
			p.twinPulse(progress)
		case control.Morse:
			p.morse(elapsed, r.Seg.Speed)
		default:
			p.clear()
		}
	}

	if elapsed <= e.introDuration {
		return
	}
	e.phase = Main
	if ms := chain.TransitionMs(); ms > 0 {
		e.xfade = newCrossfade(e.opts.Buffer, now, ms)
		e.phase = Transition
	}
	logger.Info("intro finished", "effect", e.opts.Name, "phase", e.phase)
}

// Stop deactivates the effect. When the light is being turned off the runners
// move into the returned Outro, which the host steps until it completes;
// otherwise they are released at once and Stop returns nil.
func (e *Effect) Stop(now uint32, turningOff bool) *Outro {
	runners := e.runners
	e.runners = nil
	e.phase = Off
	e.xfade = nil
	e.fade = nil
	if len(runners) == 0 {
		return nil
	}
	if e.opts.Controller != nil {
		for _, r := range runners {
			e.opts.Controller.Unregister(r)
		}
	}
	if !turningOff {
		for _, r := range runners {
			r.Release()
		}
		return nil
	}

	chain := e.Chain()
	intro := e.introMode
	if intro == control.None {
		intro = chain.IntroMode()
	}
	mode := chain.OutroMode(intro)
	o := newOutro(runners, e.opts.Light, e.opts.Buffer, mode, chain.OutroDuration(mode), chain.OutroIntensity())
	logger.Info("outro started", "effect", e.opts.Name, "mode", mode, "ms", o.Duration())
	return o
}
