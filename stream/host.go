// Package stream hosts the effects: it owns the tick loop, the light state and
// the deferred outro, and carries frames and notifications out over MQTT and
// OPC.
package stream

import (
	"sync"
	"time"

	"github.com/mgutz/logxi/v1"

	"github.com/matt-g-everett/ledfx/config"
	"github.com/matt-g-everett/ledfx/control"
	"github.com/matt-g-everett/ledfx/fx"
	"github.com/matt-g-everett/ledfx/lifecycle"
	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/runner"
)

var logger = log.New("stream")

// Host runs the selected effect on a strip. All state is touched from the
// goroutine running Run; other goroutines talk to it through Post.
type Host struct {
	strip      *pixel.Strip
	light      *lifecycle.State
	values     *control.Values
	controller *control.Controller
	palettes   *palette.Set
	effects    []config.Effect
	instances  map[int]*lifecycle.Effect
	regions    []runner.Region
	intervalMs uint32
	notify     func(lifecycle.Metadata)

	current int
	outro   *lifecycle.Outro
	// lastOutro is when the outro was last stepped.
	lastOutro uint32

	commands chan interface{}
	quit     chan struct{}
	quitOnce sync.Once
	epoch    time.Time
}

// NewHost creates an instance of a Host with the light off and the first
// configured effect selected.
func NewHost(cfg *config.Config, strip *pixel.Strip, notify func(lifecycle.Metadata)) *Host {
	h := new(Host)
	h.strip = strip
	h.light = lifecycle.NewState(cfg.Strip.Gamma, cfg.Strip.DefaultTransitionMs)
	h.values = control.NewValues()
	h.values.Update(cfg.Controls)
	h.controller = control.NewController(h.values)
	h.palettes = palette.NewSet(nil)
	h.effects = cfg.EffectList()
	h.instances = make(map[int]*lifecycle.Effect)
	h.regions = cfg.Strip.Regions
	h.intervalMs = cfg.Strip.UpdateIntervalMs
	if h.intervalMs == 0 {
		h.intervalMs = fx.FrameTime
	}
	h.notify = notify
	h.commands = make(chan interface{}, 16)
	h.quit = make(chan struct{})
	h.epoch = time.Now()
	return h
}

// Light returns the light state.
func (h *Host) Light() *lifecycle.State {
	return h.light
}

// Values returns the control surface.
func (h *Host) Values() *control.Values {
	return h.values
}

// Current returns the selected effect.
func (h *Host) Current() *lifecycle.Effect {
	return h.effect(h.current)
}

// Outro returns the running outro, nil when there is none.
func (h *Host) Outro() *lifecycle.Outro {
	return h.outro
}

// Now is the host clock in ms.
func (h *Host) Now() uint32 {
	return uint32(time.Since(h.epoch) / time.Millisecond)
}

func (h *Host) effect(i int) *lifecycle.Effect {
	if e, ok := h.instances[i]; ok {
		return e
	}
	cfg := h.effects[i]
	e := lifecycle.New(lifecycle.Options{
		ID:         cfg.ID,
		Name:       cfg.Name,
		Presets:    cfg.Presets,
		IntervalMs: h.intervalMs,
		Regions:    h.regions,
		Light:      h.light,
		Buffer:     h.strip,
		Controller: h.controller,
		Palettes:   h.palettes,
		Notify:     h.notify,
	})
	h.instances[i] = e
	return e
}

// SelectEffect switches to the effect called name. The new effect starts
// without an intro when the light is on.
func (h *Host) SelectEffect(name string, now uint32) bool {
	for i, e := range h.effects {
		if e.Name != name {
			continue
		}
		if i == h.current {
			return true
		}
		h.Current().Stop(now, false)
		h.current = i
		if h.light.IsOn() {
			h.Current().Start(now, false)
		}
		logger.Info("effect selected", "effect", name)
		return true
	}
	logger.Warn("unknown effect", "effect", name)
	return false
}

// TurnOn switches the light on and starts the current effect with its intro.
// A running outro notices at its next step and gives up.
func (h *Host) TurnOn(now uint32) {
	if !h.light.SetOn(true) {
		return
	}
	h.controller.Observe(true)
	h.Current().Start(now, true)
}

// TurnOff switches the light off and hands the current effect's runners to an
// outro.
func (h *Host) TurnOff(now uint32) {
	if !h.light.SetOn(false) {
		return
	}
	h.controller.Observe(false)
	h.schedule(h.Current().Stop(now, true), now)
}

func (h *Host) schedule(o *lifecycle.Outro, now uint32) {
	if h.outro != nil {
		h.outro.Cancel()
		h.outro.Step(now)
	}
	h.outro = o
	h.lastOutro = now - h.intervalMs
}

// Tick steps the outro and renders the current effect.
func (h *Host) Tick(now uint32) {
	if h.outro != nil && now-h.lastOutro >= h.intervalMs {
		h.lastOutro = now
		if h.outro.Step(now) {
			if !h.outro.Aborted() {
				h.strip.Clear()
				h.strip.Show()
			}
			h.outro = nil
		}
	}
	if h.light.IsOn() {
		h.Current().Apply(now)
	}
}

func (h *Host) minuteTick(now uint32) {
	h.controller.TimerTick(func() { h.TurnOff(now) })
}

// Post queues a decoded message for the tick loop. It drops the message when
// the queue is full.
func (h *Host) Post(msg interface{}) {
	select {
	case h.commands <- msg:
	default:
		logger.Warn("command dropped")
	}
}

func (h *Host) handle(msg interface{}, now uint32) {
	switch m := msg.(type) {
	case *LightMessage:
		if m.Brightness != nil {
			h.light.SetBrightness(*m.Brightness)
		}
		if m.Color != "" {
			if c, err := parseColor(m.Color); err == nil {
				h.light.SetColor(c)
			}
		}
		if m.Gamma != nil {
			h.light.SetGamma(*m.Gamma)
		}
		if m.Effect != "" {
			h.SelectEffect(m.Effect, now)
		}
		if m.On != nil {
			if *m.On {
				h.TurnOn(now)
			} else {
				h.TurnOff(now)
			}
		}
	case *ControlMessage:
		h.values.Update(m.Values)
	default:
		logger.Warn("unexpected command", "command", msg)
	}
}

// Run causes the Host to tick until Stop is called. It ticks at twice the
// update rate so the effects' own interval gate keeps the frame timing even.
func (h *Host) Run() {
	period := time.Duration(h.intervalMs) * time.Millisecond / 2
	if period < time.Millisecond {
		period = time.Millisecond
	}
	tick := time.NewTicker(period)
	defer tick.Stop()
	minute := time.NewTicker(time.Minute)
	defer minute.Stop()

	for {
		select {
		case <-tick.C:
			h.Tick(h.Now())
		case <-minute.C:
			h.minuteTick(h.Now())
		case msg := <-h.commands:
			h.handle(msg, h.Now())
		case <-h.quit:
			return
		}
	}
}

// Stop ends Run.
func (h *Host) Stop() {
	h.quitOnce.Do(func() { close(h.quit) })
}
