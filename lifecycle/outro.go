package lifecycle

import (
	"github.com/matt-g-everett/ledfx/control"
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/runner"
)

// Outro erases the last effect off the strip after the light was turned off.
// It owns the runners handed over by Effect.Stop and releases them exactly
// once, whether it runs to the end, sees the light come back on or is aborted.
type Outro struct {
	// Abort cancels the outro at its next step.
	Abort chan struct{}
	// OnRelease is called once after the runners have been released.
	OnRelease func()

	runners   []*runner.Runner
	light     Light
	buffer    pixel.Buffer
	mode      control.Mode
	duration  uint32
	intensity uint8

	start    uint32
	started  bool
	finished bool
	aborted  bool
}

func newOutro(runners []*runner.Runner, light Light, buffer pixel.Buffer, mode control.Mode, duration uint32, intensity uint8) *Outro {
	o := new(Outro)
	o.Abort = make(chan struct{}, 1)
	o.runners = runners
	o.light = light
	o.buffer = buffer
	o.mode = mode
	o.duration = duration
	if o.duration == 0 {
		o.duration = 1
	}
	o.intensity = intensity
	return o
}

func (o *Outro) Mode() control.Mode {
	return o.mode
}

// Duration in ms.
func (o *Outro) Duration() uint32 {
	return o.duration
}

// Finished reports whether the outro has completed and released its runners.
func (o *Outro) Finished() bool {
	return o.finished
}

// Aborted reports whether the outro ended before its erase completed, either
// because the light came back on or Cancel was called.
func (o *Outro) Aborted() bool {
	return o.aborted
}

// Cancel asks the outro to stop at its next step. It never blocks.
func (o *Outro) Cancel() {
	select {
	case o.Abort <- struct{}{}:
	default:
	}
}

func (o *Outro) cancelled() bool {
	select {
	case <-o.Abort:
		return true
	default:
	}
	return o.light.IsOn()
}

// Step renders one outro frame at now and reports whether the outro is done.
// The first step fixes the start time.
func (o *Outro) Step(now uint32) bool {
	if o.finished {
		return true
	}
	if o.cancelled() {
		logger.Info("outro aborted", "mode", o.mode)
		o.aborted = true
		o.finish()
		return true
	}
	if !o.started {
		o.start = now
		o.started = true
	}

	elapsed := now - o.start
	progress := progressOf(elapsed, o.duration)
	bri := o.light.Brightness()
	for _, r := range o.runners {
		r.Service(now)
		if bri < 0.99 {
			scaleRange(o.buffer, r.Seg.Start, r.Seg.Stop, bri)
		}
		e := eraser{
			buffer:    o.buffer,
			start:     r.Seg.Start,
			stop:      r.Seg.Stop,
			reverse:   r.Seg.Mirror,
			intensity: o.intensity,
		}
		switch o.mode {
		case control.Wipe:
			e.wipe(progress, false)
		case control.Center:
			e.wipe(progress, true)
		case control.Glitter:
			e.glitter(progress)
		case control.TwinPulse:
			e.twinPulse(progress)
		case control.Morse:
			e.morse(elapsed)
		default:
			e.fade(progress)
		}
	}
	o.buffer.Show()

	if progress >= 1 {
		logger.Info("outro finished", "mode", o.mode)
		o.finish()
		return true
	}
	return false
}

func (o *Outro) finish() {
	if o.finished {
		return
	}
	o.finished = true
	for _, r := range o.runners {
		r.Release()
	}
	o.runners = nil
	if o.OnRelease != nil {
		o.OnRelease()
	}
}
