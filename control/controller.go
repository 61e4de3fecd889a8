package control

import (
	"sync"

	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/runner"
)

// Controller pushes control changes onto the registered runners and runs the
// sleep timer. Speed, intensity, palette and mirror honour the target segment
// filter; debug goes to every runner.
type Controller struct {
	values *Values

	mu      sync.Mutex
	runners []*runner.Runner
	wasOn   bool
}

// NewController creates an instance of a Controller watching values.
func NewController(values *Values) *Controller {
	c := new(Controller)
	c.values = values
	values.Watch(c.push)
	return c
}

// Values returns the controls the controller watches.
func (c *Controller) Values() *Values {
	return c.values
}

// Register adds r to the push targets; registering twice is a no-op.
func (c *Controller) Register(r *runner.Runner) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.runners {
		if existing == r {
			return
		}
	}
	c.runners = append(c.runners, r)
}

// Unregister removes r from the push targets.
func (c *Controller) Unregister(r *runner.Runner) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.runners {
		if existing == r {
			c.runners = append(c.runners[:i], c.runners[i+1:]...)
			return
		}
	}
}

// Runners returns a copy of the registered runners.
func (c *Controller) Runners() []*runner.Runner {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*runner.Runner, len(c.runners))
	copy(out, c.runners)
	return out
}

// Targets reports whether live parameter changes apply to r.
func (c *Controller) Targets(r *runner.Runner) bool {
	target, ok := c.values.Choice(TargetSegment)
	if !ok || target == "" || target == AllSegments {
		return true
	}
	return r.ID == target
}

func (c *Controller) push(ch Change) {
	switch ch.Name {
	case Speed, Intensity, Palette, Mirror, Debug:
	default:
		return
	}
	for _, r := range c.Runners() {
		if ch.Name == Debug {
			r.Debug = ch.Switch
			continue
		}
		if !c.Targets(r) {
			continue
		}
		switch ch.Name {
		case Speed:
			r.Seg.Speed = toByte(ch.Number)
		case Intensity:
			r.Seg.Intensity = toByte(ch.Number)
		case Palette:
			r.Seg.Palette = palette.ID(ch.Choice)
		case Mirror:
			r.SetMirror(ch.Switch)
		}
	}
}

// TimerTick counts the sleep timer down by one minute and calls turnOff when it
// reaches zero. The host calls it once a minute.
func (c *Controller) TimerTick(turnOff func()) {
	minutes, ok := c.values.Number(Timer)
	if !ok || minutes <= 0 {
		return
	}
	minutes--
	if minutes <= 0 {
		minutes = 0
		logger.Info("sleep timer expired")
		if turnOff != nil {
			turnOff()
		}
	}
	c.values.SetNumber(Timer, minutes)
}

// Observe tracks the light state; turning off cancels a pending sleep timer.
func (c *Controller) Observe(on bool) {
	if c.wasOn && !on {
		if minutes, ok := c.values.Number(Timer); ok && minutes > 0 {
			logger.Debug("light off, resetting sleep timer")
			c.values.SetNumber(Timer, 0)
		}
	}
	c.wasOn = on
}
