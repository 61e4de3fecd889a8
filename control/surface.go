// Package control holds the live control values an effect reads, the configured
// presets and the priority rules that combine them with per effect defaults.
package control

import (
	"sync"

	"github.com/mgutz/logxi/v1"
)

var logger = log.New("control")

// Control names.
const (
	Speed              = "speed"
	Intensity          = "intensity"
	Palette            = "palette"
	Mirror             = "mirror"
	IntroEffect        = "intro"
	IntroDuration      = "intro_duration"
	IntroUsePalette    = "intro_use_palette"
	OutroEffect        = "outro"
	OutroDuration      = "outro_duration"
	TransitionDuration = "transition_duration"
	ForceWhite         = "force_white"
	Debug              = "debug"
	AutotuneSwitch     = "autotune"
	Timer              = "timer"
	TargetSegment      = "target_segment"
)

// AllSegments is the target segment value that addresses every region.
const AllSegments = "All Segments"

// A Surface gives read access to the current control values. The second result
// is false when the control does not exist or has no value yet.
type Surface interface {
	Number(name string) (float64, bool)
	Choice(name string) (string, bool)
	Switch(name string) (bool, bool)
}

// Controls is a Surface that can also be written.
type Controls interface {
	Surface
	SetNumber(name string, value float64)
	SetChoice(name string, value string)
	SetSwitch(name string, value bool)
}

// Kind tells which of the value maps a Change refers to.
type Kind int

const (
	KindNumber Kind = iota
	KindChoice
	KindSwitch
)

// Change describes a control write.
type Change struct {
	Name   string
	Kind   Kind
	Number float64
	Choice string
	Switch bool
}

// Values is an in-memory Controls implementation that notifies watchers of
// every change.
type Values struct {
	mu       sync.RWMutex
	numbers  map[string]float64
	choices  map[string]string
	switches map[string]bool
	watchers []func(Change)
}

// NewValues creates an instance of an empty Values.
func NewValues() *Values {
	v := new(Values)
	v.numbers = make(map[string]float64)
	v.choices = make(map[string]string)
	v.switches = make(map[string]bool)
	return v
}

// Watch registers fn to be called after every change, on the writer's goroutine.
func (v *Values) Watch(fn func(Change)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.watchers = append(v.watchers, fn)
}

func (v *Values) Number(name string) (float64, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	n, ok := v.numbers[name]
	return n, ok
}

func (v *Values) Choice(name string) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	c, ok := v.choices[name]
	return c, ok
}

func (v *Values) Switch(name string) (bool, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	s, ok := v.switches[name]
	return s, ok
}

func (v *Values) SetNumber(name string, value float64) {
	v.mu.Lock()
	old, ok := v.numbers[name]
	v.numbers[name] = value
	watchers := v.watchers
	v.mu.Unlock()
	if !ok || old != value {
		notify(watchers, Change{Name: name, Kind: KindNumber, Number: value})
	}
}

func (v *Values) SetChoice(name string, value string) {
	v.mu.Lock()
	old, ok := v.choices[name]
	v.choices[name] = value
	watchers := v.watchers
	v.mu.Unlock()
	if !ok || old != value {
		notify(watchers, Change{Name: name, Kind: KindChoice, Choice: value})
	}
}

func (v *Values) SetSwitch(name string, value bool) {
	v.mu.Lock()
	old, ok := v.switches[name]
	v.switches[name] = value
	watchers := v.watchers
	v.mu.Unlock()
	if !ok || old != value {
		notify(watchers, Change{Name: name, Kind: KindSwitch, Switch: value})
	}
}

// Update applies a decoded document of control values. Numbers, strings and
// booleans land on numbers, choices and switches; anything else is skipped.
func (v *Values) Update(doc map[string]interface{}) {
	for name, raw := range doc {
		switch value := raw.(type) {
		case int:
			v.SetNumber(name, float64(value))
		case float64:
			v.SetNumber(name, value)
		case bool:
			v.SetSwitch(name, value)
		case string:
			v.SetChoice(name, value)
		default:
			logger.Warn("ignoring control value", "name", name, "value", raw)
		}
	}
}

func notify(watchers []func(Change), c Change) {
	for _, w := range watchers {
		w(c)
	}
}

// toByte clamps a control number into the 0..255 parameter range.
func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
