// Package lifecycle runs an effect through its phases: intro, main with an
// optional cross-fade out of the intro, and a deferred outro that outlives the
// effect that started it.
package lifecycle

import (
	"sync"

	"github.com/mgutz/logxi/v1"

	"github.com/matt-g-everett/ledfx/pixel"
)

var logger = log.New("lifecycle")

// Light is the host light the effect runs on. Color and Brightness are the
// target values the user asked for, not the values currently on the strip.
type Light interface {
	IsOn() bool
	Color() pixel.Color
	// Brightness is in [0, 1].
	Brightness() float64
	Gamma() float64
	// DefaultTransitionMs is zero when the light has no default transition.
	DefaultTransitionMs() uint32
}

// State is a Light whose values are set by the host.
type State struct {
	mu           sync.RWMutex
	on           bool
	color        pixel.Color
	brightness   float64
	gamma        float64
	transitionMs uint32
}

// NewState creates an instance of a State that is off, white and fully bright.
func NewState(gamma float64, transitionMs uint32) *State {
	s := new(State)
	s.color = pixel.White
	s.brightness = 1
	s.gamma = gamma
	s.transitionMs = transitionMs
	return s
}

func (s *State) IsOn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.on
}

func (s *State) Color() pixel.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.color
}

func (s *State) Brightness() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.brightness
}

func (s *State) Gamma() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gamma
}

func (s *State) DefaultTransitionMs() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transitionMs
}

// SetOn switches the light and reports whether the state changed.
func (s *State) SetOn(on bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.on != on
	s.on = on
	return changed
}

func (s *State) SetColor(c pixel.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = c
}

// SetBrightness clamps b into [0, 1].
func (s *State) SetBrightness(b float64) {
	if b < 0 {
		b = 0
	} else if b > 1 {
		b = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brightness = b
}

func (s *State) SetGamma(g float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gamma = g
}
