// Package segment defines the value every effect reads and writes: one sub-range of
// a pixel buffer plus its animation parameters and private scratch state.
package segment

import (
	"github.com/matt-g-everett/ledfx/pixel"
)

const (
	DefaultSpeed     = 128
	DefaultIntensity = 128
)

// DefaultColor is the warm orange primary a new segment starts with.
var DefaultColor = pixel.Hex(0xFFAA00)

// Segment describes the range [Start, Stop) of a buffer and its animation state.
type Segment struct {
	Start int
	Stop  int

	Speed     uint8
	Intensity uint8
	Palette   uint8
	Mirror    bool
	Colors    [3]pixel.Color

	// Call counts frames since the segment was created.
	Call uint32
	// Step, Aux0 and Aux1 are small registers for lightweight per-frame state.
	Step uint32
	Aux0 uint16
	Aux1 uint16

	// Reset is a one-shot request to reinitialise scratch state.
	Reset bool

	// DataLimit caps scratch allocations in bytes; zero means unlimited.
	DataLimit int

	data  []byte
	state interface{}
	// stateSize is the accounted size of the typed state slot.
	stateSize int
}

// New creates a segment over [start, stop) with default parameters.
func New(start, stop int) *Segment {
	s := new(Segment)
	s.Start = start
	s.Stop = stop
	s.Speed = DefaultSpeed
	s.Intensity = DefaultIntensity
	s.Colors[0] = DefaultColor
	s.Reset = true
	return s
}

// Len is the number of cells in the segment, never negative.
func (s *Segment) Len() int {
	if s.Stop < s.Start {
		return 0
	}
	return s.Stop - s.Start
}

// ConsumeReset returns the reset request and clears it.
func (s *Segment) ConsumeReset() bool {
	r := s.Reset
	s.Reset = false
	return r
}

// AllocateData makes the scratch block exactly n bytes. A same-size request keeps
// the contents; any other size reallocates and zero-fills. It returns false when
// the block cannot be allocated, leaving no block.
func (s *Segment) AllocateData(n int) bool {
	if s.data != nil && len(s.data) == n {
		return true
	}
	s.DeallocateData()
	if n <= 0 {
		return false
	}
	if s.DataLimit > 0 && n+s.stateSize > s.DataLimit {
		return false
	}
	s.data = make([]byte, n)
	return true
}

// Data returns the scratch block, nil when none is allocated.
func (s *Segment) Data() []byte {
	return s.data
}

// DeallocateData releases the scratch block.
func (s *Segment) DeallocateData() {
	s.data = nil
}

// State returns the typed per-effect state slot.
func (s *Segment) State() interface{} {
	return s.state
}

// SetState stores typed state accounted as size bytes against DataLimit. It
// returns false, leaving the slot empty, when the limit would be exceeded.
func (s *Segment) SetState(state interface{}, size int) bool {
	if s.DataLimit > 0 && size+len(s.data) > s.DataLimit {
		s.state = nil
		s.stateSize = 0
		return false
	}
	s.state = state
	s.stateSize = size
	return true
}

// Release drops every piece of scratch state.
func (s *Segment) Release() {
	s.data = nil
	s.state = nil
	s.stateSize = 0
}

// Clone copies the parameters onto a new range. The clone has its own scratch
// state and starts with a reset request.
func (s *Segment) Clone(start, stop int) *Segment {
	c := *s
	c.Start = start
	c.Stop = stop
	c.Call = 0
	c.Step = 0
	c.Aux0 = 0
	c.Aux1 = 0
	c.Reset = true
	c.data = nil
	c.state = nil
	c.stateSize = 0
	return &c
}
