package pixel

import (
	"encoding/binary"
	"sync"
)

// A Buffer is an indexable run of light cells owned by an output driver.
type Buffer interface {
	Len() int
	Get(i int) Color
	Set(i int, c Color)
	// Show flushes the buffer to the physical output, once per frame.
	Show()
}

// A Flusher receives a copy of the pixels every time a Strip is shown.
type Flusher interface {
	Flush(pixels []Color)
}

// Strip is an in-memory Buffer that hands frames to its flushers on Show.
type Strip struct {
	mu       sync.Mutex
	pixels   []Color
	flushers []Flusher
	shown    int
}

// NewStrip creates an instance of a Strip of the given length.
func NewStrip(length int, flushers ...Flusher) *Strip {
	s := new(Strip)
	s.pixels = make([]Color, length)
	s.flushers = flushers
	return s
}

// AddFlusher attaches another output to the strip.
func (s *Strip) AddFlusher(f Flusher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushers = append(s.flushers, f)
}

func (s *Strip) Len() int {
	return len(s.pixels)
}

func (s *Strip) Get(i int) Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.pixels) {
		return Black
	}
	return s.pixels[i]
}

func (s *Strip) Set(i int, c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.pixels) {
		return
	}
	s.pixels[i] = c
}

// Clear sets every cell to black without showing.
func (s *Strip) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pixels {
		s.pixels[i] = Black
	}
}

// Show copies the current frame to every flusher.
func (s *Strip) Show() {
	s.mu.Lock()
	frame := s.snapshot()
	flushers := s.flushers
	s.shown++
	s.mu.Unlock()

	for _, f := range flushers {
		f.Flush(frame)
	}
}

// Pixels returns a copy of the current frame.
func (s *Strip) Pixels() []Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Strip) snapshot() []Color {
	out := make([]Color, len(s.pixels))
	copy(out, s.pixels)
	return out
}

// Shown reports how many frames have been flushed.
func (s *Strip) Shown() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}

// MarshalFrame converts pixels into the ledrx wire format: a little-endian count then RGB triplets.
func MarshalFrame(pixels []Color) []byte {
	data := make([]byte, 2, len(pixels)*3+2)
	binary.LittleEndian.PutUint16(data, uint16(len(pixels)))
	for _, p := range pixels {
		data = append(data, p.R, p.G, p.B)
	}
	return data
}

// MarshalBinary converts the strip into binary data.
func (s *Strip) MarshalBinary() (data []byte, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MarshalFrame(s.pixels), nil
}
