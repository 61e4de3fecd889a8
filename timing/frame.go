package timing

// FrameTiming is the speed scaled timing pair used by the wave effects.
type FrameTiming struct {
	// DeltaMs is the speed scaled delta for position updates.
	DeltaMs uint32
	// ScaledNow is the speed scaled time base for beat functions.
	ScaledNow uint32
}

// Framer tracks the last frame time for one effect instance.
type Framer struct {
	last uint32
}

// Frame computes the timing for the tick at now. Gaps longer than 100 ms, including
// the first call, are treated as a single 16 ms frame.
func (f *Framer) Frame(now uint32, speed uint8) FrameTiming {
	frametime := now - f.last
	if frametime > 100 {
		frametime = 16
	}
	f.last = now

	s := uint64(speed)
	deltams := (frametime >> 2) + uint32((uint64(frametime)*s)>>7)
	raw := (uint64(now) >> 2) + ((uint64(now) * s) >> 7)
	return FrameTiming{DeltaMs: deltams, ScaledNow: uint32(raw >> 3)}
}
