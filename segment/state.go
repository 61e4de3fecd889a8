package segment

// StateOf returns the typed state of s, creating it with init when the slot is
// empty, holds another type or a reset was requested. size is the accounted
// footprint. The second result is false when the state could not be allocated.
func StateOf[T any](s *Segment, size int, init func(*T)) (*T, bool) {
	reset := s.ConsumeReset()
	if st, ok := s.state.(*T); ok && !reset {
		return st, true
	}
	st := new(T)
	if init != nil {
		init(st)
	}
	if !s.SetState(st, size) {
		// Keep the request so the next frame retries a clean start.
		s.Reset = true
		return nil, false
	}
	return st, true
}
