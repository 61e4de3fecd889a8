// Package timing converts irregular host ticks into speed scaled virtual time.
package timing

// SpeedUnity is the speed at which virtual time runs at the real time rate.
const SpeedUnity = 128

// Clock accumulates speed scaled elapsed time. Fractions of a virtual unit are
// carried across ticks so slow speeds on a coarse host clock still advance.
type Clock struct {
	last    uint32
	started bool
	remain  uint64
	total   uint64
}

// NewClock creates an instance of a Clock.
func NewClock() *Clock {
	return new(Clock)
}

// Tick advances the clock to now and returns this tick's virtual delta. The first
// tick only establishes the reference point.
func (c *Clock) Tick(now uint32, speed uint8) uint32 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	elapsed := now - c.last
	c.last = now
	return c.Step(elapsed, speed)
}

// Step adds an explicit real elapsed interval.
func (c *Clock) Step(elapsed uint32, speed uint8) uint32 {
	c.remain += uint64(elapsed) * uint64(speed)
	delta := c.remain / SpeedUnity
	c.remain %= SpeedUnity
	c.total += delta
	return uint32(delta)
}

// Total returns all virtual time emitted so far.
func (c *Clock) Total() uint64 {
	return c.total
}

// Reset forgets the reference point and any carried fraction.
func (c *Clock) Reset() {
	*c = Clock{}
}
