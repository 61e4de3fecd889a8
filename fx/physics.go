package fx

import (
	"math/rand"

	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/util"
)

const maxBalls = 8

type ball struct {
	velocity   float64
	height     float64
	lastBounce uint32
	dampening  float64
}

type ballsState struct {
	balls [maxBalls]ball
}

// BouncingBalls drops balls under gravity; each bounce loses energy and dead
// balls are kicked back up. Intensity sets the ball count, speed the time scale.
func BouncingBalls(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n == 0 {
		return FrameTime
	}
	reset := s.Reset
	st, ok := segmentState[ballsState](c, maxBalls*32)
	if !ok {
		return Static(c)
	}
	if reset {
		for i := range st.balls {
			st.balls[i] = ball{lastBounce: c.Now, dampening: 0.90}
		}
		c.Fill(pixel.Black)
	}

	c.FadeToBlackBy(60)

	const gravity = -18.0
	// Launch velocity that just reaches the far end: sqrt(2 * 18 * 1).
	const vMax = 6.0

	count := int(s.Intensity)*(maxBalls-1)/255 + 1
	timeScale := float64(s.Speed) / 350.0
	solid := c.SolidMode()

	for i := 0; i < count; i++ {
		b := &st.balls[i]
		t := float64(c.Now-b.lastBounce) / 1000.0 * timeScale
		h := b.velocity*t + 0.5*gravity*t*t
		if h <= 0 {
			h = 0
			b.velocity *= b.dampening
			if b.velocity < 2.0 {
				b.velocity = vMax * (0.8 + float64(rand.Intn(25))/100.0)
				b.dampening = 0.90 + float64(rand.Intn(10))/100.0
			}
			b.lastBounce = c.Now
		}
		b.height = h

		p := int(h * float64(n-1))
		if p >= n {
			p = n - 1
		}
		if p < 0 {
			p = 0
		}
		col := c.Primary()
		if !solid {
			col = c.ColorFromPalette(uint8(i*(256/maxBalls)), 255)
		}
		col.W = 0
		c.AddTo(p, col)
	}
	return FrameTime
}

const maxDrops = 4

// Drop phases.
const (
	dropInit = iota
	dropForming
	dropFalling
	dropSplash
)

type drop struct {
	pos   float64
	vel   float64
	col   int
	phase int
}

type dripState struct {
	drops [maxDrops]drop
}

// Drip grows drops at the far end of the segment, lets them fall under gravity
// and splash at the start. Intensity sets the number of drops.
func Drip(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	st, ok := segmentState[dripState](c, maxDrops*32)
	if !ok {
		return Static(c)
	}

	bg := s.Colors[1]
	fg := c.Primary()
	if !c.SolidMode() {
		fg = c.ColorFromPalette(uint8(c.Now>>6), 255)
	}
	c.Fill(bg)

	gravity := (-0.0005 - float64(s.Speed)/50000.0) * float64(n-1)
	const source = 12
	count := 1 + int(s.Intensity>>6)
	grow := util.Map(int(s.Speed), 0, 255, 1, 6)

	for j := 0; j < count; j++ {
		d := &st.drops[j]
		if d.phase == dropInit {
			d.pos = float64(n - 1)
			d.vel = 0
			d.col = 0
			d.phase = dropForming
		}

		c.Set(n-1, pixel.Blend(bg, fg, source))

		switch d.phase {
		case dropForming:
			if d.col > 255 {
				d.col = 255
			}
			c.Set(int(d.pos), pixel.Blend(bg, fg, uint8(d.col)))
			d.col += grow
			if int(util.Random8()) < d.col/10 {
				d.phase = dropFalling
				d.col = 255
			}
		case dropFalling, dropSplash:
			if d.pos > 0 {
				d.pos += d.vel
				if d.pos < 0 {
					d.pos = 0
				}
				d.vel += gravity
				tail := 4
				if d.phase == dropSplash {
					tail = 2
				}
				for i := 1; i < tail; i++ {
					c.Set(int(d.pos)+i, pixel.Blend(bg, fg, uint8(d.col/(i*2))))
				}
				c.Set(int(d.pos), pixel.Blend(bg, fg, uint8(d.col)))
				if d.phase == dropSplash {
					c.Set(0, fg)
				}
			} else if d.phase == dropSplash {
				d.phase = dropInit
			} else {
				// Bounce once with a quarter of the impact speed.
				d.phase = dropSplash
				d.vel = -d.vel / 4
				d.pos = d.vel
				d.col = d.col / 2
			}
		}
	}
	return FrameTime
}
