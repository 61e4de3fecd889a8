package fx

import (
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/util"
)

func scanner(c *Context, dual bool) uint16 {
	s := c.Seg
	n := c.Len()
	if n < 1 {
		return 350
	}
	if s.ConsumeReset() {
		c.Fill(pixel.Black)
		s.Aux0 = 0
		s.Aux1 = 0
	}

	// Fractional subtractive decay: Aux1 carries the remainder.
	rate := 2200 - int(s.Intensity)*8
	if rate < 200 {
		rate = 200
	}
	accum := uint32(s.Aux1) + uint32(rate)
	sub := uint8(accum >> 8)
	s.Aux1 = uint16(accum & 0xFF)
	for i := 0; i < n; i++ {
		c.Pixels[i] = subtractive(c.Pixels[i], sub)
	}

	s.Step += uint32(s.Speed>>1) + 1
	pos16 := s.Step & 0xFFFF
	if pos16 > 32767 {
		pos16 = 65535 - pos16
	}
	pos16 <<= 1
	pos := int((pos16 * uint32(n-1)) >> 16)

	last := int(s.Aux0)
	if last >= n || abs(pos-last) > n/2 {
		last = pos
	}
	start, end := last, pos
	if start > end {
		start, end = end, start
	}

	// Without a chosen palette the eye is the classic red.
	red := s.Palette == 0
	for i := start; i <= end; i++ {
		var col pixel.Color
		if red {
			col = pixel.RGB(255, 0, 0)
		} else {
			col = c.ColorFromPalette(uint8(i*255/n), 255)
			col = pixel.Color{R: util.Qadd8(col.R, 80), G: util.Qadd8(col.G, 80), B: util.Qadd8(col.B, 80), W: col.W}
		}
		c.Set(i, col)
		if dual {
			c.Set(n-1-i, col)
		}
	}
	s.Aux0 = uint16(pos)
	return FrameTime
}

// Scanner sweeps a single eye back and forth with a fading tail.
func Scanner(c *Context) uint16 {
	return scanner(c, false)
}

// ScannerDual mirrors a second eye from the far end.
func ScannerDual(c *Context) uint16 {
	return scanner(c, true)
}

// Meteor runs a bright head around the segment and lets the trail decay
// randomly. Intensity sets the trail length.
func Meteor(c *Context) uint16 {
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	speed := uint32(wledSpeed(c.Seg.Speed))
	counter := c.Now * ((speed >> 2) + 8)
	pos := int((uint64(counter)*uint64(n))>>16) % n
	size := 1 + n/20

	decay := 20 - uint8(int(c.Seg.Intensity)*18/255)
	for i := 0; i < n; i++ {
		c.Pixels[i] = subtractive(c.Pixels[i], util.Random8n(decay))
	}

	solid := c.SolidMode()
	for j := 0; j < size; j++ {
		idx := (pos + j) % n
		if solid {
			col := c.Primary()
			if col.IsBlack() {
				col = pixel.White
			}
			c.Set(idx, col)
			continue
		}
		col := c.ColorFromPalette(uint8(idx*10)+uint8(c.Now>>4), 255)
		c.Set(idx, pixel.Color{R: util.Qadd8(col.R, 80), G: util.Qadd8(col.G, 80), B: util.Qadd8(col.B, 80), W: col.W})
	}
	return FrameTime
}

type ripple struct {
	age    uint32
	color  uint8
	center int
	active bool
}

type rippleState struct {
	ripples []ripple
}

// Ripple spawns waves that expand from random points and lose energy as they
// travel. Intensity sets the spawn rate and the maximum number of waves.
func Ripple(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	limit := 1 + int(s.Intensity>>5)
	st, ok := segmentState[rippleState](c, limit*8)
	if !ok {
		return Static(c)
	}
	if len(st.ripples) != limit {
		st.ripples = make([]ripple, limit)
	}

	c.FadeToBlackBy(224)

	if int(util.Random16n(400)) < int(s.Intensity) {
		for i := range st.ripples {
			if st.ripples[i].active {
				continue
			}
			last := int(s.Aux0)
			center := 0
			for attempt := 0; attempt < 5; attempt++ {
				center = int(util.Random16n(uint16(n)))
				if abs(center-last) >= n/4 {
					break
				}
			}
			s.Aux0 = uint16(center)
			st.ripples[i] = ripple{center: center, color: util.Random8(), active: true}
			break
		}
	}

	step := uint32(s.Speed) + 2
	maxAge := uint32(n) * 256
	solid := c.SolidMode()

	for i := range st.ripples {
		r := &st.ripples[i]
		if !r.active {
			continue
		}
		if r.age > maxAge {
			r.active = false
			continue
		}
		radius := int(r.age >> 8)
		if radius > n+6 {
			r.active = false
			continue
		}
		energy := uint8(255 - r.age*255/maxAge)
		col := c.Primary()
		if !solid {
			col = c.ColorFromPalette(r.color, 255)
		}
		col = col.Scale(energy)

		for _, front := range [2]int{r.center + radius, r.center - radius} {
			from, to := front-6, front+6
			if from < 0 {
				from = 0
			}
			if to > n {
				to = n
			}
			for p := from; p < to; p++ {
				ramp := 255 - abs(p-front)*42
				if ramp < 0 {
					ramp = 0
				}
				c.AddTo(p, col.Scale(util.Cubicwave8(uint8(ramp))))
			}
		}
		r.age += step
	}
	return FrameTime
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
