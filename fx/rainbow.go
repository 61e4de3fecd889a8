package fx

import (
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/util"
)

// Colorloop cycles the whole segment through the palette. Intensity below the
// midpoint washes the color toward white.
func Colorloop(c *Context) uint16 {
	counter := (c.Now * (uint32(wledSpeed(c.Seg.Speed)>>2) + 2)) & 0xFFFF
	col := c.ColorFromPalette(uint8(counter>>8), 255)
	if c.Seg.Intensity < 128 {
		mix := uint16(128 - c.Seg.Intensity)
		wash := func(v uint8) uint8 {
			return v + uint8((uint16(255-v)*mix)>>7)
		}
		col = pixel.Color{R: wash(col.R), G: wash(col.G), B: wash(col.B), W: col.W}
	}
	c.Fill(col)
	return FrameTime
}

// RainbowCycle spreads the palette along the segment and scrolls it. Intensity
// sets how many repeats fit on the segment.
func RainbowCycle(c *Context) uint16 {
	n := c.Len()
	if n == 0 {
		return FrameTime
	}
	counter := (c.Now * (uint32(wledSpeed(c.Seg.Speed)>>2) + 2)) & 0xFFFF
	counter >>= 8
	mult := 16 << (c.Seg.Intensity / 29)
	for i := 0; i < n; i++ {
		idx := uint8(i*mult/n) + uint8(counter)
		c.Set(i, c.ColorFromPalette(idx, 255))
	}
	return FrameTime
}

// Pride draws slowly shifting color waves with a breathing brightness depth,
// blended into the previous frame.
func Pride(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	now := c.Now
	duration := uint32(10 + uint32(s.Speed)*7/10)

	pseudo := s.Step
	hue := s.Aux0

	brightDepth := uint32(util.Beatsin88(341, 96, 224, now, 0))
	thetaInc := util.Beatsin88(203, 25*256, 40*256, now, 0)
	msMult := uint32(util.Beatsin88(147, 23, 60, now, 0))
	hueInc := util.Beatsin88(113, 1, 3000, now, 0)

	h16 := hue
	pseudo += duration * msMult
	hue += uint16(duration * uint32(util.Beatsin88(400, 5, 9, now, 0)))
	theta := pseudo

	for i := 0; i < n; i++ {
		h16 += hueInc
		theta += uint32(thetaInc)
		b16 := uint32(int32(util.Sin16(uint16(theta))) + 32768)
		bri16 := b16 * b16 / 65536
		bri8 := uint8(bri16 * brightDepth / 65536)
		bri8 += uint8(255 - brightDepth)

		col := c.ColorFromPalette(uint8(h16>>8), bri8)
		c.BlendTo(i, col, 64)
	}

	s.Step = pseudo
	s.Aux0 = hue
	return FrameTime
}

// Flow paints mirrored palette zones over a scrolling background. Intensity sets
// the number of zones.
func Flow(c *Context) uint16 {
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	var counter uint32
	speed := uint32(c.Seg.Speed) * 7 / 10
	if speed != 0 {
		counter = (c.Now * ((speed >> 2) + 1)) >> 8
	}

	maxZones := n / 6
	if maxZones < 2 {
		maxZones = 2
	}
	zones := int(c.Seg.Intensity) * maxZones >> 8
	if zones&1 == 1 {
		zones++
	}
	if zones < 2 {
		zones = 2
	}
	zoneLen := n / zones
	offset := (n - zones*zoneLen) >> 1

	c.Fill(c.ColorFromPalette(uint8(256-counter), 255))
	if zoneLen == 0 {
		return FrameTime
	}
	for z := 0; z < zones; z++ {
		pos := offset + z*zoneLen
		for i := 0; i < zoneLen; i++ {
			idx := uint8(i*255/zoneLen) - uint8(counter)
			led := zoneLen - 1 - i
			if z&1 == 1 {
				led = i
			}
			c.Set(pos+led, c.ColorFromPalette(idx, 255))
		}
	}
	return FrameTime
}

// Phased is a sine interference pattern. Intensity cuts the dim parts of the
// wave away.
func Phased(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	const allfreq = 16
	phase := int32(s.Step)
	phase += int32(c.Frame().DeltaMs)
	s.Step = uint32(phase)

	cutOff := 255 - s.Intensity
	const modVal = 5
	colorIndex := uint8(c.Now / 64)

	for i := 0; i < n; i++ {
		val := uint16((i + 1) * allfreq)
		val += uint16(int(phase/256) * ((i % modVal) + 1) / 2)
		b := util.Cubicwave8(uint8(val))
		if b > cutOff {
			b -= cutOff
		} else {
			b = 0
		}
		c.Set(i, c.ColorFromPalette(colorIndex, b))

		colorIndex += uint8(256 / n)
		if n > 256 {
			colorIndex++
		}
	}
	return FrameTime
}

// NoisePal maps layered slow waves onto the palette. Intensity zooms in.
func NoisePal(c *Context) uint16 {
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	scale := uint16(15 + c.Seg.Intensity>>2)
	speedFactor := uint32(1 + c.Seg.Speed>>4)
	y := uint16((c.Now * speedFactor) >> 8)

	for i := 0; i < n; i++ {
		x := uint16(i) * scale
		w1 := util.Sin8(uint8((x + y) >> 4))
		w2 := util.Sin8(uint8((x+y*2)>>5) + 85)
		w3 := util.Sin8(uint8((x*2+y)>>5) + 170)
		v := uint8((uint16(w1) + uint16(w2) + uint16(w3)) / 3)
		c.Set(i, c.ColorFromPalette(v, 255))
	}
	return FrameTime
}

// Plasma is a liquid interference pattern whose color indices drift toward their
// targets. Intensity fills in the dark voids.
func Plasma(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	prev, fresh, ok := allocate(c, n)
	if !ok {
		return Static(c)
	}
	if fresh {
		s.Aux0 = uint16(util.Random8n(2))
		for i := range prev {
			prev[i] = 128
		}
	}

	slow := c.Now >> 7
	aux := uint32(s.Aux0)
	phase1 := uint8((slow * (6 + aux)) >> 2)
	phase2 := uint8((slow * (7 + aux)) >> 2)
	thisPhase := int8(util.Sin8(phase1)-128) >> 1
	thatPhase := int8(util.Sin8(phase2)-128) >> 1

	spatial := 2 + int(s.Speed>>6)
	const blendSpeed = 10

	shifted := int(s.Intensity) - 38
	if shifted < 0 {
		shifted = 0
	}
	fill := (shifted * shifted) >> 8

	for i := 0; i < n; i++ {
		sp := uint8(i * spatial)
		in := sp + uint8(thisPhase)
		target := util.Sin8(in) + uint8((int(util.Cos8(in+64))-128)>>1)

		diff := int(target) - int(prev[i])
		step := (diff * blendSpeed) >> 8
		if step == 0 && diff != 0 {
			if diff > 0 {
				step = 1
			} else {
				step = -1
			}
		}
		prev[i] = uint8(int(prev[i]) + step)

		raw := util.Sin8(sp*2 + uint8(thatPhase) + 64)
		g := int(util.Dim8Video(raw))
		bri := g + ((fill * (255 - g)) >> 8)
		if bri < 8 {
			bri = 8
		}
		if bri > 255 {
			bri = 255
		}
		c.Set(i, c.ColorFromPalette(prev[i], uint8(bri)))
	}
	return FrameTime
}

// Juggle weaves eight colored dots in and out of sync over a fading trail.
func Juggle(c *Context) uint16 {
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	fade := (255 - c.Seg.Intensity) / 5
	if fade < 1 {
		fade = 1
	}
	for i := 0; i < n; i++ {
		c.Pixels[i] = subtractive(c.Pixels[i], fade)
	}

	solid := c.SolidMode()
	var hue uint8
	for j := 0; j < 8; j++ {
		bpm := (16 + uint16(c.Seg.Speed)) * uint16(j+7)
		idx := util.Beatsin88(bpm, 0, uint16(n-1), c.Now, 0)
		col := c.Primary()
		if !solid {
			col = c.ColorFromPalette(hue, 255)
		}
		c.AddTo(int(idx), col)
		hue += 32
	}
	return FrameTime
}

// Colortwinkle fades everything toward black and lights random cells from the
// palette. Speed sets the fade, intensity the spawn rate.
func Colortwinkle(c *Context) uint16 {
	n := c.Len()
	if n <= 0 {
		return Static(c)
	}
	if c.Seg.ConsumeReset() {
		c.Fill(pixel.Black)
	}
	fade := 3 + c.Seg.Speed>>5
	for i := 0; i < n; i++ {
		c.Pixels[i] = subtractive(c.Pixels[i], fade)
	}

	loops := n/50 + 1
	for j := 0; j < loops; j++ {
		if util.Random8() <= c.Seg.Intensity>>1 {
			i := int(util.Random16n(uint16(n)))
			col := c.ColorFromPalette(util.Random8(), 255)
			col.W = 0
			c.Set(i, col)
		}
	}
	return FrameTime
}
