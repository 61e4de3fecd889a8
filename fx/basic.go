package fx

import (
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/segment"
	"github.com/matt-g-everett/ledfx/util"
)

// segmentState fetches the effect's typed state, accounted as size bytes.
func segmentState[T any](c *Context, size int) (*T, bool) {
	return segment.StateOf[T](c.Seg, size, nil)
}

// allocate sizes the segment's scratch block to n bytes. fresh reports a block
// that was just created or a pending reset, so the caller should initialise it.
func allocate(c *Context, n int) (data []byte, fresh bool, ok bool) {
	fresh = len(c.Seg.Data()) != n
	if !c.Seg.AllocateData(n) {
		return nil, false, false
	}
	if c.Seg.ConsumeReset() {
		fresh = true
	}
	return c.Seg.Data(), fresh, true
}

// wledSpeed rescales a speed so that the control midpoint lands where the
// classic 42 fps tuning expected it.
func wledSpeed(speed uint8) uint8 {
	s := int(speed)
	if s <= 128 {
		return uint8(s * 83 / 128)
	}
	return uint8(83 + (s-128)*172/127)
}

func subtractive(col pixel.Color, d uint8) pixel.Color {
	return pixel.Color{R: util.Qsub8(col.R, d), G: util.Qsub8(col.G, d), B: util.Qsub8(col.B, d)}
}

// Blink toggles between the primary color (or the palette) and the background.
// Speed sets the period, intensity the duty cycle.
func Blink(c *Context) uint16 {
	speed := uint32(c.Seg.Speed) * 210 / 255
	cycle := 2000 - speed*7
	prog := c.Now % cycle
	threshold := cycle * (uint32(c.Seg.Intensity) + 25) / 300

	if prog >= threshold {
		c.Fill(c.Seg.Colors[1])
		return FrameTime
	}
	if c.SolidMode() {
		c.Fill(c.Primary())
		return FrameTime
	}
	n := c.Len()
	for i := 0; i < n; i++ {
		c.Set(i, c.ColorFromPalette(uint8(i*255/n), 255))
	}
	return FrameTime
}

// Breath is the standby breathing of well known devices: a slow near parabolic
// swell between a dim floor and full color.
func Breath(c *Context) uint16 {
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	counter := (c.Now * (uint32(c.Seg.Speed>>3) + 10)) & 0xFFFF
	counter = (counter >> 2) + (counter >> 4)

	var v uint32
	if counter < 16384 {
		if counter > 8192 {
			counter = 8192 - (counter - 8192)
		}
		v = uint32(util.Sin16(uint16(counter))) / 103
	}
	lum := uint8(30 + v)

	base := c.Primary()
	if base.IsBlack() {
		base = pixel.White
	}
	solid := c.SolidMode()
	for i := 0; i < n; i++ {
		fg := base
		if !solid {
			fg = c.ColorFromPalette(uint8(i*256/n), 255)
		}
		bg := fg.Scale(54)
		c.Set(i, pixel.Blend(bg, fg, lum))
	}
	return FrameTime
}

// wipe fills the segment from the start with the foreground. With rev set the
// second half of the cycle erases it again from the far end. With random set
// each half cycle picks a new wheel color.
func wipe(c *Context, rev bool, random bool) uint16 {
	s := c.Seg
	n := c.Len()
	if n == 0 {
		return FrameTime
	}
	cycle := 750 + uint32(255-s.Speed)*150
	perc := c.Now % cycle
	prog := perc * 65535 / cycle
	back := prog > 32767
	if back {
		prog -= 32767
	}

	if random {
		if s.ConsumeReset() {
			s.Aux0 = uint16(util.Random8())
			s.Aux1 = uint16(util.Random8())
			s.Step = 0
			if back {
				s.Step = 1
			}
		}
		if back && s.Step == 0 {
			s.Step = 1
			s.Aux1 = s.Aux0
			s.Aux0 = uint16(util.RandomWheelIndex(uint8(s.Aux0)))
		} else if !back && s.Step == 1 {
			s.Step = 0
			s.Aux1 = s.Aux0
			s.Aux0 = uint16(util.RandomWheelIndex(uint8(s.Aux0)))
		}
	} else {
		s.Step = 0
		if back {
			s.Step = 1
		}
	}

	total := int64(prog) * int64(n)
	fadeWidth := int64(s.Intensity)<<8 + 1

	var bg pixel.Color
	if random {
		bg = pixel.Wheel(uint8(s.Aux1))
	}
	solid := c.SolidMode()
	for i := 0; i < n; i++ {
		idx := i
		if rev && back {
			idx = n - 1 - i
		}

		var fg pixel.Color
		switch {
		case random:
			fg = pixel.Wheel(uint8(s.Aux0))
		case solid:
			fg = c.Primary()
		default:
			fg = c.ColorFromPalette(uint8(i*255/n), 255)
		}

		dist := total - int64(i)<<15
		var amount uint8
		switch {
		case dist <= 0:
			amount = 0
		case dist >= fadeWidth:
			amount = 255
		default:
			amount = uint8(dist * 255 / fadeWidth)
		}

		fill, base := fg, bg
		if rev && back {
			fill, base = bg, fg
		}
		c.Set(idx, pixel.Blend(base, fill, amount))
	}
	return FrameTime
}

// Wipe lights the segment one cell after another, then starts again.
func Wipe(c *Context) uint16 {
	return wipe(c, false, false)
}

// WipeRandom wipes successive random colors over each other.
func WipeRandom(c *Context) uint16 {
	return wipe(c, false, true)
}

// Sweep wipes on and then wipes back off from the far end.
func Sweep(c *Context) uint16 {
	return wipe(c, true, false)
}

// Chase runs a block of the primary color over the palette background.
// Intensity sets the block size.
func Chase(c *Context) uint16 {
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	size := 1 + int(c.Seg.Intensity)*n/512
	counter := (c.Now * (uint32(c.Seg.Speed>>2) + 1)) >> 6
	head := int(counter % uint32(n))

	fg := c.Primary()
	if fg.IsBlack() {
		fg = pixel.White
	}
	solid := c.SolidMode()
	for i := 0; i < n; i++ {
		if solid {
			c.Set(i, c.Seg.Colors[1])
		} else {
			c.Set(i, c.PaletteColor(i, true, 255))
		}
	}
	for j := 0; j < size; j++ {
		c.Set((head+j)%n, fg)
	}
	return FrameTime
}

// Heartbeat pulses twice per beat and decays between beats. Speed sets the
// rate, intensity the decay.
func Heartbeat(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n == 0 {
		return FrameTime
	}
	if s.ConsumeReset() {
		s.Step = c.Now
		s.Aux0 = 0
		s.Aux1 = 0
	}
	bpm := 40 + uint32(s.Speed>>3)
	msPerBeat := 60000 / bpm
	secondBeat := msPerBeat / 3

	s.Aux1 = uint16(uint32(s.Aux1) * 2042 / (2048 + uint32(s.Intensity)))

	elapsed := c.Now - s.Step
	if elapsed > secondBeat && s.Aux0 == 0 {
		s.Aux1 = 0xFFFF
		s.Aux0 = 1
	}
	if elapsed > msPerBeat {
		s.Aux1 = 0xFFFF
		s.Aux0 = 0
		s.Step = c.Now
	}

	amount := uint8(255 - s.Aux1>>8)
	solid := c.SolidMode()
	for i := 0; i < n; i++ {
		fg := c.Primary()
		if !solid {
			fg = c.PaletteColor(i, true, 255)
		}
		c.Set(i, pixel.Blend(fg, s.Colors[1], amount))
	}
	return FrameTime
}

// BPM scrolls the palette with a pulsing brightness.
func BPM(c *Context) uint16 {
	n := c.Len()
	stp := uint8(c.Now / 20)
	beat := util.Beatsin8(uint16(c.Seg.Speed), 64, 255, c.Now, 0)
	for i := 0; i < n; i++ {
		c.Set(i, c.ColorFromPalette(stp+uint8(i*2), beat-stp+uint8(i*10)))
	}
	return FrameTime
}
