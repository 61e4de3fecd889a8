package fx

import (
	"github.com/fogleman/ease"

	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/util"
)

// Sunrise grows a sun from the middle of the segment. Speed 0 holds the full
// sun, 1 to 60 rises over that many minutes, 61 to 120 sets over speed-60
// minutes, and anything faster breathes.
func Sunrise(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	if s.ConsumeReset() {
		s.Step = c.Now
	}

	var stage uint16
	speed := s.Speed
	switch {
	case speed > 120:
		counter := (c.Now >> 1) * (uint32(speed-120)>>1 + 1)
		stage = util.Triwave16(uint16(counter))
	case speed == 0:
		stage = 0xFFFF
	default:
		elapsed := (c.Now - s.Step) / 100
		mins := uint32(speed)
		if mins > 60 {
			mins -= 60
		}
		target := mins * 600
		if elapsed > target {
			elapsed = target
		}
		stage = uint16(elapsed * 65535 / target)
		if speed > 60 {
			stage = 65535 - stage
		}
	}

	for i := 0; i <= n/2; i++ {
		w := util.Triwave16(uint16(uint32(i) * uint32(stage) / uint32(n)))
		w = (w >> 8) + uint16((uint32(w)*uint32(s.Intensity))>>15)
		if w > 240 {
			w = 240
		}
		col := c.ColorFromPalette(uint8(w), 255)
		c.Set(i, col)
		c.Set(n-i-1, col)
	}
	return FrameTime
}

// powerOnDuration is how long the self-starting effects take to reach full
// output, from 3 s at speed 0 down to 0.5 s at 255.
func powerOnDuration(speed uint8) uint32 {
	return 500 + uint32(255-speed)*2500/255
}

func startProgress(c *Context) float64 {
	s := c.Seg
	if s.ConsumeReset() {
		s.Step = c.Now
	}
	d := powerOnDuration(s.Speed)
	return util.Clamp01(float64(c.Now-s.Step) / float64(d))
}

// PowerOn opens from the middle of the segment outward like an old tube set
// warming up, then holds the primary color or palette.
func PowerOn(c *Context) uint16 {
	n := c.Len()
	if n == 0 {
		return FrameTime
	}
	p := ease.OutCubic(startProgress(c))
	solid := c.SolidMode()
	half := float64(n) / 2
	lit := p * half
	for i := 0; i < n; i++ {
		d := float64(i) + 0.5 - half
		if d < 0 {
			d = -d
		}
		col := c.Primary()
		if !solid {
			col = c.PaletteColor(i, true, 255)
		}
		switch {
		case d <= lit:
			c.Set(i, col)
		case d <= lit+1:
			c.Set(i, col.Multiply(lit+1-d))
		default:
			c.Set(i, pixel.Black)
		}
	}
	return FrameTime
}

// BreatheUp fades in with one long breath, then holds.
func BreatheUp(c *Context) uint16 {
	n := c.Len()
	p := ease.InOutSine(startProgress(c))
	solid := c.SolidMode()
	for i := 0; i < n; i++ {
		col := c.Primary()
		if !solid {
			col = c.PaletteColor(i, true, 255)
		}
		c.Set(i, col.Multiply(p))
	}
	return FrameTime
}
