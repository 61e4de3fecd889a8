package fx

import (
	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/util"
)

// Two deep water gradients, interpolated once into 256 entry caches.
var pacificaStops = [2][palette.Stops]uint32{
	{0x000507, 0x000409, 0x00030B, 0x00030D, 0x000210, 0x000212, 0x000114, 0x000117,
		0x000019, 0x00001C, 0x000026, 0x000031, 0x00003B, 0x000046, 0x14554B, 0x28AA50},
	{0x000507, 0x000409, 0x00030B, 0x00030D, 0x000210, 0x000212, 0x000114, 0x000117,
		0x000019, 0x00001C, 0x000026, 0x000031, 0x00003B, 0x000046, 0x0C5F52, 0x19BE5F},
}

var pacificaCache [2][256]pixel.Color

func init() {
	for k, stops := range pacificaStops {
		var p palette.Palette
		for i, v := range stops {
			p[i] = pixel.Hex(v)
		}
		for i := 0; i < 256; i++ {
			pacificaCache[k][i] = palette.Lookup(&p, uint8(i), 255)
		}
	}
}

// pacificaLayer adds one layer of waves for cell i.
func pacificaLayer(col pixel.Color, i int, cache int, ciStart uint16, waveScale uint16, bri uint8, offset uint16, intensity uint8) pixel.Color {
	half := (waveScale >> 1) + 20
	angle := offset + uint16((32+int(intensity>>2))*i)

	s16 := uint16(int32(util.Sin16(angle)) + 32768)
	cs := util.Scale16(s16, half) + half
	ci := ciStart + uint16((uint32(cs)*uint32(i+64))>>4)

	raw := uint16(int32(util.Sin16(ci)) + 32768)
	lo := uint8(raw >> 8)
	frac := uint32(raw & 0xFF)
	hi := lo + 1
	a := pacificaCache[cache][util.Scale8(lo, 240)]
	b := pacificaCache[cache][util.Scale8(hi, 240)]

	smooth := uint8((frac * frac * (768 - 2*frac)) >> 16)
	layer := pixel.Blend(a, b, smooth).Scale(bri)
	layer.W = 0
	return pixel.Add(col, layer)
}

func pacificaWhitecaps(col pixel.Color, wave uint8, base uint8) pixel.Color {
	threshold := util.Scale8(util.Sin8(wave), 20) + base
	l := uint8((uint16(col.R) + uint16(col.G) + uint16(col.B)) / 3)
	if l <= threshold {
		return col
	}
	over := l - threshold
	over2 := util.Qadd8(over, over)
	return pixel.Color{
		R: util.Qadd8(col.R, over),
		G: util.Qadd8(col.G, over2),
		B: util.Qadd8(col.B, util.Qadd8(over2, over2)),
	}
}

// Pacifica layers gentle ocean waves over a teal floor. It runs on the speed
// scaled virtual clock so a slow speed really slows the water down.
func Pacifica(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	t := uint32(c.Virtual)
	if t < 1 {
		t = 1
	}
	delta := c.Delta

	ci1 := uint32(s.Aux0)
	ci2 := uint32(s.Aux1)
	ci3 := s.Step & 0xFFFF
	ci4 := s.Step >> 16

	sf1 := uint32(util.Beatsin16(3, 179, 269, t, 0))
	sf2 := uint32(util.Beatsin16(4, 179, 269, t, 0))
	d1 := (delta * sf1) >> 8
	d2 := (delta * sf2) >> 8
	d21 := (d1 + d2) >> 1

	ci1 += d1 * uint32(util.Beatsin88(1011, 10, 13, t, 0))
	ci2 -= d21 * uint32(util.Beatsin88(777, 8, 11, t, 0))
	ci3 -= d1 * uint32(util.Beatsin88(501, 5, 7, t, 0))
	ci4 -= d2 * uint32(util.Beatsin88(257, 4, 6, t, 0))

	s.Aux0 = uint16(ci1)
	s.Aux1 = uint16(ci2)
	s.Step = (ci4&0xFFFF)<<16 | ci3&0xFFFF

	base := util.Beatsin8(9, 55, 65, t, 0)
	wave := util.Beat8(7, t)

	w1Scale := util.Beatsin16(3, 11*256, 14*256, t, 0)
	w1Bri := util.Beatsin8(10, 70, 130, t, 0)
	w1Off := 0 - util.Beat16(301, t)
	w2Scale := util.Beatsin16(4, 6*256, 9*256, t, 0)
	w2Bri := util.Beatsin8(17, 40, 80, t, 0)
	w2Off := util.Beat16(401, t)
	w3Scale := util.Beatsin16(5, 8*256, 12*256, t, 0)
	w3Bri := util.Beatsin8(13, 50, 100, t, 0)
	w3Off := util.Beat16(503, t)

	in := s.Intensity
	for i := 0; i < n; i++ {
		col := pixel.RGB(8, 32, 48)
		col = pacificaLayer(col, i, 0, uint16(ci1), w1Scale, w1Bri, w1Off, in)
		col = pacificaLayer(col, i, 1, uint16(ci2), w2Scale, w2Bri, w2Off, in)
		col = pacificaLayer(col, i, 0, uint16(ci3), w3Scale, w3Bri, w3Off, in)
		col = pacificaWhitecaps(col, wave, base)

		// Deepen the valleys but keep a teal floor.
		col.B = util.Scale8(col.B, 200) | 12
		col.G = util.Scale8(col.G, 220) | 8
		col.R |= 2

		col = pixel.Color{R: util.Qadd8(col.R, col.R), G: util.Qadd8(col.G, col.G), B: util.Qadd8(col.B, col.B)}
		c.Set(i, col)
		wave += 7
	}
	return FrameTime
}
