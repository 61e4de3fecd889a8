package pixel

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a single RGBW light cell.
type Color struct {
	R uint8
	G uint8
	B uint8
	W uint8
}

var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// RGB creates a Color with an unused white channel.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex creates a Color from a packed 0xWWRRGGBB value.
func Hex(c uint32) Color {
	return Color{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), W: uint8(c >> 24)}
}

// Uint32 packs the color as 0xWWRRGGBB.
func (c Color) Uint32() uint32 {
	return uint32(c.W)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0 && c.W == 0
}

// Scale multiplies every channel by scale/256.
func (c Color) Scale(scale uint8) Color {
	s := uint16(scale)
	return Color{
		R: uint8(uint16(c.R) * s >> 8),
		G: uint8(uint16(c.G) * s >> 8),
		B: uint8(uint16(c.B) * s >> 8),
		W: uint8(uint16(c.W) * s >> 8),
	}
}

// Brightness scales by bri where 255 leaves the color unchanged.
func (c Color) Brightness(bri uint8) Color {
	s := uint16(bri) + 1
	return Color{
		R: uint8(uint16(c.R) * s >> 8),
		G: uint8(uint16(c.G) * s >> 8),
		B: uint8(uint16(c.B) * s >> 8),
		W: uint8(uint16(c.W) * s >> 8),
	}
}

// Multiply scales by a float factor in [0, 1].
func (c Color) Multiply(f float64) Color {
	if f <= 0 {
		return Black
	}
	if f >= 1 {
		return c
	}
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		W: uint8(float64(c.W) * f),
	}
}

// Fade darkens the color by amount/256 toward black.
func (c Color) Fade(amount uint8) Color {
	return c.Scale(255 - amount)
}

// Add is a saturating per-channel sum.
func Add(a, b Color) Color {
	return Color{R: qadd(a.R, b.R), G: qadd(a.G, b.G), B: qadd(a.B, b.B), W: qadd(a.W, b.W)}
}

func qadd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// Blend mixes a toward b by amount/255. The endpoints are exact.
func Blend(a, b Color, amount uint8) Color {
	switch amount {
	case 0:
		return a
	case 255:
		return b
	}
	inv := uint16(255 - amount)
	amt := uint16(amount)
	return Color{
		R: uint8((uint16(a.R)*inv + uint16(b.R)*amt) >> 8),
		G: uint8((uint16(a.G)*inv + uint16(b.G)*amt) >> 8),
		B: uint8((uint16(a.B)*inv + uint16(b.B)*amt) >> 8),
		W: uint8((uint16(a.W)*inv + uint16(b.W)*amt) >> 8),
	}
}

// Lerp mixes a toward b by t in [0, 1].
func Lerp(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), W: mix(a.W, b.W)}
}

// Colorful converts to a go-colorful color, dropping the white channel.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// FromColorful clamps a go-colorful color into a Color.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// HSV converts 8-bit hue/saturation/value using the six region integer mapping.
func HSV(h, s, v uint8) Color {
	if s == 0 {
		return Color{R: v, G: v, B: v}
	}
	region := h / 43
	remainder := (h - region*43) * 6

	vv := uint16(v)
	p := uint8((vv * uint16(255-s)) >> 8)
	q := uint8((vv * (255 - (uint16(s)*uint16(remainder))>>8)) >> 8)
	t := uint8((vv * (255 - (uint16(s)*uint16(255-remainder))>>8)) >> 8)

	switch region {
	case 0:
		return Color{R: v, G: t, B: p}
	case 1:
		return Color{R: q, G: v, B: p}
	case 2:
		return Color{R: p, G: v, B: t}
	case 3:
		return Color{R: p, G: q, B: v}
	case 4:
		return Color{R: t, G: p, B: v}
	default:
		return Color{R: v, G: p, B: q}
	}
}

// Wheel maps 0-255 onto a red, green, blue color wheel.
func Wheel(pos uint8) Color {
	pos = 255 - pos
	switch {
	case pos < 85:
		return Color{R: 255 - pos*3, G: 0, B: pos * 3}
	case pos < 170:
		pos -= 85
		return Color{R: 0, G: pos * 3, B: 255 - pos*3}
	default:
		pos -= 170
		return Color{R: pos * 3, G: 255 - pos*3, B: 0}
	}
}

// FoldWhite adds the white channel onto RGB, for outputs without a white LED.
func (c Color) FoldWhite() Color {
	if c.W == 0 {
		return c
	}
	w := Color{R: c.W, G: c.W, B: c.W}
	c.W = 0
	return Add(c, w)
}
