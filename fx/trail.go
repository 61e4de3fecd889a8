package fx

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
)

// GradientTable stores a look-up table of hues at increasing positions.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// HueGradient is the pink, red, orange, yellow, green, turquoise, blue and violet
// loop the trail uses when no palette is chosen.
var HueGradient = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},
	{87.0, 0.14},
	{88.0, 0.28},
	{98.0, 0.42},
	{180.0, 0.56},
	{190.0, 0.70},
	{320.0, 0.84},
	{328.0, 0.91},
	{360.0, 1.0},
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Past the last keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// GradientFromPalette turns the stops of p into a hue table. Hues are unwrapped
// so consecutive stops take the short way round the colour wheel.
func GradientFromPalette(p *palette.Palette) GradientTable {
	g := make(GradientTable, 0, palette.Stops+1)
	prev := 0.0
	for i := 0; i <= palette.Stops; i++ {
		h, _, _ := p[i%palette.Stops].Colorful().Hcl()
		if i > 0 {
			for h-prev > 180 {
				h -= 360
			}
			for prev-h > 180 {
				h += 360
			}
		}
		g = append(g, struct {
			Hue float64
			Pos float64
		}{h, float64(i) / palette.Stops})
		prev = h
	}
	return g
}

type trailState struct {
	current float64
	lastNow uint32
	started bool
}

// GradientTrail cycles a hue gradient along the segment. Intensity sets the
// trail length, speed how fast it moves.
func GradientTrail(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n == 0 {
		return FrameTime
	}
	st, ok := segmentState[trailState](c, 24)
	if !ok {
		return Static(c)
	}
	if !st.started {
		st.lastNow = c.Now
		st.started = true
	}

	gradient := HueGradient
	if !c.SolidMode() && s.Palette != palette.Default {
		gradient = GradientFromPalette(c.Palette())
	}

	trailLength := 20 + float64(s.Intensity)*float64(n)/255
	const saturation = 1.0
	const luminance = 0.5
	for i := 0; i < n; i++ {
		t := math.Mod(float64(i+n)-st.current, trailLength) / trailLength
		if t < 0 {
			t += 1
		}
		c.Set(i, pixel.FromColorful(gradient.GetColor(t, saturation, luminance)))
	}

	pixelsPerMs := 0.005 + float64(s.Speed)/255.0*0.12
	st.current += pixelsPerMs * float64(c.Now-st.lastNow)
	st.current = math.Mod(st.current, trailLength)
	st.lastNow = c.Now
	return FrameTime
}
