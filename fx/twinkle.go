package fx

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/util"
)

// twinkleParticle is one cell that rests on a background colour and now and then
// scintillates toward a bright peak, taking on a new colour on the way down.
type twinkleParticle struct {
	lut        []float64
	current    int
	running    bool
	colour     colorful.Color
	nextColour colorful.Color
}

func newTwinkleParticle(colour colorful.Color, memoizer util.Memoizer, speed uint8) *twinkleParticle {
	p := new(twinkleParticle)
	p.colour = colour
	p.nextColour = colour
	p.updateLut(memoizer, speed)
	return p
}

// updateLut picks a new scintillation length; faster speeds make shorter ones.
func (p *twinkleParticle) updateLut(memoizer util.Memoizer, speed uint8) {
	span := 24 - int(speed)/16
	p.lut = util.GenerateLutMemoized((rand.Intn(span)+6)*2, memoizer)
}

func (p *twinkleParticle) increment(memoizer util.Memoizer, speed uint8) {
	if p.running {
		p.current++
		if p.current > len(p.lut)/2 {
			p.colour = p.nextColour
		}

		if p.current >= len(p.lut)-1 {
			p.current = 0
			p.running = false

			// New length every time a scintillation finishes.
			p.updateLut(memoizer, speed)
		}
	}
}

func (p *twinkleParticle) scintillate() bool {
	result := !p.running
	p.running = true
	return result
}

func (p *twinkleParticle) currentColour(peak float64) colorful.Color {
	if !p.running {
		return p.colour
	}
	gain := p.lut[p.current]
	h, c, l := p.colour.Hcl()

	// Lift the luminance toward the peak by the table's gain.
	lumDiff := peak - l
	return colorful.Hcl(h, c, l+(lumDiff*gain))
}

type twinkleState struct {
	particles []*twinkleParticle
	memoizer  util.Memoizer
	colours   []colorful.Color
	palette   uint8
}

// twinkleColours samples the palette into a small set of dim background
// colours, or the primary color alone in solid mode.
func twinkleColours(c *Context) []colorful.Color {
	if c.SolidMode() {
		return []colorful.Color{c.Primary().Colorful()}
	}
	colours := make([]colorful.Color, 0, 8)
	for i := 0; i < 8; i++ {
		colours = append(colours, c.ColorFromPalette(uint8(i*32), 255).Colorful())
	}
	return colours
}

// Twinkle rests every cell on a palette colour and lets random cells sparkle.
// Intensity sets how often a cell starts to sparkle, speed how fast it does.
func Twinkle(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n == 0 {
		return FrameTime
	}
	st, ok := segmentState[twinkleState](c, n*16)
	if !ok {
		return Static(c)
	}
	if st.memoizer == nil {
		st.memoizer = util.Memoizer{}
	}
	if st.colours == nil || st.palette != c.PaletteID() || c.SolidMode() {
		st.colours = twinkleColours(c)
		st.palette = c.PaletteID()
	}
	random := func() colorful.Color {
		return st.colours[rand.Intn(len(st.colours))]
	}
	if len(st.particles) != n {
		st.particles = make([]*twinkleParticle, n)
		for i := range st.particles {
			st.particles[i] = newTwinkleParticle(random(), st.memoizer, s.Speed)
		}
	}

	chance := 2000 - int(s.Intensity)*7
	const peak = 0.6
	for i, p := range st.particles {
		if rand.Intn(chance) == 0 {
			if p.scintillate() {
				p.nextColour = random()
			}
		}

		p.increment(st.memoizer, s.Speed)
		col := pixel.FromColorful(p.currentColour(peak))
		c.Set(i, col)
	}
	return FrameTime
}
