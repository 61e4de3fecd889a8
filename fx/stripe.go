package fx

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/util"
)

// Stripe is one band of colour in an endless procession.
type Stripe struct {
	colour colorful.Color
	length int32
}

// stripeGenerator creates stripes from a colour set, never repeating the
// previous colour. With no colours it picks random hues.
type stripeGenerator struct {
	colours   []colorful.Color
	current   int
	stripeMin int32
	stripeMax int32
}

func (g *stripeGenerator) createStripe() Stripe {
	var colour colorful.Color
	if len(g.colours) < 2 {
		colour = colorful.Hsl(util.RandomRange(0, 360), 1.0, 0.35)
	} else {
		for {
			next := rand.Intn(len(g.colours))
			if next != g.current {
				g.current = next
				break
			}
		}
		colour = g.colours[g.current]
	}

	stripeLength := rand.Int31n(g.stripeMax-g.stripeMin) + g.stripeMin
	return Stripe{colour, stripeLength}
}

type stripeState struct {
	stripes   []Stripe
	generator stripeGenerator
	current   float64
	lastNow   uint32
	started   bool
}

// stripeAt returns the stripe covering offset and where it ends, growing the
// procession as needed.
func (st *stripeState) stripeAt(offset float64) (Stripe, float64) {
	if len(st.stripes) == 0 {
		st.stripes = append(st.stripes, st.generator.createStripe())
	}

	var length int32
	for _, stripe := range st.stripes {
		length += stripe.length
		if offset < float64(length) {
			return stripe, float64(length)
		}
	}

	for offset >= float64(length) {
		stripe := st.generator.createStripe()
		st.stripes = append(st.stripes, stripe)
		length += stripe.length
	}

	return st.stripes[len(st.stripes)-1], float64(length)
}

// InfinityStripe scrolls an endless procession of stripes along the segment,
// stretched toward the far end for a sense of depth. Speed sets the scroll rate,
// intensity the stripe length.
func InfinityStripe(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n == 0 {
		return FrameTime
	}
	st, ok := segmentState[stripeState](c, 512)
	if !ok {
		return Static(c)
	}
	if !st.started {
		st.lastNow = c.Now
		st.started = true
	}

	st.generator.stripeMin = int32(n/8) + int32(s.Intensity)/4 + 2
	st.generator.stripeMax = st.generator.stripeMin*3 + 1
	st.generator.colours = nil
	if !c.SolidMode() {
		for i := 0; i < 8; i++ {
			st.generator.colours = append(st.generator.colours, c.ColorFromPalette(uint8(i*32), 255).Colorful())
		}
	}

	// Cull stripes that have passed.
	toRemove := 0
	for _, stripe := range st.stripes {
		if st.current <= float64(stripe.length) {
			break
		}
		toRemove++
		st.current -= float64(stripe.length)
	}
	if toRemove > 0 {
		st.stripes = st.stripes[toRemove:]
	}

	stripe, end := st.stripeAt(st.current)
	for i := 0; i < n; i++ {
		adjustment := 1.0 + 1.4*(float64(i)/float64(n))
		offset := adjustment*float64(i) + st.current
		if offset >= end {
			stripe, end = st.stripeAt(offset)
		}
		c.Set(i, pixel.FromColorful(stripe.colour))
	}

	pixelsPerMs := 0.002 + float64(s.Speed)/255.0*0.05
	st.current += pixelsPerMs * float64(c.Now-st.lastNow)
	st.lastNow = c.Now
	return FrameTime
}
