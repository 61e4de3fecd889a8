package palette

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledfx/pixel"
)

// Strategy selects how a smart random palette is generated.
type Strategy int

const (
	// Analogous drifts the hue gently around a random base.
	Analogous Strategy = iota
	// Neon pairs saturated base hues with complementary accents over dark gaps.
	Neon
	// Monochromatic keeps one hue and textures it through lightness.
	Monochromatic
	strategyCount
)

func (s Strategy) String() string {
	switch s {
	case Analogous:
		return "analogous"
	case Neon:
		return "neon"
	case Monochromatic:
		return "monochromatic"
	}
	return "unknown"
}

// Generate builds a 16 stop palette for the strategy. The table is symmetric so
// the wrap from the last stop to the first stays smooth.
func Generate(strategy Strategy, rng *rand.Rand) Palette {
	var p Palette
	base := rng.Float64() * 360.0

	var half [Stops/2 + 1]colorful.Color
	switch strategy {
	case Neon:
		accent := math.Mod(base+180.0, 360.0)
		for i := range half {
			switch i % 4 {
			case 0, 1:
				half[i] = colorful.Hsv(base, 1.0, 1.0)
			case 2:
				half[i] = colorful.Hsv(accent, 1.0, 1.0)
			default:
				half[i] = colorful.Hsv(accent, 1.0, 0.15)
			}
		}
	case Monochromatic:
		for i := range half {
			l := 0.25 + 0.5*rng.Float64()
			half[i] = colorful.Hcl(base, 0.6+0.4*rng.Float64(), l)
		}
	default:
		spread := 20.0 + rng.Float64()*40.0
		for i := range half {
			h := base + spread*math.Sin(float64(i)*math.Pi/float64(Stops/2))
			half[i] = colorful.Hsv(math.Mod(h+360.0, 360.0), 0.75+0.25*rng.Float64(), 1.0)
		}
	}

	for i := 0; i <= Stops/2; i++ {
		c := pixel.FromColorful(half[i])
		p[i] = c
		if i > 0 && i < Stops/2 {
			p[Stops-i] = c
		}
	}
	return p
}
