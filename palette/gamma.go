package palette

import (
	"math"

	"github.com/matt-g-everett/ledfx/pixel"
)

// ReferenceGamma is the exponent the effect constants were tuned against.
const ReferenceGamma = 2.8

const gammaEpsilon = 1e-6

const minGamma = 0.1

// gammaDrift is how far an exponent may move before Sync rebuilds the table.
const gammaDrift = 0.01

// A GammaSource reports the exponent currently in force, normally the light's.
type GammaSource interface {
	Gamma() float64
}

// FixedGamma is a GammaSource that never changes.
type FixedGamma float64

func (f FixedGamma) Gamma() float64 {
	return float64(f)
}

// Gamma is a brightness correction table plus the helpers that keep perceived
// effect rates stable when the exponent changes.
type Gamma struct {
	value float64
	lut   [256]uint8
}

// NewGamma creates an instance of a Gamma table for the exponent. Exponents
// below 0.1 are raised to 0.1.
func NewGamma(value float64) *Gamma {
	g := new(Gamma)
	g.Set(value)
	return g
}

// Set rebuilds the table for a new exponent.
func (g *Gamma) Set(value float64) {
	if value < minGamma {
		value = minGamma
	}
	g.value = value
	for i := 0; i < 256; i++ {
		g.lut[i] = uint8(math.Round(255.0 * math.Pow(float64(i)/255.0, value)))
	}
}

// Sync rebuilds the table when value has drifted from the current exponent and
// reports whether it did.
func (g *Gamma) Sync(value float64) bool {
	if value < minGamma {
		value = minGamma
	}
	if math.Abs(g.value-value) <= gammaDrift {
		return false
	}
	g.Set(value)
	return true
}

// Value returns the exponent.
func (g *Gamma) Value() float64 {
	return g.value
}

func (g *Gamma) isReference() bool {
	return math.Abs(g.value-ReferenceGamma) < gammaEpsilon
}

// Apply corrects a single channel.
func (g *Gamma) Apply(v uint8) uint8 {
	return g.lut[v]
}

// Correct corrects every channel of a color.
func (g *Gamma) Correct(c pixel.Color) pixel.Color {
	return pixel.Color{R: g.lut[c.R], G: g.lut[c.G], B: g.lut[c.B], W: g.lut[c.W]}
}

// FloorShift converts a minimum visible level so it stays equally visible.
func (g *Gamma) FloorShift(x uint8) uint8 {
	if g.isReference() || x == 0 || x == 255 {
		return x
	}
	v := 255.0 * math.Pow(float64(x)/255.0, ReferenceGamma/g.value)
	return clampByte(math.Round(v))
}

// FadeFactor converts a per-frame retention factor (x/256) so trails decay at the
// same perceived rate.
func (g *Gamma) FadeFactor(x uint8) uint8 {
	if g.isReference() || x == 0 {
		return x
	}
	v := 256.0 * math.Pow(float64(x)/256.0, ReferenceGamma/g.value)
	return clampByte(math.Round(v))
}

// SubFactor converts a linear per-frame decrement. Nonzero steps never become zero.
func (g *Gamma) SubFactor(x uint8) uint8 {
	if g.isReference() || x == 0 {
		return x
	}
	v := math.Round(float64(x) * ReferenceGamma / g.value)
	if v < 1 {
		v = 1
	}
	return clampByte(v)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
