package fx

import (
	"github.com/matt-g-everett/ledfx/palette"
)

// Per effect defaults applied by autotune and used when a control is missing.

// IsMonochromatic reports the sweep effects whose look comes from a forced intro
// and outro pair rendered in the primary color.
func IsMonochromatic(id uint8) bool {
	switch id {
	case IDHorizonSweep, IDCurtainSweep, IDStardustSweep, IDTwinPulseSweep, IDTransmission:
		return true
	}
	return false
}

var naturalPalettes = map[uint8]uint8{
	// Rainbow
	7: palette.Rainbow, 8: palette.Rainbow, 9: palette.Rainbow, 64: palette.Rainbow, 74: palette.Rainbow,
	79: palette.Rainbow, 87: palette.Rainbow, 90: palette.Rainbow, 105: palette.Rainbow, 107: palette.Rainbow,
	110: palette.Rainbow,

	63: palette.Party, 97: palette.Party,
	66:  palette.Fire,
	101: palette.Ocean,
	38:  palette.Aurora,
	104: palette.HeatColors,
	52:  palette.Sakura,

	IDStreak:         palette.Rainbow,
	IDTwinkle:        palette.Party,
	IDGradientTrail:  palette.Rainbow,
	IDInfinityStripe: palette.Rainbow,
}

var solidByDefault = []uint8{
	0, 1, 2, 3, 4, 6, 15, 16, 18, 20, 21, 22, 23, 24, 25, 26, 28, 40, 54, 60, 68, 76, 91, 95, 96, 98, 100,
	IDPowerOn, IDBreatheUp,
}

var defaultSpeeds = map[uint8]uint8{
	38: 24,
	28: 110,
	54: 60, 104: 60,
	64: 64, 66: 64, 68: 64,
	IDHorizonSweep: 1, IDCurtainSweep: 1, IDStardustSweep: 1,
}

var defaultIntensities = map[uint8]uint8{
	28: 40,
	54: 70,
	66: 160,
	IDHorizonSweep: 1, IDCurtainSweep: 1, IDStardustSweep: 1,
}

func init() {
	for _, id := range solidByDefault {
		naturalPalettes[id] = palette.Solid
	}
}

// NaturalPalette is the palette id Default resolves to for an effect.
func NaturalPalette(id uint8) uint8 {
	if IsMonochromatic(id) {
		return palette.Solid
	}
	if p, ok := naturalPalettes[id]; ok {
		return p
	}
	return palette.Aurora
}

// DefaultSpeed is the speed autotune applies for an effect.
func DefaultSpeed(id uint8) uint8 {
	if v, ok := defaultSpeeds[id]; ok {
		return v
	}
	return 128
}

// DefaultIntensity is the intensity autotune applies for an effect.
func DefaultIntensity(id uint8) uint8 {
	if v, ok := defaultIntensities[id]; ok {
		return v
	}
	return 128
}
