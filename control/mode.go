package control

import (
	"github.com/matt-g-everett/ledfx/fx"
)

// Mode is an intro or outro animation.
type Mode uint8

const (
	None Mode = iota
	Wipe
	Fade
	Center
	Glitter
	TwinPulse
	Morse
)

var modeNames = [...]string{"None", "Wipe", "Fade", "Center", "Glitter", "Twin Pulse", "Morse Code"}

// ModeOptions lists the intro and outro choice values.
var ModeOptions = modeNames[:]

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return modeNames[None]
}

// ParseMode maps a choice value to a Mode. Unknown values are None and not ok.
func ParseMode(s string) (Mode, bool) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), true
		}
	}
	return None, false
}

// Morse sequences, most significant bit first. A set bit lights the strip for one
// unit.
const (
	IntroMorseMask uint64 = 0b1110111011100011101
	IntroMorseBits        = 19
	OutroMorseMask uint64 = 0b11101110111000101011101000101011101
	OutroMorseBits        = 35
)

// MorseUnit is the length of one Morse unit in ms for a speed or intensity value.
func MorseUnit(rate uint8) uint32 {
	return 80 + uint32(255-rate)*100/255
}

// MorseOn reports whether the sequence is lit elapsed ms after it started. Past
// the end of the sequence it returns hold.
func MorseOn(mask uint64, bits int, unit uint32, elapsed uint32, hold bool) bool {
	if unit == 0 {
		unit = 1
	}
	bit := elapsed / unit
	if bit >= uint32(bits) {
		return hold
	}
	return (mask>>(uint32(bits)-1-bit))&1 == 1
}

var monochromaticModes = map[uint8]Mode{
	fx.IDHorizonSweep:   Wipe,
	fx.IDCurtainSweep:   Center,
	fx.IDStardustSweep:  Glitter,
	fx.IDTwinPulseSweep: TwinPulse,
	fx.IDTransmission:   Morse,
}

// MonochromaticMode returns the intro and outro mode forced by a monochromatic
// effect.
func MonochromaticMode(effect uint8) (Mode, bool) {
	m, ok := monochromaticModes[effect]
	return m, ok
}

// SweepDuration maps a speed value onto a 0.5 s to 10 s sweep.
func SweepDuration(speed float64) uint32 {
	return uint32(500 + speed/255*9500)
}
