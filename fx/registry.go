package fx

import (
	"fmt"
	"sort"
)

// Effect renders one frame into the context and returns the delay it would like
// before the next frame, in ms.
type Effect func(*Context) uint16

// Effect identifiers that the engine treats specially or implements.
const (
	IDStatic         uint8 = 0
	IDBlink          uint8 = 1
	IDBreath         uint8 = 2
	IDWipe           uint8 = 3
	IDWipeRandom     uint8 = 4
	IDSweep          uint8 = 6
	IDColorloop      uint8 = 8
	IDRainbow        uint8 = 9
	IDDissolve       uint8 = 18
	IDChase          uint8 = 28
	IDAurora         uint8 = 38
	IDScanner        uint8 = 40
	IDScannerDual    uint8 = 60
	IDPride          uint8 = 63
	IDJuggle         uint8 = 64
	IDFire           uint8 = 66
	IDBPM            uint8 = 68
	IDColortwinkle   uint8 = 74
	IDMeteor         uint8 = 76
	IDRipple         uint8 = 79
	IDBouncingBalls  uint8 = 91
	IDDrip           uint8 = 96
	IDPlasma         uint8 = 97
	IDHeartbeat      uint8 = 100
	IDOcean          uint8 = 101
	IDSunrise        uint8 = 104
	IDPhased         uint8 = 105
	IDNoisePal       uint8 = 107
	IDFlow           uint8 = 110
	IDPowerOn        uint8 = 158
	IDBreatheUp      uint8 = 159
	IDHorizonSweep   uint8 = 161
	IDCurtainSweep   uint8 = 162
	IDStardustSweep  uint8 = 163
	IDTwinPulseSweep uint8 = 165
	IDTransmission   uint8 = 166
	IDStreak         uint8 = 170
	IDTwinkle        uint8 = 171
	IDGradientTrail  uint8 = 172
	IDInfinityStripe uint8 = 173
)

var names = map[uint8]string{
	0: "Solid", 1: "Blink", 2: "Breathe", 3: "Wipe", 4: "Wipe Random", 5: "Random Colors", 6: "Sweep", 7: "Dynamic",
	8: "Colorloop", 9: "Rainbow", 10: "Scan", 11: "Scan Dual", 12: "Fade", 13: "Theater", 14: "Theater Rainbow",
	15: "Running", 16: "Saw", 17: "Twinkle", 18: "Dissolve", 19: "Dissolve Rnd", 20: "Sparkle", 21: "Sparkle Dark",
	22: "Sparkle+", 23: "Strobe", 24: "Strobe Rainbow", 25: "Strobe Mega", 26: "Blink Rainbow", 27: "Android",
	28: "Chase", 29: "Chase Random", 30: "Chase Rainbow", 31: "Chase Flash", 32: "Chase Flash Rnd",
	33: "Chase Rainbow White", 34: "Colorful", 35: "Traffic Light", 36: "Sweep Random", 37: "Running 2",
	38: "Aurora", 39: "Stream", 40: "Scanner", 41: "Lighthouse", 42: "Fireworks", 43: "Rain", 44: "Tetris",
	45: "Fire Flicker", 46: "Gradient", 47: "Loading", 48: "Rolling Balls", 49: "Fairy", 50: "Two Dots",
	51: "Fairy Twinkle", 52: "Running Dual", 54: "Tri Chase", 55: "Tri Wipe", 56: "Tri Fade", 57: "Lightning",
	58: "ICU", 59: "Multi Comet", 60: "Scanner Dual", 61: "Stream 2", 62: "Oscillate", 63: "Pride 2015",
	64: "Juggle", 65: "Palette", 66: "Fire 2012", 67: "Colorwaves", 68: "BPM", 69: "Fill Noise", 70: "Noise 1",
	71: "Noise 2", 72: "Noise 3", 73: "Noise 4", 74: "Colortwinkle", 75: "Lake", 76: "Meteor", 77: "Meteor Smooth",
	78: "Railway", 79: "Ripple", 80: "Twinklefox", 81: "Twinklecat", 82: "Halloween Eyes", 83: "Solid Pattern",
	84: "Solid Pattern Tri", 85: "Spots", 86: "Spots Fade", 87: "Glitter", 88: "Candle", 89: "Starburst",
	90: "Fireworks Starburst", 91: "Bouncing Balls", 92: "Sinelon", 93: "Sinelon Dual", 94: "Sinelon Rainbow",
	95: "Popcorn", 96: "Drip", 97: "Plasma", 98: "Percent", 99: "Ripple Rainbow", 100: "Heartbeat", 101: "Ocean",
	102: "Candle Multi", 103: "Solid Glitter", 104: "Sunrise", 105: "Phased", 106: "Twinkleup", 107: "Noise Pal",
	108: "Sine", 109: "Phased Noise", 110: "Flow", 111: "Chunchun", 112: "Dancing Shadows", 113: "Washing Machine",

	IDStreak:         "Streak",
	IDTwinkle:        "Multi Twinkle",
	IDGradientTrail:  "Gradient Trail",
	IDInfinityStripe: "Infinity Stripe",
	IDPowerOn:        "Power On",
	IDBreatheUp:      "Breathe Up",
	IDHorizonSweep:   "Horizon Sweep",
	IDCurtainSweep:   "Curtain Sweep",
	IDStardustSweep:  "Stardust Sweep",
	IDTwinPulseSweep: "Twin Pulse Sweep",
	IDTransmission:   "Transmission",
}

var algorithms = map[uint8]Effect{
	IDStatic:         Static,
	IDBlink:          Blink,
	IDBreath:         Breath,
	IDWipe:           Wipe,
	IDWipeRandom:     WipeRandom,
	IDSweep:          Sweep,
	IDColorloop:      Colorloop,
	IDRainbow:        RainbowCycle,
	IDDissolve:       Dissolve,
	IDChase:          Chase,
	IDAurora:         Aurora,
	IDScanner:        Scanner,
	IDScannerDual:    ScannerDual,
	IDPride:          Pride,
	IDJuggle:         Juggle,
	IDFire:           Fire,
	IDBPM:            BPM,
	IDColortwinkle:   Colortwinkle,
	IDMeteor:         Meteor,
	IDRipple:         Ripple,
	IDBouncingBalls:  BouncingBalls,
	IDDrip:           Drip,
	IDPlasma:         Plasma,
	IDHeartbeat:      Heartbeat,
	IDOcean:          Pacifica,
	IDSunrise:        Sunrise,
	IDPhased:         Phased,
	IDNoisePal:       NoisePal,
	IDFlow:           Flow,
	IDStreak:         Streak,
	IDTwinkle:        Twinkle,
	IDGradientTrail:  GradientTrail,
	IDInfinityStripe: InfinityStripe,
	IDPowerOn:        PowerOn,
	IDBreatheUp:      BreatheUp,
	// The monochromatic sweeps carry their motion in the intro and outro; in the
	// main phase they hold the primary color.
	IDHorizonSweep:   Static,
	IDCurtainSweep:   Static,
	IDStardustSweep:  Static,
	IDTwinPulseSweep: Static,
	IDTransmission:   Static,
}

// Lookup returns the algorithm for id. Unknown or unimplemented ids render static.
func Lookup(id uint8) Effect {
	if e, ok := algorithms[id]; ok {
		return e
	}
	return Static
}

// Implemented reports whether id has its own algorithm.
func Implemented(id uint8) bool {
	_, ok := algorithms[id]
	return ok
}

// Name returns the display name of an effect id.
func Name(id uint8) string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("Effect %d", id)
}

// ID finds an effect by display name.
func ID(name string) (uint8, bool) {
	for id, n := range names {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// IDs lists the implemented effect ids in ascending order.
func IDs() []uint8 {
	ids := make([]uint8, 0, len(algorithms))
	for id := range algorithms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// BypassesIntro reports effects that carry their own startup animation.
func BypassesIntro(id uint8) bool {
	return id == IDPowerOn || id == IDBreatheUp
}
