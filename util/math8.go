package util

import (
	"math"
	"math/rand"
)

// Fixed-point wave and scaling helpers shared by the effects. Time based helpers
// take the clock explicitly rather than reading a global.

var sin8Table [256]uint8

var sin16Base = [8]uint16{0, 6393, 12539, 18204, 23170, 27245, 30273, 32137}
var sin16Slope = [8]uint8{49, 48, 44, 38, 31, 23, 14, 4}

func init() {
	for i := 0; i < 256; i++ {
		v := 128.0 + 127.5*math.Sin(2.0*math.Pi*float64(i)/256.0)
		if v > 255 {
			v = 255
		}
		sin8Table[i] = uint8(v)
	}
}

// Sin8 maps a 0-255 angle to a 0-255 sine.
func Sin8(theta uint8) uint8 {
	return sin8Table[theta]
}

// Cos8 is Sin8 shifted by a quarter turn.
func Cos8(theta uint8) uint8 {
	return sin8Table[theta+64]
}

// Sin16 is the piecewise linear 16-bit sine, range about ±32137.
func Sin16(theta uint16) int16 {
	offset := (theta & 0x3FFF) >> 3
	if theta&0x4000 != 0 {
		offset = 2047 - offset
	}
	section := offset / 256
	b := sin16Base[section]
	m := uint16(sin16Slope[section])
	secoffset8 := uint16(uint8(offset) / 2)
	y := int16(m*secoffset8 + b)
	if theta&0x8000 != 0 {
		y = -y
	}
	return y
}

// Cos16 is Sin16 shifted by a quarter turn.
func Cos16(theta uint16) int16 {
	return Sin16(theta + 16384)
}

func Qadd8(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func Qsub8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return 0
}

func Scale8(i, scale uint8) uint8 {
	return uint8((uint16(i) * uint16(scale)) >> 8)
}

// Scale8Video never scales a nonzero value to zero.
func Scale8Video(i, scale uint8) uint8 {
	r := uint8((uint16(i) * uint16(scale)) >> 8)
	if i != 0 && scale != 0 && r == 0 {
		return 1
	}
	return r
}

func Scale16(i, scale uint16) uint16 {
	return uint16((uint32(i) * uint32(scale)) >> 16)
}

// Dim8Video squares the input, approximating gamma 2.
func Dim8Video(x uint8) uint8 {
	return uint8((uint16(x) * uint16(x)) >> 8)
}

func Triwave8(in uint8) uint8 {
	if in&0x80 != 0 {
		in = 255 - in
	}
	return in << 1
}

func Triwave16(in uint16) uint16 {
	if in < 0x8000 {
		return in * 2
	}
	return 0xFFFF - (in-0x8000)*2
}

// Cubicwave8 is a triangle wave eased at the peaks.
func Cubicwave8(in uint8) uint8 {
	var tri uint16
	if in < 128 {
		tri = uint16(in) * 2
	} else {
		tri = uint16(255-in) * 2
	}
	t2 := (tri * tri) >> 8
	t3 := (t2 * tri) >> 8
	return uint8(3*t2 - 2*t3)
}

// Beat88 is a sawtooth 0-65535 for a Q8.8 bpm at time ms.
func Beat88(bpm88 uint16, ms uint32) uint16 {
	return uint16((uint64(ms) * uint64(bpm88) * 280) >> 16)
}

// Beat16 accepts a plain bpm below 256, otherwise a Q8.8 value.
func Beat16(bpm uint16, ms uint32) uint16 {
	bpm88 := bpm
	if bpm < 256 {
		bpm88 = bpm << 8
	}
	return Beat88(bpm88, ms)
}

func Beat8(bpm uint16, ms uint32) uint8 {
	return uint8(Beat16(bpm, ms) >> 8)
}

func Beatsin88(bpm88 uint16, lowest, highest uint16, ms uint32, phase uint16) uint16 {
	beat := Beat88(bpm88, ms)
	s := int32(Sin16(beat+phase)) + 32768
	return lowest + Scale16(uint16(s), highest-lowest)
}

func Beatsin16(bpm uint16, lowest, highest uint16, ms uint32, phase uint16) uint16 {
	beat := Beat16(bpm, ms)
	s := int32(Sin16(beat+phase)) + 32768
	return lowest + Scale16(uint16(s), highest-lowest)
}

func Beatsin8(bpm uint16, lowest, highest uint8, ms uint32, phase uint8) uint8 {
	return uint8(Beatsin16(bpm, uint16(lowest)*256, uint16(highest)*256, ms, uint16(phase)*256) >> 8)
}

// Hash32 mixes a value into a well distributed 32-bit hash.
func Hash32(x uint32) uint32 {
	x = ((x >> 16) ^ x) * 0x45d9f3b
	x = ((x >> 16) ^ x) * 0x45d9f3b
	return (x >> 16) ^ x
}

func Random8() uint8 {
	return uint8(rand.Intn(256))
}

// Random8n returns [0, lim); zero when lim is zero.
func Random8n(lim uint8) uint8 {
	if lim == 0 {
		return 0
	}
	return uint8(rand.Intn(int(lim)))
}

// Random8Range returns [min, lim); min when the range is empty.
func Random8Range(min, lim uint8) uint8 {
	if min >= lim {
		return min
	}
	return min + uint8(rand.Intn(int(lim-min)))
}

func Random16() uint16 {
	return uint16(rand.Intn(65536))
}

func Random16n(lim uint16) uint16 {
	if lim == 0 {
		return 0
	}
	return uint16(rand.Intn(int(lim)))
}

func Random16Range(min, lim uint16) uint16 {
	if min >= lim {
		return min
	}
	return min + uint16(rand.Intn(int(lim-min)))
}

// RandomWheelIndex picks a wheel position at least 42 steps away from pos.
func RandomWheelIndex(pos uint8) uint8 {
	var r, d uint8
	for loops := 0; d < 42; loops++ {
		if loops >= 15 {
			return pos + 42
		}
		r = Random8()
		x := int(pos) - int(r)
		if x < 0 {
			x = -x
		}
		y := 255 - x
		if x < y {
			d = uint8(x)
		} else {
			d = uint8(y)
		}
	}
	return r
}

// Map scales x from [inMin, inMax] to [outMin, outMax] using integer maths.
func Map(x, inMin, inMax, outMin, outMax int) int {
	if inMax == inMin {
		return outMin
	}
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
