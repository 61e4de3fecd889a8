package fx

import (
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/util"
)

const (
	auroraMaxWaves   = 20
	auroraMaxSpeed   = 6
	auroraWidthRatio = 6
	auroraShift      = 16
	auroraScale      = 1 << auroraShift
)

// auroraWave is one soft band of light drifting along the segment. Positions are
// 16.16 fixed point.
type auroraWave struct {
	center    int64
	ageFactor int64
	ttl       uint16
	age       uint16
	width     uint16
	baseAlpha int64
	speed     uint8
	start     int
	end       int
	left      bool
	alive     bool
	color     pixel.Color
}

func (w *auroraWave) init(n int, col pixel.Color) {
	w.ttl = util.Random16Range(500, 1501)
	w.color = col
	w.baseAlpha = int64(util.Random8Range(50, 100)) * auroraScale / 100
	w.age = 0
	w.width = util.Random16Range(uint16(n/20), uint16(n/auroraWidthRatio)) + 1
	w.center = (int64(util.Random8n(101)) << auroraShift) / 100 * int64(n)
	w.left = util.Random8()&1 == 1
	w.speed = util.Random8Range(10, 31)
	w.alive = true
}

func (w *auroraWave) cache() {
	if w.ttl < 2 {
		return
	}
	half := int64(w.ttl >> 1)
	if int64(w.age) < half {
		w.ageFactor = (int64(w.age) << auroraShift) / half
	} else {
		w.ageFactor = (int64(w.ttl-w.age) << auroraShift) / half
	}
	if w.ageFactor >= auroraScale {
		w.ageFactor = auroraScale - 1
	}
	if w.ageFactor < 0 {
		w.ageFactor = 0
	}
	led := int(w.center >> auroraShift)
	w.start = led - int(w.width)
	w.end = led + int(w.width)
}

func (w *auroraWave) colorAt(i int) pixel.Color {
	if i < w.start || i > w.end || w.width == 0 {
		return pixel.Black
	}
	offset := int64(i)<<auroraShift - w.center
	if offset < 0 {
		offset = -offset
	}
	factor := offset / int64(w.width)
	if factor > auroraScale {
		return pixel.Black
	}
	bri := auroraScale - factor
	bri = (bri * w.ageFactor) >> auroraShift
	bri = (bri * w.baseAlpha) >> auroraShift
	ch := func(v uint8) uint8 {
		return uint8((int64(v) * bri) >> auroraShift)
	}
	return pixel.Color{R: ch(w.color.R), G: ch(w.color.G), B: ch(w.color.B), W: ch(w.color.W)}
}

func (w *auroraWave) update(n int, speed uint8) {
	effective := (int64(speed) * 170) >> 8
	step := (int64(w.speed) * auroraMaxSpeed * effective << auroraShift) / (100 * 255 * 4)
	if w.left {
		w.center -= step
	} else {
		w.center += step
	}
	w.age++
	if w.age > w.ttl {
		w.alive = false
		return
	}
	width := int64(w.width) << auroraShift
	if w.left {
		if w.center < -width {
			w.alive = false
		}
	} else if w.center > int64(n)<<auroraShift+width {
		w.alive = false
	}
}

type auroraState struct {
	waves [auroraMaxWaves]auroraWave
}

// Aurora drifts soft additive bands of palette color along the segment.
// Intensity sets how many bands are alive; excess bands fade out quickly.
func Aurora(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}

	var internal int
	if s.Intensity <= 128 {
		internal = int(s.Intensity) * 175 / 128
	} else {
		internal = 175 + (int(s.Intensity)-128)*80/127
	}
	active := 2 + internal*(auroraMaxWaves-2)/255
	s.Aux1 = uint16(active)

	st, ok := segmentState[auroraState](c, auroraMaxWaves*48)
	if !ok {
		return Static(c)
	}

	for i := range st.waves {
		w := &st.waves[i]
		if w.ttl == 0 {
			w.alive = false
		}
		if w.alive {
			if i >= active {
				w.baseAlpha = (w.baseAlpha * 224) >> 8
				if w.baseAlpha < 10 {
					w.alive = false
				}
			}
			w.update(n, s.Speed)
		}
		if !w.alive && i < active {
			w.init(n, c.ColorFromPalette(util.Random8(), 255))
		}
		if w.alive {
			w.cache()
		}
	}

	for i := 0; i < n; i++ {
		mixed := pixel.Black
		for j := range st.waves {
			if st.waves[j].alive {
				mixed = pixel.Add(mixed, st.waves[j].colorAt(i))
			}
		}
		c.Set(i, mixed)
	}
	return FrameTime
}
