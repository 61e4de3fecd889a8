package lifecycle

import (
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/util"
)

// softness is the width of each pixel's blend window as a fraction of the
// cross-fade.
const softness = 0.2

// crossfade dissolves the last intro frame into the main effect, each pixel
// switching at its own hashed moment.
type crossfade struct {
	start    uint32
	duration uint32
	snapshot []pixel.Color
}

func newCrossfade(buffer pixel.Buffer, start, duration uint32) *crossfade {
	x := &crossfade{start: start, duration: duration}
	if x.duration == 0 {
		x.duration = 1
	}
	x.snapshot = make([]pixel.Color, buffer.Len())
	for i := range x.snapshot {
		x.snapshot[i] = buffer.Get(i)
	}
	return x
}

func (x *crossfade) progress(now uint32) float64 {
	return float64(now-x.start) / float64(x.duration) * (1 + softness)
}

func (x *crossfade) threshold(i int) float64 {
	return float64(util.Hash32(uint32(i)+x.start)&0xFF) / 255
}

// blend mixes the snapshot over the freshly rendered main frame in buffer and
// reports whether the cross-fade has finished.
func (x *crossfade) blend(buffer pixel.Buffer, now uint32) bool {
	p := x.progress(now)
	if p >= 1+softness {
		return true
	}
	n := buffer.Len()
	if len(x.snapshot) < n {
		n = len(x.snapshot)
	}
	for i := 0; i < n; i++ {
		mix := util.Clamp01((p - x.threshold(i)) / softness)
		buffer.Set(i, pixel.Lerp(x.snapshot[i], buffer.Get(i), mix))
	}
	return false
}
