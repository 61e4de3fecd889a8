package lifecycle

import (
	"math"

	"github.com/matt-g-everett/ledfx/control"
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/runner"
	"github.com/matt-g-everett/ledfx/util"
)

// progressOf clamps elapsed/duration into [0, 1]; a zero duration counts as 1 ms.
func progressOf(elapsed, duration uint32) float64 {
	if duration == 0 {
		duration = 1
	}
	return util.Clamp01(float64(elapsed) / float64(duration))
}

// wipeAlpha is how much of the lit side cell pos keeps when the wipe front is at
// exact, with a soft edge blur cells wide.
func wipeAlpha(pos, lead int, exact float64, blur int) float64 {
	if pos <= lead-blur {
		return 1
	}
	if pos <= lead && blur > 0 {
		return util.Clamp01((exact - float64(pos)) / float64(blur))
	}
	return 0
}

// glitterValue is the fixed threshold at which a cell flips during a glitter
// sweep. It depends on the absolute buffer index so regions sparkle differently.
func glitterValue(global int) uint8 {
	h := uint16(global*33 + global*global)
	return uint8(h % 256)
}

// formation is the twin pulse layout: two soft cursors, gaps, then the wipe, all
// measured back from the travelling head.
type formation struct {
	length   float64
	size     float64
	c1Back   float64
	c2Front  float64
	c2Back   float64
	wFront   float64
	wSolid   float64
	wipeFade float64
}

func newFormation(n int) formation {
	f := formation{length: float64(n)}
	f.size = math.Max(f.length*0.08, 3)
	shortGap := math.Max(f.length*0.12, 1)
	longGap := math.Max(f.length*0.10, 1)
	f.wipeFade = math.Max(f.length*0.05, 1)

	f.c1Back = -f.size
	f.c2Front = f.c1Back - shortGap
	f.c2Back = f.c2Front - f.size
	f.wFront = f.c2Back - longGap
	f.wSolid = f.wFront - f.wipeFade
	return f
}

// head is where the front of the formation is at progress.
func (f formation) head(progress float64) float64 {
	return progress * (f.length - f.wSolid)
}

func (f formation) pulse(rel, front, back float64) float64 {
	radius := f.size / 2
	center := (-front + -back) / 2
	d := math.Abs(rel - center)
	if d < radius {
		return 1 - d/radius
	}
	return 0
}

// introAlpha lights the cursors and the wipe behind them; rel is the distance
// behind the head.
func (f formation) introAlpha(rel float64) float64 {
	switch {
	case rel < 0:
		return 0
	case rel <= -f.c1Back:
		return f.pulse(rel, 0, f.c1Back)
	case rel < -f.c2Front:
		return 0
	case rel <= -f.c2Back:
		return f.pulse(rel, f.c2Front, f.c2Back)
	case rel < -f.wFront:
		return 0
	}
	internal := rel + f.wFront
	if internal < f.wipeFade {
		return internal / f.wipeFade
	}
	return 1
}

// outroAlpha keeps the frame ahead of the head, leaves two pulses of it and
// erases everything behind.
func (f formation) outroAlpha(rel float64) float64 {
	switch {
	case rel < 0:
		if rel > -f.wipeFade {
			return -rel / f.wipeFade
		}
		return 1
	case rel <= -f.c1Back:
		return f.pulse(rel, 0, f.c1Back)
	case rel <= -f.c2Back && rel >= -f.c2Front:
		return f.pulse(rel, f.c2Front, f.c2Back)
	}
	return 0
}

// scale255 multiplies every channel by level/255.
func scale255(c pixel.Color, level uint8) pixel.Color {
	l := uint16(level)
	return pixel.Color{
		R: uint8(uint16(c.R) * l / 255),
		G: uint8(uint16(c.G) * l / 255),
		B: uint8(uint16(c.B) * l / 255),
		W: uint8(uint16(c.W) * l / 255),
	}
}

// painter draws an intro frame straight into one runner's range of the buffer.
type painter struct {
	buffer     pixel.Buffer
	r          *runner.Runner
	color      pixel.Color
	brightness float64
	usePalette bool
	reverse    bool
	// intensity sets the wipe blur, zero when the control is missing.
	intensity float64
}

func (p painter) colorAt(i, n int) pixel.Color {
	if !p.usePalette {
		return p.color
	}
	if n < 1 {
		n = 1
	}
	return p.r.ColorFromPalette(uint8(i*255/n), 255).Multiply(p.brightness)
}

func (p painter) set(i int, c pixel.Color) {
	p.buffer.Set(p.r.Seg.Start+i, c)
}

func (p painter) wipe(progress float64, symmetric bool) {
	seg := p.r.Seg
	n := seg.Len()
	logical := n
	if symmetric {
		logical = n / 2
	}
	blur := int(float64(logical) * p.intensity / 255 * 0.5)
	exact := progress * float64(logical+blur)
	lead := int(exact)

	for i := 0; i < logical; i++ {
		pos := i
		if p.reverse {
			pos = logical - 1 - i
		}
		alpha := wipeAlpha(pos, lead, exact, blur)
		c := pixel.Black
		if alpha > 0 {
			c = p.colorAt(i, logical).Multiply(alpha)
		}
		p.set(i, c)
		if symmetric {
			p.buffer.Set(seg.Stop-1-i, c)
		}
	}

	if symmetric && n%2 == 1 {
		mid := n / 2
		switch {
		case progress >= 1 || (p.reverse && lead > 0):
			if p.usePalette {
				p.set(mid, p.r.ColorFromPalette(128, 255))
			} else {
				p.set(mid, p.color)
			}
		default:
			p.set(mid, pixel.Black)
		}
	}
}

func (p painter) fade(progress float64) {
	level := uint8(progress * 255)
	n := p.r.Seg.Len()
	for i := 0; i < n; i++ {
		p.set(i, scale255(p.colorAt(i, n), level))
	}
}

func (p painter) glitter(progress float64) {
	threshold := uint8(progress * 255)
	n := p.r.Seg.Len()
	for i := 0; i < n; i++ {
		c := pixel.Black
		if threshold >= glitterValue(p.r.Seg.Start+i) {
			c = p.colorAt(i, n)
		}
		p.set(i, c)
	}
}

func (p painter) twinPulse(progress float64) {
	n := p.r.Seg.Len()
	f := newFormation(n)
	head := f.head(progress)
	for i := 0; i < n; i++ {
		idx := i
		if p.reverse {
			idx = n - 1 - i
		}
		alpha := util.Clamp01(f.introAlpha(head - float64(idx)))
		c := pixel.Black
		if alpha > 0 {
			c = p.colorAt(idx, n).Multiply(alpha)
		}
		p.set(idx, c)
	}
}

func (p painter) morse(elapsed uint32, speed uint8) {
	on := control.MorseOn(control.IntroMorseMask, control.IntroMorseBits, control.MorseUnit(speed), elapsed, true)
	n := p.r.Seg.Len()
	for i := 0; i < n; i++ {
		c := pixel.Black
		if on {
			c = p.colorAt(i, n)
		}
		p.set(i, c)
	}
}

func (p painter) clear() {
	n := p.r.Seg.Len()
	for i := 0; i < n; i++ {
		p.set(i, pixel.Black)
	}
}

// eraser applies an outro transform to one runner's range of the buffer.
type eraser struct {
	buffer    pixel.Buffer
	start     int
	stop      int
	reverse   bool
	intensity uint8
}

func (e eraser) dim(idx int, alpha float64) {
	if alpha >= 1 {
		return
	}
	if alpha <= 0 {
		e.buffer.Set(idx, pixel.Black)
		return
	}
	e.buffer.Set(idx, e.buffer.Get(idx).Multiply(alpha))
}

func (e eraser) wipe(progress float64, symmetric bool) {
	n := e.stop - e.start
	logical := n
	if symmetric {
		logical = n / 2
	}
	blur := int(float64(logical) * float64(e.intensity) / 255 * 0.5)
	exact := (1 - progress) * float64(logical+blur)
	lead := int(exact)

	for i := 0; i < logical; i++ {
		pos := i
		if e.reverse {
			pos = logical - 1 - i
		}
		alpha := wipeAlpha(pos, lead, exact, blur)
		e.dim(e.start+i, alpha)
		if symmetric {
			e.dim(e.stop-1-i, alpha)
		}
	}
	if symmetric && n%2 == 1 && lead <= 0 {
		e.buffer.Set(e.start+n/2, pixel.Black)
	}
}

func (e eraser) glitter(progress float64) {
	threshold := uint8(progress * 255)
	for g := e.start; g < e.stop; g++ {
		if glitterValue(g) <= threshold {
			e.buffer.Set(g, pixel.Black)
		}
	}
}

func (e eraser) twinPulse(progress float64) {
	n := e.stop - e.start
	f := newFormation(n)
	head := f.head(progress)
	for i := 0; i < n; i++ {
		idx := i
		if e.reverse {
			idx = n - 1 - i
		}
		e.dim(e.start+idx, f.outroAlpha(head-float64(idx)))
	}
}

func (e eraser) morse(elapsed uint32) {
	unit := control.MorseUnit(e.intensity)
	if control.MorseOn(control.OutroMorseMask, control.OutroMorseBits, unit, elapsed, false) {
		return
	}
	for g := e.start; g < e.stop; g++ {
		e.buffer.Set(g, pixel.Black)
	}
}

func (e eraser) fade(progress float64) {
	for g := e.start; g < e.stop; g++ {
		e.dim(g, 1-progress)
	}
}

// scaleRange multiplies a run of buffer cells by f.
func scaleRange(buffer pixel.Buffer, start, stop int, f float64) {
	for g := start; g < stop; g++ {
		buffer.Set(g, buffer.Get(g).Multiply(f))
	}
}
