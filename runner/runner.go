// Package runner drives one effect over one region of a pixel buffer.
package runner

import (
	"github.com/mgutz/logxi/v1"

	"github.com/matt-g-everett/ledfx/fx"
	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/segment"
	"github.com/matt-g-everett/ledfx/timing"
)

var logger = log.New("runner")

// reportInterval is how often the frame timing report is logged in debug mode.
const reportInterval = 5000

// Runner owns a segment, the buffer it renders into and the time base and gamma
// state its effect sees.
type Runner struct {
	// ID names the region, empty for a whole buffer runner.
	ID    string
	Seg   *segment.Segment
	Debug bool

	buffer    pixel.Buffer
	frame     []pixel.Color
	gamma     *palette.Gamma
	palettes  *palette.Set
	clock     *timing.Clock
	ctx       *fx.Context
	effect    uint8
	paletteID uint8

	// mirrored is the region's own orientation, kept apart from the switch.
	mirrored bool

	lastFrame uint32
	started   bool
	released  bool
	stats     Diagnostics
}

// New creates an instance of a Runner rendering effect onto seg's range of buffer.
func New(id string, seg *segment.Segment, buffer pixel.Buffer, palettes *palette.Set, gamma float64, effect uint8) *Runner {
	r := new(Runner)
	r.ID = id
	r.Seg = seg
	r.buffer = buffer
	r.gamma = palette.NewGamma(gamma)
	r.palettes = palettes
	if r.palettes == nil {
		r.palettes = palette.NewSet(nil)
	}
	r.clock = timing.NewClock()
	r.frame = make([]pixel.Color, seg.Len())
	r.ctx = fx.NewContext(seg, r.frame, r.palettes, r.gamma)
	r.effect = effect
	r.ctx.Effect = effect
	r.stats.reset()
	return r
}

// Effect returns the id of the effect being rendered.
func (r *Runner) Effect() uint8 {
	return r.effect
}

// SetEffect switches algorithm. The segment is asked to reinitialise and any
// scratch state of the previous algorithm is dropped.
func (r *Runner) SetEffect(id uint8) {
	if r.effect == id {
		return
	}
	r.effect = id
	r.ctx.Effect = id
	r.Seg.Release()
	r.Seg.Reset = true
}

// SetColor sets the primary color.
func (r *Runner) SetColor(c pixel.Color) {
	r.Seg.Colors[0] = c
}

// SetMirror applies the mirror switch on top of the region's own orientation.
func (r *Runner) SetMirror(on bool) {
	r.Seg.Mirror = r.mirrored || on
}

// Gamma returns the runner's gamma table.
func (r *Runner) Gamma() *palette.Gamma {
	return r.gamma
}

// SyncGamma rebuilds the gamma table when value drifts from the current one.
func (r *Runner) SyncGamma(value float64) {
	r.gamma.Sync(value)
}

// Palettes returns the palette resolver shared with the effect.
func (r *Runner) Palettes() *palette.Set {
	return r.palettes
}

// PaletteID is the palette actually rendered, with Default resolved.
func (r *Runner) PaletteID() uint8 {
	return r.ctx.PaletteID()
}

// ColorFromPalette looks index up in the palette the effect is rendering with.
func (r *Runner) ColorFromPalette(index uint8, brightness uint8) pixel.Color {
	return r.ctx.ColorFromPalette(index, brightness)
}

// Service advances the clock to now, runs one frame of the effect and writes it
// to the buffer.
func (r *Runner) Service(now uint32) uint16 {
	if r.released {
		return fx.FrameTime
	}
	var frameMs uint32
	if r.started {
		frameMs = now - r.lastFrame
	} else {
		r.stats.last = now
		r.started = true
	}
	r.lastFrame = now
	r.Seg.Call++
	r.stats.record(frameMs)
	if now-r.stats.last >= reportInterval {
		if r.Debug {
			r.stats.report(r.ID, r.effect, now-r.stats.last)
		}
		r.stats.reset()
		r.stats.last = now
	}

	if r.Seg.Palette != r.paletteID {
		r.paletteID = r.Seg.Palette
		if r.paletteID == palette.SmartRandom {
			logger.Debug("smart palette", "runner", r.ID, "strategy", r.palettes.Regenerate().String())
		}
	}

	r.ctx.Now = now
	r.ctx.Delta = r.clock.Tick(now, r.Seg.Speed)
	r.ctx.Virtual = r.clock.Total()
	r.ctx.FrameMs = frameMs

	delay := fx.Lookup(r.effect)(r.ctx)
	r.Flush()
	return delay
}

// Flush writes the logical frame to the buffer, reversed when the segment is
// mirrored.
func (r *Runner) Flush() {
	s := r.Seg
	for i, c := range r.frame {
		idx := s.Start + i
		if s.Mirror {
			idx = s.Stop - 1 - i
		}
		r.buffer.Set(idx, c)
	}
}

// Pixel returns logical cell i of the last rendered frame.
func (r *Runner) Pixel(i int) pixel.Color {
	if i < 0 || i >= len(r.frame) {
		return pixel.Black
	}
	return r.frame[i]
}

// Stats returns the frame timing collected since the last report.
func (r *Runner) Stats() Diagnostics {
	return r.stats
}

// Release frees the segment's scratch state. A released runner renders nothing.
func (r *Runner) Release() {
	if r.released {
		return
	}
	r.released = true
	r.Seg.Release()
	logger.Debug("runner released", "region", r.ID, "effect", fx.Name(r.effect))
}

// Released reports whether Release has been called.
func (r *Runner) Released() bool {
	return r.released
}
