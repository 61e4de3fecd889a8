package runner

import (
	"math"

	"github.com/matt-g-everett/ledfx/fx"
)

// Diagnostics accumulates frame interval statistics between reports.
type Diagnostics struct {
	Frames uint32
	Min    uint32
	Max    uint32
	Sum    uint32
	// TargetMs is the tick interval the host is aiming for.
	TargetMs uint32

	last uint32
}

func (d *Diagnostics) reset() {
	d.Frames = 0
	d.Min = math.MaxUint32
	d.Max = 0
	d.Sum = 0
}

func (d *Diagnostics) record(frameMs uint32) {
	d.Frames++
	if frameMs == 0 || frameMs >= 10000 {
		return
	}
	if frameMs < d.Min {
		d.Min = frameMs
	}
	if frameMs > d.Max {
		d.Max = frameMs
	}
	d.Sum += frameMs
}

// Mean is the average frame interval in ms.
func (d Diagnostics) Mean() uint32 {
	if d.Frames == 0 {
		return 0
	}
	return d.Sum / d.Frames
}

func (d *Diagnostics) report(id string, effect uint8, window uint32) {
	if window == 0 {
		window = 1
	}
	fastest := d.Min
	if fastest == math.MaxUint32 {
		fastest = 0
	}
	fps := d.Frames * 1000 / window
	logger.Debug("frame timing", "region", id, "effect", fx.Name(effect), "fps", fps,
		"min", fastest, "mean", d.Mean(), "max", d.Max, "target", d.TargetMs)
}
