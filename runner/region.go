package runner

import (
	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/segment"
)

// Region is a named sub-range of the output buffer that gets its own runner.
type Region struct {
	ID     string `yaml:"id"`
	Start  int    `yaml:"start"`
	Stop   int    `yaml:"stop"`
	Mirror bool   `yaml:"mirror"`
}

// Options configures a set of runners built by Build.
type Options struct {
	Gamma      float64
	IntervalMs uint32
	Palettes   *palette.Set
	// Base supplies the initial parameters copied into every region's segment.
	Base *segment.Segment
}

// Build creates one runner per region, in order. The first runner is the
// primary. With no regions a single runner covers the whole buffer.
func Build(regions []Region, buffer pixel.Buffer, effect uint8, opts Options) []*Runner {
	if len(regions) == 0 {
		regions = []Region{{Start: 0, Stop: buffer.Len()}}
	}
	base := opts.Base
	if base == nil {
		base = segment.New(0, 0)
	}
	gamma := opts.Gamma
	if gamma <= 0 {
		gamma = palette.ReferenceGamma
	}

	runners := make([]*Runner, 0, len(regions))
	for _, region := range regions {
		start, stop := clampRange(region.Start, region.Stop, buffer.Len())
		seg := base.Clone(start, stop)
		seg.Mirror = region.Mirror
		r := New(region.ID, seg, buffer, opts.Palettes, gamma, effect)
		r.mirrored = region.Mirror
		r.stats.TargetMs = opts.IntervalMs
		runners = append(runners, r)
	}
	if len(runners) > 1 {
		logger.Info("multi region mode", "runners", len(runners))
	}
	return runners
}

func clampRange(start, stop, length int) (int, int) {
	if start < 0 {
		start = 0
	}
	if stop > length {
		stop = length
	}
	if stop < start {
		stop = start
	}
	return start, stop
}
