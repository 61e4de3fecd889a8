package runner

import (
	"testing"

	"github.com/matt-g-everett/ledfx/fx"
	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
)

func TestBuildTwoRegionsAreIndependent(t *testing.T) {
	strip := pixel.NewStrip(30)
	regions := []Region{
		{ID: "left", Start: 0, Stop: 10},
		{ID: "right", Start: 10, Stop: 30},
	}
	runners := Build(regions, strip, fx.IDFire, Options{})
	if len(runners) != 2 {
		t.Fatalf("expected 2 runners, got %d", len(runners))
	}
	if runners[0].ID != "left" || runners[1].ID != "right" {
		t.Errorf("runners out of order: %q %q", runners[0].ID, runners[1].ID)
	}
	if runners[0].Seg == runners[1].Seg {
		t.Fatal("runners share a segment")
	}
	if runners[0].Seg.Stop > runners[1].Seg.Start {
		t.Errorf("ranges overlap: [%d,%d) [%d,%d)", runners[0].Seg.Start, runners[0].Seg.Stop,
			runners[1].Seg.Start, runners[1].Seg.Stop)
	}

	for now := uint32(0); now < 500; now += 16 {
		for _, r := range runners {
			r.Service(now)
		}
	}
	if len(runners[0].Seg.Data()) != 10 || len(runners[1].Seg.Data()) != 20 {
		t.Errorf("heat maps sized %d and %d, want 10 and 20", len(runners[0].Seg.Data()), len(runners[1].Seg.Data()))
	}
	runners[0].Seg.Data()[0] = 1
	runners[1].Seg.Data()[0] = 2
	if runners[0].Seg.Data()[0] != 1 {
		t.Errorf("scratch blocks alias each other")
	}
}

func TestBuildWithoutRegionsCoversBuffer(t *testing.T) {
	strip := pixel.NewStrip(12)
	runners := Build(nil, strip, fx.IDStatic, Options{})
	if len(runners) != 1 {
		t.Fatalf("expected a single runner, got %d", len(runners))
	}
	if runners[0].Seg.Start != 0 || runners[0].Seg.Stop != 12 {
		t.Errorf("range [%d,%d), want [0,12)", runners[0].Seg.Start, runners[0].Seg.Stop)
	}
}

func TestBuildClampsRegions(t *testing.T) {
	strip := pixel.NewStrip(8)
	runners := Build([]Region{{ID: "long", Start: -2, Stop: 20}}, strip, fx.IDStatic, Options{})
	if runners[0].Seg.Start != 0 || runners[0].Seg.Stop != 8 {
		t.Errorf("range [%d,%d), want [0,8)", runners[0].Seg.Start, runners[0].Seg.Stop)
	}
}

func TestMirrorFlushesReversed(t *testing.T) {
	strip := pixel.NewStrip(20)
	runners := Build([]Region{{ID: "a", Start: 5, Stop: 15, Mirror: true}}, strip, fx.IDStatic, Options{})
	r := runners[0]
	r.Seg.Palette = palette.Rainbow
	r.Service(0)

	for i := 0; i < 10; i++ {
		if got := strip.Get(14 - i); got != r.Pixel(i) {
			t.Fatalf("cell %d flushed to %d as %v, want %v", i, 14-i, got, r.Pixel(i))
		}
	}
	if strip.Get(4) != pixel.Black || strip.Get(15) != pixel.Black {
		t.Errorf("writes escaped the region")
	}
}

func TestServiceCountsCallsAndAdvancesClock(t *testing.T) {
	strip := pixel.NewStrip(4)
	r := Build(nil, strip, fx.IDStatic, Options{})[0]
	r.Seg.Speed = 255
	r.Service(100)
	r.Service(116)
	r.Service(132)
	if r.Seg.Call != 3 {
		t.Errorf("call = %d, want 3", r.Seg.Call)
	}
	// Two 16 ms intervals at speed 255: 32*255/128 = 63 with carry.
	if r.clock.Total() != 63 {
		t.Errorf("virtual time = %d, want 63", r.clock.Total())
	}
	stats := r.Stats()
	if stats.Min != 16 || stats.Max != 16 {
		t.Errorf("frame interval min/max = %d/%d, want 16/16", stats.Min, stats.Max)
	}
}

func TestSetEffectRequestsReset(t *testing.T) {
	strip := pixel.NewStrip(10)
	r := Build(nil, strip, fx.IDFire, Options{})[0]
	r.Service(0)
	if r.Seg.Data() == nil {
		t.Fatal("fire should allocate a heat map")
	}
	r.SetEffect(fx.IDPlasma)
	if !r.Seg.Reset || r.Seg.Data() != nil {
		t.Errorf("switching effect should drop scratch state and request a reset")
	}
	if r.Effect() != fx.IDPlasma {
		t.Errorf("effect = %d", r.Effect())
	}
}

func TestSyncGamma(t *testing.T) {
	r := Build(nil, pixel.NewStrip(1), fx.IDStatic, Options{Gamma: 2.8})[0]
	r.SyncGamma(2.805)
	if r.Gamma().Value() != 2.8 {
		t.Errorf("small drift should not rebuild the table")
	}
	r.SyncGamma(2.2)
	if r.Gamma().Value() != 2.2 {
		t.Errorf("gamma = %v, want 2.2", r.Gamma().Value())
	}
}

func TestReleasedRunnerStopsRendering(t *testing.T) {
	strip := pixel.NewStrip(5)
	r := Build(nil, strip, fx.IDStatic, Options{})[0]
	r.Release()
	r.Release()
	if !r.Released() {
		t.Fatal("runner should report released")
	}
	r.Service(10)
	for i := 0; i < 5; i++ {
		if strip.Get(i) != pixel.Black {
			t.Fatalf("released runner wrote cell %d", i)
		}
	}
}

func TestSelectingSmartRandomRegenerates(t *testing.T) {
	r := Build(nil, pixel.NewStrip(4), fx.IDStatic, Options{})[0]
	r.Seg.Palette = palette.SmartRandom
	r.Service(0)
	first := *r.Palettes().Resolve(palette.SmartRandom, palette.Rainbow, pixel.White)

	r.Service(16)
	if *r.Palettes().Resolve(palette.SmartRandom, palette.Rainbow, pixel.White) != first {
		t.Errorf("the table should be stable while the palette stays selected")
	}

	r.Seg.Palette = palette.Rainbow
	r.Service(32)
	r.Seg.Palette = palette.SmartRandom
	r.Service(48)
	if *r.Palettes().Resolve(palette.SmartRandom, palette.Rainbow, pixel.White) == first {
		t.Errorf("selecting smart random again should generate a new table")
	}
}
