package palette

import (
	"math/rand"
	"testing"

	"github.com/matt-g-everett/ledfx/pixel"
)

func TestLookupCanonicalStops(t *testing.T) {
	for id, p := range fixed {
		for stop := 0; stop < Stops; stop++ {
			got := Lookup(p, uint8(stop*16), 255)
			if got != p[stop] {
				t.Errorf("palette %d stop %d: got %+v, want %+v", id, stop, got, p[stop])
			}
		}
	}
}

func TestLookupInterpolatesAndWraps(t *testing.T) {
	p := SolidPalette(pixel.Black)
	p[15] = pixel.RGB(160, 0, 0)
	p[0] = pixel.RGB(0, 0, 0)

	// Halfway between the last stop and the wrapped first stop.
	got := Lookup(&p, 0xF8, 255)
	if got.R != 80 {
		t.Errorf("expected wrap interpolation to 80, got %d", got.R)
	}

	dim := Lookup(&p, 0xF0, 127)
	if dim.R != 80 {
		t.Errorf("expected half brightness 80, got %d", dim.R)
	}
}

func TestSolidReturnsPrimary(t *testing.T) {
	s := NewSet(nil)
	primary := pixel.RGB(12, 200, 99)
	for _, id := range []uint8{Solid, SolidSelect} {
		p := s.Resolve(id, Aurora, primary)
		for i := 0; i < 256; i++ {
			if got := Lookup(p, uint8(i), 255); got != primary {
				t.Fatalf("solid palette %d index %d: got %+v", id, i, got)
			}
		}
	}
}

func TestDefaultResolvesToNatural(t *testing.T) {
	s := NewSet(nil)
	if got := s.Resolve(Default, Fire, pixel.White); got != Fixed(Fire) {
		t.Errorf("Default should resolve to the natural palette")
	}
	if got := s.Resolve(200, Fire, pixel.White); got != &rainbow {
		t.Errorf("unknown ids should fall back to rainbow")
	}
}

func TestNamesRoundTrip(t *testing.T) {
	for _, name := range Options {
		id := ID(name)
		if name == "Default" {
			if id != Default {
				t.Errorf("Default mapped to %d", id)
			}
			continue
		}
		if Name(id) != name {
			t.Errorf("ID(%q) = %d, Name = %q", name, id, Name(id))
		}
	}
	if ID("Nope") != Default {
		t.Errorf("unknown names should map to 0")
	}
	if ID("None") != Solid {
		t.Errorf("None should map to solid")
	}
}

func TestSmartRandomStrategies(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for s := Analogous; s < strategyCount; s++ {
		p := Generate(s, rng)
		for i := 1; i < Stops/2; i++ {
			if p[i] != p[Stops-i] {
				t.Errorf("%v palette not symmetric at %d", s, i)
			}
		}
		lit := false
		for _, c := range p {
			if !c.IsBlack() {
				lit = true
			}
		}
		if !lit {
			t.Errorf("%v palette is entirely black", s)
		}
	}

	set := NewSet(rng)
	first := set.Resolve(SmartRandom, Aurora, pixel.White)
	again := set.Resolve(SmartRandom, Aurora, pixel.White)
	if *first != *again {
		t.Errorf("smart random should be stable until regenerated")
	}
}

func TestUnseededSetsDiffer(t *testing.T) {
	a := NewSet(nil)
	b := NewSet(nil)
	a.Regenerate()
	b.Regenerate()
	if *a.Resolve(SmartRandom, Aurora, pixel.White) == *b.Resolve(SmartRandom, Aurora, pixel.White) {
		t.Errorf("two unseeded sets generated the same smart random table")
	}
}
