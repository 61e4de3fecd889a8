package palette

import (
	"testing"
)

func TestGammaHelpersIdentityAtReference(t *testing.T) {
	g := NewGamma(ReferenceGamma)
	for x := 0; x < 256; x++ {
		v := uint8(x)
		if got := g.FloorShift(v); got != v {
			t.Errorf("FloorShift(%d) = %d", x, got)
		}
		if got := g.FadeFactor(v); got != v {
			t.Errorf("FadeFactor(%d) = %d", x, got)
		}
		if got := g.SubFactor(v); got != v {
			t.Errorf("SubFactor(%d) = %d", x, got)
		}
	}
}

func TestGammaHelpersShift(t *testing.T) {
	low := NewGamma(1.0)
	if got := low.FloorShift(20); got >= 20 {
		t.Errorf("lower gamma needs a lower floor for the same visibility, got %d", got)
	}
	if got := low.SubFactor(1); got < 1 {
		t.Errorf("SubFactor must keep nonzero steps, got %d", got)
	}

	high := NewGamma(4.0)
	if got := high.FadeFactor(200); got <= 200 {
		t.Errorf("higher gamma should retain more per frame, got %d", got)
	}
}

func TestGammaTable(t *testing.T) {
	g := NewGamma(2.2)
	if g.Apply(0) != 0 || g.Apply(255) != 255 {
		t.Errorf("gamma endpoints must be fixed")
	}
	if g.Apply(128) >= 128 {
		t.Errorf("gamma 2.2 should darken mid tones, got %d", g.Apply(128))
	}
	g.Set(0)
	if g.Value() != 0.1 {
		t.Errorf("exponent should be floored to 0.1, got %v", g.Value())
	}
}

func TestGammaSync(t *testing.T) {
	g := NewGamma(2.8)
	if g.Sync(2.805) || g.Value() != 2.8 {
		t.Errorf("small drift should not rebuild the table")
	}
	if !g.Sync(2.2) || g.Value() != 2.2 {
		t.Errorf("gamma = %v, want 2.2", g.Value())
	}
	g.Sync(0)
	if g.Sync(0) {
		t.Errorf("a floored exponent should settle")
	}
	if FixedGamma(1.5).Gamma() != 1.5 {
		t.Errorf("fixed gamma source")
	}
}
