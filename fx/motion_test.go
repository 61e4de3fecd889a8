package fx

import (
	"testing"

	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
)

func lit(c *Context, n int) int {
	count := 0
	for i := 0; i < n; i++ {
		if c.Pixels[i] != pixel.Black {
			count++
		}
	}
	return count
}

func TestDissolveCycle(t *testing.T) {
	const n = 16
	c := newTestContext(IDDissolve, n, 0)
	c.Seg.Speed = 255
	c.Seg.Intensity = 255
	// speed 255 scales to 99, so each hold lasts 500 + 156*10 ms.
	const hold = 2060

	var phases []uint16
	var entered uint32
	holdOnFor := uint32(0)
	for now := uint32(0); now <= 6000; now += 20 {
		c.Now = now
		Dissolve(c)
		phase := c.Seg.Aux0
		if len(phases) == 0 || phases[len(phases)-1] != phase {
			if len(phases) > 0 && phases[len(phases)-1] == dissolveHoldOn {
				holdOnFor = now - entered
			}
			phases = append(phases, phase)
			entered = now
		}
		switch phase {
		case dissolveHoldOn:
			if c.Seg.Aux1 != n {
				t.Fatalf("holding on at %d ms with %d of %d cells", now, c.Seg.Aux1, n)
			}
			if got := lit(c, n); got != n {
				t.Fatalf("holding on at %d ms with %d lit pixels", now, got)
			}
		case dissolveHoldOff:
			if c.Seg.Aux1 != 0 {
				t.Fatalf("holding off at %d ms with %d cells set", now, c.Seg.Aux1)
			}
			if got := lit(c, n); got != 0 {
				t.Fatalf("holding off at %d ms with %d lit pixels", now, got)
			}
		}
	}

	want := []uint16{dissolveFilling, dissolveHoldOn, dissolveDraining, dissolveHoldOff, dissolveFilling}
	if len(phases) < len(want) {
		t.Fatalf("phases = %v, want at least %v", phases, want)
	}
	for i, p := range want {
		if phases[i] != p {
			t.Fatalf("phases = %v, want prefix %v", phases, want)
		}
	}
	if holdOnFor <= hold || holdOnFor > hold+100 {
		t.Errorf("held on for %d ms, want just over %d", holdOnFor, hold)
	}
}

func TestDissolveIntensitySetsCellsPerFrame(t *testing.T) {
	for _, tc := range []struct {
		intensity uint8
		perFrame  uint16
	}{{0, 1}, {128, 1}, {192, 3}, {255, 4}} {
		c := newTestContext(IDDissolve, 40, 0)
		c.Seg.Intensity = tc.intensity
		Dissolve(c)
		if c.Seg.Aux1 != tc.perFrame {
			t.Errorf("intensity %d filled %d cells in one frame, want %d", tc.intensity, c.Seg.Aux1, tc.perFrame)
		}
	}
}

func aliveWaves(st *auroraState) int {
	count := 0
	for i := range st.waves {
		if st.waves[i].alive {
			count++
		}
	}
	return count
}

func TestAuroraWaveCount(t *testing.T) {
	const n = 60
	c := newTestContext(IDAurora, n, 0)
	c.Seg.Palette = palette.Rainbow
	c.Seg.Intensity = 255

	sawLight := false
	for frame := 0; frame < 150; frame++ {
		c.Now = uint32(frame * 16)
		Aurora(c)
		if lit(c, n) > 0 {
			sawLight = true
		}
	}
	if c.Seg.Aux1 != auroraMaxWaves {
		t.Fatalf("full intensity runs %d waves, want %d", c.Seg.Aux1, auroraMaxWaves)
	}
	st, _ := segmentState[auroraState](c, auroraMaxWaves*48)
	if got := aliveWaves(st); got != auroraMaxWaves {
		t.Errorf("%d waves alive at full intensity, want %d", got, auroraMaxWaves)
	}
	if !sawLight {
		t.Errorf("aurora never lit a pixel")
	}

	// Dropping the intensity fades the surplus waves out instead of cutting them.
	c.Seg.Intensity = 0
	c.Now += 16
	Aurora(c)
	if c.Seg.Aux1 != 2 {
		t.Fatalf("zero intensity runs %d waves, want 2", c.Seg.Aux1)
	}
	if got := aliveWaves(st); got <= 2 {
		t.Errorf("surplus waves vanished in one frame, %d alive", got)
	}
	for frame := 0; frame < 300; frame++ {
		c.Now += 16
		Aurora(c)
	}
	if got := aliveWaves(st); got != 2 {
		t.Errorf("%d waves alive after fading, want 2", got)
	}
}

func TestBouncingBallRisesAndBounces(t *testing.T) {
	const n = 30
	c := newTestContext(IDBouncingBalls, n, 0)
	c.Seg.Palette = palette.Rainbow
	c.Seg.Speed = 255
	c.Seg.Intensity = 0

	peak := 0.0
	bounces := 0
	for frame := 0; frame < 200; frame++ {
		c.Now = uint32(frame * 16)
		BouncingBalls(c)
		st, _ := segmentState[ballsState](c, maxBalls*32)
		b := st.balls[0]
		if b.height < 0 || b.height > 1.2 {
			t.Fatalf("ball height %f out of range at %d ms", b.height, c.Now)
		}
		if b.height > peak {
			peak = b.height
		}
		if frame > 0 && b.lastBounce == c.Now {
			bounces++
		}
		if p := int(b.height * float64(n-1)); p < n && c.Pixels[p] == pixel.Black {
			t.Fatalf("no light at the ball position %d at %d ms", p, c.Now)
		}
		if st.balls[1].velocity != 0 {
			t.Fatalf("intensity 0 should drive a single ball")
		}
	}
	if peak < 0.5 {
		t.Errorf("ball peaked at %f, want it to reach well up the segment", peak)
	}
	if bounces == 0 {
		t.Errorf("ball never came back down")
	}
}

func TestDripFallsAndSplashes(t *testing.T) {
	const n = 30
	c := newTestContext(IDDrip, n, 0)
	c.Seg.Palette = palette.Rainbow
	c.Seg.Intensity = 0

	var sawForming, sawFalling, sawSplash, sawReform bool
	lastPos := float64(n)
	for frame := 0; frame < 3000; frame++ {
		c.Now = uint32(frame * 16)
		Drip(c)
		st, _ := segmentState[dripState](c, maxDrops*32)
		d := st.drops[0]
		switch d.phase {
		case dropForming:
			if sawSplash {
				sawReform = true
			}
			sawForming = true
			if d.pos != float64(n-1) {
				t.Fatalf("drop forming at %f, want %d", d.pos, n-1)
			}
		case dropFalling:
			sawFalling = true
			if d.pos > lastPos {
				t.Fatalf("falling drop moved up from %f to %f", lastPos, d.pos)
			}
			if c.Pixels[int(d.pos)] == pixel.Black {
				t.Fatalf("falling drop at %d is dark", int(d.pos))
			}
		case dropSplash:
			sawSplash = true
		}
		lastPos = d.pos
		if d.phase != dropFalling {
			lastPos = float64(n)
		}
		if st.drops[1].phase != dropInit {
			t.Fatalf("intensity 0 should drive a single drop")
		}
		if sawReform {
			break
		}
	}
	if !sawForming || !sawFalling || !sawSplash || !sawReform {
		t.Errorf("forming %v falling %v splash %v reform %v, want the whole cycle",
			sawForming, sawFalling, sawSplash, sawReform)
	}
}
