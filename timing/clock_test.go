package timing

import (
	"testing"
)

func TestClockChunkingIndependent(t *testing.T) {
	chunkings := [][]uint32{
		{1000},
		{500, 500},
		{1, 2, 3, 994},
		{333, 333, 334},
		{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 930},
	}

	for _, speed := range []uint8{0, 1, 3, 64, 127, 128, 200, 255} {
		var want uint64
		for i, chunks := range chunkings {
			c := NewClock()
			var sum uint64
			for _, e := range chunks {
				sum += uint64(c.Step(e, speed))
			}
			if sum != c.Total() {
				t.Fatalf("speed %d: emitted %d but Total %d", speed, sum, c.Total())
			}
			if i == 0 {
				want = sum
				continue
			}
			if sum != want {
				t.Errorf("speed %d chunking %v: got %d, want %d", speed, chunks, sum, want)
			}
		}
	}
}

func TestClockSlowSpeedDoesNotFreeze(t *testing.T) {
	c := NewClock()
	c.Tick(0, 1)
	var total uint32
	for now := uint32(16); now <= 16*200; now += 16 {
		total += c.Tick(now, 1)
	}
	// 3200 ms at speed 1/128.
	if total != 25 {
		t.Errorf("expected 25 virtual units, got %d", total)
	}
}

func TestClockFirstTickIsReference(t *testing.T) {
	c := NewClock()
	if d := c.Tick(5000, 255); d != 0 {
		t.Errorf("first tick should emit nothing, got %d", d)
	}
	if d := c.Tick(5128, 128); d != 128 {
		t.Errorf("unity speed should track real time, got %d", d)
	}
}

func TestFramerClampsGaps(t *testing.T) {
	var f Framer
	ft := f.Frame(10000, 128)
	if ft.DeltaMs != (16>>2)+((16*128)>>7) {
		t.Errorf("first frame should be treated as 16 ms, got %d", ft.DeltaMs)
	}
	ft = f.Frame(10024, 0)
	if ft.DeltaMs != 6 {
		t.Errorf("speed 0 should give a quarter of the frame, got %d", ft.DeltaMs)
	}
}
