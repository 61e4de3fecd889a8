package util

import (
	"testing"
)

func TestGenerateLut(t *testing.T) {
	want := []float64{0, 0.5, 1, 0.5, 0}
	lut := GenerateLut(5)
	for i := range want {
		if lut[i] != want[i] {
			t.Fatalf("lut = %v, want %v", lut, want)
		}
	}
	if even := GenerateLut(4); even[1] != 0.5 || even[2] != 0.5 || even[3] != 0 {
		t.Errorf("even lut = %v", even)
	}
}

func TestGenerateLutMemoized(t *testing.T) {
	m := Memoizer{}
	a := GenerateLutMemoized(8, m)
	b := GenerateLutMemoized(8, m)
	if &a[0] != &b[0] {
		t.Errorf("second call should return the cached table")
	}
	if len(m) != 1 {
		t.Errorf("memoizer holds %d tables", len(m))
	}
}

func TestWaves(t *testing.T) {
	if Sin8(0) != 128 || Sin8(64) != 255 {
		t.Errorf("sin8 = %d %d", Sin8(0), Sin8(64))
	}
	if Qadd8(200, 100) != 255 || Qsub8(10, 20) != 0 {
		t.Errorf("saturating math broken")
	}
	if Scale8(255, 255) != 254 || Scale8(100, 0) != 0 {
		t.Errorf("scale8 = %d %d", Scale8(255, 255), Scale8(100, 0))
	}
}

func TestHash32IsStable(t *testing.T) {
	if Hash32(42) != Hash32(42) || Hash32(1) == Hash32(2) {
		t.Errorf("hash should be deterministic and spread")
	}
}
