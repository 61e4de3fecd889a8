package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

// Memoizer caches generated look-up tables by length.
type Memoizer map[int][]float64

// RandomRange returns a random float in [min, max).
func RandomRange(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// GenerateLut creates a symmetric ease-in/ease-out table that rises from 0 to 1 and back.
func GenerateLut(length int) []float64 {
	if length < 2 {
		return []float64{0, 0}
	}
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	if length%2 == 1 {
		lut[length/2] = 1
	}
	return lut
}

// GenerateLutMemoized returns a cached table for the length, generating it on first use.
func GenerateLutMemoized(length int, memoizer Memoizer) []float64 {
	if lut, ok := memoizer[length]; ok {
		return lut
	}
	lut := GenerateLut(length)
	memoizer[length] = lut
	return lut
}

// Clamp01 limits v to the closed unit interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
