package util

import (
	"math"
)

// Lerp linearly interpolates between a and b.
func Lerp(a float64, b float64, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits t to [0, 1]. NaN clamps to 0.
func Clamp01(t float64) float64 {
	if !(t > 0) {
		return 0
	} else if t > 1 {
		return 1
	}
	return t
}

// Fract returns the fractional part of v, always in [0, 1).
func Fract(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1 {
		return 0
	}
	return f
}

// Wrap folds v into [min, max).
func Wrap(v float64, min float64, max float64) float64 {
	return min + Fract((v-min)/(max-min))*(max-min)
}
