package util

import (
	"math"
	"testing"
)

func TestFract(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{2.5, 0.5},
		{-0.25, 0.75},
		{-1, 0},
	}

	for _, tt := range tests {
		if got := Fract(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Fract(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	if got := Wrap(370, 0, 360); math.Abs(got-10) > 1e-9 {
		t.Errorf("Wrap(370) = %v, want 10", got)
	}
	if got := Wrap(-90, 0, 360); math.Abs(got-270) > 1e-9 {
		t.Errorf("Wrap(-90) = %v, want 270", got)
	}
	if got := Wrap(360, 0, 360); got != 0 {
		t.Errorf("Wrap(360) = %v, want 0", got)
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 did not clamp to [0, 1]")
	}
	if Clamp01(math.NaN()) != 0 {
		t.Error("Clamp01(NaN) should be 0")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 360, 0.25); got != 90 {
		t.Errorf("Lerp(0, 360, 0.25) = %v, want 90", got)
	}
}
