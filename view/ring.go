package view

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledring/stream"
)

const ringSegments = 180

type segment struct {
	x0, y0 float32
	x1, y1 float32
	colour colorful.Color
}

// sweepSegments splits a circle of the given radius into n chords, each
// coloured by the gradient at its midpoint under rotation degrees. Angles run
// clockwise from 3 o'clock in screen space.
func sweepSegments(cx, cy, radius float64, rotation float64, n int, g stream.Gradient) []segment {
	segments := make([]segment, n)
	step := 360.0 / float64(n)
	for i := 0; i < n; i++ {
		a0 := float64(i) * step
		a1 := a0 + step
		s0, c0 := math.Sincos(a0 * math.Pi / 180)
		s1, c1 := math.Sincos(a1 * math.Pi / 180)
		segments[i] = segment{
			x0:     float32(cx + radius*c0),
			y0:     float32(cy + radius*s0),
			x1:     float32(cx + radius*c1),
			y1:     float32(cy + radius*s1),
			colour: g.At(a0+step/2, rotation),
		}
	}
	return segments
}

// drawRing strokes the rotated sweep gradient around (cx, cy).
func drawRing(screen *ebiten.Image, cx, cy, radius, strokeWidth, rotation float64, g stream.Gradient) {
	for _, s := range sweepSegments(cx, cy, radius, rotation, ringSegments, g) {
		vector.StrokeLine(screen, s.x0, s.y0, s.x1, s.y1, float32(strokeWidth), s.colour.Clamped(), true)
	}
}
