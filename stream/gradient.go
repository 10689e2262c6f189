package stream

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledring/util"
)

// DefaultColours is the sweep of the profile ring.
var DefaultColours = []string{"#ff0000", "#ffffff", "#0000ff", "#000000", "#ff0000"}

// GradientStop is one colour key on a Gradient.
type GradientStop struct {
	Pos    float64
	Colour colorful.Color
}

// Gradient stores colour keys ordered by position on [0, 1].
type Gradient []GradientStop

// NewSweepGradient spaces colours evenly around a full turn. Repeat the first
// colour at the end for a seamless loop.
func NewSweepGradient(colours []colorful.Color) Gradient {
	g := make(Gradient, len(colours))
	for i, c := range colours {
		pos := 0.0
		if len(colours) > 1 {
			pos = float64(i) / float64(len(colours)-1)
		}
		g[i] = GradientStop{Pos: pos, Colour: c}
	}
	return g
}

// ParseGradient builds a sweep gradient from hex colour strings.
func ParseGradient(hex []string) (Gradient, error) {
	if len(hex) == 0 {
		return nil, fmt.Errorf("%w: gradient has no colours", ErrInvalidConfiguration)
	}

	colours := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("%w: colour %d: %v", ErrInvalidConfiguration, i, err)
		}
		colours[i] = c
	}
	return NewSweepGradient(colours), nil
}

// GetColor gets the colour at t, wrapped into [0, 1).
func (g Gradient) GetColor(t float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Color{}
	}

	t = util.Fract(t)
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c2.Pos == c1.Pos {
				return c1.Colour
			}
			return c1.Colour.BlendRgb(c2.Colour, (t-c1.Pos)/(c2.Pos-c1.Pos))
		}
	}

	// Before the first key or past the last one.
	if t < g[0].Pos {
		return g[0].Colour
	}
	return g[len(g)-1].Colour
}

// At returns the colour shown at angle degrees (clockwise from 3 o'clock) when
// the gradient is rotated by rotation degrees.
func (g Gradient) At(angle float64, rotation float64) colorful.Color {
	return g.GetColor(util.Wrap(angle-rotation, 0, 360) / 360.0)
}
