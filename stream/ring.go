package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// A Ring is an Animation that sweeps a gradient around a circle of LEDs. The
// signal is the rotation in degrees.
type Ring struct {
	gradient   Gradient
	numPixels  int
	brightness float64
}

// NewRing creates an instance of a Ring. LED 0 sits at 3 o'clock and the rest
// follow clockwise.
func NewRing(gradient Gradient, numPixels int, brightness float64) *Ring {
	r := new(Ring)
	r.gradient = gradient
	r.numPixels = numPixels
	r.brightness = brightness
	return r
}

// CalculateFrame creates a new Frame instance.
func (r *Ring) CalculateFrame(signal float64) *Frame {
	f := NewFrame(r.numPixels)
	for i := 0; i < r.numPixels; i++ {
		angle := 360.0 * float64(i) / float64(r.numPixels)
		c := r.gradient.At(angle, signal)
		f.pixels[i] = colorful.Color{R: c.R * r.brightness, G: c.G * r.brightness, B: c.B * r.brightness}
	}

	return f
}
