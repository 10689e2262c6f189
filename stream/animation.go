package stream

// An Animation implements a way to render the driver signal onto LEDs.
type Animation interface {
	CalculateFrame(signal float64) *Frame
}
