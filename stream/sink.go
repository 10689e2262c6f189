package stream

// A Sink consumes the driver's output once per tick, usually by drawing it.
type Sink interface {
	Render(signal float64)
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(signal float64)

// Render calls f(signal).
func (f SinkFunc) Render(signal float64) {
	f(signal)
}

// MultiSink fans one signal out to several sinks, in order.
type MultiSink []Sink

// Render forwards signal to every sink.
func (m MultiSink) Render(signal float64) {
	for _, s := range m {
		s.Render(signal)
	}
}
