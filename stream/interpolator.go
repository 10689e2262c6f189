package stream

import (
	"fmt"
	"math"
	"time"

	"github.com/matt-g-everett/ledring/util"
)

// DefaultPeriod is one full turn of the ring.
const DefaultPeriod = 2000 * time.Millisecond

// Range is an output interval [From, To).
type Range struct {
	From float64
	To   float64
}

// DefaultRange is a full rotation in degrees.
var DefaultRange = Range{From: 0, To: 360}

func (r Range) validate() error {
	if math.IsNaN(r.From) || math.IsInf(r.From, 0) || math.IsNaN(r.To) || math.IsInf(r.To, 0) {
		return fmt.Errorf("%w: output range [%v, %v) is not finite", ErrInvalidConfiguration, r.From, r.To)
	}
	if r.From >= r.To {
		return fmt.Errorf("%w: output range [%v, %v) is empty", ErrInvalidConfiguration, r.From, r.To)
	}
	return nil
}

// An Interpolator converts elapsed time into a wrapped, eased output value.
// It holds no mutable state, so one Interpolator may be shared by any number
// of drivers.
type Interpolator struct {
	periodNanos int64
	easing      EasingFunc
	output      Range
}

// NewInterpolator creates an Interpolator. A nil easing is linear.
func NewInterpolator(period time.Duration, easing EasingFunc, output Range) (*Interpolator, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive, got %v", ErrInvalidConfiguration, period)
	}
	if err := output.validate(); err != nil {
		return nil, err
	}
	if easing == nil {
		easing = func(t float64) float64 { return t }
	}

	i := new(Interpolator)
	i.periodNanos = period.Nanoseconds()
	i.easing = easing
	i.output = output
	return i, nil
}

// Period returns the length of one cycle.
func (i *Interpolator) Period() time.Duration {
	return time.Duration(i.periodNanos)
}

// Output returns the configured output range.
func (i *Interpolator) Output() Range {
	return i.output
}

// Phase returns the normalised position within the current cycle, in [0, 1).
func (i *Interpolator) Phase(elapsedNanos int64) float64 {
	r := elapsedNanos % i.periodNanos
	if r < 0 {
		r += i.periodNanos
	}
	return float64(r) / float64(i.periodNanos)
}

// Advance maps elapsed time to the output range. The result depends only on
// elapsedNanos modulo the period and always lies in [From, To).
func (i *Interpolator) Advance(elapsedNanos int64) float64 {
	eased := util.Clamp01(i.easing(i.Phase(elapsedNanos)))
	v := util.Lerp(i.output.From, i.output.To, eased)

	// An easing that reaches 1 lands on To, which is the same point as From
	// on the next cycle.
	if v >= i.output.To || v < i.output.From {
		v = i.output.From
	}
	return v
}
