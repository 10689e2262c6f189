package stream

import (
	"fmt"
	"sync"
	"time"
)

// A Clock delivers elapsed time, once per redraw, to a single callback.
//
// Start attaches the callback. elapsedNanos counts from the first tick after
// Start and never decreases. Stop detaches it; it is idempotent, safe without
// a prior Start, and no callback runs once it has returned. Stop must not be
// called from inside the callback.
type Clock interface {
	Start(callback func(elapsedNanos int64)) error
	Stop()
}

// FrameClock is a Clock driven by a host that already has a render loop. The
// host calls Tick once per frame with its own notion of the current time.
type FrameClock struct {
	mu       sync.Mutex
	callback func(int64)
	primed   bool
	epoch    time.Duration
	last     int64
}

// NewFrameClock creates a FrameClock with no callback attached.
func NewFrameClock() *FrameClock {
	return new(FrameClock)
}

// Start registers the frame callback.
func (c *FrameClock) Start(callback func(elapsedNanos int64)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.callback != nil {
		return ErrClockRunning
	}
	c.callback = callback
	c.primed = false
	c.last = 0
	return nil
}

// Stop unregisters the frame callback.
func (c *FrameClock) Stop() {
	c.mu.Lock()
	c.callback = nil
	c.mu.Unlock()
}

// Tick delivers one frame at host time now. It reports whether a callback
// was invoked.
func (c *FrameClock) Tick(now time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.callback == nil {
		return false
	}
	if !c.primed {
		c.epoch = now
		c.primed = true
	}

	elapsed := int64(now - c.epoch)
	if elapsed < c.last {
		elapsed = c.last
	}
	c.last = elapsed

	// Held across the callback so that Stop waits for a frame in flight.
	c.callback(elapsed)
	return true
}

// TickerClock is a Clock with its own ticker goroutine, for hosts with no
// render loop of their own such as an LED strip.
type TickerClock struct {
	interval time.Duration

	mu   sync.Mutex
	quit chan struct{}
	done chan struct{}
}

// NewTickerClock creates a TickerClock firing frameRate times a second.
func NewTickerClock(frameRate float64) *TickerClock {
	c := new(TickerClock)
	if frameRate > 0 {
		c.interval = time.Duration(float64(time.Second) / frameRate)
	}
	return c
}

// Interval returns the time between ticks.
func (c *TickerClock) Interval() time.Duration {
	return c.interval
}

// Start launches the ticker goroutine.
func (c *TickerClock) Start(callback func(elapsedNanos int64)) error {
	if c.interval <= 0 {
		return fmt.Errorf("%w: frame interval %v", ErrClockUnavailable, c.interval)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.quit != nil {
		return ErrClockRunning
	}
	c.quit = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(callback, c.quit, c.done)
	return nil
}

func (c *TickerClock) run(callback func(int64), quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	var epoch time.Time
	for {
		select {
		case <-quit:
			return
		case now := <-ticker.C:
			// Both cases may be ready at once; quit wins.
			select {
			case <-quit:
				return
			default:
			}

			if epoch.IsZero() {
				epoch = now
			}
			callback(int64(now.Sub(epoch)))
		}
	}
}

// Stop halts the ticker goroutine and waits for it to exit.
func (c *TickerClock) Stop() {
	c.mu.Lock()
	quit, done := c.quit, c.done
	c.quit = nil
	c.done = nil
	c.mu.Unlock()

	if quit == nil {
		return
	}
	close(quit)
	<-done
}
