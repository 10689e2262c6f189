package stream

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestFrameClockElapsedFromFirstTick(t *testing.T) {
	c := NewFrameClock()
	var got []int64
	if err := c.Start(func(elapsed int64) { got = append(got, elapsed) }); err != nil {
		t.Fatalf("Start: %v", err)
	}

	c.Tick(5 * time.Second)
	c.Tick(5*time.Second + 16*time.Millisecond)
	c.Tick(5*time.Second + 40*time.Millisecond)

	want := []int64{0, int64(16 * time.Millisecond), int64(40 * time.Millisecond)}
	if len(got) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick %d: elapsed %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFrameClockNonDecreasing(t *testing.T) {
	c := NewFrameClock()
	var got []int64
	c.Start(func(elapsed int64) { got = append(got, elapsed) })

	c.Tick(time.Second)
	c.Tick(2 * time.Second)
	c.Tick(1500 * time.Millisecond)

	if got[2] != got[1] {
		t.Errorf("backwards host time should hold at %d, got %d", got[1], got[2])
	}
}

func TestFrameClockStop(t *testing.T) {
	c := NewFrameClock()

	// Stop before any Start is harmless.
	c.Stop()

	calls := 0
	c.Start(func(int64) { calls++ })
	if !c.Tick(0) {
		t.Error("Tick should deliver while started")
	}

	c.Stop()
	c.Stop()
	if c.Tick(time.Second) {
		t.Error("Tick should not deliver after Stop")
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}

func TestFrameClockRestartResetsEpoch(t *testing.T) {
	c := NewFrameClock()
	var last int64
	c.Start(func(elapsed int64) { last = elapsed })
	c.Tick(time.Second)
	c.Tick(3 * time.Second)
	c.Stop()

	c.Start(func(elapsed int64) { last = elapsed })
	c.Tick(10 * time.Second)
	if last != 0 {
		t.Errorf("first tick after restart should be 0, got %d", last)
	}
}

func TestFrameClockDoubleStart(t *testing.T) {
	c := NewFrameClock()
	c.Start(func(int64) {})
	if err := c.Start(func(int64) {}); !errors.Is(err, ErrClockRunning) {
		t.Errorf("expected ErrClockRunning, got %v", err)
	}
}

func TestTickerClockUnavailable(t *testing.T) {
	c := NewTickerClock(0)
	if err := c.Start(func(int64) {}); !errors.Is(err, ErrClockUnavailable) {
		t.Errorf("expected ErrClockUnavailable, got %v", err)
	}
	c.Stop()
}

func TestTickerClockStopHaltsCallbacks(t *testing.T) {
	c := NewTickerClock(500)
	var count int64
	ticked := make(chan struct{}, 1)
	err := c.Start(func(int64) {
		atomic.AddInt64(&count, 1)
		select {
		case ticked <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("no tick within 2s")
	}

	c.Stop()
	after := atomic.LoadInt64(&count)
	time.Sleep(20 * time.Millisecond)
	if got := atomic.LoadInt64(&count); got != after {
		t.Errorf("callback ran %d more times after Stop", got-after)
	}

	c.Stop()
}

func TestTickerClockElapsedNonDecreasing(t *testing.T) {
	c := NewTickerClock(1000)
	values := make(chan int64, 64)
	c.Start(func(elapsed int64) {
		select {
		case values <- elapsed:
		default:
		}
	})
	time.Sleep(30 * time.Millisecond)
	c.Stop()
	close(values)

	prev := int64(-1)
	for v := range values {
		if v < prev {
			t.Errorf("elapsed went backwards: %d after %d", v, prev)
		}
		prev = v
	}
	if prev < 0 {
		t.Error("no ticks delivered")
	}
}
