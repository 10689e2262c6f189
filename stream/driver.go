package stream

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// State is the lifecycle state of a Driver.
type State int

const (
	// Stopped drivers consume no ticks. It is both the initial and final state.
	Stopped State = iota
	// Running drivers render one signal per clock tick.
	Running
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// Status is a snapshot of a Driver.
type Status struct {
	Session string  `json:"session"`
	State   string  `json:"state"`
	Signal  float64 `json:"signal"`
	Ticks   uint64  `json:"ticks"`
}

// A Driver connects a Clock to a Sink through an Interpolator. Every tick from
// the clock is turned into a signal and handed to the sink.
type Driver struct {
	clock  Clock
	interp *Interpolator
	sink   Sink

	// lifecycle serialises Start and Stop; mu guards the fields below it and
	// is never held while calling into the clock.
	lifecycle sync.Mutex

	mu      sync.Mutex
	state   State
	session string
	signal  float64
	ticks   uint64
}

// NewDriver creates a stopped Driver.
func NewDriver(clock Clock, interp *Interpolator, sink Sink) *Driver {
	d := new(Driver)
	d.clock = clock
	d.interp = interp
	d.sink = sink
	d.state = Stopped
	return d
}

// Start moves the driver from Stopped to Running. It reports whether the
// driver is running afterwards; a clock that cannot attach leaves the driver
// inactive.
func (d *Driver) Start() bool {
	d.lifecycle.Lock()
	defer d.lifecycle.Unlock()

	d.mu.Lock()
	if d.state == Running {
		d.mu.Unlock()
		return true
	}
	d.state = Running
	d.session = uuid.NewString()
	d.ticks = 0
	d.signal = 0
	session := d.session
	d.mu.Unlock()

	if err := d.clock.Start(d.tick); err != nil {
		d.mu.Lock()
		d.state = Stopped
		d.mu.Unlock()
		log.Printf("Driver inactive: %v", err)
		return false
	}

	log.Printf("Driver started, session %s", session)
	return true
}

// Stop moves the driver from Running to Stopped. No signal is rendered after
// Stop returns.
func (d *Driver) Stop() {
	d.lifecycle.Lock()
	defer d.lifecycle.Unlock()

	d.mu.Lock()
	if d.state == Stopped {
		d.mu.Unlock()
		return
	}
	d.state = Stopped
	session := d.session
	d.mu.Unlock()

	// Any tick still in flight sees Stopped and returns; the clock waits
	// for it before returning.
	d.clock.Stop()
	log.Printf("Driver stopped, session %s", session)
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Status returns a snapshot of the driver.
func (d *Driver) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Status{
		Session: d.session,
		State:   d.state.String(),
		Signal:  d.signal,
		Ticks:   d.ticks,
	}
}

func (d *Driver) tick(elapsedNanos int64) {
	d.mu.Lock()
	if d.state != Running {
		d.mu.Unlock()
		return
	}
	signal := d.interp.Advance(elapsedNanos)
	d.signal = signal
	d.ticks++
	d.mu.Unlock()

	d.sink.Render(signal)
}
