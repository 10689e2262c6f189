package stream

import (
	"errors"
)

var (
	// ErrInvalidConfiguration is returned when a driver is configured with
	// values it cannot animate, such as a non-positive period.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrClockUnavailable indicates that a clock could not attach to its host loop.
	ErrClockUnavailable = errors.New("clock unavailable")

	// ErrClockRunning is returned when starting a clock that already has a callback.
	ErrClockRunning = errors.New("clock already running")
)
