package core

import "time"

// Clock is the simulation time source. Now returns elapsed game time since
// the clock started and must never run backward.
type Clock interface {
	Now() time.Duration
}

// PausableClock is a monotonic clock whose time stops while paused.
// Game time is real elapsed time minus the cumulative paused time.
// It is not safe for concurrent use; each simulation owns its clock.
type PausableClock struct {
	start       time.Time // carries the monotonic reading
	pausedAt    time.Duration
	totalPaused time.Duration
	paused      bool
	since       func(time.Time) time.Duration
}

// NewPausableClock creates a running clock starting at zero.
func NewPausableClock() *PausableClock {
	return &PausableClock{
		start: time.Now(),
		since: time.Since,
	}
}

func (c *PausableClock) real() time.Duration {
	return c.since(c.start)
}

// Now returns current game time, frozen while paused.
func (c *PausableClock) Now() time.Duration {
	if c.paused {
		return c.pausedAt - c.totalPaused
	}
	return c.real() - c.totalPaused
}

// Pause stops game time advancement. Pausing twice is a no-op.
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.real()
}

// Resume continues game time advancement. Resuming a running clock is a no-op.
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.totalPaused += c.real() - c.pausedAt
}

// ManualClock is a Clock advanced explicitly. Used by tests and headless runs.
type ManualClock struct {
	now time.Duration
}

// NewManualClock creates a manual clock at the given time.
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Set jumps the clock to t, including backwards. Only meant for exercising
// clock-skew handling.
func (c *ManualClock) Set(t time.Duration) {
	c.now = t
}
