package entity

import (
	"sync"
	"time"
)

// Clock supplies monotonic time readings for cooldown gates
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. The headless driver and tests use it.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock starts a clock at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d; negative values are ignored
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// PausableClock wraps a Clock and stands still while paused. Time spent paused
// is never seen by cooldowns reading it.
type PausableClock struct {
	mu       sync.Mutex
	base     Clock
	offset   time.Duration
	pausedAt time.Time
	paused   bool
}

func NewPausableClock(base Clock) *PausableClock {
	if base == nil {
		base = SystemClock{}
	}
	return &PausableClock{base: base}
}

func (c *PausableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return c.pausedAt.Add(-c.offset)
	}
	return c.base.Now().Add(-c.offset)
}

// SetPaused freezes or resumes the clock. Repeated calls with the same value are no-ops.
func (c *PausableClock) SetPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if paused == c.paused {
		return
	}
	now := c.base.Now()
	if paused {
		c.pausedAt = now
	} else {
		c.offset += now.Sub(c.pausedAt)
	}
	c.paused = paused
}

func (c *PausableClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
