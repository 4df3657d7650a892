package engine

import (
	"sync/atomic"
	"time"
)

// TimeProvider abstracts the clock used for frame timestamps and effect timing
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// ManualClock is a TimeProvider that only moves when advanced; safe for concurrent use
type ManualClock struct {
	start   time.Time
	elapsed atomic.Int64 // Nanoseconds since start
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{start: start}
}

func (c *ManualClock) Now() time.Time {
	return c.start.Add(time.Duration(c.elapsed.Load()))
}

// Advance moves the clock forward by d and returns the new reading
func (c *ManualClock) Advance(d time.Duration) time.Time {
	return c.start.Add(time.Duration(c.elapsed.Add(int64(d))))
}
