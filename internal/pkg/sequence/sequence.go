package sequence

import "sync/atomic"

// Generator hands out invoice numbers. Implementations must never return
// the same value twice.
type Generator interface {
	Next() int64
}

// Counter is an atomic, monotonically increasing Generator.
// Safe for concurrent use.
type Counter struct {
	last atomic.Int64
}

// NewCounter creates a Counter whose first Next returns start.
// Values below 1 are raised to 1 so numbers are always positive.
func NewCounter(start int64) *Counter {
	c := &Counter{}
	c.Reset(start)
	return c
}

// Next increments and returns the counter in one indivisible step.
func (c *Counter) Next() int64 {
	return c.last.Add(1)
}

// Reset makes the next call to Next return start. Meant for tests; resetting
// a counter that already issued numbers lets those numbers repeat.
func (c *Counter) Reset(start int64) {
	if start < 1 {
		start = 1
	}
	c.last.Store(start - 1)
}

// shared is the process-wide invoice counter, seeded at 1.
var shared = NewCounter(1)

// Shared returns the process-wide Counter. Every invoice built from it in
// this process receives a distinct number.
func Shared() *Counter {
	return shared
}
