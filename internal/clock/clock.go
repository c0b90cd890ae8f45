// Package clock provides an injectable monotonic-millisecond time source
// so the change/auto-read settle policy can be driven deterministically
// in tests.
package clock

import "time"

// Clock returns monotonic milliseconds since some fixed (implementation
// defined) reference point. Only differences between calls are meaningful.
type Clock interface {
	NowMillis() int64
}

// RealClock is backed by time.Now().
type RealClock struct {
	start time.Time
}

// NewRealClock returns a Clock anchored to the current time.
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

func (c *RealClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// FakeClock only advances when Advance is called, for scripted tests.
type FakeClock struct {
	millis int64
}

// NewFakeClock returns a FakeClock starting at 0.
func NewFakeClock() *FakeClock {
	return &FakeClock{}
}

func (c *FakeClock) NowMillis() int64 {
	return c.millis
}

// Advance moves the clock forward by ms milliseconds.
func (c *FakeClock) Advance(ms int64) {
	c.millis += ms
}
