// Package ticks provides wrap-safe millisecond timestamps for the
// rendering core. All timing comparisons in the controller go through
// Ticks rather than raw integers so that counter wraparound at the
// 32-bit boundary never produces a bogus interval.
package ticks

import "time"

// Ticks is a monotonic millisecond counter that wraps at 2^32.
type Ticks uint32

// Sub returns the signed millisecond difference t - u. The result is
// correct across a wrap boundary as long as the real interval is under
// half the counter range (~24 days).
func (t Ticks) Sub(u Ticks) int64 {
	return int64(int32(t - u))
}

// Add returns t advanced by ms milliseconds, modulo the wrap boundary.
// Negative offsets move the timestamp backwards.
func (t Ticks) Add(ms int64) Ticks {
	return t + Ticks(uint32(ms))
}

// Clock yields the current tick count. The rendering core only ever
// reads time through a Clock so tests can drive it by hand.
type Clock interface {
	Now() Ticks
}

type wallClock struct {
	start time.Time
}

// NewWallClock returns a Clock backed by the runtime monotonic clock,
// anchored at the moment of the call.
func NewWallClock() Clock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Now() Ticks {
	return Ticks(uint32(time.Since(c.start).Milliseconds()))
}

// Manual is a hand-advanced Clock for tests.
type Manual struct {
	Current Ticks
}

func (m *Manual) Now() Ticks {
	return m.Current
}

// Advance moves the clock forward by ms milliseconds.
func (m *Manual) Advance(ms int64) {
	m.Current = m.Current.Add(ms)
}
