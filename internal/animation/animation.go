// Package animation implements the time-driven lighting engine: a set
// of finite-lifetime animations that each compute a per-pixel color
// buffer from elapsed time, a compositor that blends them additively,
// and the generators that schedule ambient effects.
package animation

import (
	"github.com/tanema/gween/ease"

	"github.com/lorenzowood/portal-gun/hardware"
	"github.com/lorenzowood/portal-gun/internal/ticks"
)

// Animation computes a per-pixel color buffer from elapsed time.
// Implementations are anchored by Start and advanced by Update; once
// Finished reports true the buffer is all zeros and the compositor
// drops the animation.
type Animation interface {
	Start(now ticks.Ticks)
	Update(now ticks.Ticks)
	Finished() bool
	Pixels() []hardware.Color
}

// base carries the bookkeeping shared by concrete animations.
type base struct {
	pixels   []hardware.Color
	startAt  ticks.Ticks
	started  bool
	finished bool
}

func newBase(numPixels int) base {
	return base{pixels: make([]hardware.Color, numPixels)}
}

// Start anchors the animation's timeline at now.
func (b *base) Start(now ticks.Ticks) {
	b.startAt = now
	b.started = true
	b.finished = false
}

func (b *base) elapsed(now ticks.Ticks) int64 {
	if !b.started {
		return 0
	}
	e := now.Sub(b.startAt)
	if e < 0 {
		return 0
	}
	return e
}

func (b *base) finish() {
	b.finished = true
}

func (b *base) Finished() bool {
	return b.finished
}

func (b *base) Pixels() []hardware.Color {
	return b.pixels
}

func (b *base) blank() {
	for i := range b.pixels {
		b.pixels[i] = hardware.Off
	}
}

// envelope evaluates the shared three-segment brightness envelope:
// linear rise from 0 to peak over rampUp, hold at peak, linear fall
// back to 0 over rampDown. The second return is true once elapsed has
// passed the total duration. A zero rampUp counts as already risen, so
// there is no division by a zero-length segment.
func envelope(elapsed, rampUpMS, holdMS, rampDownMS int64, peak float64) (float64, bool) {
	total := rampUpMS + holdMS + rampDownMS
	if elapsed >= total {
		return 0, true
	}
	switch {
	case elapsed < rampUpMS:
		return float64(ease.Linear(float32(elapsed), 0, float32(peak), float32(rampUpMS))), false
	case elapsed < rampUpMS+holdMS:
		return peak, false
	default:
		fall := elapsed - rampUpMS - holdMS
		return float64(ease.Linear(float32(fall), float32(peak), float32(-peak), float32(rampDownMS))), false
	}
}
