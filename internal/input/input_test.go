package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lorenzowood/portal-gun/internal/input"
	"github.com/lorenzowood/portal-gun/internal/ticks"
)

type fakeButton struct{ pressed bool }

func (b *fakeButton) Pressed() bool { return b.pressed }

type fakeEncoder struct{ position int }

func (e *fakeEncoder) Position() int { return e.position }

var testCfg = input.Config{
	LongPressMS:   700,
	IdleTimeoutMS: 180000,
}

func newHandler() (*input.Handler, *fakeButton, *fakeEncoder, *ticks.Manual) {
	button := &fakeButton{}
	encoder := &fakeEncoder{}
	clock := &ticks.Manual{}
	return input.NewHandler(button, encoder, testCfg, clock.Now()), button, encoder, clock
}

func TestShortPress(t *testing.T) {
	h, button, _, clock := newHandler()

	button.pressed = true
	assert.Empty(t, h.Poll(clock.Now()))

	clock.Advance(100)
	button.pressed = false
	assert.Equal(t, []input.Event{input.ButtonShort}, h.Poll(clock.Now()))

	// Nothing lingers after the release.
	clock.Advance(10)
	assert.Empty(t, h.Poll(clock.Now()))
}

func TestLongPressFiresOnceWhileHeld(t *testing.T) {
	h, button, _, clock := newHandler()

	button.pressed = true
	assert.Empty(t, h.Poll(clock.Now()))

	clock.Advance(699)
	assert.Empty(t, h.Poll(clock.Now()))

	clock.Advance(1)
	assert.Equal(t, []input.Event{input.ButtonLong}, h.Poll(clock.Now()))

	// Still held: no repeat, and no short press on release.
	clock.Advance(500)
	assert.Empty(t, h.Poll(clock.Now()))
	button.pressed = false
	assert.Empty(t, h.Poll(clock.Now()))
}

func TestEncoderDeltas(t *testing.T) {
	h, _, encoder, clock := newHandler()

	encoder.position = 3
	assert.Equal(t,
		[]input.Event{input.EncoderCW, input.EncoderCW, input.EncoderCW},
		h.Poll(clock.Now()))

	encoder.position = 1
	assert.Equal(t,
		[]input.Event{input.EncoderCCW, input.EncoderCCW},
		h.Poll(clock.Now()))

	// Unchanged position yields nothing.
	assert.Empty(t, h.Poll(clock.Now()))
}

func TestEncoderBaselineFromConstruction(t *testing.T) {
	button := &fakeButton{}
	encoder := &fakeEncoder{position: 42}
	clock := &ticks.Manual{}
	h := input.NewHandler(button, encoder, testCfg, clock.Now())

	// The position at construction is the baseline, not zero.
	assert.Empty(t, h.Poll(clock.Now()))
	encoder.position = 43
	assert.Equal(t, []input.Event{input.EncoderCW}, h.Poll(clock.Now()))
}

func TestIdleTimeoutFiresOnce(t *testing.T) {
	h, _, _, clock := newHandler()

	clock.Advance(testCfg.IdleTimeoutMS - 1)
	assert.Empty(t, h.Poll(clock.Now()))

	clock.Advance(1)
	assert.Equal(t, []input.Event{input.IdleTimeout}, h.Poll(clock.Now()))

	// Does not repeat while the prop stays idle.
	clock.Advance(testCfg.IdleTimeoutMS)
	assert.Empty(t, h.Poll(clock.Now()))
}

func TestActivityResetsIdleTimer(t *testing.T) {
	h, _, encoder, clock := newHandler()

	clock.Advance(testCfg.IdleTimeoutMS - 10)
	encoder.position = 1
	assert.Equal(t, []input.Event{input.EncoderCW}, h.Poll(clock.Now()))

	// The earlier idle deadline has passed but activity pushed it out.
	clock.Advance(10)
	assert.Empty(t, h.Poll(clock.Now()))

	clock.Advance(testCfg.IdleTimeoutMS)
	assert.Equal(t, []input.Event{input.IdleTimeout}, h.Poll(clock.Now()))
}

func TestEventAfterIdleRearmsTimeout(t *testing.T) {
	h, button, _, clock := newHandler()

	clock.Advance(testCfg.IdleTimeoutMS)
	assert.Equal(t, []input.Event{input.IdleTimeout}, h.Poll(clock.Now()))

	button.pressed = true
	h.Poll(clock.Now())
	button.pressed = false
	assert.Equal(t, []input.Event{input.ButtonShort}, h.Poll(clock.Now()))

	clock.Advance(testCfg.IdleTimeoutMS)
	assert.Equal(t, []input.Event{input.IdleTimeout}, h.Poll(clock.Now()))
}
