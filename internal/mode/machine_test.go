package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzowood/portal-gun/internal/config"
	"github.com/lorenzowood/portal-gun/internal/input"
	"github.com/lorenzowood/portal-gun/internal/mode"
	"github.com/lorenzowood/portal-gun/internal/ticks"
)

func newMachine(t *testing.T) (*mode.Machine, *ticks.Manual) {
	t.Helper()
	clock := &ticks.Manual{}
	m, err := mode.NewMachine(config.Default(), clock.Now())
	require.NoError(t, err)
	return m, clock
}

func TestStartsInStandby(t *testing.T) {
	m, _ := newMachine(t)
	assert.IsType(t, &mode.Standby{}, m.Current())
	assert.Equal(t, "C137", m.Code().String())
}

func TestRejectsBadDefaultCode(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultCode = "Z999"
	_, err := mode.NewMachine(cfg, 0)
	assert.Error(t, err)
}

func TestStandbyOnlyLongPressWakes(t *testing.T) {
	m, clock := newMachine(t)

	for _, ev := range []input.Event{input.ButtonShort, input.EncoderCW, input.EncoderCCW, input.IdleTimeout} {
		m.HandleEvent(ev, clock.Now())
		assert.IsType(t, &mode.Standby{}, m.Current(), "event %v", ev)
	}
	assert.Equal(t, "C137", m.Code().String())

	m.HandleEvent(input.ButtonLong, clock.Now())
	assert.IsType(t, &mode.Active{}, m.Current())
}

func TestActiveEncoderAdjustsWholeCode(t *testing.T) {
	m, clock := newMachine(t)
	m.HandleEvent(input.ButtonLong, clock.Now())

	m.HandleEvent(input.EncoderCW, clock.Now())
	assert.Equal(t, "C138", m.Code().String())
	m.HandleEvent(input.EncoderCCW, clock.Now())
	m.HandleEvent(input.EncoderCCW, clock.Now())
	assert.Equal(t, "C136", m.Code().String())
}

func TestActiveIdleReturnsToStandby(t *testing.T) {
	m, clock := newMachine(t)
	m.HandleEvent(input.ButtonLong, clock.Now())

	clock.Advance(1000)
	m.HandleEvent(input.IdleTimeout, clock.Now())

	standby, ok := m.Current().(*mode.Standby)
	require.True(t, ok)
	assert.Equal(t, clock.Now(), standby.EnteredAt)
}

func TestCodeEditWalkAndCommit(t *testing.T) {
	m, clock := newMachine(t)
	m.HandleEvent(input.ButtonLong, clock.Now())
	m.HandleEvent(input.ButtonShort, clock.Now())

	edit, ok := m.Current().(*mode.CodeEdit)
	require.True(t, ok)
	assert.Equal(t, 0, edit.Position)

	// Position 0 edits the letter.
	m.HandleEvent(input.EncoderCW, clock.Now())
	assert.Equal(t, "D137", m.Code().String())

	// Each digit position wraps independently of its neighbours.
	m.HandleEvent(input.ButtonShort, clock.Now())
	m.HandleEvent(input.EncoderCCW, clock.Now())
	m.HandleEvent(input.EncoderCCW, clock.Now())
	assert.Equal(t, "D937", m.Code().String())

	m.HandleEvent(input.ButtonShort, clock.Now())
	m.HandleEvent(input.EncoderCW, clock.Now())
	assert.Equal(t, "D947", m.Code().String())

	m.HandleEvent(input.ButtonShort, clock.Now())
	m.HandleEvent(input.EncoderCW, clock.Now())
	m.HandleEvent(input.EncoderCW, clock.Now())
	m.HandleEvent(input.EncoderCW, clock.Now())
	assert.Equal(t, "D940", m.Code().String())

	// Confirming the last character commits and returns to Active.
	m.HandleEvent(input.ButtonShort, clock.Now())
	assert.IsType(t, &mode.Active{}, m.Current())
	assert.Equal(t, "D940", m.Code().String())
}

func TestCodeEditAbortRestoresSnapshot(t *testing.T) {
	m, clock := newMachine(t)
	m.HandleEvent(input.ButtonLong, clock.Now())
	m.HandleEvent(input.ButtonShort, clock.Now())

	m.HandleEvent(input.EncoderCW, clock.Now())
	m.HandleEvent(input.ButtonShort, clock.Now())
	m.HandleEvent(input.EncoderCW, clock.Now())
	require.Equal(t, "D237", m.Code().String())

	m.HandleEvent(input.ButtonLong, clock.Now())
	assert.IsType(t, &mode.Active{}, m.Current())
	assert.Equal(t, "C137", m.Code().String())
}

func TestGenerationIgnoresInput(t *testing.T) {
	m, clock := newMachine(t)
	m.HandleEvent(input.ButtonLong, clock.Now())
	m.HandleEvent(input.ButtonLong, clock.Now())
	require.IsType(t, &mode.Generating{}, m.Current())

	for _, ev := range []input.Event{input.ButtonShort, input.ButtonLong, input.EncoderCW, input.EncoderCCW, input.IdleTimeout} {
		m.HandleEvent(ev, clock.Now())
		assert.IsType(t, &mode.Generating{}, m.Current(), "event %v", ev)
	}
	assert.Equal(t, "C137", m.Code().String())
}

func TestGenerationPhaseProgression(t *testing.T) {
	m, clock := newMachine(t)
	cfg := config.Default()
	m.HandleEvent(input.ButtonLong, clock.Now())
	m.HandleEvent(input.ButtonLong, clock.Now())

	g, ok := m.Current().(*mode.Generating)
	require.True(t, ok)
	assert.Equal(t, mode.PhasePrepare, g.Phase)

	// One tick before the boundary the phase holds.
	clock.Advance(cfg.Prepare.DurationMS - 1)
	m.Update(clock.Now())
	assert.Equal(t, mode.PhasePrepare, g.Phase)

	clock.Advance(1)
	m.Update(clock.Now())
	assert.Equal(t, mode.PhaseRampUp, g.Phase)

	clock.Advance(cfg.RampUp.DurationMS)
	m.Update(clock.Now())
	assert.Equal(t, mode.PhaseGenerate, g.Phase)

	clock.Advance(cfg.Generate.DurationMS)
	m.Update(clock.Now())
	assert.Equal(t, mode.PhaseRampDown, g.Phase)

	clock.Advance(cfg.RampDown.DurationMS)
	m.Update(clock.Now())
	assert.IsType(t, &mode.Active{}, m.Current())
}

func TestGenerationAnchorsDoNotDrift(t *testing.T) {
	m, clock := newMachine(t)
	cfg := config.Default()
	m.HandleEvent(input.ButtonLong, clock.Now())
	start := clock.Now()
	m.HandleEvent(input.ButtonLong, clock.Now())

	g, ok := m.Current().(*mode.Generating)
	require.True(t, ok)

	// Updates arrive late; the anchor still lands exactly on the sum of
	// the configured durations.
	clock.Advance(cfg.Prepare.DurationMS + 137)
	m.Update(clock.Now())
	assert.Equal(t, mode.PhaseRampUp, g.Phase)
	assert.Equal(t, cfg.Prepare.DurationMS, g.PhaseAnchor.Sub(start))

	clock.Advance(cfg.RampUp.DurationMS)
	m.Update(clock.Now())
	assert.Equal(t, mode.PhaseGenerate, g.Phase)
	assert.Equal(t, cfg.Prepare.DurationMS+cfg.RampUp.DurationMS, g.PhaseAnchor.Sub(start))
}

func TestGenerationCatchUpAfterStall(t *testing.T) {
	m, clock := newMachine(t)
	cfg := config.Default()
	m.HandleEvent(input.ButtonLong, clock.Now())
	m.HandleEvent(input.ButtonLong, clock.Now())

	g, ok := m.Current().(*mode.Generating)
	require.True(t, ok)

	// A single late update crosses two phase boundaries at once.
	clock.Advance(cfg.Prepare.DurationMS + cfg.RampUp.DurationMS + 50)
	m.Update(clock.Now())
	assert.Equal(t, mode.PhaseGenerate, g.Phase)

	// Stalling past the end of the sequence lands back in Active.
	clock.Advance(cfg.Generate.DurationMS + cfg.RampDown.DurationMS)
	m.Update(clock.Now())
	assert.IsType(t, &mode.Active{}, m.Current())
}
