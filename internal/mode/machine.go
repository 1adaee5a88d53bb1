package mode

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lorenzowood/portal-gun/internal/config"
	"github.com/lorenzowood/portal-gun/internal/input"
	"github.com/lorenzowood/portal-gun/internal/logging"
	"github.com/lorenzowood/portal-gun/internal/ticks"
	"github.com/lorenzowood/portal-gun/internal/universe"
)

var logger = logging.New("mode")

// Machine coordinates mode transitions and owns the universe code.
// It is driven by the frame loop: HandleEvent for each polled input
// event, then Update once per frame for time-driven progression.
type Machine struct {
	cfg     config.Config
	code    universe.Code
	current Mode
}

// NewMachine starts in Standby with the configured default code.
func NewMachine(cfg config.Config, now ticks.Ticks) (*Machine, error) {
	code, err := universe.Parse(cfg.DefaultCode)
	if err != nil {
		return nil, fmt.Errorf("mode: bad default code: %w", err)
	}
	return &Machine{
		cfg:     cfg,
		code:    code,
		current: &Standby{EnteredAt: now},
	}, nil
}

// Current returns the active mode variant.
func (m *Machine) Current() Mode {
	return m.current
}

// Code returns the current universe code value.
func (m *Machine) Code() universe.Code {
	return m.code
}

// HandleEvent dispatches one input event to the active mode.
func (m *Machine) HandleEvent(ev input.Event, now ticks.Ticks) {
	switch s := m.current.(type) {
	case *Standby:
		if ev == input.ButtonLong {
			m.transition(&Active{}, now)
		}

	case *Active:
		switch ev {
		case input.ButtonShort:
			m.transition(&CodeEdit{original: m.code}, now)
		case input.ButtonLong:
			m.transition(&Generating{}, now)
		case input.IdleTimeout:
			m.transition(&Standby{}, now)
		case input.EncoderCW:
			m.code.Increment()
		case input.EncoderCCW:
			m.code.Decrement()
		}

	case *CodeEdit:
		switch ev {
		case input.ButtonLong:
			// Abort: restore the snapshot taken on entry.
			m.code = s.original
			m.transition(&Active{}, now)
		case input.ButtonShort:
			s.Position++
			if s.Position >= 4 {
				// All characters confirmed: commit.
				m.transition(&Active{}, now)
			}
		case input.EncoderCW:
			if s.Position == 0 {
				m.code.IncrementLetter()
			} else {
				m.code.IncrementDigit(s.Position - 1)
			}
		case input.EncoderCCW:
			if s.Position == 0 {
				m.code.DecrementLetter()
			} else {
				m.code.DecrementDigit(s.Position - 1)
			}
		}

	case *Generating:
		// Input is ignored for the whole sequence.
	}
}

// Update advances time-driven behavior; only Generating has any.
func (m *Machine) Update(now ticks.Ticks) {
	g, ok := m.current.(*Generating)
	if !ok {
		return
	}
	if m.advancePhases(g, now) {
		m.transition(&Active{}, now)
	}
}

// advancePhases runs the catch-up loop: as long as the current phase's
// configured duration has elapsed relative to the phase anchor, the
// phase increments and the anchor advances by that configured duration
// (never by measured elapsed time, so irregular update cadence cannot
// accumulate drift). Returns true once the terminal phase is reached.
func (m *Machine) advancePhases(g *Generating, now ticks.Ticks) bool {
	for g.Phase < PhaseComplete {
		duration := m.phaseDuration(g.Phase)
		if now.Sub(g.PhaseAnchor) < duration {
			return false
		}
		logger.With(
			zap.Stringer("from", g.Phase),
			zap.Stringer("to", g.Phase+1)).
			Debug("Generation phase complete")
		g.PhaseAnchor = g.PhaseAnchor.Add(duration)
		g.Phase++
	}
	return true
}

func (m *Machine) phaseDuration(p Phase) int64 {
	switch p {
	case PhasePrepare:
		return m.cfg.Prepare.DurationMS
	case PhaseRampUp:
		return m.cfg.RampUp.DurationMS
	case PhaseGenerate:
		return m.cfg.Generate.DurationMS
	case PhaseRampDown:
		return m.cfg.RampDown.DurationMS
	default:
		return 0
	}
}

// transition runs the exit hook of the old mode, swaps in the new one,
// and runs its enter hook.
func (m *Machine) transition(next Mode, now ticks.Ticks) {
	m.exit(m.current)
	m.current = next
	m.enter(next, now)
	logger.With(
		zap.String("mode", modeName(next)),
		zap.Stringer("code", m.code)).
		Info("Mode transition")
}

func (m *Machine) exit(Mode) {
	// No mode currently needs exit work; the hook is invoked before the
	// next mode's enter per the transition discipline.
}

func (m *Machine) enter(next Mode, now ticks.Ticks) {
	switch s := next.(type) {
	case *Standby:
		s.EnteredAt = now
	case *Active:
	case *CodeEdit:
		s.Position = 0
		s.EnteredAt = now
	case *Generating:
		s.Phase = PhasePrepare
		s.StartedAt = now
		s.PhaseAnchor = now
	}
}

func modeName(m Mode) string {
	switch m.(type) {
	case *Standby:
		return "standby"
	case *Active:
		return "active"
	case *CodeEdit:
		return "code_edit"
	case *Generating:
		return "generating"
	default:
		return "unknown"
	}
}
