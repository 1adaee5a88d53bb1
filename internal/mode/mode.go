// Package mode implements the prop's mode state machine and the
// generation-sequence phase sequencer. Modes are a closed set of
// variants matched exhaustively by the renderer; the machine owns the
// universe code and all transition logic.
package mode

import (
	"github.com/lorenzowood/portal-gun/internal/ticks"
	"github.com/lorenzowood/portal-gun/internal/universe"
)

// Mode is the closed set of controller modes. Concrete types:
// *Standby, *Active, *CodeEdit, *Generating.
type Mode interface {
	mode()
}

// Standby is the low-power waiting mode. Only a long press leaves it.
type Standby struct {
	EnteredAt ticks.Ticks
}

// Active is normal operation: the code is shown and the encoder
// adjusts it in place.
type Active struct{}

// CodeEdit is per-character editing of the universe code. Position 0
// is the letter, 1-3 are the digits. The snapshot taken on entry is
// restored if the edit is aborted with a long press.
type CodeEdit struct {
	Position  int
	EnteredAt ticks.Ticks

	original universe.Code
}

// Generating is the timed portal generation show. Input is ignored;
// progression is purely time-driven.
type Generating struct {
	Phase       Phase
	StartedAt   ticks.Ticks
	PhaseAnchor ticks.Ticks
}

func (*Standby) mode()    {}
func (*Active) mode()     {}
func (*CodeEdit) mode()   {}
func (*Generating) mode() {}

// Phase is a step of the generation sequence. Phases advance strictly
// in order; Complete is transient and never rendered.
type Phase int

const (
	PhasePrepare Phase = iota
	PhaseRampUp
	PhaseGenerate
	PhaseRampDown
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhasePrepare:
		return "prepare"
	case PhaseRampUp:
		return "ramp_up"
	case PhaseGenerate:
		return "generate"
	case PhaseRampDown:
		return "ramp_down"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}
