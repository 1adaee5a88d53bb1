// Package input turns raw button and encoder readings into the
// discrete events the mode state machine consumes. Debouncing and
// interrupt wiring belong to the hardware layer; this package only
// handles press-length classification, encoder deltas, and the idle
// timeout.
package input

import "github.com/lorenzowood/portal-gun/internal/ticks"

// Event is a discrete user input event.
type Event int

const (
	EncoderCW Event = iota
	EncoderCCW
	ButtonShort
	ButtonLong
	IdleTimeout
)

func (e Event) String() string {
	switch e {
	case EncoderCW:
		return "encoder_cw"
	case EncoderCCW:
		return "encoder_ccw"
	case ButtonShort:
		return "button_short"
	case ButtonLong:
		return "button_long"
	case IdleTimeout:
		return "idle_timeout"
	default:
		return "unknown"
	}
}

// Source produces the events observed since the previous poll.
// Multiple encoder events may be returned from a single poll; a long
// press fires at most once per physical press; the idle timeout fires
// at most once per idle period and is cleared by any other event.
type Source interface {
	Poll(now ticks.Ticks) []Event
}

// Button reports the current pressed state of the push button.
type Button interface {
	Pressed() bool
}

// Encoder reports the accumulated detent position of the rotary
// encoder. The handler derives events from position deltas.
type Encoder interface {
	Position() int
}

// Config are the input timing thresholds.
type Config struct {
	LongPressMS   int64
	IdleTimeoutMS int64
}

// Handler is the polling Source implementation over a raw button and
// encoder.
type Handler struct {
	button  Button
	encoder Encoder
	cfg     Config

	buttonDown   bool
	pressAt      ticks.Ticks
	longFired    bool
	lastPosition int

	lastActivity ticks.Ticks
	idleFired    bool
}

// NewHandler builds a Handler whose idle timer starts at now.
func NewHandler(button Button, encoder Encoder, cfg Config, now ticks.Ticks) *Handler {
	h := &Handler{
		button:  button,
		encoder: encoder,
		cfg:     cfg,
	}
	if encoder != nil {
		h.lastPosition = encoder.Position()
	}
	h.resetIdle(now)
	return h
}

var _ Source = (*Handler)(nil)

// Poll reads the raw inputs and returns the events that occurred. Any
// non-idle event resets the idle timer.
func (h *Handler) Poll(now ticks.Ticks) []Event {
	var events []Event

	if h.encoder != nil {
		position := h.encoder.Position()
		delta := position - h.lastPosition
		if delta != 0 {
			h.resetIdle(now)
			for ; delta > 0; delta-- {
				events = append(events, EncoderCW)
			}
			for ; delta < 0; delta++ {
				events = append(events, EncoderCCW)
			}
			h.lastPosition = position
		}
	}

	if h.button != nil {
		pressed := h.button.Pressed()

		if pressed && !h.buttonDown {
			h.buttonDown = true
			h.pressAt = now
			h.longFired = false
			h.resetIdle(now)
		}

		if !pressed && h.buttonDown {
			h.buttonDown = false
			if !h.longFired {
				events = append(events, ButtonShort)
				h.resetIdle(now)
			}
		}

		if h.buttonDown && !h.longFired && now.Sub(h.pressAt) >= h.cfg.LongPressMS {
			events = append(events, ButtonLong)
			h.longFired = true
			h.resetIdle(now)
		}
	}

	if !h.idleFired && now.Sub(h.lastActivity) >= h.cfg.IdleTimeoutMS {
		events = append(events, IdleTimeout)
		h.idleFired = true
	}

	return events
}

func (h *Handler) resetIdle(now ticks.Ticks) {
	h.lastActivity = now
	h.idleFired = false
}
