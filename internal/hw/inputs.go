package hw

import (
	"fmt"
	"sync/atomic"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// PushButton reads the encoder's push switch. The switch pulls the
// line low when pressed.
type PushButton struct {
	pin gpio.PinIO
}

func NewPushButton(pinName string) (*PushButton, error) {
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("hw: no GPIO pin named %q", pinName)
	}
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("hw: button pin: %w", err)
	}
	return &PushButton{pin: pin}, nil
}

func (b *PushButton) Pressed() bool {
	return b.pin.Read() == gpio.Low
}

// RotaryEncoder tracks detent position from the quadrature CLK/DT
// pair. Edge watching runs on its own goroutine; the input handler
// only reads the accumulated position, so the rendering core stays
// single-threaded.
type RotaryEncoder struct {
	clk      gpio.PinIO
	dt       gpio.PinIO
	position atomic.Int64
}

func NewRotaryEncoder(clkName, dtName string) (*RotaryEncoder, error) {
	clk := gpioreg.ByName(clkName)
	if clk == nil {
		return nil, fmt.Errorf("hw: no GPIO pin named %q", clkName)
	}
	dt := gpioreg.ByName(dtName)
	if dt == nil {
		return nil, fmt.Errorf("hw: no GPIO pin named %q", dtName)
	}
	if err := clk.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("hw: encoder clock pin: %w", err)
	}
	if err := dt.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("hw: encoder data pin: %w", err)
	}
	e := &RotaryEncoder{clk: clk, dt: dt}
	go e.watch()
	return e, nil
}

func (e *RotaryEncoder) watch() {
	for {
		if !e.clk.WaitForEdge(-1) {
			continue
		}
		// Falling CLK edge: DT level gives the direction.
		if e.dt.Read() == gpio.Low {
			e.position.Add(1)
		} else {
			e.position.Add(-1)
		}
	}
}

func (e *RotaryEncoder) Position() int {
	return int(e.position.Load())
}
