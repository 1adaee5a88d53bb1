package hw

import (
	"fmt"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"

	"github.com/lorenzowood/portal-gun/hardware"
)

const ledPWMFrequency = physic.KiloHertz

// PWMFrontLEDs drives the front indicator LEDs with hardware PWM via
// periph. The prop's LEDs are wired active-low.
type PWMFrontLEDs struct {
	pins      []gpio.PinIO
	activeLow bool
}

// NewPWMFrontLEDs resolves the named GPIO pins and switches them all
// off.
func NewPWMFrontLEDs(pinNames []string, activeLow bool) (*PWMFrontLEDs, error) {
	pins := make([]gpio.PinIO, 0, len(pinNames))
	for _, name := range pinNames {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, fmt.Errorf("hw: no GPIO pin named %q", name)
		}
		pins = append(pins, pin)
	}
	l := &PWMFrontLEDs{pins: pins, activeLow: activeLow}
	l.SetAllBrightness(0)
	return l, nil
}

var _ hardware.FrontLEDs = (*PWMFrontLEDs)(nil)

func (l *PWMFrontLEDs) NumLEDs() int {
	return len(l.pins)
}

func (l *PWMFrontLEDs) SetBrightness(index int, percent float64) {
	if index < 0 || index >= len(l.pins) {
		return
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	duty := gpio.Duty(percent / 100 * float64(gpio.DutyMax))
	if l.activeLow {
		duty = gpio.DutyMax - duty
	}
	if err := l.pins[index].PWM(duty, ledPWMFrequency); err != nil {
		logger.With(zap.Int("led", index), zap.Error(err)).Error("Failed to set LED brightness")
	}
}

func (l *PWMFrontLEDs) SetAllBrightness(percent float64) {
	for i := range l.pins {
		l.SetBrightness(i, percent)
	}
}
