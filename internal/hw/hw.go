// Package hw contains the concrete hardware sinks and sources behind
// the contracts in the hardware package: the WS281x strip, the PWM
// front LEDs, the TM1637 display, and the raw encoder/button readers.
package hw

import "github.com/lorenzowood/portal-gun/internal/logging"

var logger = logging.New("hw")

// Error codes flashed on the center front LED when a component fails
// to initialize.
const (
	ErrorCodeDisplay = 1
	ErrorCodePixels  = 2
)

// StripConfig configures the WS281x strip driver.
type StripConfig struct {
	GpioPin   int
	NumPixels int
	// Brightness is the driver-level global brightness, 0-255.
	Brightness int
}
