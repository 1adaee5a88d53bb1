//go:build !pi

package hw

import (
	"errors"

	"github.com/lorenzowood/portal-gun/hardware"
)

// NewStrip is only available in builds tagged pi; elsewhere the caller
// should fall back to the mock strip.
func NewStrip(cfg StripConfig) (hardware.PixelStrip, error) {
	return nil, errors.New("hw: WS281x strip requires a pi build")
}
