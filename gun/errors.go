package gun

import (
	"github.com/lorenzowood/portal-gun/hardware"
	"github.com/lorenzowood/portal-gun/internal/ticks"
)

const errorCenterLED = 1

// renderErrorCodes replaces normal rendering while hardware errors are
// present: the center front LED flashes each error code in turn (N
// flashes for code N, then a pause), computed statelessly from elapsed
// time.
func (c *Controller) renderErrorCodes(now ticks.Ticks) {
	c.hw.Strip.SetAll(hardware.Off)
	c.hw.Strip.Commit()
	c.hw.Display.Clear()

	flashCycle := c.cfg.ErrorFlashOnMS + c.cfg.ErrorFlashOffMS

	var total int64
	for _, code := range c.hw.ErrorCodes {
		total += int64(code)*flashCycle + c.cfg.ErrorPauseMS
	}
	if total <= 0 {
		return
	}

	pos := now.Sub(c.startAt) % total
	if pos < 0 {
		pos += total
	}

	on := false
	for _, code := range c.hw.ErrorCodes {
		span := int64(code)*flashCycle + c.cfg.ErrorPauseMS
		if pos < span {
			on = pos < int64(code)*flashCycle && pos%flashCycle < c.cfg.ErrorFlashOnMS
			break
		}
		pos -= span
	}

	c.hw.LEDs.SetAllBrightness(0)
	if on {
		c.hw.LEDs.SetBrightness(errorCenterLED, 100)
	}
}
