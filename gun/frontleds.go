package gun

import (
	"github.com/lorenzowood/portal-gun/internal/mode"
	"github.com/lorenzowood/portal-gun/internal/prf"
	"github.com/lorenzowood/portal-gun/internal/ticks"
)

// renderFrontLEDs drives the three indicator LEDs. They only light
// during the generation show.
func (c *Controller) renderFrontLEDs(now ticks.Ticks) {
	g, ok := c.machine.Current().(*mode.Generating)
	if !ok {
		c.hw.LEDs.SetAllBrightness(0)
		return
	}

	elapsed := phaseElapsed(g, now)

	switch g.Phase {
	case mode.PhasePrepare:
		c.hw.LEDs.SetAllBrightness(0)

	case mode.PhaseRampUp:
		progress := float64(elapsed) / float64(c.cfg.RampUp.DurationMS)
		if progress > 1 {
			progress = 1
		}
		c.hw.LEDs.SetAllBrightness(100 * progress)

	case mode.PhaseGenerate:
		c.renderGenerateLEDs(elapsed)

	case mode.PhaseRampDown:
		t := float64(elapsed) / float64(c.cfg.RampDown.DurationMS)
		if t > 1 {
			t = 1
		}
		c.hw.LEDs.SetAllBrightness(100 * (1 - t))

	case mode.PhaseComplete:
		c.hw.LEDs.SetAllBrightness(0)
	}
}

// renderGenerateLEDs remaps the throb extension into the LED
// oscillation range and adds independent per-LED noise at a fixed
// rate. Noise is keyed by a time bucket so the output stays a pure
// function of elapsed time.
func (c *Controller) renderGenerateLEDs(elapsed int64) {
	cfg := c.cfg.Generate

	extension := c.throbExtension(elapsed)
	span := cfg.ThrobMax - cfg.ThrobMin
	level := cfg.LEDOscMin
	if span > 0 {
		level = cfg.LEDOscMin + (extension-cfg.ThrobMin)/span*(cfg.LEDOscMax-cfg.LEDOscMin)
	}

	noiseBucket := uint64(elapsed * cfg.LEDNoiseHz / 1000)
	for i := 0; i < c.hw.LEDs.NumLEDs(); i++ {
		noise := (prf.Float64(keyLEDNoise, noiseBucket, uint64(i))*2 - 1) * cfg.LEDNoise
		c.hw.LEDs.SetBrightness(i, clampPercent(level+noise))
	}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
