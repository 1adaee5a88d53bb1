package gun

import (
	"github.com/tanema/gween/ease"

	"github.com/lorenzowood/portal-gun/hardware"
	"github.com/lorenzowood/portal-gun/internal/mode"
	"github.com/lorenzowood/portal-gun/internal/ticks"
)

func (c *Controller) renderStrip(now ticks.Ticks) {
	ambient := c.comp.Composite()

	switch s := c.machine.Current().(type) {
	case *mode.Standby:
		c.hw.Strip.SetAll(hardware.Off)

	case *mode.Active, *mode.CodeEdit:
		c.writePixels(ambient)

	case *mode.Generating:
		c.renderGenerationStrip(s, ambient, now)
	}
}

func (c *Controller) writePixels(pixels []hardware.Color) {
	for i, color := range pixels {
		c.hw.Strip.SetPixel(i, color)
	}
}

func (c *Controller) renderGenerationStrip(g *mode.Generating, ambient []hardware.Color, now ticks.Ticks) {
	elapsed := phaseElapsed(g, now)

	switch g.Phase {
	case mode.PhasePrepare:
		// Ambient only; the show has not reached the lights yet.
		c.writePixels(ambient)

	case mode.PhaseRampUp:
		for i, back := range ambient {
			brightness := c.rampUpBrightness(i, elapsed)
			wave := c.cfg.RampUp.CenterColor.Scale(brightness / 100)
			c.hw.Strip.SetPixel(i, back.Add(wave))
		}

	case mode.PhaseGenerate:
		extension := c.throbExtension(elapsed)
		for i, back := range ambient {
			c.hw.Strip.SetPixel(i, back.Add(c.throbColor(i, extension)))
		}

	case mode.PhaseRampDown:
		// Throb opacity fades 100->0 over the phase; ambient opacity
		// reaches 100 by the halfway point. The throb keeps cycling
		// from where the generate phase left it, shrinking with its
		// own opacity.
		t := float64(elapsed) / float64(c.cfg.RampDown.DurationMS)
		if t > 1 {
			t = 1
		}
		throbOpacity := 1 - t
		ambientOpacity := 2 * t
		if ambientOpacity > 1 {
			ambientOpacity = 1
		}
		extension := c.throbExtension(c.cfg.Generate.DurationMS+elapsed) * throbOpacity
		for i, back := range ambient {
			throb := c.throbColor(i, extension).Scale(throbOpacity)
			c.hw.Strip.SetPixel(i, throb.Add(back.Scale(ambientOpacity)))
		}

	case mode.PhaseComplete:
		c.writePixels(ambient)
	}
}

// rampUpBrightness computes the center-outward wave: each pixel's ramp
// start is delayed in proportion to its distance from center, and a
// still-ramping pixel flickers between two brightness multipliers on a
// short fixed cycle.
func (c *Controller) rampUpBrightness(pixel int, elapsed int64) float64 {
	cfg := c.cfg.RampUp
	distance := pixel - c.cfg.CenterPixel()
	if distance < 0 {
		distance = -distance
	}

	pixelElapsed := elapsed - int64(distance)*cfg.PixelDelayMS
	if pixelElapsed <= 0 {
		return 0
	}
	rampDuration := cfg.DurationMS - int64(distance)*cfg.PixelDelayMS
	if rampDuration <= 0 {
		return 0
	}

	progress := float64(pixelElapsed) / float64(rampDuration)
	if progress >= 1 {
		return cfg.CenterBrightness
	}

	flicker := cfg.FlickerMax
	if elapsed%(cfg.FlickerLowMS+cfg.FlickerHighMS) < cfg.FlickerLowMS {
		flicker = cfg.FlickerMin
	}
	return cfg.CenterBrightness * progress * flicker / 100
}

// throbExtension follows the three-segment oscillation: a fast initial
// rise to the maximum, then a repeating fall/rise cycle with separate
// down and up times. Pure function of phase-relative elapsed time.
func (c *Controller) throbExtension(elapsed int64) float64 {
	cfg := c.cfg.Generate
	if elapsed < cfg.ThrobInitialMS {
		return float64(ease.Linear(float32(elapsed), 0, float32(cfg.ThrobMax), float32(cfg.ThrobInitialMS)))
	}

	cycle := (elapsed - cfg.ThrobInitialMS) % (cfg.ThrobDownMS + cfg.ThrobUpMS)
	if cycle < cfg.ThrobDownMS {
		return float64(ease.Linear(float32(cycle),
			float32(cfg.ThrobMax), float32(cfg.ThrobMin-cfg.ThrobMax), float32(cfg.ThrobDownMS)))
	}
	return float64(ease.Linear(float32(cycle-cfg.ThrobDownMS),
		float32(cfg.ThrobMin), float32(cfg.ThrobMax-cfg.ThrobMin), float32(cfg.ThrobUpMS)))
}

// throbColor maps the extension value to a radial blend: pixels within
// extension% of the half strip length are blended from the background
// color toward the foreground color, strongest at center.
func (c *Controller) throbColor(pixel int, extension float64) hardware.Color {
	reach := extension / 100 * float64(c.cfg.NumPixels) / 2
	if reach <= 0 {
		return hardware.Off
	}
	distance := pixel - c.cfg.CenterPixel()
	if distance < 0 {
		distance = -distance
	}
	if float64(distance) > reach {
		return hardware.Off
	}
	falloff := 1 - float64(distance)/reach
	return hardware.Lerp(c.cfg.Generate.BGColor, c.cfg.Generate.FGColor, falloff)
}
