package animation

import (
	"math"

	"github.com/lorenzowood/portal-gun/hardware"
	"github.com/lorenzowood/portal-gun/internal/ticks"
)

// GentleMotionConfig are the tunables for a single gentle motion
// effect: a slow swell around a center pixel that bleeds into its
// neighbours with geometric falloff.
type GentleMotionConfig struct {
	MaxBrightness float64        // peak center brightness, percent
	Color         hardware.Color // effect color at full brightness
	RampUpMS      int64
	HoldMS        int64
	RampDownMS    int64
	DecayPixels   int     // neighbours affected on either side
	DecayRate     float64 // brightness multiplier per pixel of distance
}

// GentleMotion is a three-segment swell centered on one pixel,
// spreading to neighbours within DecayPixels at DecayRate^distance.
type GentleMotion struct {
	base
	center int
	cfg    GentleMotionConfig
}

// NewGentleMotion builds an unstarted gentle motion animation centered
// on the given pixel.
func NewGentleMotion(numPixels, center int, cfg GentleMotionConfig) *GentleMotion {
	return &GentleMotion{
		base:   newBase(numPixels),
		center: center,
		cfg:    cfg,
	}
}

func (g *GentleMotion) Update(now ticks.Ticks) {
	brightness, done := envelope(g.elapsed(now),
		g.cfg.RampUpMS, g.cfg.HoldMS, g.cfg.RampDownMS, g.cfg.MaxBrightness)
	if done {
		g.finish()
		g.blank()
		return
	}

	for i := range g.pixels {
		distance := i - g.center
		if distance < 0 {
			distance = -distance
		}
		if distance > g.cfg.DecayPixels {
			g.pixels[i] = hardware.Off
			continue
		}
		pixelBrightness := brightness * math.Pow(g.cfg.DecayRate, float64(distance))
		g.pixels[i] = g.cfg.Color.Scale(pixelBrightness / 100)
	}
}
