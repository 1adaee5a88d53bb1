package animation

import (
	"github.com/lorenzowood/portal-gun/hardware"
	"github.com/lorenzowood/portal-gun/internal/ticks"
)

// SparkleConfig are the tunables for a single-pixel sparkle: a very
// fast rise and a longer tail.
type SparkleConfig struct {
	MaxBrightness float64
	Color         hardware.Color
	RampUpMS      int64
	HoldMS        int64
	RampDownMS    int64
}

// Sparkle is a three-segment flash on exactly one pixel.
type Sparkle struct {
	base
	pixel int
	cfg   SparkleConfig
}

// NewSparkle builds an unstarted sparkle on the given pixel.
func NewSparkle(numPixels, pixel int, cfg SparkleConfig) *Sparkle {
	return &Sparkle{
		base:  newBase(numPixels),
		pixel: pixel,
		cfg:   cfg,
	}
}

func (s *Sparkle) Update(now ticks.Ticks) {
	brightness, done := envelope(s.elapsed(now),
		s.cfg.RampUpMS, s.cfg.HoldMS, s.cfg.RampDownMS, s.cfg.MaxBrightness)
	if done {
		s.finish()
		s.blank()
		return
	}

	s.blank()
	if s.pixel >= 0 && s.pixel < len(s.pixels) {
		s.pixels[s.pixel] = s.cfg.Color.Scale(brightness / 100)
	}
}
