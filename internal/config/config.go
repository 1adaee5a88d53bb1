// Package config holds every tunable of the prop's choreography as one
// immutable value. The controller and renderers receive a Config at
// construction and never mutate it; environment overrides are applied
// once at startup in main.
package config

import (
	"github.com/lorenzowood/portal-gun/hardware"
	"github.com/lorenzowood/portal-gun/internal/animation"
)

// Well-known prop colors, channel percentages.
var (
	Green            = hardware.Color{R: 0, G: 100, B: 0}
	BlueWhite        = hardware.Color{R: 94, G: 94, B: 100} // 240,240,255 scaled
	PortalBackground = hardware.Color{R: 0, G: 75, B: 0}    // 0,192,0 scaled
)

// PrepareConfig covers the first generation phase: flash the current
// code, then hold it.
type PrepareConfig struct {
	DurationMS int64
	Flashes    int
	FlashOffMS int64
	FlashOnMS  int64
}

// RampUpConfig covers the second phase: a center-outward brightness
// wave with a fast two-level flicker, and rapid display cycling.
type RampUpConfig struct {
	DurationMS       int64
	CenterBrightness float64
	CenterColor      hardware.Color
	FlickerMin       float64 // low brightness multiplier, percent
	FlickerMax       float64 // high brightness multiplier, percent
	FlickerLowMS     int64
	FlickerHighMS    int64
	PixelDelayMS     int64 // ramp start delay per pixel of distance from center
	DisplayTickMS    int64
}

// GenerateConfig covers the third phase: the throb and the progressive
// character lock-in.
type GenerateConfig struct {
	DurationMS     int64
	BGColor        hardware.Color
	FGColor        hardware.Color
	ThrobInitialMS int64   // first rise to ThrobMax
	ThrobMax       float64 // extension, percent of half strip
	ThrobMin       float64
	ThrobDownMS    int64
	ThrobUpMS      int64
	LEDOscMax      float64 // front LED oscillation range, percent
	LEDOscMin      float64
	LEDNoise       float64 // +/- noise applied to front LEDs, percent
	LEDNoiseHz     int64
}

// RampDownConfig covers the fourth phase: crossfade back to ambient
// while flashing the locked code.
type RampDownConfig struct {
	DurationMS   int64
	DisplayOnMS  int64
	DisplayOffMS int64
}

// Config is the complete tunable set for the prop.
type Config struct {
	NumPixels    int
	NumFrontLEDs int

	LongPressMS      int64
	IdleTimeoutMS    int64
	StandbyDisplayMS int64

	EditFlashPeriodMS int64
	EditFlashDuty     float64

	ErrorFlashOnMS  int64
	ErrorFlashOffMS int64
	ErrorPauseMS    int64

	AmbientMotion animation.AmbientMotionConfig
	SparkleGroups animation.SparkleGroupConfig

	Prepare  PrepareConfig
	RampUp   RampUpConfig
	Generate GenerateConfig
	RampDown RampDownConfig

	DefaultCode string
}

// Default returns the stock tuning for the prop.
func Default() Config {
	return Config{
		NumPixels:    15,
		NumFrontLEDs: 3,

		LongPressMS:      700,
		IdleTimeoutMS:    3 * 60 * 1000,
		StandbyDisplayMS: 3000,

		EditFlashPeriodMS: 300,
		EditFlashDuty:     0.5,

		ErrorFlashOnMS:  150,
		ErrorFlashOffMS: 183,
		ErrorPauseMS:    1000,

		AmbientMotion: animation.AmbientMotionConfig{
			Motion: animation.GentleMotionConfig{
				MaxBrightness: 50,
				Color:         Green,
				RampUpMS:      3000,
				HoldMS:        1000,
				RampDownMS:    3000,
				DecayPixels:   2,
				DecayRate:     0.5,
			},
			IntervalMS: 5000,
		},
		SparkleGroups: animation.SparkleGroupConfig{
			Sparkle: animation.SparkleConfig{
				MaxBrightness: 100,
				Color:         BlueWhite,
				RampUpMS:      20,
				HoldMS:        0,
				RampDownMS:    500,
			},
			GroupMin:           1,
			GroupMax:           5,
			WithinGroupMinMS:   200,
			WithinGroupMaxMS:   500,
			BetweenGroupsMinMS: 2000,
			BetweenGroupsMaxMS: 5000,
		},

		Prepare: PrepareConfig{
			DurationMS: 500,
			Flashes:    3,
			FlashOffMS: 50,
			FlashOnMS:  100,
		},
		RampUp: RampUpConfig{
			DurationMS:       1000,
			CenterBrightness: 100,
			CenterColor:      Green,
			FlickerMin:       50,
			FlickerMax:       100,
			FlickerLowMS:     10,
			FlickerHighMS:    20,
			PixelDelayMS:     100,
			DisplayTickMS:    100,
		},
		Generate: GenerateConfig{
			DurationMS:     3000,
			BGColor:        PortalBackground,
			FGColor:        BlueWhite,
			ThrobInitialMS: 100,
			ThrobMax:       90,
			ThrobMin:       40,
			ThrobDownMS:    80,
			ThrobUpMS:      40,
			LEDOscMax:      100,
			LEDOscMin:      50,
			LEDNoise:       20,
			LEDNoiseHz:     20,
		},
		RampDown: RampDownConfig{
			DurationMS:   2000,
			DisplayOnMS:  250,
			DisplayOffMS: 50,
		},

		DefaultCode: "C137",
	}
}

// CenterPixel is the strip midpoint the generation effects radiate
// from.
func (c Config) CenterPixel() int {
	return c.NumPixels / 2
}

// GenerationTotalMS is the summed duration of all timed generation
// phases.
func (c Config) GenerationTotalMS() int64 {
	return c.Prepare.DurationMS + c.RampUp.DurationMS + c.Generate.DurationMS + c.RampDown.DurationMS
}
