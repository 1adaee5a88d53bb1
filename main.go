package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env"
	"go.uber.org/zap"
	"periph.io/x/host/v3"

	"github.com/lorenzowood/portal-gun/gun"
	"github.com/lorenzowood/portal-gun/internal/config"
	"github.com/lorenzowood/portal-gun/internal/hw"
	"github.com/lorenzowood/portal-gun/internal/input"
	"github.com/lorenzowood/portal-gun/internal/logging"
	"github.com/lorenzowood/portal-gun/internal/ticks"
)

var (
	logger  = logging.New("main")
	envVars = PortalGunConfig{}
)

type PortalGunConfig struct {
	HardwareType    string        `env:"HARDWARE_TYPE" envDefault:"GPIO"`
	FrameInterval   time.Duration `env:"FRAME_INTERVAL" envDefault:"10ms"`
	NumPixels       int           `env:"NUM_PIXELS" envDefault:"15"`
	StripGpioPin    int           `env:"STRIP_GPIO_PIN" envDefault:"16"`
	StripBrightness int           `env:"STRIP_BRIGHTNESS" envDefault:"255"`
	LEDPins         []string      `env:"LED_PINS" envDefault:"GPIO13,GPIO14,GPIO15" envSeparator:","`
	LEDsActiveLow   bool          `env:"LEDS_ACTIVE_LOW" envDefault:"true"`
	DisplayCLKPin   string        `env:"DISPLAY_CLK_PIN" envDefault:"GPIO7"`
	DisplayDIOPin   string        `env:"DISPLAY_DIO_PIN" envDefault:"GPIO6"`
	EncoderCLKPin   string        `env:"ENCODER_CLK_PIN" envDefault:"GPIO10"`
	EncoderDTPin    string        `env:"ENCODER_DT_PIN" envDefault:"GPIO11"`
	ButtonPin       string        `env:"BUTTON_PIN" envDefault:"GPIO12"`
	UniverseCode    string        `env:"UNIVERSE_CODE" envDefault:"C137"`
}

func main() {
	defer logger.Sync()

	err := env.Parse(&envVars)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse environment variables")
	}

	logger.With(zap.Any("config", envVars)).Info("Starting portal gun")
	logger.Info("Set HARDWARE_TYPE to MOCK to run off the prop. Valid values are: [GPIO, MOCK]")
	logger.Info("Adjust FRAME_INTERVAL to change the frame cadence. (generation effects assume a few milliseconds)")
	logger.Info("Adjust UNIVERSE_CODE to change the code shown at startup.")
	logger.Info("Press Ctrl+C to stop")

	cfg := config.Default()
	cfg.NumPixels = envVars.NumPixels
	cfg.NumFrontLEDs = len(envVars.LEDPins)
	cfg.DefaultCode = envVars.UniverseCode

	clock := ticks.NewWallClock()
	propHW, source := buildHardware(cfg, clock)

	controller, err := gun.New(cfg, propHW, source, clock)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to create controller")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		controller.Run(ctx, envVars.FrameInterval)
		close(done)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown
	logger.Info("Shutting down")
	cancel()
	<-done
}

// buildHardware assembles the sinks and input source. GPIO components
// that fail to initialize are replaced with mocks and recorded as
// error codes; the controller flashes those on the center LED instead
// of rendering normally.
func buildHardware(cfg config.Config, clock ticks.Clock) (gun.Hardware, input.Source) {
	inputCfg := input.Config{
		LongPressMS:   cfg.LongPressMS,
		IdleTimeoutMS: cfg.IdleTimeoutMS,
	}

	switch envVars.HardwareType {
	case "GPIO":
		if _, err := host.Init(); err != nil {
			logger.With(zap.Error(err)).Fatal("Failed to initialize GPIO host")
		}

		propHW := gun.Hardware{}

		strip, err := hw.NewStrip(hw.StripConfig{
			GpioPin:    envVars.StripGpioPin,
			NumPixels:  envVars.NumPixels,
			Brightness: envVars.StripBrightness,
		})
		if err != nil {
			logger.With(zap.Error(err)).Error("Failed to open WS281x strip")
			propHW.ErrorCodes = append(propHW.ErrorCodes, hw.ErrorCodePixels)
			strip = hw.NewMockStrip(envVars.NumPixels)
		}
		propHW.Strip = strip

		display, err := hw.NewTM1637Display(envVars.DisplayCLKPin, envVars.DisplayDIOPin)
		if err != nil {
			logger.With(zap.Error(err)).Error("Failed to open display")
			propHW.ErrorCodes = append(propHW.ErrorCodes, hw.ErrorCodeDisplay)
			propHW.Display = hw.NewMockDisplay()
		} else {
			propHW.Display = display
		}

		leds, err := hw.NewPWMFrontLEDs(envVars.LEDPins, envVars.LEDsActiveLow)
		if err != nil {
			// No error code: without working LEDs there is nothing to
			// flash codes on anyway.
			logger.With(zap.Error(err)).Error("Failed to open front LEDs")
			propHW.LEDs = hw.NewMockFrontLEDs(len(envVars.LEDPins))
		} else {
			propHW.LEDs = leds
		}

		var button input.Button
		if b, err := hw.NewPushButton(envVars.ButtonPin); err != nil {
			logger.With(zap.Error(err)).Error("Failed to open button")
			button = hw.MockButton{}
		} else {
			button = b
		}

		var encoder input.Encoder
		if e, err := hw.NewRotaryEncoder(envVars.EncoderCLKPin, envVars.EncoderDTPin); err != nil {
			logger.With(zap.Error(err)).Error("Failed to open encoder")
			encoder = hw.MockEncoder{}
		} else {
			encoder = e
		}

		return propHW, input.NewHandler(button, encoder, inputCfg, clock.Now())

	case "MOCK":
		propHW := gun.Hardware{
			Strip:   hw.NewMockStrip(envVars.NumPixels),
			LEDs:    hw.NewMockFrontLEDs(len(envVars.LEDPins)),
			Display: hw.NewMockDisplay(),
		}
		return propHW, input.NewHandler(hw.MockButton{}, hw.MockEncoder{}, inputCfg, clock.Now())

	default:
		logger.Fatalf("unknown hardware type: %v", envVars.HardwareType)
		return gun.Hardware{}, nil
	}
}
