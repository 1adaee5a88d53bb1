//go:build pi

package hw

import (
	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"
	"go.uber.org/zap"

	"github.com/lorenzowood/portal-gun/hardware"
)

// ws281xStrip drives the physical strip through the rpi-ws281x DMA
// engine. Writes are buffered in the driver until Commit renders them.
type ws281xStrip struct {
	dev       *ws2811.WS2811
	numPixels int
}

// NewStrip opens the WS281x device. The caller owns Close.
func NewStrip(cfg StripConfig) (hardware.PixelStrip, error) {
	opt := ws2811.DefaultOptions
	opt.Channels[0].GpioPin = cfg.GpioPin
	opt.Channels[0].LedCount = cfg.NumPixels
	opt.Channels[0].Brightness = cfg.Brightness

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return nil, err
	}
	if err := dev.Init(); err != nil {
		return nil, err
	}
	return &ws281xStrip{dev: dev, numPixels: cfg.NumPixels}, nil
}

func (s *ws281xStrip) NumPixels() int {
	return s.numPixels
}

func (s *ws281xStrip) SetPixel(index int, c hardware.Color) {
	if index < 0 || index >= s.numPixels {
		return
	}
	s.dev.Leds(0)[index] = packColor(c)
}

func (s *ws281xStrip) SetAll(c hardware.Color) {
	packed := packColor(c)
	leds := s.dev.Leds(0)
	for i := range leds {
		leds[i] = packed
	}
}

func (s *ws281xStrip) Commit() {
	if err := s.dev.Render(); err != nil {
		logger.With(zap.Error(err)).Error("Failed to render strip")
	}
}

// Close blanks the strip and releases the DMA channel.
func (s *ws281xStrip) Close() {
	s.SetAll(hardware.Off)
	s.Commit()
	s.dev.Fini()
}

// packColor converts channel percentages into the driver's 0xRRGGBB
// word.
func packColor(c hardware.Color) uint32 {
	c = c.Clamp()
	r := uint32(c.R * 255 / 100)
	g := uint32(c.G * 255 / 100)
	b := uint32(c.B * 255 / 100)
	return r<<16 | g<<8 | b
}
