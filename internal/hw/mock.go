package hw

import (
	"go.uber.org/zap"

	"github.com/lorenzowood/portal-gun/hardware"
)

// Mock implementations for development off the prop. They hold state
// so the frame loop behaves normally; the display logs what it would
// show.

// MockStrip is an in-memory PixelStrip.
type MockStrip struct {
	pixels []hardware.Color
}

func NewMockStrip(numPixels int) *MockStrip {
	return &MockStrip{pixels: make([]hardware.Color, numPixels)}
}

var _ hardware.PixelStrip = (*MockStrip)(nil)

func (s *MockStrip) NumPixels() int {
	return len(s.pixels)
}

func (s *MockStrip) SetPixel(index int, c hardware.Color) {
	if index < 0 || index >= len(s.pixels) {
		return
	}
	s.pixels[index] = c.Clamp()
}

func (s *MockStrip) SetAll(c hardware.Color) {
	c = c.Clamp()
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

func (s *MockStrip) Commit() {
	logger.With(zap.Any("pixels", s.pixels)).Debug("Strip commit")
}

// Pixels exposes the last committed buffer.
func (s *MockStrip) Pixels() []hardware.Color {
	return s.pixels
}

// MockFrontLEDs records brightness levels.
type MockFrontLEDs struct {
	levels []float64
}

func NewMockFrontLEDs(numLEDs int) *MockFrontLEDs {
	return &MockFrontLEDs{levels: make([]float64, numLEDs)}
}

var _ hardware.FrontLEDs = (*MockFrontLEDs)(nil)

func (l *MockFrontLEDs) NumLEDs() int {
	return len(l.levels)
}

func (l *MockFrontLEDs) SetBrightness(index int, percent float64) {
	if index < 0 || index >= len(l.levels) {
		return
	}
	l.levels[index] = percent
}

func (l *MockFrontLEDs) SetAllBrightness(percent float64) {
	for i := range l.levels {
		l.levels[i] = percent
	}
}

// Levels exposes the current brightness values.
func (l *MockFrontLEDs) Levels() []float64 {
	return l.levels
}

// MockDisplay logs shown text when it changes.
type MockDisplay struct {
	last string
}

var _ hardware.Display = (*MockDisplay)(nil)

func NewMockDisplay() *MockDisplay {
	return &MockDisplay{}
}

func (d *MockDisplay) ShowText(text string) {
	if text == d.last {
		return
	}
	d.last = text
	logger.With(zap.String("text", text)).Debug("Display")
}

func (d *MockDisplay) ShowNumber(n int) {
	d.ShowText(fmtNumber(n))
}

func (d *MockDisplay) Clear() {
	d.ShowText("")
}

// Text exposes the last shown text.
func (d *MockDisplay) Text() string {
	return d.last
}

func fmtNumber(n int) string {
	if n < 0 {
		n = 0
	}
	b := []byte{'0', '0', '0', '0'}
	for i := 3; i >= 0 && n > 0; i-- {
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b)
}

// MockButton is never pressed; MockEncoder never moves. They stand in
// for the real inputs when developing off the prop.
type MockButton struct{}

func (MockButton) Pressed() bool { return false }

type MockEncoder struct{}

func (MockEncoder) Position() int { return 0 }
