// Package hardware defines the contracts between the rendering core and
// the physical prop: the addressable strip, the three front indicator
// LEDs, and the 4-character display. Implementations live in
// internal/hw; the core never touches pins directly.
package hardware

// Color is an RGB triple with each channel expressed as a percentage
// (0-100). All animation math happens in percentage space; drivers
// convert to device units at the last moment.
type Color struct {
	R float64
	G float64
	B float64
}

// Off is the all-channels-zero color.
var Off = Color{}

// Clamp limits every channel to the valid 0-100 range.
func (c Color) Clamp() Color {
	return Color{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
	}
}

// Add returns the saturating per-channel sum of c and o. The result is
// clamped, so the order of a chain of Adds does not affect the final
// clamped value.
func (c Color) Add(o Color) Color {
	return Color{
		R: c.R + o.R,
		G: c.G + o.G,
		B: c.B + o.B,
	}.Clamp()
}

// Scale multiplies every channel by f. The result is not clamped;
// callers scaling by factors in [0,1] stay in range by construction.
func (c Color) Scale(f float64) Color {
	return Color{
		R: c.R * f,
		G: c.G * f,
		B: c.B * f,
	}
}

// Lerp linearly interpolates from a to b by t in [0,1].
func Lerp(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

func clampChannel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// PixelStrip is the addressable light strip. Writes are buffered; the
// frame renderer calls Commit exactly once per frame after all pixels
// for that frame are set. Out-of-range indices are ignored.
type PixelStrip interface {
	NumPixels() int
	SetPixel(index int, c Color)
	SetAll(c Color)
	Commit()
}

// FrontLEDs drives the indicator LEDs on the front of the prop.
// Brightness is a percentage; out-of-range indices are ignored.
type FrontLEDs interface {
	NumLEDs() int
	SetBrightness(index int, percent float64)
	SetAllBrightness(percent float64)
}

// Display is the 4-character 7-segment display. Text longer than four
// characters is truncated; unsupported characters render blank.
type Display interface {
	ShowText(text string)
	ShowNumber(n int)
	Clear()
}
