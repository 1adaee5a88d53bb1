package animation

import (
	"github.com/lorenzowood/portal-gun/hardware"
	"github.com/lorenzowood/portal-gun/internal/ticks"
)

// Compositor owns the live animations for one strip and blends them
// additively per pixel. Animations handed to Add belong to the
// compositor from then on.
type Compositor struct {
	numPixels  int
	animations []Animation
	buf        []hardware.Color
}

func NewCompositor(numPixels int) *Compositor {
	return &Compositor{
		numPixels: numPixels,
		buf:       make([]hardware.Color, numPixels),
	}
}

// Add inserts an already-started animation.
func (c *Compositor) Add(a Animation) {
	c.animations = append(c.animations, a)
}

// Clear discards every held animation unconditionally. Used when
// leaving ambient-effect modes.
func (c *Compositor) Clear() {
	c.animations = c.animations[:0]
}

// Len reports the number of live animations.
func (c *Compositor) Len() int {
	return len(c.animations)
}

// Update advances every held animation and drops the ones that have
// finished.
func (c *Compositor) Update(now ticks.Ticks) {
	for _, a := range c.animations {
		a.Update(now)
	}
	live := c.animations[:0]
	for _, a := range c.animations {
		if !a.Finished() {
			live = append(live, a)
		}
	}
	// Release dropped animations for GC.
	for i := len(live); i < len(c.animations); i++ {
		c.animations[i] = nil
	}
	c.animations = live
}

// Composite returns the clamped additive sum of all non-finished
// animations' buffers, one entry per pixel. The returned slice is
// reused between calls; callers must not retain it across frames.
func (c *Compositor) Composite() []hardware.Color {
	for i := range c.buf {
		c.buf[i] = hardware.Off
	}
	for _, a := range c.animations {
		if a.Finished() {
			continue
		}
		pixels := a.Pixels()
		for i := 0; i < c.numPixels && i < len(pixels); i++ {
			c.buf[i] = c.buf[i].Add(pixels[i])
		}
	}
	return c.buf
}
