// Package gun is the prop controller: a single cooperative frame loop
// that polls input, advances the mode state machine and animation
// state, and writes the light strip, front LEDs, and display exactly
// once per frame.
package gun

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lorenzowood/portal-gun/hardware"
	"github.com/lorenzowood/portal-gun/internal/animation"
	"github.com/lorenzowood/portal-gun/internal/config"
	"github.com/lorenzowood/portal-gun/internal/input"
	"github.com/lorenzowood/portal-gun/internal/logging"
	"github.com/lorenzowood/portal-gun/internal/mode"
	"github.com/lorenzowood/portal-gun/internal/ticks"
)

var logger = logging.New("gun")

// Hardware bundles the sinks the controller renders to. ErrorCodes
// lists the init failures collected at startup; while non-empty the
// controller bypasses normal rendering and flashes the codes on the
// center front LED.
type Hardware struct {
	Strip      hardware.PixelStrip
	LEDs       hardware.FrontLEDs
	Display    hardware.Display
	ErrorCodes []int
}

// Controller owns all per-frame state. It is not safe for concurrent
// use; Run drives it from a single goroutine.
type Controller struct {
	cfg    config.Config
	hw     Hardware
	clock  ticks.Clock
	source input.Source

	machine  *mode.Machine
	comp     *animation.Compositor
	motion   *animation.AmbientMotionManager
	sparkles *animation.SparkleGroupManager

	ambientOn bool
	startAt   ticks.Ticks
}

// New wires a controller. The ambient generators use their own
// non-deterministic randomness; everything the generation show renders
// is derived from elapsed time alone.
func New(cfg config.Config, hw Hardware, source input.Source, clock ticks.Clock) (*Controller, error) {
	now := clock.Now()
	machine, err := mode.NewMachine(cfg, now)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	comp := animation.NewCompositor(cfg.NumPixels)
	return &Controller{
		cfg:      cfg,
		hw:       hw,
		clock:    clock,
		source:   source,
		machine:  machine,
		comp:     comp,
		motion:   animation.NewAmbientMotionManager(comp, cfg.NumPixels, cfg.AmbientMotion, rng),
		sparkles: animation.NewSparkleGroupManager(comp, cfg.NumPixels, cfg.SparkleGroups, rng),
		startAt:  now,
	}, nil
}

// Machine exposes the mode state machine.
func (c *Controller) Machine() *mode.Machine {
	return c.machine
}

// Run executes the frame loop until ctx is cancelled, then blanks the
// hardware.
func (c *Controller) Run(ctx context.Context, frameInterval time.Duration) {
	logger.With(zap.Stringer("frameInterval", frameInterval)).Info("Starting frame loop")

	var lastWarning time.Time
	for {
		select {
		case <-ctx.Done():
			c.blank()
			logger.Info("Frame loop stopped")
			return
		default:
			startTime := time.Now()
			c.Step(c.clock.Now())
			frameDuration := time.Since(startTime)

			if frameDuration > frameInterval {
				if time.Since(lastWarning) > 10*time.Second {
					logger.With(zap.Stringer("frameDuration", frameDuration)).
						Warn("Cannot keep up with frame interval")
					lastWarning = time.Now()
				}
			} else {
				time.Sleep(frameInterval - frameDuration)
			}
		}
	}
}

// Step runs one frame at the given timestamp: poll input, dispatch,
// advance state, render. Exported so tests can drive frames with a
// manual clock.
func (c *Controller) Step(now ticks.Ticks) {
	if len(c.hw.ErrorCodes) > 0 {
		c.renderErrorCodes(now)
		return
	}

	for _, ev := range c.source.Poll(now) {
		logger.With(
			zap.Stringer("event", ev),
			zap.Stringer("code", c.machine.Code())).
			Debug("Input event")
		c.machine.HandleEvent(ev, now)
	}

	c.machine.Update(now)
	c.updateAmbient(now)

	c.renderDisplay(now)
	c.renderStrip(now)
	c.renderFrontLEDs(now)
	c.hw.Strip.Commit()
}

// updateAmbient keeps the background generators running in every mode
// except Standby, which discards all live animations outright.
func (c *Controller) updateAmbient(now ticks.Ticks) {
	if _, standby := c.machine.Current().(*mode.Standby); standby {
		if c.ambientOn {
			c.ambientOn = false
			c.motion.Disarm()
			c.sparkles.Disarm()
			c.comp.Clear()
		}
	} else {
		if !c.ambientOn {
			c.ambientOn = true
			c.motion.Arm(now)
			c.sparkles.Arm(now)
		}
		c.motion.Update(now)
		c.sparkles.Update(now)
	}
	c.comp.Update(now)
}

func (c *Controller) blank() {
	c.hw.Strip.SetAll(hardware.Off)
	c.hw.Strip.Commit()
	c.hw.LEDs.SetAllBrightness(0)
	c.hw.Display.Clear()
}

// phaseElapsed is the time since the current phase's anchor. Anchors
// advance by configured durations, so this can exceed the phase length
// only momentarily during catch-up.
func phaseElapsed(g *mode.Generating, now ticks.Ticks) int64 {
	e := now.Sub(g.PhaseAnchor)
	if e < 0 {
		return 0
	}
	return e
}
