package animation

import (
	"math/rand"

	"github.com/lorenzowood/portal-gun/internal/ticks"
)

// AmbientMotionConfig schedules gentle motion effects at a fixed
// interval on uniformly random pixels.
type AmbientMotionConfig struct {
	Motion     GentleMotionConfig
	IntervalMS int64
}

// AmbientMotionManager starts a new gentle motion every IntervalMS.
// The interval is anchored to the time each motion was started, so
// irregular update cadence does not accumulate drift.
type AmbientMotionManager struct {
	comp      *Compositor
	cfg       AmbientMotionConfig
	numPixels int
	rng       *rand.Rand
	next      ticks.Ticks
	armed     bool
}

func NewAmbientMotionManager(comp *Compositor, numPixels int, cfg AmbientMotionConfig, rng *rand.Rand) *AmbientMotionManager {
	return &AmbientMotionManager{
		comp:      comp,
		cfg:       cfg,
		numPixels: numPixels,
		rng:       rng,
	}
}

// Arm schedules the first motion to fire immediately. Called when the
// controller enters an ambient-effect mode.
func (m *AmbientMotionManager) Arm(now ticks.Ticks) {
	m.next = now
	m.armed = true
}

// Disarm stops the manager from scheduling further motions.
func (m *AmbientMotionManager) Disarm() {
	m.armed = false
}

// Update starts a new motion when the trigger time has passed. Called
// once per frame.
func (m *AmbientMotionManager) Update(now ticks.Ticks) {
	if !m.armed || now.Sub(m.next) < 0 {
		return
	}
	motion := NewGentleMotion(m.numPixels, m.rng.Intn(m.numPixels), m.cfg.Motion)
	motion.Start(now)
	m.comp.Add(motion)
	m.next = now.Add(m.cfg.IntervalMS)
}

// SparkleGroupConfig schedules bursts of sparkles: a random-size group
// with random intra-group spacing, then a longer random wait before the
// next group.
type SparkleGroupConfig struct {
	Sparkle            SparkleConfig
	GroupMin           int
	GroupMax           int
	WithinGroupMinMS   int64
	WithinGroupMaxMS   int64
	BetweenGroupsMinMS int64
	BetweenGroupsMaxMS int64
}

// SparkleGroupManager implements the two-level sparkle timer. State
// moves idle -> inGroup -> idle, with remaining strictly decreasing to
// zero before the group ends.
type SparkleGroupManager struct {
	comp      *Compositor
	cfg       SparkleGroupConfig
	numPixels int
	rng       *rand.Rand
	next      ticks.Ticks
	remaining int
	inGroup   bool
	armed     bool
}

func NewSparkleGroupManager(comp *Compositor, numPixels int, cfg SparkleGroupConfig, rng *rand.Rand) *SparkleGroupManager {
	return &SparkleGroupManager{
		comp:      comp,
		cfg:       cfg,
		numPixels: numPixels,
		rng:       rng,
	}
}

// Arm schedules the first group to start immediately.
func (m *SparkleGroupManager) Arm(now ticks.Ticks) {
	m.next = now
	m.inGroup = false
	m.remaining = 0
	m.armed = true
}

// Disarm stops the manager from scheduling further sparkles.
func (m *SparkleGroupManager) Disarm() {
	m.armed = false
}

// Update advances the group timer. Called once per frame.
func (m *SparkleGroupManager) Update(now ticks.Ticks) {
	if !m.armed || now.Sub(m.next) < 0 {
		return
	}

	if !m.inGroup {
		m.remaining = m.randBetween(m.cfg.GroupMin, m.cfg.GroupMax)
		m.inGroup = true
		m.spawnSparkle(now)
		m.next = now.Add(m.randBetweenMS(m.cfg.WithinGroupMinMS, m.cfg.WithinGroupMaxMS))
		return
	}

	m.remaining--
	if m.remaining > 0 {
		m.spawnSparkle(now)
		m.next = now.Add(m.randBetweenMS(m.cfg.WithinGroupMinMS, m.cfg.WithinGroupMaxMS))
	} else {
		m.inGroup = false
		m.next = now.Add(m.randBetweenMS(m.cfg.BetweenGroupsMinMS, m.cfg.BetweenGroupsMaxMS))
	}
}

// InGroup reports whether a sparkle group is currently running.
func (m *SparkleGroupManager) InGroup() bool {
	return m.inGroup
}

func (m *SparkleGroupManager) spawnSparkle(now ticks.Ticks) {
	sparkle := NewSparkle(m.numPixels, m.rng.Intn(m.numPixels), m.cfg.Sparkle)
	sparkle.Start(now)
	m.comp.Add(sparkle)
}

func (m *SparkleGroupManager) randBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.rng.Intn(hi-lo+1)
}

func (m *SparkleGroupManager) randBetweenMS(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + m.rng.Int63n(hi-lo+1)
}
