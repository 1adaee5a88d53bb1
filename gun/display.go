package gun

import (
	"github.com/lorenzowood/portal-gun/internal/mode"
	"github.com/lorenzowood/portal-gun/internal/prf"
	"github.com/lorenzowood/portal-gun/internal/ticks"
	"github.com/lorenzowood/portal-gun/internal/universe"
)

// PRF key prefixes, one per consumer so lanes never collide.
const (
	keyRampUpDisplay uint64 = 0x52
	keyLockSequence  uint64 = 0x47
	keyLEDNoise      uint64 = 0x4C
)

const digits = "0123456789"

func (c *Controller) renderDisplay(now ticks.Ticks) {
	switch s := c.machine.Current().(type) {
	case *mode.Standby:
		if now.Sub(s.EnteredAt) < c.cfg.StandbyDisplayMS {
			c.hw.Display.ShowText("Stby")
		} else {
			c.hw.Display.Clear()
		}

	case *mode.Active:
		c.hw.Display.ShowText(c.machine.Code().String())

	case *mode.CodeEdit:
		c.renderEditDisplay(s, now)

	case *mode.Generating:
		c.renderGenerationDisplay(s, now)
	}
}

// renderEditDisplay shows confirmed characters, flashes the one being
// edited, and blanks the rest.
func (c *Controller) renderEditDisplay(s *mode.CodeEdit, now ticks.Ticks) {
	code := c.machine.Code().String()
	period := c.cfg.EditFlashPeriodMS
	flashOn := now.Sub(s.EnteredAt)%period < int64(float64(period)*c.cfg.EditFlashDuty)

	out := make([]byte, 4)
	for i := 0; i < 4; i++ {
		switch {
		case i < s.Position:
			out[i] = code[i]
		case i == s.Position && flashOn:
			out[i] = code[i]
		default:
			out[i] = ' '
		}
	}
	c.hw.Display.ShowText(string(out))
}

func (c *Controller) renderGenerationDisplay(g *mode.Generating, now ticks.Ticks) {
	elapsed := phaseElapsed(g, now)

	switch g.Phase {
	case mode.PhasePrepare:
		// Flash the current code a fixed number of times, then hold it.
		flashPeriod := c.cfg.Prepare.FlashOffMS + c.cfg.Prepare.FlashOnMS
		flashWindow := int64(c.cfg.Prepare.Flashes) * flashPeriod
		if elapsed < flashWindow && elapsed%flashPeriod < c.cfg.Prepare.FlashOffMS {
			c.hw.Display.Clear()
		} else {
			c.hw.Display.ShowText(c.machine.Code().String())
		}

	case mode.PhaseRampUp:
		// Cycle random candidate characters on a fixed tick.
		bucket := uint64(elapsed / c.cfg.RampUp.DisplayTickMS)
		out := []byte{
			universe.Letters[prf.Intn(len(universe.Letters), keyRampUpDisplay, bucket, 0)],
			digits[prf.Intn(10, keyRampUpDisplay, bucket, 1)],
			digits[prf.Intn(10, keyRampUpDisplay, bucket, 2)],
			digits[prf.Intn(10, keyRampUpDisplay, bucket, 3)],
		}
		c.hw.Display.ShowText(string(out))

	case mode.PhaseGenerate:
		c.hw.Display.ShowText(c.lockInText(elapsed))

	case mode.PhaseRampDown:
		// Flash the locked code for the whole phase.
		cycle := c.cfg.RampDown.DisplayOnMS + c.cfg.RampDown.DisplayOffMS
		if elapsed%cycle < c.cfg.RampDown.DisplayOnMS {
			c.hw.Display.ShowText(c.machine.Code().String())
		} else {
			c.hw.Display.Clear()
		}

	case mode.PhaseComplete:
		// Transient; the mode transition fires before this renders.
	}
}

// lockInText locks the final code's characters left to right, one per
// quarter of the generate phase. Unlocked positions cycle through a
// shuffled character sequence indexed by a coarse time bucket, offset
// per position so they never move in unison.
func (c *Controller) lockInText(elapsed int64) string {
	final := c.machine.Code().String()
	quarter := c.cfg.Generate.DurationMS / 4
	locked := 0
	if quarter > 0 {
		locked = int(elapsed / quarter)
	}
	if locked > 4 {
		locked = 4
	}

	bucket := elapsed / c.cfg.RampUp.DisplayTickMS
	out := make([]byte, 4)
	for i := 0; i < 4; i++ {
		if i < locked {
			out[i] = final[i]
			continue
		}
		charset := digits
		if i == 0 {
			charset = universe.Letters
		}
		out[i] = cycleChar(charset, bucket+int64(i)*3, uint64(i))
	}
	return string(out)
}

// cycleChar returns the character at the given index of an endless
// sequence made of shuffled charset blocks, with consecutive
// duplicates avoided across block boundaries.
func cycleChar(charset string, index int64, lane uint64) byte {
	if index < 0 {
		index = 0
	}
	n := int64(len(charset))
	perm := blockPermutation(charset, index/n, lane)
	return perm[index%n]
}

func blockPermutation(charset string, block int64, lane uint64) []byte {
	perm := rawPermutation(charset, block, lane)
	if block > 0 {
		prev := rawPermutation(charset, block-1, lane)
		// The boundary fix only touches the first two slots, so the
		// previous block's last element is stable to compare against.
		if perm[0] == prev[len(prev)-1] {
			perm[0], perm[1] = perm[1], perm[0]
		}
	}
	return perm
}

// rawPermutation is a Fisher-Yates shuffle keyed entirely by (lane,
// block): the same block always shuffles the same way.
func rawPermutation(charset string, block int64, lane uint64) []byte {
	perm := []byte(charset)
	for i := len(perm) - 1; i > 0; i-- {
		j := prf.Intn(i+1, keyLockSequence, lane, uint64(block), uint64(i))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
