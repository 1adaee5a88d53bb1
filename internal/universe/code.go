// Package universe implements the 4-character universe code the prop
// displays and lets the user edit: one letter from a fixed 6-letter
// alphabet followed by three digits, with cyclic odometer semantics.
package universe

import "fmt"

// Letters is the valid letter alphabet, in odometer order.
const Letters = "ABCDEF"

// Code is a universe code such as C137. The zero value is A000.
// Code is a plain value; copying it snapshots it.
type Code struct {
	letter int // index into Letters
	number int // 0-999
}

// Parse validates and converts a string such as "C137" into a Code.
func Parse(s string) (Code, error) {
	if len(s) != 4 {
		return Code{}, fmt.Errorf("universe: invalid code %q: want letter plus three digits", s)
	}
	letter := letterIndex(s[0])
	if letter < 0 {
		return Code{}, fmt.Errorf("universe: invalid letter %q: want one of %s", s[0], Letters)
	}
	number := 0
	for _, c := range []byte(s[1:]) {
		if c < '0' || c > '9' {
			return Code{}, fmt.Errorf("universe: invalid digit %q in code %q", c, s)
		}
		number = number*10 + int(c-'0')
	}
	return Code{letter: letter, number: number}, nil
}

func letterIndex(c byte) int {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for i := 0; i < len(Letters); i++ {
		if Letters[i] == c {
			return i
		}
	}
	return -1
}

// String formats the code as letter plus zero-padded digits, e.g.
// C137.
func (c Code) String() string {
	return fmt.Sprintf("%c%03d", Letters[c.letter], c.number)
}

// Increment advances the code by one with full odometer wrap:
// C137->C138, C999->D000, F999->A000.
func (c *Code) Increment() {
	c.number++
	if c.number > 999 {
		c.number = 0
		c.IncrementLetter()
	}
}

// Decrement steps the code back by one with full odometer wrap:
// C137->C136, C000->B999, A000->F999.
func (c *Code) Decrement() {
	c.number--
	if c.number < 0 {
		c.number = 999
		c.DecrementLetter()
	}
}

// IncrementLetter advances just the letter, wrapping F->A.
func (c *Code) IncrementLetter() {
	c.letter = (c.letter + 1) % len(Letters)
}

// DecrementLetter steps just the letter back, wrapping A->F.
func (c *Code) DecrementLetter() {
	c.letter = (c.letter + len(Letters) - 1) % len(Letters)
}

// Digit returns the digit at position 0 (hundreds) to 2 (ones).
// Out-of-range positions return 0.
func (c Code) Digit(position int) int {
	switch position {
	case 0:
		return c.number / 100
	case 1:
		return c.number / 10 % 10
	case 2:
		return c.number % 10
	default:
		return 0
	}
}

// IncrementDigit bumps the digit at the given position, wrapping 9->0
// without carrying.
func (c *Code) IncrementDigit(position int) {
	c.setDigit(position, (c.Digit(position)+1)%10)
}

// DecrementDigit steps the digit at the given position back, wrapping
// 0->9 without borrowing.
func (c *Code) DecrementDigit(position int) {
	c.setDigit(position, (c.Digit(position)+9)%10)
}

func (c *Code) setDigit(position, value int) {
	switch position {
	case 0:
		c.number = value*100 + c.number%100
	case 1:
		c.number = c.number/100*100 + value*10 + c.number%10
	case 2:
		c.number = c.number/10*10 + value
	}
}
