package universe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzowood/portal-gun/internal/universe"
)

func mustParse(t *testing.T, s string) universe.Code {
	t.Helper()
	code, err := universe.Parse(s)
	require.NoError(t, err)
	return code
}

func TestParseAndString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"C137", "C137"},
		{"A000", "A000"},
		{"F999", "F999"},
		{"c137", "C137"}, // lowercase letters are accepted
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			code, err := universe.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code.String())
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "C13", "C1337", "G137", "CX37", "C1 7"} {
		t.Run(in, func(t *testing.T) {
			_, err := universe.Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestZeroValue(t *testing.T) {
	var code universe.Code
	assert.Equal(t, "A000", code.String())
}

func TestIncrementOdometer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"C137", "C138"},
		{"C999", "D000"},
		{"F999", "A000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			code := mustParse(t, tt.in)
			code.Increment()
			assert.Equal(t, tt.want, code.String())
		})
	}
}

func TestDecrementOdometer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"C137", "C136"},
		{"C000", "B999"},
		{"A000", "F999"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			code := mustParse(t, tt.in)
			code.Decrement()
			assert.Equal(t, tt.want, code.String())
		})
	}
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	code := mustParse(t, "A000")
	code.Decrement()
	code.Increment()
	assert.Equal(t, "A000", code.String())
}

func TestLetterWrap(t *testing.T) {
	code := mustParse(t, "F123")
	code.IncrementLetter()
	assert.Equal(t, "A123", code.String())
	code.DecrementLetter()
	assert.Equal(t, "F123", code.String())
}

func TestDigit(t *testing.T) {
	code := mustParse(t, "C137")
	assert.Equal(t, 1, code.Digit(0))
	assert.Equal(t, 3, code.Digit(1))
	assert.Equal(t, 7, code.Digit(2))
	assert.Equal(t, 0, code.Digit(3))
}

func TestDigitEditNoCarry(t *testing.T) {
	// Each position wraps independently; neighbours are untouched.
	code := mustParse(t, "C197")
	code.IncrementDigit(1)
	assert.Equal(t, "C107", code.String())

	code = mustParse(t, "C107")
	code.DecrementDigit(1)
	assert.Equal(t, "C197", code.String())

	code = mustParse(t, "C999")
	code.IncrementDigit(2)
	assert.Equal(t, "C990", code.String())

	code = mustParse(t, "C037")
	code.DecrementDigit(0)
	assert.Equal(t, "C937", code.String())
}
