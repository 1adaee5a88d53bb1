package ticks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lorenzowood/portal-gun/internal/ticks"
)

func TestSub(t *testing.T) {
	tests := []struct {
		name    string
		t, u    ticks.Ticks
		want    int64
	}{
		{"simple", 1000, 400, 600},
		{"negative", 400, 1000, -600},
		{"equal", 123, 123, 0},
		{"across wrap", 5, 0xFFFFFFFF - 5, 11},
		{"across wrap negative", 0xFFFFFFFF - 5, 5, -11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.t.Sub(tt.u))
		})
	}
}

func TestAdd(t *testing.T) {
	assert.Equal(t, ticks.Ticks(1500), ticks.Ticks(1000).Add(500))
	assert.Equal(t, ticks.Ticks(500), ticks.Ticks(1000).Add(-500))

	// Adding across the wrap boundary keeps differences consistent.
	near := ticks.Ticks(0xFFFFFFFF - 10)
	wrapped := near.Add(20)
	assert.Equal(t, int64(20), wrapped.Sub(near))
}

func TestManualClock(t *testing.T) {
	clock := &ticks.Manual{}
	start := clock.Now()
	clock.Advance(250)
	assert.Equal(t, int64(250), clock.Now().Sub(start))
}
