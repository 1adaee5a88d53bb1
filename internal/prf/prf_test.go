package prf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lorenzowood/portal-gun/internal/prf"
)

func TestUint64Deterministic(t *testing.T) {
	assert.Equal(t, prf.Uint64(1, 2, 3), prf.Uint64(1, 2, 3))
	assert.NotEqual(t, prf.Uint64(1, 2, 3), prf.Uint64(3, 2, 1))
	assert.NotEqual(t, prf.Uint64(0), prf.Uint64(0, 0))
}

func TestIntnRange(t *testing.T) {
	for k := uint64(0); k < 1000; k++ {
		v := prf.Intn(6, k)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
	assert.Equal(t, 0, prf.Intn(0, 1))
	assert.Equal(t, 0, prf.Intn(-3, 1))
}

func TestIntnCoversRange(t *testing.T) {
	seen := map[int]bool{}
	for k := uint64(0); k < 200; k++ {
		seen[prf.Intn(6, k)] = true
	}
	assert.Len(t, seen, 6)
}

func TestFloat64Range(t *testing.T) {
	for k := uint64(0); k < 1000; k++ {
		v := prf.Float64(k)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestLanesIndependent(t *testing.T) {
	// The same bucket on different lanes must not track each other.
	same := 0
	for bucket := uint64(0); bucket < 100; bucket++ {
		if prf.Intn(10, 1, bucket) == prf.Intn(10, 2, bucket) {
			same++
		}
	}
	assert.Less(t, same, 50)
}
