package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.FloatRange(0, 1), b.FloatRange(0, 1))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestZeroSeedIsReplaced(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestIntRangeIsInclusive(t *testing.T) {
	rng := NewPRNGService(1)
	seen := map[int]int{}
	for i := 0; i < 3000; i++ {
		seen[rng.IntRange(2, 4)]++
	}
	assert.Len(t, seen, 3)
	for v := 2; v <= 4; v++ {
		assert.Greater(t, seen[v], 800, "value %d", v)
	}
	assert.Equal(t, 7, rng.IntRange(7, 7))
}

func TestFloatRange(t *testing.T) {
	rng := NewPRNGService(2)
	for i := 0; i < 1000; i++ {
		v := rng.FloatRange(-0.3, 0.35)
		assert.GreaterOrEqual(t, v, -0.3)
		assert.Less(t, v, 0.35)
	}
	assert.Equal(t, 5.0, rng.FloatRange(5, 5))
}

func TestChance(t *testing.T) {
	rng := NewPRNGService(3)
	hits := 0
	for i := 0; i < 10000; i++ {
		assert.False(t, rng.Chance(0))
		assert.True(t, rng.Chance(1))
		if rng.Chance(0.2) {
			hits++
		}
	}
	assert.InDelta(t, 2000, hits, 200)
}

func TestMathHelpers(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3))
	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, 2.5, Lerp(0, 10, 0.25))
}
