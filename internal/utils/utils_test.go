package utils

import (
	"math"
	"testing"

	"go-survivors/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVector(t *testing.T) {
	x, y := NormalizeVector(3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	x, y = NormalizeVector(1, 1)
	assert.InDelta(t, 1.0, math.Hypot(x, y), 1e-9)

	x, y = NormalizeVector(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestRandomEdgePositionStaysOnPaddedEdge(t *testing.T) {
	rng := NewPRNGService(42)
	const w, h, pad = 1024.0, 768.0, 20.0
	for i := 0; i < 500; i++ {
		x, y := RandomEdgePosition(rng, w, h, pad)
		assert.GreaterOrEqual(t, x, pad)
		assert.LessOrEqual(t, x, w-pad)
		assert.GreaterOrEqual(t, y, pad)
		assert.LessOrEqual(t, y, h-pad)
		onEdge := x == pad || x == w-pad || y == pad || y == h-pad
		assert.True(t, onEdge, "point (%v, %v) is not on an edge", x, y)
	}
}

func TestRectsOverlap(t *testing.T) {
	assert.True(t, RectsOverlap(0, 0, 10, 10, 15, 0, 10, 10))
	assert.False(t, RectsOverlap(0, 0, 10, 10, 25, 0, 10, 10))
	assert.False(t, RectsOverlap(0, 0, 10, 10, 0, 30, 10, 10))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-9)
}

func TestChooseWeightedRespectsWeights(t *testing.T) {
	rng := NewPRNGService(7)
	entries := []defs.SpawnEntry{{Tier: defs.Tier1, Weight: 70}, {Tier: defs.Tier2, Weight: 30}}
	counts := map[defs.EnemyTier]int{}
	const n = 10000
	for i := 0; i < n; i++ {
		counts[rng.ChooseWeighted(entries)]++
	}
	assert.InDelta(t, 0.7, float64(counts[defs.Tier1])/n, 0.03)
	assert.InDelta(t, 0.3, float64(counts[defs.Tier2])/n, 0.03)
	assert.Zero(t, counts[defs.Tier3])
}

func TestChooseWeightedDegenerateTables(t *testing.T) {
	rng := NewPRNGService(1)
	assert.Equal(t, defs.Tier1, rng.ChooseWeighted(nil))
	assert.Equal(t, defs.Tier3, rng.ChooseWeighted([]defs.SpawnEntry{{Tier: defs.Tier3, Weight: 0}}))
}

func TestChance(t *testing.T) {
	rng := NewPRNGService(3)
	assert.True(t, rng.Chance(1))
	assert.False(t, rng.Chance(0))
}
