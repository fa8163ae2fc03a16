package ssa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeriveSeed_Spreads checks that adjacent seeds and streams map apart.
func TestDeriveSeed_Spreads(t *testing.T) {
	seen := make(map[uint64]struct{})
	for s := uint64(0); s < 64; s++ {
		for _, stream := range []uint64{0, 1, pcgStream} {
			seen[deriveSeed(s, stream)] = struct{}{}
		}
	}
	assert.Len(t, seen, 64*3)
	assert.Equal(t, deriveSeed(5, pcgStream), deriveSeed(5, pcgStream))
}

// TestGenerator_Deterministic replays the same draw sequence for one seed.
func TestGenerator_Deterministic(t *testing.T) {
	a, b := newGenerator(17), newGenerator(17)
	for k := 0; k < 100; k++ {
		assert.Equal(t, a.exp(2.5), b.exp(2.5))
		assert.Equal(t, a.poisson(3.2), b.poisson(3.2))
		assert.Equal(t, a.uniform(), b.uniform())
	}

	c := newGenerator(18)
	assert.NotEqual(t, newGenerator(17).uniform(), c.uniform())
}

// TestGenerator_Ranges checks the support of every variate.
func TestGenerator_Ranges(t *testing.T) {
	g := newGenerator(0)
	var sum float64
	const n = 20000
	for k := 0; k < n; k++ {
		e := g.exp(4)
		assert.GreaterOrEqual(t, e, 0.0)
		sum += e
		assert.GreaterOrEqual(t, g.poisson(0.5), int64(0))
		u := g.uniform()
		assert.True(t, u >= 0 && u < 1)
	}
	assert.InDelta(t, 0.25, sum/n, 0.01)
}
