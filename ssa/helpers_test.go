package ssa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochkin/network"
	"github.com/katalvlaran/stochkin/ssa"
)

func mustNetwork(t testing.TB, react, prod [][]int, k []float64) *network.Network {
	t.Helper()
	n, err := network.New(react, prod, k)
	require.NoError(t, err)

	return n
}

// reversible is A ⇌ B with unit rates; the propensity total is always
// positive, so no run can go extinct or get stuck.
func reversible(t testing.TB) *network.Network {
	return mustNetwork(t,
		[][]int{{1, 0}, {0, 1}},
		[][]int{{0, 1}, {1, 0}},
		[]float64{1, 1},
	)
}

// decay is A -> ∅.
func decay(t testing.TB) *network.Network {
	return mustNetwork(t, [][]int{{1}}, [][]int{{0}}, []float64{1})
}

// conversion is A -> B.
func conversion(t testing.TB) *network.Network {
	return mustNetwork(t, [][]int{{1}, {0}}, [][]int{{0}, {1}}, []float64{1})
}

// conversionDecay is A -> B, B -> ∅ with unit rates.
func conversionDecay(t testing.TB) *network.Network {
	return mustNetwork(t,
		[][]int{{1, 0}, {0, 1}},
		[][]int{{0, 0}, {1, 0}},
		[]float64{1, 1},
	)
}

func opts(maxT float64, maxIter int, seed uint64) ssa.Options {
	o := ssa.DefaultOptions()
	o.MaxT, o.MaxIter, o.Seed = maxT, maxIter, seed

	return o
}

func tauOpts(maxT float64, maxIter int, seed uint64) ssa.TauOptions {
	o := ssa.DefaultTauOptions()
	o.Options = opts(maxT, maxIter, seed)

	return o
}

// requireWellFormed checks the properties every trajectory must have: the
// initial point first, aligned slices, non-decreasing times and
// non-negative populations.
func requireWellFormed(t *testing.T, res *ssa.Result, init []int64) {
	t.Helper()
	require.NotNil(t, res)
	require.Equal(t, len(res.Times), len(res.States))
	require.GreaterOrEqual(t, res.Len(), 1)
	require.Equal(t, 0.0, res.Times[0])
	require.Equal(t, init, res.States[0])
	for k := 1; k < res.Len(); k++ {
		require.GreaterOrEqual(t, res.Times[k], res.Times[k-1], "time decreased at point %d", k)
	}
	for k, x := range res.States {
		for i, v := range x {
			require.GreaterOrEqual(t, v, int64(0), "species %d negative at point %d", i, k)
		}
	}
}

// requireRiseAndFall checks a two-species A -> B -> ∅ trajectory: species 0
// never increases, species 1 peaks strictly inside the run and ends clearly
// below the peak.
func requireRiseAndFall(t *testing.T, res *ssa.Result) {
	t.Helper()
	peak, at := int64(0), 0
	for k, x := range res.States {
		if k > 0 {
			require.LessOrEqual(t, x[0], res.States[k-1][0], "species 0 rose at point %d", k)
		}
		if x[1] > peak {
			peak, at = x[1], k
		}
	}
	_, last := res.Final()
	require.Positive(t, peak)
	require.Greater(t, at, 0)
	require.Less(t, at, res.Len()-1)
	require.Less(t, last[1], peak-5, "species 1 did not drain after its peak")
}
