package kinetics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochkin/kinetics"
	"github.com/katalvlaran/stochkin/network"
)

func mustStoich(t *testing.T, rows [][]int) *network.Stoich {
	t.Helper()
	m, err := network.StoichFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestPropensities_MassAction checks the product-of-powers law, including
// a reaction whose reactant is absent.
func TestPropensities_MassAction(t *testing.T) {
	// R0: 2A + B, R1: A
	react := mustStoich(t, [][]int{{2, 1}, {1, 0}})
	out := make([]float64, 2)

	require.NoError(t, kinetics.Propensities(react, []float64{0.5, 2}, []int64{3, 4}, out))
	assert.Equal(t, []float64{18, 6}, out)
	assert.Equal(t, 24.0, kinetics.Total(out))

	require.NoError(t, kinetics.Propensities(react, []float64{0.5, 2}, []int64{0, 4}, out))
	assert.Equal(t, []float64{0, 0}, out)
	assert.Less(t, kinetics.Total(out), kinetics.ZeroPropensity)
}

// TestPropensities_Errors covers nil input and every length mismatch.
func TestPropensities_Errors(t *testing.T) {
	react := mustStoich(t, [][]int{{1, 0}, {0, 1}})
	out := make([]float64, 2)

	assert.ErrorIs(t, kinetics.Propensities(nil, []float64{1, 1}, []int64{1, 1}, out), kinetics.ErrNilStoich)
	assert.ErrorIs(t, kinetics.Propensities(react, []float64{1}, []int64{1, 1}, out), kinetics.ErrDimensionMismatch)
	assert.ErrorIs(t, kinetics.Propensities(react, []float64{1, 1}, []int64{1}, out), kinetics.ErrDimensionMismatch)
	assert.ErrorIs(t, kinetics.Propensities(react, []float64{1, 1}, []int64{1, 1}, out[:1]), kinetics.ErrDimensionMismatch)
}

// TestStochasticRates_VolumeAndMultiplicity walks every reactant pattern up to order 3.
func TestStochasticRates_VolumeAndMultiplicity(t *testing.T) {
	// Columns: ∅, A, A+B, 2A, 2A+B, 3A
	react := mustStoich(t, [][]int{
		{0, 1, 1, 2, 2, 3},
		{0, 0, 1, 0, 1, 0},
	})
	kDet := []float64{3, 5, 2, 2, 1, 1}

	kStoc, err := kinetics.StochasticRates(react, kDet, 2, false)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 5, 1, 2, 0.5, 1.5}, kStoc, 1e-12)
}

// TestStochasticRates_LowOrderUnscaled keeps zero- and first-order constants
// as given, whatever the volume and unit flag.
func TestStochasticRates_LowOrderUnscaled(t *testing.T) {
	// Columns: ∅ -> A, A -> ∅
	react := mustStoich(t, [][]int{{0, 1}})
	for _, chem := range []bool{false, true} {
		kStoc, err := kinetics.StochasticRates(react, []float64{1, 0.5}, 3, chem)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0.5}, kStoc, "chem=%v", chem)
	}
}

// TestStochasticRates_Chem divides by volume·Avogadro for bimolecular reactions.
func TestStochasticRates_Chem(t *testing.T) {
	react := mustStoich(t, [][]int{{1, 1}, {1, 0}})

	kStoc, err := kinetics.StochasticRates(react, []float64{1, 4}, 1, true)
	require.NoError(t, err)
	assert.InEpsilon(t, 1/kinetics.Avogadro, kStoc[0], 1e-12)
	assert.Equal(t, 4.0, kStoc[1], "first order is unaffected by chem")
}

// TestStochasticRates_Errors covers order, volume and shape failures.
func TestStochasticRates_Errors(t *testing.T) {
	react := mustStoich(t, [][]int{{1}})

	_, err := kinetics.StochasticRates(nil, []float64{1}, 1, false)
	assert.ErrorIs(t, err, kinetics.ErrNilStoich)
	_, err = kinetics.StochasticRates(react, []float64{1, 2}, 1, false)
	assert.ErrorIs(t, err, kinetics.ErrDimensionMismatch)

	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = kinetics.StochasticRates(react, []float64{1}, v, false)
		assert.ErrorIs(t, err, kinetics.ErrInvalidVolume, "volume=%v", v)
	}

	_, err = kinetics.StochasticRates(mustStoich(t, [][]int{{2}, {2}}), []float64{1}, 1, false)
	assert.ErrorIs(t, err, kinetics.ErrOrderTooHigh)
}

// TestClassify_Kinds exercises every HOR kind and its legacy code.
func TestClassify_Kinds(t *testing.T) {
	cases := []struct {
		name  string
		react [][]int
		want  []kinetics.HOR
		codes []int
	}{
		{
			name:  "first order and inert",
			react: [][]int{{1}, {0}},
			want:  []kinetics.HOR{{Kind: kinetics.Simple, Order: 1}, {Kind: kinetics.Inert}},
			codes: []int{1, 0},
		},
		{
			name:  "dimerization",
			react: [][]int{{2}, {0}},
			want:  []kinetics.HOR{{Kind: kinetics.DegenerateDouble, Order: 2}, {Kind: kinetics.Inert}},
			codes: []int{-2, 0},
		},
		{
			name:  "bimolecular",
			react: [][]int{{1}, {1}},
			want:  []kinetics.HOR{{Kind: kinetics.Simple, Order: 2}, {Kind: kinetics.Simple, Order: 2}},
			codes: []int{2, 2},
		},
		{
			name:  "2A+B",
			react: [][]int{{2}, {1}},
			want:  []kinetics.HOR{{Kind: kinetics.DegenerateTriplePair, Order: 3}, {Kind: kinetics.Simple, Order: 3}},
			codes: []int{-32, 3},
		},
		{
			name:  "3A",
			react: [][]int{{3}},
			want:  []kinetics.HOR{{Kind: kinetics.DegenerateTripleTriple, Order: 3}},
			codes: []int{-3},
		},
		{
			name:  "A+B and 2A",
			react: [][]int{{1, 2}, {1, 0}},
			want:  []kinetics.HOR{{Kind: kinetics.DegenerateDouble, Order: 2}, {Kind: kinetics.Simple, Order: 2}},
			codes: []int{-2, 2},
		},
		{
			name:  "2A dominated by A+B+C",
			react: [][]int{{2, 1}, {0, 1}, {0, 1}},
			want: []kinetics.HOR{
				{Kind: kinetics.Simple, Order: 3},
				{Kind: kinetics.Simple, Order: 3},
				{Kind: kinetics.Simple, Order: 3},
			},
			codes: []int{3, 3, 3},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := kinetics.Classify(mustStoich(t, tc.react))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			codes := make([]int, len(got))
			for i, h := range got {
				codes[i] = h.Code()
			}
			assert.Equal(t, tc.codes, codes)
		})
	}

	_, err := kinetics.Classify(nil)
	assert.ErrorIs(t, err, kinetics.ErrNilStoich)
}

// TestHOR_G checks the error-bound factor at the small-population special
// cases and in the generic regime.
func TestHOR_G(t *testing.T) {
	simple2 := kinetics.HOR{Kind: kinetics.Simple, Order: 2}
	double := kinetics.HOR{Kind: kinetics.DegenerateDouble, Order: 2}
	pair := kinetics.HOR{Kind: kinetics.DegenerateTriplePair, Order: 3}
	triple := kinetics.HOR{Kind: kinetics.DegenerateTripleTriple, Order: 3}

	assert.Equal(t, 2.0, simple2.G(50))
	assert.Equal(t, 0.0, kinetics.HOR{Kind: kinetics.Inert}.G(7))

	assert.Equal(t, 2.0, double.G(1))
	assert.InDelta(t, 2.0, double.G(3), 1e-12)

	assert.Equal(t, 3.0, pair.G(1))
	assert.InDelta(t, 3.75, pair.G(3), 1e-12)

	assert.Equal(t, 3.0, triple.G(1))
	assert.Equal(t, 3.0, triple.G(2))
	assert.InDelta(t, 5.5, triple.G(3), 1e-12)
}

// TestHORKind_String pins the names used by the CLI.
func TestHORKind_String(t *testing.T) {
	assert.Equal(t, "inert", kinetics.Inert.String())
	assert.Equal(t, "degenerate-triple-pair", kinetics.DegenerateTriplePair.String())
	assert.Equal(t, "HORKind(9)", kinetics.HORKind(9).String())
}

// TestRoulette picks by cumulative weight and never selects zero weights.
func TestRoulette(t *testing.T) {
	w := []float64{1, 0, 3}

	assert.Equal(t, 0, kinetics.Roulette(w, 0))
	assert.Equal(t, 0, kinetics.Roulette(w, 0.24))
	assert.Equal(t, 2, kinetics.Roulette(w, 0.25))
	assert.Equal(t, 2, kinetics.Roulette(w, 0.999999))
	assert.Equal(t, 2, kinetics.Roulette([]float64{0, 0, 2}, 0))
	assert.Equal(t, -1, kinetics.Roulette([]float64{0, 0}, 0.5))
	assert.Equal(t, -1, kinetics.Roulette(nil, 0.5))
}
