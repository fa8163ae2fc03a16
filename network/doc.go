// Package network models discrete-state chemical reaction networks.
//
// A network over S species and R reactions is described by two non-negative
// integer matrices of shape S×R:
//
//	react[i][j]: molecules of species i consumed by one firing of reaction j
//	prod[i][j] : molecules of species i produced by one firing of reaction j
//
// plus one deterministic rate constant per reaction. The net change matrix
// net = prod − react is derived once, and the order of reaction j is the
// column sum of react.
//
// ✨ Key features:
//   - Stoich: row-major integer matrix with bounds-checked accessors
//   - Network: immutable, validated at construction (shapes, signs, rates, names)
//   - Model files: YAML description of species, reactions and initial state
//
// ⚙️ Usage:
//
//	net, err := network.New(
//	    [][]int{{1, 0}, {0, 1}}, // A -> B, B -> ∅
//	    [][]int{{0, 0}, {1, 0}},
//	    []float64{1, 1},
//	    network.WithSpeciesNames("A", "B"),
//	)
//	if err != nil {
//	    // errors.Is(err, network.ErrDimensionMismatch), ...
//	}
//
// Errors are package-level sentinels (see errors.go); match with errors.Is.
package network
