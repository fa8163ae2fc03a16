// SPDX-License-Identifier: MIT

// Package network - Stoich storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold a species×reaction integer coefficient table in one flat buffer
//     with the explicit index formula i*reactions + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loop orders fixed so every derived quantity (orders, net change) is deterministic.
//
// Complexity quicksheet:
//   - NewStoich: O(s*r) zero-init; At/Set: O(1); Clone: O(s*r); Orders: O(s*r).

package network

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxSub  = "Sub"
	ctxRows = "StoichFromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// stoichErrorf wraps an error with a uniform Stoich context and callsite indices.
func stoichErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Stoich.%s(%d,%d): %w", method, row, col, err)
}

// Stoich is a row-major species×reaction matrix of stoichiometric coefficients.
//   - s,r hold dimensions (species, reactions).
//   - data is a flat buffer of length s*r (offset = i*r + j).
//
// Rows are species, columns are reactions: column j describes one firing of
// reaction j, and the column sum is that reaction's order.
type Stoich struct {
	s, r int   // species and reaction counts (> 0)
	data []int // contiguous row-major storage (len == s*r)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Stoich)(nil)

// NewStoich creates a species×reactions zero matrix.
//
// Implementation:
//   - Stage 1: validate species>0 && reactions>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity:
//   - Time O(s*r), Space O(s*r).
func NewStoich(species, reactions int) (*Stoich, error) {
	if species <= 0 || reactions <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Stoich{s: species, r: reactions, data: make([]int, species*reactions)}, nil
}

// StoichFromRows builds a Stoich from a [species][reaction] table.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions).
//   - Stage 2: every row must have the same, non-zero length (ErrDimensionMismatch).
//   - Stage 3: copy row by row into the flat buffer.
//
// Behavior highlights:
//   - Values are copied; later mutation of rows does not affect the result.
//   - Signs are NOT checked here; see Network validation.
//
// Complexity:
//   - Time O(s*r), Space O(s*r).
func StoichFromRows(rows [][]int) (*Stoich, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, networkErrorf(ctxRows, ErrInvalidDimensions)
	}
	var (
		s = len(rows)
		r = len(rows[0])
		i int
	)
	for i = 1; i < s; i++ {
		if len(rows[i]) != r {
			return nil, networkErrorf(ctxRows, ErrDimensionMismatch)
		}
	}

	m, err := NewStoich(s, r)
	if err != nil {
		return nil, networkErrorf(ctxRows, err)
	}
	for i = 0; i < s; i++ {
		copy(m.data[i*r:(i+1)*r], rows[i])
	}

	return m, nil
}

// Species returns the row count. Complexity: O(1).
func (m *Stoich) Species() int { return m.s }

// Reactions returns the column count. Complexity: O(1).
func (m *Stoich) Reactions() int { return m.r }

// Shape packs Species() and Reactions() into a single call.
func (m *Stoich) Shape() (species, reactions int) { return m.s, m.r }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Stoich) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.s {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.r {
		return 0, ErrOutOfRange
	}

	return row*m.r + col, nil
}

// at is the unchecked accessor for hot loops; callers guarantee bounds.
func (m *Stoich) at(row, col int) int { return m.data[row*m.r+col] }

// Coeff is the unchecked counterpart of At for per-step loops in other
// packages. Indices must lie inside Shape(); out-of-range access panics or
// reads a neighbouring entry.
func (m *Stoich) Coeff(row, col int) int { return m.at(row, col) }

// At returns the coefficient of species row in reaction col, or ErrOutOfRange.
// Complexity: O(1).
func (m *Stoich) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, stoichErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Stoich) Set(row, col, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return stoichErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(s*r).
func (m *Stoich) Clone() *Stoich {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Stoich{s: m.s, r: m.r, data: cp}
}

// Column returns a copy of reaction j's coefficients, indexed by species.
// Returns nil when j is out of range.
func (m *Stoich) Column(j int) []int {
	if j < 0 || j >= m.r {
		return nil
	}
	col := make([]int, m.s)
	for i := 0; i < m.s; i++ {
		col[i] = m.at(i, j)
	}

	return col
}

// Orders returns the column sums: the order of every reaction.
// Complexity: O(s*r), single pass in row-major order.
func (m *Stoich) Orders() []int {
	orders := make([]int, m.r)
	var i, j int
	for i = 0; i < m.s; i++ {
		for j = 0; j < m.r; j++ {
			orders[j] += m.at(i, j)
		}
	}

	return orders
}

// Sub returns m − other element-wise (used to derive the net change matrix).
// Errors: ErrNilNetwork for nil other, ErrDimensionMismatch for unequal shapes.
func (m *Stoich) Sub(other *Stoich) (*Stoich, error) {
	if other == nil {
		return nil, networkErrorf(ctxSub, ErrNilNetwork)
	}
	if m.s != other.s || m.r != other.r {
		return nil, networkErrorf(ctxSub, ErrDimensionMismatch)
	}
	out := &Stoich{s: m.s, r: m.r, data: make([]int, len(m.data))}
	for k := range m.data {
		out.data[k] = m.data[k] - other.data[k]
	}

	return out, nil
}

// minEntry returns the smallest coefficient; used by sign validation.
func (m *Stoich) minEntry() int {
	lo := m.data[0]
	for _, v := range m.data[1:] {
		if v < lo {
			lo = v
		}
	}

	return lo
}

// String renders one bracketed row per species, e.g. "[1, 0]\n[0, 1]\n".
func (m *Stoich) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.s; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.r; j++ {
			fmt.Fprintf(&sb, "%d", m.at(i, j))
			if j < m.r-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
