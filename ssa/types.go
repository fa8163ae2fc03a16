// SPDX-License-Identifier: MIT

package ssa

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptions is returned when Options/TauOptions fail validation.
	// The wrapping message names the offending field.
	ErrInvalidOptions = errors.New("ssa: invalid options")

	// ErrInvalidState is returned when the initial state has the wrong length
	// or a negative population. It wraps the network sentinel as well.
	ErrInvalidState = errors.New("ssa: invalid initial state")

	// ErrNilNetwork indicates a nil *network.Network argument.
	ErrNilNetwork = errors.New("ssa: nil network")
)

// Status classifies how a simulation ended. Exactly one status is produced
// per run, by whichever engine terminates the loop.
type Status int

const (
	// StatusOrderTooHigh: some reaction has order > 3; detected before the loop.
	StatusOrderTooHigh Status = -1
	// StatusStuck: the propensity total is ~0 while reactive species remain.
	StatusStuck Status = -2
	// StatusNegativePopulation: an update would drive a species below zero.
	// The offending state is not recorded.
	StatusNegativePopulation Status = -3
	// StatusCanceled: the caller's context ended the run between iterations.
	StatusCanceled Status = 0
	// StatusMaxIter: the iteration budget is exhausted (success).
	StatusMaxIter Status = 1
	// StatusMaxTime: the time budget is exhausted (success). The last
	// recorded point is the first one at or beyond MaxT.
	StatusMaxTime Status = 2
	// StatusExtinct: every reactive species is depleted (success).
	StatusExtinct Status = 3
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOrderTooHigh:
		return "order-too-high"
	case StatusStuck:
		return "stuck"
	case StatusNegativePopulation:
		return "negative-population"
	case StatusCanceled:
		return "canceled"
	case StatusMaxIter:
		return "max-iter"
	case StatusMaxTime:
		return "max-time"
	case StatusExtinct:
		return "extinct"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Succeeded reports whether s is one of the nominal terminations
// (iteration budget, time budget, extinction).
func (s Status) Succeeded() bool { return s > 0 }

// Trajectory is the ordered sequence of recorded (time, state) points.
// Times are non-decreasing; the first point is (0, initial state). Every
// state is an independent copy.
type Trajectory struct {
	Times  []float64
	States [][]int64
}

// Len returns the number of recorded points.
func (tr *Trajectory) Len() int { return len(tr.Times) }

// Final returns the last recorded point. It returns (0, nil) for an empty
// trajectory.
func (tr *Trajectory) Final() (float64, []int64) {
	n := len(tr.Times)
	if n == 0 {
		return 0, nil
	}

	return tr.Times[n-1], tr.States[n-1]
}

func (tr *Trajectory) record(t float64, x []int64) {
	tr.Times = append(tr.Times, t)
	tr.States = append(tr.States, append([]int64(nil), x...))
}

// Result is the outcome of one simulation call: the trajectory generated
// so far and its terminal status.
type Result struct {
	Trajectory
	Status Status
}
