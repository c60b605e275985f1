// SPDX-License-Identifier: MIT
// Package milp — the external solving capability contract.
//
// A Solver accepts a finished Model plus a Budget and returns a Result:
// a terminal status, and a full column assignment when a feasible point
// exists. The engine never inspects solver internals; everything it needs
// crosses this boundary.
package milp

import (
	"context"
	"time"
)

// Status is the terminal state of a solve attempt.
type Status int

const (
	// StatusOptimal: proven optimal assignment returned.
	StatusOptimal Status = iota

	// StatusFeasible: a feasible assignment returned without an optimality
	// proof (e.g. gap-limited termination).
	StatusFeasible

	// StatusInfeasible: the model admits no feasible assignment.
	StatusInfeasible

	// StatusUnbounded: the objective is unbounded below. With finite variable
	// domains this signals a modeling bug, not a data condition.
	StatusUnbounded

	// StatusTimedOut: the budget expired before a terminal answer; Values may
	// still carry the best incumbent when one was found.
	StatusTimedOut
)

// String implements fmt.Stringer for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusFeasible:
		return "Feasible"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusTimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

// Budget bounds one solve attempt.
// Zero values mean "unlimited" / "prove optimality".
type Budget struct {
	// TimeLimit is the wall-clock budget; 0 means unlimited.
	TimeLimit time.Duration

	// RelGap is the relative optimality gap at which the solver may stop
	// and report StatusFeasible; 0 demands a proof.
	RelGap float64
}

// Validate rejects negative budgets with ErrBadBudget.
func (b Budget) Validate() error {
	if b.TimeLimit < 0 || b.RelGap < 0 {
		return ErrBadBudget
	}

	return nil
}

// Result is the outcome of one solve attempt.
type Result struct {
	Status Status

	// Values is the column assignment, indexed like Model columns.
	// Nil when no feasible point was found.
	Values []float64

	// Objective is the objective value at Values (meaningless when Values is nil).
	Objective float64

	// Gap is the relative optimality gap reported by the solver
	// (0 for proven optima; may be unset for kernels that do not report it).
	Gap float64

	// Runtime is the wall-clock time the solver spent.
	Runtime time.Duration
}

// HasIncumbent reports whether the result carries a usable assignment.
func (r Result) HasIncumbent() bool {
	return r.Values != nil &&
		(r.Status == StatusOptimal || r.Status == StatusFeasible || r.Status == StatusTimedOut)
}

// Solver is implemented by MILP solving capabilities.
//
// Contract:
//   - Solve must not retain or mutate m after returning.
//   - Cancellation is cooperative: implementations observe ctx between search
//     nodes where the kernel allows, and must still surface the best incumbent
//     found so far instead of discarding partial work.
//   - A non-nil error is reserved for kernel-level faults (ErrKernel wraps);
//     Infeasible/Unbounded/TimedOut are statuses, not errors.
type Solver interface {
	Solve(ctx context.Context, m *Model, budget Budget) (Result, error)
}
