// SPDX-License-Identifier: MIT
// Package vrp — solver driver (lexicographic two-stage optimization).
//
// The driver is the engine's state machine:
//
//	Idle → SolvingPrimary → PrimaryOptimal | PrimaryInfeasible
//	     → SolvingSecondary (Fairness mode, only after a primary result)
//	     → SecondaryOptimal | fault → Done
//
// expressed as straight-line control flow; the terminal state is captured in
// the Report. The two phases are strictly sequential: the secondary solve
// never starts before the primary phase reaches an accepted result (a proven
// optimum, or a timeout incumbent under the configurable fallback policy).
//
// Every accepted solution passes the independent checker before being
// returned; a disagreement between solver-reported and recomputed
// feasibility is always fatal-and-reported, never auto-corrected.

package vrp

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/vrpmilp/milp"
)

// Engine binds one Instance to one solving capability. Engines are cheap;
// the Instance may back any number of them. A single Engine admits at most
// one active solve at a time (the constraint model built for a solve is
// never shared), while independent Engines solve concurrently with no shared
// mutable state.
type Engine struct {
	inst   *Instance
	solver milp.Solver
	busy   atomic.Bool
}

// NewEngine validates the pairing and returns a ready engine.
func NewEngine(inst *Instance, solver milp.Solver) (*Engine, error) {
	if inst == nil {
		return nil, ErrInstanceNil
	}
	if solver == nil {
		return nil, ErrSolverNil
	}

	return &Engine{inst: inst, solver: solver}, nil
}

// Solve is the package-level convenience: one engine, one solve.
func Solve(ctx context.Context, inst *Instance, solver milp.Solver, opts Options) (*Solution, error) {
	e, err := NewEngine(inst, solver)
	if err != nil {
		return nil, err
	}

	return e.Solve(ctx, opts)
}

// Solve runs the full pipeline for opts and returns a validated Solution.
//
// Failure signaling (all matched via errors.Is):
//   - ErrPrimaryInfeasible — no feasible assignment; wrapped with a diagnosis
//     hint when cheaply derivable. No secondary phase is attempted: fairness
//     is meaningless without a feasible base solution.
//   - ErrUnbounded — modeling bug, should never occur with finite domains.
//   - ErrTimedOut — budget expired without a usable incumbent, or with
//     StrictTimeout set, without an optimality proof.
//   - ErrSolverFault — kernel failure or a validation mismatch.
//   - ErrSecondaryFault — secondary infeasibility (internal inconsistency).
//
// Complexity: model build O(n²·K); solve cost belongs to the kernel.
func (e *Engine) Solve(ctx context.Context, opts Options) (*Solution, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrSolveInProgress
	}
	defer e.busy.Store(false)

	started := time.Now()
	report := Report{
		SolveID: uuid.New().String(),
		Mode:    opts.Mode,
		Epsilon: opts.Epsilon,
	}

	f, err := BuildFormulation(e.inst, opts)
	if err != nil {
		return nil, err
	}
	budget := milp.Budget{TimeLimit: opts.TimeLimit, RelGap: opts.RelGap}

	// --- SolvingPrimary ---
	res, err := e.solver.Solve(ctx, f.MILP(), budget)
	if err != nil {
		return nil, fmt.Errorf("primary phase: %w: %w", ErrSolverFault, err)
	}

	var zA float64
	switch res.Status {
	case milp.StatusOptimal:
		report.PrimaryProven = true
	case milp.StatusFeasible:
		// Gap-limited incumbent: accepted, explicitly unproven.
	case milp.StatusInfeasible:
		if hint := e.inst.infeasibilityHint(); hint != "" {
			return nil, fmt.Errorf("%s: %w", hint, ErrPrimaryInfeasible)
		}

		return nil, ErrPrimaryInfeasible
	case milp.StatusUnbounded:
		return nil, ErrUnbounded
	case milp.StatusTimedOut:
		// Policy switch: strict mode surfaces the timeout; otherwise a
		// feasible incumbent's objective is accepted as an approximation.
		if opts.StrictTimeout || !res.HasIncumbent() {
			return nil, ErrTimedOut
		}
	default:
		return nil, fmt.Errorf("primary phase: unexpected status %v: %w", res.Status, ErrSolverFault)
	}

	// Z_A is recomputed from the assignment rather than read from the kernel
	// report; the two must agree for the solution to validate anyway.
	zA = round9(f.MILP().ObjectiveValue(res.Values))
	report.PrimaryObjective = zA
	report.Gap = res.Gap
	report.Status = res.Status.String()
	values := res.Values

	// --- SolvingSecondary (Fairness mode only, strictly after primary) ---
	if opts.Mode == ModeFairness {
		if cerr := ctx.Err(); cerr != nil {
			return nil, fmt.Errorf("between phases: %w", ErrTimedOut)
		}
		if aerr := f.AugmentFairness(zA); aerr != nil {
			return nil, aerr
		}
		report.SecondaryAttempted = true

		res2, serr := e.solver.Solve(ctx, f.MILP(), budget)
		if serr != nil {
			return nil, fmt.Errorf("secondary phase: %w: %w", ErrSolverFault, serr)
		}
		switch res2.Status {
		case milp.StatusOptimal:
			report.SecondaryProven = true
			values = res2.Values
		case milp.StatusFeasible:
			values = res2.Values
		case milp.StatusInfeasible:
			// The primary optimum satisfies the bound even with ε = 0, so
			// this can only be an internal consistency fault.
			return nil, ErrSecondaryFault
		case milp.StatusUnbounded:
			return nil, ErrUnbounded
		case milp.StatusTimedOut:
			if opts.StrictTimeout {
				return nil, ErrTimedOut
			}
			if res2.HasIncumbent() {
				values = res2.Values
			}
			// Otherwise fall back to the primary assignment: its routes are
			// still feasible and are all extraction reads, reported unproven.
		default:
			return nil, fmt.Errorf("secondary phase: unexpected status %v: %w", res2.Status, ErrSolverFault)
		}
		report.Status = res2.Status.String()
	}

	// --- Extraction + independent validation before acceptance ---
	sol, err := f.extract(values)
	if err != nil {
		return nil, err
	}
	if report.SecondaryAttempted {
		// MAD recomputed from workload records, never read back from dev(k).
		report.SecondaryObjective = sol.MeanAbsDeviation()
	}
	report.Elapsed = time.Since(started)
	sol.Report = report

	if verr := CheckSolution(e.inst, sol, opts); verr != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolverFault, verr)
	}

	return sol, nil
}
