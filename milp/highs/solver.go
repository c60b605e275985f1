// SPDX-License-Identifier: MIT
// Package highs — kernel adapter implementation.
//
// Translation layout (one kernel column per milp column, one kernel row per
// milp row, insertion order preserved on both axes):
//   - ColCosts:   dense objective vector (0 for columns absent from the objective).
//   - ColLower/ColUpper/VarTypes: dense per-column metadata.
//   - ConstMatrix: Nonzero{Row,Col,Val} triplets, row-major in emission order.
//   - RowLower/RowUpper: two-sided row bounds (±Inf for one-sided rows).
//
// The budget is handed to the kernel itself ("time_limit", "mip_rel_gap"
// options), so the kernel stops in-search and can still surface its best
// incumbent; ctx is only a cancellation fallback for callers that abandon
// the solve entirely.
package highs

import (
	"context"
	"fmt"
	"time"

	lanl "github.com/lanl/highs"

	"github.com/katalvlaran/vrpmilp/milp"
)

// primalFeasible is kHighsSolutionStatusFeasible: the kernel's
// "primal_solution_status" info value when the stored point is feasible.
const primalFeasible = 2

// gapTol separates a proven optimum from a gap-limited stop when reading the
// kernel's reported "mip_gap".
const gapTol = 1e-9

// Solver is a stateless milp.Solver backed by HiGHS.
// The zero value is ready to use; one Solver may serve concurrent solves
// because every call builds its own kernel model.
type Solver struct{}

// New returns a HiGHS-backed solver.
func New() *Solver { return &Solver{} }

// Solve implements milp.Solver.
//
// Contract:
//   - m non-nil and structurally valid (guaranteed by milp.Model construction);
//   - budget validated (milp.ErrBadBudget otherwise).
//
// Budget handling: TimeLimit (tightened by a ctx deadline when one is set)
// becomes the kernel's "time_limit" option, RelGap its "mip_rel_gap". A
// kernel stop at the time limit maps to StatusTimedOut and carries the best
// incumbent when the kernel holds a feasible point; a stop at the gap maps
// to StatusFeasible.
//
// Cancellation: the kernel call blocks on its own goroutine; when ctx is
// cancelled first, StatusTimedOut is returned without an incumbent (the
// bindings expose no mid-search handle to recover one).
//
// Complexity: translation O(vars + nonzeros); solve cost is the kernel's.
func (s *Solver) Solve(ctx context.Context, m *milp.Model, budget milp.Budget) (milp.Result, error) {
	if m == nil {
		return milp.Result{}, milp.ErrNilModel
	}
	if err := budget.Validate(); err != nil {
		return milp.Result{}, err
	}

	rm, err := translate(m).ToRawModel()
	if err != nil {
		return milp.Result{}, fmt.Errorf("highs model: %v: %w", err, milp.ErrKernel)
	}
	if limit := kernelTimeLimit(ctx, budget); limit > 0 {
		if err = rm.SetFloat64Option("time_limit", limit); err != nil {
			return milp.Result{}, fmt.Errorf("highs time_limit: %v: %w", err, milp.ErrKernel)
		}
	}
	if budget.RelGap > 0 {
		if err = rm.SetFloat64Option("mip_rel_gap", budget.RelGap); err != nil {
			return milp.Result{}, fmt.Errorf("highs mip_rel_gap: %v: %w", err, milp.ErrKernel)
		}
	}

	type answer struct {
		res milp.Result
		err error
	}
	started := time.Now()
	done := make(chan answer, 1)
	go func() {
		sol, serr := rm.Solve()
		if serr != nil {
			done <- answer{err: fmt.Errorf("highs solve: %v: %w", serr, milp.ErrKernel)}

			return
		}

		// Kernel-reported extras; both are advisory and absent for pure LPs.
		var gap float64
		if g, gerr := sol.GetFloat64Info("mip_gap"); gerr == nil {
			gap = g
		}
		feasible := false
		if ps, perr := sol.GetIntInfo("primal_solution_status"); perr == nil {
			feasible = ps == primalFeasible
		}

		res, ierr := interpret(sol.Status, sol.ColumnPrimal, sol.Objective, gap, feasible, m.NumVars())
		done <- answer{res: res, err: ierr}
	}()

	select {
	case <-ctx.Done():
		// Cancelled before the kernel answered. No incumbent is retrievable
		// through the bindings at this point.
		return milp.Result{Status: milp.StatusTimedOut, Runtime: time.Since(started)}, nil
	case a := <-done:
		if a.err != nil {
			return milp.Result{}, a.err
		}
		a.res.Runtime = time.Since(started)

		return a.res, nil
	}
}

// minKernelLimit is the floor applied when a ctx deadline has already passed
// by the time the option is set: the kernel still gets a limit, never
// "unlimited".
const minKernelLimit = 1e-3

// kernelTimeLimit picks the tighter of the budget and the ctx deadline, in
// seconds; 0 means unlimited.
func kernelTimeLimit(ctx context.Context, budget milp.Budget) float64 {
	limit := budget.TimeLimit
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); limit == 0 || remaining < limit {
			limit = remaining
		}
		if limit.Seconds() < minKernelLimit {
			return minKernelLimit
		}
	}
	if limit <= 0 {
		return 0
	}

	return limit.Seconds()
}

// interpret maps a kernel terminal status onto the contract. Anything outside
// the documented set is a kernel fault: surfaced, never downgraded.
func interpret(status lanl.ModelStatus, primal []float64, objective, gap float64, feasible bool, wantCols int) (milp.Result, error) {
	switch status {
	case lanl.Optimal:
		values := append([]float64(nil), primal...)
		if len(values) != wantCols {
			return milp.Result{}, fmt.Errorf("highs: short primal vector (%d of %d): %w",
				len(values), wantCols, milp.ErrKernel)
		}
		res := milp.Result{
			Status:    milp.StatusOptimal,
			Values:    values,
			Objective: objective,
			Gap:       gap,
		}
		// A stop at mip_rel_gap still reports Optimal; a nonzero remaining
		// gap means the incumbent is unproven.
		if gap > gapTol {
			res.Status = milp.StatusFeasible
		}

		return res, nil
	case lanl.Infeasible:
		return milp.Result{Status: milp.StatusInfeasible}, nil
	case lanl.Unbounded:
		return milp.Result{Status: milp.StatusUnbounded}, nil
	case lanl.TimeLimit:
		res := milp.Result{Status: milp.StatusTimedOut, Gap: gap}
		if feasible && len(primal) == wantCols {
			res.Values = append([]float64(nil), primal...)
			res.Objective = objective
		}

		return res, nil
	default:
		return milp.Result{}, fmt.Errorf("highs: unexpected status %v: %w", status, milp.ErrKernel)
	}
}

// translate builds the kernel model arrays from a milp.Model.
func translate(m *milp.Model) *lanl.Model {
	var (
		km    = new(lanl.Model)
		nVars = m.NumVars()
		nRows = m.NumConstraints()
		i, j  int
	)

	km.ColCosts = make([]float64, nVars)
	km.ColLower = make([]float64, nVars)
	km.ColUpper = make([]float64, nVars)
	km.VarTypes = make([]lanl.VariableType, nVars)
	for i = 0; i < nVars; i++ {
		v, _ := m.VarAt(i)
		km.ColLower[i] = v.Lower
		km.ColUpper[i] = v.Upper
		if v.Type == milp.Integer {
			km.VarTypes[i] = lanl.IntegerType
		}
	}
	for _, t := range m.Objective() {
		km.ColCosts[t.Var] = t.Coef
	}

	km.RowLower = make([]float64, nRows)
	km.RowUpper = make([]float64, nRows)
	for i = 0; i < nRows; i++ {
		row, _ := m.ConstraintAt(i)
		km.RowLower[i] = row.Lower
		km.RowUpper[i] = row.Upper
		for j = 0; j < len(row.Terms); j++ {
			km.ConstMatrix = append(km.ConstMatrix, lanl.Nonzero{
				Row: i,
				Col: row.Terms[j].Var,
				Val: row.Terms[j].Coef,
			})
		}
	}

	return km
}
