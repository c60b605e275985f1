// SPDX-License-Identifier: MIT
package highs

import (
	"context"

	lanl "github.com/lanl/highs"

	"github.com/katalvlaran/vrpmilp/milp"
)

// Translate re-exports the private translation step for white-box tests.
func Translate(m *milp.Model) *lanl.Model { return translate(m) }

// KernelTimeLimit re-exports the budget/deadline reconciliation.
func KernelTimeLimit(ctx context.Context, budget milp.Budget) float64 {
	return kernelTimeLimit(ctx, budget)
}

// Interpret re-exports the kernel-status mapping.
func Interpret(status lanl.ModelStatus, primal []float64, objective, gap float64, feasible bool, wantCols int) (milp.Result, error) {
	return interpret(status, primal, objective, gap, feasible, wantCols)
}
