// SPDX-License-Identifier: MIT
// Package vrp — fairness augmentation (secondary phase).
//
// Lexicographic optimization is sequential constraint augmentation: once the
// primary phase fixes Z_A, the same model gains the workload block (families
// 13–15), the degradation bound Σ t·x ≤ (1+ε)·Z_A, and a new objective
// minimizing the mean absolute deviation (1/K)·Σ dev(k). A weighted-sum
// single objective cannot express the strict priority plus bounded
// degradation required here, hence the explicit two-phase pipeline.

package vrp

import (
	"fmt"

	"github.com/katalvlaran/vrpmilp/milp"
)

// AugmentFairness attaches the workload block to a Fairness-mode formulation.
//
// Families:
//
//  13. workload accounting: T(k) == Σ_j d(j,k), linear because d(j,k) is 0
//     unless j closes k's route. Family 9 bounds d from below only, so a
//     matching upper pin d(j,k) ≤ y(j,k)+s_j+t(j,0)+M·(1−x(j,0,k)) is
//     emitted here; together they fix every d(j,k), and with it T(k), to
//     the vehicle's exact route duration. Without the equality T(k) would
//     be free above and all T(k) could meet at a common value with every
//     dev(k) = 0 regardless of routing.
//  14. average: K·T_avg == Σ T(k).
//  15. two-sided |·| linearization: dev(k) ≥ T(k) − T_avg, dev(k) ≥ T_avg − T(k).
//
// plus the degradation bound and the objective swap.
//
// Contract:
//   - the formulation was built with ModeFairness (ErrFairnessNotBuilt
//     otherwise — a configuration error, never a silent omission);
//   - at most one augmentation per formulation (ErrFairnessAugmented);
//   - zA is the accepted primary objective (proven or incumbent).
//
// Complexity: O(n·K) rows.
func (f *Formulation) AugmentFairness(zA float64) error {
	if f.tk == nil {
		return ErrFairnessNotBuilt
	}
	if f.augmented {
		return ErrFairnessAugmented
	}

	var (
		n, K = f.inst.Nodes(), f.inst.Vehicles()
		j, k int
	)

	// Family 13: exact workload accounting. The upper pin mirrors the
	// closing-leg lower bound (family 8); when x(j,0,k) = 1 the pair forces
	// d(j,k) == y(j,k)+s_j+t(j,0), and family 9 zeroes d on non-closing legs.
	for k = 0; k < K; k++ {
		for j = 1; j < n; j++ {
			ub := []milp.Term{
				{Var: f.d[j][k], Coef: 1},
				{Var: f.y[j][k], Coef: -1},
				{Var: f.x[j][0][k], Coef: f.bigM},
			}
			bound := f.inst.Service(j) + f.inst.Travel(j, 0) + f.bigM
			if err := f.m.AddLe(fmt.Sprintf("route_duration_ub_%d_%d", j, k), ub, bound); err != nil {
				return err
			}
		}

		total := make([]milp.Term, 0, n)
		total = append(total, milp.Term{Var: f.tk[k], Coef: 1})
		for j = 1; j < n; j++ {
			total = append(total, milp.Term{Var: f.d[j][k], Coef: -1})
		}
		if err := f.m.AddEq(fmt.Sprintf("total_duration_%d", k), total, 0); err != nil {
			return err
		}
	}

	// Family 14: average definition, K·T_avg − Σ T(k) == 0.
	avg := make([]milp.Term, 0, K+1)
	avg = append(avg, milp.Term{Var: f.tAvg, Coef: float64(K)})
	for k = 0; k < K; k++ {
		avg = append(avg, milp.Term{Var: f.tk[k], Coef: -1})
	}
	if err := f.m.AddEq("average_duration", avg, 0); err != nil {
		return err
	}

	// Family 15: dev(k) ≥ |T(k) − T_avg|, linearized two-sided.
	for k = 0; k < K; k++ {
		pos := []milp.Term{
			{Var: f.dev[k], Coef: 1},
			{Var: f.tk[k], Coef: -1},
			{Var: f.tAvg, Coef: 1},
		}
		if err := f.m.AddGe(fmt.Sprintf("dev_pos_%d", k), pos, 0); err != nil {
			return err
		}
		neg := []milp.Term{
			{Var: f.dev[k], Coef: 1},
			{Var: f.tk[k], Coef: 1},
			{Var: f.tAvg, Coef: -1},
		}
		if err := f.m.AddGe(fmt.Sprintf("dev_neg_%d", k), neg, 0); err != nil {
			return err
		}
	}

	// Degradation bound: Σ t(i,j)·x(i,j,k) ≤ (1+ε)·Z_A. With ε = 0 this is
	// exactly feasible at the primary optimum, so secondary infeasibility can
	// only ever signal an internal fault upstream.
	if err := f.m.AddLe("lexi_bound", f.travel, (1+f.opts.Epsilon)*zA); err != nil {
		return err
	}

	// Objective swap: min (1/K)·Σ dev(k).
	obj := make([]milp.Term, 0, K)
	for k = 0; k < K; k++ {
		obj = append(obj, milp.Term{Var: f.dev[k], Coef: 1 / float64(K)})
	}
	if err := f.m.SetObjective(obj); err != nil {
		return err
	}
	f.augmented = true

	return nil
}
