// SPDX-License-Identifier: MIT
// Package vrp — constraint generator.
//
// One method per constraint family, each a reusable generation rule over its
// index ranges, invoked in fixed order by generate(). Row names mirror the
// formulation ("time_2_3_0", "capacity_1", …) so kernel diagnostics and the
// independent checker speak the same language.
//
// Big-M discipline: every gated row uses M from the Instance. The kernel
// bindings expose no indicator-constraint surface, so gating is literal; the
// gating column is nonetheless always the row's last term, keeping the rows
// mechanically recognizable should a future adapter lower them differently.

package vrp

import (
	"fmt"

	"github.com/katalvlaran/vrpmilp/milp"
)

// generate emits all families for the built mode, in fixed order.
// TimeWindowed adds families 10–12 on top of Baseline; the Fairness workload
// block (13–15) is deliberately absent here — it belongs to the secondary
// phase and is attached by AugmentFairness.
func (f *Formulation) generate() error {
	steps := []func() error{
		f.conServeOnce,      // 1
		f.conDepotDeparture, // 2
		f.conFlow,           // 3
		f.conDepotBalance,   // 4
		f.conCapacity,       // 5
		f.conTimeProgress,   // 6
		f.conDepotStart,     // 7
		f.conClosingLeg,     // 8
		f.conMaxDuration,    // 9
	}
	if f.opts.Mode.assignmentIndicators() {
		steps = append(steps,
			f.conAssignLink,      // 10
			f.conTimeWindows,     // 11
			f.conIncompatibility, // 12
		)
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

// conServeOnce — family 1: each customer is covered exactly once across all
// vehicles and incoming arcs: Σ_{j≠i} Σ_k x(j,i,k) == 1.
func (f *Formulation) conServeOnce() error {
	var (
		n, K    = f.inst.Nodes(), f.inst.Vehicles()
		i, j, k int
		terms   []milp.Term
	)
	for i = 1; i < n; i++ {
		terms = terms[:0]
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			for k = 0; k < K; k++ {
				terms = append(terms, milp.Term{Var: f.x[j][i][k], Coef: 1})
			}
		}
		if err := f.m.AddEq(fmt.Sprintf("serve_%d", i), terms, 1); err != nil {
			return err
		}
	}

	return nil
}

// conDepotDeparture — family 2: Σ_{j∈C} x(0,j,k) ≤ 1, or == 1 under the
// use-all-vehicles policy (forced in Fairness mode by default: balancing over
// idle vehicles is meaningless).
func (f *Formulation) conDepotDeparture() error {
	var (
		n, K  = f.inst.Nodes(), f.inst.Vehicles()
		j, k  int
		terms []milp.Term
	)
	for k = 0; k < K; k++ {
		terms = terms[:0]
		for j = 1; j < n; j++ {
			terms = append(terms, milp.Term{Var: f.x[0][j][k], Coef: 1})
		}
		name := fmt.Sprintf("depart_%d", k)
		if f.opts.UseAllVehicles {
			if err := f.m.AddEq(name, terms, 1); err != nil {
				return err
			}

			continue
		}
		if err := f.m.AddLe(name, terms, 1); err != nil {
			return err
		}
	}

	return nil
}

// conFlow — family 3: flow conservation at every customer, per vehicle:
// Σ_{j≠i} x(j,i,k) − Σ_{j≠i} x(i,j,k) == 0.
func (f *Formulation) conFlow() error {
	var (
		n, K    = f.inst.Nodes(), f.inst.Vehicles()
		i, j, k int
		terms   []milp.Term
	)
	for i = 1; i < n; i++ {
		for k = 0; k < K; k++ {
			terms = terms[:0]
			for j = 0; j < n; j++ {
				if j == i {
					continue
				}
				terms = append(terms,
					milp.Term{Var: f.x[j][i][k], Coef: 1},
					milp.Term{Var: f.x[i][j][k], Coef: -1},
				)
			}
			if err := f.m.AddEq(fmt.Sprintf("flow_%d_%d", i, k), terms, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

// conDepotBalance — family 4: departures equal returns per vehicle:
// Σ_j x(0,j,k) − Σ_j x(j,0,k) == 0.
func (f *Formulation) conDepotBalance() error {
	var (
		n, K  = f.inst.Nodes(), f.inst.Vehicles()
		j, k  int
		terms []milp.Term
	)
	for k = 0; k < K; k++ {
		terms = terms[:0]
		for j = 1; j < n; j++ {
			terms = append(terms,
				milp.Term{Var: f.x[0][j][k], Coef: 1},
				milp.Term{Var: f.x[j][0][k], Coef: -1},
			)
		}
		if err := f.m.AddEq(fmt.Sprintf("depot_balance_%d", k), terms, 0); err != nil {
			return err
		}
	}

	return nil
}

// conCapacity — family 5: Σ_{i∈C} w_i·Σ_{j≠i} x(j,i,k) ≤ W.
func (f *Formulation) conCapacity() error {
	var (
		n, K    = f.inst.Nodes(), f.inst.Vehicles()
		i, j, k int
		terms   []milp.Term
	)
	for k = 0; k < K; k++ {
		terms = terms[:0]
		for i = 1; i < n; i++ {
			for j = 0; j < n; j++ {
				if j == i {
					continue
				}
				terms = append(terms, milp.Term{Var: f.x[j][i][k], Coef: f.inst.Weight(i)})
			}
		}
		if err := f.m.AddLe(fmt.Sprintf("capacity_%d", k), terms, f.inst.Capacity()); err != nil {
			return err
		}
	}

	return nil
}

// conTimeProgress — family 6: time progression / subtour elimination.
// For every arc (i,j) with j a customer (depot-as-origin included,
// depot-as-destination excluded):
//
//	y(j,k) ≥ y(i,k) + t(i,j) + s_i − M·(1 − x(i,j,k))
//
// emitted as y(j,k) − y(i,k) − M·x(i,j,k) ≥ t(i,j) + s_i − M.
// This single mechanism rules out disconnected sub-loops: any cycle avoiding
// the depot would force a strictly increasing time around a closed walk.
func (f *Formulation) conTimeProgress() error {
	var (
		n, K    = f.inst.Nodes(), f.inst.Vehicles()
		i, j, k int
	)
	for k = 0; k < K; k++ {
		for i = 0; i < n; i++ {
			for j = 1; j < n; j++ {
				if i == j {
					continue
				}
				terms := []milp.Term{
					{Var: f.y[j][k], Coef: 1},
					{Var: f.y[i][k], Coef: -1},
					{Var: f.x[i][j][k], Coef: -f.bigM},
				}
				lower := f.inst.Travel(i, j) + f.inst.Service(i) - f.bigM
				if err := f.m.AddGe(fmt.Sprintf("time_%d_%d_%d", i, j, k), terms, lower); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// conDepotStart — family 7: y(0,k) == 0 for all vehicles.
func (f *Formulation) conDepotStart() error {
	var k int
	for k = 0; k < f.inst.Vehicles(); k++ {
		terms := []milp.Term{{Var: f.y[0][k], Coef: 1}}
		if err := f.m.AddEq(fmt.Sprintf("depot_start_%d", k), terms, 0); err != nil {
			return err
		}
	}

	return nil
}

// conClosingLeg — family 8: closing-leg duration lower bound, gated on the
// return arc: d(j,k) ≥ y(j,k) + s_j + t(j,0) − M·(1 − x(j,0,k)).
func (f *Formulation) conClosingLeg() error {
	var (
		n, K = f.inst.Nodes(), f.inst.Vehicles()
		j, k int
	)
	for k = 0; k < K; k++ {
		for j = 1; j < n; j++ {
			terms := []milp.Term{
				{Var: f.d[j][k], Coef: 1},
				{Var: f.y[j][k], Coef: -1},
				{Var: f.x[j][0][k], Coef: -f.bigM},
			}
			lower := f.inst.Service(j) + f.inst.Travel(j, 0) - f.bigM
			if err := f.m.AddGe(fmt.Sprintf("route_duration_%d_%d", j, k), terms, lower); err != nil {
				return err
			}
		}
	}

	return nil
}

// conMaxDuration — family 9: d(j,k) ≤ t_max·x(j,0,k). The multiplicative gate
// also pins d(j,k) to 0 whenever j is not k's last stop, which is what makes
// the fairness linkage T(k) ≥ d(j,k) exact.
func (f *Formulation) conMaxDuration() error {
	var (
		n, K = f.inst.Nodes(), f.inst.Vehicles()
		j, k int
	)
	for k = 0; k < K; k++ {
		for j = 1; j < n; j++ {
			terms := []milp.Term{
				{Var: f.d[j][k], Coef: 1},
				{Var: f.x[j][0][k], Coef: -f.inst.MaxRouteDuration()},
			}
			if err := f.m.AddLe(fmt.Sprintf("max_route_duration_%d_%d", j, k), terms, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

// conAssignLink — family 10: z(i,k) == Σ_{j≠i} x(j,i,k).
func (f *Formulation) conAssignLink() error {
	if f.z == nil {
		return ErrFairnessNotBuilt
	}
	var (
		n, K    = f.inst.Nodes(), f.inst.Vehicles()
		i, j, k int
		terms   []milp.Term
	)
	for i = 1; i < n; i++ {
		for k = 0; k < K; k++ {
			terms = terms[:0]
			terms = append(terms, milp.Term{Var: f.z[i][k], Coef: 1})
			for j = 0; j < n; j++ {
				if j == i {
					continue
				}
				terms = append(terms, milp.Term{Var: f.x[j][i][k], Coef: -1})
			}
			if err := f.m.AddEq(fmt.Sprintf("assign_%d_%d", i, k), terms, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

// conTimeWindows — family 11: window enforcement gated by z and Big-M:
//
//	y(i,k) ≥ a_i·z(i,k)                  (skipped when a_i == 0: vacuous, y ≥ 0)
//	y(i,k) ≤ b_i + M·(1 − z(i,k))        (skipped when b_i == +Inf)
func (f *Formulation) conTimeWindows() error {
	if f.z == nil {
		return ErrFairnessNotBuilt
	}
	var (
		n, K = f.inst.Nodes(), f.inst.Vehicles()
		i, k int
		w    TimeWindow
	)
	for i = 1; i < n; i++ {
		w = f.inst.Window(i)
		for k = 0; k < K; k++ {
			if w.Start > 0 {
				terms := []milp.Term{
					{Var: f.y[i][k], Coef: 1},
					{Var: f.z[i][k], Coef: -w.Start},
				}
				if err := f.m.AddGe(fmt.Sprintf("time_window_min_%d_%d", i, k), terms, 0); err != nil {
					return err
				}
			}
			if !isInf(w.End) {
				terms := []milp.Term{
					{Var: f.y[i][k], Coef: 1},
					{Var: f.z[i][k], Coef: f.bigM},
				}
				if err := f.m.AddLe(fmt.Sprintf("time_window_max_%d_%d", i, k), terms, w.End+f.bigM); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// conIncompatibility — family 12: for every triple and vehicle, at most two
// of the three customers ride together: z(i,k)+z(j,k)+z(l,k) ≤ 2.
func (f *Formulation) conIncompatibility() error {
	if f.z == nil {
		return ErrFairnessNotBuilt
	}
	var k int
	for _, tr := range f.inst.triples {
		for k = 0; k < f.inst.Vehicles(); k++ {
			terms := []milp.Term{
				{Var: f.z[tr.I][k], Coef: 1},
				{Var: f.z[tr.J][k], Coef: 1},
				{Var: f.z[tr.L][k], Coef: 1},
			}
			name := fmt.Sprintf("restriction_%d_%d_%d_%d", tr.I, tr.J, tr.L, k)
			if err := f.m.AddLe(name, terms, 2); err != nil {
				return err
			}
		}
	}

	return nil
}
