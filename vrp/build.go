// SPDX-License-Identifier: MIT
// Package vrp — model builder.
//
// BuildFormulation translates an Instance into decision variables and
// constraint families for a Mode, emitted into a milp.Model. The builder is
// pure with respect to the Instance and fully deterministic: building twice
// for unchanged inputs yields identical models (variable ids, row order,
// coefficients), which the tests pin down.
//
// Variable families (node indices: 0 = depot, 1..c = customers; k ∈ [0,K)):
//
//	x(i,j,k) ∈ {0,1}  arc i→j used by vehicle k (i ≠ j)
//	y(i,k)   ≥ 0      service start of node i on vehicle k; y(0,k) fixed to 0
//	d(j,k)   ≥ 0      closing-leg route duration when j is k's last customer
//	z(i,k)   ∈ {0,1}  customer i assigned to vehicle k   (TimeWindowed+)
//	T(k), T_avg, dev(k) ≥ 0   workload block              (Fairness)
//
// The Big-M constant is taken from the Instance: M = Σ t(i,j) + Σ s_i, which
// strictly dominates any attainable schedule gap (every service start and
// route duration is bounded by total travel plus total service).

package vrp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vrpmilp/milp"
)

// Formulation is a built variable/constraint specification bound to one
// Instance and Mode. It is single-solve state: never share one Formulation
// across concurrent solves.
type Formulation struct {
	inst *Instance
	opts Options

	m    *milp.Model
	bigM float64

	// Column index tables; -1 marks "not emitted" slots (diagonals, depot rows).
	x [][][]int // x[i][j][k]
	y [][]int   // y[i][k]
	d [][]int   // d[j][k], customers only (row 0 all -1)
	z [][]int   // z[i][k], customers only; nil outside TimeWindowed+

	tk   []int // T(k); nil outside Fairness
	tAvg int   // T_avg; -1 outside Fairness
	dev  []int // dev(k); nil outside Fairness

	// travel caches the primary objective Σ t(i,j)·x(i,j,k), reused for the
	// lexicographic degradation bound in the secondary phase.
	travel []milp.Term

	augmented bool
}

// BuildFormulation validates inputs and emits the full model for opts.Mode.
//
// Contract:
//   - inst non-nil and structurally valid (guaranteed by construction);
//   - opts validated with the usual sentinels.
//
// Complexity: O(n²·K) variables and rows; O(n³) never revisited here (the
// triangle scan belongs to instance validation).
func BuildFormulation(inst *Instance, opts Options) (*Formulation, error) {
	if inst == nil {
		return nil, ErrInstanceNil
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	f := &Formulation{
		inst: inst,
		opts: opts,
		m:    milp.NewModel(),
		bigM: inst.BigM(),
		tAvg: -1,
	}

	// Stage 1: variables, in fixed family order.
	if err := f.emitVariables(); err != nil {
		return nil, err
	}

	// Stage 2: constraint families for the mode.
	if err := f.generate(); err != nil {
		return nil, err
	}

	// Stage 3: primary objective min Σ t(i,j)·x(i,j,k).
	if err := f.m.SetObjective(f.travel); err != nil {
		return nil, err
	}

	return f, nil
}

// MILP exposes the underlying model for the Solver call.
// Callers must not mutate it outside the engine.
func (f *Formulation) MILP() *milp.Model { return f.m }

// Mode reports the mode the formulation was built for.
func (f *Formulation) Mode() Mode { return f.opts.Mode }

// BigM reports the Big-M constant baked into the gated rows.
func (f *Formulation) BigM() float64 { return f.bigM }

// XVar resolves the column of x(i,j,k); ok=false for diagonals or bad indices.
func (f *Formulation) XVar(i, j, k int) (int, bool) {
	n, kk := f.inst.Nodes(), f.inst.Vehicles()
	if i < 0 || i >= n || j < 0 || j >= n || k < 0 || k >= kk || i == j {
		return 0, false
	}

	return f.x[i][j][k], true
}

// YVar resolves the column of y(i,k).
func (f *Formulation) YVar(i, k int) (int, bool) {
	n, kk := f.inst.Nodes(), f.inst.Vehicles()
	if i < 0 || i >= n || k < 0 || k >= kk {
		return 0, false
	}

	return f.y[i][k], true
}

// DVar resolves the column of d(j,k) for customer j.
func (f *Formulation) DVar(j, k int) (int, bool) {
	n, kk := f.inst.Nodes(), f.inst.Vehicles()
	if j < 1 || j >= n || k < 0 || k >= kk {
		return 0, false
	}

	return f.d[j][k], true
}

// ZVar resolves the column of z(i,k); ok=false outside TimeWindowed+ modes.
func (f *Formulation) ZVar(i, k int) (int, bool) {
	if f.z == nil {
		return 0, false
	}
	n, kk := f.inst.Nodes(), f.inst.Vehicles()
	if i < 1 || i >= n || k < 0 || k >= kk {
		return 0, false
	}

	return f.z[i][k], true
}

// emitVariables appends every column for the mode, in fixed order:
// x by (i,j,k), then y, then d, then z, then the fairness block.
func (f *Formulation) emitVariables() error {
	var (
		n   = f.inst.Nodes()
		K   = f.inst.Vehicles()
		inf = math.Inf(1)

		i, j, k int
		id      int
		err     error
	)

	f.x = make([][][]int, n)
	for i = 0; i < n; i++ {
		f.x[i] = make([][]int, n)
		for j = 0; j < n; j++ {
			f.x[i][j] = make([]int, K)
			for k = 0; k < K; k++ {
				if i == j {
					f.x[i][j][k] = -1

					continue
				}
				id, err = f.m.AddBinary(fmt.Sprintf("x(%d,%d,%d)", i, j, k))
				if err != nil {
					return err
				}
				f.x[i][j][k] = id

				// Objective term Σ t(i,j)·x(i,j,k), accumulated in emission order.
				f.travel = append(f.travel, milp.Term{Var: id, Coef: f.inst.Travel(i, j)})
			}
		}
	}

	f.y = make([][]int, n)
	for i = 0; i < n; i++ {
		f.y[i] = make([]int, K)
		for k = 0; k < K; k++ {
			id, err = f.m.AddVar(fmt.Sprintf("y(%d,%d)", i, k), milp.Continuous, 0, inf)
			if err != nil {
				return err
			}
			f.y[i][k] = id
		}
	}

	f.d = make([][]int, n)
	f.d[0] = make([]int, K)
	for k = 0; k < K; k++ {
		f.d[0][k] = -1
	}
	for j = 1; j < n; j++ {
		f.d[j] = make([]int, K)
		for k = 0; k < K; k++ {
			id, err = f.m.AddVar(fmt.Sprintf("d(%d,%d)", j, k), milp.Continuous, 0, inf)
			if err != nil {
				return err
			}
			f.d[j][k] = id
		}
	}

	if f.opts.Mode.assignmentIndicators() {
		f.z = make([][]int, n)
		f.z[0] = make([]int, K)
		for k = 0; k < K; k++ {
			f.z[0][k] = -1
		}
		for i = 1; i < n; i++ {
			f.z[i] = make([]int, K)
			for k = 0; k < K; k++ {
				id, err = f.m.AddBinary(fmt.Sprintf("z(%d,%d)", i, k))
				if err != nil {
					return err
				}
				f.z[i][k] = id
			}
		}
	}

	if f.opts.Mode == ModeFairness {
		f.tk = make([]int, K)
		for k = 0; k < K; k++ {
			id, err = f.m.AddVar(fmt.Sprintf("T(%d)", k), milp.Continuous, 0, inf)
			if err != nil {
				return err
			}
			f.tk[k] = id
		}
		f.tAvg, err = f.m.AddVar("T_avg", milp.Continuous, 0, inf)
		if err != nil {
			return err
		}
		f.dev = make([]int, K)
		for k = 0; k < K; k++ {
			id, err = f.m.AddVar(fmt.Sprintf("dev(%d)", k), milp.Continuous, 0, inf)
			if err != nil {
				return err
			}
			f.dev[k] = id
		}
	}

	return nil
}
