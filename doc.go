// SPDX-License-Identifier: MIT
// Package vrpmilp is an exact solver engine for capacity- and time-window-
// constrained vehicle routing with lexicographic workload balancing.
//
// A fleet of K homogeneous vehicles serves time-windowed customers from a
// single depot. The engine builds a mixed-integer linear formulation over
// three variable families (arc usage, service starts, closing-leg durations),
// drives an external MILP kernel through a two-phase lexicographic
// optimization — minimum total travel time first, then minimum mean absolute
// workload deviation within a bounded degradation of the primary optimum —
// and independently re-validates every candidate solution before accepting it.
//
// Organization:
//
//	milp/       — solver-agnostic MILP model types and the Solver contract
//	milp/highs/ — adapter binding the contract to the HiGHS kernel (cgo)
//	vrp/        — instance model, model builder + constraint generator,
//	              lexicographic driver, solution model, diagnostics
//
// Quick start:
//
//	inst, err := vrp.NewInstance(vrp.InstanceData{ /* … */ })
//	if err != nil { /* structurally invalid input */ }
//	opts := vrp.DefaultOptions(vrp.ModeFairness)
//	sol, err := vrp.Solve(ctx, inst, highs.New(), opts)
//
// Input parsing and report rendering belong to external collaborators; the
// engine's job is to build the model, drive the search, and interpret the
// result.
package vrpmilp
