// SPDX-License-Identifier: MIT
// Package vrp solves the capacitated vehicle routing problem with time
// windows, per-vehicle incompatibility triples, and lexicographic workload
// balancing, as a mixed-integer linear program.
//
// The engine is organized as a pipeline over immutable data:
//
//	Instance → BuildFormulation → Engine.Solve → Solution → CheckSolution
//
// The stages:
//   - Instance: read-only problem data (travel-time matrix, weights, service
//     times, time windows, incompatibility triples, homogeneous fleet).
//   - Formulation: decision variables and constraint families for a Mode
//     (Baseline, TimeWindowed, Fairness), emitted into a milp.Model.
//   - Engine: drives the external MILP capability through the two-phase
//     lexicographic optimization — minimize total travel time, then minimize
//     mean absolute workload deviation subject to Z ≤ (1+ε)·Z_A.
//   - Solution: per-vehicle ordered routes with service-start times, loads,
//     durations, workload records, and a solve Report.
//   - CheckSolution: independent feasibility recomputation straight from the
//     route sequences, used both in tests and as a guard against solver
//     numerical error before a solution is accepted.
//
// Design principles:
//   - Deterministic: stable variable/constraint emission order; regenerating a
//     formulation for unchanged inputs yields an identical model.
//   - Strict sentinels: only errors from errors.go; matched via errors.Is.
//   - No logging, no panics on user input; solve metadata travels in Report.
//   - Model-per-solve isolation: an Instance may serve concurrent solves, a
//     formulation never does.
//
// Scale guidance: the three-index flow formulation carries O(n²·K) binaries;
// exact solves are practical for small-to-medium instances (n ≲ 25 with a
// modern kernel). Larger instances rely on the time/gap budget and the
// timeout-incumbent policy in Options.
package vrp
