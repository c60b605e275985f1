// SPDX-License-Identifier: MIT
// Package milp defines the mixed-integer linear programming surface the
// routing engine builds against: variables with bounds and integrality,
// linear constraints with two-sided row bounds, a linear minimization
// objective, and a Solver contract for the external solving capability.
//
// The package is deliberately solver-agnostic. The engine core (package vrp)
// emits a *Model and hands it to any Solver implementation; the bundled
// adapter in milp/highs binds the contract to the HiGHS kernel. Tests may
// substitute scripted solvers without touching the engine.
//
// Conventions:
//   - All rows are stated as Lower ≤ Σ coef·var ≤ Upper; one-sided rows use
//     ±Inf on the free side. Equalities set Lower == Upper.
//   - Objectives always minimize. A caller needing maximization negates its
//     cost vector.
//   - Variable identity is the dense column index returned by AddVar; names
//     exist for diagnostics and scripted tests, not for solver semantics.
//   - Strict sentinels: every user-triggered failure maps to an error from
//     errors.go, matched with errors.Is. No panics on user input.
package milp
