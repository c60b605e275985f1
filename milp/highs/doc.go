// SPDX-License-Identifier: MIT
// Package highs adapts the milp.Solver contract to the HiGHS kernel through
// the github.com/lanl/highs bindings (cgo).
//
// Scope:
//   - Translate a milp.Model into the kernel's column/row arrays
//     (dense column metadata, triplet constraint matrix).
//   - Map kernel statuses onto milp.Status; anything outside the documented
//     terminal set surfaces as a milp.ErrKernel fault, never a silent remap.
//   - Honor context cancellation around the blocking kernel call: the solve
//     runs on its own goroutine and an expired context yields
//     milp.StatusTimedOut. In-search interruption is owned by the kernel,
//     not by this adapter.
//
// The engine core never imports this package directly; it is wired in by the
// caller that owns solver selection.
package highs
