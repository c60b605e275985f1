// SPDX-License-Identifier: MIT
// Package vrp: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vrp
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is; context is added by wrapping (fmt.Errorf("ctx: %w", ErrX))
// at the outer boundary only.
//
// ERROR PRIORITY (documented, enforced in tests):
// instance structure -> options/configuration -> solve lifecycle
// -> solve outcomes -> validation faults.

package vrp

import "errors"

var (
	// --- Instance structure (rejected before any solve attempt) ---

	// ErrInstanceNil indicates a nil *Instance where problem data is required.
	ErrInstanceNil = errors.New("vrp: instance is nil")

	// ErrNoCustomers indicates an instance with an empty customer set.
	ErrNoCustomers = errors.New("vrp: no customers")

	// ErrBadFleet indicates a non-positive vehicle count.
	ErrBadFleet = errors.New("vrp: fleet size must be positive")

	// ErrBadCapacity indicates a non-positive vehicle capacity.
	ErrBadCapacity = errors.New("vrp: vehicle capacity must be positive")

	// ErrBadMaxDuration indicates a non-positive maximum route duration.
	ErrBadMaxDuration = errors.New("vrp: max route duration must be positive")

	// ErrNegativeWeight indicates a negative or non-finite customer weight.
	ErrNegativeWeight = errors.New("vrp: negative customer weight")

	// ErrNegativeService indicates a negative or non-finite service time.
	ErrNegativeService = errors.New("vrp: negative service time")

	// ErrBadMatrixShape indicates a travel-time matrix that is not
	// (c+1)×(c+1) for c customers.
	ErrBadMatrixShape = errors.New("vrp: travel-time matrix shape mismatch")

	// ErrNegativeTravel indicates a negative, NaN, or infinite travel time.
	// The node graph is complete; "missing arc" has no representation here.
	ErrNegativeTravel = errors.New("vrp: invalid travel time")

	// ErrNonZeroDiagonal indicates a self-loop travel time outside tolerance.
	ErrNonZeroDiagonal = errors.New("vrp: travel-time diagonal not zero within eps")

	// ErrTriangleInequality indicates t(i,j) > t(i,k)+t(k,j) beyond tolerance.
	ErrTriangleInequality = errors.New("vrp: travel times violate triangle inequality")

	// ErrBadTimeWindow indicates a window with a < 0, b < a, or a NaN bound.
	ErrBadTimeWindow = errors.New("vrp: invalid time window")

	// ErrBadTriple indicates an incompatibility triple referencing the depot,
	// a nonexistent customer, or repeated members.
	ErrBadTriple = errors.New("vrp: invalid incompatibility triple")

	// --- Options / configuration ---

	// ErrBadMode indicates an unknown solve Mode.
	ErrBadMode = errors.New("vrp: unknown mode")

	// ErrBadEpsilon indicates a negative fairness degradation tolerance.
	ErrBadEpsilon = errors.New("vrp: fairness epsilon must be non-negative")

	// ErrBadBudget indicates a negative time limit or relative gap.
	ErrBadBudget = errors.New("vrp: invalid solve budget")

	// ErrBadTolerance indicates a non-positive feasibility check tolerance.
	ErrBadTolerance = errors.New("vrp: check tolerance must be positive")

	// ErrSolverNil indicates a nil milp.Solver handed to the engine.
	ErrSolverNil = errors.New("vrp: solver is nil")

	// ErrFairnessNotBuilt indicates a request for fairness constraints against
	// a formulation whose mode did not emit the fairness variable block.
	// Configuration error by contract, never a silent omission.
	ErrFairnessNotBuilt = errors.New("vrp: fairness variables not present in formulation")

	// ErrFairnessAugmented indicates a second fairness augmentation of the
	// same formulation; the workload block attaches at most once per solve.
	ErrFairnessAugmented = errors.New("vrp: fairness constraints already generated")

	// --- Solve lifecycle ---

	// ErrSolveInProgress indicates a second Solve on an Engine whose previous
	// solve has not returned. One active solve per engine, by contract.
	ErrSolveInProgress = errors.New("vrp: solve already in progress")

	// --- Solve outcomes ---

	// ErrPrimaryInfeasible indicates the model admits no feasible assignment
	// under the Baseline/TimeWindowed constraint set. No secondary phase is
	// attempted. The wrapped message carries a diagnosis hint when derivable.
	ErrPrimaryInfeasible = errors.New("vrp: primary model infeasible")

	// ErrUnbounded indicates an unbounded objective. With finite domains this
	// never occurs for a well-formed model; it signals a modeling bug.
	ErrUnbounded = errors.New("vrp: objective unbounded (modeling bug)")

	// ErrTimedOut indicates the budget expired without a usable incumbent, or
	// with StrictTimeout set, without an optimality proof.
	ErrTimedOut = errors.New("vrp: solve timed out")

	// ErrSolverFault indicates the external solving capability failed or
	// returned a numerically inconsistent result. Raised whenever independent
	// validation disagrees with solver-reported feasibility; never downgraded.
	ErrSolverFault = errors.New("vrp: solver fault")

	// ErrSecondaryFault indicates the secondary (fairness) phase reported
	// infeasibility. The primary optimum always satisfies the degradation
	// bound, so this is an internal consistency fault, not a user condition.
	ErrSecondaryFault = errors.New("vrp: secondary phase inconsistent")
)
