// SPDX-License-Identifier: MIT
// Package milp: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the milp
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. No routine panics on user-triggered conditions.

package milp

import "errors"

var (
	// ErrNilModel indicates that a nil *Model was passed where a built model
	// is required (Solver implementations, finalization helpers).
	ErrNilModel = errors.New("milp: model is nil")

	// ErrEmptyName is returned by AddVar when the variable name is empty.
	// Names back diagnostics and scripted tests; anonymous columns are not allowed.
	ErrEmptyName = errors.New("milp: empty variable name")

	// ErrDuplicateVar is returned by AddVar when the name is already taken.
	ErrDuplicateVar = errors.New("milp: duplicate variable name")

	// ErrUnknownVar indicates a constraint or objective term referencing a
	// column index outside the model's variable range. Generation requests
	// against undefined variables are a configuration error, never a silent
	// omission.
	ErrUnknownVar = errors.New("milp: unknown variable index")

	// ErrBadBounds signals Lower > Upper or a NaN bound on a variable or row.
	ErrBadBounds = errors.New("milp: invalid bounds")

	// ErrBadCoefficient signals a NaN or ±Inf coefficient in a row or objective.
	ErrBadCoefficient = errors.New("milp: non-finite coefficient")

	// ErrBadBudget is returned when a Budget carries a negative time limit or
	// a negative relative gap.
	ErrBadBudget = errors.New("milp: invalid solve budget")

	// ErrKernel wraps failures of the underlying solving capability itself
	// (load error, internal solve error, inconsistent answer). Adapters wrap
	// it with context: fmt.Errorf("...: %w", ErrKernel).
	ErrKernel = errors.New("milp: kernel failure")
)
