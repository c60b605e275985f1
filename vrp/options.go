// SPDX-License-Identifier: MIT
// Package vrp — solve configuration.
//
// Options is a plain value passed to every solve; no ambient or global solver
// state exists, so concurrent solves of independent Instances stay isolated
// by construction.

package vrp

import "time"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the fairness degradation tolerance: the secondary
	// phase enforces Z ≤ (1+ε)·Z_A with ε = DefaultEpsilon.
	DefaultEpsilon = 0.05

	// DefaultCheckTolerance is the absolute tolerance used by the independent
	// feasibility checker when recomputing constraint families.
	DefaultCheckTolerance = 1e-6
)

// Options configures one solve. Construct via DefaultOptions and override
// fields as needed; Validate is applied at every entry point.
type Options struct {
	// Mode selects the constraint families (see Mode docs).
	Mode Mode `yaml:"mode"`

	// TimeLimit is the wall-clock budget per solve phase; 0 means unlimited.
	TimeLimit time.Duration `yaml:"-"`

	// RelGap is the relative optimality gap at which a phase may stop early;
	// 0 demands proven optima.
	RelGap float64 `yaml:"rel_gap"`

	// Epsilon is the fairness degradation tolerance ε (Fairness mode only).
	Epsilon float64 `yaml:"epsilon"`

	// StrictTimeout disables the timeout-incumbent fallback: with it set, a
	// phase that times out surfaces ErrTimedOut even when a feasible
	// incumbent exists. Without it, the incumbent's objective is accepted as
	// an approximation and marked unproven in the Report.
	StrictTimeout bool `yaml:"strict_timeout"`

	// UseAllVehicles forces every vehicle to leave the depot exactly once
	// instead of at most once. Defaulted on in Fairness mode, where balancing
	// over idle vehicles is meaningless.
	UseAllVehicles bool `yaml:"use_all_vehicles"`

	// CheckTolerance is the feasibility recheck tolerance (> 0).
	CheckTolerance float64 `yaml:"check_tolerance"`
}

// DefaultOptions returns the documented defaults for a mode.
//
// Defaults:
//   - TimeLimit:      0 (unlimited)
//   - RelGap:         0 (prove optimality)
//   - Epsilon:        DefaultEpsilon
//   - StrictTimeout:  false (accept timeout incumbents, marked unproven)
//   - UseAllVehicles: true in Fairness mode, false otherwise
//   - CheckTolerance: DefaultCheckTolerance
func DefaultOptions(mode Mode) Options {
	return Options{
		Mode:           mode,
		Epsilon:        DefaultEpsilon,
		UseAllVehicles: mode == ModeFairness,
		CheckTolerance: DefaultCheckTolerance,
	}
}

// Validate rejects inconsistent configuration with strict sentinels.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if !o.Mode.valid() {
		return ErrBadMode
	}
	if o.TimeLimit < 0 || o.RelGap < 0 {
		return ErrBadBudget
	}
	if o.Epsilon < 0 {
		return ErrBadEpsilon
	}
	if o.CheckTolerance <= 0 {
		return ErrBadTolerance
	}

	return nil
}
