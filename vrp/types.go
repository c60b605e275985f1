// SPDX-License-Identifier: MIT
// Package vrp — shared value types: solve modes, time windows, triples.

package vrp

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects which constraint families a formulation carries.
// Modes are cumulative: TimeWindowed includes everything in Baseline,
// Fairness includes everything in TimeWindowed plus the workload block.
type Mode int

const (
	// ModeBaseline: flow, capacity, time-progression (subtour elimination),
	// depot start, closing-leg duration, max duration.
	ModeBaseline Mode = iota

	// ModeTimeWindowed: Baseline plus assignment indicators, time-window
	// enforcement, and incompatibility triples.
	ModeTimeWindowed

	// ModeFairness: TimeWindowed plus the lexicographic secondary phase
	// minimizing mean absolute workload deviation.
	ModeFairness
)

// yaml spellings, single source of truth for Mode <-> text.
const (
	modeBaselineName     = "baseline"
	modeTimeWindowedName = "time_windowed"
	modeFairnessName     = "fairness"
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeBaseline:
		return modeBaselineName
	case ModeTimeWindowed:
		return modeTimeWindowedName
	case ModeFairness:
		return modeFairnessName
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// valid reports whether m names a known mode.
func (m Mode) valid() bool {
	return m == ModeBaseline || m == ModeTimeWindowed || m == ModeFairness
}

// assignmentIndicators reports whether the mode emits z-variables.
func (m Mode) assignmentIndicators() bool {
	return m == ModeTimeWindowed || m == ModeFairness
}

// MarshalJSON renders the mode by name (solution serialization).
func (m Mode) MarshalJSON() ([]byte, error) {
	if !m.valid() {
		return nil, ErrBadMode
	}

	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON parses a mode by name; unknown names are ErrBadMode.
func (m *Mode) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	switch s {
	case modeBaselineName:
		*m = ModeBaseline
	case modeTimeWindowedName:
		*m = ModeTimeWindowed
	case modeFairnessName:
		*m = ModeFairness
	default:
		return fmt.Errorf("%q: %w", s, ErrBadMode)
	}

	return nil
}

// MarshalYAML renders the mode by name.
func (m Mode) MarshalYAML() (interface{}, error) {
	if !m.valid() {
		return nil, ErrBadMode
	}

	return m.String(), nil
}

// UnmarshalYAML parses a mode by name; unknown names are ErrBadMode.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case modeBaselineName:
		*m = ModeBaseline
	case modeTimeWindowedName:
		*m = ModeTimeWindowed
	case modeFairnessName:
		*m = ModeFairness
	default:
		return fmt.Errorf("%q: %w", s, ErrBadMode)
	}

	return nil
}

// TimeWindow is the admissible service-start interval [Start, End] of a
// customer. End may be +Inf (open window).
type TimeWindow struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// openWindow is the default window [0, +Inf) assigned when none is given.
func openWindow() TimeWindow { return TimeWindow{Start: 0, End: math.Inf(1)} }

// valid reports structural sanity: 0 ≤ Start ≤ End, no NaN.
func (w TimeWindow) valid() bool {
	if math.IsNaN(w.Start) || math.IsNaN(w.End) {
		return false
	}

	return w.Start >= 0 && w.End >= w.Start
}

// Triple is an incompatibility restriction over three distinct customers:
// at most two of I, J, L may ride on the same vehicle. Customer indices are
// 1-based node indices (the depot, node 0, may not appear).
type Triple struct {
	I int `json:"i" yaml:"i"`
	J int `json:"j" yaml:"j"`
	L int `json:"l" yaml:"l"`
}
