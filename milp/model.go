// SPDX-License-Identifier: MIT
// Package milp — model container.
//
// A Model is a plain in-memory MILP description: dense variable metadata,
// sparse rows, a linear minimize objective. Construction is strictly
// validated so that a model that builds without error is structurally sound
// for any conforming Solver.
//
// Design:
//   - Deterministic: columns and rows keep insertion order; no maps escape
//     into iteration paths.
//   - Strict sentinels from errors.go on any malformed input.
//   - One model, one solve: callers never mutate a Model while a Solver runs
//     on it (model-per-solve isolation is enforced upstream by the engine).
package milp

import "math"

// VarType encodes the integrality of a column.
type VarType int

const (
	// Continuous is the default column type (zero value).
	Continuous VarType = iota

	// Integer restricts the column to integral values within its bounds.
	// Binary variables are Integer columns with bounds [0,1].
	Integer
)

// Var is the metadata of a single column.
type Var struct {
	Name  string  // unique within the model; used for diagnostics/tests
	Type  VarType // Continuous or Integer
	Lower float64 // lower bound (may be -Inf)
	Upper float64 // upper bound (may be +Inf)
}

// Term is one entry of a sparse linear expression: Coef · column(Var).
type Term struct {
	Var  int     // column index, as returned by AddVar
	Coef float64 // finite coefficient
}

// Constraint is a two-sided linear row: Lower ≤ Σ Terms ≤ Upper.
// Equalities set Lower == Upper; one-sided rows use ±Inf.
type Constraint struct {
	Name  string // row label for diagnostics (e.g. "time_2_3_0"); may repeat
	Terms []Term
	Lower float64
	Upper float64
}

// Model is a complete MILP instance under construction or ready to solve.
type Model struct {
	vars   []Var
	byName map[string]int
	rows   []Constraint
	obj    []Term // minimize Σ obj
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{byName: make(map[string]int)}
}

// AddVar appends a column and returns its index.
//
// Contract:
//   - name non-empty and unique (ErrEmptyName / ErrDuplicateVar),
//   - lower ≤ upper, neither NaN (ErrBadBounds); ±Inf bounds are legal.
//
// Complexity: O(1) amortized.
func (m *Model) AddVar(name string, t VarType, lower, upper float64) (int, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, dup := m.byName[name]; dup {
		return 0, ErrDuplicateVar
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return 0, ErrBadBounds
	}
	id := len(m.vars)
	m.vars = append(m.vars, Var{Name: name, Type: t, Lower: lower, Upper: upper})
	m.byName[name] = id

	return id, nil
}

// AddBinary appends an Integer column with bounds [0,1].
func (m *Model) AddBinary(name string) (int, error) {
	return m.AddVar(name, Integer, 0, 1)
}

// AddConstraint appends a validated row.
//
// Contract:
//   - every Term references an existing column (ErrUnknownVar),
//   - coefficients finite (ErrBadCoefficient),
//   - lower ≤ upper, neither NaN (ErrBadBounds).
//
// The terms slice is copied; callers may reuse their scratch buffer.
//
// Complexity: O(len(terms)).
func (m *Model) AddConstraint(name string, terms []Term, lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return ErrBadBounds
	}
	var (
		i  int
		tm Term
	)
	for i = 0; i < len(terms); i++ {
		tm = terms[i]
		if tm.Var < 0 || tm.Var >= len(m.vars) {
			return ErrUnknownVar
		}
		if math.IsNaN(tm.Coef) || math.IsInf(tm.Coef, 0) {
			return ErrBadCoefficient
		}
	}
	cp := make([]Term, len(terms))
	copy(cp, terms)
	m.rows = append(m.rows, Constraint{Name: name, Terms: cp, Lower: lower, Upper: upper})

	return nil
}

// AddLe appends Σ terms ≤ upper.
func (m *Model) AddLe(name string, terms []Term, upper float64) error {
	return m.AddConstraint(name, terms, math.Inf(-1), upper)
}

// AddGe appends Σ terms ≥ lower.
func (m *Model) AddGe(name string, terms []Term, lower float64) error {
	return m.AddConstraint(name, terms, lower, math.Inf(1))
}

// AddEq appends Σ terms == rhs.
func (m *Model) AddEq(name string, terms []Term, rhs float64) error {
	return m.AddConstraint(name, terms, rhs, rhs)
}

// SetObjective replaces the (minimize) objective with the given terms.
// Same validation as AddConstraint; the slice is copied.
func (m *Model) SetObjective(terms []Term) error {
	var (
		i  int
		tm Term
	)
	for i = 0; i < len(terms); i++ {
		tm = terms[i]
		if tm.Var < 0 || tm.Var >= len(m.vars) {
			return ErrUnknownVar
		}
		if math.IsNaN(tm.Coef) || math.IsInf(tm.Coef, 0) {
			return ErrBadCoefficient
		}
	}
	cp := make([]Term, len(terms))
	copy(cp, terms)
	m.obj = cp

	return nil
}

// NumVars reports the number of columns.
func (m *Model) NumVars() int { return len(m.vars) }

// NumConstraints reports the number of rows.
func (m *Model) NumConstraints() int { return len(m.rows) }

// VarAt returns the metadata of column id; ok=false when id is out of range.
func (m *Model) VarAt(id int) (Var, bool) {
	if id < 0 || id >= len(m.vars) {
		return Var{}, false
	}

	return m.vars[id], true
}

// IndexOf resolves a column by name; ok=false when absent.
func (m *Model) IndexOf(name string) (int, bool) {
	id, ok := m.byName[name]

	return id, ok
}

// ConstraintAt returns row i without copying; callers must not mutate it.
// ok=false when i is out of range.
func (m *Model) ConstraintAt(i int) (Constraint, bool) {
	if i < 0 || i >= len(m.rows) {
		return Constraint{}, false
	}

	return m.rows[i], true
}

// Objective returns the current objective terms without copying;
// callers must not mutate the slice.
func (m *Model) Objective() []Term { return m.obj }

// ObjectiveValue evaluates the objective at the given column assignment.
// Columns beyond len(values) contribute 0 (defensive; conforming solvers
// always return a full assignment).
//
// Complexity: O(len(objective)).
func (m *Model) ObjectiveValue(values []float64) float64 {
	var (
		sum float64
		t   Term
	)
	for _, t = range m.obj {
		if t.Var < len(values) {
			sum += t.Coef * values[t.Var]
		}
	}

	return sum
}
