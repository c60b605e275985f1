// SPDX-License-Identifier: MIT
// Package vrp_test — shared fixtures and scripted solving capabilities.
//
// The scripted solver lets the driver tests run the full two-phase pipeline
// deterministically: each phase's answer is a function of the model the
// driver actually built, so the tests also pin down what crosses the
// milp.Solver boundary.
package vrp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpmilp/milp"
	"github.com/katalvlaran/vrpmilp/vrp"
)

// tinyData is the canonical single-vehicle scenario: two customers with
// weights [3,4], capacity 10, no service time, t_max = 20, and the travel
// matrix t(0,1)=2, t(1,2)=3, t(2,0)=4 (symmetric). The optimal route is
// 0→1→2→0 with total travel 9.
func tinyData() vrp.InstanceData {
	return vrp.InstanceData{
		Weights:      []float64{3, 4},
		ServiceTimes: []float64{0, 0},
		TravelTimes: [][]float64{
			{0, 2, 4},
			{2, 0, 3},
			{4, 3, 0},
		},
		Vehicles:         1,
		Capacity:         10,
		MaxRouteDuration: 20,
	}
}

// mustTiny builds the canonical instance or fails the test.
func mustTiny(t *testing.T) *vrp.Instance {
	t.Helper()
	inst, err := vrp.NewInstance(tinyData())
	require.NoError(t, err)

	return inst
}

// pairData is the two-vehicle variant of tinyData used by fairness tests:
// with the use-all-vehicles policy each vehicle serves one customer.
func pairData() vrp.InstanceData {
	d := tinyData()
	d.Vehicles = 2

	return d
}

// assignment resolves a name→value map against a model into a full dense
// column vector (unnamed columns default to 0).
func assignment(t *testing.T, m *milp.Model, byName map[string]float64) []float64 {
	t.Helper()
	values := make([]float64, m.NumVars())
	for name, v := range byName {
		id, ok := m.IndexOf(name)
		require.Truef(t, ok, "assignment references unknown column %q", name)
		values[id] = v
	}

	return values
}

// tinyOptimal is the optimal assignment of the tinyData scenario.
func tinyOptimal() map[string]float64 {
	return map[string]float64{
		"x(0,1,0)": 1, "x(1,2,0)": 1, "x(2,0,0)": 1,
		"y(1,0)": 2, "y(2,0)": 5,
		"d(2,0)": 9,
	}
}

// pairOptimal is the optimal assignment of pairData under use-all-vehicles:
// vehicle 0 serves customer 1, vehicle 1 serves customer 2.
func pairOptimal() map[string]float64 {
	return map[string]float64{
		"x(0,1,0)": 1, "x(1,0,0)": 1, "y(1,0)": 2, "d(1,0)": 4,
		"x(0,2,1)": 1, "x(2,0,1)": 1, "y(2,1)": 4, "d(2,1)": 8,
	}
}

// pairFairness is pairOptimal completed with the assignment indicators and
// the honest workload block: durations 4 and 8 around T_avg = 6.
func pairFairness() map[string]float64 {
	full := pairOptimal()
	full["z(1,0)"] = 1
	full["z(2,1)"] = 1
	full["T(0)"] = 4
	full["T(1)"] = 8
	full["T_avg"] = 6
	full["dev(0)"] = 2
	full["dev(1)"] = 2

	return full
}

// firstViolatedRow evaluates every row of m at values and reports the first
// one outside its bounds.
func firstViolatedRow(m *milp.Model, values []float64, tol float64) (string, bool) {
	for i := 0; i < m.NumConstraints(); i++ {
		row, _ := m.ConstraintAt(i)
		var sum float64
		for _, term := range row.Terms {
			sum += term.Coef * values[term.Var]
		}
		if sum < row.Lower-tol || sum > row.Upper+tol {
			return row.Name, true
		}
	}

	return "", false
}

// scriptStep answers one solver invocation.
type scriptStep func(t *testing.T, m *milp.Model, b milp.Budget) (milp.Result, error)

// scriptSolver replays a fixed sequence of answers, one per Solve call.
type scriptSolver struct {
	t     *testing.T
	steps []scriptStep
	calls int
}

func (s *scriptSolver) Solve(_ context.Context, m *milp.Model, b milp.Budget) (milp.Result, error) {
	if s.calls >= len(s.steps) {
		return milp.Result{}, errors.New("script exhausted: unexpected extra solver invocation")
	}
	step := s.steps[s.calls]
	s.calls++

	return step(s.t, m, b)
}

// answer builds a step returning status with the given named assignment.
func answer(status milp.Status, byName map[string]float64) scriptStep {
	return func(t *testing.T, m *milp.Model, _ milp.Budget) (milp.Result, error) {
		values := assignment(t, m, byName)

		return milp.Result{
			Status:    status,
			Values:    values,
			Objective: m.ObjectiveValue(values),
		}, nil
	}
}

// terminal builds a step returning a value-free terminal status.
func terminal(status milp.Status) scriptStep {
	return func(_ *testing.T, _ *milp.Model, _ milp.Budget) (milp.Result, error) {
		return milp.Result{Status: status}, nil
	}
}

// findRow scans a model for the first row with the given name.
func findRow(m *milp.Model, name string) (milp.Constraint, bool) {
	for i := 0; i < m.NumConstraints(); i++ {
		row, _ := m.ConstraintAt(i)
		if row.Name == name {
			return row, true
		}
	}

	return milp.Constraint{}, false
}
