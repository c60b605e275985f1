// SPDX-License-Identifier: MIT
package vrp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpmilp/vrp"
)

// tinySolution is the feasible 0→1→2→0 answer over tinyData.
func tinySolution() *vrp.Solution {
	return &vrp.Solution{
		Mode: vrp.ModeBaseline,
		Routes: []vrp.Route{{
			Vehicle:  0,
			Stops:    []vrp.Stop{{Node: 1, Start: 2}, {Node: 2, Start: 5}},
			Duration: 9,
			Load:     7,
		}},
	}
}

func TestCheckSolution_Valid(t *testing.T) {
	inst := mustTiny(t)
	opts := vrp.DefaultOptions(vrp.ModeBaseline)

	assert.NoError(t, vrp.CheckSolution(inst, tinySolution(), opts))
}

func TestCheckSolution_WaitingIsLegal(t *testing.T) {
	// Starting service later than reachable models waiting at the customer;
	// downstream stops measure progression from the actual start.
	inst := mustTiny(t)
	sol := tinySolution()
	sol.Routes[0].Stops = []vrp.Stop{{Node: 1, Start: 3}, {Node: 2, Start: 6}}
	sol.Routes[0].Duration = 10

	assert.NoError(t, vrp.CheckSolution(inst, sol, vrp.DefaultOptions(vrp.ModeBaseline)))
}

func TestCheckSolution_NilArguments(t *testing.T) {
	inst := mustTiny(t)
	opts := vrp.DefaultOptions(vrp.ModeBaseline)

	assert.ErrorIs(t, vrp.CheckSolution(nil, tinySolution(), opts), vrp.ErrInstanceNil)

	err := vrp.CheckSolution(inst, nil, opts)
	var v *vrp.Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, vrp.ViolationFleet, v.Kind)
}

func TestCheckSolution_FleetMismatch(t *testing.T) {
	inst := mustTiny(t)
	sol := tinySolution()
	sol.Routes = append(sol.Routes, vrp.Route{Vehicle: 1}) // one vehicle too many

	var v *vrp.Violation
	require.ErrorAs(t, vrp.CheckSolution(inst, sol, vrp.DefaultOptions(vrp.ModeBaseline)), &v)
	assert.Equal(t, vrp.ViolationFleet, v.Kind)
	assert.Equal(t, 1.0, v.Bound)
	assert.Equal(t, 2.0, v.Actual)
}

func TestCheckSolution_PartitionViolations(t *testing.T) {
	inst := mustTiny(t)
	opts := vrp.DefaultOptions(vrp.ModeBaseline)

	t.Run("customer missing", func(t *testing.T) {
		sol := tinySolution()
		sol.Routes[0].Stops = []vrp.Stop{{Node: 1, Start: 2}}
		sol.Routes[0].Duration = 4
		sol.Routes[0].Load = 3

		var v *vrp.Violation
		require.ErrorAs(t, vrp.CheckSolution(inst, sol, opts), &v)
		assert.Equal(t, vrp.ViolationPartition, v.Kind)
		assert.Equal(t, 2, v.Node)
		assert.Equal(t, 0.0, v.Actual)
	})

	t.Run("customer served twice", func(t *testing.T) {
		sol := tinySolution()
		sol.Routes[0].Stops = []vrp.Stop{{Node: 1, Start: 2}, {Node: 2, Start: 5}, {Node: 1, Start: 8}}

		var v *vrp.Violation
		require.ErrorAs(t, vrp.CheckSolution(inst, sol, opts), &v)
		assert.Equal(t, vrp.ViolationPartition, v.Kind)
		assert.Equal(t, 1, v.Node)
		assert.Equal(t, 2.0, v.Actual)
	})

	t.Run("node out of range", func(t *testing.T) {
		sol := tinySolution()
		sol.Routes[0].Stops[1].Node = 7

		var v *vrp.Violation
		require.ErrorAs(t, vrp.CheckSolution(inst, sol, opts), &v)
		assert.Equal(t, vrp.ViolationPartition, v.Kind)
		assert.Equal(t, 7, v.Node)
	})
}

func TestCheckSolution_Capacity(t *testing.T) {
	d := tinyData()
	d.Capacity = 6 // route load 7 exceeds it
	inst, err := vrp.NewInstance(d)
	require.NoError(t, err)

	var v *vrp.Violation
	require.ErrorAs(t, vrp.CheckSolution(inst, tinySolution(), vrp.DefaultOptions(vrp.ModeBaseline)), &v)
	assert.Equal(t, vrp.ViolationCapacity, v.Kind)
	assert.Equal(t, 6.0, v.Bound)
	assert.Equal(t, 7.0, v.Actual)
}

func TestCheckSolution_Progression(t *testing.T) {
	inst := mustTiny(t)
	sol := tinySolution()
	// Node 1 is 2 time units from the depot; starting at 1 is unreachable.
	sol.Routes[0].Stops[0].Start = 1

	var v *vrp.Violation
	require.ErrorAs(t, vrp.CheckSolution(inst, sol, vrp.DefaultOptions(vrp.ModeBaseline)), &v)
	assert.Equal(t, vrp.ViolationProgression, v.Kind)
	assert.Equal(t, 1, v.Node)
	assert.Equal(t, 2.0, v.Bound)
	assert.Equal(t, 1.0, v.Actual)
}

func TestCheckSolution_TimeWindow(t *testing.T) {
	d := tinyData()
	d.TimeWindows = []vrp.TimeWindow{{Start: 6, End: 10}, {Start: 0, End: 20}}
	inst, err := vrp.NewInstance(d)
	require.NoError(t, err)

	// Start 2 at node 1 precedes the window opening at 6.
	var v *vrp.Violation
	require.ErrorAs(t, vrp.CheckSolution(inst, tinySolution(), vrp.DefaultOptions(vrp.ModeTimeWindowed)), &v)
	assert.Equal(t, vrp.ViolationTimeWindow, v.Kind)
	assert.Equal(t, 1, v.Node)
}

func TestCheckSolution_BaselineIgnoresIndicatorFamilies(t *testing.T) {
	// Baseline drops the assignment indicators, so the checker must accept
	// routes that an early window opening or a shared triple would reject
	// in the richer modes.
	t.Run("time windows", func(t *testing.T) {
		d := tinyData()
		d.TimeWindows = []vrp.TimeWindow{{Start: 6, End: 10}, {Start: 0, End: 20}}
		inst, err := vrp.NewInstance(d)
		require.NoError(t, err)

		assert.NoError(t, vrp.CheckSolution(inst, tinySolution(), vrp.DefaultOptions(vrp.ModeBaseline)))
	})

	t.Run("incompatibility triples", func(t *testing.T) {
		d := vrp.InstanceData{
			Weights:      []float64{1, 1, 1},
			ServiceTimes: []float64{0, 0, 0},
			TravelTimes: [][]float64{
				{0, 1, 1, 1},
				{1, 0, 1, 1},
				{1, 1, 0, 1},
				{1, 1, 1, 0},
			},
			Triples:          []vrp.Triple{{I: 1, J: 2, L: 3}},
			Vehicles:         1,
			Capacity:         10,
			MaxRouteDuration: 20,
		}
		inst, err := vrp.NewInstance(d)
		require.NoError(t, err)

		sol := &vrp.Solution{
			Mode: vrp.ModeBaseline,
			Routes: []vrp.Route{
				{Vehicle: 0, Stops: []vrp.Stop{{Node: 1, Start: 1}, {Node: 2, Start: 2}, {Node: 3, Start: 3}}, Duration: 4, Load: 3},
			},
		}
		assert.NoError(t, vrp.CheckSolution(inst, sol, vrp.DefaultOptions(vrp.ModeBaseline)))
	})
}

func TestCheckSolution_Duration(t *testing.T) {
	t.Run("exceeds max route duration", func(t *testing.T) {
		d := tinyData()
		d.MaxRouteDuration = 8 // recomputed duration is 9
		inst, err := vrp.NewInstance(d)
		require.NoError(t, err)

		var v *vrp.Violation
		require.ErrorAs(t, vrp.CheckSolution(inst, tinySolution(), vrp.DefaultOptions(vrp.ModeBaseline)), &v)
		assert.Equal(t, vrp.ViolationDuration, v.Kind)
		assert.Equal(t, 8.0, v.Bound)
		assert.Equal(t, 9.0, v.Actual)
	})

	t.Run("disagrees with reported duration", func(t *testing.T) {
		inst := mustTiny(t)
		sol := tinySolution()
		sol.Routes[0].Duration = 12

		var v *vrp.Violation
		require.ErrorAs(t, vrp.CheckSolution(inst, sol, vrp.DefaultOptions(vrp.ModeBaseline)), &v)
		assert.Equal(t, vrp.ViolationDuration, v.Kind)
		assert.Equal(t, 12.0, v.Bound)
		assert.Equal(t, 9.0, v.Actual)
	})
}

func TestCheckSolution_Incompatibility(t *testing.T) {
	d := vrp.InstanceData{
		Weights:      []float64{1, 1, 1},
		ServiceTimes: []float64{0, 0, 0},
		TravelTimes: [][]float64{
			{0, 1, 1, 1},
			{1, 0, 1, 1},
			{1, 1, 0, 1},
			{1, 1, 1, 0},
		},
		Triples:          []vrp.Triple{{I: 1, J: 2, L: 3}},
		Vehicles:         2,
		Capacity:         10,
		MaxRouteDuration: 20,
	}
	inst, err := vrp.NewInstance(d)
	require.NoError(t, err)
	opts := vrp.DefaultOptions(vrp.ModeTimeWindowed)

	// All three triple members on vehicle 0.
	sol := &vrp.Solution{
		Mode: vrp.ModeTimeWindowed,
		Routes: []vrp.Route{
			{Vehicle: 0, Stops: []vrp.Stop{{Node: 1, Start: 1}, {Node: 2, Start: 2}, {Node: 3, Start: 3}}, Duration: 4, Load: 3},
			{Vehicle: 1, Stops: []vrp.Stop{}},
		},
	}
	var v *vrp.Violation
	require.ErrorAs(t, vrp.CheckSolution(inst, sol, opts), &v)
	assert.Equal(t, vrp.ViolationIncompatibility, v.Kind)
	assert.Equal(t, 0, v.Vehicle)

	// Splitting any member across vehicles restores feasibility.
	sol = &vrp.Solution{
		Mode: vrp.ModeTimeWindowed,
		Routes: []vrp.Route{
			{Vehicle: 0, Stops: []vrp.Stop{{Node: 1, Start: 1}, {Node: 2, Start: 2}}, Duration: 3, Load: 2},
			{Vehicle: 1, Stops: []vrp.Stop{{Node: 3, Start: 1}}, Duration: 2, Load: 1},
		},
	}
	assert.NoError(t, vrp.CheckSolution(inst, sol, opts))
}

func TestCheckSolution_DegradationBound(t *testing.T) {
	inst := mustTiny(t)
	opts := vrp.DefaultOptions(vrp.ModeFairness)

	sol := tinySolution()
	sol.Mode = vrp.ModeFairness
	sol.Report.SecondaryAttempted = true
	// Claimed primary optimum 8 puts the bound at 8.4, below the actual 9.
	sol.Report.PrimaryObjective = 8

	var v *vrp.Violation
	require.ErrorAs(t, vrp.CheckSolution(inst, sol, opts), &v)
	assert.Equal(t, vrp.ViolationDegradation, v.Kind)
	assert.InDelta(t, 8.4, v.Bound, 1e-12)
	assert.Equal(t, 9.0, v.Actual)

	// A consistent Z_A passes.
	sol.Report.PrimaryObjective = 9
	assert.NoError(t, vrp.CheckSolution(inst, sol, opts))
}

func TestViolation_ErrorMessage(t *testing.T) {
	v := &vrp.Violation{Kind: vrp.ViolationCapacity, Vehicle: 2, Node: -1, Other: -1, Bound: 10, Actual: 12}
	assert.Contains(t, v.Error(), "capacity")
	assert.Contains(t, v.Error(), "vehicle=2")
}
