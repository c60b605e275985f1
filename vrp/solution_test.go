// SPDX-License-Identifier: MIT
package vrp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpmilp/milp"
	"github.com/katalvlaran/vrpmilp/vrp"
)

func TestRoute_Customers(t *testing.T) {
	r := vrp.Route{Stops: []vrp.Stop{{Node: 3, Start: 1}, {Node: 1, Start: 4}}}
	assert.Equal(t, []int{3, 1}, r.Customers())
	assert.Empty(t, vrp.Route{}.Customers())
}

func TestSolution_MeanAbsDeviation_Empty(t *testing.T) {
	assert.Equal(t, 0.0, (&vrp.Solution{}).MeanAbsDeviation())
}

func TestSolution_UnusedVehicleMetrics(t *testing.T) {
	// One of two vehicles stays idle: it still contributes a zero workload
	// to T_avg, but not to spread or utilization.
	d := tinyData()
	d.Vehicles = 2
	inst, err := vrp.NewInstance(d)
	require.NoError(t, err)

	solver := &scriptSolver{t: t, steps: []scriptStep{
		answer(milp.StatusOptimal, tinyOptimal()),
	}}
	sol, err := vrp.Solve(context.Background(), inst, solver, vrp.DefaultOptions(vrp.ModeBaseline))
	require.NoError(t, err)

	assert.Equal(t, 1, sol.VehiclesUsed)
	assert.Equal(t, 2, sol.VehiclesAvailable)
	assert.Equal(t, []float64{9, 0}, sol.Workloads)
	assert.Equal(t, 4.5, sol.TAvg)
	assert.Empty(t, sol.Routes[1].Stops)
	assert.Equal(t, 0.0, sol.Routes[1].Duration)
	assert.Equal(t, 0.0, sol.DurationSpread, "spread covers used routes only")
	assert.Equal(t, 0.7, sol.CapacityUtilization, "idle capacity is not counted")
}

func TestSolution_JSONShape(t *testing.T) {
	inst := mustTiny(t)
	solver := &scriptSolver{t: t, steps: []scriptStep{
		answer(milp.StatusOptimal, tinyOptimal()),
	}}
	sol, err := vrp.Solve(context.Background(), inst, solver, vrp.DefaultOptions(vrp.ModeBaseline))
	require.NoError(t, err)

	raw, err := json.Marshal(sol)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "baseline", decoded["mode"])
	assert.Equal(t, 9.0, decoded["total_travel_time"])
	assert.Equal(t, 1.0, decoded["vehicles_used"])

	report, ok := decoded["report"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 9.0, report["primary_objective"])
	assert.Equal(t, true, report["primary_proven"])
	assert.NotEmpty(t, report["solve_id"])

	routes, ok := decoded["routes"].([]interface{})
	require.True(t, ok)
	require.Len(t, routes, 1)
}
