// SPDX-License-Identifier: MIT
// Package highs_test validates the model translation, budget, and
// status-mapping layers without invoking the kernel (solve paths need a
// HiGHS installation and are covered by the engine's integration
// environment).
package highs_test

import (
	"context"
	"math"
	"testing"
	"time"

	lanl "github.com/lanl/highs"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpmilp/milp"
	hs "github.com/katalvlaran/vrpmilp/milp/highs"
)

// buildTiny assembles: min x+2y s.t. 1 ≤ x+y ≤ 3, y ≤ 2, x binary, y ∈ [0,10].
func buildTiny(t *testing.T) *milp.Model {
	t.Helper()
	m := milp.NewModel()
	x, err := m.AddBinary("x")
	require.NoError(t, err)
	y, err := m.AddVar("y", milp.Continuous, 0, 10)
	require.NoError(t, err)
	require.NoError(t, m.AddConstraint("band", []milp.Term{{Var: x, Coef: 1}, {Var: y, Coef: 1}}, 1, 3))
	require.NoError(t, m.AddLe("cap", []milp.Term{{Var: y, Coef: 1}}, 2))
	require.NoError(t, m.SetObjective([]milp.Term{{Var: x, Coef: 1}, {Var: y, Coef: 2}}))

	return m
}

func TestTranslate_ColumnsRowsAndTriplets(t *testing.T) {
	m := buildTiny(t)
	km := hs.Translate(m)

	require.Equal(t, []float64{1, 2}, km.ColCosts)
	require.Equal(t, []float64{0, 0}, km.ColLower)
	require.Equal(t, []float64{1, 10}, km.ColUpper)
	require.Equal(t, lanl.IntegerType, km.VarTypes[0])
	require.NotEqual(t, lanl.IntegerType, km.VarTypes[1])

	require.Equal(t, []float64{1, math.Inf(-1)}, km.RowLower)
	require.Equal(t, []float64{3, 2}, km.RowUpper)
	require.Equal(t, []lanl.Nonzero{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 1, Val: 1},
	}, km.ConstMatrix)
}

func TestTranslate_Deterministic(t *testing.T) {
	a := hs.Translate(buildTiny(t))
	b := hs.Translate(buildTiny(t))
	require.Equal(t, a, b)
}

func TestKernelTimeLimit(t *testing.T) {
	bg := context.Background()

	require.Equal(t, 0.0, hs.KernelTimeLimit(bg, milp.Budget{}), "no budget means unlimited")
	require.Equal(t, 2.0, hs.KernelTimeLimit(bg, milp.Budget{TimeLimit: 2 * time.Second}))

	// A ctx deadline tightens the budget, and supplies one when absent.
	ctx, cancel := context.WithTimeout(bg, time.Second)
	defer cancel()
	got := hs.KernelTimeLimit(ctx, milp.Budget{TimeLimit: 30 * time.Second})
	require.Greater(t, got, 0.0)
	require.LessOrEqual(t, got, 1.0)
	got = hs.KernelTimeLimit(ctx, milp.Budget{})
	require.Greater(t, got, 0.0)
	require.LessOrEqual(t, got, 1.0)

	// An already-expired deadline must not be mistaken for "unlimited".
	expired, cancel2 := context.WithDeadline(bg, time.Now().Add(-time.Second))
	defer cancel2()
	got = hs.KernelTimeLimit(expired, milp.Budget{TimeLimit: 30 * time.Second})
	require.Greater(t, got, 0.0)
	require.Less(t, got, 0.01)
}

func TestInterpret_Optimal(t *testing.T) {
	res, err := hs.Interpret(lanl.Optimal, []float64{1, 0.5}, 2, 0, true, 2)
	require.NoError(t, err)
	require.Equal(t, milp.StatusOptimal, res.Status)
	require.Equal(t, []float64{1, 0.5}, res.Values)
	require.Equal(t, 2.0, res.Objective)
}

func TestInterpret_GapLimitedStopIsFeasible(t *testing.T) {
	// HiGHS still reports Optimal when it stops at mip_rel_gap; a nonzero
	// remaining gap downgrades the claim to an unproven incumbent.
	res, err := hs.Interpret(lanl.Optimal, []float64{1, 0.5}, 2, 0.04, true, 2)
	require.NoError(t, err)
	require.Equal(t, milp.StatusFeasible, res.Status)
	require.Equal(t, 0.04, res.Gap)
	require.True(t, res.HasIncumbent())
}

func TestInterpret_TimeLimitKeepsIncumbent(t *testing.T) {
	res, err := hs.Interpret(lanl.TimeLimit, []float64{1, 0.5}, 2, 0.2, true, 2)
	require.NoError(t, err)
	require.Equal(t, milp.StatusTimedOut, res.Status)
	require.True(t, res.HasIncumbent(), "feasible point at the limit must survive")
	require.Equal(t, 2.0, res.Objective)

	// Without a feasible point the result carries no values.
	res, err = hs.Interpret(lanl.TimeLimit, []float64{0, 0}, 0, 0, false, 2)
	require.NoError(t, err)
	require.Equal(t, milp.StatusTimedOut, res.Status)
	require.False(t, res.HasIncumbent())
}

func TestInterpret_TerminalStatuses(t *testing.T) {
	res, err := hs.Interpret(lanl.Infeasible, nil, 0, 0, false, 2)
	require.NoError(t, err)
	require.Equal(t, milp.StatusInfeasible, res.Status)

	res, err = hs.Interpret(lanl.Unbounded, nil, 0, 0, false, 2)
	require.NoError(t, err)
	require.Equal(t, milp.StatusUnbounded, res.Status)
}

func TestInterpret_Faults(t *testing.T) {
	_, err := hs.Interpret(lanl.Optimal, []float64{1}, 2, 0, true, 2)
	require.ErrorIs(t, err, milp.ErrKernel)

	_, err = hs.Interpret(lanl.UnknownModelStatus, nil, 0, 0, false, 2)
	require.ErrorIs(t, err, milp.ErrKernel)
}
