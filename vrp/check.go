// SPDX-License-Identifier: MIT
// Package vrp — independent diagnostics.
//
// CheckSolution recomputes every constraint family directly from the route
// sequences, never from solver variable values. Big-M models are numerically
// fragile near the tolerance boundary; solver-reported feasibility is not
// trusted until this pure recomputation agrees. The first violated invariant
// is returned with enough context (vehicle, nodes, bound, actual) to
// diagnose it.
//
// A customer captured by a depot-free subtour in the kernel answer appears in
// no reconstructed route and therefore trips the partition check here; the
// engine escalates any violation to ErrSolverFault.

package vrp

import "fmt"

// ViolationKind names the constraint family a candidate solution broke.
type ViolationKind int

const (
	// ViolationFleet: route list does not match the fleet size.
	ViolationFleet ViolationKind = iota

	// ViolationPartition: a customer served zero times or more than once.
	ViolationPartition

	// ViolationCapacity: route load exceeds vehicle capacity.
	ViolationCapacity

	// ViolationProgression: a service start precedes the reachable time along
	// the route (travel + service accumulation).
	ViolationProgression

	// ViolationTimeWindow: a service start outside [a_i, b_i].
	ViolationTimeWindow

	// ViolationDuration: recomputed route duration exceeds t_max, or
	// disagrees with the reported duration.
	ViolationDuration

	// ViolationIncompatibility: all three members of a triple on one vehicle.
	ViolationIncompatibility

	// ViolationDegradation: fairness solution travel exceeds (1+ε)·Z_A.
	ViolationDegradation
)

// String implements fmt.Stringer.
func (k ViolationKind) String() string {
	switch k {
	case ViolationFleet:
		return "fleet"
	case ViolationPartition:
		return "partition"
	case ViolationCapacity:
		return "capacity"
	case ViolationProgression:
		return "time-progression"
	case ViolationTimeWindow:
		return "time-window"
	case ViolationDuration:
		return "duration"
	case ViolationIncompatibility:
		return "incompatibility"
	case ViolationDegradation:
		return "degradation-bound"
	default:
		return fmt.Sprintf("violation(%d)", int(k))
	}
}

// Violation is the first broken invariant found by CheckSolution.
type Violation struct {
	Kind    ViolationKind
	Vehicle int     // offending vehicle, -1 when not applicable
	Node    int     // offending node, -1 when not applicable
	Other   int     // second node for pairwise families, -1 otherwise
	Bound   float64 // the violated bound
	Actual  float64 // the recomputed value
}

// Error implements error with full diagnostic context.
func (v *Violation) Error() string {
	return fmt.Sprintf("vrp: %s violation (vehicle=%d node=%d other=%d bound=%g actual=%g)",
		v.Kind, v.Vehicle, v.Node, v.Other, v.Bound, v.Actual)
}

// CheckSolution is the pure route-feasibility checker.
//
// Contract:
//   - inst and sol non-nil; opts supplies the mode, tolerance, and fairness ε.
//   - Families follow the mode: Baseline skips time windows and
//     incompatibility triples, exactly like the builder.
//   - Returns nil when every family holds, otherwise the first *Violation.
//
// Complexity: O(total stops + triples·K).
func CheckSolution(inst *Instance, sol *Solution, opts Options) error {
	if inst == nil {
		return ErrInstanceNil
	}
	if sol == nil || len(sol.Routes) != inst.Vehicles() {
		return &Violation{Kind: ViolationFleet, Vehicle: -1, Node: -1, Other: -1,
			Bound: float64(inst.Vehicles()), Actual: float64(len(sol.Routes))}
	}
	tol := opts.CheckTolerance

	// Partition: each customer on exactly one route, exactly once.
	seen := make([]int, inst.Nodes())
	for _, r := range sol.Routes {
		for _, st := range r.Stops {
			if st.Node < 1 || st.Node >= inst.Nodes() {
				return &Violation{Kind: ViolationPartition, Vehicle: r.Vehicle, Node: st.Node, Other: -1}
			}
			seen[st.Node]++
		}
	}
	var i int
	for i = 1; i < inst.Nodes(); i++ {
		if seen[i] != 1 {
			return &Violation{Kind: ViolationPartition, Vehicle: -1, Node: i, Other: -1,
				Bound: 1, Actual: float64(seen[i])}
		}
	}

	// Per-route families: capacity, progression, windows, duration.
	var travelTotal float64
	for _, r := range sol.Routes {
		if len(r.Stops) == 0 {
			continue
		}

		var load float64
		prev, reach := 0, 0.0
		for _, st := range r.Stops {
			load += inst.Weight(st.Node)
			reach += inst.Travel(prev, st.Node) + inst.Service(prev)
			travelTotal += inst.Travel(prev, st.Node)

			if st.Start < reach-tol {
				return &Violation{Kind: ViolationProgression, Vehicle: r.Vehicle,
					Node: st.Node, Other: prev, Bound: reach, Actual: st.Start}
			}
			if opts.Mode.assignmentIndicators() {
				w := inst.Window(st.Node)
				if st.Start < w.Start-tol || st.Start > w.End+tol {
					return &Violation{Kind: ViolationTimeWindow, Vehicle: r.Vehicle,
						Node: st.Node, Other: -1, Bound: w.End, Actual: st.Start}
				}
			}

			reach = st.Start // service may start later than reachable (waiting)
			prev = st.Node
		}
		travelTotal += inst.Travel(prev, 0)

		if load > inst.Capacity()+tol {
			return &Violation{Kind: ViolationCapacity, Vehicle: r.Vehicle, Node: -1, Other: -1,
				Bound: inst.Capacity(), Actual: load}
		}

		last := r.Stops[len(r.Stops)-1]
		dur := last.Start + inst.Service(last.Node) + inst.Travel(last.Node, 0)
		if dur > inst.MaxRouteDuration()+tol {
			return &Violation{Kind: ViolationDuration, Vehicle: r.Vehicle, Node: last.Node, Other: -1,
				Bound: inst.MaxRouteDuration(), Actual: dur}
		}
		if dur > r.Duration+tol || dur < r.Duration-tol {
			return &Violation{Kind: ViolationDuration, Vehicle: r.Vehicle, Node: last.Node, Other: -1,
				Bound: r.Duration, Actual: dur}
		}
	}

	// Incompatibility: at most two triple members per vehicle.
	if opts.Mode.assignmentIndicators() && len(inst.triples) > 0 {
		owner := make([]int, inst.Nodes())
		for _, r := range sol.Routes {
			for _, st := range r.Stops {
				owner[st.Node] = r.Vehicle
			}
		}
		for _, tr := range inst.triples {
			if owner[tr.I] == owner[tr.J] && owner[tr.J] == owner[tr.L] {
				return &Violation{Kind: ViolationIncompatibility, Vehicle: owner[tr.I],
					Node: tr.I, Other: tr.L, Bound: 2, Actual: 3}
			}
		}
	}

	// Lexicographic degradation: recomputed travel against (1+ε)·Z_A.
	if sol.Report.SecondaryAttempted {
		bound := (1 + opts.Epsilon) * sol.Report.PrimaryObjective
		if travelTotal > bound+tol {
			return &Violation{Kind: ViolationDegradation, Vehicle: -1, Node: -1, Other: -1,
				Bound: bound, Actual: travelTotal}
		}
	}

	return nil
}
