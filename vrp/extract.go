// SPDX-License-Identifier: MIT
// Package vrp — solution extraction.
//
// Routes are reconstructed by arc-following over the x(i,j,k) assignment with
// the usual 0.5 rounding threshold. The walk is hardened: a route that fails
// to return to the depot within n hops, or a node with no outgoing arc, is a
// numerically inconsistent kernel answer and surfaces as ErrSolverFault —
// never an infinite loop, never silently truncated.

package vrp

import "fmt"

// arcOn is the rounding threshold for binary arc variables.
const arcOn = 0.5

// extract rebuilds per-vehicle routes and service-start times from a feasible
// column assignment.
//
// Complexity: O(n²·K) worst case (arc scan per hop).
func (f *Formulation) extract(values []float64) (*Solution, error) {
	var (
		n, K = f.inst.Nodes(), f.inst.Vehicles()
		sol  = &Solution{Mode: f.opts.Mode, Routes: make([]Route, K)}

		k, cur, next, hop, j int
	)

	for k = 0; k < K; k++ {
		route := Route{Vehicle: k, Stops: []Stop{}}

		// Does vehicle k leave the depot at all?
		cur = 0
		for hop = 0; hop <= n; hop++ {
			next = -1
			for j = 0; j < n; j++ {
				if j == cur {
					continue
				}
				if values[f.x[cur][j][k]] > arcOn {
					next = j

					break
				}
			}
			if cur == 0 && next == -1 {
				// Unused vehicle: no departure arc. Legal under '≤ 1'.
				break
			}
			if next == -1 {
				return nil, fmt.Errorf("vehicle %d stranded at node %d: %w", k, cur, ErrSolverFault)
			}
			if next == 0 {
				// Closed the route.
				cur = 0

				break
			}
			route.Stops = append(route.Stops, Stop{
				Node:  next,
				Start: round9(values[f.y[next][k]]),
			})
			route.Load += f.inst.Weight(next)
			cur = next
		}
		if cur != 0 {
			return nil, fmt.Errorf("vehicle %d never returned to depot: %w", k, ErrSolverFault)
		}

		// Route duration from the closing leg, recomputed like the model's
		// d(last,k): service start at the last stop + its service + return.
		if len(route.Stops) > 0 {
			last := route.Stops[len(route.Stops)-1]
			route.Duration = round9(last.Start + f.inst.Service(last.Node) + f.inst.Travel(last.Node, 0))
			route.Load = round9(route.Load)
		}
		sol.Routes[k] = route
	}

	sol.finalizeMetrics(f.inst)

	return sol, nil
}
