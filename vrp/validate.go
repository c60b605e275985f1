// SPDX-License-Identifier: MIT
// Package vrp — instance validation.
//
// assemble performs the full structural check of InstanceData and builds the
// immutable Instance. Staged like the rest of the module: scalar parameters,
// per-customer lists, matrix shape/values, triangle inequality, windows,
// triples. First violation wins; sentinels only.

package vrp

import (
	"fmt"
	"math"
)

// Structural tolerances. diagTol bounds |t(i,i)|; triTol absorbs FP error in
// the triangle-inequality scan (Euclidean matrices violate it by ~1e-15).
const (
	diagTol = 1e-9
	triTol  = 1e-9
)

// assemble validates d and materializes the dense Instance.
//
// Complexity: O(n³) time (triangle scan), O(n²) space.
func assemble(d InstanceData) (*Instance, error) {
	// Stage 1: scalar parameters.
	if d.Vehicles < 1 {
		return nil, ErrBadFleet
	}
	if d.Capacity <= 0 || math.IsNaN(d.Capacity) {
		return nil, ErrBadCapacity
	}
	if d.MaxRouteDuration <= 0 || math.IsNaN(d.MaxRouteDuration) {
		return nil, ErrBadMaxDuration
	}

	// Stage 2: per-customer lists.
	c := len(d.Weights)
	if c == 0 {
		return nil, ErrNoCustomers
	}
	if len(d.ServiceTimes) != c {
		return nil, fmt.Errorf("service times: %w", ErrBadMatrixShape)
	}
	var i, j, k int
	for i = 0; i < c; i++ {
		if d.Weights[i] < 0 || math.IsNaN(d.Weights[i]) || math.IsInf(d.Weights[i], 0) {
			return nil, fmt.Errorf("customer %d: %w", i+1, ErrNegativeWeight)
		}
		if d.ServiceTimes[i] < 0 || math.IsNaN(d.ServiceTimes[i]) || math.IsInf(d.ServiceTimes[i], 0) {
			return nil, fmt.Errorf("customer %d: %w", i+1, ErrNegativeService)
		}
	}

	// Stage 3: matrix shape and values.
	n := c + 1
	if len(d.TravelTimes) != n {
		return nil, ErrBadMatrixShape
	}
	travel := make([]float64, n*n)
	var t float64
	for i = 0; i < n; i++ {
		if len(d.TravelTimes[i]) != n {
			return nil, ErrBadMatrixShape
		}
		for j = 0; j < n; j++ {
			t = d.TravelTimes[i][j]
			if math.IsNaN(t) || math.IsInf(t, 0) || (i != j && t < 0) {
				return nil, fmt.Errorf("arc (%d,%d): %w", i, j, ErrNegativeTravel)
			}
			if i == j && math.Abs(t) > diagTol {
				return nil, fmt.Errorf("node %d: %w", i, ErrNonZeroDiagonal)
			}
			travel[i*n+j] = t
		}
	}

	// Stage 4: triangle inequality t(i,j) ≤ t(i,k)+t(k,j) for all k.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			for k = 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				if travel[i*n+j] > travel[i*n+k]+travel[k*n+j]+triTol {
					return nil, fmt.Errorf("arc (%d,%d) via %d: %w", i, j, k, ErrTriangleInequality)
				}
			}
		}
	}

	// Stage 5: time windows (nil ⇒ all open).
	windows := make([]TimeWindow, n)
	windows[0] = openWindow()
	if d.TimeWindows == nil {
		for i = 1; i < n; i++ {
			windows[i] = openWindow()
		}
	} else {
		if len(d.TimeWindows) != c {
			return nil, fmt.Errorf("time windows: %w", ErrBadMatrixShape)
		}
		for i = 0; i < c; i++ {
			if !d.TimeWindows[i].valid() {
				return nil, fmt.Errorf("customer %d: %w", i+1, ErrBadTimeWindow)
			}
			windows[i+1] = d.TimeWindows[i]
		}
	}

	// Stage 6: incompatibility triples — distinct customers, never the depot,
	// never out of range. A triple naming a nonexistent customer is rejected
	// here, not silently dropped.
	for _, tr := range d.Triples {
		if tr.I < 1 || tr.I > c || tr.J < 1 || tr.J > c || tr.L < 1 || tr.L > c {
			return nil, fmt.Errorf("triple (%d,%d,%d): %w", tr.I, tr.J, tr.L, ErrBadTriple)
		}
		if tr.I == tr.J || tr.J == tr.L || tr.I == tr.L {
			return nil, fmt.Errorf("triple (%d,%d,%d): %w", tr.I, tr.J, tr.L, ErrBadTriple)
		}
	}

	// Stage 7: materialize node-indexed copies and the Big-M constant.
	weights := make([]float64, n)
	service := make([]float64, n)
	var bigM float64
	for i = 0; i < c; i++ {
		weights[i+1] = d.Weights[i]
		service[i+1] = d.ServiceTimes[i]
		bigM += d.ServiceTimes[i]
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				bigM += travel[i*n+j]
			}
		}
	}

	return &Instance{
		customers: c,
		nodes:     n,
		weights:   weights,
		service:   service,
		windows:   windows,
		travel:    travel,
		triples:   append([]Triple(nil), d.Triples...),
		vehicles:  d.Vehicles,
		capacity:  d.Capacity,
		tMax:      d.MaxRouteDuration,
		bigM:      round9(bigM),
	}, nil
}

// infeasibilityHint derives a human-readable diagnosis for obviously
// infeasible instances. Empty string when nothing cheap is derivable; the
// solver remains the authority on feasibility.
//
// Complexity: O(n).
func (in *Instance) infeasibilityHint() string {
	if in.TotalDemand() > float64(in.vehicles)*in.capacity {
		return "fleet capacity insufficient for total demand"
	}
	var i int
	for i = 1; i < in.nodes; i++ {
		if in.Travel(0, i) > in.windows[i].End {
			return fmt.Sprintf("customer %d unreachable within its time window", i)
		}
		if in.Travel(0, i)+in.service[i]+in.Travel(i, 0) > in.tMax {
			return fmt.Sprintf("customer %d cannot be served within max route duration", i)
		}
	}

	return ""
}
