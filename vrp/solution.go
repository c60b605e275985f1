// SPDX-License-Identifier: MIT
// Package vrp — solution model.
//
// A Solution is owned by the caller once returned: plain data, JSON-ready,
// independent of the Instance lifetime. All metrics are recomputed from the
// route sequences (not read back from solver variables), stabilized with
// round9 for cross-platform reproducibility.

package vrp

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Stop is one customer visit: the node and its service-start time.
type Stop struct {
	Node  int     `json:"node"`
	Start float64 `json:"start"`
}

// Route is one vehicle's ordered customer sequence. The depot bracketing the
// sequence is implicit. An unused vehicle has an empty Stops slice.
type Route struct {
	Vehicle   int     `json:"vehicle"`
	Stops     []Stop  `json:"stops"`
	Duration  float64 `json:"duration"`  // T_k: full route duration, 0 if unused
	Load      float64 `json:"load"`      // Σ served weights
	Deviation float64 `json:"deviation"` // |T_k − T_avg|
}

// Customers returns the visited node sequence without times.
func (r Route) Customers() []int {
	out := make([]int, len(r.Stops))
	for i, s := range r.Stops {
		out[i] = s.Node
	}

	return out
}

// Report carries solve metadata for the reporting collaborator. Callers must
// check the Proven flags before treating objectives as proven bounds: a
// timeout incumbent's objective is an approximation, not an optimum.
type Report struct {
	SolveID string `json:"solve_id"`
	Mode    Mode   `json:"mode"`
	Status  string `json:"status"`

	PrimaryObjective float64 `json:"primary_objective"` // Z_A
	PrimaryProven    bool    `json:"primary_proven"`

	SecondaryAttempted bool    `json:"secondary_attempted"`
	SecondaryObjective float64 `json:"secondary_objective"` // mean absolute deviation
	SecondaryProven    bool    `json:"secondary_proven"`

	Epsilon float64       `json:"epsilon"`
	Gap     float64       `json:"gap"`
	Elapsed time.Duration `json:"elapsed"`
}

// Solution is the validated outcome of a solve.
type Solution struct {
	Mode   Mode    `json:"mode"`
	Routes []Route `json:"routes"` // one entry per vehicle, index = vehicle id

	// Workload records over the whole fleet (unused vehicles count as 0).
	Workloads []float64 `json:"workloads"` // T_k per vehicle
	TAvg      float64   `json:"t_avg"`

	// Summary metrics for the reporting collaborator.
	TotalTravelTime      float64 `json:"total_travel_time"` // Z_B of the returned routes
	TotalServiceTime     float64 `json:"total_service_time"`
	TotalOperationalTime float64 `json:"total_operational_time"`
	VehiclesUsed         int     `json:"vehicles_used"`
	VehiclesAvailable    int     `json:"vehicles_available"`
	CapacityUtilization  float64 `json:"capacity_utilization"`
	TotalDeviation       float64 `json:"total_deviation"`
	MaxDeviation         float64 `json:"max_deviation"`
	DurationSpread       float64 `json:"duration_spread"` // max−min over used routes
	DurationCV           float64 `json:"duration_cv"`     // coefficient of variation

	Report Report `json:"report"`
}

// finalizeMetrics fills every derived field from the route sequences.
// Travel and service totals are recomputed from the Instance, never read
// back from solver variables.
//
// Complexity: O(total stops + K).
func (s *Solution) finalizeMetrics(inst *Instance) {
	var (
		travel, service float64
		used            int
		load            float64
	)

	s.Workloads = make([]float64, len(s.Routes))
	durations := make([]float64, 0, len(s.Routes)) // used vehicles only

	for v := range s.Routes {
		r := &s.Routes[v]
		s.Workloads[v] = r.Duration
		if len(r.Stops) == 0 {
			continue
		}
		used++
		load += r.Load
		durations = append(durations, r.Duration)

		prev := 0
		for _, st := range r.Stops {
			travel += inst.Travel(prev, st.Node)
			service += inst.Service(st.Node)
			prev = st.Node
		}
		travel += inst.Travel(prev, 0)
	}

	s.TotalTravelTime = round9(travel)
	s.TotalServiceTime = round9(service)
	s.TotalOperationalTime = round9(travel + service)
	s.VehiclesUsed = used
	s.VehiclesAvailable = inst.Vehicles()
	if used > 0 {
		s.CapacityUtilization = round9(load / (float64(used) * inst.Capacity()))
	}

	// Workload statistics: T_avg is the mean over the whole fleet K, matching
	// the fairness model; spread and CV describe only the used routes.
	s.TAvg = round9(stat.Mean(s.Workloads, nil))
	var total, maxDev float64
	for v := range s.Routes {
		d := s.Workloads[v] - s.TAvg
		if d < 0 {
			d = -d
		}
		s.Routes[v].Deviation = round9(d)
		total += d
		if d > maxDev {
			maxDev = d
		}
	}
	s.TotalDeviation = round9(total)
	s.MaxDeviation = round9(maxDev)

	if len(durations) > 0 {
		lo, hi := durations[0], durations[0]
		for _, d := range durations[1:] {
			if d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
		s.DurationSpread = round9(hi - lo)
		if mean := stat.Mean(durations, nil); mean > 0 {
			s.DurationCV = round9(stat.PopStdDev(durations, nil) / mean)
		}
	}
}

// MeanAbsDeviation reports (1/K)·Σ |T_k − T_avg|, the secondary objective
// recomputed from the workload records.
func (s *Solution) MeanAbsDeviation() float64 {
	if len(s.Workloads) == 0 {
		return 0
	}

	return round9(s.TotalDeviation / float64(len(s.Workloads)))
}
