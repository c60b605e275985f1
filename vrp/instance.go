// SPDX-License-Identifier: MIT
// Package vrp — immutable problem instance.
//
// An Instance owns defensive copies of all input data; nothing in the engine
// mutates it after construction, so one Instance may back any number of
// concurrent solves. Node indexing follows the formulation: node 0 is the
// depot, nodes 1..c are customers.

package vrp

import "math"

// InstanceData is the descriptor handed over by the parsing collaborator.
// All slices are customer-ordered (index 0 = customer 1); the travel-time
// matrix alone is node-ordered, (c+1)×(c+1) with row/column 0 for the depot.
type InstanceData struct {
	// Weights holds one demand per customer; must be non-negative.
	Weights []float64

	// ServiceTimes holds one service duration per customer; the depot's
	// service time is implicitly 0.
	ServiceTimes []float64

	// TravelTimes is the complete directed travel-time matrix over all nodes.
	// Zero diagonal, non-negative finite entries, triangle inequality.
	TravelTimes [][]float64

	// TimeWindows is optional: nil means every customer gets [0, +Inf).
	// When present it must hold one window per customer.
	TimeWindows []TimeWindow

	// Triples is the (possibly empty) incompatibility list.
	Triples []Triple

	// Vehicles is the homogeneous fleet size K ≥ 1.
	Vehicles int

	// Capacity is the per-vehicle weight capacity W > 0.
	Capacity float64

	// MaxRouteDuration is the per-vehicle duration bound t_max > 0.
	MaxRouteDuration float64
}

// Instance is the validated, immutable problem. Construct via NewInstance or
// NewEuclideanInstance; the zero value is not usable.
type Instance struct {
	customers int // c
	nodes     int // c+1

	weights []float64    // node-indexed; weights[0] == 0
	service []float64    // node-indexed; service[0] == 0
	windows []TimeWindow // node-indexed; windows[0] == [0,+Inf)
	travel  []float64    // dense row-major (nodes×nodes) buffer
	triples []Triple

	vehicles int
	capacity float64
	tMax     float64

	bigM float64 // Σ t(i,j) + Σ s_i, fixed at construction
}

// NewInstance validates d and returns an immutable Instance.
//
// Contract: any structural violation yields a sentinel from errors.go
// (fail fast; no solve is ever attempted on bad data).
//
// Complexity: O(n³) dominated by the triangle-inequality scan.
func NewInstance(d InstanceData) (*Instance, error) {
	inst, err := assemble(d)
	if err != nil {
		return nil, err
	}

	return inst, nil
}

// NewEuclideanInstance builds an Instance from planar coordinates, computing
// travel times as Euclidean distances (locations[0] is the depot). The
// triangle inequality then holds by construction, up to FP tolerance.
func NewEuclideanInstance(locations [][2]float64, d InstanceData) (*Instance, error) {
	if len(locations) != len(d.Weights)+1 {
		return nil, ErrBadMatrixShape
	}
	n := len(locations)
	tt := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		tt[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			tt[i][j] = math.Hypot(locations[i][0]-locations[j][0], locations[i][1]-locations[j][1])
		}
	}
	d.TravelTimes = tt

	return NewInstance(d)
}

// Customers reports c, the number of customers.
func (in *Instance) Customers() int { return in.customers }

// Nodes reports c+1 (customers plus depot).
func (in *Instance) Nodes() int { return in.nodes }

// Vehicles reports the fleet size K.
func (in *Instance) Vehicles() int { return in.vehicles }

// Capacity reports the per-vehicle capacity W.
func (in *Instance) Capacity() float64 { return in.capacity }

// MaxRouteDuration reports t_max.
func (in *Instance) MaxRouteDuration() float64 { return in.tMax }

// Weight reports the demand of node i (0 for the depot).
func (in *Instance) Weight(i int) float64 { return in.weights[i] }

// Service reports the service time of node i (0 for the depot).
func (in *Instance) Service(i int) float64 { return in.service[i] }

// Window reports the service-start window of node i ([0,+Inf) for the depot).
func (in *Instance) Window(i int) TimeWindow { return in.windows[i] }

// Travel reports the directed travel time i→j.
func (in *Instance) Travel(i, j int) float64 { return in.travel[i*in.nodes+j] }

// Triples returns a copy of the incompatibility list.
func (in *Instance) Triples() []Triple {
	return append([]Triple(nil), in.triples...)
}

// TotalDemand reports Σ customer weights.
func (in *Instance) TotalDemand() float64 {
	var sum float64
	for _, w := range in.weights {
		sum += w
	}

	return sum
}

// BigM reports the Big-M constant M = Σ_{(i,j)} t(i,j) + Σ_i s_i.
// M strictly dominates any attainable schedule gap: the left side of every
// gated inequality is bounded by the sum of all travel plus all service.
func (in *Instance) BigM() float64 { return in.bigM }
