// Package beam computes the static response of a simply-supported straight
// beam: support reactions in equilibrium with the applied loads, and the
// shear-force and bending-moment distribution obtained by superposition.
//
// Sign conventions: positive load magnitudes act upward; positions are
// measured from the left end of the beam.
package beam

import "fmt"

// PointLoad is a concentrated transverse force. Support reactions share this
// shape, so point loads and reactions run through the same superposition sums.
type PointLoad struct {
	Position  float64 // distance from left end
	Magnitude float64 // positive = upward
}

// Support marks a support position along the beam.
type Support struct {
	Position float64
}

// Model aggregates the beam geometry and loading for one analysis run. It is
// pure data, validated at construction and read-only afterwards. A Model may
// hold any number of supports; the reaction solver requires exactly two.
type Model struct {
	Length     float64
	PointLoads []PointLoad
	DistLoads  []*DistributedLoad
	Supports   []Support
}

// NewModel validates geometry and load placement and assembles a Model.
func NewModel(length float64, points []PointLoad, dists []*DistributedLoad, supports []Support) (*Model, error) {
	if length <= 0 {
		return nil, fmt.Errorf("invalid beam length: %.4g", length)
	}
	for _, p := range points {
		if p.Position < 0 || p.Position > length {
			return nil, fmt.Errorf("point load at x=%.4g outside beam [0, %.4g]", p.Position, length)
		}
	}
	for _, dl := range dists {
		if dl.Start < 0 || dl.End > length {
			return nil, &IntervalError{Start: dl.Start, End: dl.End, Length: length}
		}
	}
	for _, s := range supports {
		if s.Position < 0 || s.Position > length {
			return nil, fmt.Errorf("support at x=%.4g outside beam [0, %.4g]", s.Position, length)
		}
	}
	return &Model{
		Length:     length,
		PointLoads: points,
		DistLoads:  dists,
		Supports:   supports,
	}, nil
}
