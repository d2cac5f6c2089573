package beam

import (
	"math"

	"github.com/Divo0/engineering-Program/internal/quadrature"
)

// InternalForces evaluates the shear force and bending moment at position x
// by superposing the contributions of every point load, reaction, and
// distributed load to the left of (or at) the cut.
//
// A point load located exactly at x is included in the sums, so shear and
// moment are right-continuous across the step a point load introduces: the
// value at the load position already reflects the load's own contribution.
// Diagram samplers straddling the discontinuity rely on this.
//
// A distributed load contributes only once x has reached its start; the
// integration interval is clipped to [max(Start, 0), min(End, x)]. Integrals
// are recomputed on every call rather than cached or accumulated.
//
// InternalForces fails with RangeError when x lies outside [0, Length].
func InternalForces(x float64, m *Model, reactions []PointLoad) (shear, moment float64, err error) {
	if x < 0 || x > m.Length {
		return 0, 0, &RangeError{X: x, Length: m.Length}
	}

	sum := func(loads []PointLoad) {
		for _, p := range loads {
			if p.Position <= x {
				shear += p.Magnitude
				moment += p.Magnitude * (x - p.Position)
			}
		}
	}
	sum(m.PointLoads)
	sum(reactions)

	for _, dl := range m.DistLoads {
		if x < dl.Start {
			continue
		}
		a := math.Max(dl.Start, 0)
		b := math.Min(dl.End, x)
		if b <= a {
			continue
		}
		v, _ := quadrature.Integrate(dl.Intensity, a, b)
		shear += v
		v, _ = quadrature.Integrate(func(xi float64) float64 {
			return (x - xi) * dl.Intensity(xi)
		}, a, b)
		moment += v
	}

	return shear, moment, nil
}
