package beam

import (
	"fmt"
	"math"

	"github.com/Divo0/engineering-Program/internal/quadrature"
)

// IntensityFunc is a load intensity q(x), force per unit length. It must be
// well-defined everywhere on the load's interval.
type IntensityFunc func(x float64) float64

// degenerateTol is the resultant magnitude below which a distributed load is
// considered to have zero net force, leaving its centroid undefined.
const degenerateTol = 1e-12

// DistributedLoad is a continuously varying load applied over [Start, End].
// TotalForce and Centroid are derived once at construction by adaptive
// quadrature; the single equivalent point force TotalForce acting at Centroid
// produces the same moment about any reference point.
type DistributedLoad struct {
	Intensity  IntensityFunc
	Start      float64
	End        float64
	TotalForce float64
	Centroid   float64
}

// NewDistributedLoad integrates the intensity over [start, end] on a beam of
// the given length. It fails with IntervalError for malformed bounds and with
// DegenerateLoadError when the resultant force is numerically zero.
func NewDistributedLoad(intensity IntensityFunc, start, end, length float64) (*DistributedLoad, error) {
	if start > end || start < 0 || end > length {
		return nil, &IntervalError{Start: start, End: end, Length: length}
	}

	total, _ := quadrature.Integrate(intensity, start, end)
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("distributed load over [%.4g, %.4g]: intensity is not finite on the interval", start, end)
	}
	if math.Abs(total) <= degenerateTol {
		return nil, &DegenerateLoadError{Start: start, End: end}
	}

	firstMoment, _ := quadrature.Integrate(func(x float64) float64 {
		return x * intensity(x)
	}, start, end)

	return &DistributedLoad{
		Intensity:  intensity,
		Start:      start,
		End:        end,
		TotalForce: total,
		Centroid:   firstMoment / total,
	}, nil
}
