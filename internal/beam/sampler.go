package beam

// DefaultSamples is the diagram grid resolution when none is requested.
const DefaultSamples = 1000

// Extremum locates a minimum or maximum in a sampled sequence.
type Extremum struct {
	Index int
	X     float64
	Value float64
}

// Diagrams holds shear and moment sequences sampled on a uniform grid over
// [0, Length], with their extrema. The slices are plain data for a downstream
// renderer; the sampler has no side effects beyond computing them.
type Diagrams struct {
	X      []float64
	Shear  []float64
	Moment []float64

	ShearMin  Extremum
	ShearMax  Extremum
	MomentMin Extremum
	MomentMax Extremum
}

// SampleDiagrams evaluates the internal forces at n positions uniformly
// spaced over [0, Length] inclusive. Values of n below 2 fall back to
// DefaultSamples. All samples are computed before the result is returned.
func SampleDiagrams(m *Model, reactions []PointLoad, n int) (*Diagrams, error) {
	if n < 2 {
		n = DefaultSamples
	}

	d := &Diagrams{
		X:      make([]float64, n),
		Shear:  make([]float64, n),
		Moment: make([]float64, n),
	}

	step := m.Length / float64(n-1)
	for i := 0; i < n; i++ {
		x := float64(i) * step
		if i == n-1 {
			x = m.Length // avoid drifting past the end by rounding
		}
		shear, moment, err := InternalForces(x, m, reactions)
		if err != nil {
			return nil, err
		}
		d.X[i] = x
		d.Shear[i] = shear
		d.Moment[i] = moment
	}

	d.ShearMin, d.ShearMax = extrema(d.X, d.Shear)
	d.MomentMin, d.MomentMax = extrema(d.X, d.Moment)
	return d, nil
}

func extrema(xs, vals []float64) (min, max Extremum) {
	min = Extremum{Index: 0, X: xs[0], Value: vals[0]}
	max = min
	for i, v := range vals {
		if v < min.Value {
			min = Extremum{Index: i, X: xs[i], Value: v}
		}
		if v > max.Value {
			max = Extremum{Index: i, X: xs[i], Value: v}
		}
	}
	return min, max
}
