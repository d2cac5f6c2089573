package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{
			name: "constant",
			f:    func(x float64) float64 { return 10 },
			a:    0, b: 10,
			want: 100,
		},
		{
			name: "linear",
			f:    func(x float64) float64 { return 50 * x },
			a:    0, b: 4,
			want: 400,
		},
		{
			name: "quadratic",
			f:    func(x float64) float64 { return 20 * (x - 2) * (x - 2) },
			a:    0, b: 4,
			want: 20 * 16 / 3.0,
		},
		{
			name: "sine over full period",
			f:    math.Sin,
			a:    0, b: 2 * math.Pi,
			want: 0,
		},
		{
			name: "exp",
			f:    math.Exp,
			a:    0, b: 1,
			want: math.E - 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errEst := Integrate(tt.f, tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 1e-8)
			assert.Less(t, errEst, 1e-6)
		})
	}
}

func TestIntegrateZeroWidth(t *testing.T) {
	got, errEst := Integrate(math.Exp, 3, 3)
	assert.Zero(t, got)
	assert.Zero(t, errEst)
}

func TestIntegrateReversedBounds(t *testing.T) {
	fwd, _ := Integrate(math.Exp, 0, 1)
	rev, _ := Integrate(math.Exp, 1, 0)
	assert.InDelta(t, -fwd, rev, 1e-12)
}

func TestIntegrateRefinesSharpFeature(t *testing.T) {
	// A narrow Gaussian forces subdivision; a single fixed rule over [0, 100]
	// would miss most of the mass.
	f := func(x float64) float64 { return math.Exp(-(x - 50) * (x - 50) * 100) }
	got, _ := Integrate(f, 0, 100)
	want := math.Sqrt(math.Pi / 100) // ∫ exp(-100 t²) dt over the real line
	assert.InDelta(t, want, got, 1e-8)
}

func TestIntegrateNonFiniteIntegrand(t *testing.T) {
	f := func(x float64) float64 { return math.NaN() }
	got, errEst := Integrate(f, 0, 1)
	assert.True(t, math.IsNaN(got))
	assert.True(t, math.IsInf(errEst, 1))
}
