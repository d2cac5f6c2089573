package beam

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistributedLoadClosedForms(t *testing.T) {
	tests := []struct {
		name         string
		intensity    IntensityFunc
		start, end   float64
		wantForce    float64
		wantCentroid float64
	}{
		{
			name:      "uniform load",
			intensity: func(x float64) float64 { return 10 },
			start:     0, end: 10,
			wantForce:    100,
			wantCentroid: 5,
		},
		{
			name:      "uniform load on sub-interval",
			intensity: func(x float64) float64 { return 4 },
			start:     2, end: 6,
			wantForce:    16,
			wantCentroid: 4,
		},
		{
			name:      "triangular load",
			intensity: func(x float64) float64 { return 50 * x },
			start:     0, end: 4,
			wantForce:    400,
			wantCentroid: 8.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dl, err := NewDistributedLoad(tt.intensity, tt.start, tt.end, 10)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantForce, dl.TotalForce, 1e-8)
			assert.InDelta(t, tt.wantCentroid, dl.Centroid, 1e-8)
		})
	}
}

func TestNewDistributedLoadInvalidInterval(t *testing.T) {
	q := func(x float64) float64 { return 1 }

	tests := []struct {
		name       string
		start, end float64
	}{
		{name: "start after end", start: 5, end: 2},
		{name: "start before beam", start: -1, end: 2},
		{name: "end past beam", start: 0, end: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDistributedLoad(q, tt.start, tt.end, 10)
			var intervalErr *IntervalError
			require.ErrorAs(t, err, &intervalErr)
		})
	}
}

func TestNewDistributedLoadDegenerate(t *testing.T) {
	// Antisymmetric about x=5: the resultant vanishes and no centroid exists.
	q := func(x float64) float64 { return x - 5 }

	_, err := NewDistributedLoad(q, 0, 10, 10)
	var degErr *DegenerateLoadError
	require.ErrorAs(t, err, &degErr)
	assert.Equal(t, 0.0, degErr.Start)
	assert.Equal(t, 10.0, degErr.End)
}

func TestNewDistributedLoadNonFiniteIntensity(t *testing.T) {
	q := func(x float64) float64 { return math.Sqrt(x - 5) } // NaN on [0, 1]

	_, err := NewDistributedLoad(q, 0, 1, 10)
	require.Error(t, err)
	var degErr *DegenerateLoadError
	assert.False(t, errors.As(err, &degErr))
}
