package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supportsAt(xs ...float64) []Support {
	s := make([]Support, len(xs))
	for i, x := range xs {
		s[i] = Support{Position: x}
	}
	return s
}

type distSpec struct {
	q    IntensityFunc
	a, b float64
}

func TestSolveReactions(t *testing.T) {
	udl10down := func(x float64) float64 { return -10 } // downward, force per unit length

	tests := []struct {
		name     string
		length   float64
		points   []PointLoad
		dist     []distSpec
		supports []Support
		wantR1   float64
		wantR2   float64
	}{
		{
			name:     "midspan point load splits evenly",
			length:   10,
			points:   []PointLoad{{Position: 5, Magnitude: -100}},
			supports: supportsAt(0, 10),
			wantR1:   50,
			wantR2:   50,
		},
		{
			name:   "uniform load over full span",
			length: 10,
			dist: []distSpec{
				{q: udl10down, a: 0, b: 10},
			},
			supports: supportsAt(0, 10),
			wantR1:   50,
			wantR2:   50,
		},
		{
			name:     "off-center point load",
			length:   6,
			points:   []PointLoad{{Position: 2, Magnitude: -60}},
			supports: supportsAt(0, 6),
			wantR1:   40,
			wantR2:   20,
		},
		{
			name:     "supports inset from the ends",
			length:   10,
			points:   []PointLoad{{Position: 5, Magnitude: -80}},
			supports: supportsAt(1, 9),
			wantR1:   40,
			wantR2:   40,
		},
		{
			name:     "supports given right-to-left",
			length:   6,
			points:   []PointLoad{{Position: 2, Magnitude: -60}},
			supports: supportsAt(6, 0),
			wantR1:   40,
			wantR2:   20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dists []*DistributedLoad
			for _, d := range tt.dist {
				dl, err := NewDistributedLoad(d.q, d.a, d.b, tt.length)
				require.NoError(t, err)
				dists = append(dists, dl)
			}
			m, err := NewModel(tt.length, tt.points, dists, tt.supports)
			require.NoError(t, err)

			reactions, err := SolveReactions(m)
			require.NoError(t, err)
			require.Len(t, reactions, 2)

			assert.InDelta(t, tt.wantR1, reactions[0].Magnitude, 1e-8)
			assert.InDelta(t, tt.wantR2, reactions[1].Magnitude, 1e-8)
			assert.LessOrEqual(t, reactions[0].Position, reactions[1].Position)
		})
	}
}

// Force and moment balance must hold for any determinate configuration, not
// just the hand-checked ones.
func TestSolveReactionsEquilibrium(t *testing.T) {
	dl, err := NewDistributedLoad(func(x float64) float64 { return 20 * (x - 2) * (x - 2) }, 1, 7, 12)
	require.NoError(t, err)

	m, err := NewModel(12,
		[]PointLoad{{Position: 3, Magnitude: -45}, {Position: 10, Magnitude: 17.5}},
		[]*DistributedLoad{dl},
		supportsAt(2, 11),
	)
	require.NoError(t, err)

	reactions, err := SolveReactions(m)
	require.NoError(t, err)

	var sumF, sumM float64
	x1 := reactions[0].Position
	for _, p := range append(append([]PointLoad{}, m.PointLoads...), reactions...) {
		sumF += p.Magnitude
		sumM += p.Magnitude * (p.Position - x1)
	}
	sumF += dl.TotalForce
	sumM += dl.TotalForce * (dl.Centroid - x1)

	assert.InDelta(t, 0, sumF, 1e-8)
	assert.InDelta(t, 0, sumM, 1e-8)
}

func TestSolveReactionsSupportErrors(t *testing.T) {
	tests := []struct {
		name     string
		supports []Support
	}{
		{name: "no supports", supports: nil},
		{name: "one support", supports: supportsAt(0)},
		{name: "three supports", supports: supportsAt(0, 5, 10)},
		{name: "coincident supports", supports: supportsAt(4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel(10, []PointLoad{{Position: 5, Magnitude: -10}}, nil, tt.supports)
			require.NoError(t, err)

			_, err = SolveReactions(m)
			var supErr *SupportError
			require.ErrorAs(t, err, &supErr)
		})
	}
}
