package beam

// SolveReactions computes the two support reactions of a statically
// determinate beam from force and moment equilibrium:
//
//	R1 + R2 + ΣF_point + ΣF_dist = 0
//	R2·(x2−x1) + ΣF_point·(x−x1) + ΣF_dist·(centroid−x1) = 0
//
// The 2×2 system solves in closed form: R2 = −ΣM(about x1)/(x2−x1),
// R1 = −ΣF − R2. Reactions are returned as point loads, ordered left support
// first, and are owned by the caller; the model is not modified.
//
// SolveReactions fails with SupportError unless the model has exactly two
// supports at distinct positions.
func SolveReactions(m *Model) ([]PointLoad, error) {
	if len(m.Supports) != 2 {
		return nil, &SupportError{Count: len(m.Supports)}
	}
	x1, x2 := m.Supports[0].Position, m.Supports[1].Position
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 == x2 {
		return nil, &SupportError{Count: 2, X1: x1, X2: x2}
	}

	var sumF, sumM float64
	for _, p := range m.PointLoads {
		sumF += p.Magnitude
		sumM += p.Magnitude * (p.Position - x1)
	}
	for _, dl := range m.DistLoads {
		sumF += dl.TotalForce
		sumM += dl.TotalForce * (dl.Centroid - x1)
	}

	r2 := -sumM / (x2 - x1)
	r1 := -sumF - r2

	return []PointLoad{
		{Position: x1, Magnitude: r1},
		{Position: x2, Magnitude: r2},
	}, nil
}
