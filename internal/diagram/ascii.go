// Package diagram renders beam analysis results as terminal text: a loading
// schematic of the beam and asciigraph charts of the sampled shear and moment
// sequences. It consumes plain Diagrams data and never feeds back into the
// computation.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/Divo0/engineering-Program/internal/beam"
)

// Chart dimensions for the shear/moment plots.
const (
	chartWidth  = 64
	chartHeight = 12
)

// ShearChart plots the sampled shear sequence, annotated with its extrema.
func ShearChart(d *beam.Diagrams) string {
	return chart(d.Shear, "Shear Force", d.ShearMin, d.ShearMax)
}

// MomentChart plots the sampled bending-moment sequence, annotated with its
// extrema.
func MomentChart(d *beam.Diagrams) string {
	return chart(d.Moment, "Bending Moment", d.MomentMin, d.MomentMax)
}

func chart(vals []float64, caption string, min, max beam.Extremum) string {
	var sb strings.Builder
	sb.WriteString(asciigraph.Plot(vals,
		asciigraph.Width(chartWidth),
		asciigraph.Height(chartHeight),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Min: %.2f @ x = %.2f    Max: %.2f @ x = %.2f\n",
		min.Value, min.X, max.Value, max.X))
	return sb.String()
}

// DrawLoadingDiagram sketches the beam with its supports, point loads, and
// distributed-load spans. Reactions may be passed as extra point loads to
// show the solved configuration.
func DrawLoadingDiagram(m *beam.Model, reactions []beam.PointLoad) string {
	const width = 60

	col := func(x float64) int {
		c := int(x / m.Length * float64(width))
		if c < 0 {
			c = 0
		}
		if c > width {
			c = width
		}
		return c
	}

	// Rows above the beam line: distributed-load spans, then load arrows.
	distRow := blankRow(width)
	for _, dl := range m.DistLoads {
		a, b := col(dl.Start), col(dl.End)
		for i := a; i <= b; i++ {
			distRow[i] = '▒'
		}
	}

	arrowRow := blankRow(width)
	marks := append([]beam.PointLoad{}, m.PointLoads...)
	marks = append(marks, reactions...)
	for _, p := range marks {
		c := col(p.Position)
		if p.Magnitude >= 0 {
			arrowRow[c] = '↑'
		} else {
			arrowRow[c] = '↓'
		}
	}

	supportRow := blankRow(width)
	for _, s := range m.Supports {
		supportRow[col(s.Position)] = '^'
	}

	var sb strings.Builder
	if hasMark(distRow) {
		sb.WriteString("  " + string(distRow) + "\n")
	}
	if hasMark(arrowRow) {
		sb.WriteString("  " + string(arrowRow) + "\n")
	}
	sb.WriteString("  " + strings.Repeat("═", width+1) + "\n")
	sb.WriteString("  " + string(supportRow) + "\n")
	sb.WriteString(fmt.Sprintf("  0%*s\n", width, fmt.Sprintf("%.4g", m.Length)))
	return sb.String()
}

func blankRow(width int) []rune {
	row := make([]rune, width+1)
	for i := range row {
		row[i] = ' '
	}
	return row
}

func hasMark(row []rune) bool {
	for _, r := range row {
		if r != ' ' {
			return true
		}
	}
	return false
}
