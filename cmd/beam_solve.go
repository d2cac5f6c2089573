package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Divo0/engineering-Program/internal/beam"
	"github.com/Divo0/engineering-Program/internal/diagram"
)

var (
	// Solve inputs
	solveLength   float64
	solveSupports []float64
	solvePoints   []string
	solveDists    []string

	// Options
	solveSamples int
	solveASCII   bool
	solveAt      float64
)

var beamSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve support reactions and sample shear/moment diagrams",
	Long: `Solve the support reactions of a simply-supported beam from static
equilibrium, then sample the shear force and bending moment along the span.

Point loads are given as position:magnitude (upward positive). Distributed
loads are given as expr@start:end, where expr is an intensity expression in x
using arithmetic, exponentiation, and basic math functions.

Exactly two support positions are required for a determinate solution; they
default to the beam ends.

Examples:
  # Midspan point load of 100 acting downward on a 10 m beam
  beamcalc beam solve --length 10 --point 5:-100

  # Uniform load of 10 per metre over the whole span, with ASCII diagrams
  beamcalc beam solve --length 10 --dist "10@0:10" --ascii

  # Triangular load plus a point load, supports inset from the ends
  beamcalc beam solve --length 12 --supports 1,11 --dist "50*x@0:4" --point 8:-60`,
	RunE: runBeamSolve,
}

func init() {
	beamCmd.AddCommand(beamSolveCmd)

	// Geometry flags
	beamSolveCmd.Flags().Float64VarP(&solveLength, "length", "L", 0, "Beam length [required]")
	beamSolveCmd.Flags().Float64SliceVarP(&solveSupports, "supports", "s", nil, "Two support positions (default: beam ends)")

	// Load flags
	beamSolveCmd.Flags().StringArrayVarP(&solvePoints, "point", "p", nil, "Point load as position:magnitude (repeatable)")
	beamSolveCmd.Flags().StringArrayVarP(&solveDists, "dist", "d", nil, "Distributed load as expr@start:end (repeatable)")

	// Options
	beamSolveCmd.Flags().IntVarP(&solveSamples, "samples", "n", beam.DefaultSamples, "Number of diagram samples")
	beamSolveCmd.Flags().BoolVar(&solveASCII, "ascii", false, "Draw ASCII shear/moment diagrams")
	beamSolveCmd.Flags().Float64Var(&solveAt, "at", 0, "Also report internal forces at this position")

	beamSolveCmd.MarkFlagRequired("length")
}

func runBeamSolve(cmd *cobra.Command, args []string) error {
	supports := solveSupports
	if len(supports) == 0 {
		supports = []float64{0, solveLength}
	}

	m, dists, err := buildModel(solveLength, solvePoints, solveDists, supports)
	if err != nil {
		return err
	}

	reactions, err := beam.SolveReactions(m)
	if err != nil {
		return err
	}

	d, err := beam.SampleDiagrams(m, reactions, solveSamples)
	if err != nil {
		return err
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SIMPLY-SUPPORTED BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Length (L):\t%.4g\n", m.Length)
	fmt.Fprintf(w, "  Supports:\t%.4g, %.4g\n", reactions[0].Position, reactions[1].Position)
	for i, p := range m.PointLoads {
		fmt.Fprintf(w, "  Point Load %d:\t%.4g @ x = %.4g\n", i+1, p.Magnitude, p.Position)
	}
	for i, dl := range dists {
		fmt.Fprintf(w, "  Distributed Load %d:\tq(x) = %s over [%.4g, %.4g]\n", i+1, dl.expr, dl.load.Start, dl.load.End)
		fmt.Fprintf(w, "  \tTotal: %.4f, Centroid: %.4f\n", dl.load.TotalForce, dl.load.Centroid)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("BEAM SCHEMATIC:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawLoadingDiagram(m, reactions))
	fmt.Println()

	fmt.Println("REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  R₁ = %.4f @ x = %.4g\n", reactions[0].Magnitude, reactions[0].Position)
	fmt.Printf("  ║  R₂ = %.4f @ x = %.4g\n", reactions[1].Magnitude, reactions[1].Position)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	fmt.Println("DIAGRAM EXTREMA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shear Min:\t%.4f\t@ x = %.4f\n", d.ShearMin.Value, d.ShearMin.X)
	fmt.Fprintf(w, "  Shear Max:\t%.4f\t@ x = %.4f\n", d.ShearMax.Value, d.ShearMax.X)
	fmt.Fprintf(w, "  Moment Min:\t%.4f\t@ x = %.4f\n", d.MomentMin.Value, d.MomentMin.X)
	fmt.Fprintf(w, "  Moment Max:\t%.4f\t@ x = %.4f\n", d.MomentMax.Value, d.MomentMax.X)
	w.Flush()
	fmt.Println()

	if solveASCII {
		fmt.Println("SHEAR FORCE DIAGRAM:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(diagram.ShearChart(d))
		fmt.Println("BENDING MOMENT DIAGRAM:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(diagram.MomentChart(d))
	}

	if cmd.Flags().Changed("at") {
		shear, moment, err := beam.InternalForces(solveAt, m, reactions)
		if err != nil {
			return err
		}
		fmt.Println("INTERNAL FORCES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Printf("  At x = %.4f:\n", solveAt)
		fmt.Printf("    Shear Force    = %.4f\n", shear)
		fmt.Printf("    Bending Moment = %.4f\n", moment)
		fmt.Println()
	}

	return nil
}
