package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Divo0/engineering-Program/internal/beam"
)

var (
	// Query inputs
	queryLength   float64
	querySupports []float64
	queryPoints   []string
	queryDists    []string
	queryAt       float64
)

var beamQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Evaluate internal forces at one position",
	Long: `Solve the support reactions, then evaluate the shear force and bending
moment at a single position along the beam.

The position must lie within [0, L]. A point load located exactly at the
queried position is included in the result (right-continuous convention).

Examples:
  # Internal forces just left of midspan
  beamcalc beam query --length 6 --point 2:-60 --at 2.999

  # Under a triangular load
  beamcalc beam query --length 10 --dist "50*x@0:4" --at 3`,
	RunE: runBeamQuery,
}

func init() {
	beamCmd.AddCommand(beamQueryCmd)

	beamQueryCmd.Flags().Float64VarP(&queryLength, "length", "L", 0, "Beam length [required]")
	beamQueryCmd.Flags().Float64SliceVarP(&querySupports, "supports", "s", nil, "Two support positions (default: beam ends)")
	beamQueryCmd.Flags().StringArrayVarP(&queryPoints, "point", "p", nil, "Point load as position:magnitude (repeatable)")
	beamQueryCmd.Flags().StringArrayVarP(&queryDists, "dist", "d", nil, "Distributed load as expr@start:end (repeatable)")
	beamQueryCmd.Flags().Float64Var(&queryAt, "at", 0, "Query position [required]")

	beamQueryCmd.MarkFlagRequired("length")
	beamQueryCmd.MarkFlagRequired("at")
}

func runBeamQuery(cmd *cobra.Command, args []string) error {
	supports := querySupports
	if len(supports) == 0 {
		supports = []float64{0, queryLength}
	}

	m, _, err := buildModel(queryLength, queryPoints, queryDists, supports)
	if err != nil {
		return err
	}

	reactions, err := beam.SolveReactions(m)
	if err != nil {
		return err
	}

	shear, moment, err := beam.InternalForces(queryAt, m, reactions)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("INTERNAL FORCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Position:\t%.4f\n", queryAt)
	fmt.Fprintf(w, "  Shear Force:\t%.4f\n", shear)
	fmt.Fprintf(w, "  Bending Moment:\t%.4f\n", moment)
	fmt.Fprintf(w, "  R₁:\t%.4f @ x = %.4g\n", reactions[0].Magnitude, reactions[0].Position)
	fmt.Fprintf(w, "  R₂:\t%.4f @ x = %.4g\n", reactions[1].Magnitude, reactions[1].Position)
	w.Flush()
	fmt.Println()

	return nil
}
