package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Simply-supported beam reactions and internal forces",
	Long: `Analyze a simply-supported beam under point and distributed loads.

Subcommands:
  solve  - Solve support reactions and sample shear/moment diagrams
  query  - Evaluate shear force and bending moment at one position

Loads use a single consistent unit system; upward forces are positive.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
