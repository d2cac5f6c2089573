package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Divo0/engineering-Program/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "beamcalc",
	Short: "Simply-Supported Beam Statics Analyzer",
	Long: `beamcalc - Simply-Supported Beam Statics Analyzer

A CLI tool for the static analysis of simply-supported beams
under point and continuously-varying distributed loads.

This tool helps engineers compute:
  - Support reactions from force and moment equilibrium
  - Shear force and bending moment distributions
  - Internal forces at any position along the beam
  - Diagram extrema for design checks

Distributed loads accept arbitrary intensity expressions in x,
e.g. '100', '50*x', '20*(x-2)**2'.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   beamcalc v%-46s║\n", version.Version)
		fmt.Println("  ║   Simply-Supported Beam Statics Analyzer                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the static analysis of simply-supported beams.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Support reactions for statically determinate beams")
		fmt.Println("    • Arbitrary distributed-load intensity expressions")
		fmt.Println("    • Shear and moment diagrams with extrema")
		fmt.Println("    • Internal-force queries at any position")
		fmt.Println()
		fmt.Println("  Use 'beamcalc --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
