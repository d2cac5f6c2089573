package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Divo0/engineering-Program/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beamcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beamcalc v%s\n", version.Version)
		fmt.Println("Simply-Supported Beam Statics Analyzer")
		fmt.Printf("  commit: %s\n", version.GitCommit)
		fmt.Printf("  built:  %s\n", version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
