// Command sudokuar exposes the solver core on the command line: solving
// puzzles from text, detecting grids in still images, and training the
// digit classifier.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "sudokuar",
	Short:         "Augmented-reality Sudoku solver core",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
