package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sudokuar/sudoku"
)

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle-file]",
	Short: "Solve a puzzle from a text file or stdin",
	Long: `Reads 81 cells of plain text ('.' or '0' for blanks, decorations
ignored) and prints the solved board.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		game, err := sudoku.ParsePuzzle(in)
		if err != nil {
			return err
		}
		if !sudoku.Solvable(game) {
			return fmt.Errorf("puzzle has conflicting digits")
		}
		if !sudoku.Solve(&game) {
			return fmt.Errorf("puzzle has no solution")
		}

		fmt.Fprint(cmd.OutOrStdout(), game.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
