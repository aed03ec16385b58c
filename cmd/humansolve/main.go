// Command humansolve is the CLI entrypoint for the human-style Sudoku
// solver: a Cobra command tree rooted here, with `solve`, `evaluate`, and
// `serve` subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "humansolve",
		Short: "A human-style Sudoku solver",
		Long: "humansolve applies the same named logical techniques a human solver would use\n" +
			"(from sudokuwiki.org) to solve standard 9x9 Sudoku puzzles, producing an\n" +
			"auditable transcript of each inference step.",
	}

	root.AddCommand(newSolveCmd())
	root.AddCommand(newEvaluateCmd())
	root.AddCommand(newServeCmd())

	return root
}
