package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/kestrelsolve/humansolve/internal/evaluate"
	"github.com/kestrelsolve/humansolve/pkg/config"
)

func newEvaluateCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "evaluate FILE",
		Short: "Batch-solve a newline-separated file of Sudoku puzzles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			summary, err := evaluate.EvaluateFile(args[0], outDir, evaluate.Options{
				Workers:      cfg.EvaluateWorkers,
				MaxSteps:     cfg.MaxSolverSteps,
				ShowProgress: true,
			})
			if err != nil {
				return err
			}

			log.Printf("evaluate: tested=%d solved=%d unsolved=%d conflicting=%d",
				summary.Total, summary.Solved, summary.Unsolved, summary.Conflicting)

			fmt.Printf("Tested %d Sudoku puzzles\n", summary.Total)
			fmt.Printf("Solved %d or %.2f%%\n", summary.Solved, pct(summary.Solved, summary.Total))
			fmt.Printf("Did not solve %d or %.2f%%\n", summary.Unsolved, pct(summary.Unsolved, summary.Total))
			fmt.Printf("There were %d errors, or %.2f%%\n", summary.Conflicting, pct(summary.Conflicting, summary.Total))

			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "outDir", ".", "directory to write conflictPuzzles.txt/conflictTranscripts.txt into")

	return cmd
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
