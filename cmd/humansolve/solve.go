package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelsolve/humansolve/internal/puzzleio"
	"github.com/kestrelsolve/humansolve/internal/sudoku/human"
	"github.com/kestrelsolve/humansolve/internal/transcript"
	"github.com/kestrelsolve/humansolve/pkg/config"
)

func newSolveCmd() *cobra.Command {
	var (
		inputFile       string
		sudokuString    string
		outputFile      string
		transcriptFile  string
		printTranscript bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single Sudoku puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputFile == "" && sudokuString == "" {
				return fmt.Errorf("provide either --input or --sudokuString to supply the puzzle")
			}

			raw := sudokuString
			if inputFile != "" {
				data, err := os.ReadFile(inputFile)
				if err != nil {
					return fmt.Errorf("reading %s: %w", inputFile, err)
				}
				raw = string(data)
			}

			givens, err := puzzleio.ParseGivens(raw)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			original := human.NewBoard(givens)
			board := human.NewBoard(givens)
			solver := human.NewSolver()

			steps, state := solver.Solve(board, cfg.MaxSolverSteps)
			log.Printf("solve: state=%s steps=%d", state, len(steps))

			finalOriginal := make([]bool, 81)
			copy(finalOriginal, board.Original[:])
			fmt.Println(puzzleio.RenderSideBySide(original.GetCells(), board.GetCells(), finalOriginal, capitalize(state.String())))

			if outputFile != "" {
				flat := puzzleio.RenderFlat(board.GetCells(), cfg.BlankChar, false)
				if err := os.WriteFile(outputFile, []byte(flat), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", outputFile, err)
				}
			}

			text := transcript.Build(original, steps, board, state)
			if transcriptFile != "" {
				if err := os.WriteFile(transcriptFile, []byte(text), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", transcriptFile, err)
				}
			}
			if printTranscript {
				fmt.Println(text)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input Sudoku file")
	cmd.Flags().StringVarP(&sudokuString, "sudokuString", "s", "", "sudoku string passed on the command line")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output Sudoku file")
	cmd.Flags().StringVar(&transcriptFile, "transcriptFile", "", "output file to save the solver transcript")
	cmd.Flags().BoolVar(&printTranscript, "printTranscript", false, "print the solver transcript")

	return cmd
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
