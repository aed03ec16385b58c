// Package evaluate implements the batch puzzle evaluator behind
// `humansolve evaluate`: it drives many independent puzzles through the
// engine concurrently and reports aggregate solved/unsolved/conflicting
// counts.
//
// Each puzzle owns an independent Board/Solver pair with zero shared
// mutable state, so a bounded worker pool drives many of them at once.
package evaluate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/kestrelsolve/humansolve/internal/puzzleio"
	"github.com/kestrelsolve/humansolve/internal/sudoku/human"
	"github.com/kestrelsolve/humansolve/internal/transcript"
)

// Options configures a batch run.
type Options struct {
	Workers      int // goroutines in the pool; <=0 picks runtime.NumCPU()
	MaxSteps     int // per-puzzle step cap passed to Solver.Solve
	ShowProgress bool
}

// Summary aggregates the outcome of a batch run.
type Summary struct {
	Total               int
	Solved              int
	Unsolved            int
	Conflicting         int
	ConflictPuzzles     []string // original puzzle strings that conflicted
	ConflictTranscripts []string // one rendered transcript per conflict, same order
}

type puzzleResult struct {
	index      int
	puzzle     string
	state      human.State
	transcript string
}

// EvaluateLines runs every entry of puzzles through the engine concurrently
// (blank entries are not skipped here; EvaluateFile drops blank lines) and returns the aggregate summary. Order of ConflictPuzzles/
// ConflictTranscripts follows input order, not completion order.
func EvaluateLines(puzzles []string, opts Options) (Summary, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 500
	}

	jobs := make(chan int)
	results := make([]puzzleResult, len(puzzles))

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.Default(int64(len(puzzles)), "Evaluating")
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = evaluateOne(idx, puzzles[idx], maxSteps)
				if bar != nil {
					_ = bar.Add(1)
				}
			}
		}()
	}

	for i := range puzzles {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var summary Summary
	summary.Total = len(puzzles)
	for _, r := range results {
		switch r.state {
		case human.Solved:
			summary.Solved++
		case human.Conflicting:
			summary.Conflicting++
			summary.ConflictPuzzles = append(summary.ConflictPuzzles, r.puzzle)
			summary.ConflictTranscripts = append(summary.ConflictTranscripts, r.transcript)
		default:
			summary.Unsolved++
		}
	}
	return summary, nil
}

func evaluateOne(index int, puzzleString string, maxSteps int) puzzleResult {
	givens, err := puzzleio.ParseGivens(puzzleString)
	if err != nil {
		// An unparseable line is reported as conflicting so it surfaces in
		// the conflict files rather than silently skewing the unsolved count.
		return puzzleResult{index: index, puzzle: puzzleString, state: human.Conflicting, transcript: err.Error()}
	}

	board := human.NewBoard(givens)
	solver := human.NewSolver()
	steps, state := solver.Solve(board, maxSteps)

	result := puzzleResult{index: index, puzzle: puzzleString, state: state}
	if state == human.Conflicting {
		original := human.NewBoard(givens)
		result.transcript = transcript.Build(original, steps, board, state)
	}
	return result
}

// EvaluateFile reads a newline-separated puzzle-string file, runs
// EvaluateLines over it, and writes conflictPuzzles.txt/
// conflictTranscripts.txt into outDir.
func EvaluateFile(path, outDir string, opts Options) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("evaluate: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 256), 1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return Summary{}, fmt.Errorf("evaluate: %w", err)
	}

	summary, err := EvaluateLines(lines, opts)
	if err != nil {
		return summary, err
	}

	if err := writeConflictFiles(outDir, summary); err != nil {
		return summary, err
	}
	return summary, nil
}

func writeConflictFiles(outDir string, summary Summary) error {
	if outDir == "" {
		outDir = "."
	}
	puzzlesPath := outDir + "/conflictPuzzles.txt"
	transcriptsPath := outDir + "/conflictTranscripts.txt"

	if err := os.WriteFile(puzzlesPath, []byte(strings.Join(summary.ConflictPuzzles, "\n")), 0o644); err != nil {
		return fmt.Errorf("evaluate: writing %s: %w", puzzlesPath, err)
	}

	var sb strings.Builder
	for _, t := range summary.ConflictTranscripts {
		sb.WriteString(t)
		sb.WriteString(strings.Repeat("\n", 10))
	}
	if err := os.WriteFile(transcriptsPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("evaluate: writing %s: %w", transcriptsPath, err)
	}
	return nil
}
