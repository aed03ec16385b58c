package transcript

import (
	"strings"
	"testing"

	"github.com/kestrelsolve/humansolve/internal/sudoku/human"
)

func puzzleGivens(s string) []int {
	givens := make([]int, 81)
	for i, c := range s {
		if c != '.' && c != '0' {
			givens[i] = int(c - '0')
		}
	}
	return givens
}

func TestBuild_TrivialPuzzle(t *testing.T) {
	input := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	givens := puzzleGivens(input)

	original := human.NewBoard(givens)
	board := human.NewBoard(givens)
	solver := human.NewSolver()
	steps, state := solver.Solve(board, 500)

	if state != human.Solved {
		t.Fatalf("expected puzzle to solve, got %v", state)
	}
	if len(steps) == 0 {
		t.Fatal("expected at least one solving step to transcribe")
	}

	text := Build(original, steps, board, state)

	if !strings.Contains(text, "Step 0:") {
		t.Error("expected transcript to contain a Step 0 header")
	}
	if !strings.Contains(text, "Original Puzzle: ") {
		t.Error("expected transcript to contain the original puzzle line")
	}
	if !strings.Contains(text, "Solved Puzzle:") {
		t.Error("expected transcript to report the puzzle as solved")
	}
	if !strings.Contains(text, "Technique cells:") {
		t.Error("expected each step to list technique cells")
	}
}

func TestBuild_ConflictingPuzzle(t *testing.T) {
	givens := make([]int, 81)
	givens[0] = 5
	givens[1] = 5 // duplicate in row A

	original := human.NewBoard(givens)
	board := human.NewBoard(givens)
	solver := human.NewSolver()
	_, state := solver.Solve(board, 10)

	if state != human.Conflicting {
		t.Fatalf("expected a conflict, got %v", state)
	}

	text := Build(original, nil, board, state)
	if !strings.Contains(text, "Conflicting Puzzle:") {
		t.Error("expected transcript to report the puzzle as conflicting")
	}
}
