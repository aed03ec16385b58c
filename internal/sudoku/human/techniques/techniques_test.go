package techniques

import "github.com/kestrelsolve/humansolve/internal/core"

// fakeBoard is a minimal hand-driven BoardInterface for testing individual
// detectors in isolation, without constructing a full solvable 81-cell
// puzzle. Cells default to solved-with-1 (so they're ignored by detectors
// that only examine unsolved cells); tests set exactly the cells and
// candidates their scenario needs.
type fakeBoard struct {
	cells [81]int
	cands [81]Candidates
}

// newFakeBoard returns a board where every cell is solved (value 1), so a
// test only needs to carve out the handful of unsolved cells its scenario
// requires.
func newFakeBoard() *fakeBoard {
	fb := &fakeBoard{}
	for i := range fb.cells {
		fb.cells[i] = 1
	}
	return fb
}

// unsolve marks idx unsolved with the given candidates.
func (fb *fakeBoard) unsolve(idx int, digits ...int) {
	fb.cells[idx] = 0
	fb.cands[idx] = NewCandidates(digits)
}

func (fb *fakeBoard) GetCell(idx int) int                { return fb.cells[idx] }
func (fb *fakeBoard) GetCandidatesAt(idx int) Candidates { return fb.cands[idx] }

func (fb *fakeBoard) CellsWithDigitInUnit(unit Unit, digit int) []int {
	var out []int
	for _, c := range unit.Cells {
		if fb.cands[c].Has(digit) {
			out = append(out, c)
		}
	}
	return out
}

func (fb *fakeBoard) CloneBoard() BoardInterface {
	clone := *fb
	return &clone
}

func (fb *fakeBoard) SetCell(idx, digit int) {
	fb.cells[idx] = digit
	fb.cands[idx] = 0
}

func (fb *fakeBoard) RemoveCandidate(idx, digit int) bool {
	if !fb.cands[idx].Has(digit) {
		return false
	}
	fb.cands[idx] = fb.cands[idx].Clear(digit)
	return true
}

// hasElimination reports whether core.Candidate elims contains an entry at
// (row, col) for digit.
func hasElimination(elims []core.Candidate, row, col, digit int) bool {
	for _, e := range elims {
		if e.Row == row && e.Col == col && e.Digit == digit {
			return true
		}
	}
	return false
}
