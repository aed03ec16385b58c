package human

// newAllSolvedBoard returns a board where every cell is solved with 1, so a
// test can carve out exactly the handful of unsolved cells its scenario
// needs without constructing a full valid 81-cell grid.
func newAllSolvedBoard() *Board {
	b := &Board{}
	for i := 0; i < 81; i++ {
		b.Cells[i] = 1
	}
	return b
}

// unsolveCell marks idx unsolved with the given candidates.
func unsolveCell(b *Board, idx int, digits ...int) {
	b.Cells[idx] = 0
	b.Candidates[idx] = NewCandidates(digits)
}
