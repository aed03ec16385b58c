package human

import "fmt"

// Board is the full state of a Sudoku puzzle: the 81 cells, their candidate
// bitmasks, and the bookkeeping the technique set needs (which candidates
// were given versus eliminated, which cells are in conflict, and the
// per-step elimination trace). Groups and peers are derived from cell
// indices alone (see grid.go) and are not stored on the board itself.
type Board struct {
	Cells      [81]int        // 0 = unsolved, 1-9 = solved value
	Candidates [81]Candidates // candidate bitmask per cell; {value} once solved

	Original    [81]bool // true for cells given by the original puzzle
	Conflicting [81]bool // set by DetectConflicts

	// StepEliminated tracks which candidates this step's technique removed
	// from each cell. Cleared at the start of every SolveNextStep call.
	StepEliminated [81]Candidates

	singlesChains map[int][]*SinglesChain // keyed by digit, rebuilt lazily
	superChains   []*SuperChain           // rebuilt lazily
	chainsValid   bool
}

// NewBoard builds a board from 81 givens (0 for blank) and computes initial
// candidates for every unsolved cell.
func NewBoard(givens []int) *Board {
	b := &Board{}
	for i := 0; i < 81; i++ {
		b.Cells[i] = givens[i]
		if givens[i] != 0 {
			b.Original[i] = true
		}
	}
	b.InitCandidates()
	return b
}

// InitCandidates populates candidates for every unsolved cell from scratch,
// based only on the digits currently placed on the board.
func (b *Board) InitCandidates() {
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 {
			var cands Candidates
			for d := 1; d <= 9; d++ {
				if b.canPlace(i, d) {
					cands = cands.Set(d)
				}
			}
			b.Candidates[i] = cands
		} else {
			b.Candidates[i] = NewCandidates([]int{b.Cells[i]})
		}
	}
}

func (b *Board) canPlace(idx, digit int) bool {
	row, col := idx/9, idx%9
	for c := 0; c < 9; c++ {
		if b.Cells[row*9+c] == digit {
			return false
		}
	}
	for r := 0; r < 9; r++ {
		if b.Cells[r*9+col] == digit {
			return false
		}
	}
	boxRow, boxCol := (row/3)*3, (col/3)*3
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			if b.Cells[r*9+c] == digit {
				return false
			}
		}
	}
	return true
}

// ----------------------------------------------------------------------------
// Board mutation primitives
// ----------------------------------------------------------------------------

// EliminateCandidate removes d from cell's candidate set if present, and
// records the removal in StepEliminated. No-op (returns false) if d was
// already absent. Panics if the cell is solved with value d -- eliminating
// a cell's own solved value is a programming-contract violation, not a
// puzzle-level event.
func (b *Board) EliminateCandidate(cell, d int) bool {
	if b.Cells[cell] == d {
		panic(fmt.Sprintf("EliminateCandidate: cell %d is solved with %d, cannot eliminate its own value", cell, d))
	}
	if !b.Candidates[cell].Has(d) {
		return false
	}
	b.Candidates[cell] = b.Candidates[cell].Clear(d)
	b.StepEliminated[cell] = b.StepEliminated[cell].Set(d)
	return true
}

// EliminateCandidates folds EliminateCandidate over every digit in S.
func (b *Board) EliminateCandidates(cell int, s Candidates) bool {
	changed := false
	for _, d := range s.ToSlice() {
		if b.EliminateCandidate(cell, d) {
			changed = true
		}
	}
	return changed
}

// SetValue solves a cell to d. If the cell is already solved with a
// different value, this is a fatal contradiction (a programmer error, not a
// recoverable puzzle conflict) and panics; re-solving to the same value is a
// no-op. original marks the value as a puzzle given rather than a deduction.
func (b *Board) SetValue(cell, d int, original bool) {
	if d < 1 || d > 9 {
		panic(fmt.Sprintf("SetValue: digit %d out of range for cell %d", d, cell))
	}
	if b.Cells[cell] != 0 {
		if b.Cells[cell] == d {
			return
		}
		panic(fmt.Sprintf("SetValue: cell %d already solved with %d, cannot resolve to %d", cell, b.Cells[cell], d))
	}
	b.Cells[cell] = d
	b.Candidates[cell] = NewCandidates([]int{d})
	b.Original[cell] = original
}

// ----------------------------------------------------------------------------
// Sudoku-rule propagator and conflict detector
// ----------------------------------------------------------------------------

// ApplySudokuRules eliminates every solved cell's value from its peers'
// candidates. Returns true iff any candidate was removed. Idempotent: a
// second consecutive call makes no change.
func (b *Board) ApplySudokuRules() bool {
	changed := false
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 {
			continue
		}
		d := b.Cells[i]
		for _, p := range Peers[i] {
			if b.Cells[p] == 0 && b.Candidates[p].Has(d) {
				b.Candidates[p] = b.Candidates[p].Clear(d)
				b.StepEliminated[p] = b.StepEliminated[p].Set(d)
				changed = true
			}
		}
	}
	return changed
}

// DetectConflicts reports whether the board is in contradiction: two cells
// solved with the same value in a shared group, or any cell with zero
// candidates. Offending cells have their Conflicting flag set; the flag is
// recomputed from scratch on every call.
func (b *Board) DetectConflicts() bool {
	for i := range b.Conflicting {
		b.Conflicting[i] = false
	}
	conflict := false

	for _, unit := range AllUnits() {
		seen := make(map[int]int) // digit -> first cell index seen
		for _, idx := range unit.Cells {
			d := b.Cells[idx]
			if d == 0 {
				continue
			}
			if prior, ok := seen[d]; ok {
				b.Conflicting[idx] = true
				b.Conflicting[prior] = true
				conflict = true
			} else {
				seen[d] = idx
			}
		}
	}

	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 && b.Candidates[i].IsEmpty() {
			b.Conflicting[i] = true
			conflict = true
		}
	}

	return conflict
}

// ----------------------------------------------------------------------------
// Board state queries
// ----------------------------------------------------------------------------

// IsSolved returns true if every cell is filled and no group holds a
// duplicate.
func (b *Board) IsSolved() bool {
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 {
			return false
		}
	}
	return b.IsValid()
}

// IsValid checks the board has no duplicate solved digit within any group.
func (b *Board) IsValid() bool {
	for _, unit := range AllUnits() {
		seen := make(map[int]bool)
		for _, idx := range unit.Cells {
			d := b.Cells[idx]
			if d == 0 {
				continue
			}
			if seen[d] {
				return false
			}
			seen[d] = true
		}
	}
	return true
}

// ----------------------------------------------------------------------------
// Step bookkeeping
// ----------------------------------------------------------------------------

// ClearStepEliminated resets the per-step elimination trace and invalidates
// the chain caches. Called at the start of every SolveNextStep.
func (b *Board) ClearStepEliminated() {
	for i := range b.StepEliminated {
		b.StepEliminated[i] = 0
	}
	b.InvalidateChainCaches()
}

// InvalidateChainCaches drops any cached singles/super chains. Chain data is
// a transient per-step artifact; holding a reference across a step boundary
// is undefined.
func (b *Board) InvalidateChainCaches() {
	b.singlesChains = nil
	b.superChains = nil
	b.chainsValid = false
}

// ----------------------------------------------------------------------------
// Cloning and export
// ----------------------------------------------------------------------------

// Clone creates a deep, independent copy of the board suitable for a Step
// snapshot. Chain caches are intentionally not copied -- they are transient.
func (b *Board) Clone() *Board {
	nb := &Board{}
	copy(nb.Cells[:], b.Cells[:])
	copy(nb.Candidates[:], b.Candidates[:])
	copy(nb.Original[:], b.Original[:])
	copy(nb.Conflicting[:], b.Conflicting[:])
	copy(nb.StepEliminated[:], b.StepEliminated[:])
	return nb
}

// GetCells returns cells as a slice (for API/JSON responses).
func (b *Board) GetCells() []int {
	result := make([]int, 81)
	copy(result, b.Cells[:])
	return result
}

// GetCandidates returns candidates as a 2D slice (for API/JSON responses).
func (b *Board) GetCandidates() [][]int {
	result := make([][]int, 81)
	for i := 0; i < 81; i++ {
		result[i] = b.Candidates[i].ToSlice()
	}
	return result
}

// ----------------------------------------------------------------------------
// Query helpers used by the basic/fish technique set
// ----------------------------------------------------------------------------

func (b *Board) CellsWithNCandidates(n int) []int {
	var cells []int
	for i := 0; i < 81; i++ {
		if b.Candidates[i].Count() == n {
			cells = append(cells, i)
		}
	}
	return cells
}

func (b *Board) CellsWithCandidateRange(min, max int) []int {
	var cells []int
	for i := 0; i < 81; i++ {
		count := b.Candidates[i].Count()
		if count >= min && count <= max {
			cells = append(cells, i)
		}
	}
	return cells
}

func (b *Board) CellsWithDigitInUnit(unit Unit, digit int) []int {
	var cells []int
	for _, idx := range unit.Cells {
		if b.Candidates[idx].Has(digit) {
			cells = append(cells, idx)
		}
	}
	return cells
}

// ----------------------------------------------------------------------------
// BoardInterface implementation (used by the basic/fish/UR technique set,
// which is written against the interface rather than the concrete type)
// ----------------------------------------------------------------------------

func (b *Board) GetCell(idx int) int                    { return b.Cells[idx] }
func (b *Board) GetCandidatesAt(idx int) Candidates      { return b.Candidates[idx] }
func (b *Board) CloneBoard() BoardInterface              { return b.Clone() }
func (b *Board) SetCell(idx, digit int)                  { b.SetValue(idx, digit, false) }
func (b *Board) RemoveCandidate(idx, digit int) bool     { return b.EliminateCandidate(idx, digit) }
