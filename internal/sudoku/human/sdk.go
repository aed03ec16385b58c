package human

import (
	"github.com/kestrelsolve/humansolve/internal/core"
)

// Board SDK: the canonical set of read-only query methods technique
// implementations use to inspect board state. Grid-level utilities that
// don't need a *Board receiver live in grid.go instead.

// ----------------------------------------------------------------------------
// Cell State Methods
// ----------------------------------------------------------------------------

func (b *Board) IsEmpty(cell int) bool  { return b.Cells[cell] == 0 }
func (b *Board) IsFilled(cell int) bool { return b.Cells[cell] != 0 }
func (b *Board) Value(cell int) int     { return b.Cells[cell] }

// ----------------------------------------------------------------------------
// Candidate Methods
// ----------------------------------------------------------------------------

func (b *Board) HasCandidate(cell, digit int) bool  { return b.Candidates[cell].Has(digit) }
func (b *Board) CandidateCount(cell int) int        { return b.Candidates[cell].Count() }
func (b *Board) OnlyCandidate(cell int) (int, bool) { return b.Candidates[cell].Only() }
func (b *Board) CandidateSlice(cell int) []int      { return b.Candidates[cell].ToSlice() }
func (b *Board) CandidatesAt(cell int) Candidates   { return b.Candidates[cell] }
func (b *Board) CandidatesMatch(cell1, cell2 int) bool {
	return b.Candidates[cell1] == b.Candidates[cell2]
}
func (b *Board) HasAnyCandidates(cell int) bool { return !b.Candidates[cell].IsEmpty() }

// ----------------------------------------------------------------------------
// Cell Finding Methods
// ----------------------------------------------------------------------------

func (b *Board) CellsWithCandidate(digit int) []int {
	var cells []int
	for i := 0; i < 81; i++ {
		if b.Candidates[i].Has(digit) {
			cells = append(cells, i)
		}
	}
	return cells
}

func (b *Board) CellsWithCandidateInUnit(unit Unit, digit int) []int {
	return b.CellsWithCandidateIn(unit.Cells, digit)
}

func (b *Board) CellsWithCandidateIn(indices []int, digit int) []int {
	var cells []int
	for _, cell := range indices {
		if b.Candidates[cell].Has(digit) {
			cells = append(cells, cell)
		}
	}
	return cells
}

func (b *Board) EmptyCells() []int {
	var cells []int
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

func (b *Board) EmptyCellsIn(indices []int) []int {
	var cells []int
	for _, cell := range indices {
		if b.Cells[cell] == 0 {
			cells = append(cells, cell)
		}
	}
	return cells
}

func (b *Board) EmptyCellsInUnit(unit Unit) []int { return b.EmptyCellsIn(unit.Cells) }

func (b *Board) BivalueCells() []int {
	var cells []int
	for i := 0; i < 81; i++ {
		if b.Candidates[i].Count() == 2 {
			cells = append(cells, i)
		}
	}
	return cells
}

// ----------------------------------------------------------------------------
// Peer Methods
// ----------------------------------------------------------------------------

func (b *Board) SeesCell(cell1, cell2 int) bool { return ArePeers(cell1, cell2) }
func (b *Board) PeersOf(cell int) []int         { return Peers[cell] }

// CommonPeers returns cells that are peers of ALL given cells.
func (b *Board) CommonPeers(cells []int) []int {
	if len(cells) == 0 {
		return nil
	}
	if len(cells) == 1 {
		return Peers[cells[0]]
	}
	peerSet := make(map[int]bool)
	for _, p := range Peers[cells[0]] {
		peerSet[p] = true
	}
	for _, cell := range cells[1:] {
		newSet := make(map[int]bool)
		for _, p := range Peers[cell] {
			if peerSet[p] {
				newSet[p] = true
			}
		}
		peerSet = newSet
	}
	result := make([]int, 0, len(peerSet))
	for p := range peerSet {
		result = append(result, p)
	}
	return result
}

func (b *Board) CommonPeersWithCandidate(cells []int, digit int) []int {
	peers := b.CommonPeers(cells)
	var result []int
	for _, p := range peers {
		if b.Candidates[p].Has(digit) {
			result = append(result, p)
		}
	}
	return result
}

func (b *Board) AllSeeEachOther(cells []int) bool {
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if !ArePeers(cells[i], cells[j]) {
				return false
			}
		}
	}
	return true
}

// ----------------------------------------------------------------------------
// Unit Methods
// ----------------------------------------------------------------------------

func (b *Board) UnitsContaining(cell int) []Unit {
	row, col, box := RowOf(cell), ColOf(cell), BoxOf(cell)
	return []Unit{
		{Type: UnitRow, Index: row, Cells: RowIndices[row]},
		{Type: UnitCol, Index: col, Cells: ColIndices[col]},
		{Type: UnitBox, Index: box, Cells: BoxIndices[box]},
	}
}

func (b *Board) DigitPositionsInUnit(unit Unit, digit int) []int {
	return b.CellsWithCandidateIn(unit.Cells, digit)
}

// ----------------------------------------------------------------------------
// Coordinate Helpers
// ----------------------------------------------------------------------------

func (b *Board) Row(cell int) int              { return RowOf(cell) }
func (b *Board) Col(cell int) int              { return ColOf(cell) }
func (b *Board) Box(cell int) int              { return BoxOf(cell) }
func (b *Board) CellAt(row, col int) int       { return IndexOf(row, col) }
func (b *Board) CellRef(cell int) core.CellRef { return ToCellRef(cell) }
func (b *Board) CellFromRef(ref core.CellRef) int { return FromCellRef(ref) }

func (b *Board) IndicesToRefs(indices []int) []core.CellRef { return ToCellRefs(indices) }

func (b *Board) RefsToIndices(refs []core.CellRef) []int {
	indices := make([]int, len(refs))
	for i, ref := range refs {
		indices[i] = FromCellRef(ref)
	}
	return indices
}

// ----------------------------------------------------------------------------
// Elimination list helpers used by techniques building up core.Candidate slices
// ----------------------------------------------------------------------------

func MakeEliminations(cells []int, digit int) []core.Candidate {
	elims := make([]core.Candidate, len(cells))
	for i, cell := range cells {
		elims[i] = MakeElimination(cell, digit)
	}
	return elims
}

func MakeEliminationsMultiDigit(cell int, digits []int) []core.Candidate {
	elims := make([]core.Candidate, len(digits))
	for i, digit := range digits {
		elims[i] = MakeElimination(cell, digit)
	}
	return elims
}

// RemoveInt removes the first occurrence of val from slice.
func RemoveInt(slice []int, val int) []int {
	for i, v := range slice {
		if v == val {
			return append(slice[:i], slice[i+1:]...)
		}
	}
	return slice
}

// UniqueInts returns slice with duplicates removed, order preserved.
func UniqueInts(slice []int) []int {
	seen := make(map[int]bool)
	result := make([]int, 0, len(slice))
	for _, v := range slice {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
