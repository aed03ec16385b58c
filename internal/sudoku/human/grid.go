package human

import (
	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/internal/sudoku/human/techniques"
)

// This file re-exports the grid vocabulary owned by the techniques package so
// that the rest of the human package can use bare names (Candidates, Unit,
// Peers, RowOf, ...) without a package qualifier. techniques/grid.go and
// techniques/board.go are the single source of truth for this data; nothing
// here recomputes it.

type Candidates = techniques.Candidates
type UnitType = techniques.UnitType
type Unit = techniques.Unit
type BoardInterface = techniques.BoardInterface

const (
	UnitRow = techniques.UnitRow
	UnitCol = techniques.UnitCol
	UnitBox = techniques.UnitBox
)

// Group is a naming alias for Unit: a row, column, or box owning exactly
// nine cells, exactly one of the three kinds a cell belongs to.
type Group = techniques.Unit

func NewCandidates(digits []int) Candidates { return techniques.NewCandidates(digits) }
func AllCandidates() Candidates             { return techniques.AllCandidates() }

var (
	Peers      = techniques.Peers
	RowPeers   = techniques.RowPeers
	ColPeers   = techniques.ColPeers
	BoxPeers   = techniques.BoxPeers
	RowIndices = techniques.RowIndices
	ColIndices = techniques.ColIndices
	BoxIndices = techniques.BoxIndices
)

func RowOf(idx int) int              { return techniques.RowOf(idx) }
func ColOf(idx int) int              { return techniques.ColOf(idx) }
func BoxOf(idx int) int              { return techniques.BoxOf(idx) }
func IndexOf(row, col int) int       { return techniques.IndexOf(row, col) }
func AreRowPeers(a, b int) bool      { return techniques.AreRowPeers(a, b) }
func AreColPeers(a, b int) bool      { return techniques.AreColPeers(a, b) }
func AreBoxPeers(a, b int) bool      { return techniques.AreBoxPeers(a, b) }
func ArePeers(a, b int) bool         { return techniques.ArePeers(a, b) }
func AllUnits() []Unit               { return techniques.AllUnits() }
func AllSeeAll(a, b []int) bool      { return techniques.AllSeeAll(a, b) }
func Combinations(s []int, k int) [][]int { return techniques.Combinations(s, k) }
func ContainsInt(s []int, v int) bool     { return techniques.ContainsInt(s, v) }
func IntersectInts(a, b []int) []int      { return techniques.IntersectInts(a, b) }

func ToCellRef(idx int) core.CellRef   { return techniques.ToCellRef(idx) }
func ToCellRefs(c []int) []core.CellRef { return techniques.ToCellRefs(c) }
func FromCellRef(r core.CellRef) int    { return techniques.FromCellRef(r) }

func FormatCell(c int) string             { return techniques.FormatCell(c) }
func FormatCells(c []int) string          { return techniques.FormatCells(c) }
func FormatRef(r core.CellRef) string     { return techniques.FormatRef(r) }
func FormatRefs(r []core.CellRef) string  { return techniques.FormatRefs(r) }
func FormatDigit(d int) string            { return techniques.FormatDigit(d) }
func FormatDigits(d []int) string         { return techniques.FormatDigits(d) }
func FormatDigitsCompact(d []int) string  { return techniques.FormatDigitsCompact(d) }

func MakeElimination(cell, digit int) core.Candidate { return techniques.MakeElimination(cell, digit) }
func DedupeEliminations(e []core.Candidate) []core.Candidate {
	return techniques.DedupeEliminations(e)
}

// Label renders a cell index in row-letter/column-digit form,
// e.g. index 3 (row 0, col 3) -> "A4".
func Label(idx int) string {
	row, col := RowOf(idx), ColOf(idx)
	return string(rune('A'+row)) + string(rune('1'+col))
}

// Labels renders several cell indices via Label, comma-separated.
func Labels(cells []int) string {
	if len(cells) == 0 {
		return ""
	}
	out := make([]byte, 0, len(cells)*4)
	for i, c := range cells {
		if i > 0 {
			out = append(out, ',', ' ')
		}
		out = append(out, []byte(Label(c))...)
	}
	return string(out)
}

// candidatesFromMap builds a Candidates bitmask from a digit-present set, the
// representation a few technique prototypes still pass around internally.
func candidatesFromMap(m map[int]bool) Candidates {
	var c Candidates
	for digit, present := range m {
		if present {
			c = c.Set(digit)
		}
	}
	return c
}

// candidatesToMap is the inverse of candidatesFromMap.
func candidatesToMap(c Candidates) map[int]bool {
	m := make(map[int]bool, c.Count())
	for _, d := range c.ToSlice() {
		m[d] = true
	}
	return m
}
