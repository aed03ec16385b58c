package techniques

import (
	"fmt"

	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// DetectNakedSingle finds a cell with only one candidate
func DetectNakedSingle(b BoardInterface) *core.TechniqueData {
	for i := 0; i < 81; i++ {
		if b.GetCell(i) == 0 && b.GetCandidatesAt(i).Count() == 1 {
			digit, _ := b.GetCandidatesAt(i).Only()
			row, col := i/9, i%9
			return &core.TechniqueData{
				Action:      constants.ActionAssign,
				Digit:       digit,
				Targets:     []core.CellRef{{Row: row, Col: col}},
				Explanation: fmt.Sprintf("Cell R%dC%d has only one candidate: %d", row+1, col+1, digit),
				Highlights: core.Highlights{
					Primary: []core.CellRef{{Row: row, Col: col}},
				},
			}
		}
	}
	return nil
}

// DetectHiddenSingle finds a digit that can only go in one cell within a unit
func DetectHiddenSingle(b BoardInterface) *core.TechniqueData {
	// Check rows
	for row := 0; row < 9; row++ {
		for digit := 1; digit <= 9; digit++ {
			var positions []int
			for col := 0; col < 9; col++ {
				idx := row*9 + col
				if b.GetCell(idx) == digit {
					positions = nil
					break
				}
				if b.GetCandidatesAt(idx).Has(digit) {
					positions = append(positions, col)
				}
			}
			if len(positions) == 1 {
				col := positions[0]
				idx := row*9 + col
				if b.GetCandidatesAt(idx).Count() > 1 {
					return &core.TechniqueData{
						Action:      constants.ActionAssign,
						Digit:       digit,
						Targets:     []core.CellRef{{Row: row, Col: col}},
						Explanation: fmt.Sprintf("In row %d, %d can only go in R%dC%d", row+1, digit, row+1, col+1),
						Highlights: core.Highlights{
							Primary:   []core.CellRef{{Row: row, Col: col}},
							Secondary: ToCellRefs(RowIndices[row]),
						},
					}
				}
			}
		}
	}

	// Check columns
	for col := 0; col < 9; col++ {
		for digit := 1; digit <= 9; digit++ {
			var positions []int
			for row := 0; row < 9; row++ {
				idx := row*9 + col
				if b.GetCell(idx) == digit {
					positions = nil
					break
				}
				if b.GetCandidatesAt(idx).Has(digit) {
					positions = append(positions, row)
				}
			}
			if len(positions) == 1 {
				row := positions[0]
				idx := row*9 + col
				if b.GetCandidatesAt(idx).Count() > 1 {
					return &core.TechniqueData{
						Action:      constants.ActionAssign,
						Digit:       digit,
						Targets:     []core.CellRef{{Row: row, Col: col}},
						Explanation: fmt.Sprintf("In column %d, %d can only go in R%dC%d", col+1, digit, row+1, col+1),
						Highlights: core.Highlights{
							Primary:   []core.CellRef{{Row: row, Col: col}},
							Secondary: ToCellRefs(ColIndices[col]),
						},
					}
				}
			}
		}
	}

	// Check boxes
	for box := 0; box < 9; box++ {
		boxRow, boxCol := (box/3)*3, (box%3)*3
		for digit := 1; digit <= 9; digit++ {
			var positions []core.CellRef
			found := false
			for r := boxRow; r < boxRow+3; r++ {
				for c := boxCol; c < boxCol+3; c++ {
					idx := r*9 + c
					if b.GetCell(idx) == digit {
						found = true
						break
					}
					if b.GetCandidatesAt(idx).Has(digit) {
						positions = append(positions, core.CellRef{Row: r, Col: c})
					}
				}
				if found {
					break
				}
			}
			if !found && len(positions) == 1 {
				pos := positions[0]
				idx := pos.Row*9 + pos.Col
				if b.GetCandidatesAt(idx).Count() > 1 {
					return &core.TechniqueData{
						Action:      constants.ActionAssign,
						Digit:       digit,
						Targets:     []core.CellRef{pos},
						Explanation: fmt.Sprintf("In box %d, %d can only go in R%dC%d", box+1, digit, pos.Row+1, pos.Col+1),
						Highlights: core.Highlights{
							Primary:   []core.CellRef{pos},
							Secondary: ToCellRefs(BoxIndices[box]),
						},
					}
				}
			}
		}
	}

	return nil
}

// groupOf returns the unit of the given type containing idx, along with its
// canonical name and 1-based number for explanations.
func groupOf(t UnitType, idx int) (Unit, string, int) {
	switch t {
	case UnitRow:
		r := RowOf(idx)
		return Unit{Type: UnitRow, Index: r, Cells: RowIndices[r]}, "row", r + 1
	case UnitCol:
		c := ColOf(idx)
		return Unit{Type: UnitCol, Index: c, Cells: ColIndices[c]}, "column", c + 1
	default:
		box := BoxOf(idx)
		return Unit{Type: UnitBox, Index: box, Cells: BoxIndices[box]}, "box", box + 1
	}
}

// findLockedCandidates generalizes Pointing Pair/Triplet and Box-Line
// Reduction into one symmetric rule: in some group G, candidate d occurs in
// exactly k cells, and those k cells all share a second group G' of a
// different type. Eliminate d from G' minus G.
func findLockedCandidates(b BoardInterface, k int) *core.TechniqueData {
	for _, g := range AllUnits() {
		for digit := 1; digit <= 9; digit++ {
			var cells []int
			for _, idx := range g.Cells {
				if b.GetCandidatesAt(idx).Has(digit) {
					cells = append(cells, idx)
				}
			}
			if len(cells) != k {
				continue
			}

			candidateTypes := []UnitType{UnitRow, UnitCol, UnitBox}
			for _, otherType := range candidateTypes {
				if otherType == g.Type {
					continue
				}
				if g.Type != UnitBox && otherType != UnitBox {
					continue // only box<->line pairings are locked-candidate eliminations
				}

				gp, name, num := groupOf(otherType, cells[0])
				sameGroup := true
				for _, c := range cells[1:] {
					og, _, _ := groupOf(otherType, c)
					if og.Index != gp.Index {
						sameGroup = false
						break
					}
				}
				if !sameGroup {
					continue
				}

				var eliminations []core.Candidate
				for _, idx := range gp.Cells {
					if ContainsInt(cells, idx) {
						continue
					}
					if b.GetCandidatesAt(idx).Has(digit) {
						eliminations = append(eliminations, core.Candidate{Row: idx / 9, Col: idx % 9, Digit: digit})
					}
				}
				if len(eliminations) == 0 {
					continue
				}

				name2, name2Num := groupLabel(g)
				positions := ToCellRefs(cells)
				techniqueName := "Pointing Pair"
				if k == 3 {
					techniqueName = "Pointing Triplet"
				}
				return &core.TechniqueData{
					Action:       constants.ActionEliminate,
					Digit:        digit,
					Targets:      positions,
					Eliminations: eliminations,
					Explanation:  fmt.Sprintf("In %s %d, %d is confined to %s %d: eliminate %d from the rest of %s %d.", name2, name2Num, digit, name, num, digit, name, num),
					Highlights: core.Highlights{
						Primary:   positions,
						Secondary: ToCellRefs(gp.Cells),
					},
					Refs: core.TechniqueRef{Title: techniqueName, Slug: "pointing-pairs", URL: "https://www.sudokuwiki.org/Intersection_Removal"},
				}
			}
		}
	}
	return nil
}

func groupLabel(u Unit) (string, int) {
	switch u.Type {
	case UnitRow:
		return "row", u.Index + 1
	case UnitCol:
		return "column", u.Index + 1
	default:
		return "box", u.Index + 1
	}
}

// DetectPointingPair finds a digit confined within a group to two cells that
// share a second group (box<->line, either direction).
func DetectPointingPair(b BoardInterface) *core.TechniqueData { return findLockedCandidates(b, 2) }

// DetectPointingTriplet finds a digit confined within a group to three cells
// that share a second group (box<->line, either direction).
func DetectPointingTriplet(b BoardInterface) *core.TechniqueData { return findLockedCandidates(b, 3) }
