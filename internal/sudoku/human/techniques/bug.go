package techniques

import (
	"fmt"

	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// ============================================================================
// BUG (Bivalue Universal Grave) Detection
// ============================================================================
//
// A BUG is a pattern where all unsolved cells have exactly 2 candidates,
// creating multiple possible solutions (a "deadly pattern"). A valid puzzle
// must have exactly one solution, so if we're one cell away from a BUG
// (BUG+1), we can determine what that cell must be.
//
// BUG+1: All cells except one have exactly 2 candidates, and that one cell
// has 3 candidates. The "extra" digit (the one that appears 3 times in each
// of its row, column, and box) must be the solution for that cell.

// DetectBUG finds BUG (Bivalue Universal Grave) patterns
func DetectBUG(b BoardInterface) *core.TechniqueData {
	// Count cells with !=2 candidates
	var extraCells []int
	for i := 0; i < constants.TotalCells; i++ {
		if b.GetCell(i) != 0 {
			continue
		}
		if b.GetCandidatesAt(i).Count() != 2 {
			extraCells = append(extraCells, i)
		}
	}

	// BUG+1: exactly one cell with 3 candidates
	if len(extraCells) != 1 {
		return nil
	}

	bugCell := extraCells[0]
	if b.GetCandidatesAt(bugCell).Count() != 3 {
		return nil
	}

	// Check if all bi-value cells would form a BUG
	// In a BUG, every unsolved cell has exactly 2 candidates,
	// and each candidate appears exactly twice in every row, column, and box

	row, col := bugCell/constants.GridSize, bugCell%constants.GridSize
	units := UnitsOf(bugCell)

	for _, digit := range b.GetCandidatesAt(bugCell).ToSlice() {
		// The BUG digit must be locked to three cells in every one of the
		// cell's three groups at once -- row, column, and box all agree --
		// not merely one of them; two-of-three still leaves the BUG+1
		// pattern capable of more than one solution.
		allThree := true
		for _, u := range units {
			if len(b.CellsWithDigitInUnit(u, digit)) != 3 {
				allThree = false
				break
			}
		}
		if !allThree {
			continue
		}

		return &core.TechniqueData{
			Action:      constants.ActionAssign,
			Digit:       digit,
			Targets:     []core.CellRef{{Row: row, Col: col}},
			Explanation: fmt.Sprintf("BUG+1: All other cells are bi-value; R%dC%d must be %d to avoid multiple solutions", row+1, col+1, digit),
			Highlights: core.Highlights{
				Primary: []core.CellRef{{Row: row, Col: col}},
			},
		}
	}

	return nil
}
