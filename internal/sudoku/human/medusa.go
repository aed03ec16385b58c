package human

import (
	"fmt"

	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// detectMedusaRule1And2 covers Rule 1 (twice in a cell) and Rule 2 (twice in
// a group): whenever the same color appears twice within one cell's
// candidates, or twice within one group on the same digit, that color is
// false and the opposite color is solved.
func detectMedusaRule1And2(b *Board) *core.TechniqueData {
	for _, sc := range b.SuperChains() {
		colored := sc.CellDigitsColored()

		// Rule 1: two candidates of the same color within one cell.
		byCell := make(map[int]map[int]int) // cell -> color -> count
		for _, t := range colored {
			if byCell[t.Cell] == nil {
				byCell[t.Cell] = make(map[int]int)
			}
			byCell[t.Cell][t.Color]++
		}
		for cell, counts := range byCell {
			for color, n := range counts {
				if n < 2 {
					continue
				}
				if td := solveOppositeColor(b, sc, 1-color, "3D Medusa Rule 1", fmt.Sprintf("R%dC%d carries two same-colored candidates, so that color is false", RowOf(cell)+1, ColOf(cell)+1)); td != nil {
					return td
				}
			}
		}

		// Rule 2: two cells of the same group hold the same digit in the same color.
		byDigitColor := make(map[[2]int][]int) // (digit,color) -> cells
		for _, t := range colored {
			key := [2]int{t.Digit, t.Color}
			byDigitColor[key] = append(byDigitColor[key], t.Cell)
		}
		for key, cells := range byDigitColor {
			if anyShareGroup(cells) {
				if td := solveOppositeColor(b, sc, 1-key[1], "3D Medusa Rule 2", fmt.Sprintf("candidate %d appears twice in a group with color %d", key[0], key[1])); td != nil {
					return td
				}
			}
		}
	}
	return nil
}

func solveOppositeColor(b *Board, sc *SuperChain, color int, technique, reason string) *core.TechniqueData {
	var solved []core.Candidate
	var targets []int
	for _, t := range sc.CellDigitsColored() {
		if t.Color != color {
			continue
		}
		if b.Cells[t.Cell] != 0 {
			continue
		}
		b.SetValue(t.Cell, t.Digit, false)
		solved = append(solved, core.Candidate{Row: RowOf(t.Cell), Col: ColOf(t.Cell), Digit: t.Digit})
		targets = append(targets, t.Cell)
	}
	if len(solved) == 0 {
		return nil
	}
	b.ApplySudokuRules()
	return &core.TechniqueData{
		Technique:   technique,
		Action:      constants.ActionAssign,
		Targets:     ToCellRefs(targets),
		Solved:      solved,
		Explanation: reason,
		Refs:        core.TechniqueRef{Title: "3D Medusa", Slug: "3d-medusa", URL: "https://www.sudokuwiki.org/3D_Medusa"},
		Highlights:  core.Highlights{Primary: ToCellRefs(targets)},
	}
}

// detectMedusaRule3 (two colors in a cell): a cell with >=3 candidates
// contains both a red- and a blue-colored candidate; every uncolored
// candidate in that cell is eliminated.
func detectMedusaRule3(b *Board) *core.TechniqueData {
	for _, sc := range b.SuperChains() {
		byCell := make(map[int]map[int]bool) // cell -> color -> present
		for _, t := range sc.CellDigitsColored() {
			if byCell[t.Cell] == nil {
				byCell[t.Cell] = make(map[int]bool)
			}
			byCell[t.Cell][t.Color] = true
		}
		for cell, colors := range byCell {
			if b.Cells[cell] != 0 || b.Candidates[cell].Count() < 3 {
				continue
			}
			if !colors[0] || !colors[1] {
				continue
			}
			coloredDigits := make(map[int]bool)
			for _, t := range sc.CellDigitsColored() {
				if t.Cell == cell {
					coloredDigits[t.Digit] = true
				}
			}
			var eliminations []core.Candidate
			for _, d := range b.Candidates[cell].ToSlice() {
				if coloredDigits[d] {
					continue
				}
				if b.EliminateCandidate(cell, d) {
					eliminations = append(eliminations, MakeElimination(cell, d))
				}
			}
			if len(eliminations) == 0 {
				continue
			}
			return &core.TechniqueData{
				Technique:    "3D Medusa Rule 3",
				Action:       constants.ActionEliminate,
				Targets:      []core.CellRef{ToCellRef(cell)},
				Eliminations: eliminations,
				Explanation:  fmt.Sprintf("R%dC%d holds both colors, so its uncolored candidates are eliminated", RowOf(cell)+1, ColOf(cell)+1),
				Refs:         core.TechniqueRef{Title: "3D Medusa", Slug: "3d-medusa", URL: "https://www.sudokuwiki.org/3D_Medusa"},
				Highlights:   core.Highlights{Primary: []core.CellRef{ToCellRef(cell)}},
			}
		}
	}
	return nil
}

// detectMedusaRule4 (two colors elsewhere): an off-chain cell is a peer of
// two chain cells carrying the same candidate in opposite colors.
func detectMedusaRule4(b *Board) *core.TechniqueData {
	for _, sc := range b.SuperChains() {
		byDigit := make(map[int][]struct {
			cell, color int
		})
		for _, t := range sc.CellDigitsColored() {
			byDigit[t.Digit] = append(byDigit[t.Digit], struct{ cell, color int }{t.Cell, t.Color})
		}
		for d, entries := range byDigit {
			for idx := 0; idx < 81; idx++ {
				if !b.Candidates[idx].Has(d) {
					continue
				}
				seenColor := map[int]bool{}
				onChain := false
				for _, e := range entries {
					if e.cell == idx {
						onChain = true
						break
					}
					if ArePeers(idx, e.cell) {
						seenColor[e.color] = true
					}
				}
				if onChain || !(seenColor[0] && seenColor[1]) {
					continue
				}
				if b.EliminateCandidate(idx, d) {
					return &core.TechniqueData{
						Technique:    "3D Medusa Rule 4",
						Action:       constants.ActionEliminate,
						Digit:        d,
						Eliminations: []core.Candidate{MakeElimination(idx, d)},
						Explanation:  fmt.Sprintf("R%dC%d sees candidate %d in both colors", RowOf(idx)+1, ColOf(idx)+1, d),
						Refs:         core.TechniqueRef{Title: "3D Medusa", Slug: "3d-medusa", URL: "https://www.sudokuwiki.org/3D_Medusa"},
						Highlights:   core.Highlights{Primary: []core.CellRef{ToCellRef(idx)}},
					}
				}
			}
		}
	}
	return nil
}

// detectMedusaRule5 (cell + group): an in-chain cell has exactly one
// colored candidate; for any uncolored candidate d in that cell, if some
// peer has d colored the opposite color, d is eliminated from the cell.
func detectMedusaRule5(b *Board) *core.TechniqueData {
	for _, sc := range b.SuperChains() {
		coloredAt := make(map[int][]struct{ digit, color int })
		for _, t := range sc.CellDigitsColored() {
			coloredAt[t.Cell] = append(coloredAt[t.Cell], struct{ digit, color int }{t.Digit, t.Color})
		}
		byDigitColor := make(map[[2]int][]int)
		for _, t := range sc.CellDigitsColored() {
			byDigitColor[[2]int{t.Digit, t.Color}] = append(byDigitColor[[2]int{t.Digit, t.Color}], t.Cell)
		}

		for cell, entries := range coloredAt {
			if len(entries) != 1 || b.Cells[cell] != 0 {
				continue
			}
			ownColor := entries[0].color
			for _, d := range b.Candidates[cell].ToSlice() {
				if d == entries[0].digit {
					continue
				}
				opposite := byDigitColor[[2]int{d, 1 - ownColor}]
				if seesAny(cell, opposite) {
					if b.EliminateCandidate(cell, d) {
						return &core.TechniqueData{
							Technique:    "3D Medusa Rule 5",
							Action:       constants.ActionEliminate,
							Digit:        d,
							Eliminations: []core.Candidate{MakeElimination(cell, d)},
							Explanation:  fmt.Sprintf("R%dC%d peers the opposite color of %d", RowOf(cell)+1, ColOf(cell)+1, d),
							Refs:         core.TechniqueRef{Title: "3D Medusa", Slug: "3d-medusa", URL: "https://www.sudokuwiki.org/3D_Medusa"},
							Highlights:   core.Highlights{Primary: []core.CellRef{ToCellRef(cell)}},
						}
					}
				}
			}
		}
	}
	return nil
}

// detectMedusaRule6 (cell emptied by color): an off-chain unsolved cell with
// >=2 candidates has, for every candidate, at least one peer with that
// candidate colored the same color X -- so X is false, and every cell of
// the opposite color is solved.
func detectMedusaRule6(b *Board) *core.TechniqueData {
	for _, sc := range b.SuperChains() {
		byDigitColor := make(map[[2]int][]int)
		for _, t := range sc.CellDigitsColored() {
			byDigitColor[[2]int{t.Digit, t.Color}] = append(byDigitColor[[2]int{t.Digit, t.Color}], t.Cell)
		}
		for cell := 0; cell < 81; cell++ {
			if b.Cells[cell] != 0 || b.Candidates[cell].Count() < 2 {
				continue
			}
			onChain := false
			for _, t := range sc.CellDigitsColored() {
				if t.Cell == cell {
					onChain = true
					break
				}
			}
			if onChain {
				continue
			}
			for _, color := range [2]int{0, 1} {
				allCovered := true
				for _, d := range b.Candidates[cell].ToSlice() {
					if !seesAny(cell, byDigitColor[[2]int{d, color}]) {
						allCovered = false
						break
					}
				}
				if allCovered {
					if td := solveOppositeColor(b, sc, 1-color, "3D Medusa Rule 6", fmt.Sprintf("R%dC%d would be emptied if color %d were true", RowOf(cell)+1, ColOf(cell)+1, color)); td != nil {
						return td
					}
				}
			}
		}
	}
	return nil
}

// DetectMedusa dispatches through 3D Medusa Rules 1-6 in order, returning
// the first that makes progress. The six rules share one slot in the fixed
// technique order.
func DetectMedusa(b *Board) *core.TechniqueData {
	rules := []func(*Board) *core.TechniqueData{
		detectMedusaRule1And2,
		detectMedusaRule3,
		detectMedusaRule4,
		detectMedusaRule5,
		detectMedusaRule6,
	}
	for _, rule := range rules {
		if td := rule(b); td != nil {
			return td
		}
	}
	return nil
}
