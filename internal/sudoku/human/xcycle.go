package human

import (
	"fmt"

	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// DetectXCycle implements X-Cycle Rules 1-3 over the nice loops discovered
// for each candidate digit, using the on-the-fly recursive enumeration in
// FindNiceLoops rather than a fully-enumerating pass.
func DetectXCycle(b *Board) *core.TechniqueData {
	for d := 1; d <= 9; d++ {
		for _, loop := range b.FindNiceLoops(d) {
			switch loop.Rule {
			case NiceLoopRule1:
				if td := applyXCycleRule1(b, loop); td != nil {
					return td
				}
			case NiceLoopRule2:
				if td := applyXCycleRule2(b, loop); td != nil {
					return td
				}
			case NiceLoopRule3:
				if td := applyXCycleRule3(b, loop); td != nil {
					return td
				}
			}
		}
	}
	return nil
}

// applyXCycleRule1 (even-length loop): for every weak link in the loop,
// eliminate d from any outside cell that peers both of the link's endpoints.
func applyXCycleRule1(b *Board, loop *NiceLoop) *core.TechniqueData {
	n := len(loop.IsStrong)
	for i := 0; i < n; i++ {
		if loop.IsStrong[i] {
			continue
		}
		a, bb := loop.Cells[i], loop.Cells[i+1]
		var eliminations []core.Candidate
		for idx := 0; idx < 81; idx++ {
			if containsInt(loop.Cells, idx) {
				continue
			}
			if !b.Candidates[idx].Has(loop.Digit) {
				continue
			}
			if ArePeers(idx, a) && ArePeers(idx, bb) {
				if b.EliminateCandidate(idx, loop.Digit) {
					eliminations = append(eliminations, MakeElimination(idx, loop.Digit))
				}
			}
		}
		if len(eliminations) == 0 {
			continue
		}
		return &core.TechniqueData{
			Technique:    "X-Cycle",
			Action:       constants.ActionEliminate,
			Digit:        loop.Digit,
			Targets:      ToCellRefs(loop.Cells),
			Eliminations: eliminations,
			Explanation:  fmt.Sprintf("X-Cycle on candidate %d (loop %s) eliminates via its weak link R%dC%d-R%dC%d", loop.Digit, Labels(loop.Cells), RowOf(a)+1, ColOf(a)+1, RowOf(bb)+1, ColOf(bb)+1),
			Refs:         core.TechniqueRef{Title: "X-Cycle", Slug: "x-cycle", URL: "https://www.sudokuwiki.org/X_Cycles"},
			Highlights:   core.Highlights{Primary: ToCellRefs(loop.Cells)},
		}
	}
	return nil
}

// applyXCycleRule2 (odd loop, adjacent strong links): the cell straddling
// the two adjacent strong links is solved with d.
func applyXCycleRule2(b *Board, loop *NiceLoop) *core.TechniqueData {
	cell := loop.Cells[loop.StrongIdx+1]
	if b.Cells[cell] != 0 {
		return nil
	}
	b.SetValue(cell, loop.Digit, false)
	b.ApplySudokuRules()
	return &core.TechniqueData{
		Technique:   "X-Cycle",
		Action:      constants.ActionAssign,
		Digit:       loop.Digit,
		Targets:     []core.CellRef{ToCellRef(cell)},
		Solved:      []core.Candidate{{Row: RowOf(cell), Col: ColOf(cell), Digit: loop.Digit}},
		Explanation: fmt.Sprintf("X-Cycle on candidate %d (loop %s) solves R%dC%d at the junction of two adjacent strong links", loop.Digit, Labels(loop.Cells), RowOf(cell)+1, ColOf(cell)+1),
		Refs:        core.TechniqueRef{Title: "X-Cycle", Slug: "x-cycle", URL: "https://www.sudokuwiki.org/X_Cycles"},
		Highlights:  core.Highlights{Primary: []core.CellRef{ToCellRef(cell)}},
	}
}

// applyXCycleRule3 (odd loop, adjacent weak links): d is eliminated from the
// cell straddling the two adjacent weak links.
func applyXCycleRule3(b *Board, loop *NiceLoop) *core.TechniqueData {
	cell := loop.Cells[loop.WeakIdx+1]
	if !b.Candidates[cell].Has(loop.Digit) {
		return nil
	}
	if !b.EliminateCandidate(cell, loop.Digit) {
		return nil
	}
	return &core.TechniqueData{
		Technique:    "X-Cycle",
		Action:       constants.ActionEliminate,
		Digit:        loop.Digit,
		Targets:      []core.CellRef{ToCellRef(cell)},
		Eliminations: []core.Candidate{MakeElimination(cell, loop.Digit)},
		Explanation:  fmt.Sprintf("X-Cycle on candidate %d (loop %s) eliminates at the junction of two adjacent weak links", loop.Digit, Labels(loop.Cells)),
		Refs:         core.TechniqueRef{Title: "X-Cycle", Slug: "x-cycle", URL: "https://www.sudokuwiki.org/X_Cycles"},
		Highlights:   core.Highlights{Primary: []core.CellRef{ToCellRef(cell)}},
	}
}
