package human

import (
	"fmt"

	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// DetectSinglesChainRule2 implements "twice in a group": if one color of a
// singles chain has two cells sharing a group, that color is false -- every
// cell of that color loses the candidate, and every cell of the opposite
// color is solved with it.
func DetectSinglesChainRule2(b *Board) *core.TechniqueData {
	for d := 1; d <= 9; d++ {
		for _, chain := range b.SinglesChainsFor(d) {
			for _, color := range [2]int{0, 1} {
				cells := chain.nodesOfColor(color)
				if !anyShareGroup(cells) {
					continue
				}
				opposite := chain.nodesOfColor(1 - color)
				var eliminations []core.Candidate
				for _, c := range cells {
					if b.EliminateCandidate(c, d) {
						eliminations = append(eliminations, MakeElimination(c, d))
					}
				}
				var solved []core.Candidate
				for _, c := range opposite {
					if b.Cells[c] == 0 {
						b.SetValue(c, d, false)
						solved = append(solved, core.Candidate{Row: RowOf(c), Col: ColOf(c), Digit: d})
					}
				}
				if len(eliminations) == 0 && len(solved) == 0 {
					continue
				}
				b.ApplySudokuRules()
				return &core.TechniqueData{
					Technique:    "Singles Chain Rule 2",
					Action:       constants.ActionEliminate,
					Digit:        d,
					Targets:      ToCellRefs(chain.Nodes),
					Eliminations: eliminations,
					Solved:       solved,
					Explanation:  fmt.Sprintf("Candidate %d chain: two same-colored cells share a group, so that color is false and the opposite color is confirmed", d),
					Refs:         core.TechniqueRef{Title: "Simple Colouring", Slug: "simple-colouring", URL: "https://www.sudokuwiki.org/Singles_Chains"},
					Highlights:   core.Highlights{Primary: ToCellRefs(opposite), Secondary: ToCellRefs(cells)},
				}
			}
		}
	}
	return nil
}

// DetectSinglesChainRule4 implements "two colors elsewhere": an off-chain
// cell that is a peer of both a red and a blue node of the same singles
// chain cannot be that candidate either way, so it is eliminated.
func DetectSinglesChainRule4(b *Board) *core.TechniqueData {
	for d := 1; d <= 9; d++ {
		for _, chain := range b.SinglesChainsFor(d) {
			color0 := chain.Color0()
			color1 := chain.Color1()
			for _, cell := range b.CellsWithCandidate(d) {
				if containsInt(chain.Nodes, cell) {
					continue
				}
				if seesAny(cell, color0) && seesAny(cell, color1) {
					b.EliminateCandidate(cell, d)
					b.ApplySudokuRules()
					return &core.TechniqueData{
						Technique:    "Singles Chain Rule 4",
						Action:       constants.ActionEliminate,
						Digit:        d,
						Targets:      ToCellRefs(chain.Nodes),
						Eliminations: []core.Candidate{MakeElimination(cell, d)},
						Explanation:  fmt.Sprintf("R%dC%d sees both colors of the candidate %d chain, so %d cannot go there", RowOf(cell)+1, ColOf(cell)+1, d, d),
						Refs:         core.TechniqueRef{Title: "Simple Colouring", Slug: "simple-colouring", URL: "https://www.sudokuwiki.org/Singles_Chains"},
						Highlights:   core.Highlights{Primary: []core.CellRef{ToCellRef(cell)}, Secondary: ToCellRefs(chain.Nodes)},
					}
				}
			}
		}
	}
	return nil
}

func anyShareGroup(cells []int) bool {
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if !ArePeers(cells[i], cells[j]) {
				continue
			}
			if AreRowPeers(cells[i], cells[j]) || AreColPeers(cells[i], cells[j]) || AreBoxPeers(cells[i], cells[j]) {
				return true
			}
		}
	}
	return false
}

func seesAny(cell int, others []int) bool {
	for _, o := range others {
		if ArePeers(cell, o) {
			return true
		}
	}
	return false
}
