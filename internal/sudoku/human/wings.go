package human

import (
	"fmt"

	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// detectYOrXYZWing implements Y-Wing (k=2) and XYZ-Wing (k=3): a link cell
// with exactly k candidates shares a group with two bi-value wing cells,
// each sharing a distinct candidate with the link and sharing exactly one
// common "wing candidate" z between themselves.
func detectYOrXYZWing(b *Board, k int) *core.TechniqueData {
	name, slug := "Y-Wing", "y-wing"
	if k == 3 {
		name, slug = "XYZ-Wing", "xyz-wing"
	}

	linkCells := b.CellsWithNCandidates(k)
	for _, link := range linkCells {
		wings := b.BivalueCells()
		for i := 0; i < len(wings); i++ {
			w1 := wings[i]
			if w1 == link || !ArePeers(w1, link) {
				continue
			}
			for j := i + 1; j < len(wings); j++ {
				w2 := wings[j]
				if w2 == link || !ArePeers(w2, link) {
					continue
				}
				if ArePeers(w1, w2) {
					continue
				}
				c1, c2 := b.Candidates[w1], b.Candidates[w2]
				shared := c1.Intersect(c2)
				if shared.Count() != 1 {
					continue
				}
				z, _ := shared.Only()

				w1Other := c1.Subtract(shared)
				w2Other := c2.Subtract(shared)
				if w1Other.Count() != 1 || w2Other.Count() != 1 {
					continue
				}
				if !b.Candidates[link].Intersect(w1Other).Equals(w1Other) {
					continue
				}
				if !b.Candidates[link].Intersect(w2Other).Equals(w2Other) {
					continue
				}

				zInLink := b.Candidates[link].Has(z)
				if k == 2 && zInLink {
					continue
				}
				if k == 3 && !zInLink {
					continue
				}

				mustSee := []int{w1, w2}
				if k == 3 {
					mustSee = append(mustSee, link)
				}
				var eliminations []core.Candidate
				for idx := 0; idx < 81; idx++ {
					if idx == link || idx == w1 || idx == w2 {
						continue
					}
					if !b.Candidates[idx].Has(z) {
						continue
					}
					allSee := true
					for _, m := range mustSee {
						if !ArePeers(idx, m) {
							allSee = false
							break
						}
					}
					if allSee {
						if b.EliminateCandidate(idx, z) {
							eliminations = append(eliminations, MakeElimination(idx, z))
						}
					}
				}
				if len(eliminations) == 0 {
					continue
				}
				seeing := "both wings"
				if k == 3 {
					seeing = "all three"
				}
				return &core.TechniqueData{
					Technique:    name,
					Action:       constants.ActionEliminate,
					Digit:        z,
					Targets:      ToCellRefs([]int{link, w1, w2}),
					Eliminations: eliminations,
					Explanation:  fmt.Sprintf("%s on R%dC%d/R%dC%d/R%dC%d eliminates %d from cells seeing %s", name, RowOf(link)+1, ColOf(link)+1, RowOf(w1)+1, ColOf(w1)+1, RowOf(w2)+1, ColOf(w2)+1, z, seeing),
					Refs:         core.TechniqueRef{Title: name, Slug: slug, URL: "https://www.sudokuwiki.org/Y_Wing_Strategy"},
					Highlights:   core.Highlights{Primary: ToCellRefs([]int{link, w1, w2})},
				}
			}
		}
	}
	return nil
}

// DetectYWing implements Y-Wing (k=2): z is not a candidate of the link cell.
func DetectYWing(b *Board) *core.TechniqueData { return detectYOrXYZWing(b, 2) }

// DetectXYZWing implements XYZ-Wing (k=3): z is a candidate of the link cell.
func DetectXYZWing(b *Board) *core.TechniqueData { return detectYOrXYZWing(b, 3) }

// DetectWXYZWing finds four cells (2..4 candidates each) drawn from the
// union of one box and one row-or-column whose combined candidates number
// exactly four, with exactly one non-restricted common digit (some two
// cells sharing it are non-peers) while every other shared candidate is
// restricted (pairwise peers).
func DetectWXYZWing(b *Board) *core.TechniqueData {
	for box := 0; box < 9; box++ {
		boxCells := BoxIndices[box]
		for lineType := 0; lineType < 2; lineType++ {
			for line := 0; line < 9; line++ {
				var lineCells []int
				if lineType == 0 {
					lineCells = RowIndices[line]
				} else {
					lineCells = ColIndices[line]
				}
				pool := unionUnique(boxCells, lineCells)
				var candidates []int
				for _, c := range pool {
					if b.Cells[c] == 0 && b.Candidates[c].Count() >= 2 && b.Candidates[c].Count() <= 4 {
						candidates = append(candidates, c)
					}
				}
				if td := searchWXYZCombo(b, candidates); td != nil {
					return td
				}
			}
		}
	}
	return nil
}

func unionUnique(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	var out []int
	for _, x := range append(append([]int{}, a...), b...) {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

func searchWXYZCombo(b *Board, pool []int) *core.TechniqueData {
	if len(pool) < 4 {
		return nil
	}
	for _, combo := range Combinations(pool, 4) {
		var union Candidates
		for _, c := range combo {
			union = union.Union(b.Candidates[c])
		}
		if union.Count() != 4 {
			continue
		}
		digits := union.ToSlice()

		var nrcd int
		nrcdCount := 0
		for _, d := range digits {
			var cellsWithD []int
			for _, c := range combo {
				if b.Candidates[c].Has(d) {
					cellsWithD = append(cellsWithD, c)
				}
			}
			if b.AllSeeEachOther(cellsWithD) {
				continue
			}
			nrcd = d
			nrcdCount++
		}
		if nrcdCount != 1 {
			continue
		}

		var cellsWithNRCD []int
		for _, c := range combo {
			if b.Candidates[c].Has(nrcd) {
				cellsWithNRCD = append(cellsWithNRCD, c)
			}
		}

		var eliminations []core.Candidate
		for idx := 0; idx < 81; idx++ {
			if containsInt(combo, idx) {
				continue
			}
			if !b.Candidates[idx].Has(nrcd) {
				continue
			}
			if seesAllOf(idx, cellsWithNRCD) {
				if b.EliminateCandidate(idx, nrcd) {
					eliminations = append(eliminations, MakeElimination(idx, nrcd))
				}
			}
		}
		if len(eliminations) == 0 {
			continue
		}
		return &core.TechniqueData{
			Technique:    "WXYZ-Wing",
			Action:       constants.ActionEliminate,
			Digit:        nrcd,
			Targets:      ToCellRefs(combo),
			Eliminations: eliminations,
			Explanation:  fmt.Sprintf("WXYZ-Wing on %s eliminates %d from cells seeing every occurrence of the non-restricted digit", Labels(combo), nrcd),
			Refs:         core.TechniqueRef{Title: "WXYZ-Wing", Slug: "wxyz-wing", URL: "https://www.sudokuwiki.org/WXYZ_Wing"},
			Highlights:   core.Highlights{Primary: ToCellRefs(combo)},
		}
	}
	return nil
}

func seesAllOf(idx int, cells []int) bool {
	for _, c := range cells {
		if !ArePeers(idx, c) {
			return false
		}
	}
	return true
}
