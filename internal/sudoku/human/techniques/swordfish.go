package techniques

import (
	"fmt"

	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// ============================================================================
// Basic Fish Detection (X-Wing k=2, Swordfish k=3, Jellyfish k=4)
// ============================================================================
//
// A fish of order k picks k base lines (rows or columns) in which a digit's
// candidates are confined to the same k cover lines (columns or rows). The
// digit is then eliminated from the rest of each cover line.

var fishNames = map[int]string{2: "X-Wing", 3: "Swordfish", 4: "Jellyfish"}

// findFish searches for an order-k fish using rows as base lines and, in a
// second pass, columns as base lines (the two are mirror images of the same
// search with indices transposed).
func findFish(b BoardInterface, k int) *core.TechniqueData {
	if move := findFishDirectional(b, k, true); move != nil {
		return move
	}
	return findFishDirectional(b, k, false)
}

func findFishDirectional(b BoardInterface, k int, rowsAreBase bool) *core.TechniqueData {
	for digit := 1; digit <= constants.GridSize; digit++ {
		positions := make(map[int][]int) // base line -> cover-line positions
		for base := 0; base < constants.GridSize; base++ {
			var covers []int
			for other := 0; other < constants.GridSize; other++ {
				idx := cellAt(base, other, rowsAreBase)
				if b.GetCandidatesAt(idx).Has(digit) {
					covers = append(covers, other)
				}
			}
			if len(covers) >= 2 && len(covers) <= k {
				positions[base] = covers
			}
		}

		var bases []int
		for base := range positions {
			bases = append(bases, base)
		}
		sortIntsAsc(bases)
		if len(bases) < k {
			continue
		}

		for _, combo := range Combinations(bases, k) {
			coverSet := make(map[int]bool)
			for _, base := range combo {
				for _, c := range positions[base] {
					coverSet[c] = true
				}
			}
			if len(coverSet) != k {
				continue
			}
			var covers []int
			for c := range coverSet {
				covers = append(covers, c)
			}
			sortIntsAsc(covers)

			var eliminations []core.Candidate
			baseSet := make(map[int]bool, len(combo))
			for _, base := range combo {
				baseSet[base] = true
			}
			for _, cover := range covers {
				for other := 0; other < constants.GridSize; other++ {
					if baseSet[other] {
						continue
					}
					idx := cellAt(other, cover, rowsAreBase)
					if b.GetCandidatesAt(idx).Has(digit) {
						row, col := idx/constants.GridSize, idx%constants.GridSize
						eliminations = append(eliminations, core.Candidate{Row: row, Col: col, Digit: digit})
					}
				}
			}
			if len(eliminations) == 0 {
				continue
			}

			var targets []core.CellRef
			for _, base := range combo {
				for _, cover := range positions[base] {
					idx := cellAt(base, cover, rowsAreBase)
					targets = append(targets, core.CellRef{Row: idx / constants.GridSize, Col: idx % constants.GridSize})
				}
			}

			baseWord, coverWord := "rows", "columns"
			if !rowsAreBase {
				baseWord, coverWord = "columns", "rows"
			}
			return &core.TechniqueData{
				Action:       constants.ActionEliminate,
				Digit:        digit,
				Targets:      targets,
				Eliminations: eliminations,
				Explanation:  fmt.Sprintf("%s: %d confined to %s %s in %s %s", fishNames[k], digit, baseWord, formatOneIndexed(combo), coverWord, formatOneIndexed(covers)),
				Highlights:   core.Highlights{Primary: targets},
			}
		}
	}
	return nil
}

func cellAt(base, other int, rowsAreBase bool) int {
	if rowsAreBase {
		return base*constants.GridSize + other
	}
	return other*constants.GridSize + base
}

func formatOneIndexed(indices []int) string {
	s := ""
	for i, idx := range indices {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%d", idx+1)
	}
	return s
}

// DetectXWing finds an order-2 fish (X-Wing).
func DetectXWing(b BoardInterface) *core.TechniqueData { return findFish(b, 2) }

// DetectSwordfish finds an order-3 fish (Swordfish).
func DetectSwordfish(b BoardInterface) *core.TechniqueData { return findFish(b, 3) }

// DetectJellyfish finds an order-4 fish (Jellyfish).
func DetectJellyfish(b BoardInterface) *core.TechniqueData { return findFish(b, 4) }
