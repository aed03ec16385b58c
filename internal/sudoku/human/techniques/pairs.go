package techniques

import (
	"fmt"

	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

var subsetNames = map[int]string{2: "Pair", 3: "Triplet", 4: "Quad", 5: "Quint"}

// findNakedSubset generalizes naked pair/triplet/quad/quint: k unsolved
// cells in a unit whose combined candidates number exactly k eliminate
// those k digits from every other cell of the unit.
func findNakedSubset(b BoardInterface, k int) *core.TechniqueData {
	for _, unit := range AllUnits() {
		if move := findNakedSubsetInUnit(b, unit.Cells, unit.Type.String(), unit.Index+1, k); move != nil {
			return move
		}
	}
	return nil
}

func findNakedSubsetInUnit(b BoardInterface, indices []int, unitType string, unitNum, k int) *core.TechniqueData {
	var candidates []int
	for _, idx := range indices {
		n := b.GetCandidatesAt(idx).Count()
		if n >= 2 && n <= k {
			candidates = append(candidates, idx)
		}
	}
	if len(candidates) < k {
		return nil
	}

	for _, combo := range Combinations(candidates, k) {
		var union Candidates
		for _, c := range combo {
			union = union.Union(b.GetCandidatesAt(c))
		}
		if union.Count() != k {
			continue
		}
		digits := union.ToSlice()

		var eliminations []core.Candidate
		for _, idx := range indices {
			if ContainsInt(combo, idx) {
				continue
			}
			for _, d := range digits {
				if b.GetCandidatesAt(idx).Has(d) {
					eliminations = append(eliminations, core.Candidate{
						Row: idx / constants.GridSize, Col: idx % constants.GridSize, Digit: d,
					})
				}
			}
		}
		if len(eliminations) == 0 {
			continue
		}

		refs := ToCellRefs(combo)
		return &core.TechniqueData{
			Action:       constants.ActionEliminate,
			Targets:      refs,
			Eliminations: eliminations,
			Explanation:  fmt.Sprintf("Naked %s %s in %s %d at %s", subsetNames[k], FormatDigitsCompact(digits), unitType, unitNum, FormatRefs(refs)),
			Highlights:   core.Highlights{Primary: refs},
		}
	}
	return nil
}

// findHiddenSubset generalizes hidden pair/triplet/quad: k digits confined
// to the same k cells within a unit eliminate every other candidate from
// those k cells.
func findHiddenSubset(b BoardInterface, k int) *core.TechniqueData {
	for _, unit := range AllUnits() {
		if move := findHiddenSubsetInUnit(b, unit.Cells, unit.Type.String(), unit.Index+1, k); move != nil {
			return move
		}
	}
	return nil
}

func findHiddenSubsetInUnit(b BoardInterface, indices []int, unitType string, unitNum, k int) *core.TechniqueData {
	digitPositions := make(map[int][]int)
	var eligible []int
	for digit := 1; digit <= constants.GridSize; digit++ {
		for _, idx := range indices {
			if b.GetCandidatesAt(idx).Has(digit) {
				digitPositions[digit] = append(digitPositions[digit], idx)
			}
		}
		if n := len(digitPositions[digit]); n >= 2 && n <= k {
			eligible = append(eligible, digit)
		}
	}
	if len(eligible) < k {
		return nil
	}

	for _, combo := range Combinations(eligible, k) {
		cellSet := make(map[int]bool)
		for _, d := range combo {
			for _, idx := range digitPositions[d] {
				cellSet[idx] = true
			}
		}
		if len(cellSet) != k {
			continue
		}
		var cells []int
		for idx := range cellSet {
			cells = append(cells, idx)
		}
		sortIntsAsc(cells)

		var eliminations []core.Candidate
		for _, idx := range cells {
			for _, d := range b.GetCandidatesAt(idx).ToSlice() {
				if !ContainsInt(combo, d) {
					eliminations = append(eliminations, core.Candidate{
						Row: idx / constants.GridSize, Col: idx % constants.GridSize, Digit: d,
					})
				}
			}
		}
		if len(eliminations) == 0 {
			continue
		}

		refs := ToCellRefs(cells)
		return &core.TechniqueData{
			Action:       constants.ActionEliminate,
			Targets:      refs,
			Eliminations: eliminations,
			Explanation:  fmt.Sprintf("Hidden %s %s in %s %d at %s", subsetNames[k], FormatDigitsCompact(combo), unitType, unitNum, FormatRefs(refs)),
			Highlights:   core.Highlights{Primary: refs},
		}
	}
	return nil
}

func sortIntsAsc(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// DetectNakedPair finds two cells in a unit with the same two candidates.
func DetectNakedPair(b BoardInterface) *core.TechniqueData { return findNakedSubset(b, 2) }

// DetectNakedTriplet finds three cells in a unit whose combined candidates number three.
func DetectNakedTriplet(b BoardInterface) *core.TechniqueData { return findNakedSubset(b, 3) }

// DetectNakedQuad finds four cells in a unit whose combined candidates number four.
func DetectNakedQuad(b BoardInterface) *core.TechniqueData { return findNakedSubset(b, 4) }

// DetectNakedQuint finds five cells in a unit whose combined candidates number five.
func DetectNakedQuint(b BoardInterface) *core.TechniqueData { return findNakedSubset(b, 5) }

// DetectHiddenPair finds two digits confined to the same two cells within a unit.
func DetectHiddenPair(b BoardInterface) *core.TechniqueData { return findHiddenSubset(b, 2) }

// DetectHiddenTriplet finds three digits confined to the same three cells within a unit.
func DetectHiddenTriplet(b BoardInterface) *core.TechniqueData { return findHiddenSubset(b, 3) }

// DetectHiddenQuad finds four digits confined to the same four cells within a unit.
func DetectHiddenQuad(b BoardInterface) *core.TechniqueData { return findHiddenSubset(b, 4) }
