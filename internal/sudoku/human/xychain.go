package human

import (
	"fmt"

	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// DetectXYChain finds an ordered chain of distinct bi-value cells where
// consecutive cells are peers sharing a "link candidate" that differs
// across consecutive pairs, and the endpoints share an "unconnected
// candidate" z eliminated from every cell that peers both endpoints.
func DetectXYChain(b *Board) *core.TechniqueData {
	bivalue := b.BivalueCells()

	var path []int
	var visited map[int]bool

	var search func(linkCandidate int) *core.TechniqueData
	search = func(linkCandidate int) *core.TechniqueData {
		cur := path[len(path)-1]
		for _, next := range bivalue {
			if visited[next] || !ArePeers(next, cur) {
				continue
			}
			nextCands := b.Candidates[next]
			if !nextCands.Has(linkCandidate) {
				continue
			}
			other, ok := nextCands.Subtract(NewCandidates([]int{linkCandidate})).Only()
			if !ok {
				continue
			}

			if len(path) >= 2 {
				start := path[0]
				startCands := b.Candidates[start]
				if startCands.Has(other) && other != linkCandidate {
					if td := tryCloseXYChain(b, path, next, other); td != nil {
						return td
					}
				}
			}

			path = append(path, next)
			visited[next] = true
			if td := search(other); td != nil {
				return td
			}
			path = path[:len(path)-1]
			visited[next] = false
		}
		return nil
	}

	for _, start := range bivalue {
		for _, linkCandidate := range b.Candidates[start].ToSlice() {
			path = []int{start}
			visited = map[int]bool{start: true}
			if td := search(linkCandidate); td != nil {
				return td
			}
		}
	}
	return nil
}

// tryCloseXYChain attempts to close the XY-Chain at `end` (one step beyond
// the current path) sharing unconnected candidate z with the start cell.
func tryCloseXYChain(b *Board, path []int, end, z int) *core.TechniqueData {
	start := path[0]
	if end == start {
		return nil
	}
	fullChain := append(append([]int{}, path...), end)

	var eliminations []core.Candidate
	for idx := 0; idx < 81; idx++ {
		if containsInt(fullChain, idx) {
			continue
		}
		if !b.Candidates[idx].Has(z) {
			continue
		}
		if ArePeers(idx, start) && ArePeers(idx, end) {
			if b.EliminateCandidate(idx, z) {
				eliminations = append(eliminations, MakeElimination(idx, z))
			}
		}
	}
	if len(eliminations) == 0 {
		return nil
	}
	return &core.TechniqueData{
		Technique:    "XY-Chain",
		Action:       constants.ActionEliminate,
		Digit:        z,
		Targets:      ToCellRefs(fullChain),
		Eliminations: eliminations,
		Explanation:  fmt.Sprintf("XY-Chain %s eliminates %d from cells seeing both endpoints", Labels(fullChain), z),
		Refs:         core.TechniqueRef{Title: "XY-Chain", Slug: "xy-chain", URL: "https://www.sudokuwiki.org/XY_Chains"},
		Highlights:   core.Highlights{Primary: ToCellRefs(fullChain)},
	}
}
