package human

// SinglesChain is a connected component of strong links on one candidate
// digit, 2-colored so that every edge (strong link) connects opposite
// colors. Built on demand per step and cached on the owning Board.
type SinglesChain struct {
	Digit int
	Nodes []int       // cell indices, node set of the chain
	Edges [][2]int    // strong-link edges between nodes
	Color map[int]int // cell index -> 0 (one color) or 1 (the other)

	ClosedLoop  bool // every node has >=2 incident edges
	Perimeter   bool // every node has exactly 2 incident edges
	Rectangular bool // perimeter && len(Nodes) == 4
}

// Color0 returns the nodes colored 0.
func (sc *SinglesChain) Color0() []int { return sc.nodesOfColor(0) }

// Color1 returns the nodes colored 1.
func (sc *SinglesChain) Color1() []int { return sc.nodesOfColor(1) }

func (sc *SinglesChain) nodesOfColor(c int) []int {
	var out []int
	for _, n := range sc.Nodes {
		if sc.Color[n] == c {
			out = append(out, n)
		}
	}
	return out
}

// ColorOf returns the color assigned to cell, and whether cell is a node of
// this chain at all.
func (sc *SinglesChain) ColorOf(cell int) (int, bool) {
	c, ok := sc.Color[cell]
	return c, ok
}

// SinglesChains returns (building and caching if necessary) all singles
// chains for every candidate digit, keyed by digit.
func (b *Board) SinglesChains() map[int][]*SinglesChain {
	if b.singlesChains != nil {
		return b.singlesChains
	}
	result := make(map[int][]*SinglesChain, 9)
	for d := 1; d <= 9; d++ {
		result[d] = buildSinglesChains(b, d)
	}
	b.singlesChains = result
	return result
}

// SinglesChainsFor returns the singles chains for one candidate digit.
func (b *Board) SinglesChainsFor(digit int) []*SinglesChain {
	return b.SinglesChains()[digit]
}

// strongLink is a pair of cells that are the only two occurrences of a digit
// in some group.
type strongLink struct{ a, b int }

// strongLinksFor enumerates every strong link for digit across all 27
// groups, deduplicated.
func strongLinksFor(b *Board, digit int) []strongLink {
	seen := make(map[[2]int]bool)
	var links []strongLink
	for _, unit := range AllUnits() {
		cells := b.CellsWithDigitInUnit(unit, digit)
		if len(cells) == 2 {
			a, c := cells[0], cells[1]
			if a > c {
				a, c = c, a
			}
			key := [2]int{a, c}
			if !seen[key] {
				seen[key] = true
				links = append(links, strongLink{a: a, b: c})
			}
		}
	}
	return links
}

func buildSinglesChains(b *Board, digit int) []*SinglesChain {
	links := strongLinksFor(b, digit)
	if len(links) == 0 {
		return nil
	}

	// Partition links into connected components by iterative merge on
	// shared-cell intersection.
	components := make([][]strongLink, len(links))
	for i, l := range links {
		components[i] = []strongLink{l}
	}
	merged := true
	for merged {
		merged = false
		for i := 0; i < len(components); i++ {
			if components[i] == nil {
				continue
			}
			for j := i + 1; j < len(components); j++ {
				if components[j] == nil {
					continue
				}
				if componentsShareCell(components[i], components[j]) {
					components[i] = append(components[i], components[j]...)
					components[j] = nil
					merged = true
				}
			}
		}
	}

	var chains []*SinglesChain
	for _, comp := range components {
		if comp == nil {
			continue
		}
		chains = append(chains, colorComponent(digit, comp))
	}
	return chains
}

func componentsShareCell(a, b []strongLink) bool {
	cells := make(map[int]bool)
	for _, l := range a {
		cells[l.a] = true
		cells[l.b] = true
	}
	for _, l := range b {
		if cells[l.a] || cells[l.b] {
			return true
		}
	}
	return false
}

func colorComponent(digit int, links []strongLink) *SinglesChain {
	adjacency := make(map[int][]int)
	nodeSet := make(map[int]bool)
	for _, l := range links {
		adjacency[l.a] = append(adjacency[l.a], l.b)
		adjacency[l.b] = append(adjacency[l.b], l.a)
		nodeSet[l.a] = true
		nodeSet[l.b] = true
	}

	nodes := make([]int, 0, len(nodeSet))
	for n := range nodeSet {
		nodes = append(nodes, n)
	}
	sortInts(nodes)

	color := make(map[int]int, len(nodes))
	visited := make(map[int]bool, len(nodes))
	if len(nodes) > 0 {
		queue := []int{nodes[0]}
		color[nodes[0]] = 0
		visited[nodes[0]] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range adjacency[cur] {
				if !visited[nb] {
					visited[nb] = true
					color[nb] = 1 - color[cur]
					queue = append(queue, nb)
				}
			}
		}
	}

	edges := make([][2]int, len(links))
	for i, l := range links {
		edges[i] = [2]int{l.a, l.b}
	}

	degree := make(map[int]int, len(nodes))
	for _, e := range edges {
		degree[e[0]]++
		degree[e[1]]++
	}
	closedLoop, perimeter := true, true
	for _, n := range nodes {
		if degree[n] < 2 {
			closedLoop = false
		}
		if degree[n] != 2 {
			perimeter = false
		}
	}

	return &SinglesChain{
		Digit:       digit,
		Nodes:       nodes,
		Edges:       edges,
		Color:       color,
		ClosedLoop:  closedLoop,
		Perimeter:   perimeter,
		Rectangular: perimeter && len(nodes) == 4,
	}
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
