package human

// chainMember is one singles chain (real or synthesized) participating in a
// SuperChain, along with whether its native coloring must be flipped to
// stay globally consistent with the rest of the super chain.
//
// A synthesized member (derivedFrom != nil) has no native coloring of its
// own: its single node's color is always the opposite of whatever color
// derivedFrom currently reports at derivedCell, computed on demand rather
// than baked in at creation time -- derivedFrom's own flip is only resolved
// later, during the super chain's BFS merge, so a snapshot taken at
// synthesis time could go stale the moment derivedFrom.flip changes.
type chainMember struct {
	digit       int
	chain       *SinglesChain
	flip        bool
	synthesized bool

	derivedFrom *chainMember
	derivedCell int
}

func (m *chainMember) colorAt(cell int) (int, bool) {
	if m.derivedFrom != nil {
		if cell != m.derivedCell {
			return 0, false
		}
		c, ok := m.derivedFrom.colorAt(m.derivedCell)
		if !ok {
			return 0, false
		}
		return 1 - c, true
	}
	c, ok := m.chain.Color[cell]
	if !ok {
		return 0, false
	}
	if m.flip {
		return 1 - c, true
	}
	return c, true
}

// SuperChain is a union of singles chains for different candidates, linked
// through bi-value cells, with a globally consistent 2-coloring: at every
// link cell the two colored candidates carry opposite colors.
type SuperChain struct {
	Members   []*chainMember
	LinkCells []int
}

// ColorAt returns the super chain's color for (cell, digit) and whether that
// pairing is a node of the super chain at all.
func (sc *SuperChain) ColorAt(cell, digit int) (int, bool) {
	for _, m := range sc.Members {
		if m.digit != digit {
			continue
		}
		if c, ok := m.colorAt(cell); ok {
			return c, true
		}
	}
	return 0, false
}

// CellDigitsColored returns every (cell, digit, color) triple this super
// chain colors -- i.e. its full node set across all component digits.
func (sc *SuperChain) CellDigitsColored() []struct {
	Cell, Digit, Color int
} {
	var out []struct{ Cell, Digit, Color int }
	for _, m := range sc.Members {
		for _, cell := range m.chain.Nodes {
			c, _ := m.colorAt(cell)
			out = append(out, struct{ Cell, Digit, Color int }{cell, m.digit, c})
		}
	}
	return out
}

// SuperChains returns (building and caching if necessary) the board's super
// chains: singles chains for different candidates merged across shared
// bi-value link cells.
func (b *Board) SuperChains() []*SuperChain {
	if b.chainsValid {
		return b.superChains
	}
	b.superChains = buildSuperChains(b)
	b.chainsValid = true
	return b.superChains
}

func buildSuperChains(b *Board) []*SuperChain {
	singles := b.SinglesChains()

	// instanceAt[digit][cell] -> the chainMember owning that node, for quick
	// lookup while discovering link cells.
	instanceAt := make(map[int]map[int]*chainMember)
	var allMembers []*chainMember
	for d := 1; d <= 9; d++ {
		instanceAt[d] = make(map[int]*chainMember)
		for _, sch := range singles[d] {
			m := &chainMember{digit: d, chain: sch}
			allMembers = append(allMembers, m)
			for _, n := range sch.Nodes {
				instanceAt[d][n] = m
			}
		}
	}

	adjacency := make(map[*chainMember]map[*chainMember]bool)
	addEdge := func(a, c *chainMember) {
		if a == c {
			return
		}
		if adjacency[a] == nil {
			adjacency[a] = make(map[*chainMember]bool)
		}
		if adjacency[c] == nil {
			adjacency[c] = make(map[*chainMember]bool)
		}
		adjacency[a][c] = true
		adjacency[c][a] = true
	}

	var synthesized []*chainMember
	for cell := 0; cell < 81; cell++ {
		if b.Candidates[cell].Count() != 2 {
			continue
		}
		digits := b.Candidates[cell].ToSlice()
		d1, d2 := digits[0], digits[1]
		m1, ok1 := instanceAt[d1][cell]
		m2, ok2 := instanceAt[d2][cell]

		switch {
		case ok1 && ok2:
			addEdge(m1, m2)
		case ok1 && !ok2:
			synth := synthesizeComplement(m1, cell, d2)
			synthesized = append(synthesized, synth)
			addEdge(m1, synth)
		case ok2 && !ok1:
			synth := synthesizeComplement(m2, cell, d1)
			synthesized = append(synthesized, synth)
			addEdge(m2, synth)
		}
	}
	allMembers = append(allMembers, synthesized...)

	visited := make(map[*chainMember]bool)
	var chains []*SuperChain
	for _, start := range allMembers {
		if visited[start] {
			continue
		}
		comp := []*chainMember{start}
		visited[start] = true
		queue := []*chainMember{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for nb := range adjacency[cur] {
				if !visited[nb] {
					visited[nb] = true
					comp = append(comp, nb)
					queue = append(queue, nb)
					resolveFlip(cur, nb)
				}
			}
		}

		realCount := 0
		for _, m := range comp {
			if !m.synthesized {
				realCount++
			}
		}
		if realCount < 2 {
			continue
		}

		sc := &SuperChain{Members: comp}
		sc.LinkCells = linkCellsOf(comp)
		chains = append(chains, sc)
	}
	return chains
}

func synthesizeComplement(existing *chainMember, cell, digit int) *chainMember {
	chain := &SinglesChain{
		Digit:     digit,
		Nodes:     []int{cell},
		Perimeter: true,
	}
	return &chainMember{digit: digit, chain: chain, synthesized: true, derivedFrom: existing, derivedCell: cell}
}

// resolveFlip sets nb.flip so that at every cell where both cur and nb are
// colored for their respective digits, their colors disagree (the super
// chain's global-consistency invariant). If cur and nb are colored at more
// than one shared cell and the requirements conflict, the first shared cell
// wins; per the coloring contract this is surfaced downstream by the
// coloring techniques rather than treated as a build failure.
func resolveFlip(cur, nb *chainMember) {
	if nb.synthesized {
		return // synthesized chains are already colored consistently at birth.
	}
	for _, cell := range cur.chain.Nodes {
		if _, ok := nb.chain.Color[cell]; !ok {
			continue
		}
		curColor, _ := cur.colorAt(cell)
		nbNative := nb.chain.Color[cell]
		// want curColor != (nbNative xor nb.flip)
		want := 1 - curColor
		if nbNative != want {
			nb.flip = true
		}
		return
	}
}

func linkCellsOf(members []*chainMember) []int {
	seen := make(map[int]bool)
	count := make(map[int]int)
	for _, m := range members {
		for _, n := range m.chain.Nodes {
			if !seen[n] {
				seen[n] = true
			}
			count[n]++
		}
	}
	var out []int
	for cell, c := range count {
		if c >= 2 {
			out = append(out, cell)
		}
	}
	sortInts(out)
	return out
}
