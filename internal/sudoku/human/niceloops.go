package human

// NiceLoopRule classifies a closed loop by its strong/weak link alternation
// pattern.
type NiceLoopRule int

const (
	NiceLoopNone NiceLoopRule = iota
	NiceLoopRule1              // even length, strict strong/weak alternation
	NiceLoopRule2              // odd length, one pair of adjacent strong links
	NiceLoopRule3              // odd length, one pair of adjacent weak links
)

// NiceLoop is an ordered closed chain of cells on one candidate digit,
// classified by its link pattern.
type NiceLoop struct {
	Digit     int
	Cells     []int  // ordered, start repeated at the end
	IsStrong  []bool // IsStrong[i] describes the link between Cells[i] and Cells[i+1]
	Rule      NiceLoopRule
	StrongIdx int // for Rule2: index of the first of the two adjacent strong links
	WeakIdx   int // for Rule3: index of the first of the two adjacent weak links
}

// cellSetKey canonicalizes a loop's cell set (independent of start/direction)
// for duplicate suppression.
func cellSetKey(cells []int) string {
	uniq := make([]int, len(cells))
	copy(uniq, cells)
	if len(uniq) > 0 && uniq[0] == uniq[len(uniq)-1] {
		uniq = uniq[:len(uniq)-1]
	}
	sortInts(uniq)
	key := make([]byte, 0, len(uniq)*3)
	for _, c := range uniq {
		key = append(key, byte(c/81), byte(c%81/9), byte(c%9))
	}
	return string(key)
}

// FindNiceLoops enumerates all nice loops for digit by on-the-fly recursive
// strong-link extension: loops are discovered and classified as the search
// closes them, rather than by enumerating every candidate cycle up front.
func (b *Board) FindNiceLoops(digit int) []*NiceLoop {
	links := strongLinksFor(b, digit)
	if len(links) == 0 {
		return nil
	}

	strong := make(map[[2]int]bool)
	for _, l := range links {
		strong[[2]int{l.a, l.b}] = true
		strong[[2]int{l.b, l.a}] = true
	}

	allCells := b.CellsWithCandidate(digit)

	seen := make(map[string]bool)
	var loops []*NiceLoop

	var extend func(path []int, isStrong []bool, start int)
	extend = func(path []int, isStrong []bool, start int) {
		cur := path[len(path)-1]

		if len(path) >= 5 && cur == start {
			cellsNoDup := path
			if !seen[cellSetKey(cellsNoDup)] {
				if loop := classifyLoop(digit, path, isStrong); loop != nil {
					seen[cellSetKey(cellsNoDup)] = true
					loops = append(loops, loop)
				}
			}
			return
		}
		if cur == start && len(path) > 1 {
			return // closed too early to be a valid loop
		}

		// abort branches with >=3 consecutive weak links at the tail
		tailWeak := 0
		for i := len(isStrong) - 1; i >= 0 && !isStrong[i]; i-- {
			tailWeak++
		}
		if tailWeak >= 3 {
			return
		}
		if len(path) > 81 {
			return // a chain cannot exceed 81 cells
		}

		for _, next := range allCells {
			if next == cur {
				continue
			}
			if !ArePeers(next, cur) {
				continue
			}
			if next != start && containsInt(path, next) {
				continue
			}
			linkIsStrong := strong[[2]int{cur, next}]
			extend(append(append([]int{}, path...), next), append(append([]bool{}, isStrong...), linkIsStrong), start)
		}
	}

	for _, l := range links {
		extend([]int{l.a, l.b}, []bool{true}, l.a)
		extend([]int{l.b, l.a}, []bool{true}, l.b)
	}

	return loops
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// classifyLoop assigns a closed loop its Rule 1/2/3 classification,
// rejecting loops with more than one pair of adjacent weak links, three or
// more consecutive weak links anywhere, or zero weak links.
func classifyLoop(digit int, cells []int, isStrong []bool) *NiceLoop {
	n := len(isStrong)
	weakCount := 0
	for _, s := range isStrong {
		if !s {
			weakCount++
		}
	}
	if weakCount == 0 {
		return nil
	}

	adjacentWeakPairs := 0
	adjacentStrongPairs := 0
	weakIdx, strongIdx := -1, -1
	consecutiveWeak := 0
	maxConsecutiveWeak := 0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if !isStrong[i] && !isStrong[j] {
			adjacentWeakPairs++
			weakIdx = i
		}
		if isStrong[i] && isStrong[j] {
			adjacentStrongPairs++
			strongIdx = i
		}
		if !isStrong[i] {
			consecutiveWeak++
			if consecutiveWeak > maxConsecutiveWeak {
				maxConsecutiveWeak = consecutiveWeak
			}
		} else {
			consecutiveWeak = 0
		}
	}
	if maxConsecutiveWeak >= 3 {
		return nil
	}
	if adjacentWeakPairs > 1 {
		return nil
	}

	loop := &NiceLoop{Digit: digit, Cells: cells, IsStrong: isStrong}

	if n%2 == 0 && adjacentWeakPairs == 0 && adjacentStrongPairs == 0 {
		loop.Rule = NiceLoopRule1
		return loop
	}
	if n%2 == 1 && adjacentStrongPairs == 1 && adjacentWeakPairs == 0 {
		loop.Rule = NiceLoopRule2
		loop.StrongIdx = strongIdx
		return loop
	}
	if n%2 == 1 && adjacentWeakPairs == 1 && adjacentStrongPairs == 0 {
		loop.Rule = NiceLoopRule3
		loop.WeakIdx = weakIdx
		return loop
	}
	return nil
}
