package human

import "testing"

// TestApplyXCycleRule1_WeakLinkElimination exercises Rule 1 directly on a
// hand-built even loop (0-1 strong, 1-9 weak, 9-10 strong, 10-0 weak). Cell 2
// sits outside the loop but peers both endpoints of the 1-9 weak link
// (through row 0 and box 0), so it loses candidate 6.
func TestApplyXCycleRule1_WeakLinkElimination(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 2, 6, 9) // R1C3: outside the loop, peers both ends of the weak link

	loop := &NiceLoop{
		Digit:    6,
		Cells:    []int{0, 1, 9, 10, 0},
		IsStrong: []bool{true, false, true, false},
	}

	got := applyXCycleRule1(b, loop)
	if got == nil {
		t.Fatal("applyXCycleRule1 returned nil, want an elimination")
	}
	if got.Digit != 6 {
		t.Errorf("Digit = %d, want 6", got.Digit)
	}
	if len(got.Eliminations) != 1 || got.Eliminations[0].Row != 0 || got.Eliminations[0].Col != 2 || got.Eliminations[0].Digit != 6 {
		t.Errorf("Eliminations = %+v, want candidate 6 removed from R1C3", got.Eliminations)
	}
}

// TestApplyXCycleRule2_SolvesJunctionCell exercises Rule 2 directly: the
// cell straddling two adjacent strong links (StrongIdx+1) is solved with the
// loop's digit.
func TestApplyXCycleRule2_SolvesJunctionCell(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 6, 7, 2) // R1C7: the junction cell

	loop := &NiceLoop{
		Digit:     7,
		Cells:     []int{5, 6, 7, 5},
		StrongIdx: 0,
	}

	got := applyXCycleRule2(b, loop)
	if got == nil {
		t.Fatal("applyXCycleRule2 returned nil, want a solved cell")
	}
	if len(got.Solved) != 1 || got.Solved[0].Row != 0 || got.Solved[0].Col != 6 || got.Solved[0].Digit != 7 {
		t.Errorf("Solved = %+v, want R1C7 solved with 7", got.Solved)
	}
	if b.Cells[6] != 7 {
		t.Errorf("cell 6 = %d, want solved with 7", b.Cells[6])
	}
}

// TestApplyXCycleRule3_EliminatesJunctionCandidate exercises Rule 3 directly:
// the cell straddling two adjacent weak links (WeakIdx+1) loses the loop's
// digit.
func TestApplyXCycleRule3_EliminatesJunctionCandidate(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 21, 8, 3) // R3C4: the junction cell

	loop := &NiceLoop{
		Digit:   8,
		Cells:   []int{20, 21, 22, 20},
		WeakIdx: 0,
	}

	got := applyXCycleRule3(b, loop)
	if got == nil {
		t.Fatal("applyXCycleRule3 returned nil, want an elimination")
	}
	if len(got.Eliminations) != 1 || got.Eliminations[0].Row != 2 || got.Eliminations[0].Col != 3 || got.Eliminations[0].Digit != 8 {
		t.Errorf("Eliminations = %+v, want candidate 8 removed from R3C4", got.Eliminations)
	}
}

// TestDetectXCycle_NoStrongLinksReturnsNil is the boundary case: a board
// with no strong links on any digit has no nice loops to find.
func TestDetectXCycle_NoStrongLinksReturnsNil(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 0, 1, 2)

	if got := DetectXCycle(b); got != nil {
		t.Fatalf("DetectXCycle fired with no strong links present: %+v", got)
	}
}
