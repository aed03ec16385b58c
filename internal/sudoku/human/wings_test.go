package human

import "testing"

// TestDetectYWing_ClassicPattern builds a textbook Y-Wing: the pivot (cell
// 0, {1,2}) peers two bi-value wings that each share one of the pivot's
// candidates and agree on a third "wing candidate" (3) that the pivot
// itself does not carry. Cell 9 peers both wings (through box 0 and column
// 0 respectively) and carries candidate 3, so it is eliminated.
func TestDetectYWing_ClassicPattern(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 0, 1, 2)  // R1C1: pivot
	unsolveCell(b, 1, 1, 3)  // R1C2: row0 peer of pivot, wing candidate 3
	unsolveCell(b, 27, 2, 3) // R4C1: col0 peer of pivot, wing candidate 3
	unsolveCell(b, 9, 3, 4)  // R2C1: sees both wings, carries candidate 3

	got := DetectYWing(b)
	if got == nil {
		t.Fatal("DetectYWing returned nil, want a Y-Wing elimination")
	}
	if got.Digit != 3 {
		t.Errorf("Digit = %d, want 3", got.Digit)
	}
	if len(got.Eliminations) != 1 || got.Eliminations[0].Row != 1 || got.Eliminations[0].Col != 0 || got.Eliminations[0].Digit != 3 {
		t.Errorf("Eliminations = %+v, want candidate 3 removed from R2C1", got.Eliminations)
	}
}

// TestDetectYWing_NoWingReturnsNil is the boundary case: a lone bi-value
// cell with no peer sharing a candidate can never form a wing.
func TestDetectYWing_NoWingReturnsNil(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 0, 1, 2)

	if got := DetectYWing(b); got != nil {
		t.Fatalf("DetectYWing fired with a single bi-value cell: %+v", got)
	}
}

// TestDetectXYZWing_LinkCellCarriesSharedCandidate builds a textbook
// XYZ-Wing: the 3-candidate link (cell 0, {1,2,3}) peers two bi-value wings
// that each share one of the link's other candidates with it and agree on
// wing candidate 3, which the link cell -- unlike a Y-Wing's pivot -- also
// carries. Cell 9 peers both wings and the link (through box 0 and column 0)
// and carries candidate 3, so it is eliminated.
func TestDetectXYZWing_LinkCellCarriesSharedCandidate(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 0, 1, 2, 3) // R1C1: link, carries the shared candidate 3
	unsolveCell(b, 1, 1, 3)    // R1C2: row0 peer of link, wing candidate 3
	unsolveCell(b, 27, 2, 3)   // R4C1: col0 peer of link, wing candidate 3
	unsolveCell(b, 9, 3, 9)    // R2C1: sees link and both wings, carries candidate 3

	got := DetectXYZWing(b)
	if got == nil {
		t.Fatal("DetectXYZWing returned nil, want an XYZ-Wing elimination")
	}
	if got.Digit != 3 {
		t.Errorf("Digit = %d, want 3", got.Digit)
	}
	if len(got.Eliminations) != 1 || got.Eliminations[0].Row != 1 || got.Eliminations[0].Col != 0 || got.Eliminations[0].Digit != 3 {
		t.Errorf("Eliminations = %+v, want candidate 3 removed from R2C1", got.Eliminations)
	}
}
