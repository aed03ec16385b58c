package techniques

import "testing"

// TestDetectUniqueRectangle_Type1 builds a Type 1 deadly pattern: cells
// (0,0), (0,3), (1,0) are bi-value {5,8} and span exactly two boxes with
// (1,3), which carries an extra candidate 3. Type 1 eliminates {5,8} from
// the fourth corner to break the deadly pattern.
func TestDetectUniqueRectangle_Type1(t *testing.T) {
	fb := newFakeBoard()
	fb.unsolve(0, 5, 8)     // R1C1, box 0
	fb.unsolve(3, 5, 8)     // R1C4, box 1
	fb.unsolve(9, 5, 8)     // R2C1, box 0
	fb.unsolve(12, 3, 5, 8) // R2C4, box 1: the extra corner

	got := DetectUniqueRectangle(fb)
	if got == nil {
		t.Fatal("DetectUniqueRectangle returned nil, want a Type 1 UR")
	}
	if !hasElimination(got.Eliminations, 1, 3, 5) || !hasElimination(got.Eliminations, 1, 3, 8) {
		t.Errorf("Eliminations = %+v, want both 5 and 8 eliminated from R2C4 (row 1, col 3)", got.Eliminations)
	}
}

// TestDetectUniqueRectangle_NoRectangleReturnsNil is the boundary case:
// fewer than 4 cells sharing a candidate pair can never form a rectangle.
func TestDetectUniqueRectangle_NoRectangleReturnsNil(t *testing.T) {
	fb := newFakeBoard()
	fb.unsolve(0, 5, 8)
	fb.unsolve(3, 5, 8)
	fb.unsolve(9, 5, 8)

	if got := DetectUniqueRectangle(fb); got != nil {
		t.Fatalf("DetectUniqueRectangle fired with only 3 candidate cells: %+v", got)
	}
}

// TestDetectUniqueRectangleType2_SameExtraInBothRoofCorners builds a Type 2
// deadly pattern: the floor corners (0,0) and (0,3) are bi-value {5,8}; the
// roof corners (1,0) and (1,3) both carry the same extra candidate 3. Any
// cell seeing both roof corners (here, R2C8, sharing row 1) cannot be 3
// either, since one of the two roof corners must hold it.
func TestDetectUniqueRectangleType2_SameExtraInBothRoofCorners(t *testing.T) {
	fb := newFakeBoard()
	fb.unsolve(0, 5, 8)     // R1C1, box 0: floor
	fb.unsolve(3, 5, 8)     // R1C4, box 1: floor
	fb.unsolve(9, 3, 5, 8)  // R2C1, box 0: roof, extra 3
	fb.unsolve(12, 3, 5, 8) // R2C4, box 1: roof, extra 3
	fb.unsolve(16, 3, 7)    // R2C8: sees both roof corners via row 1

	got := DetectUniqueRectangleType2(fb)
	if got == nil {
		t.Fatal("DetectUniqueRectangleType2 returned nil, want a Type 2 UR")
	}
	if got.Digit != 3 {
		t.Errorf("Digit = %d, want 3", got.Digit)
	}
	if !hasElimination(got.Eliminations, 1, 7, 3) {
		t.Errorf("Eliminations = %+v, want candidate 3 removed from R2C8 (row 1, col 7)", got.Eliminations)
	}
}

// TestDetectUniqueRectangleType3_PseudoCellFormsNakedPair builds a Type 3
// deadly pattern: the floor corners (1,0) and (1,3) are bi-value {5,8}; the
// roof corners (0,0) and (0,3) share row 0 and carry extras 3 and 2
// respectively. Combined, the roof corners' extras form the pseudo-cell
// {2,3}, which matches a real naked pair at R1C7 (also {2,3}) in the same
// row -- so 2 and 3 can be eliminated from every other row-0 cell, including
// R1C2.
func TestDetectUniqueRectangleType3_PseudoCellFormsNakedPair(t *testing.T) {
	fb := newFakeBoard()
	fb.unsolve(0, 5, 8, 3) // R1C1, box 0: roof, extra 3
	fb.unsolve(3, 5, 8, 2) // R1C4, box 1: roof, extra 2
	fb.unsolve(9, 5, 8)    // R2C1, box 0: floor
	fb.unsolve(12, 5, 8)   // R2C4, box 1: floor
	fb.unsolve(6, 2, 3)    // R1C7: real naked pair matching the pseudo-cell
	fb.unsolve(1, 2, 9)    // R1C2: sees the naked pair via row 0

	got := DetectUniqueRectangleType3(fb)
	if got == nil {
		t.Fatal("DetectUniqueRectangleType3 returned nil, want a Type 3 UR")
	}
	if !hasElimination(got.Eliminations, 0, 1, 2) {
		t.Errorf("Eliminations = %+v, want candidate 2 removed from R1C2 (row 0, col 1)", got.Eliminations)
	}
}

// TestDetectUniqueRectangleType4_RowConfined builds a Type 4 deadly pattern:
// the floor corners (0,0) and (0,3) are bi-value {5,8}; the roof corners
// (1,0) and (1,3) carry extra candidate 3 and share row 1, where candidate 5
// occurs nowhere else (R2C8 keeps 8 alive outside the UR). One roof corner
// must therefore be 5 -- so 8 in either roof corner would complete the
// deadly pattern, and it is eliminated from both.
func TestDetectUniqueRectangleType4_RowConfined(t *testing.T) {
	fb := newFakeBoard()
	fb.unsolve(0, 5, 8)     // R1C1, box 0: floor
	fb.unsolve(3, 5, 8)     // R1C4, box 1: floor
	fb.unsolve(9, 3, 5, 8)  // R2C1, box 0: roof
	fb.unsolve(12, 3, 5, 8) // R2C4, box 1: roof
	fb.unsolve(16, 8, 9)    // R2C8: keeps 8 from being confined to the UR in row 1

	got := DetectUniqueRectangleType4(fb)
	if got == nil {
		t.Fatal("DetectUniqueRectangleType4 returned nil, want a Type 4 UR")
	}
	if got.Digit != 8 {
		t.Errorf("Digit = %d, want 8", got.Digit)
	}
	if !hasElimination(got.Eliminations, 1, 0, 8) || !hasElimination(got.Eliminations, 1, 3, 8) {
		t.Errorf("Eliminations = %+v, want candidate 8 removed from both roof corners R2C1 and R2C4", got.Eliminations)
	}
}

// TestDetectUniqueRectangleType4_BoxConfined covers the shared-box variant:
// the roof corners (0,0) and (0,1) sit in the same box (and row), and the
// confinement only holds within the box -- R1C6 carries both UR candidates,
// so neither digit is confined to the UR in row 1, but within box 1 digit 5
// occurs only in the two roof corners while 8 survives at R2C2. The box is a
// genuinely separate 9-cell group from the shared row, and the elimination
// must still be found there.
func TestDetectUniqueRectangleType4_BoxConfined(t *testing.T) {
	fb := newFakeBoard()
	fb.unsolve(0, 2, 5, 8)  // R1C1, box 0: roof
	fb.unsolve(1, 3, 5, 8)  // R1C2, box 0: roof
	fb.unsolve(36, 5, 8)    // R5C1, box 3: floor
	fb.unsolve(37, 5, 8)    // R5C2, box 3: floor
	fb.unsolve(5, 5, 8, 9)  // R1C6: both UR digits live outside the UR in row 1
	fb.unsolve(10, 7, 8)    // R2C2, box 0: keeps 8 from being confined to the UR in the box

	got := DetectUniqueRectangleType4(fb)
	if got == nil {
		t.Fatal("DetectUniqueRectangleType4 returned nil, want a box-confined Type 4 UR")
	}
	if got.Digit != 8 {
		t.Errorf("Digit = %d, want 8", got.Digit)
	}
	if !hasElimination(got.Eliminations, 0, 0, 8) || !hasElimination(got.Eliminations, 0, 1, 8) {
		t.Errorf("Eliminations = %+v, want candidate 8 removed from both roof corners R1C1 and R1C2", got.Eliminations)
	}
}

// TestDetectUniqueRectangleType4_NotConfinedReturnsNil is the boundary case:
// both UR candidates survive outside the UR in every group the roof corners
// share, so nothing is confined and nothing fires.
func TestDetectUniqueRectangleType4_NotConfinedReturnsNil(t *testing.T) {
	fb := newFakeBoard()
	fb.unsolve(0, 5, 8)     // R1C1, box 0: floor
	fb.unsolve(3, 5, 8)     // R1C4, box 1: floor
	fb.unsolve(9, 3, 5, 8)  // R2C1, box 0: roof
	fb.unsolve(12, 3, 5, 8) // R2C4, box 1: roof
	fb.unsolve(16, 5, 8)    // R2C8: both UR digits live outside the UR in row 1

	if got := DetectUniqueRectangleType4(fb); got != nil {
		t.Fatalf("DetectUniqueRectangleType4 fired with neither digit confined: %+v", got)
	}
}
