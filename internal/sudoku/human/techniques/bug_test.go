package techniques

import "testing"

// TestDetectBUG_AllThreeGroupsLocked builds a BUG+1 pattern by hand: cell 0
// has 3 candidates {5,6,7}, every other unsolved cell is bi-value, and
// candidate 5 occurs exactly 3 times in cell 0's row, column, and box all at
// once (cells 1,2 complete the row and box; cells 27,36 complete the
// column). DetectBUG must solve cell 0 with 5.
func TestDetectBUG_AllThreeGroupsLocked(t *testing.T) {
	fb := newFakeBoard()
	fb.unsolve(0, 5, 6, 7) // bugCell: row0,col0,box0
	fb.unsolve(1, 5, 9)    // row0 & box0
	fb.unsolve(2, 5, 9)    // row0 & box0
	fb.unsolve(27, 5, 9)   // col0, box3
	fb.unsolve(36, 5, 9)   // col0, box3

	got := DetectBUG(fb)
	if got == nil {
		t.Fatal("DetectBUG returned nil, want a BUG+1 resolution for cell 0")
	}
	if got.Digit != 5 {
		t.Errorf("Digit = %d, want 5", got.Digit)
	}
	if len(got.Targets) != 1 || got.Targets[0].Row != 0 || got.Targets[0].Col != 0 {
		t.Errorf("Targets = %+v, want [{0 0}]", got.Targets)
	}
}

// TestDetectBUG_RequiresAllThreeGroups is the regression test for the
// AND-vs-OR fix: candidate 5 is locked to exactly 3 cells in cell 0's row
// and box, but only 1 cell in its column (itself). Two of three groups
// satisfied must not be enough -- a deadly pattern needs every group to
// agree, or the "solution" may not be forced at all.
func TestDetectBUG_RequiresAllThreeGroups(t *testing.T) {
	fb := newFakeBoard()
	fb.unsolve(0, 5, 6, 7) // bugCell
	fb.unsolve(1, 5, 9)    // row0 & box0
	fb.unsolve(2, 5, 9)    // row0 & box0
	// No other cell in column 0 carries candidate 5: the column count for
	// digit 5 is 1 (cell 0 alone), not 3.

	if got := DetectBUG(fb); got != nil {
		t.Fatalf("DetectBUG fired with only 2 of 3 groups locked to 3: %+v", got)
	}
}

// TestDetectBUG_NoExtraCell returns nil when every unsolved cell is already
// bi-value (no BUG+1 candidate cell exists).
func TestDetectBUG_NoExtraCell(t *testing.T) {
	fb := newFakeBoard()
	fb.unsolve(0, 5, 6)
	fb.unsolve(1, 5, 9)

	if got := DetectBUG(fb); got != nil {
		t.Fatalf("DetectBUG fired with no 3-candidate cell: %+v", got)
	}
}

// TestDetectBUG_MultipleExtraCells returns nil when more than one cell
// deviates from bi-value -- not a BUG+1 shape.
func TestDetectBUG_MultipleExtraCells(t *testing.T) {
	fb := newFakeBoard()
	fb.unsolve(0, 5, 6, 7)
	fb.unsolve(1, 5, 6, 7)

	if got := DetectBUG(fb); got != nil {
		t.Fatalf("DetectBUG fired with two non-bivalue cells: %+v", got)
	}
}
