package human

import "testing"

// TestDetectWXYZWing_NonRestrictedDigitEliminated builds a 4-cell WXYZ-Wing
// drawn from box 0 plus row 3: cells 0, 1, 9 sit in box 0 and each pair
// candidate 9 with one of 1, 2, 3; cell 27 (row 3, column 0) carries all
// three of 1, 2, 3. Their combined candidates are exactly {1,2,3,9}. Digits
// 1, 3, and 9 are each confined to mutually-peering cells (restricted), but
// digit 2 is not -- cell 1 and cell 27 both carry it and are not peers --
// so digit 2 is the non-restricted common digit. Cell 28 sees both carriers
// of digit 2 (column 1 with cell 1, row 3 with cell 27), so it is
// eliminated.
func TestDetectWXYZWing_NonRestrictedDigitEliminated(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 0, 1, 9)     // R1C1, box0
	unsolveCell(b, 1, 2, 9)     // R1C2, box0
	unsolveCell(b, 9, 3, 9)     // R2C1, box0
	unsolveCell(b, 27, 1, 2, 3) // R4C1, row3/col0
	unsolveCell(b, 28, 2, 7)    // R4C2: sees cell 1 (col1) and cell 27 (row3)

	got := DetectWXYZWing(b)
	if got == nil {
		t.Fatal("DetectWXYZWing returned nil, want a WXYZ-Wing elimination")
	}
	if got.Digit != 2 {
		t.Errorf("Digit = %d, want 2", got.Digit)
	}
	if len(got.Eliminations) != 1 || got.Eliminations[0].Row != 3 || got.Eliminations[0].Col != 1 || got.Eliminations[0].Digit != 2 {
		t.Errorf("Eliminations = %+v, want candidate 2 removed from R4C2", got.Eliminations)
	}
}
