package human

import "testing"

// TestDetectMedusa_Rule4TwoColorsElsewhere links two single-digit chains
// through a bi-value cell into one super chain: a digit-2 chain (cells 0,1
// via a row-0 strong link) and a digit-5 chain (cells 0,9 via a column-0
// strong link), sharing cell 0 which carries exactly {2,5}. Coloring
// propagates opposite colors across the link, so cell 0 is colored 0 for
// digit 2 and 1 for digit 5, and cell 1 is colored 1 for digit 2. Cell 20
// shares box 0 with both cell 0 and cell 1 and carries candidate 2: it sees
// both colors of the digit-2 chain, so Rule 4 eliminates it.
func TestDetectMedusa_Rule4TwoColorsElsewhere(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 0, 2, 5)  // R1C1: the link cell, bi-value {2,5}
	unsolveCell(b, 1, 2)     // R1C2: row0 strong-link partner for digit 2
	unsolveCell(b, 9, 5)     // R2C1: col0 strong-link partner for digit 5
	unsolveCell(b, 20, 2, 7) // R3C3: off-chain, box0 peer of cells 0 and 1

	got := DetectMedusa(b)
	if got == nil {
		t.Fatal("DetectMedusa returned nil, want a Rule 4 elimination")
	}
	if got.Technique != "3D Medusa Rule 4" {
		t.Fatalf("Technique = %q, want %q (got %+v)", got.Technique, "3D Medusa Rule 4", got)
	}
	if got.Digit != 2 {
		t.Errorf("Digit = %d, want 2", got.Digit)
	}
	if len(got.Eliminations) != 1 || got.Eliminations[0].Row != 2 || got.Eliminations[0].Col != 2 || got.Eliminations[0].Digit != 2 {
		t.Errorf("Eliminations = %+v, want candidate 2 removed from R3C3", got.Eliminations)
	}
}

// TestDetectMedusa_Rule2TwiceInAGroup builds a digit-4 chain whose own
// 2-coloring is internally contradictory: cell 0 (the smallest id) links to
// cell 1 via a row-0 strong link, and cell 1 links to cell 10 via a
// column-1 strong link, so coloring alternates 0/1/0 along the path -- but
// cells 0 and 10 both sit in box 0, so the same color (0) recurs within a
// group on digit 4. Cell 1 is also bi-value {4,7} and links in a second
// real chain (digit 7, cells 1 and 2 via a row-0 strong link) so the super
// chain has the two real members Rule 2 requires. Rule 2 resolves the
// contradiction by solving every opposite-colored (color 1) cell across the
// whole super chain: cell 1 with 4, and cell 2 with 7.
func TestDetectMedusa_Rule2TwiceInAGroup(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 0, 4)     // R1C1, box0: digit-4 chain root
	unsolveCell(b, 1, 4, 7)  // R1C2, box0: digit-4/digit-7 link cell
	unsolveCell(b, 10, 4)    // R2C2, box0: digit-4 chain far end, shares box0 with cell 0
	unsolveCell(b, 2, 7)     // R1C3: digit-7 chain partner for cell 1

	got := DetectMedusa(b)
	if got == nil {
		t.Fatal("DetectMedusa returned nil, want a Rule 2 resolution")
	}
	if got.Technique != "3D Medusa Rule 2" {
		t.Fatalf("Technique = %q, want %q (got %+v)", got.Technique, "3D Medusa Rule 2", got)
	}
	if len(got.Solved) != 2 {
		t.Fatalf("Solved = %+v, want 2 cells solved", got.Solved)
	}
	wantSolved := map[[2]int]int{{0, 1}: 4, {0, 2}: 7}
	for _, s := range got.Solved {
		digit, ok := wantSolved[[2]int{s.Row, s.Col}]
		if !ok || digit != s.Digit {
			t.Errorf("unexpected solved cell %+v", s)
		}
	}
	if b.Cells[1] != 4 {
		t.Errorf("cell 1 = %d, want solved with 4", b.Cells[1])
	}
	if b.Cells[2] != 7 {
		t.Errorf("cell 2 = %d, want solved with 7", b.Cells[2])
	}
}
