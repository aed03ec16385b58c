package human

import "testing"

// TestDetectXYChain_ThreeCellChain builds the textbook 3-cell XY-Chain: cell
// 0 {1,2} and cell 1 {2,3} are row-0 peers sharing candidate 2; cell 1 and
// cell 9 {1,3} are box-0 peers sharing candidate 3; the chain closes because
// cell 9's remaining candidate (1) matches one of the start cell's own
// candidates. Cell 18 shares column 0 (and box 0) with both endpoints and
// carries candidate 1, so the chain eliminates it.
func TestDetectXYChain_ThreeCellChain(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 0, 1, 2)  // R1C1: start
	unsolveCell(b, 1, 2, 3)  // R1C2: row0 peer of start, shares candidate 2
	unsolveCell(b, 9, 1, 3)  // R2C1: box0 peer of cell 1, shares candidate 3
	unsolveCell(b, 18, 1)    // R3C1: sees both endpoints, carries candidate 1

	got := DetectXYChain(b)
	if got == nil {
		t.Fatal("DetectXYChain returned nil, want a 3-cell XY-Chain")
	}
	if got.Digit != 1 {
		t.Errorf("Digit = %d, want 1", got.Digit)
	}
	if len(got.Eliminations) != 1 || got.Eliminations[0].Row != 2 || got.Eliminations[0].Col != 0 || got.Eliminations[0].Digit != 1 {
		t.Errorf("Eliminations = %+v, want candidate 1 removed from R3C1", got.Eliminations)
	}
}

// TestDetectXYChain_NoChainReturnsNil is the boundary case: a single
// bi-value cell with no peer sharing a candidate can never start a chain.
func TestDetectXYChain_NoChainReturnsNil(t *testing.T) {
	b := newAllSolvedBoard()
	unsolveCell(b, 0, 1, 2)

	if got := DetectXYChain(b); got != nil {
		t.Fatalf("DetectXYChain fired with a single bi-value cell: %+v", got)
	}
}
