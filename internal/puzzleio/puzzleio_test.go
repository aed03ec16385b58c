package puzzleio

import "testing"

func TestParseGivens_Flat(t *testing.T) {
	input := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	givens, err := ParseGivens(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(givens) != 81 {
		t.Fatalf("expected 81 givens, got %d", len(givens))
	}
	if givens[0] != 5 || givens[1] != 3 || givens[2] != 0 {
		t.Errorf("unexpected leading givens: %v", givens[:3])
	}
}

func TestParseGivens_NineLines(t *testing.T) {
	text := "53..7....\n6..195...\n.98....6.\n8...6...3\n4..8.3..1\n7...2...6\n.6....28.\n...419..5\n....8..79"
	givens, err := ParseGivens(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flatWant, _ := ParseGivens("53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
	for i := range givens {
		if givens[i] != flatWant[i] {
			t.Fatalf("nine-line parse diverges from flat parse at cell %d: %d vs %d", i, givens[i], flatWant[i])
		}
	}
}

func TestParseGivens_BlankVariants(t *testing.T) {
	base := make([]byte, 81)
	for i := range base {
		base[i] = '1'
	}
	base[0] = '0'
	base[1] = '.'
	base[2] = ' '

	givens, err := ParseGivens(string(base))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if givens[0] != 0 || givens[1] != 0 || givens[2] != 0 {
		t.Errorf("expected all three blank markers to parse as 0, got %v", givens[:3])
	}
}

func TestParseGivens_Errors(t *testing.T) {
	cases := []string{
		"too short",
		"53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8x.79", // invalid char
		"53..7....\n6..195...\n.98....6.\n8...6...3\n4..8.3..1\n7...2...6\n.6....28.\n...419..5", // only 8 lines
	}
	for _, c := range cases {
		if _, err := ParseGivens(c); err == nil {
			t.Errorf("expected an error for input %q", c)
		}
	}
}

// TestRoundTrip: rendering a board to flat form and parsing it back
// reproduces the same givens.
func TestRoundTrip(t *testing.T) {
	input := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	givens, err := ParseGivens(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flat := RenderFlat(givens, '.', false)
	roundTripped, err := ParseGivens(flat)
	if err != nil {
		t.Fatalf("round-tripped string failed to parse: %v", err)
	}
	for i := range givens {
		if givens[i] != roundTripped[i] {
			t.Fatalf("round-trip diverges at cell %d: %d vs %d", i, givens[i], roundTripped[i])
		}
	}
}

func TestRenderFlat_Newlines(t *testing.T) {
	cells := make([]int, 81)
	flat := RenderFlat(cells, '.', true)
	if len(flat) != 81+8 {
		t.Fatalf("expected 8 inserted newlines, got length %d", len(flat))
	}
}
