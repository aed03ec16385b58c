// Package puzzleio implements the external puzzle ingest/emit format:
// parsing an 81-character grid string or nine-line text into board givens,
// and rendering a board back to flat or console form.
//
// Nothing here knows about candidates or techniques; it only ever reads and
// writes the solved/blank digit at each of the 81 cells.
package puzzleio

import (
	"fmt"
	"strings"
)

// ParseGivens parses either a flat 81-character string or a nine-line text
// (lines separated by "\n" or "\r\n") into 81 givens (0 = blank). '0',
// '.', and ' ' are all accepted as blank; '1'-'9' are givens. Any other
// character, or a length other than exactly 81 data characters, is an error.
func ParseGivens(s string) ([]int, error) {
	if strings.ContainsAny(s, "\n\r") {
		lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
		// Trailing blank line from a terminating newline is tolerated.
		if len(lines) == 10 && lines[9] == "" {
			lines = lines[:9]
		}
		if len(lines) != 9 {
			return nil, fmt.Errorf("puzzleio: expected exactly 9 lines, got %d", len(lines))
		}
		var b strings.Builder
		for i, line := range lines {
			if len(line) != 9 {
				return nil, fmt.Errorf("puzzleio: line %d must have exactly 9 characters, got %d", i+1, len(line))
			}
			b.WriteString(line)
		}
		s = b.String()
	}

	if len(s) != 81 {
		return nil, fmt.Errorf("puzzleio: expected 81 data characters, got %d", len(s))
	}

	givens := make([]int, 81)
	for i, c := range s {
		switch {
		case c == '0' || c == '.' || c == ' ':
			givens[i] = 0
		case c >= '1' && c <= '9':
			givens[i] = int(c - '0')
		default:
			return nil, fmt.Errorf("puzzleio: invalid character %q at position %d", c, i)
		}
	}
	return givens, nil
}

// RenderFlat renders 81 cell values (0 = blank) as a flat string, using
// blankChar for unsolved cells (default '.' is the caller's job to pick) and
// inserting a newline every 9 characters when newlines is true.
func RenderFlat(cells []int, blankChar byte, newlines bool) string {
	var b strings.Builder
	b.Grow(90)
	for i, v := range cells {
		if v == 0 {
			b.WriteByte(blankChar)
		} else {
			b.WriteByte(byte('0' + v))
		}
		if newlines && i%9 == 8 && i != len(cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
