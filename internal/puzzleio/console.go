package puzzleio

import (
	"strings"

	"github.com/fatih/color"
)

// Console rendering constants for the plain digit-per-cell boxed diagram.
const (
	borderTop    = "┌───────┬───────┬───────┐"
	borderBot    = "└───────┴───────┴───────┘"
	dividerMinor = "├───────┼───────┼───────┤"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiWhite)
	solvedColor = color.New(color.Bold, color.FgHiYellow)
)

// RenderConsole draws a boxed 3x3 ASCII diagram of cells (0 = blank), with
// rows labeled A-I and columns labeled 1-9. Cells marked original are drawn
// in the "given" color; other solved cells are drawn in the "solved by
// engine" color; blank cells are drawn as a space.
func RenderConsole(cells []int, original []bool) string {
	var b strings.Builder

	b.WriteString("    1   2   3   4   5   6   7   8   9\n")
	b.WriteString("  " + borderTop + "\n")
	for row := 0; row < 9; row++ {
		if row != 0 {
			if row%3 == 0 {
				b.WriteString("  " + strings.ReplaceAll(dividerMinor, "─", "═") + "\n")
			} else {
				b.WriteString("  " + dividerMinor + "\n")
			}
		}
		b.WriteByte(byte('A' + row))
		b.WriteString(" ")
		for col := 0; col < 9; col++ {
			idx := row*9 + col
			if col%3 == 0 {
				b.WriteString("│ ")
			} else {
				b.WriteString(" ")
			}
			b.WriteString(cellGlyph(cells[idx], original[idx]))
			b.WriteString(" ")
		}
		b.WriteString("│\n")
	}
	b.WriteString("  " + borderBot + "\n")
	return b.String()
}

func cellGlyph(v int, isOriginal bool) string {
	if v == 0 {
		return " "
	}
	digit := string(rune('0' + v))
	if isOriginal {
		return givenColor.Sprint(digit)
	}
	return solvedColor.Sprint(digit)
}

// RenderSideBySide produces the "Original -> Solved/Conflicting/Unsolved"
// diagram the CLI prints after a solve: the input puzzle on the left, the
// final board (labeled by state) on the right.
func RenderSideBySide(originalCells []int, finalCells []int, finalOriginal []bool, stateLabel string) string {
	originalAllGiven := make([]bool, 81)
	for i, v := range originalCells {
		originalAllGiven[i] = v != 0
	}

	left := strings.Split(RenderConsole(originalCells, originalAllGiven), "\n")
	right := strings.Split(RenderConsole(finalCells, finalOriginal), "\n")

	var b strings.Builder
	b.WriteString(padRight("Original", 39) + "  " + stateLabel + "\n")
	for i := 0; i < len(left) || i < len(right); i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		b.WriteString(padRight(l, 39))
		b.WriteString("  ")
		b.WriteString(r)
		b.WriteString("\n")
	}
	return b.String()
}

func padRight(s string, n int) string {
	visible := visibleLen(s)
	if visible >= n {
		return s
	}
	return s + strings.Repeat(" ", n-visible)
}

// visibleLen approximates the printable width of s, ignoring ANSI escape
// sequences color.Sprint may have inserted.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == 0x1b:
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			n++
		}
	}
	return n
}
