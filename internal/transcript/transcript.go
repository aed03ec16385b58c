// Package transcript renders a solver run into a human-readable step log:
// one header per step, a natural-language description, the cells and
// candidates the technique reasoned over, and what it changed. This is pure
// presentation over the engine's already-computed Step log -- it mutates
// nothing.
package transcript

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/internal/sudoku/human"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// Build renders the full transcript for a solve run: one block per step,
// followed by the original and final puzzle strings.
func Build(original *human.Board, steps []human.Step, final *human.Board, state human.State) string {
	var b strings.Builder

	for i, step := range steps {
		writeStep(&b, i, step.TechniqueData)
	}

	b.WriteString("Original Puzzle: ")
	b.WriteString(flatten(original))
	b.WriteString("\n")

	switch state {
	case human.Solved:
		b.WriteString("Solved Puzzle:   ")
	case human.Conflicting:
		b.WriteString("Conflicting Puzzle: ")
	default:
		b.WriteString("Unsolved Puzzle: ")
	}
	b.WriteString(flatten(final))
	b.WriteString("\n")

	return b.String()
}

func flatten(b *human.Board) string {
	cells := b.GetCells()
	out := make([]byte, 81)
	for i, v := range cells {
		if v == 0 {
			out[i] = '0'
		} else {
			out[i] = byte('0' + v)
		}
	}
	return string(out)
}

func writeStep(b *strings.Builder, index int, data core.TechniqueData) {
	fmt.Fprintf(b, "Step %d: %s\n", index, data.Technique)

	if data.Explanation != "" {
		b.WriteString(data.Explanation)
		b.WriteString("\n")
	}

	cells := techniqueCells(data)
	fmt.Fprintf(b, "Technique cells: %s\n", formatRefs(cells))

	candidates := techniqueCandidates(data)
	fmt.Fprintf(b, "Technique candidates: %s\n", formatDigits(candidates))

	changed := changedCells(data)
	fmt.Fprintf(b, "Changed cells: %s\n", formatRefs(changed))

	for _, line := range eliminationLines(data) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(data.Solved) > 0 {
		fmt.Fprintf(b, "Solved cell(s): %s\n", formatSolved(data.Solved))
	}

	b.WriteString("\n")
}

func formatSolved(solved []core.Candidate) string {
	parts := make([]string, len(solved))
	for i, c := range solved {
		parts[i] = fmt.Sprintf("%s=%d", labelOf(core.CellRef{Row: c.Row, Col: c.Col}), c.Digit)
	}
	return strings.Join(parts, ", ")
}

// techniqueCells returns the cells the technique reasoned over: its
// highlighted primary and secondary cells, deduplicated.
func techniqueCells(data core.TechniqueData) []core.CellRef {
	seen := make(map[core.CellRef]bool)
	var out []core.CellRef
	for _, r := range append(append([]core.CellRef{}, data.Highlights.Primary...), data.Highlights.Secondary...) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// techniqueCandidates returns the digits the technique's reasoning and
// eliminations collectively involve.
func techniqueCandidates(data core.TechniqueData) []int {
	seen := make(map[int]bool)
	if data.Digit != 0 {
		seen[data.Digit] = true
	}
	for _, e := range data.Eliminations {
		seen[e.Digit] = true
	}
	digits := make([]int, 0, len(seen))
	for d := range seen {
		digits = append(digits, d)
	}
	sort.Ints(digits)
	return digits
}

// changedCells returns the cells the technique actually mutated: its assign
// target, or the cells it eliminated candidates from, plus any cells it
// solved outright.
func changedCells(data core.TechniqueData) []core.CellRef {
	seen := make(map[core.CellRef]bool)
	var out []core.CellRef
	if data.Action == constants.ActionAssign {
		for _, t := range data.Targets {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	for _, e := range data.Eliminations {
		ref := core.CellRef{Row: e.Row, Col: e.Col}
		if !seen[ref] {
			seen[ref] = true
			out = append(out, ref)
		}
	}
	for _, s := range data.Solved {
		ref := core.CellRef{Row: s.Row, Col: s.Col}
		if !seen[ref] {
			seen[ref] = true
			out = append(out, ref)
		}
	}
	return out
}

// eliminationLines produces one "Eliminated candidate d from cell(s) ..."
// line per distinct eliminated digit, grouping the cells it was removed
// from.
func eliminationLines(data core.TechniqueData) []string {
	if len(data.Eliminations) == 0 {
		return nil
	}
	byDigit := make(map[int][]core.CellRef)
	var digits []int
	for _, e := range data.Eliminations {
		if _, ok := byDigit[e.Digit]; !ok {
			digits = append(digits, e.Digit)
		}
		byDigit[e.Digit] = append(byDigit[e.Digit], core.CellRef{Row: e.Row, Col: e.Col})
	}
	sort.Ints(digits)

	lines := make([]string, 0, len(digits))
	for _, d := range digits {
		lines = append(lines, fmt.Sprintf("Eliminated candidate %d from cell(s) %s", d, formatRefs(byDigit[d])))
	}
	return lines
}

func formatRefs(refs []core.CellRef) string {
	if len(refs) == 0 {
		return "none"
	}
	labels := make([]string, len(refs))
	for i, r := range refs {
		labels[i] = labelOf(r)
	}
	return strings.Join(labels, ", ")
}

func formatDigits(digits []int) string {
	if len(digits) == 0 {
		return "none"
	}
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, ", ")
}

// labelOf renders a CellRef in row-letter/column-digit form, e.g. "E4".
func labelOf(r core.CellRef) string {
	return string(rune('A'+r.Row)) + string(rune('1'+r.Col))
}
