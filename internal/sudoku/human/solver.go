package human

import (
	"fmt"

	"github.com/kestrelsolve/humansolve/internal/core"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// State is the outcome of one solving pass over a board.
type State int

const (
	Unsolved State = iota
	Solved
	Conflicting
	Stuck
)

func (s State) String() string {
	switch s {
	case Solved:
		return "solved"
	case Conflicting:
		return "conflicting"
	case Stuck:
		return "stuck"
	default:
		return "unsolved"
	}
}

// Step records one technique application: the board state immediately after
// it ran, plus the technique metadata describing what changed and why.
type Step struct {
	BoardCopy     *Board
	TechniqueData core.TechniqueData
}

// Solver walks the fixed, ordered technique list against a board, applying
// sudoku-rule propagation and conflict detection after every successful step.
type Solver struct {
	registry *TechniqueRegistry
}

// NewSolver creates a solver with every technique enabled in its fixed order.
func NewSolver() *Solver {
	return &Solver{registry: NewTechniqueRegistry()}
}

// NewSolverWithRegistry creates a solver around a caller-supplied registry,
// useful for isolating individual techniques in tests.
func NewSolverWithRegistry(registry *TechniqueRegistry) *Solver {
	return &Solver{registry: registry}
}

// GetRegistry exposes the registry for enabling/disabling techniques.
func (s *Solver) GetRegistry() *TechniqueRegistry { return s.registry }

// SetTechniqueEnabled toggles a technique by slug.
func (s *Solver) SetTechniqueEnabled(slug string, enabled bool) bool {
	return s.registry.SetEnabled(slug, enabled)
}

// SolveNextStep performs one step of the solver driver:
//  1. clear every cell's step-eliminated marks and invalidate chain caches
//  2. walk the ordered technique list; the first technique to report
//     progress short-circuits the scan
//  3. if nothing made progress, report Conflicting if the board is already
//     in contradiction, Solved if it is complete, and Stuck otherwise
//  4. otherwise run sudoku-rule propagation and conflict detection
func (s *Solver) SolveNextStep(b *Board) (*Step, State) {
	b.ClearStepEliminated()

	var data *core.TechniqueData
	for _, t := range s.registry.Ordered() {
		if d := t.Detector(b); d != nil {
			d.Technique = t.Name
			if d.Refs.Title == "" {
				d.Refs = core.TechniqueRef{Title: t.Name, Slug: t.Slug, URL: fmt.Sprintf("/technique/%s", t.Slug)}
			}
			data = d
			break
		}
	}

	if data == nil {
		// No technique fired, but the board may already be in contradiction
		// (e.g. a duplicate given) without any technique needing to touch
		// it -- conflict detection always runs, not just after progress.
		if b.DetectConflicts() {
			return nil, Conflicting
		}
		if b.IsSolved() {
			return nil, Solved
		}
		return nil, Stuck
	}

	s.applyStep(b, data)
	b.ApplySudokuRules()

	if b.DetectConflicts() {
		return &Step{BoardCopy: b.Clone(), TechniqueData: *data}, Conflicting
	}
	if b.IsSolved() {
		return &Step{BoardCopy: b.Clone(), TechniqueData: *data}, Solved
	}
	return &Step{BoardCopy: b.Clone(), TechniqueData: *data}, Unsolved
}

// applyStep mutates the board according to a technique's action. Techniques
// that solve cells or eliminate candidates do so directly against b while
// detecting; this only covers the plain "assign"/"eliminate" actions that a
// basic-tier technique reports without mutating the board itself.
func (s *Solver) applyStep(b *Board, data *core.TechniqueData) {
	switch data.Action {
	case constants.ActionAssign:
		for _, target := range data.Targets {
			idx := target.Row*9 + target.Col
			if b.Cells[idx] == 0 {
				b.SetValue(idx, data.Digit, false)
			}
		}
	case constants.ActionEliminate:
		for _, elim := range data.Eliminations {
			b.EliminateCandidate(elim.Row*9+elim.Col, elim.Digit)
		}
	}
}

// Solve runs the driver until the board is solved, conflicting, or stuck, or
// maxSteps is reached, returning the full step transcript. An initial
// sudoku-rule propagation pass runs once before the first SolveNextStep
// call.
func (s *Solver) Solve(b *Board, maxSteps int) ([]Step, State) {
	b.ApplySudokuRules()
	if b.DetectConflicts() {
		return nil, Conflicting
	}
	if b.IsSolved() {
		return nil, Solved
	}

	var steps []Step
	for i := 0; i < maxSteps; i++ {
		step, state := s.SolveNextStep(b)
		if step != nil {
			step.TechniqueData.StepIndex = len(steps)
			steps = append(steps, *step)
		}
		if state != Unsolved {
			return steps, state
		}
	}
	return steps, Unsolved
}
