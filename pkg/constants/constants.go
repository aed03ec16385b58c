// Package constants holds the small set of grid-shape and solver-limit
// constants shared across the engine and its collaborators.
package constants

// Grid constants
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
)

// Solver limits
const (
	MaxSolverSteps = 500
)

// Move actions, shared between the solver's applyStep switch and every
// technique that reports one of them in a TechniqueData.
const (
	ActionAssign    = "assign"
	ActionEliminate = "eliminate"
)

// API version
const APIVersion = "0.1.0"

// Default listen port for `humansolve serve`.
const DefaultPort = "8080"
