// Package http registers the optional solve-as-a-service HTTP transport: a
// single solve endpoint and a liveness probe. There is no session or auth
// layer; solving is a pure function of the posted puzzle string.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kestrelsolve/humansolve/internal/puzzleio"
	"github.com/kestrelsolve/humansolve/internal/sudoku/human"
	"github.com/kestrelsolve/humansolve/internal/transcript"
	"github.com/kestrelsolve/humansolve/pkg/config"
	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// RegisterRoutes wires the engine's HTTP surface onto r.
func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	r.GET("/healthz", healthHandler)

	api := r.Group("/api/v1")
	{
		api.POST("/solve", solveHandler(cfg))
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// SolveRequest is the body of POST /api/v1/solve.
type SolveRequest struct {
	Puzzle string `json:"puzzle" binding:"required"`
}

// SolveResponse reports the outcome of a solve: the final board, its state,
// and the full step transcript.
type SolveResponse struct {
	State       string `json:"state"`
	Cells       []int  `json:"cells"`
	Conflicting []int  `json:"conflicting,omitempty"`
	Steps       int    `json:"steps"`
	Transcript  string `json:"transcript"`
}

func solveHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SolveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		givens, err := puzzleio.ParseGivens(req.Puzzle)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		original := human.NewBoard(givens)
		board := human.NewBoard(givens)
		solver := human.NewSolver()

		maxSteps := cfg.MaxSolverSteps
		if maxSteps <= 0 {
			maxSteps = constants.MaxSolverSteps
		}
		steps, state := solver.Solve(board, maxSteps)

		var conflicting []int
		for i, c := range board.Conflicting {
			if c {
				conflicting = append(conflicting, i)
			}
		}

		c.JSON(http.StatusOK, SolveResponse{
			State:       state.String(),
			Cells:       board.GetCells(),
			Conflicting: conflicting,
			Steps:       len(steps),
			Transcript:  transcript.Build(original, steps, board, state),
		})
	}
}
