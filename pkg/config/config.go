// Package config loads the solver/server/batch runtime knobs from the
// environment.
package config

import (
	"os"
	"strconv"

	"github.com/kestrelsolve/humansolve/pkg/constants"
)

// Config holds the settings shared by the `serve` and `evaluate` subcommands.
type Config struct {
	Port            string // listen address for `humansolve serve`
	MaxSolverSteps  int    // per-puzzle step cap passed to Solver.Solve
	EvaluateWorkers int    // worker-pool size for `humansolve evaluate`; 0 = runtime.NumCPU()
	BlankChar       byte   // default blank character for flat puzzle output
}

// Load reads configuration from environment variables, falling back to
// sensible defaults for a CLI tool that mostly runs unconfigured.
func Load() (*Config, error) {
	maxSteps, err := getEnvInt("HUMANSOLVE_MAX_STEPS", constants.MaxSolverSteps)
	if err != nil {
		return nil, err
	}
	workers, err := getEnvInt("HUMANSOLVE_EVALUATE_WORKERS", 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            getEnv("PORT", constants.DefaultPort),
		MaxSolverSteps:  maxSteps,
		EvaluateWorkers: workers,
		BlankChar:       '.',
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	return strconv.Atoi(val)
}
