package services

import (
	"context"
	"errors"

	"math-solver-api/internal/models"
)

// SolverService defines the interface for solving math problems
type SolverService interface {
	// Solve sends the problem to the completion service and returns the
	// generated step-by-step solution. The problem is trimmed first.
	Solve(ctx context.Context, problem string) (*models.Solution, error)
}

// Errors returned by SolverService before the completion service is called.
// Failures of the call itself are returned as *completion.Error.
var (
	ErrProblemRequired     = errors.New("problem description is required")
	ErrAPIKeyNotConfigured = errors.New("OpenAI API key not configured")
)

// SolverConfig holds the fixed parameters of every completion call
type SolverConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
	ModelLabel  string
}
