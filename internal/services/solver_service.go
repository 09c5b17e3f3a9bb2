package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"math-solver-api/internal/adapters/completion"
	"math-solver-api/internal/config"
	"math-solver-api/internal/metrics"
	"math-solver-api/internal/models"
)

// solverService implements the SolverService interface
type solverService struct {
	client  completion.Client
	secrets config.SecretProvider
	config  *SolverConfig
}

// DefaultSolverConfig returns the parameters used in production
func DefaultSolverConfig() *SolverConfig {
	return &SolverConfig{
		Model:       config.DefaultOpenAIModel,
		Temperature: config.DefaultTemperature,
		MaxTokens:   config.DefaultMaxTokens,
		ModelLabel:  config.DefaultModelLabel,
	}
}

// NewSolverService creates a new solver service instance
func NewSolverService(client completion.Client, secrets config.SecretProvider, solverConfig *SolverConfig) SolverService {
	if solverConfig == nil {
		solverConfig = DefaultSolverConfig()
	}
	return &solverService{
		client:  client,
		secrets: secrets,
		config:  solverConfig,
	}
}

// Solve implements SolverService.Solve
func (s *solverService) Solve(ctx context.Context, problem string) (*models.Solution, error) {
	problem = strings.TrimSpace(problem)
	if problem == "" {
		return nil, ErrProblemRequired
	}

	apiKey, err := s.secrets.GetSecret(ctx, config.OpenAIAPIKey)
	if err != nil {
		if errors.Is(err, config.ErrSecretNotFound) {
			return nil, ErrAPIKeyNotConfigured
		}
		return nil, fmt.Errorf("failed to read API key: %w", err)
	}

	req := &completion.Request{
		APIKey:      apiKey,
		Model:       s.config.Model,
		Messages:    buildMessages(problem),
		Temperature: s.config.Temperature,
		MaxTokens:   s.config.MaxTokens,
	}

	start := time.Now()
	result, err := s.client.Complete(ctx, req)
	latency := time.Since(start)

	if err != nil {
		kind := completion.KindOf(err)
		metrics.ObserveCompletion(string(kind), latency)
		logrus.WithFields(logrus.Fields{
			"error_kind": kind,
			"model":      s.config.Model,
			"latency_ms": float64(latency.Nanoseconds()) / 1000000,
			"error":      err.Error(),
		}).Error("Completion request failed")
		// Returned unwrapped: its text is shown to the caller as is
		return nil, err
	}

	metrics.ObserveCompletion(metrics.OutcomeSuccess, latency)
	metrics.ObserveTokens(result.Usage.PromptTokens, result.Usage.CompletionTokens)
	logrus.WithFields(logrus.Fields{
		"model":             result.Model,
		"finish_reason":     result.FinishReason,
		"prompt_tokens":     result.Usage.PromptTokens,
		"completion_tokens": result.Usage.CompletionTokens,
		"latency_ms":        float64(latency.Nanoseconds()) / 1000000,
	}).Debug("Completion received")

	return &models.Solution{
		Problem:         problem,
		Text:            result.Text,
		ModelLabel:      s.config.ModelLabel,
		CompletionModel: result.Model,
		FinishReason:    result.FinishReason,
		Usage: models.TokenUsage{
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			TotalTokens:      result.Usage.TotalTokens,
		},
	}, nil
}
