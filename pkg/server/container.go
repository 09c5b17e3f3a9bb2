package server

import (
	"fmt"

	"math-solver-api/internal/adapters/completion"
	"math-solver-api/internal/config"
	"math-solver-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	SolverService services.SolverService
	Secrets       config.SecretProvider

	// Internal dependencies
	client   completion.Client
	services *services.ServiceContainer
}

// Option overrides a dependency the container would otherwise build itself
type Option func(*containerOptions)

type containerOptions struct {
	client  completion.Client
	secrets config.SecretProvider
}

// WithCompletionClient makes the container use client instead of building
// one from the completion configuration
func WithCompletionClient(client completion.Client) Option {
	return func(o *containerOptions) {
		o.client = client
	}
}

// WithSecretProvider replaces the environment-backed secret provider
func WithSecretProvider(secrets config.SecretProvider) Option {
	return func(o *containerOptions) {
		o.secrets = secrets
	}
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	options := &containerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	secrets := options.secrets
	if secrets == nil {
		secrets = config.NewEnvSecretProvider()
	}

	client := options.client
	if client == nil {
		var err error
		client, err = completion.NewFactory().Create(&completion.ClientConfig{
			Provider: cfg.Completion.Provider,
			BaseURL:  cfg.OpenAI.BaseURL,
			Timeout:  cfg.OpenAI.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create completion client: %w", err)
		}
	}

	serviceConfig := &services.ServiceConfig{
		Solver: &services.SolverConfig{
			Model:       cfg.OpenAI.Model,
			Temperature: cfg.OpenAI.Temperature,
			MaxTokens:   cfg.OpenAI.MaxTokens,
			ModelLabel:  cfg.Solver.ModelLabel,
		},
	}

	serviceContainer, err := services.NewServiceContainer(client, secrets, serviceConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:        cfg,
		SolverService: serviceContainer.SolverService,
		Secrets:       secrets,
		client:        client,
		services:      serviceContainer,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}
	return nil
}
