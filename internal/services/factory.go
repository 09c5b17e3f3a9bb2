package services

import (
	"fmt"

	"math-solver-api/internal/adapters/completion"
	"math-solver-api/internal/config"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	SolverService SolverService

	client completion.Client
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Solver *SolverConfig
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(client completion.Client, secrets config.SecretProvider, serviceConfig *ServiceConfig) (*ServiceContainer, error) {
	if client == nil {
		return nil, fmt.Errorf("completion client cannot be nil")
	}
	if secrets == nil {
		return nil, fmt.Errorf("secret provider cannot be nil")
	}

	if serviceConfig == nil {
		serviceConfig = &ServiceConfig{}
	}
	if serviceConfig.Solver == nil {
		serviceConfig.Solver = DefaultSolverConfig()
	}

	return &ServiceContainer{
		SolverService: NewSolverService(client, secrets, serviceConfig.Solver),
		client:        client,
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.SolverService == nil {
		return fmt.Errorf("solver service is nil")
	}
	return nil
}

// Close releases the completion client
func (sc *ServiceContainer) Close() error {
	if sc.client != nil {
		return sc.client.Close()
	}
	return nil
}
