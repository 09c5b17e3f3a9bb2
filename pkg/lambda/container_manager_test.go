package lambda

import (
	"context"
	"testing"
	"time"

	"math-solver-api/internal/config"
)

func mockProviderConfig() *config.Config {
	return &config.Config{
		Environment: config.EnvTest,
		Port:        "8081",
		LogLevel:    config.LogLevelInfo,
		OpenAI: config.OpenAIConfig{
			BaseURL:     config.DefaultOpenAIBaseURL,
			Model:       config.DefaultOpenAIModel,
			Temperature: config.DefaultTemperature,
			MaxTokens:   config.DefaultMaxTokens,
			Timeout:     time.Second,
		},
		Completion: config.CompletionConfig{Provider: config.ProviderMock},
		Solver:     config.SolverConfig{ModelLabel: config.DefaultModelLabel},
	}
}

func TestContainerManager(t *testing.T) {
	cm := &ContainerManager{}

	if cm.IsHealthy() {
		t.Error("Uninitialized manager should not be healthy")
	}

	if err := cm.Initialize(nil); err == nil {
		t.Error("Expected error for nil config")
	}

	if err := cm.Initialize(mockProviderConfig()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	first, err := cm.GetContainer(context.Background())
	if err != nil {
		t.Fatalf("GetContainer failed: %v", err)
	}
	second, err := cm.GetContainer(context.Background())
	if err != nil {
		t.Fatalf("GetContainer failed: %v", err)
	}
	if first != second {
		t.Error("Warm invocations should reuse the container")
	}
	if cm.Invocations() != 2 {
		t.Errorf("Expected 2 invocations, got %d", cm.Invocations())
	}
	if !cm.IsHealthy() {
		t.Error("Manager should be healthy after use")
	}

	// A second Initialize keeps the existing container
	if err := cm.Initialize(mockProviderConfig()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	third, _ := cm.GetContainer(context.Background())
	if third != first {
		t.Error("Initialize should not replace a live container")
	}

	if err := cm.Cleanup(); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if cm.IsHealthy() {
		t.Error("Manager should not be healthy after cleanup")
	}
	if cm.Invocations() != 0 {
		t.Error("Cleanup should reset the invocation count")
	}
}

func TestGetContainerManagerIsShared(t *testing.T) {
	if GetContainerManager() != GetContainerManager() {
		t.Error("Expected a single process-wide manager")
	}
}
