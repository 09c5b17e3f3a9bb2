package lambda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"math-solver-api/internal/config"
	"math-solver-api/pkg/server"
)

// ContainerManager keeps the dependency container alive between invocations
// of a warm Lambda instance
type ContainerManager struct {
	container   *server.Container
	config      *config.Config
	lastUsed    time.Time
	invocations int64
	mu          sync.RWMutex
}

var (
	globalContainerManager *ContainerManager
	containerManagerOnce   sync.Once
)

// GetContainerManager returns the process-wide container manager
func GetContainerManager() *ContainerManager {
	containerManagerOnce.Do(func() {
		globalContainerManager = &ContainerManager{}
	})
	return globalContainerManager
}

// Initialize builds the container from cfg. Calling it again after a
// successful initialization is a no-op.
func (cm *ContainerManager) Initialize(cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return nil
	}
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		return err
	}

	cm.config = cfg
	cm.container = container
	cm.lastUsed = time.Now()
	return nil
}

// GetContainer returns the container, loading the optimized configuration
// on first use
func (cm *ContainerManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	if cm.container != nil {
		cm.lastUsed = time.Now()
		cm.invocations++
		container := cm.container
		cm.mu.Unlock()
		return container, nil
	}
	cm.mu.Unlock()

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cm.Initialize(cfg); err != nil {
		return nil, err
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.invocations++
	return cm.container, nil
}

// Invocations returns how many times the container was handed out
func (cm *ContainerManager) Invocations() int64 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.invocations
}

// IsHealthy reports whether the container exists and was used recently
func (cm *ContainerManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.container == nil {
		return false
	}

	return time.Since(cm.lastUsed) < 5*time.Minute
}

// Cleanup closes the container. The next GetContainer call rebuilds it.
func (cm *ContainerManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	cm.config = nil
	cm.invocations = 0
	return nil
}
