package completion

import (
	"fmt"
	"strings"
	"time"
)

// ProviderType represents the type of completion client implementation
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderMock   ProviderType = "mock"
)

// MockResponseText is what the mock provider answers with
const MockResponseText = "Решение недоступно: включён тестовый режим."

// ClientConfig holds the settings a Factory needs to build a Client
type ClientConfig struct {
	Provider string
	BaseURL  string
	Timeout  time.Duration
}

// Factory creates Client instances based on configuration
type Factory struct {
	options []OpenAIOption
}

// NewFactory creates a new completion client factory. Options are applied to
// every OpenAI client it builds.
func NewFactory(options ...OpenAIOption) *Factory {
	return &Factory{options: options}
}

// Create creates a Client based on the provided configuration
func (f *Factory) Create(config *ClientConfig) (Client, error) {
	if config == nil {
		return nil, fmt.Errorf("completion client config is required")
	}

	switch ProviderType(strings.ToLower(config.Provider)) {
	case ProviderOpenAI, "":
		if config.BaseURL == "" {
			return nil, fmt.Errorf("failed to create openai client: base URL is required")
		}
		return NewOpenAIClient(config.BaseURL, config.Timeout, f.options...), nil
	case ProviderMock:
		return NewMockClient(MockResponseText), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", config.Provider)
	}
}
