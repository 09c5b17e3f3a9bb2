package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SecretProvider resolves secret values at the time they are needed
type SecretProvider interface {
	GetSecret(ctx context.Context, key string) (string, error)
}

// ErrSecretNotFound is returned when a secret has no value
var ErrSecretNotFound = errors.New("secret not found")

// EnvSecretProvider reads secrets from the process environment on every
// call, so rotated values are picked up without a restart.
type EnvSecretProvider struct {
	v *viper.Viper
}

var _ SecretProvider = (*EnvSecretProvider)(nil)

// NewEnvSecretProvider creates a secret provider backed by environment variables
func NewEnvSecretProvider() *EnvSecretProvider {
	_ = godotenv.Load()
	return &EnvSecretProvider{v: newViper()}
}

// GetSecret returns the secret value for key, e.g. "openai.api_key"
// resolves OPENAI_API_KEY. Only an empty value counts as missing.
func (p *EnvSecretProvider) GetSecret(ctx context.Context, key string) (string, error) {
	value := p.v.GetString(key)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, key)
	}
	return value, nil
}

// StaticSecretProvider serves secrets from a fixed map
type StaticSecretProvider map[string]string

var _ SecretProvider = StaticSecretProvider(nil)

// GetSecret implements SecretProvider
func (p StaticSecretProvider) GetSecret(ctx context.Context, key string) (string, error) {
	value, ok := p[key]
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, key)
	}
	return value, nil
}
