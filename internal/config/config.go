package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// OpenAIAPIKey is the secret key holding the completion service credential.
const OpenAIAPIKey = "openai.api_key"

// Default values for the completion service
const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultTemperature   = 0.3
	DefaultMaxTokens     = 1500
	DefaultTimeout       = 60 * time.Second
	DefaultModelLabel    = "YaSentAI (GPT-4o-mini)"
)

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Port        string           `mapstructure:"port"`
	LogLevel    string           `mapstructure:"log_level"`
	OpenAI      OpenAIConfig     `mapstructure:"openai"`
	Completion  CompletionConfig `mapstructure:"completion"`
	Solver      SolverConfig     `mapstructure:"solver"`
}

// OpenAIConfig holds chat completion endpoint settings. The API key is not
// part of it; it is resolved per request through a SecretProvider.
type OpenAIConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// CompletionConfig selects the completion client implementation
type CompletionConfig struct {
	Provider string `mapstructure:"provider"`
}

// SolverConfig holds settings for the solve response
type SolverConfig struct {
	ModelLabel string `mapstructure:"model_label"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		logrus.WithField("file", v.ConfigFileUsed()).Debug("Loaded config file")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// newViper returns a viper instance with defaults and environment binding.
// "openai.model" resolves from OPENAI_MODEL and so on.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("environment", EnvDevelopment)
	v.SetDefault("port", "8081")
	v.SetDefault("log_level", LogLevelInfo)
	v.SetDefault("openai.base_url", DefaultOpenAIBaseURL)
	v.SetDefault("openai.model", DefaultOpenAIModel)
	v.SetDefault("openai.temperature", DefaultTemperature)
	v.SetDefault("openai.max_tokens", DefaultMaxTokens)
	v.SetDefault("openai.timeout", DefaultTimeout)
	v.SetDefault("completion.provider", ProviderOpenAI)
	v.SetDefault("solver.model_label", DefaultModelLabel)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment,
			validation.Required,
			validation.In(EnvDevelopment, EnvStaging, EnvProduction, EnvTest),
		),
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
		),
		validation.Field(&c.OpenAI, validation.By(func(value interface{}) error {
			oc, ok := value.(OpenAIConfig)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be an OpenAIConfig")
			}
			return oc.Validate()
		})),
		validation.Field(&c.Completion, validation.By(func(value interface{}) error {
			cc, ok := value.(CompletionConfig)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be a CompletionConfig")
			}
			return validation.ValidateStruct(&cc,
				validation.Field(&cc.Provider,
					validation.Required,
					validation.In(ProviderOpenAI, ProviderMock),
				),
			)
		})),
		validation.Field(&c.Solver, validation.By(func(value interface{}) error {
			sc, ok := value.(SolverConfig)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be a SolverConfig")
			}
			return validation.ValidateStruct(&sc,
				validation.Field(&sc.ModelLabel, validation.Required),
			)
		})),
	)
}

// Validate checks the completion endpoint settings
func (c OpenAIConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL,
			validation.Required,
			is.URL,
			validation.By(validateHTTPScheme),
		),
		validation.Field(&c.Model, validation.Required),
		validation.Field(&c.Temperature, validation.Min(0.0), validation.Max(2.0)),
		validation.Field(&c.MaxTokens, validation.Required, validation.Min(1)),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond)),
	)
}

func validateHTTPScheme(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "must use http or https")
	}
	return nil
}

// IsProduction reports whether the configuration targets production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
