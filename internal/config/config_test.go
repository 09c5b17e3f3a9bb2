package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"math-solver-api/internal/config"
)

var configEnvVars = []string{
	"ENVIRONMENT",
	"PORT",
	"LOG_LEVEL",
	"OPENAI_BASE_URL",
	"OPENAI_MODEL",
	"OPENAI_TEMPERATURE",
	"OPENAI_MAX_TOKENS",
	"OPENAI_TIMEOUT",
	"OPENAI_API_KEY",
	"COMPLETION_PROVIDER",
	"SOLVER_MODEL_LABEL",
}

var _ = Describe("Config", func() {
	var (
		tempDir    string
		originalWD string
	)

	BeforeEach(func() {
		var err error
		originalWD, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())

		tempDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(tempDir)).To(Succeed())

		for _, name := range configEnvVars {
			os.Unsetenv(name)
		}
	})

	AfterEach(func() {
		Expect(os.Chdir(originalWD)).To(Succeed())
		os.RemoveAll(tempDir)
		for _, name := range configEnvVars {
			os.Unsetenv(name)
		}
	})

	Describe("Load", func() {
		Context("with no config file and no environment", func() {
			It("should use the defaults", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())

				Expect(cfg.Environment).To(Equal(config.EnvDevelopment))
				Expect(cfg.Port).To(Equal("8081"))
				Expect(cfg.LogLevel).To(Equal(config.LogLevelInfo))
				Expect(cfg.OpenAI.BaseURL).To(Equal("https://api.openai.com/v1"))
				Expect(cfg.OpenAI.Model).To(Equal("gpt-4o-mini"))
				Expect(cfg.OpenAI.Temperature).To(BeNumerically("~", 0.3, 1e-9))
				Expect(cfg.OpenAI.MaxTokens).To(Equal(1500))
				Expect(cfg.OpenAI.Timeout).To(Equal(60 * time.Second))
				Expect(cfg.Completion.Provider).To(Equal(config.ProviderOpenAI))
				Expect(cfg.Solver.ModelLabel).To(Equal("YaSentAI (GPT-4o-mini)"))
			})
		})

		Context("with environment overrides", func() {
			BeforeEach(func() {
				os.Setenv("ENVIRONMENT", "production")
				os.Setenv("OPENAI_MODEL", "gpt-4o")
				os.Setenv("OPENAI_TEMPERATURE", "0.7")
				os.Setenv("OPENAI_MAX_TOKENS", "800")
				os.Setenv("OPENAI_TIMEOUT", "15s")
				os.Setenv("LOG_LEVEL", "debug")
			})

			It("should prefer environment values", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())

				Expect(cfg.Environment).To(Equal(config.EnvProduction))
				Expect(cfg.IsProduction()).To(BeTrue())
				Expect(cfg.OpenAI.Model).To(Equal("gpt-4o"))
				Expect(cfg.OpenAI.Temperature).To(BeNumerically("~", 0.7, 1e-9))
				Expect(cfg.OpenAI.MaxTokens).To(Equal(800))
				Expect(cfg.OpenAI.Timeout).To(Equal(15 * time.Second))
				Expect(cfg.LogLevel).To(Equal(config.LogLevelDebug))
			})
		})

		Context("with a config file", func() {
			BeforeEach(func() {
				content := `
environment: staging
port: "9090"
openai:
  base_url: "http://localhost:4010/v1"
  max_tokens: 256
completion:
  provider: mock
solver:
  model_label: "Local Solver"
`
				Expect(os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(content), 0644)).To(Succeed())
			})

			It("should merge the file over the defaults", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())

				Expect(cfg.Environment).To(Equal(config.EnvStaging))
				Expect(cfg.Port).To(Equal("9090"))
				Expect(cfg.OpenAI.BaseURL).To(Equal("http://localhost:4010/v1"))
				Expect(cfg.OpenAI.MaxTokens).To(Equal(256))
				Expect(cfg.OpenAI.Model).To(Equal("gpt-4o-mini"))
				Expect(cfg.Completion.Provider).To(Equal(config.ProviderMock))
				Expect(cfg.Solver.ModelLabel).To(Equal("Local Solver"))
			})
		})

		Context("with an invalid value", func() {
			It("should reject an unknown environment", func() {
				os.Setenv("ENVIRONMENT", "qa")
				_, err := config.Load()
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("invalid configuration"))
			})

			It("should reject an unknown completion provider", func() {
				os.Setenv("COMPLETION_PROVIDER", "carrier-pigeon")
				_, err := config.Load()
				Expect(err).To(HaveOccurred())
			})
		})

		It("should not require the API key", func() {
			_, err := config.Load()
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Validate", func() {
		var cfg *config.Config

		BeforeEach(func() {
			cfg = &config.Config{
				Environment: config.EnvTest,
				Port:        "8081",
				LogLevel:    config.LogLevelInfo,
				OpenAI: config.OpenAIConfig{
					BaseURL:     config.DefaultOpenAIBaseURL,
					Model:       config.DefaultOpenAIModel,
					Temperature: config.DefaultTemperature,
					MaxTokens:   config.DefaultMaxTokens,
					Timeout:     config.DefaultTimeout,
				},
				Completion: config.CompletionConfig{Provider: config.ProviderOpenAI},
				Solver:     config.SolverConfig{ModelLabel: config.DefaultModelLabel},
			}
		})

		It("should accept a complete configuration", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject a temperature above 2", func() {
			cfg.OpenAI.Temperature = 2.5
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject a zero max tokens", func() {
			cfg.OpenAI.MaxTokens = 0
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject a non-http base URL", func() {
			cfg.OpenAI.BaseURL = "ftp://api.openai.com/v1"
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject a missing model label", func() {
			cfg.Solver.ModelLabel = ""
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject an unknown log level", func() {
			cfg.LogLevel = "verbose"
			Expect(cfg.Validate()).NotTo(Succeed())
		})
	})

	Describe("EnvSecretProvider", func() {
		It("should read the API key on every call", func() {
			provider := config.NewEnvSecretProvider()

			_, err := provider.GetSecret(context.Background(), config.OpenAIAPIKey)
			Expect(errors.Is(err, config.ErrSecretNotFound)).To(BeTrue())

			os.Setenv("OPENAI_API_KEY", "sk-test")
			key, err := provider.GetSecret(context.Background(), config.OpenAIAPIKey)
			Expect(err).NotTo(HaveOccurred())
			Expect(key).To(Equal("sk-test"))
		})

		It("should pass a whitespace-only key through unchanged", func() {
			provider := config.NewEnvSecretProvider()

			os.Setenv("OPENAI_API_KEY", "   ")
			key, err := provider.GetSecret(context.Background(), config.OpenAIAPIKey)
			Expect(err).NotTo(HaveOccurred())
			Expect(key).To(Equal("   "))
		})
	})

	Describe("StaticSecretProvider", func() {
		It("should treat empty values as missing", func() {
			provider := config.StaticSecretProvider{config.OpenAIAPIKey: ""}
			_, err := provider.GetSecret(context.Background(), config.OpenAIAPIKey)
			Expect(errors.Is(err, config.ErrSecretNotFound)).To(BeTrue())
		})
	})
})
