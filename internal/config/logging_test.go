package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"math-solver-api/internal/config"
)

var _ = Describe("ConfigureLogging", func() {
	var (
		originalLevel     logrus.Level
		originalFormatter logrus.Formatter
	)

	BeforeEach(func() {
		originalLevel = logrus.GetLevel()
		originalFormatter = logrus.StandardLogger().Formatter
	})

	AfterEach(func() {
		os.Unsetenv("LOG_JSON")
		logrus.SetLevel(originalLevel)
		logrus.SetFormatter(originalFormatter)
	})

	It("should apply the configured level", func() {
		config.ConfigureLogging(&config.Config{Environment: config.EnvDevelopment, LogLevel: config.LogLevelDebug})
		Expect(logrus.GetLevel()).To(Equal(logrus.DebugLevel))
	})

	It("should fall back to info for an unknown level", func() {
		config.ConfigureLogging(&config.Config{Environment: config.EnvDevelopment, LogLevel: "verbose"})
		Expect(logrus.GetLevel()).To(Equal(logrus.InfoLevel))
	})

	It("should use JSON output in production", func() {
		config.ConfigureLogging(&config.Config{Environment: config.EnvProduction, LogLevel: config.LogLevelInfo})
		Expect(logrus.StandardLogger().Formatter).To(BeAssignableToTypeOf(&logrus.JSONFormatter{}))
	})

	It("should let LOG_JSON override the environment", func() {
		os.Setenv("LOG_JSON", "false")
		config.ConfigureLogging(&config.Config{Environment: config.EnvProduction, LogLevel: config.LogLevelInfo})
		Expect(logrus.StandardLogger().Formatter).To(BeAssignableToTypeOf(&logrus.TextFormatter{}))
	})
})
