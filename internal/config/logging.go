package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ConfigureLogging sets up the global logrus logger.
// JSON output is used in production and inside Lambda, where CloudWatch
// ingests one entry per line. LOG_JSON overrides the choice.
func ConfigureLogging(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)

	if GetEnvAsBool("LOG_JSON", cfg.IsProduction() || IsServerlessMode()) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
