package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"math-solver-api/internal/config"
)

var debug bool

// NewRootCmd creates the root 'solver' command with persistent flags and subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "solver",
		Short:         "Solve math problems from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Logs go to stderr so stdout only carries the answer
		logrus.SetOutput(cmd.ErrOrStderr())
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logrus.SetLevel(logrus.WarnLevel)
		if debug || config.GetEnvAsBool("DEBUG", false) {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}

	rootCmd.AddCommand(newSolveCmd())

	return rootCmd
}
