package main

import (
	"github.com/spf13/cobra"
)

// Flags shared by the run path
var (
	configFile string
	logFile    string
	logLevel   string
	muted      bool
	randSeed   int64
)

// NewRootCmd creates the root command for the Battle Pong CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battlepong",
		Short: "Battle Pong - a two player terminal pong variant",
		Long: `Battle Pong is a two player pong variant for the terminal with
live-tunable physics, chaos modulation and powerups.

Left paddle: w/s. Right paddle: arrow keys. Powerups: 1 and 2.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "settings file path (yaml)")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append structured logs to this file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.Flags().BoolVar(&muted, "mute", false, "disable audio output")
	cmd.Flags().Int64Var(&randSeed, "seed", 0, "random seed (0 = time based)")

	return cmd
}
