// Package cli provides the command-line interface for loglens.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loglens/loglens/internal/app"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:   "loglens",
		Short: "Interactive terminal viewer for structured log files",
		Long: `loglens is an interactive viewer for structured log files.

It loads the most recently modified *.log file in the current
directory (or an explicit file), parses each line into a typed
record, and lets you filter by severity threshold, highlight search
terms, run context queries around high-severity events, and step
through the matching entries.

Expected line format:

  2025-03-01 14:22:01,337 [ERROR] worker:encode - free text message`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to the config file (default loglens.toml, created if missing)")
	rootCmd.Flags().StringVar(&opts.LogFile, "log-file", "", "log file to open (default: newest *.log in the working directory)")
	rootCmd.Flags().StringVar(&opts.DebugLog, "debug-log", "", "write diagnostics (dropped lines, load summary) to this file")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
