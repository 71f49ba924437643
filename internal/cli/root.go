// Package cli wires the partsbin commands. Configuration comes from the
// environment (plus an optional .env file); flags given on the command line
// win over environment values.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/erazemk/partsbin/internal/config"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	DBPath  string
	LogFile string
}

// NewRootCommand creates the root command for the partsbin CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "partsbin",
		Short: "Single-operator electronics parts inventory",
		Long: `partsbin tracks electronics components: categories, quantities,
notes, prices and photos, stored in a local SQLite file and managed
through a small web interface.`,
		SilenceUsage: true,
	}

	// Global flags.
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "SQLite database path (overrides PARTSBIN_DB)")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log", "", "log file path (overrides PARTSBIN_LOG)")

	// Add subcommands.
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))
	cmd.AddCommand(NewBackupCommand(opts))

	return cmd
}

// loadConfig reads the environment configuration and applies the global
// flag overrides.
func loadConfig(opts *RootOptions) *config.Config {
	cfg := config.Load()
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	return cfg
}
