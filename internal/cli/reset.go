package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erazemk/partsbin/internal/db"
)

// ResetOptions holds flags for the reset command.
type ResetOptions struct {
	*RootOptions
	Yes bool
}

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate the inventory table",
		Long: `Drop the inventory table and recreate it empty.

All items are lost and ids restart from 1. The session secret and other
settings survive. Refuses to run without --yes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "confirm that all inventory data may be destroyed")

	return cmd
}

func runReset(opts *ResetOptions, cmd *cobra.Command) error {
	if !opts.Yes {
		return fmt.Errorf("reset destroys all inventory data; re-run with --yes to confirm")
	}

	closeLog, err := setupLogger(opts.LogFile)
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	cfg := loadConfig(opts.RootOptions)
	database, err := openDatabase(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		return err
	}
	defer database.Close()

	if err := db.Reset(database); err != nil {
		return err
	}

	slog.Info("inventory reset", "path", cfg.DBPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Inventory table reset; %s is empty again\n", cfg.DBPath)
	return nil
}
