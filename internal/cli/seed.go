package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erazemk/partsbin/internal/seed"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	Set string
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Bulk-import a fixed parts dataset",
		Long: `Insert one of the hardcoded parts datasets into the inventory.

Every run appends the full dataset as fresh rows; running the same import
twice stores everything twice.

Example:
  partsbin seed --db parts.db --set new
  partsbin seed --set all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Set, "set", "all", `dataset to import: "new", "old" or "all"`)

	return cmd
}

func runSeed(opts *SeedOptions, cmd *cobra.Command) error {
	set := strings.ToLower(opts.Set)
	parts, ok := seed.BySet(set)
	if !ok {
		return fmt.Errorf("unknown dataset %q: must be \"new\", \"old\" or \"all\"", opts.Set)
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

	count, err := seed.Apply(context.Background(), database, parts)
	if err != nil {
		return fmt.Errorf("import stopped after %d parts: %w", count, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d parts from the %q dataset into %s\n", count, set, cfg.DBPath)
	return nil
}
