package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erazemk/partsbin/internal/db"
)

// BackupOptions holds flags for the backup command.
type BackupOptions struct {
	*RootOptions
	Dir string
}

// NewBackupCommand creates the backup command.
func NewBackupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BackupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a one-off database snapshot",
		Long: `Write a consistent snapshot of the database into a directory.

The serve command can also do this on a schedule; see its --backup-dir and
--backup-every flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackup(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "snapshot directory (overrides PARTSBIN_BACKUP_DIR)")

	return cmd
}

func runBackup(opts *BackupOptions, cmd *cobra.Command) error {
	closeLog, err := setupLogger(opts.LogFile)
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	cfg := loadConfig(opts.RootOptions)
	if opts.Dir != "" {
		cfg.BackupDir = opts.Dir
	}
	if cfg.BackupDir == "" {
		return fmt.Errorf("no snapshot directory: pass --dir or set PARTSBIN_BACKUP_DIR")
	}

	database, err := openDatabase(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		return err
	}
	defer database.Close()

	path, err := db.Backup(context.Background(), database, cfg.BackupDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", path)
	return nil
}
