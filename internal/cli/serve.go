package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/erazemk/partsbin/internal/api"
	"github.com/erazemk/partsbin/internal/auth"
	"github.com/erazemk/partsbin/internal/config"
	"github.com/erazemk/partsbin/internal/db"
	"github.com/erazemk/partsbin/internal/store"
	"github.com/erazemk/partsbin/internal/web"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr        string
	BackupDir   string
	BackupEvery string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the inventory web server",
		Long: `Start the inventory web server.

The database file is created and its schema applied if missing; existing
data is never touched at startup. Login credentials come from the
INVENTORY_USERNAME and INVENTORY_PASSWORD environment variables; when they
are unset the server still runs but no login can succeed.

Example:
  partsbin serve --db parts.db --addr :8080
  partsbin serve --backup-dir ./backups --backup-every @daily`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides PARTSBIN_ADDR)")
	cmd.Flags().StringVar(&opts.BackupDir, "backup-dir", "", "snapshot directory (overrides PARTSBIN_BACKUP_DIR)")
	cmd.Flags().StringVar(&opts.BackupEvery, "backup-every", "", "snapshot cron schedule (overrides PARTSBIN_BACKUP_EVERY)")

	return cmd
}

func runServe(opts *ServeOptions) error {
	cfg := loadConfig(opts.RootOptions)
	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}
	if opts.BackupDir != "" {
		cfg.BackupDir = opts.BackupDir
	}
	if opts.BackupEvery != "" {
		cfg.BackupEvery = opts.BackupEvery
	}

	closeLog, err := setupLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	// Storage failures here are fatal: the server never starts without a
	// working database.
	database, err := openDatabase(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		return err
	}
	defer database.Close()

	slog.Info("database ready", "path", cfg.DBPath)

	// Load session signing secret from the database (generated on first run).
	secret, err := store.GetSessionSecret(context.Background(), database)
	if err != nil {
		slog.Error("failed to get session secret", "error", err)
		return err
	}

	gate, err := auth.NewGate(cfg.Username, cfg.Password)
	if err != nil {
		slog.Error("failed to build credential gate", "error", err)
		return err
	}
	if cfg.Username == "" || cfg.Password == "" {
		slog.Warn("INVENTORY_USERNAME/INVENTORY_PASSWORD not set; every login will fail")
	}

	// Set up routers.
	apiRouter := api.NewRouter(database, secret, gate)
	webRouter, err := web.NewRouter(database, secret, gate)
	if err != nil {
		slog.Error("failed to set up web router", "error", err)
		return err
	}

	// Combine: API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.RequestLogger(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Scheduled snapshots, only when a directory is configured.
	if cfg.BackupDir != "" {
		scheduler, err := startBackups(database, cfg)
		if err != nil {
			slog.Error("failed to schedule backups", "error", err)
			return err
		}
		defer scheduler.Stop()
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		return err
	}

	slog.Info("server stopped, closing database")
	return nil
}

// startBackups schedules periodic database snapshots and runs the scheduler
// until Stop is called.
func startBackups(database *sqlx.DB, cfg *config.Config) (*cron.Cron, error) {
	scheduler := cron.New()
	_, err := scheduler.AddFunc(cfg.BackupEvery, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		path, err := db.Backup(ctx, database, cfg.BackupDir)
		if err != nil {
			slog.Error("scheduled backup failed", "error", err)
			return
		}
		slog.Info("backup written", "path", path)
	})
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	slog.Info("backups scheduled", "dir", cfg.BackupDir, "every", cfg.BackupEvery)
	return scheduler, nil
}
