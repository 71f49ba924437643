package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
)

// Backup writes a consistent snapshot of the database into dir using
// VACUUM INTO and returns the path of the file written. The filename carries
// a UTC timestamp; SQLite refuses to overwrite an existing file, so two
// backups within the same second surface an error instead of clobbering.
func Backup(ctx context.Context, db *sqlx.DB, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	name := fmt.Sprintf("inventory-%s.db", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if _, err := db.ExecContext(ctx, `VACUUM INTO ?`, path); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return path, nil
}
