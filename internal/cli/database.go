package cli

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/partsbin/internal/config"
	"github.com/erazemk/partsbin/internal/db"
)

// openDatabase opens the configured database file and ensures the schema
// exists. It never drops anything; reset is the only destructive command.
func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	return database, nil
}
