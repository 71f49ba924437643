package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is the full database schema. AUTOINCREMENT keeps ids strictly
// increasing for the lifetime of the table, even across deletes. Quantity
// and price carry no CHECK constraints: validation is the caller's job and
// the store passes values through as-is.
const schema = `
CREATE TABLE IF NOT EXISTS inventory (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    category     TEXT NOT NULL,
    item_name    TEXT NOT NULL,
    quantity     INTEGER NOT NULL,
    notes        TEXT,
    price        REAL NOT NULL,
    image_data   BLOB,
    date_added   DATETIME NOT NULL,
    last_updated DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_inventory_category_name
    ON inventory(category, item_name);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
// It never drops anything; Reset is the only destructive path.
func EnsureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Reset drops the inventory table and recreates it empty. Ids restart from 1
// because dropping the table clears its AUTOINCREMENT bookkeeping. Settings
// survive. Never run implicitly; callers must ask for it.
func Reset(db *sqlx.DB) error {
	if _, err := db.Exec(`DROP TABLE IF EXISTS inventory`); err != nil {
		return fmt.Errorf("dropping inventory table: %w", err)
	}
	return EnsureSchema(db)
}
