package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/partsbin/internal/model"
)

// listColumns are the fields returned by list and search queries. The image
// blob is skipped; has_image tells callers whether one exists.
const listColumns = `id, category, item_name, quantity, COALESCE(notes, '') AS notes,
	price, image_data IS NOT NULL AS has_image, date_added, last_updated`

// Insert creates a new item and returns the stored record. Both timestamps
// are set to the same instant.
func Insert(ctx context.Context, db *sqlx.DB, category, name string, quantity int, notes string, price float64, image []byte) (*model.Item, error) {
	now := time.Now().UTC()
	result, err := db.ExecContext(ctx,
		`INSERT INTO inventory (category, item_name, quantity, notes, price, image_data, date_added, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		category, name, quantity, notes, price, image, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetByID(ctx, db, id)
}

// GetByID returns an item by ID, including its image data, or nil if no such
// item exists.
func GetByID(ctx context.Context, db *sqlx.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	err := db.GetContext(ctx, item,
		`SELECT id, category, item_name, quantity, COALESCE(notes, '') AS notes,
		        price, image_data, image_data IS NOT NULL AS has_image, date_added, last_updated
		 FROM inventory WHERE id = ?`, id,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListAll returns every item ordered by category, then name. Image blobs are
// not loaded.
func ListAll(ctx context.Context, db *sqlx.DB) ([]model.Item, error) {
	var items []model.Item
	err := db.SelectContext(ctx, &items,
		`SELECT `+listColumns+` FROM inventory ORDER BY category, item_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// Search returns items whose name, notes or category contain query as a
// literal substring, matched case-insensitively. LIKE metacharacters in the
// query are escaped, so "100%" only matches text containing "100%". An empty
// query matches everything. Results are ordered like ListAll.
func Search(ctx context.Context, db *sqlx.DB, query string) ([]model.Item, error) {
	pattern := "%" + escapeLike(query) + "%"

	var items []model.Item
	err := db.SelectContext(ctx, &items,
		`SELECT `+listColumns+`
		 FROM inventory
		 WHERE item_name LIKE ? ESCAPE '\'
		    OR notes LIKE ? ESCAPE '\'
		    OR category LIKE ? ESCAPE '\'
		 ORDER BY category, item_name`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	return items, nil
}

// Update modifies an item's quantity, notes and price, and bumps
// last_updated. A nil image keeps the stored image; a non-nil image replaces
// it. date_added is never touched. Updating a missing ID is a no-op.
func Update(ctx context.Context, db *sqlx.DB, id int64, quantity int, notes string, price float64, image []byte) error {
	now := time.Now().UTC()

	var err error
	if image != nil {
		_, err = db.ExecContext(ctx,
			`UPDATE inventory SET quantity = ?, notes = ?, price = ?, image_data = ?, last_updated = ?
			 WHERE id = ?`,
			quantity, notes, price, image, now, id,
		)
	} else {
		_, err = db.ExecContext(ctx,
			`UPDATE inventory SET quantity = ?, notes = ?, price = ?, last_updated = ?
			 WHERE id = ?`,
			quantity, notes, price, now, id,
		)
	}
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

// Delete removes an item. Deleting a missing ID is a no-op.
func Delete(ctx context.Context, db *sqlx.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// SetImage replaces an item's stored image and bumps last_updated. The bytes
// are stored exactly as given. Setting on a missing ID is a no-op.
func SetImage(ctx context.Context, db *sqlx.DB, id int64, image []byte) error {
	_, err := db.ExecContext(ctx,
		`UPDATE inventory SET image_data = ?, last_updated = ? WHERE id = ?`,
		image, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return nil
}

// GetImage returns an item's stored image bytes, or nil if the item does not
// exist or has no image.
func GetImage(ctx context.Context, db *sqlx.DB, id int64) ([]byte, error) {
	var image []byte
	err := db.GetContext(ctx, &image, `SELECT image_data FROM inventory WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item image: %w", err)
	}
	return image, nil
}

// escapeLike backslash-escapes LIKE metacharacters so user text matches
// literally under ESCAPE '\'.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
