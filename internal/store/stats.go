package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/partsbin/internal/model"
)

// Stats returns the total item count and a per-category breakdown ordered by
// item count, most numerous first. Categories with the same count are ordered
// by name so the result is deterministic.
func Stats(ctx context.Context, db *sqlx.DB) (*model.Stats, error) {
	stats := &model.Stats{}

	err := db.GetContext(ctx, &stats.TotalItems, `SELECT COUNT(*) FROM inventory`)
	if err != nil {
		return nil, fmt.Errorf("counting items: %w", err)
	}

	err = db.SelectContext(ctx, &stats.Categories,
		`SELECT category, COUNT(*) AS count, COALESCE(SUM(quantity), 0) AS total_qty
		 FROM inventory
		 GROUP BY category
		 ORDER BY count DESC, category`,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregating categories: %w", err)
	}

	return stats, nil
}
