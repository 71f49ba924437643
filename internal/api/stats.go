package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/partsbin/internal/store"
)

// StatsHandler serves the inventory summary.
type StatsHandler struct {
	DB *sqlx.DB
}

// Get handles GET /api/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := store.Stats(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"total_items":    stats.TotalItems,
		"total_quantity": stats.TotalQuantity(),
		"categories":     stats.Categories,
	})
}
