package api

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/partsbin/internal/seed"
)

// ImportHandler triggers the bulk seed datasets.
type ImportHandler struct {
	DB *sqlx.DB
}

// Run handles POST /api/import/{set}. Each run appends the whole dataset;
// there is no deduplication.
func (h *ImportHandler) Run(w http.ResponseWriter, r *http.Request) {
	set := r.PathValue("set")
	parts, ok := seed.BySet(set)
	if !ok {
		jsonError(w, http.StatusNotFound, "unknown dataset")
		return
	}

	count, err := seed.Apply(r.Context(), h.DB, parts)
	if err != nil {
		slog.Error("bulk import failed", "set", set, "inserted", count, "error", err)
		jsonError(w, http.StatusInternalServerError, "import failed")
		return
	}

	slog.Info("bulk import", "set", set, "count", count)
	jsonResponse(w, http.StatusOK, map[string]any{"set": set, "imported": count})
}
