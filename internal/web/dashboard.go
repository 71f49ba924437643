package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/partsbin/internal/model"
	"github.com/erazemk/partsbin/internal/store"
)

// Dashboard handles GET /.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	stats, err := store.Stats(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to load stats for dashboard", "error", err)
		stats = &model.Stats{}
	}
	items, err := store.ListAll(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list items for dashboard", "error", err)
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Stats *model.Stats
		Items []model.Item
	}{
		PageData: PageData{Title: "Dashboard", User: claims},
		Stats:    stats,
		Items:    items,
	})
}
