package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/erazemk/partsbin/internal/seed"
)

// ImportPage handles GET /import: one button per dataset.
func (s *Server) ImportPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	page := PageData{Title: "Bulk Import", User: claims}
	if n := r.URL.Query().Get("imported"); n != "" {
		page.Success = fmt.Sprintf("Imported %s parts from the %q list", n, r.URL.Query().Get("set"))
	}

	s.Templates.Render(w, "import.html", &struct {
		PageData
		NewCount int
		OldCount int
	}{
		PageData: page,
		NewCount: len(seed.NewParts),
		OldCount: len(seed.OldParts),
	})
}

// ImportSubmit handles POST /import/{set}. Re-importing appends duplicates;
// that is the documented behavior, not a bug.
func (s *Server) ImportSubmit(w http.ResponseWriter, r *http.Request) {
	set := r.PathValue("set")
	parts, ok := seed.BySet(set)
	if !ok {
		http.NotFound(w, r)
		return
	}

	count, err := seed.Apply(r.Context(), s.DB, parts)
	if err != nil {
		slog.Error("bulk import failed", "set", set, "inserted", count, "error", err)
		http.Error(w, "import failed", http.StatusInternalServerError)
		return
	}

	slog.Info("bulk import", "set", set, "count", count)
	http.Redirect(w, r, fmt.Sprintf("/import?imported=%d&set=%s", count, set), http.StatusSeeOther)
}
