package web

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/partsbin/internal/auth"
	webembed "github.com/erazemk/partsbin/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sqlx.DB, secret string, gate *auth.Gate) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
		Secret:    secret,
		Gate:      gate,
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(secret, db)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /healthz", Healthz)
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Authenticated routes.
	mux.Handle("GET /{$}", cookieAuth(http.HandlerFunc(s.Dashboard)))

	mux.Handle("GET /items", cookieAuth(http.HandlerFunc(s.ItemsPage)))
	mux.Handle("GET /items/new", cookieAuth(http.HandlerFunc(s.ItemNewPage)))
	mux.Handle("POST /items/new", cookieAuth(http.HandlerFunc(s.ItemCreateSubmit)))
	mux.Handle("POST /items/{id}", cookieAuth(http.HandlerFunc(s.ItemUpdateSubmit)))
	mux.Handle("POST /items/{id}/delete", cookieAuth(http.HandlerFunc(s.ItemDeleteSubmit)))
	mux.Handle("GET /items/{id}/image", cookieAuth(http.HandlerFunc(s.ItemImageGet)))
	mux.Handle("GET /items/{id}/thumb", cookieAuth(http.HandlerFunc(s.ItemThumbGet)))

	mux.Handle("GET /import", cookieAuth(http.HandlerFunc(s.ImportPage)))
	mux.Handle("POST /import/{set}", cookieAuth(http.HandlerFunc(s.ImportSubmit)))

	return mux, nil
}

// Healthz reports process liveness. It deliberately checks nothing else.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
