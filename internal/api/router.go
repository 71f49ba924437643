package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/partsbin/internal/auth"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sqlx.DB, secret string, gate *auth.Gate) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, Secret: secret, Gate: gate}
	itemsHandler := &ItemsHandler{DB: db}
	statsHandler := &StatsHandler{DB: db}
	importHandler := &ImportHandler{DB: db}

	authMW := AuthMiddleware(secret, db)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("GET /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.GetImage)))
	mux.Handle("PUT /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.UploadImage)))

	mux.Handle("GET /api/stats", authMW(http.HandlerFunc(statsHandler.Get)))

	mux.Handle("POST /api/import/{set}", authMW(http.HandlerFunc(importHandler.Run)))

	return mux
}
