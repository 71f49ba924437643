package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/partsbin/internal/auth"
	"github.com/erazemk/partsbin/internal/store"
)

// loginFailedMessage is shown for every failed login. Wrong password and
// missing configuration must be indistinguishable from the browser.
const loginFailedMessage = "Invalid username or password"

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &PageData{Title: "Login"})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	result := s.Gate.Verify(username, password)
	if !result.Authenticated {
		slog.Warn("login failed", "username", username, "reason", result.Reason)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Login",
			Error: loginFailedMessage,
		})
		return
	}

	token, err := auth.GenerateToken(s.Secret, username)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Login",
			Error: "Login failed, try again",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.TokenExpiry.Seconds()),
	})

	slog.Info("login", "username", username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout. The session's JTI is revoked so the token is
// dead even if a copy survives in another tab.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateToken(s.Secret, cookie.Value); err == nil && claims.ID != "" {
			if err := store.RevokeToken(r.Context(), s.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
				slog.Error("failed to revoke session token", "error", err)
			}
		}
	}

	clearAuthCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
