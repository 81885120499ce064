package httpapi

import (
	"net/http"
	"strings"

	"qr-dish-reality/internal/auth"
)

type sessionHandler func(w http.ResponseWriter, r *http.Request, session auth.Session)

// requireSession validates the bearer token and passes the session through
// explicitly instead of stashing it in package state.
func (h *Handler) requireSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}
		session, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), h.JWTSecret)
		if err != nil {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}
		next(w, r.WithContext(auth.WithSession(r.Context(), session)), session)
	}
}

func (h *Handler) requireAdmin(next sessionHandler) http.HandlerFunc {
	return h.requireSession(func(w http.ResponseWriter, r *http.Request, session auth.Session) {
		if !session.IsAdmin {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}
		next(w, r, session)
	})
}
