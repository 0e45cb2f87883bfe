package middleware

import (
	"net/http"

	"bookfast-web/internal/domain/entity"
)

// RequireRole lets through sessions of the given role. Any other logged-in
// user is redirected to their own dashboard.
func RequireRole(role entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := GetSessionFromContext(r.Context())
			if !ok {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			if s.Role() != role {
				http.Redirect(w, r, s.Role().HomePath(), http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for salon owner pages
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireCustomer is a convenience middleware for customer pages
func RequireCustomer(next http.Handler) http.Handler {
	return RequireRole(entity.RoleCustomer)(next)
}
