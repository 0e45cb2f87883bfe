package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// ProxyHeaders takes the client address from X-Forwarded-For and X-Real-IP
// only when the server sits behind a trusted reverse proxy. Otherwise those
// headers are client controlled and RemoteAddr stays the socket address.
func ProxyHeaders(trusted bool) func(http.Handler) http.Handler {
	if !trusted {
		return func(next http.Handler) http.Handler { return next }
	}
	return handlers.ProxyHeaders
}
