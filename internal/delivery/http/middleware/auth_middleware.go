package middleware

import (
	"context"
	"errors"
	"net/http"

	"bookfast-web/internal/session"
	"bookfast-web/internal/usecase"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	SessionKey   contextKey = "session"
	RequestIDKey contextKey = "request_id"
)

type AuthMiddleware struct {
	log         *logrus.Logger
	authUsecase usecase.AuthUsecase
	cookieName  string
}

func NewAuthMiddleware(log *logrus.Logger, authUsecase usecase.AuthUsecase, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		log:         log,
		authUsecase: authUsecase,
		cookieName:  cookieName,
	}
}

// Authenticate loads the session named by the session cookie. Requests
// without a valid session are sent to the login page.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		s, err := m.authUsecase.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, usecase.ErrInvalidToken) && !errors.Is(err, usecase.ErrSessionNotFound) {
				m.log.Warnf("Failed to authenticate request: %+v", err)
			}
			ClearSessionCookie(w, m.cookieName)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

// GetSessionFromContext extracts the session from context
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(SessionKey).(*session.Session)
	return s, ok && s != nil
}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}

// GetRequestIDFromContext extracts the request id from context
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}

// SetSessionCookie stores the signed session token in the browser
func SetSessionCookie(w http.ResponseWriter, name, value string, maxAge int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
