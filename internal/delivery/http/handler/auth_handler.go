package handler

import (
	"errors"
	"net/http"

	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/delivery/http/middleware"
	"bookfast-web/internal/delivery/http/view"
	"bookfast-web/internal/infrastructure/api"
	"bookfast-web/internal/session"
	"bookfast-web/internal/usecase"
	"bookfast-web/pkg/form"
	"bookfast-web/pkg/validator"

	"github.com/gorilla/csrf"
)

type AuthHandler struct {
	responder    *Responder
	authUsecase  usecase.AuthUsecase
	validator    *validator.CustomValidator
	cookieName   string
	cookieMaxAge int
	secureCookie bool
}

func NewAuthHandler(
	responder *Responder,
	authUsecase usecase.AuthUsecase,
	validator *validator.CustomValidator,
	cookieName string,
	cookieMaxAge int,
	secureCookie bool,
) *AuthHandler {
	return &AuthHandler{
		responder:    responder,
		authUsecase:  authUsecase,
		validator:    validator,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
	}
}

// Page shows the login form, or the registration form with ?mode=register.
// Logged-in users are sent to their dashboard.
func (h *AuthHandler) Page(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if s, err := h.authUsecase.Authenticate(r.Context(), cookie.Value); err == nil {
			http.Redirect(w, r, s.Role().HomePath(), http.StatusFound)
			return
		}
		middleware.ClearSessionCookie(w, h.cookieName)
	}

	h.render(w, r, http.StatusOK, view.AuthPage{Register: r.URL.Query().Get("mode") == "register"}, "")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := form.Decode(r, &req); err != nil {
		h.render(w, r, http.StatusBadRequest, view.AuthPage{}, "Neispravan zahtjev.")
		return
	}

	page := view.AuthPage{Email: req.Email}
	if err := h.validator.Validate(&req); err != nil {
		h.render(w, r, http.StatusBadRequest, page, h.validator.Summary(err))
		return
	}

	s, cookie, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		h.render(w, r, statusFor(err), page, ErrorMessage(err))
		return
	}

	h.start(w, r, s, cookie)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := form.Decode(r, &req); err != nil {
		h.render(w, r, http.StatusBadRequest, view.AuthPage{Register: true}, "Neispravan zahtjev.")
		return
	}

	page := view.AuthPage{Register: true, Name: req.FullName, Email: req.Email}
	if err := h.validator.Validate(&req); err != nil {
		h.render(w, r, http.StatusBadRequest, page, h.validator.Summary(err))
		return
	}

	s, cookie, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		h.render(w, r, statusFor(err), page, ErrorMessage(err))
		return
	}

	h.start(w, r, s, cookie)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.responder.EndSession(w, r, sessionFrom(r))
}

func (h *AuthHandler) start(w http.ResponseWriter, r *http.Request, s *session.Session, cookie string) {
	middleware.SetSessionCookie(w, h.cookieName, cookie, h.cookieMaxAge, h.secureCookie)
	http.Redirect(w, r, s.Role().HomePath(), http.StatusSeeOther)
}

func (h *AuthHandler) render(w http.ResponseWriter, r *http.Request, status int, page view.AuthPage, errMessage string) {
	page.Layout = view.Layout{
		Title:     "Prijava",
		Brand:     view.Brand,
		CSRFField: csrf.TemplateField(r),
	}
	if page.Register {
		page.Title = "Registracija"
	}
	if errMessage != "" {
		page.Notices = []session.Notice{{Kind: session.NoticeError, Message: errMessage}}
	}
	h.responder.Render(w, status, view.PageAuth, page)
}

func statusFor(err error) int {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}
