package handler

import (
	"errors"
	"net/http"
	"net/url"

	"bookfast-web/internal/converter"
	"bookfast-web/internal/delivery/http/middleware"
	"bookfast-web/internal/delivery/http/view"
	"bookfast-web/internal/infrastructure/api"
	"bookfast-web/internal/section"
	"bookfast-web/internal/selection"
	"bookfast-web/internal/session"
	"bookfast-web/internal/usecase"

	"github.com/gorilla/csrf"
	"github.com/sirupsen/logrus"
)

const genericErrorMessage = "Došlo je do pogreške. Pokušajte ponovno."

var errorMessages = []struct {
	err     error
	message string
}{
	{usecase.ErrSalonNotFound, "Salon nije pronađen."},
	{usecase.ErrInvalidHours, "Vrijeme otvaranja mora biti prije vremena zatvaranja."},
	{usecase.ErrInvalidDuration, "Trajanje termina mora biti između 5 i 180 minuta."},
	{usecase.ErrEmployeeNotFound, "Zaposlenik nije pronađen."},
	{usecase.ErrBookingNotFound, "Rezervacija nije pronađena."},
	{usecase.ErrBookingNotCancellable, "Moguće je otkazati samo potvrđene rezervacije."},
	{usecase.ErrSlotNotFound, "Termin više nije slobodan."},
	{usecase.ErrNothingPending, "Nema radnje koja čeka potvrdu."},
	{usecase.ErrActionNotAllowed, "Nemate ovlasti za ovu radnju."},
	{selection.ErrNoSalon, "Najprije odaberite salon."},
	{selection.ErrNoSelection, "Odaberite termin."},
	{selection.ErrSlotUnavailable, "Termin više nije slobodan."},
	{selection.ErrSlotDateMismatch, "Termin ne pripada odabranom datumu."},
	{selection.ErrSelectionStale, "Odabrani termin više nije slobodan. Odaberite drugi termin."},
	{api.ErrNotFound, "Traženi podatak nije pronađen."},
	{api.ErrUnavailable, "Poslužitelj nije dostupan. Pokušajte ponovno."},
	{api.ErrUpstream, "Poslužitelj trenutno ne može obraditi zahtjev."},
}

// ErrorMessage returns the text shown to the user for err
func ErrorMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return genericErrorMessage
}

// Responder finishes requests of the server rendered pages: it persists the
// session, renders pages and turns errors into notices.
type Responder struct {
	log         *logrus.Logger
	renderer    *view.Renderer
	authUsecase usecase.AuthUsecase
	cookieName  string
}

func NewResponder(log *logrus.Logger, renderer *view.Renderer, authUsecase usecase.AuthUsecase, cookieName string) *Responder {
	return &Responder{
		log:         log,
		renderer:    renderer,
		authUsecase: authUsecase,
		cookieName:  cookieName,
	}
}

// Redirect saves the session and sends the browser to target
func (p *Responder) Redirect(w http.ResponseWriter, r *http.Request, s *session.Session, target string) {
	if err := p.authUsecase.SaveSession(r.Context(), s); err != nil {
		p.log.Warnf("Failed to persist session before redirect: %+v", err)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Fail reports err to the user and redirects to target. A session the api
// no longer accepts is destroyed instead.
func (p *Responder) Fail(w http.ResponseWriter, r *http.Request, s *session.Session, err error, target string) {
	if isSessionExpired(err) {
		p.EndSession(w, r, s)
		return
	}
	s.Fail(ErrorMessage(err))
	p.Redirect(w, r, s, target)
}

// EndSession destroys the session and sends the browser to the login page
func (p *Responder) EndSession(w http.ResponseWriter, r *http.Request, s *session.Session) {
	p.Destroy(w, r, s)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Destroy deletes the session and expires its cookie
func (p *Responder) Destroy(w http.ResponseWriter, r *http.Request, s *session.Session) {
	if err := p.authUsecase.Logout(r.Context(), s); err != nil {
		p.log.Warnf("Failed to destroy session: %+v", err)
	}
	middleware.ClearSessionCookie(w, p.cookieName)
}

// Layout collects the shell data. Notices are consumed and the session is
// saved, which also renews its expiry.
func (p *Responder) Layout(r *http.Request, s *session.Session, title string, links []view.NavLink) view.Layout {
	notices := s.TakeNotices()
	if err := p.authUsecase.SaveSession(r.Context(), s); err != nil {
		p.log.Warnf("Failed to persist session: %+v", err)
	}

	return view.Layout{
		Title:     title,
		Brand:     view.Brand,
		Links:     links,
		User:      converter.UserToResponse(&s.User),
		Notices:   notices,
		CSRFField: csrf.TemplateField(r),
	}
}

// Render writes a page. A rendering failure answers 500.
func (p *Responder) Render(w http.ResponseWriter, status int, page string, data any) {
	if err := p.renderer.Render(w, status, page, data); err != nil {
		p.log.Errorf("Failed to render %s: %+v", page, err)
		http.Error(w, genericErrorMessage, http.StatusInternalServerError)
	}
}

// NormalizeSection resolves the tab parameter against allow. When the tab
// had to change the browser is redirected to the canonical URL, keeping the
// other query parameters, and ok is false.
func NormalizeSection(w http.ResponseWriter, r *http.Request, allow section.AllowList) (section.Section, bool) {
	query := r.URL.Query()
	resolved, changed := allow.Resolve(query.Get(section.QueryParam))
	if !changed {
		return resolved, true
	}

	query.Set(section.QueryParam, string(resolved))
	target := url.URL{Path: r.URL.Path, RawQuery: query.Encode()}
	http.Redirect(w, r, target.String(), http.StatusFound)
	return resolved, false
}

func tabURL(basePath string, s section.Section) string {
	return basePath + "?" + url.Values{section.QueryParam: {string(s)}}.Encode()
}

func isSessionExpired(err error) bool {
	return errors.Is(err, usecase.ErrSessionExpired)
}

func sessionFrom(r *http.Request) *session.Session {
	s, _ := middleware.GetSessionFromContext(r.Context())
	return s
}
