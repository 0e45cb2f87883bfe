package handler

import (
	"net/http"

	"bookfast-web/internal/section"
	"bookfast-web/internal/session"
	"bookfast-web/internal/usecase"
)

type ConfirmHandler struct {
	responder      *Responder
	confirmUsecase usecase.ConfirmUsecase
}

func NewConfirmHandler(responder *Responder, confirmUsecase usecase.ConfirmUsecase) *ConfirmHandler {
	return &ConfirmHandler{
		responder:      responder,
		confirmUsecase: confirmUsecase,
	}
}

// Confirm runs the pending destructive action
func (h *ConfirmHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	target := returnTo(s)

	message, err := h.confirmUsecase.Confirm(r.Context(), s)
	if err != nil {
		h.responder.Fail(w, r, s, err, target)
		return
	}

	s.Notify(message)
	h.responder.Redirect(w, r, s, target)
}

// Dismiss drops the pending action without running it
func (h *ConfirmHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	target := returnTo(s)

	h.confirmUsecase.Dismiss(s)
	h.responder.Redirect(w, r, s, target)
}

// returnTo is the page the pending action was requested from
func returnTo(s *session.Session) string {
	if s.Pending == nil {
		return s.Role().HomePath()
	}
	switch s.Pending.Kind {
	case session.ActionDeleteSalon:
		return tabURL(adminPath, section.Salons)
	case session.ActionDeleteEmployee:
		return tabURL(adminPath, section.Employees)
	case session.ActionCancelBooking:
		return tabURL(userPath, section.Bookings)
	}
	return s.Role().HomePath()
}
