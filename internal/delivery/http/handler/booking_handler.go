package handler

import (
	"net/http"
	"time"

	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/section"
	"bookfast-web/internal/usecase"
	"bookfast-web/pkg/form"
	"bookfast-web/pkg/validator"
)

type BookingHandler struct {
	responder      *Responder
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
	location       *time.Location
}

func NewBookingHandler(responder *Responder, bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator, location *time.Location) *BookingHandler {
	return &BookingHandler{
		responder:      responder,
		bookingUsecase: bookingUsecase,
		validator:      validator,
		location:       location,
	}
}

var (
	bookingTab   = tabURL(userPath, section.Salons)
	myBookingTab = tabURL(userPath, section.Bookings)
)

// SelectSalon makes a salon the active one and clears the slot selection
func (h *BookingHandler) SelectSalon(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	id, err := pathID(r)
	if err != nil {
		h.responder.Fail(w, r, s, usecase.ErrSalonNotFound, bookingTab)
		return
	}

	if err := h.bookingUsecase.SelectSalon(r.Context(), s, id); err != nil {
		h.responder.Fail(w, r, s, err, bookingTab)
		return
	}
	h.responder.Redirect(w, r, s, bookingTab)
}

func (h *BookingHandler) SetDate(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	var req dto.DateRequest
	if err := form.Decode(r, &req); err != nil {
		s.Fail("Neispravan zahtjev.")
		h.responder.Redirect(w, r, s, bookingTab)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		s.Fail(h.validator.Summary(err))
		h.responder.Redirect(w, r, s, bookingTab)
		return
	}

	if err := h.bookingUsecase.SetDate(s, req.Date); err != nil {
		h.responder.Fail(w, r, s, err, bookingTab)
		return
	}
	h.responder.Redirect(w, r, s, bookingTab)
}

func (h *BookingHandler) PrevMonth(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Selection.PrevMonth()
	h.responder.Redirect(w, r, s, bookingTab)
}

func (h *BookingHandler) NextMonth(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Selection.NextMonth()
	h.responder.Redirect(w, r, s, bookingTab)
}

func (h *BookingHandler) Today(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Selection.Today(time.Now(), h.location)
	h.responder.Redirect(w, r, s, bookingTab)
}

func (h *BookingHandler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	var req dto.SelectSlotRequest
	if err := form.Decode(r, &req); err != nil {
		s.Fail("Neispravan zahtjev.")
		h.responder.Redirect(w, r, s, bookingTab)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		s.Fail(h.validator.Summary(err))
		h.responder.Redirect(w, r, s, bookingTab)
		return
	}

	if err := h.bookingUsecase.SelectSlot(r.Context(), s, req.SlotID); err != nil {
		h.responder.Fail(w, r, s, err, bookingTab)
		return
	}
	h.responder.Redirect(w, r, s, bookingTab)
}

// Confirm books the selected slot
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	if _, err := h.bookingUsecase.Confirm(r.Context(), s); err != nil {
		h.responder.Fail(w, r, s, err, bookingTab)
		return
	}

	s.Notify("Termin je uspješno rezerviran.")
	h.responder.Redirect(w, r, s, bookingTab)
}

// RequestCancel asks for confirmation before the booking is cancelled
func (h *BookingHandler) RequestCancel(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	id, err := pathID(r)
	if err != nil {
		h.responder.Fail(w, r, s, usecase.ErrBookingNotFound, myBookingTab)
		return
	}

	if err := h.bookingUsecase.RequestCancel(r.Context(), s, id); err != nil {
		h.responder.Fail(w, r, s, err, myBookingTab)
		return
	}
	h.responder.Redirect(w, r, s, myBookingTab)
}
