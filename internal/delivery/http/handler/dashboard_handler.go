package handler

import (
	"net/http"
	"time"

	"bookfast-web/internal/converter"
	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/delivery/http/view"
	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/section"
	"bookfast-web/internal/session"
	"bookfast-web/internal/usecase"
)

const (
	adminPath = "/admin"
	userPath  = "/user"
)

type DashboardHandler struct {
	responder       *Responder
	salonUsecase    usecase.SalonUsecase
	employeeUsecase usecase.EmployeeUsecase
	bookingUsecase  usecase.BookingUsecase
	location        *time.Location
}

func NewDashboardHandler(
	responder *Responder,
	salonUsecase usecase.SalonUsecase,
	employeeUsecase usecase.EmployeeUsecase,
	bookingUsecase usecase.BookingUsecase,
	location *time.Location,
) *DashboardHandler {
	return &DashboardHandler{
		responder:       responder,
		salonUsecase:    salonUsecase,
		employeeUsecase: employeeUsecase,
		bookingUsecase:  bookingUsecase,
		location:        location,
	}
}

// Admin renders the salon owner dashboard
func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	active, ok := NormalizeSection(w, r, section.AdminSections)
	if !ok {
		return
	}
	s := sessionFrom(r)
	ctx := r.Context()

	page := view.AdminPage{
		Section: active,
		SalonForm: dto.SalonRequest{
			OpensAt:      entity.DefaultOpensAt,
			ClosesAt:     entity.DefaultClosesAt,
			SlotDuration: entity.DefaultSlotDuration,
			IsActive:     true,
		},
	}

	var err error
	switch active {
	case section.Salons, section.Employees:
		var salons []entity.Salon
		salons, err = h.salonUsecase.List(ctx, s, "")
		if err == nil {
			page.Salons = converter.SalonsToResponses(salons, 0)
		}
		if err == nil && active == section.Employees {
			var employees []entity.Employee
			employees, err = h.employeeUsecase.ListForSalons(ctx, s, salons)
			page.Employees = converter.EmployeesToResponses(employees)
		}
	case section.Bookings:
		var bookings []entity.Booking
		bookings, err = h.bookingUsecase.ListForOwner(ctx, s)
		page.Bookings = converter.BookingsToResponses(bookings)
	}
	if !h.loaded(w, r, s, err) {
		return
	}

	page.Layout = h.responder.Layout(r, s, labelFor(adminPath, active), view.NavLinks(adminPath, section.AdminSections, active))
	page.Confirm = view.NewConfirmDialog(s.Pending, adminPath, page.CSRFField)
	h.responder.Render(w, http.StatusOK, view.PageAdmin, page)
}

// User renders the customer dashboard
func (h *DashboardHandler) User(w http.ResponseWriter, r *http.Request) {
	active, ok := NormalizeSection(w, r, section.CustomerSections)
	if !ok {
		return
	}
	s := sessionFrom(r)
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	page := view.UserPage{Section: active, Query: query}

	var err error
	switch active {
	case section.Salons:
		err = h.fillBooking(r, s, &page)
	case section.Bookings:
		var bookings []entity.Booking
		bookings, err = h.bookingUsecase.ListMine(ctx, s)
		page.Bookings = converter.BookingsToResponses(bookings)
	}
	if !h.loaded(w, r, s, err) {
		return
	}

	page.Layout = h.responder.Layout(r, s, labelFor(userPath, active), view.NavLinks(userPath, section.CustomerSections, active))
	page.Salons.CSRFField = page.CSRFField
	page.Confirm = view.NewConfirmDialog(s.Pending, userPath, page.CSRFField)
	h.responder.Render(w, http.StatusOK, view.PageUser, page)
}

func (h *DashboardHandler) fillBooking(r *http.Request, s *session.Session, page *view.UserPage) error {
	ctx := r.Context()

	salons, err := h.salonUsecase.List(ctx, s, page.Query)
	if err != nil {
		return err
	}
	page.Salons = view.SalonList{
		Salons: converter.SalonsToResponses(salons, s.Selection.SalonID),
		Query:  page.Query,
	}

	if !s.Selection.HasSalon() {
		return nil
	}

	active := findSalon(salons, s.Selection.SalonID)
	if active == nil && page.Query != "" {
		all, err := h.salonUsecase.List(ctx, s, "")
		if err != nil {
			return err
		}
		active = findSalon(all, s.Selection.SalonID)
	}
	if active == nil {
		// the salon is gone upstream
		s.Selection.SetSalon(0)
		return nil
	}
	page.ActiveSalon = converter.SalonToResponse(active)

	now := time.Now().In(h.location)
	page.Calendar = *converter.CalendarToResponse(s.Selection.View, now, s.Selection.Date)
	page.Date = s.Selection.Date
	page.DateLabel = converter.DateLabel(s.Selection.Date)

	slots, err := h.bookingUsecase.Slots(ctx, s)
	if err != nil {
		return err
	}
	page.Slots = converter.SlotsToResponses(slots, s.Selection.SelectedSlotID)
	for i := range page.Slots {
		if page.Slots[i].Selected {
			page.SelectedSlot = &page.Slots[i]
		}
	}
	if page.SelectedSlot == nil {
		s.Selection.ClearSelection()
	}
	return nil
}

// loaded reports whether rendering may continue after loading page data. An
// expired api token ends the session; other failures become a notice on the
// page.
func (h *DashboardHandler) loaded(w http.ResponseWriter, r *http.Request, s *session.Session, err error) bool {
	if err == nil {
		return true
	}
	if isSessionExpired(err) {
		h.responder.EndSession(w, r, s)
		return false
	}
	s.Fail(ErrorMessage(err))
	return true
}

func findSalon(salons []entity.Salon, id int64) *entity.Salon {
	for i := range salons {
		if salons[i].ID == id {
			return &salons[i]
		}
	}
	return nil
}

func labelFor(basePath string, s section.Section) string {
	if basePath == adminPath && s == section.Salons {
		return "Moji saloni"
	}
	return section.Label(s)
}
