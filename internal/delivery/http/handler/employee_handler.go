package handler

import (
	"net/http"

	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/section"
	"bookfast-web/internal/usecase"
	"bookfast-web/pkg/form"
	"bookfast-web/pkg/validator"
)

type EmployeeHandler struct {
	responder       *Responder
	employeeUsecase usecase.EmployeeUsecase
	validator       *validator.CustomValidator
}

func NewEmployeeHandler(responder *Responder, employeeUsecase usecase.EmployeeUsecase, validator *validator.CustomValidator) *EmployeeHandler {
	return &EmployeeHandler{
		responder:       responder,
		employeeUsecase: employeeUsecase,
		validator:       validator,
	}
}

var employeesTab = tabURL(adminPath, section.Employees)

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	var req dto.EmployeeRequest
	if err := form.Decode(r, &req); err != nil {
		s.Fail("Neispravan zahtjev.")
		h.responder.Redirect(w, r, s, employeesTab)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		s.Fail(h.validator.Summary(err))
		h.responder.Redirect(w, r, s, employeesTab)
		return
	}

	if _, err := h.employeeUsecase.Create(r.Context(), s, &req); err != nil {
		h.responder.Fail(w, r, s, err, employeesTab)
		return
	}

	s.Notify("Zaposlenik je uspješno dodan.")
	h.responder.Redirect(w, r, s, employeesTab)
}

// RequestDelete asks for confirmation before the employee is deleted
func (h *EmployeeHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	id, err := pathID(r)
	if err != nil {
		h.responder.Fail(w, r, s, usecase.ErrEmployeeNotFound, employeesTab)
		return
	}

	if err := h.employeeUsecase.RequestDelete(r.Context(), s, id); err != nil {
		h.responder.Fail(w, r, s, err, employeesTab)
		return
	}
	h.responder.Redirect(w, r, s, employeesTab)
}
