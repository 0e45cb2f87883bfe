package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookfast-web/internal/converter"
	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/delivery/http/view"
	"bookfast-web/internal/section"
	"bookfast-web/internal/usecase"
	"bookfast-web/pkg/debounce"
	"bookfast-web/pkg/form"
	"bookfast-web/pkg/response"
	"bookfast-web/pkg/validator"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
)

type SalonHandler struct {
	responder     *Responder
	renderer      *view.Renderer
	salonUsecase  usecase.SalonUsecase
	searchUsecase usecase.SalonSearchUsecase
	validator     *validator.CustomValidator
}

func NewSalonHandler(
	responder *Responder,
	renderer *view.Renderer,
	salonUsecase usecase.SalonUsecase,
	searchUsecase usecase.SalonSearchUsecase,
	validator *validator.CustomValidator,
) *SalonHandler {
	return &SalonHandler{
		responder:     responder,
		renderer:      renderer,
		salonUsecase:  salonUsecase,
		searchUsecase: searchUsecase,
		validator:     validator,
	}
}

var salonsTab = tabURL(adminPath, section.Salons)

func (h *SalonHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	if _, err := h.salonUsecase.Create(r.Context(), s, req); err != nil {
		h.responder.Fail(w, r, s, err, salonsTab)
		return
	}

	s.Notify("Salon je uspješno dodan.")
	h.responder.Redirect(w, r, s, salonsTab)
}

func (h *SalonHandler) Update(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	id, err := pathID(r)
	if err != nil {
		h.responder.Fail(w, r, s, usecase.ErrSalonNotFound, salonsTab)
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	if _, err := h.salonUsecase.Update(r.Context(), s, id, req); err != nil {
		h.responder.Fail(w, r, s, err, salonsTab)
		return
	}

	s.Notify("Radno vrijeme salona je ažurirano.")
	h.responder.Redirect(w, r, s, salonsTab)
}

// RequestDelete asks for confirmation before the salon is deleted
func (h *SalonHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	id, err := pathID(r)
	if err != nil {
		h.responder.Fail(w, r, s, usecase.ErrSalonNotFound, salonsTab)
		return
	}

	if err := h.salonUsecase.RequestDelete(r.Context(), s, id); err != nil {
		h.responder.Fail(w, r, s, err, salonsTab)
		return
	}
	h.responder.Redirect(w, r, s, salonsTab)
}

// Search serves the live salon search. Requests replaced by a newer
// keystroke of the same session answer 204.
func (h *SalonHandler) Search(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	salons, err := h.searchUsecase.Search(r.Context(), s, query)
	switch {
	case err == nil:
	case errors.Is(err, debounce.ErrSuperseded), errors.Is(err, context.Canceled):
		w.WriteHeader(http.StatusNoContent)
		return
	case isSessionExpired(err):
		h.responder.Destroy(w, r, s)
		response.Unauthorized(w, "")
		return
	default:
		response.BadGateway(w, ErrorMessage(err))
		return
	}

	list := converter.SalonsToResponses(salons, s.Selection.SalonID)
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		response.Success(w, http.StatusOK, "", list)
		return
	}

	if err := h.renderer.RenderSalons(w, view.SalonList{
		Salons:    list,
		Query:     query,
		CSRFField: csrf.TemplateField(r),
	}); err != nil {
		http.Error(w, genericErrorMessage, http.StatusInternalServerError)
	}
}

func (h *SalonHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.SalonRequest, bool) {
	s := sessionFrom(r)

	var req dto.SalonRequest
	if err := form.Decode(r, &req); err != nil {
		s.Fail("Neispravan zahtjev.")
		h.responder.Redirect(w, r, s, salonsTab)
		return nil, false
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	req.Description = strings.TrimSpace(req.Description)

	if err := h.validator.Validate(&req); err != nil {
		s.Fail(h.validator.Summary(err))
		h.responder.Redirect(w, r, s, salonsTab)
		return nil, false
	}
	return &req, true
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
