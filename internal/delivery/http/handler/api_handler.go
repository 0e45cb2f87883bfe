package handler

import (
	"context"
	"net/http"
	"time"

	"bookfast-web/internal/calendar"
	"bookfast-web/internal/converter"
	"bookfast-web/internal/delivery/dto"
	"bookfast-web/pkg/form"
	"bookfast-web/pkg/response"
	"bookfast-web/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	log         *logrus.Logger
	redisClient *redis.Client
	validator   *validator.CustomValidator
	location    *time.Location
}

func NewAPIHandler(log *logrus.Logger, redisClient *redis.Client, validator *validator.CustomValidator, location *time.Location) *APIHandler {
	return &APIHandler{
		log:         log,
		redisClient: redisClient,
		validator:   validator,
		location:    location,
	}
}

// Health reports whether the session store is reachable
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Warnf("Failed to ping Redis: %+v", err)
		response.JSON(w, http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Redis: "down"})
		return
	}

	response.JSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Redis: "up"})
}

// Calendar returns the 42 day grid of a month. Months are zero based and
// out of range values roll over into neighbouring years.
// @Summary Calendar grid
// @Tags Calendar
// @Produce json
// @Param year query int false "Year, current year when omitted"
// @Param month query int false "Zero based month"
// @Success 200 {object} response.Response{data=dto.CalendarResponse}
// @Failure 400 {object} response.Response
// @Router /calendar [get]
func (h *APIHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	var req dto.CalendarRequest
	if err := form.DecodeQuery(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Neispravni parametri", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	now := time.Now().In(h.location)
	v := calendar.ViewOf(now)
	if req.Year != 0 {
		v = calendar.View{Year: req.Year, Month: req.Month}.Normalize()
	}

	response.Success(w, http.StatusOK, "", converter.CalendarToResponse(v, now, ""))
}
