package http

import (
	"net/http"

	"bookfast-web/internal/delivery/http/handler"
	"bookfast-web/internal/delivery/http/middleware"
	"bookfast-web/pkg/metrics"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	dashboardHandler *handler.DashboardHandler
	salonHandler     *handler.SalonHandler
	employeeHandler  *handler.EmployeeHandler
	bookingHandler   *handler.BookingHandler
	confirmHandler   *handler.ConfirmHandler
	apiHandler       *handler.APIHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
	rateLimiter      *middleware.RateLimiter
	metrics          *metrics.Metrics
	metricsPath      string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	salonHandler *handler.SalonHandler,
	employeeHandler *handler.EmployeeHandler,
	bookingHandler *handler.BookingHandler,
	confirmHandler *handler.ConfirmHandler,
	apiHandler *handler.APIHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimiter *middleware.RateLimiter,
	m *metrics.Metrics,
	metricsPath string,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
		salonHandler:     salonHandler,
		employeeHandler:  employeeHandler,
		bookingHandler:   bookingHandler,
		confirmHandler:   confirmHandler,
		apiHandler:       apiHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
		rateLimiter:      rateLimiter,
		metrics:          m,
		metricsPath:      metricsPath,
	}
}

func (r *Router) Setup() *mux.Router {
	if r.metrics != nil {
		r.router.Use(middleware.Metrics(r.metrics))
		r.router.Handle(r.metricsPath, r.metrics.Handler()).Methods(http.MethodGet)
	}

	// JSON endpoints
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(r.corsMiddleware.Handle)
	api.HandleFunc("/health", r.apiHandler.Health).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/calendar", r.apiHandler.Calendar).Methods(http.MethodGet, http.MethodOptions)

	// Auth pages (public)
	r.router.HandleFunc("/", r.authHandler.Page).Methods(http.MethodGet)
	public := r.router.NewRoute().Subrouter()
	public.Use(r.rateLimiter.Limit)
	public.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)

	protected := r.router.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Salon owner dashboard
	admin := r.router.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("", r.dashboardHandler.Admin).Methods(http.MethodGet)
	admin.HandleFunc("/salons", r.salonHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/salons/{id:[0-9]+}", r.salonHandler.Update).Methods(http.MethodPost)
	admin.HandleFunc("/salons/{id:[0-9]+}/delete", r.salonHandler.RequestDelete).Methods(http.MethodPost)
	admin.HandleFunc("/employees", r.employeeHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/employees/{id:[0-9]+}/delete", r.employeeHandler.RequestDelete).Methods(http.MethodPost)
	admin.HandleFunc("/confirm", r.confirmHandler.Confirm).Methods(http.MethodPost)
	admin.HandleFunc("/confirm/dismiss", r.confirmHandler.Dismiss).Methods(http.MethodPost)

	// Customer dashboard
	user := r.router.PathPrefix("/user").Subrouter()
	user.Use(r.authMiddleware.Authenticate)
	user.Use(middleware.RequireCustomer)
	user.HandleFunc("", r.dashboardHandler.User).Methods(http.MethodGet)
	user.HandleFunc("/salons", r.salonHandler.Search).Methods(http.MethodGet)
	user.HandleFunc("/salons/{id:[0-9]+}/select", r.bookingHandler.SelectSalon).Methods(http.MethodPost)
	user.HandleFunc("/date", r.bookingHandler.SetDate).Methods(http.MethodPost)
	user.HandleFunc("/calendar/prev", r.bookingHandler.PrevMonth).Methods(http.MethodPost)
	user.HandleFunc("/calendar/next", r.bookingHandler.NextMonth).Methods(http.MethodPost)
	user.HandleFunc("/calendar/today", r.bookingHandler.Today).Methods(http.MethodPost)
	user.HandleFunc("/slots/select", r.bookingHandler.SelectSlot).Methods(http.MethodPost)
	user.HandleFunc("/bookings", r.bookingHandler.Confirm).Methods(http.MethodPost)
	user.HandleFunc("/bookings/{id:[0-9]+}/cancel", r.bookingHandler.RequestCancel).Methods(http.MethodPost)
	user.HandleFunc("/confirm", r.confirmHandler.Confirm).Methods(http.MethodPost)
	user.HandleFunc("/confirm/dismiss", r.confirmHandler.Dismiss).Methods(http.MethodPost)

	return r.router
}
