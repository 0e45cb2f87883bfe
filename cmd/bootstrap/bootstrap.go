package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookfast-web/config"
	deliveryHttp "bookfast-web/internal/delivery/http"
	"bookfast-web/internal/delivery/http/handler"
	"bookfast-web/internal/delivery/http/middleware"
	"bookfast-web/internal/delivery/http/view"
	"bookfast-web/internal/infrastructure/api"
	"bookfast-web/internal/infrastructure/cache"
	"bookfast-web/internal/repository"
	"bookfast-web/internal/service"
	"bookfast-web/internal/usecase"
	"bookfast-web/pkg/debounce"
	"bookfast-web/pkg/jwt"
	"bookfast-web/pkg/metrics"
	"bookfast-web/pkg/validator"

	"github.com/gorilla/csrf"
	"github.com/gorilla/handlers"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const rateLimiterCleanupInterval = time.Minute

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server

	stopCleanup chan struct{}
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{stopCleanup: make(chan struct{})}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := app.initializeServer(cfg, redisClient)
	if err != nil {
		redisClient.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(cfg *config.Config, redisClient *redis.Client) (*http.Server, error) {
	log := logrus.StandardLogger()
	location := cfg.App.Location()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New("bookfast_web")
		log.Infof("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Initialize upstream api client
	apiClient, err := api.NewClient(cfg.API, log, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.Session)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	authRepo := repository.NewAuthRepository(apiClient)
	salonRepo := repository.NewSalonRepository(apiClient)
	employeeRepo := repository.NewEmployeeRepository(apiClient)
	slotRepo := repository.NewSlotRepository(apiClient)
	bookingRepo := repository.NewBookingRepository(apiClient)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.Session.Expiry)

	// Initialize services
	auditService := service.NewAuditService(log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, authRepo, sessionRepo, jwtService, location, m)
	salonUsecase := usecase.NewSalonUsecase(log, salonRepo, auditService)
	searchUsecase := usecase.NewSalonSearchUsecase(log, salonRepo, debounce.New(cfg.Search.Debounce), m)
	employeeUsecase := usecase.NewEmployeeUsecase(log, salonRepo, employeeRepo, auditService)
	bookingUsecase := usecase.NewBookingUsecase(log, salonRepo, slotRepo, bookingRepo, auditService)
	confirmUsecase := usecase.NewConfirmUsecase(log, salonUsecase, employeeUsecase, bookingUsecase)

	// Initialize views
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	responder := handler.NewResponder(log, renderer, authUsecase, cfg.Session.CookieName)

	// Initialize handlers
	cookieMaxAge := int(cfg.Session.Expiry.Seconds())
	authHandler := handler.NewAuthHandler(responder, authUsecase, customValidator, cfg.Session.CookieName, cookieMaxAge, cfg.App.IsProduction())
	dashboardHandler := handler.NewDashboardHandler(responder, salonUsecase, employeeUsecase, bookingUsecase, location)
	salonHandler := handler.NewSalonHandler(responder, renderer, salonUsecase, searchUsecase, customValidator)
	employeeHandler := handler.NewEmployeeHandler(responder, employeeUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(responder, bookingUsecase, customValidator, location)
	confirmHandler := handler.NewConfirmHandler(responder, confirmUsecase)
	apiHandler := handler.NewAPIHandler(log, redisClient, customValidator, location)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authUsecase, cfg.Session.CookieName)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.HTTP.AllowedOrigins)
	rateLimiter := middleware.NewRateLimiter(cfg.HTTP.LoginRatePerMinute)
	go rateLimiter.RunCleanup(rateLimiterCleanupInterval, app.stopCleanup)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		dashboardHandler,
		salonHandler,
		employeeHandler,
		bookingHandler,
		confirmHandler,
		apiHandler,
		authMiddleware,
		corsMiddleware,
		rateLimiter,
		m,
		cfg.Metrics.Path,
	)
	httpRouter := router.Setup()

	protect := csrf.Protect(
		[]byte(cfg.Session.CSRFKey),
		csrf.Secure(cfg.App.IsProduction()),
		csrf.Path("/"),
		csrf.TrustedOrigins(cfg.Session.CSRFTrustedOrigins),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithField("reason", csrf.FailureReason(r)).Warn("Rejected request with invalid CSRF token")
			http.Error(w, "Sigurnosni token nije ispravan. Osvježite stranicu i pokušajte ponovno.", http.StatusForbidden)
		})),
	)

	var h http.Handler = protect(httpRouter)
	if !cfg.App.IsProduction() {
		// development serves plain http, skip the https referer check
		protected := h
		h = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
	h = middleware.RequestLogger(log)(h)
	h = handlers.CompressHandler(h)
	h = middleware.ProxyHeaders(cfg.HTTP.TrustProxy)(h)
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(log), handlers.PrintRecoveryStack(true))(h)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close stops background workers and closes the Redis connection
func (app *App) Close() {
	close(app.stopCleanup)

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
