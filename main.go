package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"hotelbook/backend"
	"hotelbook/config"
	"hotelbook/handlers"
	"hotelbook/middleware"
	"hotelbook/routes"
	"hotelbook/services/availability"
	"hotelbook/services/booking"
	"hotelbook/services/catalog"
	"hotelbook/services/session"
	"hotelbook/utils"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	api := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout(), logger)

	// stores.
	var (
		sessionStore session.Store
		draftStore   booking.DraftStore
	)
	switch cfg.SessionStore {
	case "redis":
		client, err := utils.GetSessionCacheClient()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize session cache: %v", err)
		}
		sessionStore = session.NewRedisStore(client, cfg.SessionTTL(), session.NewSealer(cfg.SessionSealKey))
		draftStore = booking.NewRedisDraftStore(client, cfg.SessionTTL())
	default:
		sessionStore = session.NewMemoryStore(cfg.SessionTTL())
		draftStore = booking.NewMemoryDraftStore(cfg.SessionTTL())
	}

	// services.
	sessionManager := session.NewManager(sessionStore, api, logger,
		session.WithPrivilegedIsolation(cfg.IsolatePrivilegedScopes),
	)

	mode, err := availability.ParseMode(cfg.AvailabilityMode)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	resolver := availability.NewResolver(api, logger,
		availability.WithMode(mode),
		availability.WithWindow(cfg.AvailabilityWindowMonths),
		availability.WithConcurrency(cfg.AvailabilityConcurrency),
	)

	catalogService := catalog.NewService(api, logger)
	bookingService := &booking.DefaultBookingService{
		Backend:    api,
		Calendars:  resolver,
		DraftStore: draftStore,
		Logger:     logger,
	}

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		Sessions:  sessionManager,
		Bookings:  bookingService,
		Catalog:   catalogService,
		Calendars: resolver,
		Auth:      api,
		CookieTTL: cfg.SessionTTL(),
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, cfg.AllowedOrigins())

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (backend %s)...", srv.Addr, cfg.BackendURL)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
	_ = logger.Sync()
}
