package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/etama123/mo-ment/internal/config"
	"github.com/etama123/mo-ment/internal/handlers"
	custommw "github.com/etama123/mo-ment/internal/middleware"
	"github.com/etama123/mo-ment/internal/observability"
	"github.com/etama123/mo-ment/internal/services"
	"github.com/etama123/mo-ment/internal/store"
)

const (
	serviceName    = "moment-server"
	serviceVersion = "0.1.0"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize telemetry
	telemetry, err := observability.Initialize(context.Background(), observability.NewConfig(serviceName, serviceVersion))
	if err != nil {
		logger.Fatal("failed to initialize telemetry", zap.Error(err))
	}

	// Initialize in-memory stores
	calendars := store.NewCalendarStore()
	photos := store.NewPhotoStore()
	shares := store.NewShareStore()
	blobs := store.NewBlobStore()

	if cfg.Seed {
		store.Seed(calendars, photos, shares)
		logger.Info("seeded sample data", zap.Int("calendars", len(calendars.List())))
	}

	// Initialize services
	hub := services.NewEventsHub(logger)
	go hub.Run()

	photoService := services.NewPhotoService(calendars, photos, blobs, hub, logger, cfg.Upload)
	selection := services.NewSelectionController(calendars, photoService, logger)
	calendarService := services.NewCalendarService(calendars, photos, shares, blobs, selection, hub, logger)
	shareService := services.NewShareService(calendars, shares, hub, logger, cfg.BaseURL)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	calendarHandler := handlers.NewCalendarHandler(calendarService, selection)
	photoHandler := handlers.NewPhotoHandler(photoService)
	imageHandler := handlers.NewImageHandler(blobs)
	shareHandler := handlers.NewShareHandler(shareService)
	sharedViewHandler := handlers.NewSharedViewHandler(shareService, calendarService)
	sessionHandler := handlers.NewSessionHandler(selection)
	wsHandler := handlers.NewWebSocketHandler(hub, logger)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(observability.TracingMiddleware(serviceName))

	// Routes
	r.Get("/health", healthHandler.HealthCheck)
	r.Get("/api/health", healthHandler.HealthCheck)

	r.Route("/api/calendars", func(r chi.Router) {
		r.Get("/", calendarHandler.List)
		r.Post("/", calendarHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Patch("/", calendarHandler.Rename)
			r.Delete("/", calendarHandler.Delete)
			r.Get("/grid", calendarHandler.Grid)

			r.Route("/photos", func(r chi.Router) {
				r.Get("/", photoHandler.List)
				r.Post("/", photoHandler.Upload)
				r.Patch("/{photoId}", photoHandler.Update)
				r.Delete("/{photoId}", photoHandler.Delete)
			})

			r.Route("/shares", func(r chi.Router) {
				r.Get("/", shareHandler.List)
				r.Post("/", shareHandler.Invite)
				r.Delete("/{userId}", shareHandler.Revoke)
			})
			r.Get("/share-link", shareHandler.Link)
		})
	})

	r.Route("/api/session", func(r chi.Router) {
		r.Get("/", sessionHandler.State)
		r.Put("/calendar", sessionHandler.SelectCalendar)
		r.Put("/month", sessionHandler.SelectMonth)
		r.Put("/date", sessionHandler.SelectDate)
		r.Put("/photo", sessionHandler.SelectPhoto)
		r.Put("/note", sessionHandler.SaveNote)
		r.Delete("/photo", sessionHandler.DeleteSelected)
	})

	r.Get("/api/images/{imageId}", imageHandler.Serve)
	r.Get("/api/ws", wsHandler.HandleConnection)

	r.Route("/shared/{calendarId}", func(r chi.Router) {
		r.Use(custommw.SharedView)
		// All methods route here so the middleware can answer mutation
		// attempts with a visible refusal instead of a bare 405.
		r.HandleFunc("/", sharedViewHandler.View)
	})

	// Create server
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Longer for uploads
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Mo:ment server starting",
			zap.String("address", cfg.ServerAddress),
			zap.String("baseURL", cfg.BaseURL),
			zap.Int("maxPhotosPerUpload", cfg.Upload.MaxPhotosPerUpload),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := telemetry.Shutdown(ctx); err != nil {
		logger.Warn("telemetry shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
