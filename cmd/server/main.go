package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"github.com/waveact/admin-dashboard-backend/internal/config"
	"github.com/waveact/admin-dashboard-backend/internal/firebase"
	"github.com/waveact/admin-dashboard-backend/internal/handlers"
	"github.com/waveact/admin-dashboard-backend/internal/identity"
	"github.com/waveact/admin-dashboard-backend/internal/logging"
	"github.com/waveact/admin-dashboard-backend/internal/middleware"
	"github.com/waveact/admin-dashboard-backend/internal/routes"
	"github.com/waveact/admin-dashboard-backend/internal/services"
	"github.com/waveact/admin-dashboard-backend/internal/store"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment")
	}

	cfg := config.Load()

	// Identity provider + document store (single long-lived clients)
	clients, err := firebase.Connect(context.Background(), cfg)
	if err != nil {
		slog.Error("firebase connection failed", "error", err)
		os.Exit(1)
	}

	// Firestore log sink (ERROR+ async batch)
	fsLogHandler := logging.NewFirestoreHandler(clients.Firestore)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		fsLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(clients.Firestore, cleanupDone)

	// Identity provider adapters
	provider := identity.NewFirebaseProvider(clients.Auth)

	// Stores
	progressStore := store.NewFirestoreProgressStore(clients.Firestore)
	adminStore := store.NewFirestoreAdminStore(clients.Firestore)
	activityStore := store.NewFirestoreActivityStore(clients.Firestore)
	feedbackStore := store.NewFirestoreFeedbackStore(clients.Firestore)
	nameChangeStore := store.NewFirestoreNameChangeStore(clients.Firestore)
	diagnostics := store.NewFirestoreDiagnostics(clients.Firestore)

	// Services
	userService := services.NewUserService(provider, progressStore, cfg.AuthListLimit)
	analyticsService := services.NewAnalyticsService(provider, progressStore, cfg.AuthListLimit)
	activityService := services.NewActivityService(activityStore)
	feedbackService := services.NewFeedbackService(feedbackStore)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	userHandler := handlers.NewUserHandler(userService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	activityHandler := handlers.NewActivityHandler(activityService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	nameChangeHandler := handlers.NewNameChangeHandler(nameChangeStore)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(diagnostics)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	// Routes
	routes.Setup(app, provider, adminStore,
		healthHandler, userHandler, analyticsHandler, activityHandler,
		feedbackHandler, nameChangeHandler, diagnosticsHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	fsLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := clients.Close(); err != nil {
		slog.Error("firestore close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
