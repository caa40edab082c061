package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/waveact/admin-dashboard-backend/internal/handlers"
	"github.com/waveact/admin-dashboard-backend/internal/identity"
	"github.com/waveact/admin-dashboard-backend/internal/middleware"
	"github.com/waveact/admin-dashboard-backend/internal/store"
)

func Setup(
	app *fiber.App,
	verifier identity.Verifier,
	admins store.AdminStore,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	activityHandler *handlers.ActivityHandler,
	feedbackHandler *handlers.FeedbackHandler,
	nameChangeHandler *handlers.NameChangeHandler,
	diagnosticsHandler *handlers.DiagnosticsHandler,
) {
	authRequired := middleware.RequireAuth(verifier)
	adminRequired := middleware.AdminRequired(admins)

	// Rate limiter for gated operator routes: 60 req/min per IP. The
	// public feedback submission route deliberately carries none.
	rateLimit := limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	// Liveness (ungated)
	app.Get("/", healthHandler.Check)

	// Feedback submission (ungated)
	app.Post("/feedback", feedbackHandler.Create)

	// Everything below requires a verified token and admin membership.
	gated := []fiber.Handler{rateLimit, authRequired, adminRequired}

	activities := app.Group("/activities", gated...)
	activities.Get("/user/:userId", activityHandler.ByUser)
	activities.Get("/recent", activityHandler.Recent)
	app.Post("/activity", prepend(gated, activityHandler.Create)...)

	app.Get("/feedback", prepend(gated, feedbackHandler.List)...)
	app.Put("/feedback/:id/status", prepend(gated, feedbackHandler.UpdateStatus)...)

	users := app.Group("/users", gated...)
	users.Get("/progress", userHandler.ProgressList)
	users.Get("/progress/:userId", userHandler.ProgressByID)
	users.Get("/auth", userHandler.AuthUsers)
	users.Get("/combined", userHandler.Combined)
	users.Post("/migrate-emails", userHandler.MigrateEmails)

	app.Get("/analytics/summary", prepend(gated, analyticsHandler.Summary)...)
	app.Get("/leaderboard", prepend(gated, analyticsHandler.Leaderboard)...)
	app.Get("/leaderboard/debug", prepend(gated, analyticsHandler.LeaderboardDebug)...)

	app.Get("/display-name-changes", prepend(gated, nameChangeHandler.List)...)
	app.Get("/diagnostics/collections", prepend(gated, diagnosticsHandler.Collections)...)
}

func prepend(chain []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, h)
}
