package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/waveact/admin-dashboard-backend/internal/services"
)

type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.analytics.Summary(c.UserContext())
	if err != nil {
		slog.Error("failed to compute analytics summary", "error", err)
		return internalError(c, err)
	}
	return c.JSON(summary)
}

func (h *AnalyticsHandler) Leaderboard(c *fiber.Ctx) error {
	entries, err := h.analytics.Leaderboard(c.UserContext(), services.LeaderboardLimit)
	if err != nil {
		slog.Error("failed to build leaderboard", "error", err)
		return internalError(c, err)
	}
	return c.JSON(entries)
}

func (h *AnalyticsHandler) LeaderboardDebug(c *fiber.Ctx) error {
	entries, err := h.analytics.LeaderboardDebug(c.UserContext())
	if err != nil {
		slog.Error("failed to build debug leaderboard", "error", err)
		return internalError(c, err)
	}
	return c.JSON(entries)
}
