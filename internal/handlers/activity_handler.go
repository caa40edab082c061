package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/waveact/admin-dashboard-backend/internal/dto"
	"github.com/waveact/admin-dashboard-backend/internal/services"
)

type ActivityHandler struct {
	activities *services.ActivityService
}

func NewActivityHandler(activities *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

func (h *ActivityHandler) ByUser(c *fiber.Ctx) error {
	records, err := h.activities.ForUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		slog.Error("failed to fetch user activities", "error", err)
		return internalError(c, err)
	}
	return c.JSON(records)
}

func (h *ActivityHandler) Recent(c *fiber.Ctx) error {
	records, err := h.activities.Recent(c.UserContext())
	if err != nil {
		slog.Error("failed to fetch recent activities", "error", err)
		return internalError(c, err)
	}
	return c.JSON(records)
}

func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.activities.Record(c.UserContext(), &req); err != nil {
		if errors.Is(err, services.ErrActivityRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to record activity", "error", err)
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}
