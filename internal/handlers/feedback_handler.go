package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/waveact/admin-dashboard-backend/internal/dto"
	"github.com/waveact/admin-dashboard-backend/internal/services"
	"github.com/waveact/admin-dashboard-backend/internal/store"
)

type FeedbackHandler struct {
	feedback *services.FeedbackService
}

func NewFeedbackHandler(feedback *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	records, err := h.feedback.List(c.UserContext())
	if err != nil {
		slog.Error("failed to fetch feedback", "error", err)
		return internalError(c, err)
	}
	return c.JSON(records)
}

// Create is deliberately ungated; end users submit feedback directly
// from the app.
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.feedback.Submit(c.UserContext(), &req); err != nil {
		if errors.Is(err, services.ErrFeedbackRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to submit feedback", "error", err)
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

func (h *FeedbackHandler) UpdateStatus(c *fiber.Ctx) error {
	feedbackID := c.Params("id")

	var req dto.UpdateFeedbackStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.feedback.UpdateStatus(c.UserContext(), feedbackID, req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Feedback not found",
			})
		}
		slog.Error("failed to update feedback status", "feedback_id", feedbackID, "error", err)
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"feedbackId": feedbackID,
		"status":     req.Status,
	})
}
