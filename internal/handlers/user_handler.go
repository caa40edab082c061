package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/waveact/admin-dashboard-backend/internal/dto"
	"github.com/waveact/admin-dashboard-backend/internal/services"
	"github.com/waveact/admin-dashboard-backend/internal/store"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) AuthUsers(c *fiber.Ctx) error {
	users, err := h.users.AuthUsers(c.UserContext())
	if err != nil {
		slog.Error("failed to fetch auth users", "error", err)
		return internalError(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) ProgressList(c *fiber.Ctx) error {
	records, err := h.users.ProgressList(c.UserContext())
	if err != nil {
		slog.Error("failed to fetch user progress", "error", err)
		return internalError(c, err)
	}
	return c.JSON(records)
}

func (h *UserHandler) ProgressByID(c *fiber.Ctx) error {
	userID := c.Params("userId")

	record, err := h.users.ProgressByID(c.UserContext(), userID)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User progress not found",
		})
	}
	if err != nil {
		slog.Error("failed to fetch user progress", "user_id", userID, "error", err)
		return internalError(c, err)
	}
	return c.JSON(record)
}

func (h *UserHandler) Combined(c *fiber.Ctx) error {
	combined, err := h.users.CombinedUsers(c.UserContext())
	if err != nil {
		slog.Error("failed to fetch combined user data", "error", err)
		return internalError(c, err)
	}
	return c.JSON(combined)
}

func (h *UserHandler) MigrateEmails(c *fiber.Ctx) error {
	result, err := h.users.MigrateEmails(c.UserContext())
	if err != nil {
		slog.Error("email migration failed", "error", err)
		return internalError(c, err)
	}
	return c.JSON(result)
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: err.Error(),
	})
}
