package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/waveact/admin-dashboard-backend/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Message:   "Admin Dashboard Backend Running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
