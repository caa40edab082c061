package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/waveact/admin-dashboard-backend/internal/store"
)

const nameChangeListLimit = 50

type NameChangeHandler struct {
	changes store.NameChangeStore
}

func NewNameChangeHandler(changes store.NameChangeStore) *NameChangeHandler {
	return &NameChangeHandler{changes: changes}
}

func (h *NameChangeHandler) List(c *fiber.Ctx) error {
	records, err := h.changes.ListRecent(c.UserContext(), nameChangeListLimit)
	if err != nil {
		slog.Error("failed to fetch name changes", "error", err)
		return internalError(c, err)
	}
	return c.JSON(records)
}
