package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/waveact/admin-dashboard-backend/internal/store"
)

type DiagnosticsHandler struct {
	lister store.CollectionLister
}

func NewDiagnosticsHandler(lister store.CollectionLister) *DiagnosticsHandler {
	return &DiagnosticsHandler{lister: lister}
}

func (h *DiagnosticsHandler) Collections(c *fiber.Ctx) error {
	ids, err := h.lister.CollectionIDs(c.UserContext())
	if err != nil {
		slog.Error("failed to list collections", "error", err)
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"collections": ids})
}
