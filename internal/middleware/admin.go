package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/waveact/admin-dashboard-backend/internal/dto"
	"github.com/waveact/admin-dashboard-backend/internal/store"
)

// AdminRequired allows the request only when a membership record exists
// for the verified uid and its isAdmin field is exactly true. A store
// failure is a 500, never an implicit allow or deny.
func AdminRequired(admins store.AdminStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := AuthUser(c)
		if tok == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthenticated",
			})
		}

		rec, err := admins.Get(c.UserContext(), tok.UID)
		if err != nil {
			slog.Error("admin check failed", "uid", tok.UID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin check failed",
			})
		}

		if rec == nil || !rec.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden: admin access only",
			})
		}

		return c.Next()
	}
}
