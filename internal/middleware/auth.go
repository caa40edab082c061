package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/waveact/admin-dashboard-backend/internal/dto"
	"github.com/waveact/admin-dashboard-backend/internal/identity"
)

// AuthUserKey is the fiber locals key holding the verified identity.
const AuthUserKey = "authUser"

// RequireAuth extracts the bearer token and verifies it with the
// identity provider. A missing or malformed header fails without a
// provider call.
func RequireAuth(verifier identity.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Missing Authorization Bearer token",
			})
		}

		verified, err := verifier.Verify(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid or expired token",
			})
		}

		c.Locals(AuthUserKey, verified)
		return c.Next()
	}
}

// AuthUser returns the verified identity set by RequireAuth, or nil.
func AuthUser(c *fiber.Ctx) *identity.Token {
	tok, _ := c.Locals(AuthUserKey).(*identity.Token)
	return tok
}
