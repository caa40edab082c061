package identity

import (
	"context"

	"github.com/waveact/admin-dashboard-backend/internal/models"
)

// Token is a verified identity claim set. It is passed through the
// request chain explicitly (fiber locals), never held in package state.
type Token struct {
	UID   string
	Email string
}

// Verifier validates an opaque bearer credential with the identity
// provider. Verification failures are terminal; no retries.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Token, error)
}

// Directory lists the identity provider's user records, capped at limit.
type Directory interface {
	ListUsers(ctx context.Context, limit int) ([]models.AuthUser, error)
}
