package identity

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"github.com/waveact/admin-dashboard-backend/internal/models"
)

// FirebaseProvider implements Verifier and Directory against Firebase Auth.
type FirebaseProvider struct {
	client *auth.Client
}

func NewFirebaseProvider(client *auth.Client) *FirebaseProvider {
	return &FirebaseProvider{client: client}
}

func (p *FirebaseProvider) Verify(ctx context.Context, idToken string) (*Token, error) {
	decoded, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	email, _ := decoded.Claims["email"].(string)
	return &Token{UID: decoded.UID, Email: email}, nil
}

// ListUsers returns up to limit directory records. The provider pages
// internally; anything past limit is not fetched.
func (p *FirebaseProvider) ListUsers(ctx context.Context, limit int) ([]models.AuthUser, error) {
	iter := p.client.Users(ctx, "")

	users := make([]models.AuthUser, 0, limit)
	for len(users) < limit {
		rec, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		users = append(users, toAuthUser(rec.UserRecord))
	}
	return users, nil
}

func toAuthUser(rec *auth.UserRecord) models.AuthUser {
	u := models.AuthUser{
		UID:           rec.UID,
		Email:         rec.Email,
		DisplayName:   rec.DisplayName,
		PhotoURL:      rec.PhotoURL,
		EmailVerified: rec.EmailVerified,
		Disabled:      rec.Disabled,
	}
	if rec.UserMetadata != nil {
		u.CreationTime = millisToTime(rec.UserMetadata.CreationTimestamp)
		u.LastSignInTime = millisToTime(rec.UserMetadata.LastLogInTimestamp)
	}
	for _, info := range rec.ProviderUserInfo {
		u.ProviderData = append(u.ProviderData, models.ProviderInfo{ProviderID: info.ProviderID})
	}
	return u
}

func millisToTime(ms int64) *time.Time {
	if ms == 0 {
		return nil
	}
	t := time.UnixMilli(ms).UTC()
	return &t
}
