package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/waveact/admin-dashboard-backend/internal/models"
)

const adminsCollection = "admins"

type FirestoreAdminStore struct {
	client *firestore.Client
}

func NewFirestoreAdminStore(client *firestore.Client) *FirestoreAdminStore {
	return &FirestoreAdminStore{client: client}
}

// Get returns the membership record for uid, or (nil, nil) when none
// exists. The isAdmin field is read with a strict bool assertion so a
// truthy non-boolean legacy value never authorizes.
func (s *FirestoreAdminStore) Get(ctx context.Context, uid string) (*models.AdminRecord, error) {
	doc, err := s.client.Collection(adminsCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin record %s: %w", uid, err)
	}

	data := doc.Data()
	rec := &models.AdminRecord{UID: doc.Ref.ID}
	rec.IsAdmin, _ = data["isAdmin"].(bool)
	rec.Email, _ = data["email"].(string)
	if t, ok := data["createdAt"].(time.Time); ok {
		rec.CreatedAt = t
	}
	return rec, nil
}
