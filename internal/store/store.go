package store

import (
	"context"
	"errors"

	"github.com/waveact/admin-dashboard-backend/internal/models"
)

// ErrNotFound is returned when a requested single document is absent.
// Transport and store failures are returned as-is.
var ErrNotFound = errors.New("record not found")

type ProgressStore interface {
	List(ctx context.Context) ([]models.Progress, error)
	Get(ctx context.Context, uid string) (*models.Progress, error)
	TopByLevel(ctx context.Context, limit int) ([]models.Progress, error)
	SetEmail(ctx context.Context, uid, email string) error
}

// AdminStore looks up privileged-operator membership records.
// Get returns (nil, nil) when no record exists for the uid.
type AdminStore interface {
	Get(ctx context.Context, uid string) (*models.AdminRecord, error)
}

type ActivityStore interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Activity, error)
	ListRecent(ctx context.Context, limit int) ([]models.Activity, error)
	Add(ctx context.Context, userID, activityType, details string) error
}

type FeedbackStore interface {
	List(ctx context.Context, limit int) ([]models.Feedback, error)
	Add(ctx context.Context, req *models.Feedback) error
	UpdateStatus(ctx context.Context, id, status string) error
}

type NameChangeStore interface {
	ListRecent(ctx context.Context, limit int) ([]models.NameChange, error)
}

// CollectionLister enumerates top-level store collections (diagnostics).
type CollectionLister interface {
	CollectionIDs(ctx context.Context) ([]string, error)
}
