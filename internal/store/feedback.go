package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/waveact/admin-dashboard-backend/internal/models"
)

const feedbackCollection = "feedback"

type FirestoreFeedbackStore struct {
	client *firestore.Client
}

func NewFirestoreFeedbackStore(client *firestore.Client) *FirestoreFeedbackStore {
	return &FirestoreFeedbackStore{client: client}
}

func (s *FirestoreFeedbackStore) List(ctx context.Context, limit int) ([]models.Feedback, error) {
	iter := s.client.Collection(feedbackCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var records []models.Feedback
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list feedback: %w", err)
		}
		var f models.Feedback
		if err := doc.DataTo(&f); err != nil {
			return nil, fmt.Errorf("failed to decode feedback %s: %w", doc.Ref.ID, err)
		}
		f.ID = doc.Ref.ID
		records = append(records, f)
	}
	return records, nil
}

func (s *FirestoreFeedbackStore) Add(ctx context.Context, fb *models.Feedback) error {
	_, err := s.client.Collection(feedbackCollection).NewDoc().Create(ctx, map[string]interface{}{
		"userId":    fb.UserID,
		"userName":  fb.UserName,
		"userEmail": fb.UserEmail,
		"message":   fb.Message,
		"status":    models.FeedbackStatusNew,
		"timestamp": firestore.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to add feedback: %w", err)
	}
	return nil
}

// UpdateStatus overwrites the status and stamps updatedAt server-side.
// Status validation happens before this call.
func (s *FirestoreFeedbackStore) UpdateStatus(ctx context.Context, id, newStatus string) error {
	_, err := s.client.Collection(feedbackCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update feedback %s: %w", id, err)
	}
	return nil
}
