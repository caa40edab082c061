package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/waveact/admin-dashboard-backend/internal/models"
)

const activitiesCollection = "activities"

type FirestoreActivityStore struct {
	client *firestore.Client
}

func NewFirestoreActivityStore(client *firestore.Client) *FirestoreActivityStore {
	return &FirestoreActivityStore{client: client}
}

func (s *FirestoreActivityStore) ListByUser(ctx context.Context, userID string, limit int) ([]models.Activity, error) {
	iter := s.client.Collection(activitiesCollection).
		Where("userId", "==", userID).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	return collectActivities(iter)
}

func (s *FirestoreActivityStore) ListRecent(ctx context.Context, limit int) ([]models.Activity, error) {
	iter := s.client.Collection(activitiesCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	return collectActivities(iter)
}

func (s *FirestoreActivityStore) Add(ctx context.Context, userID, activityType, details string) error {
	_, err := s.client.Collection(activitiesCollection).NewDoc().Create(ctx, map[string]interface{}{
		"userId":    userID,
		"type":      activityType,
		"details":   details,
		"timestamp": firestore.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to add activity: %w", err)
	}
	return nil
}

func collectActivities(iter *firestore.DocumentIterator) ([]models.Activity, error) {
	defer iter.Stop()

	var records []models.Activity
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list activities: %w", err)
		}
		var a models.Activity
		if err := doc.DataTo(&a); err != nil {
			return nil, fmt.Errorf("failed to decode activity %s: %w", doc.Ref.ID, err)
		}
		a.ID = doc.Ref.ID
		records = append(records, a)
	}
	return records, nil
}
