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

const progressCollection = "progress"

type FirestoreProgressStore struct {
	client *firestore.Client
}

func NewFirestoreProgressStore(client *firestore.Client) *FirestoreProgressStore {
	return &FirestoreProgressStore{client: client}
}

func (s *FirestoreProgressStore) List(ctx context.Context) ([]models.Progress, error) {
	iter := s.client.Collection(progressCollection).Documents(ctx)
	defer iter.Stop()

	var records []models.Progress
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list progress: %w", err)
		}
		var p models.Progress
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to decode progress %s: %w", doc.Ref.ID, err)
		}
		p.UserID = doc.Ref.ID
		records = append(records, p)
	}
	return records, nil
}

func (s *FirestoreProgressStore) Get(ctx context.Context, uid string) (*models.Progress, error) {
	doc, err := s.client.Collection(progressCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress %s: %w", uid, err)
	}

	var p models.Progress
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode progress %s: %w", uid, err)
	}
	p.UserID = doc.Ref.ID
	return &p, nil
}

func (s *FirestoreProgressStore) TopByLevel(ctx context.Context, limit int) ([]models.Progress, error) {
	iter := s.client.Collection(progressCollection).
		OrderBy("level", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var records []models.Progress
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query leaderboard: %w", err)
		}
		var p models.Progress
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to decode progress %s: %w", doc.Ref.ID, err)
		}
		p.UserID = doc.Ref.ID
		records = append(records, p)
	}
	return records, nil
}

func (s *FirestoreProgressStore) SetEmail(ctx context.Context, uid, email string) error {
	_, err := s.client.Collection(progressCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "email", Value: email},
	})
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to set email for %s: %w", uid, err)
	}
	return nil
}
