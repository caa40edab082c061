package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/waveact/admin-dashboard-backend/internal/models"
)

const nameChangesCollection = "display_name_changes"

type FirestoreNameChangeStore struct {
	client *firestore.Client
}

func NewFirestoreNameChangeStore(client *firestore.Client) *FirestoreNameChangeStore {
	return &FirestoreNameChangeStore{client: client}
}

func (s *FirestoreNameChangeStore) ListRecent(ctx context.Context, limit int) ([]models.NameChange, error) {
	iter := s.client.Collection(nameChangesCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var records []models.NameChange
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list name changes: %w", err)
		}
		var nc models.NameChange
		if err := doc.DataTo(&nc); err != nil {
			return nil, fmt.Errorf("failed to decode name change %s: %w", doc.Ref.ID, err)
		}
		nc.ID = doc.Ref.ID
		records = append(records, nc)
	}
	return records, nil
}
