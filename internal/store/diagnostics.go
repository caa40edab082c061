package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

type FirestoreDiagnostics struct {
	client *firestore.Client
}

func NewFirestoreDiagnostics(client *firestore.Client) *FirestoreDiagnostics {
	return &FirestoreDiagnostics{client: client}
}

func (d *FirestoreDiagnostics) CollectionIDs(ctx context.Context) ([]string, error) {
	refs, err := d.client.Collections(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids, nil
}
