package logging

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const logRetentionDays = 30

// StartCleanup runs a daily goroutine that deletes system_logs older
// than the retention window.
func StartCleanup(client *firestore.Client, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if deleted, err := deleteExpired(client); err != nil {
					slog.Error("log cleanup failed", "error", err)
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}

func deleteExpired(client *firestore.Client) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -logRetentionDays)
	iter := client.Collection(systemLogsCollection).
		Where("timestamp", "<", cutoff).
		Documents(ctx)
	defer iter.Stop()

	bw := client.BulkWriter(ctx)
	deleted := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			bw.End()
			return deleted, err
		}
		if _, err := bw.Delete(doc.Ref); err != nil {
			bw.End()
			return deleted, err
		}
		deleted++
	}
	bw.End()
	return deleted, nil
}
