package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/waveact/admin-dashboard-backend/internal/models"
)

const (
	systemLogsCollection = "system_logs"
	flushBatchSize       = 50
)

type logEntry struct {
	id     string
	record models.SystemLog
}

// FirestoreHandler is an slog.Handler that batches ERROR+ logs into the
// system_logs collection.
type FirestoreHandler struct {
	client *firestore.Client
	mu     sync.Mutex
	buffer []logEntry
	ticker *time.Ticker
	done   chan struct{}
}

func NewFirestoreHandler(client *firestore.Client) *FirestoreHandler {
	h := &FirestoreHandler{
		client: client,
		buffer: make([]logEntry, 0, flushBatchSize),
		ticker: time.NewTicker(5 * time.Second),
		done:   make(chan struct{}),
	}
	go h.flushLoop()
	return h
}

func (h *FirestoreHandler) flushLoop() {
	for {
		select {
		case <-h.ticker.C:
			h.flush()
		case <-h.done:
			h.flush()
			return
		}
	}
}

func (h *FirestoreHandler) flush() {
	h.mu.Lock()
	if len(h.buffer) == 0 {
		h.mu.Unlock()
		return
	}
	batch := h.buffer
	h.buffer = make([]logEntry, 0, flushBatchSize)
	h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bw := h.client.BulkWriter(ctx)
	col := h.client.Collection(systemLogsCollection)
	for _, e := range batch {
		// Logged at INFO so the failure never re-enters this sink.
		if _, err := bw.Create(col.Doc(e.id), e.record); err != nil {
			slog.Info("system log enqueue failed", "error", err)
		}
	}
	bw.End()
}

func (h *FirestoreHandler) Stop() {
	h.ticker.Stop()
	close(h.done)
}

// Enabled only handles ERROR and above.
func (h *FirestoreHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *FirestoreHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			entry.RequestID = a.Value.String()
		case "user_id", "uid":
			entry.UserID = a.Value.String()
		case "path":
			entry.Path = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	})
	if len(extra) > 0 {
		entry.Extra = extra
	}

	h.mu.Lock()
	h.buffer = append(h.buffer, logEntry{id: uuid.NewString(), record: entry})
	needFlush := len(h.buffer) >= flushBatchSize
	h.mu.Unlock()

	if needFlush {
		go h.flush()
	}
	return nil
}

func (h *FirestoreHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *FirestoreHandler) WithGroup(name string) slog.Handler {
	return h
}
