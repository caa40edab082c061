package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/waveact/admin-dashboard-backend/internal/models"
	"github.com/waveact/admin-dashboard-backend/internal/services"
	"github.com/waveact/admin-dashboard-backend/internal/store"
)

type fakeFeedbackStore struct {
	records       []models.Feedback
	added         []models.Feedback
	statusUpdates map[string]string
}

func (f *fakeFeedbackStore) List(_ context.Context, limit int) ([]models.Feedback, error) {
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func (f *fakeFeedbackStore) Add(_ context.Context, fb *models.Feedback) error {
	f.added = append(f.added, *fb)
	return nil
}

func (f *fakeFeedbackStore) UpdateStatus(_ context.Context, id, status string) error {
	for _, rec := range f.records {
		if rec.ID == id {
			if f.statusUpdates == nil {
				f.statusUpdates = make(map[string]string)
			}
			f.statusUpdates[id] = status
			return nil
		}
	}
	return store.ErrNotFound
}

func newFeedbackApp(fs *fakeFeedbackStore) *fiber.App {
	handler := NewFeedbackHandler(services.NewFeedbackService(fs))
	app := fiber.New()
	app.Post("/feedback", handler.Create)
	app.Get("/feedback", handler.List)
	app.Put("/feedback/:id/status", handler.UpdateStatus)
	return app
}

func TestFeedbackHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantStored int
	}{
		{
			name:       "valid submission",
			body:       `{"userId":"u1","message":"great app"}`,
			wantStatus: fiber.StatusCreated,
			wantStored: 1,
		},
		{
			name:       "missing message",
			body:       `{"userId":"u1"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "missing userId",
			body:       `{"message":"hi"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fs := &fakeFeedbackStore{}
			app := newFeedbackApp(fs)

			req := httptest.NewRequest("POST", "/feedback", strings.NewReader(test.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != test.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, test.wantStatus)
			}
			if len(fs.added) != test.wantStored {
				t.Errorf("stored %d records, want %d", len(fs.added), test.wantStored)
			}
		})
	}
}

func TestFeedbackHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		wantStatus int
		wantStored string
	}{
		{
			name:       "valid transition",
			id:         "f1",
			body:       `{"status":"read"}`,
			wantStatus: fiber.StatusOK,
			wantStored: "read",
		},
		{
			name:       "restore resolved to new",
			id:         "f2",
			body:       `{"status":"new"}`,
			wantStatus: fiber.StatusOK,
			wantStored: "new",
		},
		{
			name:       "unknown status",
			id:         "f1",
			body:       `{"status":"archived"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "missing record",
			id:         "nope",
			body:       `{"status":"read"}`,
			wantStatus: fiber.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fs := &fakeFeedbackStore{records: []models.Feedback{
				{ID: "f1", Status: models.FeedbackStatusNew},
				{ID: "f2", Status: models.FeedbackStatusResolved},
			}}
			app := newFeedbackApp(fs)

			req := httptest.NewRequest("PUT", "/feedback/"+test.id+"/status", strings.NewReader(test.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != test.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, test.wantStatus)
			}

			if test.wantStored != "" {
				if fs.statusUpdates[test.id] != test.wantStored {
					t.Errorf("stored status = %q, want %q", fs.statusUpdates[test.id], test.wantStored)
				}
			} else if len(fs.statusUpdates) != 0 {
				t.Errorf("store was written on a rejected transition: %v", fs.statusUpdates)
			}
		})
	}
}
