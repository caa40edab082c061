package services

import (
	"context"

	"github.com/waveact/admin-dashboard-backend/internal/models"
	"github.com/waveact/admin-dashboard-backend/internal/store"
)

type fakeDirectory struct {
	users []models.AuthUser
	err   error
	calls int
}

func (f *fakeDirectory) ListUsers(_ context.Context, limit int) ([]models.AuthUser, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.users) > limit {
		return f.users[:limit], nil
	}
	return f.users, nil
}

type fakeProgressStore struct {
	records []models.Progress
	listErr error

	getErr map[string]error
	setErr map[string]error

	emailUpdates map[string]string
	lastTopLimit int
}

func (f *fakeProgressStore) List(_ context.Context) ([]models.Progress, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeProgressStore) Get(_ context.Context, uid string) (*models.Progress, error) {
	if err, ok := f.getErr[uid]; ok {
		return nil, err
	}
	for _, p := range f.records {
		if p.UserID == uid {
			p := p
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

// TopByLevel returns records in their given order; the fake stands in
// for the store's native ordering.
func (f *fakeProgressStore) TopByLevel(_ context.Context, limit int) ([]models.Progress, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.lastTopLimit = limit
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func (f *fakeProgressStore) SetEmail(_ context.Context, uid, email string) error {
	if err, ok := f.setErr[uid]; ok {
		return err
	}
	if f.emailUpdates == nil {
		f.emailUpdates = make(map[string]string)
	}
	f.emailUpdates[uid] = email
	return nil
}

type fakeFeedbackStore struct {
	records []models.Feedback
	added   []models.Feedback

	statusUpdates map[string]string
	updateCalls   int
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
	f.updateCalls++
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

type fakeActivityStore struct {
	records []models.Activity
	added   []models.Activity

	lastListLimit int
}

func (f *fakeActivityStore) ListByUser(_ context.Context, userID string, limit int) ([]models.Activity, error) {
	f.lastListLimit = limit
	var out []models.Activity
	for _, a := range f.records {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivityStore) ListRecent(_ context.Context, limit int) ([]models.Activity, error) {
	f.lastListLimit = limit
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func (f *fakeActivityStore) Add(_ context.Context, userID, activityType, details string) error {
	f.added = append(f.added, models.Activity{
		UserID:  userID,
		Type:    activityType,
		Details: details,
	})
	return nil
}
