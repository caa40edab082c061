package services

import (
	"context"
	"errors"

	"github.com/waveact/admin-dashboard-backend/internal/dto"
	"github.com/waveact/admin-dashboard-backend/internal/models"
	"github.com/waveact/admin-dashboard-backend/internal/store"
)

const activityListLimit = 20

var ErrActivityRequired = errors.New("userId and type are required")

type ActivityService struct {
	activities store.ActivityStore
}

func NewActivityService(activities store.ActivityStore) *ActivityService {
	return &ActivityService{activities: activities}
}

func (s *ActivityService) ForUser(ctx context.Context, userID string) ([]models.Activity, error) {
	return s.activities.ListByUser(ctx, userID, activityListLimit)
}

func (s *ActivityService) Recent(ctx context.Context) ([]models.Activity, error) {
	return s.activities.ListRecent(ctx, activityListLimit)
}

func (s *ActivityService) Record(ctx context.Context, req *dto.CreateActivityRequest) error {
	if req.UserID == "" || req.Type == "" {
		return ErrActivityRequired
	}
	return s.activities.Add(ctx, req.UserID, req.Type, req.Details)
}
