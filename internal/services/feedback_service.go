package services

import (
	"context"
	"errors"

	"github.com/waveact/admin-dashboard-backend/internal/dto"
	"github.com/waveact/admin-dashboard-backend/internal/models"
	"github.com/waveact/admin-dashboard-backend/internal/store"
)

const feedbackListLimit = 100

var (
	ErrInvalidStatus    = errors.New("invalid status, must be: new, read, or resolved")
	ErrFeedbackRequired = errors.New("userId and message are required")
)

type FeedbackService struct {
	feedback store.FeedbackStore
}

func NewFeedbackService(feedback store.FeedbackStore) *FeedbackService {
	return &FeedbackService{feedback: feedback}
}

func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.feedback.List(ctx, feedbackListLimit)
}

// Submit is the one deliberately ungated write path; it is validated
// but not rate limited.
func (s *FeedbackService) Submit(ctx context.Context, req *dto.CreateFeedbackRequest) error {
	if req.UserID == "" || req.Message == "" {
		return ErrFeedbackRequired
	}
	return s.feedback.Add(ctx, &models.Feedback{
		UserID:    req.UserID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Message:   req.Message,
	})
}

// UpdateStatus validates the target status before any store write. The
// lifecycle is deliberately loose: any valid status may replace any
// other, including restoring resolved feedback to new.
func (s *FeedbackService) UpdateStatus(ctx context.Context, id, status string) error {
	if !models.ValidFeedbackStatus(status) {
		return ErrInvalidStatus
	}
	return s.feedback.UpdateStatus(ctx, id, status)
}
