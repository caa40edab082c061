package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/waveact/admin-dashboard-backend/internal/dto"
	"github.com/waveact/admin-dashboard-backend/internal/identity"
	"github.com/waveact/admin-dashboard-backend/internal/models"
	"github.com/waveact/admin-dashboard-backend/internal/store"
)

const (
	LeaderboardLimit      = 20
	LeaderboardDebugLimit = 5
)

type AnalyticsService struct {
	directory identity.Directory
	progress  store.ProgressStore
	listLimit int
}

func NewAnalyticsService(directory identity.Directory, progress store.ProgressStore, listLimit int) *AnalyticsService {
	return &AnalyticsService{
		directory: directory,
		progress:  progress,
		listLimit: listLimit,
	}
}

// Summary reduces the progress collection in a single pass alongside a
// directory size query. Averages are exactly 0 when no progress records
// exist.
func (s *AnalyticsService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	var (
		users    []models.AuthUser
		progress []models.Progress
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.directory.ListUsers(gctx, s.listLimit)
		return err
	})
	g.Go(func() error {
		var err error
		progress, err = s.progress.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("summary fetch failed: %w", err)
	}

	summary := &dto.SummaryResponse{
		TotalUsers:             len(users),
		TotalUsersWithProgress: len(progress),
	}
	for _, p := range progress {
		summary.TotalLevel += p.Level
		summary.TotalXP += p.Score
		summary.TotalChests += p.ChestsOpened
		summary.TotalStreaks += p.StreakDays
		summary.MaxLevel = max(summary.MaxLevel, p.Level)
		summary.MaxXP = max(summary.MaxXP, p.Score)
	}
	if len(progress) > 0 {
		summary.AvgLevel = float64(summary.TotalLevel) / float64(len(progress))
		summary.AvgXP = float64(summary.TotalXP) / float64(len(progress))
	}
	return summary, nil
}

// Leaderboard returns the top entries by level. Rank is positional;
// ties keep the store's native ordering and are not re-sorted.
func (s *AnalyticsService) Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error) {
	rows, err := s.progress.TopByLevel(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(rows))
	for _, p := range rows {
		entries = append(entries, dto.LeaderboardEntry{
			UserID:        p.UserID,
			DisplayName:   displayLabel(p),
			Level:         p.Level,
			Score:         p.Score,
			UserPoints:    p.UserPoints,
			ChestsOpened:  p.ChestsOpened,
			StreakDays:    p.StreakDays,
			LongestStreak: p.LongestStreak,
		})
	}
	return entries, nil
}

// LeaderboardDebug is the top-5 diagnostic variant exposing the raw
// name fields behind each display label.
func (s *AnalyticsService) LeaderboardDebug(ctx context.Context) ([]dto.LeaderboardDebugEntry, error) {
	rows, err := s.progress.TopByLevel(ctx, LeaderboardDebugLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardDebugEntry, 0, len(rows))
	for i, p := range rows {
		entries = append(entries, dto.LeaderboardDebugEntry{
			Rank:           i + 1,
			UserID:         p.UserID,
			DisplayName:    displayLabel(p),
			RawDisplayName: p.DisplayName,
			ChangeName:     p.ChangeName,
			Email:          p.Email,
			Level:          p.Level,
			Score:          p.Score,
		})
	}
	return entries, nil
}

// displayLabel picks the leaderboard label with strict precedence:
// changeName > displayName > email local-part > uid.
func displayLabel(p models.Progress) string {
	if p.ChangeName != "" {
		return p.ChangeName
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Email != "" {
		local, _, found := strings.Cut(p.Email, "@")
		if found {
			return local
		}
		return p.Email
	}
	return p.UserID
}
