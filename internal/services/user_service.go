package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/waveact/admin-dashboard-backend/internal/dto"
	"github.com/waveact/admin-dashboard-backend/internal/identity"
	"github.com/waveact/admin-dashboard-backend/internal/models"
	"github.com/waveact/admin-dashboard-backend/internal/store"
)

type UserService struct {
	directory identity.Directory
	progress  store.ProgressStore
	listLimit int
}

func NewUserService(directory identity.Directory, progress store.ProgressStore, listLimit int) *UserService {
	return &UserService{
		directory: directory,
		progress:  progress,
		listLimit: listLimit,
	}
}

func (s *UserService) AuthUsers(ctx context.Context) ([]models.AuthUser, error) {
	return s.directory.ListUsers(ctx, s.listLimit)
}

func (s *UserService) ProgressList(ctx context.Context) ([]models.Progress, error) {
	return s.progress.List(ctx)
}

func (s *UserService) ProgressByID(ctx context.Context, uid string) (*models.Progress, error) {
	return s.progress.Get(ctx, uid)
}

// CombinedUsers joins the identity directory with the progress
// collection. The two fetches run concurrently; there is no
// transactional guarantee between them, and a failure of either fails
// the whole view.
func (s *UserService) CombinedUsers(ctx context.Context) ([]models.CombinedUser, error) {
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
		return nil, fmt.Errorf("combined view fetch failed: %w", err)
	}

	return mergeCombined(users, progress), nil
}

// mergeCombined attaches each user's progress document, or nil when the
// user has none. Progress records with no directory entry are dropped
// from this view; they remain visible through the progress listing.
// Output is ordered by last sign-in descending, with users that never
// signed in sorting as epoch.
func mergeCombined(users []models.AuthUser, progress []models.Progress) []models.CombinedUser {
	byUID := make(map[string]models.Progress, len(progress))
	for _, p := range progress {
		byUID[p.UserID] = p
	}

	combined := make([]models.CombinedUser, 0, len(users))
	for _, u := range users {
		cu := models.CombinedUser{AuthUser: u}
		if p, ok := byUID[u.UID]; ok {
			p := p
			cu.Progress = &p
		}
		combined = append(combined, cu)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return signInMillis(combined[i].AuthUser) > signInMillis(combined[j].AuthUser)
	})
	return combined
}

func signInMillis(u models.AuthUser) int64 {
	if u.LastSignInTime == nil {
		return 0
	}
	return u.LastSignInTime.UnixMilli()
}

// MigrateEmails backfills the denormalized email field into progress
// documents that exist but lack one. Per-document failures are counted
// and logged, not fatal to the sweep.
func (s *UserService) MigrateEmails(ctx context.Context) (*dto.MigrationResult, error) {
	users, err := s.directory.ListUsers(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("email migration failed: %w", err)
	}

	result := &dto.MigrationResult{}
	for _, u := range users {
		if u.Email == "" {
			result.Skipped++
			continue
		}

		p, err := s.progress.Get(ctx, u.UID)
		if errors.Is(err, store.ErrNotFound) {
			result.Skipped++
			continue
		}
		if err != nil {
			slog.Error("email migration read failed", "uid", u.UID, "error", err)
			result.Failed++
			continue
		}
		if p.Email != "" {
			result.Skipped++
			continue
		}

		if err := s.progress.SetEmail(ctx, u.UID, u.Email); err != nil {
			slog.Error("email migration write failed", "uid", u.UID, "error", err)
			result.Failed++
			continue
		}
		result.Updated++
	}
	return result, nil
}
