package services

import (
	"context"
	"testing"

	"github.com/waveact/admin-dashboard-backend/internal/models"
)

func TestAnalyticsService_Summary(t *testing.T) {
	directory := &fakeDirectory{users: []models.AuthUser{
		{UID: "a"}, {UID: "b"}, {UID: "c"}, {UID: "d"},
	}}
	progress := &fakeProgressStore{records: []models.Progress{
		{UserID: "a", Level: 3, Score: 10, ChestsOpened: 1, StreakDays: 2},
		{UserID: "b", Level: 7, Score: 40, ChestsOpened: 0, StreakDays: 5},
		{UserID: "c", Level: 5, Score: 25, ChestsOpened: 4, StreakDays: 0},
	}}

	svc := NewAnalyticsService(directory, progress, 1000)

	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if got.TotalUsers != 4 {
		t.Errorf("TotalUsers = %d, want 4", got.TotalUsers)
	}
	if got.TotalUsersWithProgress != 3 {
		t.Errorf("TotalUsersWithProgress = %d, want 3", got.TotalUsersWithProgress)
	}
	if got.TotalLevel != 15 || got.MaxLevel != 7 || got.AvgLevel != 5 {
		t.Errorf("levels: total=%d max=%d avg=%v, want 15/7/5", got.TotalLevel, got.MaxLevel, got.AvgLevel)
	}
	if got.TotalXP != 75 || got.MaxXP != 40 || got.AvgXP != 25 {
		t.Errorf("xp: total=%d max=%d avg=%v, want 75/40/25", got.TotalXP, got.MaxXP, got.AvgXP)
	}
	if got.TotalChests != 5 || got.TotalStreaks != 7 {
		t.Errorf("chests=%d streaks=%d, want 5/7", got.TotalChests, got.TotalStreaks)
	}
}

func TestAnalyticsService_Summary_NoProgress(t *testing.T) {
	directory := &fakeDirectory{users: []models.AuthUser{{UID: "a"}}}
	progress := &fakeProgressStore{}

	svc := NewAnalyticsService(directory, progress, 1000)

	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if got.AvgLevel != 0 || got.AvgXP != 0 {
		t.Errorf("averages with no progress = %v/%v, want exactly 0/0", got.AvgLevel, got.AvgXP)
	}
	if got.TotalUsers != 1 || got.TotalUsersWithProgress != 0 {
		t.Errorf("counts = %d/%d, want 1/0", got.TotalUsers, got.TotalUsersWithProgress)
	}
}

func TestDisplayLabel_Precedence(t *testing.T) {
	tests := []struct {
		name string
		p    models.Progress
		want string
	}{
		{
			name: "changeName wins over everything",
			p:    models.Progress{UserID: "u1", ChangeName: "Bob", DisplayName: "Robert", Email: "bob@x.com"},
			want: "Bob",
		},
		{
			name: "displayName when no changeName",
			p:    models.Progress{UserID: "u1", DisplayName: "Robert", Email: "bob@x.com"},
			want: "Robert",
		},
		{
			name: "email local-part when no names",
			p:    models.Progress{UserID: "u1", Email: "bob@x.com"},
			want: "bob",
		},
		{
			name: "uid when nothing else",
			p:    models.Progress{UserID: "u1"},
			want: "u1",
		},
		{
			name: "email without at sign used whole",
			p:    models.Progress{UserID: "u1", Email: "plainname"},
			want: "plainname",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := displayLabel(test.p); got != test.want {
				t.Errorf("displayLabel() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestAnalyticsService_Leaderboard(t *testing.T) {
	progress := &fakeProgressStore{records: []models.Progress{
		{UserID: "first", Level: 30, Score: 900, ChangeName: "Ace"},
		{UserID: "second", Level: 20, Score: 500, Email: "runner@up.io"},
		{UserID: "third", Level: 10, Score: 100},
	}}

	svc := NewAnalyticsService(&fakeDirectory{}, progress, 1000)

	entries, err := svc.Leaderboard(context.Background(), LeaderboardLimit)
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	if progress.lastTopLimit != LeaderboardLimit {
		t.Errorf("query limit = %d, want %d", progress.lastTopLimit, LeaderboardLimit)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Store ordering preserved, labels resolved per precedence.
	if entries[0].UserID != "first" || entries[0].DisplayName != "Ace" {
		t.Errorf("entry 0 = %+v, want first/Ace", entries[0])
	}
	if entries[1].DisplayName != "runner" {
		t.Errorf("entry 1 label = %q, want email local-part runner", entries[1].DisplayName)
	}
	if entries[2].DisplayName != "third" {
		t.Errorf("entry 2 label = %q, want raw uid third", entries[2].DisplayName)
	}
}

func TestAnalyticsService_LeaderboardDebug(t *testing.T) {
	var records []models.Progress
	for i := 0; i < 8; i++ {
		records = append(records, models.Progress{UserID: string(rune('a' + i)), Level: int64(80 - i*10)})
	}
	progress := &fakeProgressStore{records: records}

	svc := NewAnalyticsService(&fakeDirectory{}, progress, 1000)

	entries, err := svc.LeaderboardDebug(context.Background())
	if err != nil {
		t.Fatalf("LeaderboardDebug() error = %v", err)
	}
	if len(entries) != LeaderboardDebugLimit {
		t.Fatalf("got %d entries, want %d", len(entries), LeaderboardDebugLimit)
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("entry %d rank = %d, want %d (rank is positional)", i, e.Rank, i+1)
		}
	}
}
