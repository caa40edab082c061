package dto

// SummaryResponse aggregates the progress collection in one pass.
// Averages are exactly 0 when no progress records exist.
type SummaryResponse struct {
	TotalUsers             int     `json:"totalUsers"`
	TotalUsersWithProgress int     `json:"totalUsersWithProgress"`
	TotalLevel             int64   `json:"totalLevel"`
	TotalXP                int64   `json:"totalXP"`
	TotalChests            int64   `json:"totalChests"`
	TotalStreaks           int64   `json:"totalStreaks"`
	MaxLevel               int64   `json:"maxLevel"`
	MaxXP                  int64   `json:"maxXP"`
	AvgLevel               float64 `json:"avgLevel"`
	AvgXP                  float64 `json:"avgXP"`
}

// LeaderboardEntry is a ranked progress row. Rank is positional in the
// returned sequence; ties keep the store's native ordering.
type LeaderboardEntry struct {
	UserID        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	Level         int64  `json:"level"`
	Score         int64  `json:"score"`
	UserPoints    int64  `json:"userPoints"`
	ChestsOpened  int64  `json:"chestsOpened"`
	StreakDays    int64  `json:"streakDays"`
	LongestStreak int64  `json:"longestStreak"`
}

// LeaderboardDebugEntry exposes the raw name fields behind the chosen
// display label for the top-5 diagnostic view.
type LeaderboardDebugEntry struct {
	Rank           int    `json:"rank"`
	UserID         string `json:"userId"`
	DisplayName    string `json:"displayName"`
	RawDisplayName string `json:"rawDisplayName"`
	ChangeName     string `json:"changeName"`
	Email          string `json:"email"`
	Level          int64  `json:"level"`
	Score          int64  `json:"score"`
}
