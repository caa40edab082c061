package models

import (
	"encoding/json"
	"time"
)

// Progress is a per-user gamification document written by the mobile
// client. Absent numeric fields decode as zero.
type Progress struct {
	UserID          string   `firestore:"-" json:"userId"`
	Level           int64    `firestore:"level" json:"level"`
	Score           int64    `firestore:"score" json:"score"`
	UserPoints      int64    `firestore:"userPoints" json:"userPoints"`
	ClaimedPoints   int64    `firestore:"claimedPoints" json:"claimedPoints"`
	LevelGoalPoints int64    `firestore:"levelGoalPoints" json:"levelGoalPoints"`
	ChestsOpened    int64    `firestore:"chestsOpened" json:"chestsOpened"`
	StreakDays      int64    `firestore:"streakDays" json:"streakDays"`
	LongestStreak   int64    `firestore:"longestStreak" json:"longestStreak"`
	Achievements    []string `firestore:"achievements" json:"achievements,omitempty"`
	UnlockedContent []string `firestore:"unlockedContent" json:"unlockedContent,omitempty"`
	DisplayName     string   `firestore:"displayName" json:"displayName,omitempty"`
	ChangeName      string   `firestore:"changeName" json:"changeName,omitempty"`
	Email           string   `firestore:"email" json:"email,omitempty"`

	// Stored by the client as epoch milliseconds; rendered as RFC3339 or
	// null in responses.
	LastStreakMillis int64 `firestore:"lastStreakUtc" json:"-"`
}

func (p Progress) MarshalJSON() ([]byte, error) {
	type alias Progress
	var lastStreak *string
	if p.LastStreakMillis > 0 {
		s := time.UnixMilli(p.LastStreakMillis).UTC().Format(time.RFC3339)
		lastStreak = &s
	}
	return json.Marshal(struct {
		alias
		LastStreakUTC *string `json:"lastStreakUtc"`
	}{alias(p), lastStreak})
}
