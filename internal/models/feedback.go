package models

import "time"

const (
	FeedbackStatusNew      = "new"
	FeedbackStatusRead     = "read"
	FeedbackStatusResolved = "resolved"
)

// ValidFeedbackStatus reports whether s is an allowed feedback status.
// Any status may be set from any other, including resolved back to new.
func ValidFeedbackStatus(s string) bool {
	switch s {
	case FeedbackStatusNew, FeedbackStatusRead, FeedbackStatusResolved:
		return true
	}
	return false
}

type Feedback struct {
	ID        string    `firestore:"-" json:"id"`
	UserID    string    `firestore:"userId" json:"userId"`
	UserName  string    `firestore:"userName" json:"userName,omitempty"`
	UserEmail string    `firestore:"userEmail" json:"userEmail,omitempty"`
	Message   string    `firestore:"message" json:"message"`
	Status    string    `firestore:"status" json:"status"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
