package models

import "time"

// Activity is an append-only audit entry; timestamps are assigned by the
// document store on insert.
type Activity struct {
	ID        string    `firestore:"-" json:"id"`
	UserID    string    `firestore:"userId" json:"userId"`
	Type      string    `firestore:"type" json:"type"`
	Details   string    `firestore:"details" json:"details"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
}
