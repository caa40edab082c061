package models

import "time"

// NameChange records a display-name rename performed in the client app.
// Read-only here.
type NameChange struct {
	ID        string    `firestore:"-" json:"id"`
	UserID    string    `firestore:"userId" json:"userId"`
	OldName   string    `firestore:"oldName" json:"oldName"`
	NewName   string    `firestore:"newName" json:"newName"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
}
