package models

import "time"

// SystemLog is a persisted ERROR-level log entry (system_logs collection).
type SystemLog struct {
	Timestamp time.Time              `firestore:"timestamp"`
	Level     string                 `firestore:"level"`
	Message   string                 `firestore:"message"`
	RequestID string                 `firestore:"requestId,omitempty"`
	UserID    string                 `firestore:"userId,omitempty"`
	Path      string                 `firestore:"path,omitempty"`
	Error     string                 `firestore:"error,omitempty"`
	Extra     map[string]interface{} `firestore:"extra,omitempty"`
}
