package models

import "time"

// AdminRecord is a privileged-operator membership record. Its existence
// plus a strictly boolean true isAdmin field is the sole authorization
// predicate; anything else denies.
type AdminRecord struct {
	UID       string    `json:"uid"`
	IsAdmin   bool      `json:"isAdmin"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
