package models

import "time"

type ProviderInfo struct {
	ProviderID string `json:"providerId"`
}

// AuthUser is a read-only projection of an identity directory record.
// Sign-in timestamps are nil for accounts that never signed in.
type AuthUser struct {
	UID            string         `json:"uid"`
	Email          string         `json:"email,omitempty"`
	DisplayName    string         `json:"displayName,omitempty"`
	PhotoURL       string         `json:"photoURL,omitempty"`
	EmailVerified  bool           `json:"emailVerified"`
	Disabled       bool           `json:"disabled"`
	CreationTime   *time.Time     `json:"creationTime"`
	LastSignInTime *time.Time     `json:"lastSignInTime"`
	ProviderData   []ProviderInfo `json:"providerData,omitempty"`
}

// CombinedUser joins a directory record with that user's progress
// document, or null when the user has none.
type CombinedUser struct {
	AuthUser
	Progress *Progress `json:"progress"`
}
