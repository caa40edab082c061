package dto

// MigrationResult reports an email backfill sweep over progress documents.
type MigrationResult struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}
