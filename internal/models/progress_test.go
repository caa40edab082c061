package models

import (
	"encoding/json"
	"testing"
)

// lastStreakUtc is stored as epoch milliseconds but rendered as RFC3339
// or null, matching what the dashboard UI expects.
func TestProgress_MarshalJSON_LastStreak(t *testing.T) {
	p := Progress{UserID: "u1", Level: 3, LastStreakMillis: 1717200000000} // 2024-06-01T00:00:00Z

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got := out["lastStreakUtc"]; got != "2024-06-01T00:00:00Z" {
		t.Errorf("lastStreakUtc = %v, want 2024-06-01T00:00:00Z", got)
	}

	b, err = json.Marshal(Progress{UserID: "u2"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got, present := out["lastStreakUtc"]; !present || got != nil {
		t.Errorf("lastStreakUtc = %v (present=%v), want explicit null", got, present)
	}
}
