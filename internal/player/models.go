package player

import (
	"time"
)

// Player is the persisted per-user document, keyed by phone number. It holds
// both the score record and the current anti-cheat session fields.
type Player struct {
	Phone                string     `json:"phone"`
	DisplayName          string     `json:"display_name"`
	LastScore            int        `json:"last_score"`
	BestScore            int        `json:"best_score"`
	LastSector           string     `json:"last_sector"`
	AttemptCount         int        `json:"attempt_count"`
	CurrentSessionStart  *time.Time `json:"current_session_start"`
	CurrentSessionActive bool       `json:"current_session_active"`
	LastSessionEnd       *time.Time `json:"last_session_end"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// AttemptResult reports the outcome of recording one attempt atomically: the
// best score before the update, the best score after it, and the new attempt
// count. Best score never decreases.
type AttemptResult struct {
	PreviousBest int
	BestScore    int
	AttemptCount int
	EndedAt      time.Time
}

// Standing is one leaderboard row.
type Standing struct {
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name"`
	BestScore   int    `json:"best_score"`
}
