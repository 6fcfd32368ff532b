package session

// ClaimedScore is the score the client computed for itself. It is a claim,
// not a fact: the server never persists it without a plausibility check.
type ClaimedScore int

// AcceptedScore is the server's plausibility-adjusted value. Only accepted
// scores reach the score record. The two types are kept distinct so a claimed
// value can never be stored where an accepted one belongs.
type AcceptedScore int

// StartRequest identifies the user starting a timed round.
type StartRequest struct {
	Phone string `json:"phone"`
}

// StartResponse returns the server-assigned session start timestamp.
type StartResponse struct {
	Success   bool   `json:"success"`
	StartedAt string `json:"started_at"`
}

// PlacedSlot is one slot->component assignment in the build summary.
type PlacedSlot struct {
	Slot      int    `json:"slot"`
	Component string `json:"component"`
}

// Link is one drawn pipe connection in the build summary.
type Link struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// BuildSummary is the optional snapshot of the client's final build state.
type BuildSummary struct {
	Slots       []PlacedSlot `json:"slots,omitempty"`
	Connections []Link       `json:"connections,omitempty"`
}

// SubmitRequest carries a finished round to the server. Score and
// TimeRemaining are pointers so a missing field is distinguishable from zero.
type SubmitRequest struct {
	Phone         string        `json:"phone"`
	Sector        string        `json:"sector"`
	Score         *int          `json:"score"`
	TimeRemaining *int          `json:"time_remaining"`
	Build         *BuildSummary `json:"build,omitempty"`
	CompletedAt   string        `json:"completed_at,omitempty"`
}

// SubmitResponse discloses both the accepted and the originally claimed score
// so the client can surface truthful feedback instead of assuming its own
// number was honored.
type SubmitResponse struct {
	AcceptedScore  int    `json:"accepted_score"`
	ClaimedScore   int    `json:"claimed_score"`
	BestScore      int    `json:"best_score"`
	IsNewHighScore bool   `json:"is_new_high_score"`
	AttemptCount   int    `json:"attempt_count"`
	Message        string `json:"message"`
	Warning        string `json:"warning,omitempty"`
}

const (
	MessageNewHighScore  = "New high score!"
	MessageBestUnchanged = "Score saved (best score unchanged)"
)
