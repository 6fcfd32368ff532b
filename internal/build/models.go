package build

import "time"

// Verdict classifies a single slot after a validation pass.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
	VerdictEmpty     Verdict = "empty"
)

// ConnectionStatus classifies a single pipe connection.
type ConnectionStatus string

const (
	ConnectionValid   ConnectionStatus = "valid"
	ConnectionInvalid ConnectionStatus = "invalid"
)

// Severity grades a validation message.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// PlacedComponent is a user action: one component dropped into one slot.
type PlacedComponent struct {
	ComponentID string    `json:"component_id"`
	SlotIndex   int       `json:"slot_index"`
	PlacedAt    time.Time `json:"placed_at"`
}

// PipeConnection is a user-drawn directed link between two slots. Slots are
// referenced by index so a connection naturally goes stale when a slot is
// emptied after the connection was drawn.
type PipeConnection struct {
	SourceSlot int `json:"source_slot"`
	TargetSlot int `json:"target_slot"`
}

// ValidationMessage describes why a slot or connection failed validation.
// Messages are produced fresh on every pass and never persisted.
type ValidationMessage struct {
	Target   string   `json:"target"`
	Reason   string   `json:"reason"`
	Severity Severity `json:"severity"`
}

// SlotVerdict is the per-slot outcome of a placement validation pass.
type SlotVerdict struct {
	SlotIndex   int     `json:"slot_index"`
	ComponentID string  `json:"component_id,omitempty"`
	Verdict     Verdict `json:"verdict"`
}

// PlacementResult is the full outcome of one placement validation pass.
type PlacementResult struct {
	Verdicts          []SlotVerdict       `json:"verdicts"`
	Messages          []ValidationMessage `json:"messages,omitempty"`
	Correct           int                 `json:"correct"`
	Incorrect         int                 `json:"incorrect"`
	Empty             int                 `json:"empty"`
	TotalSlots        int                 `json:"total_slots"`
	CompletionPercent int                 `json:"completion_percent"`
}

// ConnectionVerdict is the per-connection outcome of a validation pass.
type ConnectionVerdict struct {
	Connection PipeConnection   `json:"connection"`
	Status     ConnectionStatus `json:"status"`
	Reason     string           `json:"reason,omitempty"`
}

// ConnectionResult is the full outcome of one connection validation pass.
type ConnectionResult struct {
	Verdicts      []ConnectionVerdict `json:"verdicts"`
	Messages      []ValidationMessage `json:"messages,omitempty"`
	Valid         int                 `json:"valid"`
	Invalid       int                 `json:"invalid"`
	TotalExpected int                 `json:"total_expected"`
}
