package catalog

// SlotType describes the kind of mounting position a component needs on the
// build surface.
type SlotType string

const (
	SlotTypeFeed    SlotType = "feed"
	SlotTypeProcess SlotType = "process"
	SlotTypeOutput  SlotType = "output"
)

// ComponentDefinition is a catalog entry for a draggable engineering part.
// Definitions are immutable; the ID is unique within a sector.
type ComponentDefinition struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Sector   string   `json:"sector"`
	SlotType SlotType `json:"slot_type"`
}

// EngineeringSequence is the canonical build order for a sector. The order of
// ComponentIDs is the single source of truth for placement correctness.
type EngineeringSequence struct {
	Sector       string   `json:"sector"`
	ComponentIDs []string `json:"component_ids"`
}

// Pair is an ordered source->target component pairing permitted by a sector's
// canonical sequence.
type Pair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}
