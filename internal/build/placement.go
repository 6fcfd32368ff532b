package build

import (
	"fmt"

	"plantbuilder-server/internal/catalog"
)

// PlacementValidator checks a slot->component mapping against the catalog's
// canonical sequence for a sector. Validation is idempotent and side-effect
// free: the same mapping always yields the same verdicts.
type PlacementValidator struct {
	catalog *catalog.Catalog
}

func NewPlacementValidator(cat *catalog.Catalog) *PlacementValidator {
	return &PlacementValidator{catalog: cat}
}

// Validate produces a verdict for every slot of the sector's build surface.
// A slot is correct iff its occupant equals the sequence entry at that index;
// the right component in the wrong slot earns nothing. Empty slots are
// distinct from incorrect ones: they are excluded from the correct count but
// included in the completion denominator.
func (v *PlacementValidator) Validate(sector string, placements map[int]PlacedComponent) (PlacementResult, error) {
	seq, err := v.catalog.Sequence(sector)
	if err != nil {
		return PlacementResult{}, err
	}

	result := PlacementResult{
		TotalSlots: len(seq.ComponentIDs),
		Verdicts:   make([]SlotVerdict, 0, len(seq.ComponentIDs)),
	}

	for slot, expected := range seq.ComponentIDs {
		placed, occupied := placements[slot]
		switch {
		case !occupied:
			result.Empty++
			result.Verdicts = append(result.Verdicts, SlotVerdict{
				SlotIndex: slot,
				Verdict:   VerdictEmpty,
			})
		case placed.ComponentID == expected:
			result.Correct++
			result.Verdicts = append(result.Verdicts, SlotVerdict{
				SlotIndex:   slot,
				ComponentID: placed.ComponentID,
				Verdict:     VerdictCorrect,
			})
		default:
			result.Incorrect++
			result.Verdicts = append(result.Verdicts, SlotVerdict{
				SlotIndex:   slot,
				ComponentID: placed.ComponentID,
				Verdict:     VerdictIncorrect,
			})
			result.Messages = append(result.Messages, ValidationMessage{
				Target:   fmt.Sprintf("slot:%d", slot),
				Reason:   fmt.Sprintf("%s does not belong in slot %d", placed.ComponentID, slot),
				Severity: SeverityError,
			})
		}
	}

	// Placements outside the surface are a client bug; flag, don't count.
	for slot := range placements {
		if slot < 0 || slot >= len(seq.ComponentIDs) {
			result.Messages = append(result.Messages, ValidationMessage{
				Target:   fmt.Sprintf("slot:%d", slot),
				Reason:   fmt.Sprintf("slot %d is outside the build surface", slot),
				Severity: SeverityWarning,
			})
		}
	}

	if result.TotalSlots > 0 {
		result.CompletionPercent = 100 * (result.Correct + result.Incorrect) / result.TotalSlots
	}

	return result, nil
}
