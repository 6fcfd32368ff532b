package build

import (
	"reflect"
	"testing"
	"time"

	"plantbuilder-server/internal/catalog"
)

func placeAll(t *testing.T, cat *catalog.Catalog, sector string) map[int]PlacedComponent {
	t.Helper()

	seq, err := cat.Sequence(sector)
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}

	placements := make(map[int]PlacedComponent, len(seq.ComponentIDs))
	for i, id := range seq.ComponentIDs {
		placements[i] = PlacedComponent{ComponentID: id, SlotIndex: i, PlacedAt: time.Now()}
	}
	return placements
}

func TestPerfectBuildHasNoIncorrectSlots(t *testing.T) {
	cat := catalog.Default()
	validator := NewPlacementValidator(cat)

	for _, sector := range cat.Sectors() {
		placements := placeAll(t, cat, sector)

		result, err := validator.Validate(sector, placements)
		if err != nil {
			t.Fatalf("validate %s: %v", sector, err)
		}

		if result.Incorrect != 0 {
			t.Errorf("sector %s: expected 0 incorrect, got %d", sector, result.Incorrect)
		}
		if result.Correct != result.TotalSlots {
			t.Errorf("sector %s: expected all %d slots correct, got %d", sector, result.TotalSlots, result.Correct)
		}
		if result.CompletionPercent != 100 {
			t.Errorf("sector %s: expected 100%% completion, got %d", sector, result.CompletionPercent)
		}
	}
}

func TestValidationIsIdempotent(t *testing.T) {
	cat := catalog.Default()
	validator := NewPlacementValidator(cat)

	placements := placeAll(t, cat, catalog.SectorWater)
	delete(placements, 2)
	placements[0] = PlacedComponent{ComponentID: "sand-filter", SlotIndex: 0}

	first, err := validator.Validate(catalog.SectorWater, placements)
	if err != nil {
		t.Fatalf("first validate: %v", err)
	}
	second, err := validator.Validate(catalog.SectorWater, placements)
	if err != nil {
		t.Fatalf("second validate: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated validation diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestEmptySlotIsNotIncorrect(t *testing.T) {
	cat := catalog.Default()
	validator := NewPlacementValidator(cat)

	placements := placeAll(t, cat, catalog.SectorOilGas)
	delete(placements, 3)

	result, err := validator.Validate(catalog.SectorOilGas, placements)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if result.Empty != 1 {
		t.Errorf("expected 1 empty slot, got %d", result.Empty)
	}
	if result.Incorrect != 0 {
		t.Errorf("expected 0 incorrect slots, got %d", result.Incorrect)
	}

	for _, verdict := range result.Verdicts {
		if verdict.SlotIndex == 3 && verdict.Verdict != VerdictEmpty {
			t.Errorf("slot 3 should be empty, got %s", verdict.Verdict)
		}
	}

	// The emptied slot still counts in the completion denominator.
	total, _ := cat.SlotCount(catalog.SectorOilGas)
	want := 100 * (total - 1) / total
	if result.CompletionPercent != want {
		t.Errorf("expected completion %d%%, got %d%%", want, result.CompletionPercent)
	}
}

func TestRightComponentWrongSlotEarnsNothing(t *testing.T) {
	cat := catalog.Default()
	validator := NewPlacementValidator(cat)

	seq, _ := cat.Sequence(catalog.SectorPower)
	// Swap the first two components of an otherwise perfect build.
	placements := placeAll(t, cat, catalog.SectorPower)
	placements[0] = PlacedComponent{ComponentID: seq.ComponentIDs[1], SlotIndex: 0}
	placements[1] = PlacedComponent{ComponentID: seq.ComponentIDs[0], SlotIndex: 1}

	result, err := validator.Validate(catalog.SectorPower, placements)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if result.Incorrect != 2 {
		t.Errorf("expected 2 incorrect slots, got %d", result.Incorrect)
	}
	if result.Correct != result.TotalSlots-2 {
		t.Errorf("expected %d correct slots, got %d", result.TotalSlots-2, result.Correct)
	}
	if len(result.Messages) != 2 {
		t.Errorf("expected 2 validation messages, got %d", len(result.Messages))
	}
}

func TestUnknownSectorFailsValidation(t *testing.T) {
	validator := NewPlacementValidator(catalog.Default())

	if _, err := validator.Validate("nuclear", nil); err == nil {
		t.Error("expected error for unknown sector")
	}
}
