package client

import (
	"testing"

	"plantbuilder-server/internal/catalog"
)

func TestRoundRevalidatesOnEveryEdit(t *testing.T) {
	cat := catalog.Default()
	round, err := NewRound(cat, catalog.SectorPower)
	if err != nil {
		t.Fatalf("new round: %v", err)
	}

	seq, _ := cat.Sequence(catalog.SectorPower)

	if round.Placement().Empty != len(seq.ComponentIDs) {
		t.Fatalf("fresh round should have all slots empty")
	}

	if err := round.Place(0, seq.ComponentIDs[0]); err != nil {
		t.Fatalf("place: %v", err)
	}
	if round.Placement().Correct != 1 {
		t.Errorf("expected 1 correct slot after placing, got %d", round.Placement().Correct)
	}

	// Wrong slot for a catalog component.
	if err := round.Place(1, seq.ComponentIDs[3]); err != nil {
		t.Fatalf("place wrong: %v", err)
	}
	if round.Placement().Incorrect != 1 {
		t.Errorf("expected 1 incorrect slot, got %d", round.Placement().Incorrect)
	}

	if err := round.Remove(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if round.Placement().Incorrect != 0 {
		t.Errorf("expected 0 incorrect slots after removal, got %d", round.Placement().Incorrect)
	}
}

func TestPlacingIntoOccupiedSlotReplaces(t *testing.T) {
	cat := catalog.Default()
	round, err := NewRound(cat, catalog.SectorPower)
	if err != nil {
		t.Fatalf("new round: %v", err)
	}

	seq, _ := cat.Sequence(catalog.SectorPower)

	if err := round.Place(0, seq.ComponentIDs[2]); err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := round.Place(0, seq.ComponentIDs[0]); err != nil {
		t.Fatalf("replace: %v", err)
	}

	result := round.Placement()
	if result.Correct != 1 || result.Incorrect != 0 {
		t.Errorf("replacement should leave exactly one correct slot, got %+v", result)
	}
}

func TestRoundRejectsInvalidEdits(t *testing.T) {
	cat := catalog.Default()
	round, err := NewRound(cat, catalog.SectorPower)
	if err != nil {
		t.Fatalf("new round: %v", err)
	}

	if err := round.Place(99, "boiler"); err == nil {
		t.Error("expected error placing outside the build surface")
	}
	if err := round.Place(0, "warp-drive"); err == nil {
		t.Error("expected error placing an unknown component")
	}
	if _, err := NewRound(cat, "nuclear"); err == nil {
		t.Error("expected error for unknown sector")
	}
}

func TestDuplicateConnectionsCollapse(t *testing.T) {
	cat := catalog.Default()
	round, err := NewRound(cat, catalog.SectorPower)
	if err != nil {
		t.Fatalf("new round: %v", err)
	}

	seq, _ := cat.Sequence(catalog.SectorPower)
	if err := round.Place(0, seq.ComponentIDs[0]); err != nil {
		t.Fatal(err)
	}
	if err := round.Place(1, seq.ComponentIDs[1]); err != nil {
		t.Fatal(err)
	}

	if err := round.Connect(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := round.Connect(0, 1); err != nil {
		t.Fatal(err)
	}

	result := round.Connections()
	if result.Valid != 1 {
		t.Errorf("duplicate connection should collapse to one, got %d valid", result.Valid)
	}
	if len(round.Snapshot().Connections) != 1 {
		t.Errorf("snapshot should carry one connection, got %d", len(round.Snapshot().Connections))
	}
}

func TestRemovingComponentInvalidatesItsConnections(t *testing.T) {
	cat := catalog.Default()
	round, err := NewRound(cat, catalog.SectorPower)
	if err != nil {
		t.Fatalf("new round: %v", err)
	}

	seq, _ := cat.Sequence(catalog.SectorPower)
	if err := round.Place(0, seq.ComponentIDs[0]); err != nil {
		t.Fatal(err)
	}
	if err := round.Place(1, seq.ComponentIDs[1]); err != nil {
		t.Fatal(err)
	}
	if err := round.Connect(0, 1); err != nil {
		t.Fatal(err)
	}
	if round.Connections().Valid != 1 {
		t.Fatal("connection should start valid")
	}

	if err := round.Remove(1); err != nil {
		t.Fatal(err)
	}
	if round.Connections().Valid != 0 {
		t.Error("connection should turn invalid once its endpoint is emptied")
	}
}

func TestRoundScoreMatchesScoringEngine(t *testing.T) {
	cat := catalog.Default()
	round, err := NewRound(cat, catalog.SectorPower)
	if err != nil {
		t.Fatalf("new round: %v", err)
	}

	seq, _ := cat.Sequence(catalog.SectorPower)
	for i, id := range seq.ComponentIDs {
		if err := round.Place(i, id); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i+1 < len(seq.ComponentIDs); i++ {
		if err := round.Connect(i, i+1); err != nil {
			t.Fatal(err)
		}
	}

	if got := round.Score(150, 150); got != 100 {
		t.Errorf("perfect instant build should score 100, got %d", got)
	}
	if got := round.Score(0, 150); got != 80 {
		t.Errorf("perfect build with no time left should score 80, got %d", got)
	}
}

func TestSnapshotListsPlacementsInSlotOrder(t *testing.T) {
	cat := catalog.Default()
	round, err := NewRound(cat, catalog.SectorWater)
	if err != nil {
		t.Fatalf("new round: %v", err)
	}

	seq, _ := cat.Sequence(catalog.SectorWater)
	// Place out of order on purpose.
	for _, slot := range []int{3, 0, 2} {
		if err := round.Place(slot, seq.ComponentIDs[slot]); err != nil {
			t.Fatal(err)
		}
	}

	snapshot := round.Snapshot()
	if len(snapshot.Slots) != 3 {
		t.Fatalf("expected 3 snapshot slots, got %d", len(snapshot.Slots))
	}
	for i := 1; i < len(snapshot.Slots); i++ {
		if snapshot.Slots[i-1].Slot >= snapshot.Slots[i].Slot {
			t.Errorf("snapshot slots out of order: %+v", snapshot.Slots)
		}
	}
}
