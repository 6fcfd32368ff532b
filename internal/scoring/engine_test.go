package scoring

import "testing"

func TestPerfectRoundScoresMaximum(t *testing.T) {
	in := Input{
		CorrectPlacements:        5,
		TotalSlots:               5,
		ValidConnections:         4,
		TotalExpectedConnections: 4,
		SecondsRemaining:         150,
		TotalSessionSeconds:      150,
	}

	if got := Score(in); got != MaxScore {
		t.Errorf("perfect round: expected %d, got %d", MaxScore, got)
	}
}

func TestEmptyRoundScoresZero(t *testing.T) {
	in := Input{
		TotalSlots:               5,
		TotalExpectedConnections: 4,
		TotalSessionSeconds:      150,
	}

	if got := Score(in); got != 0 {
		t.Errorf("empty round: expected 0, got %d", got)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	in := Input{
		CorrectPlacements:        3,
		TotalSlots:               5,
		ValidConnections:         2,
		TotalExpectedConnections: 4,
		SecondsRemaining:         47,
		TotalSessionSeconds:      150,
	}

	first := Score(in)
	for i := 0; i < 10; i++ {
		if got := Score(in); got != first {
			t.Fatalf("score changed between identical calls: %d then %d", first, got)
		}
	}
}

func TestScoreIsMonotonicInPlacements(t *testing.T) {
	base := Input{
		TotalSlots:               6,
		ValidConnections:         2,
		TotalExpectedConnections: 5,
		SecondsRemaining:         30,
		TotalSessionSeconds:      150,
	}

	prev := -1
	for correct := 0; correct <= base.TotalSlots; correct++ {
		in := base
		in.CorrectPlacements = correct
		got := Score(in)
		if got < prev {
			t.Fatalf("score decreased from %d to %d when placements rose to %d", prev, got, correct)
		}
		prev = got
	}
}

func TestScoreIsMonotonicInConnections(t *testing.T) {
	base := Input{
		CorrectPlacements:        4,
		TotalSlots:               6,
		TotalExpectedConnections: 5,
		SecondsRemaining:         30,
		TotalSessionSeconds:      150,
	}

	prev := -1
	for valid := 0; valid <= base.TotalExpectedConnections; valid++ {
		in := base
		in.ValidConnections = valid
		got := Score(in)
		if got < prev {
			t.Fatalf("score decreased from %d to %d when connections rose to %d", prev, got, valid)
		}
		prev = got
	}
}

func TestScoreIsMonotonicInRemainingTime(t *testing.T) {
	base := Input{
		CorrectPlacements:        4,
		TotalSlots:               6,
		ValidConnections:         3,
		TotalExpectedConnections: 5,
		TotalSessionSeconds:      150,
	}

	prev := -1
	for remaining := 0; remaining <= base.TotalSessionSeconds; remaining += 10 {
		in := base
		in.SecondsRemaining = remaining
		got := Score(in)
		if got < prev {
			t.Fatalf("score decreased from %d to %d when remaining time rose to %ds", prev, got, remaining)
		}
		prev = got
	}
}

func TestSpeedAloneCannotDominateCorrectness(t *testing.T) {
	fastAndWrong := Input{
		TotalSlots:               5,
		TotalExpectedConnections: 4,
		SecondsRemaining:         150,
		TotalSessionSeconds:      150,
	}

	slowAndRight := Input{
		CorrectPlacements:        5,
		TotalSlots:               5,
		ValidConnections:         4,
		TotalExpectedConnections: 4,
		SecondsRemaining:         0,
		TotalSessionSeconds:      150,
	}

	if Score(fastAndWrong) >= Score(slowAndRight) {
		t.Errorf("an instant empty build (%d) must not outscore a slow perfect one (%d)",
			Score(fastAndWrong), Score(slowAndRight))
	}
}

func TestOutOfRangeInputsAreClamped(t *testing.T) {
	in := Input{
		CorrectPlacements:        99,
		TotalSlots:               5,
		ValidConnections:         -3,
		TotalExpectedConnections: 4,
		SecondsRemaining:         9999,
		TotalSessionSeconds:      150,
	}

	got := Score(in)
	if got != PlacementCap+TimeBonusCap {
		t.Errorf("expected clamped score %d, got %d", PlacementCap+TimeBonusCap, got)
	}

	if Score(Input{}) != 0 {
		t.Errorf("zero-value input should score 0")
	}
}
