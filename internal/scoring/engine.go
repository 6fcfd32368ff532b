// Package scoring computes the round score. The function is deliberately a
// pure deterministic mapping so the server can recompute or bound it
// independently of the client.
package scoring

// Score component caps. Placement and connection correctness each contribute
// a capped base amount so neither a perfectly wired but wrongly sequenced
// build nor the reverse can reach full marks; unused time adds a bounded
// bonus so speed never dominates correctness.
const (
	PlacementCap  = 50
	ConnectionCap = 30
	TimeBonusCap  = 20

	// MaxScore is the ceiling of a single round.
	MaxScore = PlacementCap + ConnectionCap + TimeBonusCap
)

// Input carries everything the score depends on. There is no hidden
// wall-clock dependency: remaining time arrives as an explicit value.
type Input struct {
	CorrectPlacements        int
	TotalSlots               int
	ValidConnections         int
	TotalExpectedConnections int
	SecondsRemaining         int
	TotalSessionSeconds      int
}

// Score maps an Input to an integer score. It is monotonic in correct
// placements, valid connections, and remaining seconds, and deterministic
// for identical inputs.
func Score(in Input) int {
	score := 0
	score += portion(PlacementCap, in.CorrectPlacements, in.TotalSlots)
	score += portion(ConnectionCap, in.ValidConnections, in.TotalExpectedConnections)
	score += portion(TimeBonusCap, in.SecondsRemaining, in.TotalSessionSeconds)
	return score
}

// portion scales weight by count/total using integer math, clamping count
// into [0, total]. A zero total contributes nothing.
func portion(weight, count, total int) int {
	if total <= 0 {
		return 0
	}
	if count < 0 {
		count = 0
	}
	if count > total {
		count = total
	}
	return weight * count / total
}
