package build

import (
	"fmt"

	"plantbuilder-server/internal/catalog"
)

// ConnectionValidator classifies user-drawn pipe connections against the
// current slot mapping and the sector's canonical adjacency. It never assumes
// referential stability of prior inputs: a connection whose endpoint slot has
// been emptied since it was drawn is invalid on the next pass.
type ConnectionValidator struct {
	catalog *catalog.Catalog
}

func NewConnectionValidator(cat *catalog.Catalog) *ConnectionValidator {
	return &ConnectionValidator{catalog: cat}
}

// Validate classifies every connection as valid or invalid. A connection is
// valid iff both endpoint slots currently hold a component, the ordered
// source->target component pairing mirrors the canonical sequence adjacency,
// and it is not a duplicate of an already-counted ordered pair.
// Self-connections are always invalid.
func (v *ConnectionValidator) Validate(sector string, connections []PipeConnection, placements map[int]PlacedComponent) (ConnectionResult, error) {
	pairs, err := v.catalog.AdjacentPairs(sector)
	if err != nil {
		return ConnectionResult{}, err
	}

	expected, err := v.catalog.ExpectedConnections(sector)
	if err != nil {
		return ConnectionResult{}, err
	}

	permitted := make(map[catalog.Pair]bool, len(pairs))
	for _, pair := range pairs {
		permitted[pair] = true
	}

	result := ConnectionResult{
		TotalExpected: expected,
		Verdicts:      make([]ConnectionVerdict, 0, len(connections)),
	}

	counted := make(map[PipeConnection]bool, len(connections))

	for _, conn := range connections {
		reason := v.classify(conn, placements, permitted, counted)
		if reason == "" {
			counted[conn] = true
			result.Valid++
			result.Verdicts = append(result.Verdicts, ConnectionVerdict{
				Connection: conn,
				Status:     ConnectionValid,
			})
			continue
		}

		result.Invalid++
		result.Verdicts = append(result.Verdicts, ConnectionVerdict{
			Connection: conn,
			Status:     ConnectionInvalid,
			Reason:     reason,
		})
		result.Messages = append(result.Messages, ValidationMessage{
			Target:   fmt.Sprintf("connection:%d->%d", conn.SourceSlot, conn.TargetSlot),
			Reason:   reason,
			Severity: SeverityError,
		})
	}

	return result, nil
}

// classify returns an empty string for a valid connection, otherwise the
// reason it is invalid.
func (v *ConnectionValidator) classify(conn PipeConnection, placements map[int]PlacedComponent, permitted map[catalog.Pair]bool, counted map[PipeConnection]bool) string {
	if conn.SourceSlot == conn.TargetSlot {
		return "a component cannot be piped to itself"
	}

	source, ok := placements[conn.SourceSlot]
	if !ok {
		return fmt.Sprintf("source slot %d is empty", conn.SourceSlot)
	}

	target, ok := placements[conn.TargetSlot]
	if !ok {
		return fmt.Sprintf("target slot %d is empty", conn.TargetSlot)
	}

	if counted[conn] {
		return fmt.Sprintf("duplicate connection %d->%d", conn.SourceSlot, conn.TargetSlot)
	}

	if !permitted[catalog.Pair{Source: source.ComponentID, Target: target.ComponentID}] {
		return fmt.Sprintf("%s does not feed %s in this process", source.ComponentID, target.ComponentID)
	}

	return ""
}
