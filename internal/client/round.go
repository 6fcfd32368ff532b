// Package client holds the client-side core of the plant builder: the round
// state with synchronous re-validation, the countdown timer, the durable
// fallback queue, and the submission path with queue-and-retry.
package client

import (
	"fmt"
	"sort"
	"time"

	"plantbuilder-server/internal/build"
	"plantbuilder-server/internal/catalog"
	"plantbuilder-server/internal/scoring"
	"plantbuilder-server/internal/session"
)

// Round is the in-memory state of one timed attempt. Every mutation re-runs
// both validators synchronously before returning, so the caller always
// observes verdicts consistent with the current state. Round is not safe for
// concurrent use; the build surface drives it from a single goroutine.
type Round struct {
	sector      string
	catalog     *catalog.Catalog
	placement   *build.PlacementValidator
	connection  *build.ConnectionValidator
	slots       map[int]build.PlacedComponent
	connections []build.PipeConnection

	placementResult  build.PlacementResult
	connectionResult build.ConnectionResult
}

func NewRound(cat *catalog.Catalog, sector string) (*Round, error) {
	if _, err := cat.Sequence(sector); err != nil {
		return nil, err
	}

	r := &Round{
		sector:     sector,
		catalog:    cat,
		placement:  build.NewPlacementValidator(cat),
		connection: build.NewConnectionValidator(cat),
		slots:      make(map[int]build.PlacedComponent),
	}
	if err := r.revalidate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Place drops a component into a slot. Placing into an occupied slot
// replaces the prior occupant.
func (r *Round) Place(slot int, componentID string) error {
	count, err := r.catalog.SlotCount(r.sector)
	if err != nil {
		return err
	}
	if slot < 0 || slot >= count {
		return fmt.Errorf("slot %d out of range for sector %q", slot, r.sector)
	}
	if _, err := r.catalog.Component(r.sector, componentID); err != nil {
		return err
	}

	r.slots[slot] = build.PlacedComponent{
		ComponentID: componentID,
		SlotIndex:   slot,
		PlacedAt:    time.Now(),
	}
	return r.revalidate()
}

// Remove empties a slot. Connections referencing it turn invalid on the
// revalidation that follows.
func (r *Round) Remove(slot int) error {
	delete(r.slots, slot)
	return r.revalidate()
}

// Connect draws a pipe between two slots. Duplicate ordered pairs collapse
// to one.
func (r *Round) Connect(sourceSlot, targetSlot int) error {
	conn := build.PipeConnection{SourceSlot: sourceSlot, TargetSlot: targetSlot}
	for _, existing := range r.connections {
		if existing == conn {
			return r.revalidate()
		}
	}
	r.connections = append(r.connections, conn)
	return r.revalidate()
}

// Disconnect removes a drawn pipe.
func (r *Round) Disconnect(sourceSlot, targetSlot int) error {
	conn := build.PipeConnection{SourceSlot: sourceSlot, TargetSlot: targetSlot}
	kept := r.connections[:0]
	for _, existing := range r.connections {
		if existing != conn {
			kept = append(kept, existing)
		}
	}
	r.connections = kept
	return r.revalidate()
}

func (r *Round) revalidate() error {
	placementResult, err := r.placement.Validate(r.sector, r.slots)
	if err != nil {
		return err
	}
	connectionResult, err := r.connection.Validate(r.sector, r.connections, r.slots)
	if err != nil {
		return err
	}
	r.placementResult = placementResult
	r.connectionResult = connectionResult
	return nil
}

// Placement returns the verdicts of the latest validation pass.
func (r *Round) Placement() build.PlacementResult {
	return r.placementResult
}

// Connections returns the verdicts of the latest validation pass.
func (r *Round) Connections() build.ConnectionResult {
	return r.connectionResult
}

// Score computes the candidate score for the current state. It is a claim
// until the server has cross-checked it.
func (r *Round) Score(secondsRemaining, totalSessionSeconds int) int {
	return scoring.Score(scoring.Input{
		CorrectPlacements:        r.placementResult.Correct,
		TotalSlots:               r.placementResult.TotalSlots,
		ValidConnections:         r.connectionResult.Valid,
		TotalExpectedConnections: r.connectionResult.TotalExpected,
		SecondsRemaining:         secondsRemaining,
		TotalSessionSeconds:      totalSessionSeconds,
	})
}

// Sector returns the round's assigned sector.
func (r *Round) Sector() string {
	return r.sector
}

// Snapshot produces the build-state summary sent along with a submission.
func (r *Round) Snapshot() session.BuildSummary {
	summary := session.BuildSummary{
		Slots:       make([]session.PlacedSlot, 0, len(r.slots)),
		Connections: make([]session.Link, 0, len(r.connections)),
	}

	for slot, placed := range r.slots {
		summary.Slots = append(summary.Slots, session.PlacedSlot{
			Slot:      slot,
			Component: placed.ComponentID,
		})
	}
	sort.Slice(summary.Slots, func(i, j int) bool {
		return summary.Slots[i].Slot < summary.Slots[j].Slot
	})

	for _, conn := range r.connections {
		summary.Connections = append(summary.Connections, session.Link{
			Source: conn.SourceSlot,
			Target: conn.TargetSlot,
		})
	}

	return summary
}
