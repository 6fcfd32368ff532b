package catalog

import (
	"fmt"
	"sort"
)

// Catalog is the sector-keyed table of component definitions and canonical
// sequences. It is built once and never mutated; validators receive it at
// construction instead of reaching for ambient state.
type Catalog struct {
	sequences  map[string]EngineeringSequence
	components map[string]map[string]ComponentDefinition
}

// New builds a catalog from sequences and component definitions. Every
// sequence must be non-empty and every component it references must be
// defined for the same sector.
func New(sequences []EngineeringSequence, definitions []ComponentDefinition) (*Catalog, error) {
	components := make(map[string]map[string]ComponentDefinition)
	for _, def := range definitions {
		if def.ID == "" || def.Sector == "" {
			return nil, fmt.Errorf("component definition missing id or sector: %+v", def)
		}
		bySector, ok := components[def.Sector]
		if !ok {
			bySector = make(map[string]ComponentDefinition)
			components[def.Sector] = bySector
		}
		if _, exists := bySector[def.ID]; exists {
			return nil, fmt.Errorf("duplicate component %q in sector %q", def.ID, def.Sector)
		}
		bySector[def.ID] = def
	}

	seqs := make(map[string]EngineeringSequence, len(sequences))
	for _, seq := range sequences {
		if seq.Sector == "" {
			return nil, fmt.Errorf("sequence missing sector key")
		}
		if len(seq.ComponentIDs) == 0 {
			return nil, fmt.Errorf("sequence for sector %q is empty", seq.Sector)
		}
		if _, exists := seqs[seq.Sector]; exists {
			return nil, fmt.Errorf("duplicate sequence for sector %q", seq.Sector)
		}
		for _, id := range seq.ComponentIDs {
			if _, ok := components[seq.Sector][id]; !ok {
				return nil, fmt.Errorf("sequence for sector %q references undefined component %q", seq.Sector, id)
			}
		}
		seqs[seq.Sector] = seq
	}

	return &Catalog{sequences: seqs, components: components}, nil
}

// Sectors returns the sector keys the catalog knows about, sorted.
func (c *Catalog) Sectors() []string {
	sectors := make([]string, 0, len(c.sequences))
	for sector := range c.sequences {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)
	return sectors
}

// Sequence returns the canonical sequence for a sector.
func (c *Catalog) Sequence(sector string) (EngineeringSequence, error) {
	seq, ok := c.sequences[sector]
	if !ok {
		return EngineeringSequence{}, fmt.Errorf("unknown sector %q", sector)
	}
	return seq, nil
}

// SlotCount returns the number of slots on the build surface for a sector,
// which equals the length of its canonical sequence.
func (c *Catalog) SlotCount(sector string) (int, error) {
	seq, err := c.Sequence(sector)
	if err != nil {
		return 0, err
	}
	return len(seq.ComponentIDs), nil
}

// ExpectedAt returns the component ID the canonical sequence expects at the
// given slot index.
func (c *Catalog) ExpectedAt(sector string, slot int) (string, error) {
	seq, err := c.Sequence(sector)
	if err != nil {
		return "", err
	}
	if slot < 0 || slot >= len(seq.ComponentIDs) {
		return "", fmt.Errorf("slot %d out of range for sector %q", slot, sector)
	}
	return seq.ComponentIDs[slot], nil
}

// Component returns the definition for a component in a sector.
func (c *Catalog) Component(sector, id string) (ComponentDefinition, error) {
	def, ok := c.components[sector][id]
	if !ok {
		return ComponentDefinition{}, fmt.Errorf("unknown component %q in sector %q", id, sector)
	}
	return def, nil
}

// Components returns all component definitions for a sector, ordered by the
// canonical sequence.
func (c *Catalog) Components(sector string) ([]ComponentDefinition, error) {
	seq, err := c.Sequence(sector)
	if err != nil {
		return nil, err
	}
	defs := make([]ComponentDefinition, 0, len(seq.ComponentIDs))
	for _, id := range seq.ComponentIDs {
		defs = append(defs, c.components[sector][id])
	}
	return defs, nil
}

// AdjacentPairs returns the ordered source->target pairs that mirror the
// canonical sequence's adjacency. Only these pairings are valid pipe
// connections.
func (c *Catalog) AdjacentPairs(sector string) ([]Pair, error) {
	seq, err := c.Sequence(sector)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, len(seq.ComponentIDs)-1)
	for i := 0; i+1 < len(seq.ComponentIDs); i++ {
		pairs = append(pairs, Pair{Source: seq.ComponentIDs[i], Target: seq.ComponentIDs[i+1]})
	}
	return pairs, nil
}

// ExpectedConnections returns how many pipe connections a complete build for
// the sector has: one per adjacent pair in the sequence.
func (c *Catalog) ExpectedConnections(sector string) (int, error) {
	seq, err := c.Sequence(sector)
	if err != nil {
		return 0, err
	}
	return len(seq.ComponentIDs) - 1, nil
}
