package entity

import (
	"fmt"

	"github.com/younwookim/unfair/internal/domain/geom"
)

// Stage is an ordered list of descriptors plus a spawn point.
// The order of Blueprints is the resolution order of the built entities.
type Stage struct {
	ID         int
	Name       string
	Spawn      geom.Vec
	Bounds     geom.Box // playfield; falling past it kills
	Blueprints []Blueprint
}

// Instantiate builds a fresh entity list in definition order
func (s *Stage) Instantiate(t Tuning) ([]Entity, error) {
	entities := make([]Entity, 0, len(s.Blueprints))
	seen := make(map[string]struct{}, len(s.Blueprints))
	for i, bp := range s.Blueprints {
		e, err := Build(i, bp, t)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", s.ID, err)
		}
		if _, dup := seen[e.ID()]; dup {
			return nil, fmt.Errorf("stage %d: duplicate entity id %q", s.ID, e.ID())
		}
		seen[e.ID()] = struct{}{}
		entities = append(entities, e)
	}
	return entities, nil
}

// Validate checks that every descriptor builds
func (s *Stage) Validate(t Tuning) error {
	_, err := s.Instantiate(t)
	return err
}
