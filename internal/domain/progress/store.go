// Package progress keeps the death history, the death counter and the
// per-stage unlock/clear map, and persists each of them as one blob per key.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/younwookim/unfair/internal/domain/geom"
)

// Persisted keys
const (
	KeyDeathHistory = "death_history"
	KeyDeathCount   = "death_count"
	KeyStages       = "stages"
)

// DefaultCapacity is the number of death records kept
const DefaultCapacity = 200

// FirstStage is unlocked on a fresh save
const FirstStage = 1

// Backend stores opaque blobs by key. A missing key loads as nil data.
type Backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// DeathRecord is one entry of the death history
type DeathRecord struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Stage int     `json:"stageId"`
}

// StageRecord is the persisted state of one stage
type StageRecord struct {
	Unlocked bool `json:"unlocked"`
	Cleared  bool `json:"cleared"`
}

// Store holds the progression state in memory and writes it through to a
// Backend on every change
type Store struct {
	backend  Backend
	capacity int

	history []DeathRecord
	count   int
	stages  map[int]StageRecord
}

// NewStore creates a store with default contents. Call Load to read the
// persisted state.
func NewStore(backend Backend, capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &Store{backend: backend, capacity: capacity}
	s.setDefaults()
	return s
}

func (s *Store) setDefaults() {
	s.history = nil
	s.count = 0
	s.stages = map[int]StageRecord{FirstStage: {Unlocked: true}}
}

// Load reads every key from the backend. Missing or malformed data falls
// back to the defaults for that key; load never fails.
func (s *Store) Load() {
	s.setDefaults()

	var history []DeathRecord
	if s.loadJSON(KeyDeathHistory, &history, "death history") {
		if len(history) > s.capacity {
			history = history[len(history)-s.capacity:]
		}
		s.history = history
	}

	var count int
	if s.loadJSON(KeyDeathCount, &count, "death count") && count >= 0 {
		s.count = count
	}

	var stages map[int]StageRecord
	if s.loadJSON(KeyStages, &stages, "stage progress") {
		for id, rec := range stages {
			s.stages[id] = rec
		}
		first := s.stages[FirstStage]
		first.Unlocked = true
		s.stages[FirstStage] = first
	}
}

func (s *Store) loadJSON(key string, v any, what string) bool {
	data, err := s.backend.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", what, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", what, err)
		return false
	}
	return true
}

func (s *Store) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.backend.SaveItem(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// RecordDeath bumps the counter, appends a rounded record for stage and
// evicts the oldest records past capacity. Both keys are persisted; the
// in-memory state is updated even when saving fails.
func (s *Store) RecordDeath(pos geom.Vec, stage int) error {
	s.count++
	s.history = append(s.history, DeathRecord{X: math.Round(pos.X), Y: math.Round(pos.Y), Stage: stage})
	if over := len(s.history) - s.capacity; over > 0 {
		s.history = append(s.history[:0:0], s.history[over:]...)
	}

	return errors.Join(
		s.saveJSON(KeyDeathHistory, s.history),
		s.saveJSON(KeyDeathCount, s.count),
	)
}

// MarkCleared marks stage cleared and unlocks next. next <= 0 unlocks nothing.
func (s *Store) MarkCleared(stage, next int) error {
	rec := s.stages[stage]
	rec.Cleared = true
	rec.Unlocked = true
	s.stages[stage] = rec

	if next > 0 {
		n := s.stages[next]
		n.Unlocked = true
		s.stages[next] = n
	}
	return s.saveJSON(KeyStages, s.stages)
}

// Unlocked reports whether stage may be selected
func (s *Store) Unlocked(stage int) bool {
	return s.stages[stage].Unlocked
}

// Stage returns the record for stage (zero value if never touched)
func (s *Store) Stage(stage int) StageRecord {
	return s.stages[stage]
}

// StageIDs returns the ids with a record, ascending
func (s *Store) StageIDs() []int {
	ids := make([]int, 0, len(s.stages))
	for id := range s.stages {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// DeathCount returns the total number of deaths ever recorded
func (s *Store) DeathCount() int {
	return s.count
}

// History returns a copy of the death history, oldest first
func (s *Store) History() []DeathRecord {
	out := make([]DeathRecord, len(s.history))
	copy(out, s.history)
	return out
}

// HistoryForStage returns the death records of one stage, oldest first
func (s *Store) HistoryForStage(stage int) []DeathRecord {
	var out []DeathRecord
	for _, r := range s.history {
		if r.Stage == stage {
			out = append(out, r)
		}
	}
	return out
}

// Capacity returns the history bound
func (s *Store) Capacity() int {
	return s.capacity
}

// Reset wipes everything back to defaults and persists the empty state
func (s *Store) Reset() error {
	s.setDefaults()
	if err := s.saveJSON(KeyDeathHistory, []DeathRecord{}); err != nil {
		return err
	}
	if err := s.saveJSON(KeyDeathCount, 0); err != nil {
		return err
	}
	return s.saveJSON(KeyStages, s.stages)
}
