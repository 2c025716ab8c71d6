package run

import (
	"github.com/younwookim/unfair/internal/application/state"
	"github.com/younwookim/unfair/internal/application/world"
)

// Snapshot is what the front-end needs to draw the current frame
type Snapshot struct {
	State      state.RunState
	StageID    int
	StageName  string
	DeathCount int
	World      *world.Snapshot // nil outside a run
	LastDeath  *DeathInfo
}

// Snapshot copies the current state
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		State:      m.state,
		StageID:    m.stageID,
		DeathCount: m.store.DeathCount(),
	}
	if m.stageID > 0 {
		s.StageName = m.stages[m.stageID-1].Name
	}
	if m.world != nil {
		ws := m.world.Snapshot()
		s.World = &ws
	}
	if m.last != nil {
		d := *m.last
		s.LastDeath = &d
	}
	return s
}
