package replay

import (
	"fmt"

	"github.com/younwookim/unfair/internal/application/run"
	"github.com/younwookim/unfair/internal/application/state"
	"github.com/younwookim/unfair/internal/application/world"
	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/domain/event"
	"github.com/younwookim/unfair/internal/domain/geom"
	"github.com/younwookim/unfair/internal/domain/progress"
	"github.com/younwookim/unfair/internal/infrastructure/config"
	"github.com/younwookim/unfair/internal/infrastructure/storage"
)

// Result summarises a headless replay
type Result struct {
	Frames     int // ticks actually simulated
	Deaths     int
	Won        bool
	FinalState state.RunState
	LastDeath  *run.DeathInfo
	ActorPos   geom.Vec // last known actor position
	Events     map[event.Kind]int
}

// Simulate re-runs a recording against a throwaway in-memory save with
// every stage unlocked. Frames after the run leaves Playing are skipped
// unless they carry a retry.
func Simulate(cfg *config.PhysicsConfig, stages []*entity.Stage, data ReplayData) (Result, error) {
	store := progress.NewStore(storage.NewMemory(), cfg.Progress.HistoryCapacity)
	for id := 1; id < len(stages); id++ {
		if err := store.MarkCleared(id, id+1); err != nil {
			return Result{}, err
		}
	}

	m, err := run.NewMachine(cfg, stages, store, data.Seed)
	if err != nil {
		return Result{}, err
	}
	if err := m.PressStart(); err != nil {
		return Result{}, err
	}
	if err := m.SelectStage(data.Stage); err != nil {
		return Result{}, fmt.Errorf("replay stage %d: %w", data.Stage, err)
	}

	res := Result{Events: make(map[event.Kind]int)}
	r := NewReplayer(data)
	for {
		fi, ok := r.Next()
		if !ok {
			break
		}
		if fi.RT && m.State() == state.StateGameOver {
			if err := m.Retry(); err != nil {
				return res, err
			}
		}
		if m.State() != state.StatePlaying {
			continue
		}

		switch m.Tick(fi.Intent()) {
		case world.Died:
			res.Deaths++
		case world.Won:
			res.Won = true
		}
		res.Frames++
		res.ActorPos = m.World().Actor().Pos()
		for _, e := range m.DrainEvents() {
			res.Events[e.Kind]++
		}
	}

	res.FinalState = m.State()
	if d, ok := m.LastDeath(); ok {
		res.LastDeath = &d
	}
	return res, nil
}
