// Package run drives a play session: title, stage select, playing and the
// game-over and win screens. It owns every phase transition and applies the
// persistence side effects of deaths and clears.
package run

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/younwookim/unfair/internal/application/state"
	"github.com/younwookim/unfair/internal/application/system"
	"github.com/younwookim/unfair/internal/application/world"
	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/domain/event"
	"github.com/younwookim/unfair/internal/domain/geom"
	"github.com/younwookim/unfair/internal/domain/progress"
	"github.com/younwookim/unfair/internal/infrastructure/config"
)

var (
	ErrStageOutOfRange   = errors.New("stage out of range")
	ErrStageLocked       = errors.New("stage is locked")
	ErrInvalidTransition = errors.New("invalid state transition")
)

// DeathInfo describes the last death for the game-over screen
type DeathInfo struct {
	Reason  entity.DeathReason
	At      geom.Vec
	StageID int
	Taunt   string
}

// Machine is the run state machine
type Machine struct {
	cfg    *config.PhysicsConfig
	stages []*entity.Stage
	store  *progress.Store
	rng    *rand.Rand

	state   state.RunState
	world   *world.World
	stageID int
	spawn   geom.Vec
	last    *DeathInfo

	titleTrapped bool
	events       *event.Queue
}

// NewMachine creates a machine at the title screen. stages[i] must have id
// i+1; every stage is instantiated once up front so a broken stage fails
// here instead of mid-run.
func NewMachine(cfg *config.PhysicsConfig, stages []*entity.Stage, store *progress.Store, seed int64) (*Machine, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("no stages")
	}
	tuning := system.TuningFrom(cfg)
	for i, s := range stages {
		if s.ID != i+1 {
			return nil, fmt.Errorf("stage at position %d has id %d", i+1, s.ID)
		}
		if err := s.Validate(tuning); err != nil {
			return nil, err
		}
	}

	return &Machine{
		cfg:    cfg,
		stages: stages,
		store:  store,
		rng:    rand.New(rand.NewSource(seed)),
		state:  state.StateTitle,
		events: event.NewQueue(),
	}, nil
}

// State returns the current phase
func (m *Machine) State() state.RunState { return m.state }

// PressStart leaves the title screen
func (m *Machine) PressStart() error {
	if m.state != state.StateTitle {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, m.state)
	}
	m.state = state.StateStageSelect
	return nil
}

// PressFakeStart handles the decoy start button on the title screen. It
// blows up the first time and does nothing afterwards.
func (m *Machine) PressFakeStart(at geom.Vec) bool {
	if m.state != state.StateTitle || m.titleTrapped {
		return false
	}
	m.titleTrapped = true
	m.events.Push(event.Event{Kind: event.Explosion, At: at})
	return true
}

// TitleTrapped reports whether the decoy already went off
func (m *Machine) TitleTrapped() bool { return m.titleTrapped }

// SelectStage starts a fresh run of stage id from its own spawn point
func (m *Machine) SelectStage(id int) error {
	if m.state != state.StateStageSelect {
		return fmt.Errorf("%w: select stage from %s", ErrInvalidTransition, m.state)
	}
	if id < 1 || id > len(m.stages) {
		return fmt.Errorf("%w: %d", ErrStageOutOfRange, id)
	}
	if !m.store.Unlocked(id) {
		return fmt.Errorf("%w: %d", ErrStageLocked, id)
	}

	stage := m.stages[id-1]
	return m.enterPlaying(stage, stage.Spawn)
}

// Retry restarts the stage after a death. The spawn point survives the
// death, so an activated checkpoint is where the actor comes back.
func (m *Machine) Retry() error {
	if m.state != state.StateGameOver {
		return fmt.Errorf("%w: retry from %s", ErrInvalidTransition, m.state)
	}
	return m.enterPlaying(m.stages[m.stageID-1], m.spawn)
}

// Continue leaves the win screen for stage select
func (m *Machine) Continue() error {
	if m.state != state.StateWin {
		return fmt.Errorf("%w: continue from %s", ErrInvalidTransition, m.state)
	}
	m.toStageSelect()
	return nil
}

// Abandon drops the current run and returns to stage select. It is only
// valid between ticks.
func (m *Machine) Abandon() error {
	if m.state != state.StatePlaying && m.state != state.StateGameOver {
		return fmt.Errorf("%w: abandon from %s", ErrInvalidTransition, m.state)
	}
	m.toStageSelect()
	return nil
}

func (m *Machine) toStageSelect() {
	m.world = nil
	m.state = state.StateStageSelect
}

func (m *Machine) enterPlaying(stage *entity.Stage, spawn geom.Vec) error {
	w, err := world.New(m.cfg, stage, spawn)
	if err != nil {
		return err
	}
	m.world = w
	m.stageID = stage.ID
	m.spawn = spawn
	m.state = state.StatePlaying
	return nil
}

// Tick advances the world one step while playing; in any other state it
// does nothing. Deaths and wins are applied here, once each.
func (m *Machine) Tick(in system.Intent) world.Outcome {
	if m.state != state.StatePlaying || m.world == nil {
		return world.Running
	}

	outcome := m.world.Tick(in)
	for _, e := range m.world.DrainEvents() {
		m.events.Push(e)
	}
	m.spawn = m.world.Spawn()

	switch outcome {
	case world.Died:
		m.onDeath(m.world.Death())
	case world.Won:
		m.onWin()
	}
	return outcome
}

func (m *Machine) onDeath(d *world.Death) {
	m.last = &DeathInfo{
		Reason:  d.Reason,
		At:      d.At,
		StageID: m.stageID,
		Taunt:   m.taunt(),
	}
	if err := m.store.RecordDeath(d.At, m.stageID); err != nil {
		log.Printf("Warning: Could not save death: %v", err)
	}
	m.state = state.StateGameOver
}

func (m *Machine) onWin() {
	next := m.stageID + 1
	if next > len(m.stages) {
		next = 0
	}
	if err := m.store.MarkCleared(m.stageID, next); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
	m.state = state.StateWin
}

func (m *Machine) taunt() string {
	if len(m.cfg.Taunts) == 0 {
		return ""
	}
	return m.cfg.Taunts[m.rng.Intn(len(m.cfg.Taunts))]
}

// DrainEvents returns every event raised since the last call
func (m *Machine) DrainEvents() []event.Event { return m.events.Drain() }

// LastDeath returns the most recent death of this session
func (m *Machine) LastDeath() (DeathInfo, bool) {
	if m.last == nil {
		return DeathInfo{}, false
	}
	return *m.last, true
}

// ReplaceStage swaps in a new definition for an existing stage id. A life
// already in progress keeps the old entities; the next start or retry uses
// the new ones.
func (m *Machine) ReplaceStage(stage *entity.Stage) error {
	if stage.ID < 1 || stage.ID > len(m.stages) {
		return fmt.Errorf("%w: %d", ErrStageOutOfRange, stage.ID)
	}
	if err := stage.Validate(system.TuningFrom(m.cfg)); err != nil {
		return err
	}
	m.stages[stage.ID-1] = stage
	return nil
}

// Stages returns the campaign in unlock order
func (m *Machine) Stages() []*entity.Stage { return m.stages }

// Progress returns the persistence store
func (m *Machine) Progress() *progress.Store { return m.store }

// World returns the live world, or nil outside a run
func (m *Machine) World() *world.World { return m.world }

// StageID returns the stage being played or last played
func (m *Machine) StageID() int { return m.stageID }

// Spawn returns the respawn point used by Retry
func (m *Machine) Spawn() geom.Vec { return m.spawn }
