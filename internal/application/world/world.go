// Package world owns everything one life on a stage needs: the actor, the
// fresh entity list, gravity, the spawn point and the event queue. It is the
// Context every entity reaction borrows during a tick.
package world

import (
	"fmt"

	"github.com/younwookim/unfair/internal/application/system"
	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/domain/event"
	"github.com/younwookim/unfair/internal/domain/geom"
	"github.com/younwookim/unfair/internal/infrastructure/config"
)

// Outcome reports what a tick ended in
type Outcome int

const (
	Running Outcome = iota
	Died
	Won
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Died:
		return "died"
	case Won:
		return "won"
	default:
		return "running"
	}
}

// Death describes how the current life ended
type Death struct {
	Reason entity.DeathReason
	At     geom.Vec // actor position when the fatal contact happened
	Tick   uint64
}

// World is one life on one stage
type World struct {
	stage      *entity.Stage
	integrator *system.Integrator
	resolver   *system.Resolver
	broad      *system.BroadPhase

	actor    *entity.Actor
	entities []entity.Entity
	byID     map[string]entity.Entity

	gravity float64
	spawn   geom.Vec
	events  *event.Queue
	tick    uint64

	death *Death
	won   bool
}

// New builds a fresh world for stage with the actor at spawn. Gravity starts
// normal and every entity is re-instantiated from the stage descriptors.
func New(cfg *config.PhysicsConfig, stage *entity.Stage, spawn geom.Vec) (*World, error) {
	tuning := system.TuningFrom(cfg)
	tuning.FallLimit = stage.Bounds.Bottom() + cfg.Physics.FallMargin

	entities, err := stage.Instantiate(tuning)
	if err != nil {
		return nil, fmt.Errorf("failed to build stage %d: %w", stage.ID, err)
	}

	byID := make(map[string]entity.Entity, len(entities))
	for _, e := range entities {
		byID[e.ID()] = e
	}

	broad := system.NewBroadPhase(stage.Bounds, entities)
	return &World{
		stage:      stage,
		integrator: system.NewIntegrator(cfg),
		resolver:   system.NewResolver(broad),
		broad:      broad,
		actor:      entity.NewActor(spawn, cfg.Actor.Width, cfg.Actor.Height),
		entities:   entities,
		byID:       byID,
		gravity:    1,
		spawn:      spawn,
		events:     event.NewQueue(),
	}, nil
}

// Tick advances the world by one step: integrate, resolve, check the fall,
// advance entity behaviour, age effects. A world that already ended does
// nothing.
func (w *World) Tick(in system.Intent) Outcome {
	if w.Terminal() {
		return w.outcome()
	}

	if w.integrator.Step(w.actor, in, w.gravity) {
		w.Emit(event.Jump, w.actor.Center())
	}

	w.broad.Sync(w.entities)
	w.resolver.Resolve(w, w.entities)

	if !w.Terminal() && w.integrator.OutOfBounds(w.actor, w.gravity, w.stage.Bounds) {
		w.Kill(entity.ReasonFell, true)
	}

	tc := entity.TickContext{Actor: w.actor, GravityDir: w.gravity, Tick: w.tick}
	for _, e := range w.entities {
		e.OnTick(tc)
	}

	w.actor.AgeInvincibility()
	w.tick++
	return w.outcome()
}

func (w *World) outcome() Outcome {
	switch {
	case w.death != nil:
		return Died
	case w.won:
		return Won
	default:
		return Running
	}
}

// Actor returns the controllable character
func (w *World) Actor() *entity.Actor { return w.actor }

// GravityDir returns +1 for normal gravity, -1 for inverted
func (w *World) GravityDir() float64 { return w.gravity }

// Terminal reports whether this life already ended in a death or a win
func (w *World) Terminal() bool {
	return w.death != nil || w.won
}

// Kill is the only way the actor dies. It runs once per life; later calls,
// and calls blocked by invincibility when bypass is false, return false.
func (w *World) Kill(reason entity.DeathReason, bypass bool) bool {
	if w.Terminal() {
		return false
	}
	if !bypass && w.actor.Invincible() {
		return false
	}
	w.actor.Dead = true
	w.death = &Death{Reason: reason, At: w.actor.Pos(), Tick: w.tick}
	w.Emit(event.Death, w.actor.Center())
	return true
}

// RequestWin asks for the stage to end in a win
func (w *World) RequestWin() {
	if w.Terminal() {
		return
	}
	w.won = true
	w.Emit(event.Win, w.actor.Center())
}

// SetSpawn moves the respawn point for the rest of the run
func (w *World) SetSpawn(p geom.Vec) { w.spawn = p }

// FlipGravity inverts the gravity direction
func (w *World) FlipGravity() { w.gravity = -w.gravity }

// Activate fires the entity with the given id. Unknown ids and entities
// that cannot be activated are a no-op.
func (w *World) Activate(id string) bool {
	e, ok := w.byID[id]
	if !ok {
		return false
	}
	a, ok := e.(entity.Activatable)
	if !ok {
		return false
	}
	return a.Activate()
}

// Emit queues an event for the audio/fx side
func (w *World) Emit(kind event.Kind, at geom.Vec) {
	w.events.Push(event.Event{Kind: kind, At: at, Tick: w.tick})
}

// DrainEvents returns and clears the pending events
func (w *World) DrainEvents() []event.Event { return w.events.Drain() }

// Death returns how this life ended, or nil while alive
func (w *World) Death() *Death { return w.death }

// Won reports whether the real goal was reached
func (w *World) Won() bool { return w.won }

// Spawn returns the current respawn point
func (w *World) Spawn() geom.Vec { return w.spawn }

// Stage returns the stage being played
func (w *World) Stage() *entity.Stage { return w.stage }

// Entities returns the live entity list in resolution order
func (w *World) Entities() []entity.Entity { return w.entities }

// Entity looks an entity up by id
func (w *World) Entity(id string) (entity.Entity, bool) {
	e, ok := w.byID[id]
	return e, ok
}

// TickCount returns how many ticks this life has run
func (w *World) TickCount() uint64 { return w.tick }

var _ system.Context = (*World)(nil)
