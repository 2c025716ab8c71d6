package world

import (
	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/domain/geom"
)

// ActorView is the renderable state of the actor
type ActorView struct {
	Box         geom.Box
	VX, VY      float64
	Grounded    bool
	WallSliding bool
	Dead        bool
	Invincible  bool
	Warning     bool // invincibility about to run out
}

// Snapshot is a read-only copy of everything the renderer draws
type Snapshot struct {
	Tick       uint64
	StageID    int
	GravityDir float64
	Spawn      geom.Vec
	Actor      ActorView
	Entities   []entity.View
}

// Snapshot copies the current state
func (w *World) Snapshot() Snapshot {
	a := w.actor
	views := make([]entity.View, len(w.entities))
	for i, e := range w.entities {
		views[i] = e.View()
	}
	return Snapshot{
		Tick:       w.tick,
		StageID:    w.stage.ID,
		GravityDir: w.gravity,
		Spawn:      w.spawn,
		Actor: ActorView{
			Box:         a.Box(),
			VX:          a.VX,
			VY:          a.VY,
			Grounded:    a.Grounded,
			WallSliding: a.WallSliding,
			Dead:        a.Dead,
			Invincible:  a.Invincible(),
			Warning:     a.InvincibilityWarning(),
		},
		Entities: views,
	}
}
