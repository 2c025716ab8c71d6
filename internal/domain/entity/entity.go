// Package entity holds the actor and every interactive level object.
//
// Each variant is a concrete type implementing Entity. The collision
// resolver only talks to the Entity interface plus the optional Carrier,
// Crusher and Activatable capabilities; what happens on contact is decided
// by the variant itself through the borrowed Context.
package entity

import (
	"errors"

	"github.com/younwookim/unfair/internal/domain/geom"
)

// ErrUnknownKind is returned when a stage descriptor names no known variant
var ErrUnknownKind = errors.New("unknown entity kind")

// base carries the identity and box every variant shares
type base struct {
	id   string
	kind Kind
	box  geom.Box
}

func newBase(id string, kind Kind, box geom.Box) base {
	return base{id: id, kind: kind, box: box}
}

func (b *base) ID() string { return b.id }
func (b *base) Kind() Kind { return b.kind }
func (b *base) Box() geom.Box { return b.box }
func (b *base) OnTick(TickContext) {}

func (b *base) view() View {
	return View{ID: b.id, Kind: b.kind, Box: b.box, Visible: true}
}

// patrol moves a position back and forth inside [start, start+span].
// The velocity flips once the position leaves the range, so an object may
// overshoot a bound by at most one step.
type patrol struct {
	start float64
	span  float64
	vel   float64
}

func (p *patrol) step(pos float64) float64 {
	pos += p.vel
	if pos > p.start+p.span || pos < p.start {
		p.vel = -p.vel
	}
	return pos
}

var (
	_ Entity = (*StaticBlock)(nil)
	_ Entity = (*InvisibleBlock)(nil)
	_ Entity = (*MovingBlock)(nil)
	_ Entity = (*TrustBlock)(nil)
	_ Entity = (*BreakableBlock)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Trap)(nil)
	_ Entity = (*FakeSpike)(nil)
	_ Entity = (*FallingHazard)(nil)
	_ Entity = (*HomingMissile)(nil)
	_ Entity = (*LaserTrap)(nil)
	_ Entity = (*TriggerZone)(nil)
	_ Entity = (*GlitchTrigger)(nil)
	_ Entity = (*GravitySwitch)(nil)
	_ Entity = (*AccelZone)(nil)
	_ Entity = (*FakeSavePoint)(nil)
	_ Entity = (*Checkpoint)(nil)
	_ Entity = (*Goal)(nil)
	_ Entity = (*LaunchPad)(nil)
	_ Entity = (*PowerStar)(nil)
	_ Entity = (*SignPost)(nil)

	_ Carrier     = (*MovingBlock)(nil)
	_ Crusher     = (*MovingBlock)(nil)
	_ Crusher     = (*FallingHazard)(nil)
	_ Activatable = (*FallingHazard)(nil)
)
