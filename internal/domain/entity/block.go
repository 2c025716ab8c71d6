package entity

import (
	"github.com/younwookim/unfair/internal/domain/event"
	"github.com/younwookim/unfair/internal/domain/geom"
)

// StaticBlock is plain terrain. A decorative block is drawn but not solid.
type StaticBlock struct {
	base
	Decorative bool
}

// NewStaticBlock creates a terrain block
func NewStaticBlock(id string, box geom.Box, decorative bool) *StaticBlock {
	return &StaticBlock{base: newBase(id, KindStaticBlock, box), Decorative: decorative}
}

func (b *StaticBlock) Solidity(*Actor) Solidity {
	if b.Decorative {
		return NonSolid
	}
	return Solid
}

func (b *StaticBlock) OnContact(Context, geom.Side) {}

func (b *StaticBlock) View() View {
	v := b.view()
	v.Fake = b.Decorative
	return v
}

// InvisibleBlock is always solid and only drawn once it has been touched
type InvisibleBlock struct {
	base
	Revealed bool
}

// NewInvisibleBlock creates a hidden block
func NewInvisibleBlock(id string, box geom.Box) *InvisibleBlock {
	return &InvisibleBlock{base: newBase(id, KindInvisibleBlock, box)}
}

func (b *InvisibleBlock) Solidity(*Actor) Solidity { return Solid }

func (b *InvisibleBlock) OnContact(Context, geom.Side) {
	b.Revealed = true
}

func (b *InvisibleBlock) View() View {
	v := b.view()
	v.Visible = b.Revealed
	v.Revealed = b.Revealed
	return v
}

// Axis selects the direction a MovingBlock travels
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// MovingBlock oscillates along one axis and carries riders with it
type MovingBlock struct {
	base
	Axis   Axis
	patrol patrol
	moved  geom.Vec
}

// NewMovingBlock creates a platform moving from its start over span at speed
// pixels per tick
func NewMovingBlock(id string, box geom.Box, axis Axis, span, speed float64) *MovingBlock {
	start := box.X
	if axis == AxisY {
		start = box.Y
	}
	return &MovingBlock{
		base:   newBase(id, KindMovingBlock, box),
		Axis:   axis,
		patrol: patrol{start: start, span: span, vel: speed},
	}
}

func (b *MovingBlock) Solidity(*Actor) Solidity { return Solid }

func (b *MovingBlock) OnContact(Context, geom.Side) {}

// Carry returns the platform's current per-tick velocity
func (b *MovingBlock) Carry() geom.Vec {
	if b.Axis == AxisY {
		return geom.Vec{Y: b.patrol.vel}
	}
	return geom.Vec{X: b.patrol.vel}
}

// Crushing reports true: a moving platform on the actor's head is fatal
func (b *MovingBlock) Crushing() bool { return true }

func (b *MovingBlock) OnTick(TickContext) {
	if b.Axis == AxisY {
		b.box.Y = b.patrol.step(b.box.Y)
		return
	}
	b.box.X = b.patrol.step(b.box.X)
}

func (b *MovingBlock) View() View {
	v := b.view()
	v.Active = true
	return v
}

// TrustBlock is solid for threshold-1 landings and vanishes on the last one
type TrustBlock struct {
	base
	Threshold int
	Landings  int
	Destroyed bool

	touchedThisTick bool
	touchedLastTick bool
}

// NewTrustBlock creates a block that gives way on landing number threshold
func NewTrustBlock(id string, box geom.Box, threshold int) *TrustBlock {
	if threshold < 1 {
		threshold = 1
	}
	return &TrustBlock{base: newBase(id, KindTrustBlock, box), Threshold: threshold}
}

func (b *TrustBlock) Solidity(*Actor) Solidity {
	if b.Destroyed {
		return NonSolid
	}
	return Solid
}

// OnContact counts a landing only when the actor was not already standing on
// the block the previous tick, so resting on it counts once.
func (b *TrustBlock) OnContact(ctx Context, side geom.Side) {
	if b.Destroyed || side != geom.LandingSide(ctx.GravityDir()) {
		return
	}
	b.touchedThisTick = true
	if b.touchedLastTick {
		return
	}
	b.Landings++
	if b.Landings >= b.Threshold {
		b.Destroyed = true
		ctx.Emit(event.Buzzer, b.box.Center())
	}
}

func (b *TrustBlock) OnTick(TickContext) {
	b.touchedLastTick = b.touchedThisTick
	b.touchedThisTick = false
}

func (b *TrustBlock) View() View {
	v := b.view()
	v.Visible = !b.Destroyed
	v.Destroyed = b.Destroyed
	v.Count = b.Landings
	return v
}

// BreakableBlock blocks a normal actor and shatters under an invincible one
type BreakableBlock struct {
	base
	Destroyed bool
}

// NewBreakableBlock creates a block that breaks under an invincible actor
func NewBreakableBlock(id string, box geom.Box) *BreakableBlock {
	return &BreakableBlock{base: newBase(id, KindBreakableBlock, box)}
}

func (b *BreakableBlock) Solidity(a *Actor) Solidity {
	if b.Destroyed || a.Invincible() {
		return NonSolid
	}
	return Solid
}

func (b *BreakableBlock) OnContact(ctx Context, _ geom.Side) {
	if b.Destroyed || !ctx.Actor().Invincible() {
		return
	}
	b.Destroyed = true
	ctx.Emit(event.Explosion, b.box.Center())
}

func (b *BreakableBlock) View() View {
	v := b.view()
	v.Visible = !b.Destroyed
	v.Destroyed = b.Destroyed
	return v
}
