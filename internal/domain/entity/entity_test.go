package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/unfair/internal/domain/event"
	"github.com/younwookim/unfair/internal/domain/geom"
)

// fakeContext records what reactions ask of the world
type fakeContext struct {
	actor   *Actor
	gravity float64
	kills   []DeathReason
	wins    int
	spawn   *geom.Vec
	events  []event.Kind
	targets map[string]Activatable
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		actor:   NewActor(geom.Vec{X: 50, Y: 400}, 20, 20),
		gravity: 1,
		targets: map[string]Activatable{},
	}
}

func (c *fakeContext) Actor() *Actor { return c.actor }
func (c *fakeContext) GravityDir() float64 { return c.gravity }
func (c *fakeContext) RequestWin() { c.wins++ }
func (c *fakeContext) SetSpawn(p geom.Vec) { c.spawn = &p }
func (c *fakeContext) FlipGravity() { c.gravity = -c.gravity }
func (c *fakeContext) Emit(k event.Kind, _ geom.Vec) {
	c.events = append(c.events, k)
}

func (c *fakeContext) Kill(reason DeathReason, bypass bool) bool {
	if c.actor.Dead || (!bypass && c.actor.Invincible()) {
		return false
	}
	c.actor.Dead = true
	c.kills = append(c.kills, reason)
	return true
}

func (c *fakeContext) Activate(id string) bool {
	t, ok := c.targets[id]
	if !ok {
		return false
	}
	return t.Activate()
}

func TestKind_ParseRoundTrip(t *testing.T) {
	for k, name := range kindNames {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseKind(name)
			require.True(t, ok)
			assert.Equal(t, k, got)
			assert.Equal(t, name, k.String())
		})
	}

	k, ok := ParseKind("ui_block")
	assert.True(t, ok)
	assert.Equal(t, KindFallingHazard, k)

	_, ok = ParseKind("dragon")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Kind(-1).String())
}

func TestActor_Invincibility(t *testing.T) {
	a := NewActor(geom.Vec{X: 1, Y: 2}, 20, 20)
	assert.False(t, a.Invincible())

	a.SetInvincible(5, 2)
	assert.True(t, a.Invincible())
	assert.False(t, a.InvincibilityWarning())

	a.AgeInvincibility()
	a.AgeInvincibility()
	a.AgeInvincibility()
	assert.True(t, a.InvincibilityWarning(), "last two ticks warn")

	a.AgeInvincibility()
	a.AgeInvincibility()
	a.AgeInvincibility()
	assert.False(t, a.Invincible())
	assert.Equal(t, 0, a.InvincibleTicks)
}

func TestActor_ResetKeepsSize(t *testing.T) {
	a := NewActor(geom.Vec{}, 20, 30)
	a.VX, a.VY, a.Dead, a.Grounded, a.JumpLock = 3, 4, true, true, true
	a.SetInvincible(10, 1)

	a.Reset(geom.Vec{X: 100, Y: 200})

	assert.Equal(t, geom.NewBox(100, 200, 20, 30), a.Box())
	assert.Zero(t, a.VX)
	assert.False(t, a.Dead)
	assert.False(t, a.JumpLock)
	assert.False(t, a.Invincible())
}

func TestStaticBlock_Decorative(t *testing.T) {
	a := NewActor(geom.Vec{}, 20, 20)
	assert.Equal(t, Solid, NewStaticBlock("a", geom.NewBox(0, 0, 10, 10), false).Solidity(a))
	fake := NewStaticBlock("b", geom.NewBox(0, 0, 10, 10), true)
	assert.Equal(t, NonSolid, fake.Solidity(a))
	assert.True(t, fake.View().Visible, "decoys are still drawn")
}

func TestInvisibleBlock_RevealedByContact(t *testing.T) {
	b := NewInvisibleBlock("inv", geom.NewBox(0, 0, 50, 20))
	assert.False(t, b.View().Visible)

	b.OnContact(newFakeContext(), geom.SideLeft)

	assert.True(t, b.View().Visible)
	assert.True(t, b.Revealed)
	assert.Equal(t, Solid, b.Solidity(nil), "reveal is cosmetic only")
}

func TestMovingBlock_Patrol(t *testing.T) {
	b := NewMovingBlock("m", geom.NewBox(100, 300, 80, 20), AxisX, 6, 3)

	var xs []float64
	for i := 0; i < 6; i++ {
		b.OnTick(TickContext{})
		xs = append(xs, b.Box().X)
	}

	// 109 overshoots the range and reverses
	assert.Equal(t, []float64{103, 106, 109, 106, 103, 100}, xs)
	assert.Equal(t, geom.Vec{X: -3}, b.Carry())
	assert.True(t, b.Crushing())
}

func TestMovingBlock_VerticalAxis(t *testing.T) {
	b := NewMovingBlock("m", geom.NewBox(100, 300, 80, 20), AxisY, 50, 2)
	b.OnTick(TickContext{})
	assert.Equal(t, 302.0, b.Box().Y)
	assert.Equal(t, 100.0, b.Box().X)
	assert.Equal(t, geom.Vec{Y: 2}, b.Carry())
}

func TestTrustBlock_VanishesOnNthLanding(t *testing.T) {
	ctx := newFakeContext()
	b := NewTrustBlock("trust", geom.NewBox(0, 0, 60, 20), 3)
	land := func() {
		b.OnContact(ctx, geom.SideBottom)
		b.OnTick(TickContext{})
	}
	leave := func() { b.OnTick(TickContext{}) }

	land()
	land() // still standing: same landing
	leave()
	assert.Equal(t, 1, b.Landings)

	land()
	leave()
	assert.Equal(t, 2, b.Landings)
	assert.Equal(t, Solid, b.Solidity(ctx.actor))

	land()
	assert.Equal(t, 3, b.Landings)
	assert.True(t, b.Destroyed)
	assert.Equal(t, NonSolid, b.Solidity(ctx.actor))
	assert.False(t, b.View().Visible)
	assert.Equal(t, []event.Kind{event.Buzzer}, ctx.events)
}

func TestTrustBlock_IgnoresNonLandingContacts(t *testing.T) {
	ctx := newFakeContext()
	b := NewTrustBlock("trust", geom.NewBox(0, 0, 60, 20), 1)

	b.OnContact(ctx, geom.SideLeft)
	b.OnContact(ctx, geom.SideTop)
	assert.Zero(t, b.Landings)

	ctx.gravity = -1
	b.OnContact(ctx, geom.SideTop)
	assert.True(t, b.Destroyed, "under inverted gravity the top face lands")
}

func TestBreakableBlock(t *testing.T) {
	ctx := newFakeContext()
	b := NewBreakableBlock("brk", geom.NewBox(0, 0, 20, 20))

	assert.Equal(t, Solid, b.Solidity(ctx.actor))
	b.OnContact(ctx, geom.SideBottom)
	assert.False(t, b.Destroyed)

	ctx.actor.SetInvincible(10, 0)
	assert.Equal(t, NonSolid, b.Solidity(ctx.actor))
	b.OnContact(ctx, geom.SideNone)
	assert.True(t, b.Destroyed)
	assert.Equal(t, []event.Kind{event.Explosion}, ctx.events)

	ctx.actor.InvincibleTicks = 0
	assert.Equal(t, NonSolid, b.Solidity(ctx.actor), "stays broken")
}

func TestEnemy_Contact(t *testing.T) {
	t.Run("kills a normal actor", func(t *testing.T) {
		ctx := newFakeContext()
		e := NewEnemy("e", geom.NewBox(0, 0, 30, 30), 200, 2)
		e.OnContact(ctx, geom.SideNone)
		assert.Equal(t, []DeathReason{ReasonEaten}, ctx.kills)
		assert.False(t, e.Destroyed)
	})

	t.Run("is destroyed by an invincible actor", func(t *testing.T) {
		ctx := newFakeContext()
		ctx.actor.SetInvincible(100, 0)
		e := NewEnemy("e", geom.NewBox(0, 0, 30, 30), 200, 2)
		e.OnContact(ctx, geom.SideNone)
		assert.Empty(t, ctx.kills)
		assert.True(t, e.Destroyed)
		assert.False(t, e.View().Visible)

		e.OnTick(TickContext{})
		assert.Equal(t, 0.0, e.Box().X, "destroyed enemies stop patrolling")
	})
}

func TestEnemy_Facing(t *testing.T) {
	e := NewEnemy("e", geom.NewBox(0, 0, 30, 30), 2, 2)
	assert.Equal(t, 1, e.Facing())
	e.OnTick(TickContext{})
	e.OnTick(TickContext{})
	assert.Equal(t, -1, e.Facing())
}

func TestTrap_BypassesInvincibility(t *testing.T) {
	ctx := newFakeContext()
	ctx.actor.SetInvincible(100, 0)
	NewTrap("t", geom.NewBox(0, 0, 100, 20)).OnContact(ctx, geom.SideNone)
	assert.Equal(t, []DeathReason{ReasonImpaled}, ctx.kills)
}

func TestFakeSpike_Harmless(t *testing.T) {
	ctx := newFakeContext()
	s := NewFakeSpike("s", geom.NewBox(0, 0, 100, 20))
	s.OnContact(ctx, geom.SideNone)
	assert.Empty(t, ctx.kills)
	assert.True(t, s.View().Revealed)
}

func TestFallingHazard(t *testing.T) {
	h := NewFallingHazard("sign", geom.NewBox(360, -100, 120, 40), "Tutorial", 0.9, 800)
	assert.False(t, h.Crushing())

	h.OnTick(TickContext{})
	assert.Equal(t, -100.0, h.Box().Y, "dormant until activated")

	require.True(t, h.Activate())
	assert.False(t, h.Activate(), "second activation is a no-op")
	assert.True(t, h.Crushing())

	h.OnTick(TickContext{})
	h.OnTick(TickContext{})
	assert.InDelta(t, -100+0.9+1.8, h.Box().Y, 1e-9)
	assert.InDelta(t, 1.8, h.Velocity(), 1e-9)

	for i := 0; i < 200 && !h.Landed; i++ {
		h.OnTick(TickContext{GravityDir: -1})
	}
	assert.True(t, h.Landed)
	assert.False(t, h.Crushing())
	y := h.Box().Y
	h.OnTick(TickContext{})
	assert.Equal(t, y, h.Box().Y)
}

func TestHomingMissile_Steering(t *testing.T) {
	m := NewHomingMissile("m", geom.NewBox(0, 0, 10, 10), 0, 2, 3, 0.5, 0.1)
	actor := NewActor(geom.Vec{X: -5, Y: 100}, 20, 20) // straight below

	m.OnTick(TickContext{Actor: actor})
	assert.InDelta(t, 0.1, m.Angle, 1e-9, "turn is limited per tick")
	assert.InDelta(t, 2.5, m.Speed, 1e-9)

	for i := 0; i < 100; i++ {
		m.OnTick(TickContext{Actor: actor})
	}
	assert.LessOrEqual(t, m.Speed, 3.0)
	assert.InDelta(t, 3.0, m.Velocity().Len(), 1e-9)
}

func TestHomingMissile_Contact(t *testing.T) {
	ctx := newFakeContext()
	m := NewHomingMissile("m", geom.NewBox(0, 0, 10, 10), 0, 2, 3, 0, 0.1)
	m.OnContact(ctx, geom.SideNone)
	assert.Equal(t, []DeathReason{ReasonMissile}, ctx.kills)
	assert.True(t, m.Destroyed)

	ctx = newFakeContext()
	ctx.actor.SetInvincible(10, 0)
	m = NewHomingMissile("m", geom.NewBox(0, 0, 10, 10), 0, 2, 3, 0, 0.1)
	m.OnContact(ctx, geom.SideNone)
	assert.Empty(t, ctx.kills)
	assert.True(t, m.Destroyed)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, math.Pi, normalizeAngle(-math.Pi), 1e-9)
	assert.InDelta(t, -math.Pi/2, normalizeAngle(3*math.Pi/2), 1e-9)
	assert.InDelta(t, 0.5, normalizeAngle(0.5+4*math.Pi), 1e-9)
}

func TestLaserTrap_Phases(t *testing.T) {
	l := NewLaserTrap("l", geom.NewBox(0, 0, 10, 200), 6, 2, 4, 0)

	var phases []LaserPhase
	for i := 0; i < 7; i++ {
		phases = append(phases, l.Phase())
		l.OnTick(TickContext{})
	}
	assert.Equal(t, []LaserPhase{
		PhaseSafe, PhaseSafe, PhaseWarning, PhaseWarning, PhaseActive, PhaseActive, PhaseSafe,
	}, phases)

	offset := NewLaserTrap("l2", geom.NewBox(0, 0, 10, 200), 6, 2, 4, 4)
	assert.Equal(t, PhaseActive, offset.Phase())
}

func TestLaserTrap_OnlyActiveKills(t *testing.T) {
	ctx := newFakeContext()
	ctx.actor.SetInvincible(100, 0)
	l := NewLaserTrap("l", geom.NewBox(0, 0, 10, 200), 6, 2, 4, 0)

	for i := 0; i < 4; i++ {
		l.OnContact(ctx, geom.SideNone)
		l.OnTick(TickContext{})
	}
	assert.Empty(t, ctx.kills)

	l.OnContact(ctx, geom.SideNone)
	assert.Equal(t, []DeathReason{ReasonLaser}, ctx.kills, "invincibility does not help")
}

func TestTriggerZone(t *testing.T) {
	t.Run("sets off target once", func(t *testing.T) {
		ctx := newFakeContext()
		h := NewFallingHazard("killUI", geom.NewBox(0, 0, 10, 10), "", 1, 800)
		ctx.targets["killUI"] = h
		z := NewTriggerZone("z", geom.NewBox(0, 0, 10, 10), "killUI")

		z.OnContact(ctx, geom.SideNone)
		z.OnContact(ctx, geom.SideNone)

		assert.True(t, h.Falling)
		assert.False(t, z.Armed)
		assert.Equal(t, []event.Kind{event.Buzzer}, ctx.events)
	})

	t.Run("missing target disarms silently", func(t *testing.T) {
		ctx := newFakeContext()
		z := NewTriggerZone("z", geom.NewBox(0, 0, 10, 10), "nobody")
		z.OnContact(ctx, geom.SideNone)
		assert.False(t, z.Armed)
		assert.Empty(t, ctx.events)
	})
}

func TestGlitchTrigger_OneShot(t *testing.T) {
	ctx := newFakeContext()
	g := NewGlitchTrigger("g", geom.NewBox(0, 0, 10, 10))
	g.OnContact(ctx, geom.SideNone)
	g.OnContact(ctx, geom.SideNone)
	assert.Equal(t, []event.Kind{event.Glitch}, ctx.events)
}

func TestGravitySwitch(t *testing.T) {
	ctx := newFakeContext()
	g := NewGravitySwitch("gs", geom.NewBox(0, 0, 30, 30), 3, 5)
	y := ctx.actor.Y

	g.OnContact(ctx, geom.SideNone)
	assert.Equal(t, -1.0, ctx.gravity)
	assert.Equal(t, y+5, ctx.actor.Y, "nudged away from the new floor (the ceiling)")
	assert.False(t, g.Ready())

	g.OnContact(ctx, geom.SideNone)
	assert.Equal(t, -1.0, ctx.gravity, "cooling down")

	for i := 0; i < 3; i++ {
		g.OnTick(TickContext{})
	}
	assert.True(t, g.Ready())
	g.OnContact(ctx, geom.SideNone)
	assert.Equal(t, 1.0, ctx.gravity)
	assert.Equal(t, y, ctx.actor.Y)
	assert.Equal(t, []event.Kind{event.GravityFlip, event.GravityFlip}, ctx.events)
}

func TestAccelZone_OnlyHorizontal(t *testing.T) {
	ctx := newFakeContext()
	ctx.actor.VY = 2
	z := NewAccelZone("z", geom.NewBox(0, 0, 100, 100), -5, 0.1, false)
	z.OnContact(ctx, geom.SideNone)
	z.OnContact(ctx, geom.SideNone)
	assert.InDelta(t, -1.0, ctx.actor.VX, 1e-9)
	assert.Equal(t, 2.0, ctx.actor.VY)
}

func TestFakeSavePoint_DetonatesOnce(t *testing.T) {
	ctx := newFakeContext()
	ctx.actor.SetInvincible(100, 0)
	s := NewFakeSavePoint("save", geom.NewBox(1400, 360, 40, 40))

	s.OnContact(ctx, geom.SideNone)
	s.OnContact(ctx, geom.SideNone)

	assert.Equal(t, []DeathReason{ReasonExploded}, ctx.kills)
	assert.Equal(t, []event.Kind{event.Explosion}, ctx.events)
	assert.True(t, s.View().Destroyed)
}

func TestCheckpoint_SetsSpawnOnce(t *testing.T) {
	ctx := newFakeContext()
	c := NewCheckpoint("chk", geom.NewBox(1550, 360, 40, 40))

	c.OnContact(ctx, geom.SideNone)
	require.NotNil(t, ctx.spawn)
	assert.Equal(t, geom.Vec{X: 1550, Y: 360}, *ctx.spawn)

	ctx.spawn = nil
	c.OnContact(ctx, geom.SideNone)
	assert.Nil(t, ctx.spawn)
	assert.Equal(t, []event.Kind{event.Checkpoint}, ctx.events)
	assert.True(t, c.View().Active)
}

func TestGoal(t *testing.T) {
	t.Run("real goal requests a win", func(t *testing.T) {
		ctx := newFakeContext()
		NewGoal("g", geom.NewBox(0, 0, 30, 40), false).OnContact(ctx, geom.SideNone)
		assert.Equal(t, 1, ctx.wins)
		assert.Empty(t, ctx.kills)
	})

	t.Run("fake goal kills once", func(t *testing.T) {
		ctx := newFakeContext()
		g := NewGoal("g", geom.NewBox(0, 0, 30, 40), true)
		g.OnContact(ctx, geom.SideNone)
		ctx.actor.Dead = false // respawned with the entity still revealed
		g.OnContact(ctx, geom.SideNone)

		assert.Equal(t, []DeathReason{ReasonFakeGoal}, ctx.kills)
		assert.Zero(t, ctx.wins)
		assert.True(t, g.View().Revealed)
	})
}

func TestLaunchPad_Cooldown(t *testing.T) {
	ctx := newFakeContext()
	p := NewLaunchPad("pad", geom.NewBox(0, 0, 60, 10), geom.Vec{X: 12, Y: -18}, false, 3)

	p.OnContact(ctx, geom.SideBottom)
	assert.Equal(t, 12.0, ctx.actor.VX)
	assert.Equal(t, -18.0, ctx.actor.VY)

	ctx.actor.VX, ctx.actor.VY = 0, 0
	p.OnTick(TickContext{})
	p.OnContact(ctx, geom.SideBottom)
	assert.Zero(t, ctx.actor.VY, "suppressed during cooldown")

	p.OnTick(TickContext{})
	p.OnTick(TickContext{})
	assert.True(t, p.Ready())
	p.OnContact(ctx, geom.SideBottom)
	assert.Equal(t, -18.0, ctx.actor.VY)

	assert.Equal(t, []event.Kind{event.Jump, event.Jump}, ctx.events)
}

func TestLaunchPad_IgnoresSideContact(t *testing.T) {
	ctx := newFakeContext()
	p := NewLaunchPad("pad", geom.NewBox(0, 0, 60, 10), geom.Vec{X: 12, Y: -18}, true, 3)
	p.OnContact(ctx, geom.SideLeft)
	assert.True(t, p.Ready())
	assert.Equal(t, LandingOnly, p.Solidity(ctx.actor))
}

func TestPowerStar(t *testing.T) {
	ctx := newFakeContext()
	s := NewPowerStar("star", geom.NewBox(0, 0, 24, 24), 600, 120)
	s.OnContact(ctx, geom.SideNone)
	s.OnContact(ctx, geom.SideNone)

	assert.Equal(t, 600, ctx.actor.InvincibleTicks)
	assert.True(t, s.Consumed)
	assert.Equal(t, []event.Kind{event.PowerUp}, ctx.events)
}
