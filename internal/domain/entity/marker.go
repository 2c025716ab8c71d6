package entity

import (
	"github.com/younwookim/unfair/internal/domain/event"
	"github.com/younwookim/unfair/internal/domain/geom"
)

// FakeSavePoint looks like a checkpoint and blows up on first touch
type FakeSavePoint struct {
	base
	Triggered bool
}

// NewFakeSavePoint creates a fake save point
func NewFakeSavePoint(id string, box geom.Box) *FakeSavePoint {
	return &FakeSavePoint{base: newBase(id, KindFakeSavePoint, box)}
}

func (s *FakeSavePoint) Solidity(*Actor) Solidity { return NonSolid }

func (s *FakeSavePoint) OnContact(ctx Context, _ geom.Side) {
	if s.Triggered {
		return
	}
	s.Triggered = true
	ctx.Emit(event.Explosion, s.box.Center())
	ctx.Kill(ReasonExploded, true)
}

func (s *FakeSavePoint) View() View {
	v := s.view()
	v.Visible = !s.Triggered
	v.Destroyed = s.Triggered
	v.LooksSafe = true
	return v
}

// Checkpoint moves the respawn point to itself the first time it is touched
type Checkpoint struct {
	base
	Active bool
}

// NewCheckpoint creates an inactive checkpoint
func NewCheckpoint(id string, box geom.Box) *Checkpoint {
	return &Checkpoint{base: newBase(id, KindCheckpoint, box)}
}

func (c *Checkpoint) Solidity(*Actor) Solidity { return NonSolid }

func (c *Checkpoint) OnContact(ctx Context, _ geom.Side) {
	if c.Active {
		return
	}
	c.Active = true
	ctx.SetSpawn(c.box.Pos())
	ctx.Emit(event.Checkpoint, c.box.Center())
}

func (c *Checkpoint) View() View {
	v := c.view()
	v.Active = c.Active
	return v
}

// Goal ends the stage. A fake goal kills once and then stays revealed.
type Goal struct {
	base
	Fake     bool
	Revealed bool
}

// NewGoal creates a real or fake goal flag
func NewGoal(id string, box geom.Box, fake bool) *Goal {
	return &Goal{base: newBase(id, KindGoal, box), Fake: fake}
}

func (g *Goal) Solidity(*Actor) Solidity { return NonSolid }

func (g *Goal) OnContact(ctx Context, _ geom.Side) {
	if !g.Fake {
		ctx.RequestWin()
		return
	}
	if g.Revealed {
		return
	}
	g.Revealed = true
	ctx.Emit(event.Buzzer, g.box.Center())
	ctx.Kill(ReasonFakeGoal, true)
}

func (g *Goal) View() View {
	v := g.view()
	v.Fake = g.Fake
	v.Revealed = g.Revealed
	return v
}

// LaunchPad is solid on top only. Landing on it sets the actor's velocity
// to Force and starts a cooldown.
type LaunchPad struct {
	base
	Force     geom.Vec
	LooksSafe bool
	Cooldown  int
	remain    int
}

// NewLaunchPad creates a pad
func NewLaunchPad(id string, box geom.Box, force geom.Vec, looksSafe bool, cooldown int) *LaunchPad {
	return &LaunchPad{
		base:      newBase(id, KindLaunchPad, box),
		Force:     force,
		LooksSafe: looksSafe,
		Cooldown:  cooldown,
	}
}

// Ready reports whether the pad can fire
func (p *LaunchPad) Ready() bool { return p.remain == 0 }

func (p *LaunchPad) Solidity(*Actor) Solidity { return LandingOnly }

func (p *LaunchPad) OnContact(ctx Context, side geom.Side) {
	if p.remain > 0 || side != geom.LandingSide(ctx.GravityDir()) {
		return
	}
	a := ctx.Actor()
	a.VX = p.Force.X
	a.VY = p.Force.Y
	a.Grounded = false
	p.remain = p.Cooldown
	ctx.Emit(event.Jump, a.Center())
}

func (p *LaunchPad) OnTick(TickContext) {
	if p.remain > 0 {
		p.remain--
	}
}

func (p *LaunchPad) View() View {
	v := p.view()
	v.LooksSafe = p.LooksSafe
	v.Active = p.remain == 0
	return v
}

// PowerStar grants invincibility once
type PowerStar struct {
	base
	Duration int
	Warning  int
	Consumed bool
}

// NewPowerStar creates a star granting duration ticks of invincibility
func NewPowerStar(id string, box geom.Box, duration, warning int) *PowerStar {
	return &PowerStar{base: newBase(id, KindPowerStar, box), Duration: duration, Warning: warning}
}

func (s *PowerStar) Solidity(*Actor) Solidity { return NonSolid }

func (s *PowerStar) OnContact(ctx Context, _ geom.Side) {
	if s.Consumed {
		return
	}
	s.Consumed = true
	ctx.Actor().SetInvincible(s.Duration, s.Warning)
	ctx.Emit(event.PowerUp, s.box.Center())
}

func (s *PowerStar) View() View {
	v := s.view()
	v.Visible = !s.Consumed
	v.Destroyed = s.Consumed
	return v
}

// SignPost is scenery with text on it. The text is usually a lie.
type SignPost struct {
	base
	Text string
	Lie  bool
}

// NewSignPost creates a sign
func NewSignPost(id string, box geom.Box, text string, lie bool) *SignPost {
	return &SignPost{base: newBase(id, KindSignPost, box), Text: text, Lie: lie}
}

func (s *SignPost) Solidity(*Actor) Solidity { return NonSolid }

func (s *SignPost) OnContact(Context, geom.Side) {}

func (s *SignPost) View() View {
	v := s.view()
	v.Text = s.Text
	v.Fake = s.Lie
	return v
}
