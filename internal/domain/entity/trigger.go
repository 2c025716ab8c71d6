package entity

import (
	"github.com/younwookim/unfair/internal/domain/event"
	"github.com/younwookim/unfair/internal/domain/geom"
)

// TriggerZone is an invisible one-shot that sets off another entity
type TriggerZone struct {
	base
	Target string
	Armed  bool
}

// NewTriggerZone creates an armed trigger for the entity with id target
func NewTriggerZone(id string, box geom.Box, target string) *TriggerZone {
	return &TriggerZone{base: newBase(id, KindTriggerZone, box), Target: target, Armed: true}
}

func (t *TriggerZone) Solidity(*Actor) Solidity { return NonSolid }

// OnContact disarms the zone even when the target does not exist; the
// buzzer only sounds when something was actually set off.
func (t *TriggerZone) OnContact(ctx Context, _ geom.Side) {
	if !t.Armed {
		return
	}
	t.Armed = false
	if ctx.Activate(t.Target) {
		ctx.Emit(event.Buzzer, t.box.Center())
	}
}

func (t *TriggerZone) View() View {
	v := t.view()
	v.Visible = false
	v.Active = t.Armed
	return v
}

// GlitchTrigger is a one-shot zone whose only effect is a screen glitch
type GlitchTrigger struct {
	base
	Armed bool
}

// NewGlitchTrigger creates an armed glitch zone
func NewGlitchTrigger(id string, box geom.Box) *GlitchTrigger {
	return &GlitchTrigger{base: newBase(id, KindGlitchTrigger, box), Armed: true}
}

func (g *GlitchTrigger) Solidity(*Actor) Solidity { return NonSolid }

func (g *GlitchTrigger) OnContact(ctx Context, _ geom.Side) {
	if !g.Armed {
		return
	}
	g.Armed = false
	ctx.Emit(event.Glitch, ctx.Actor().Center())
}

func (g *GlitchTrigger) View() View {
	v := g.view()
	v.Visible = false
	v.Active = g.Armed
	return v
}

// GravitySwitch flips gravity on overlap, then waits out a cooldown
type GravitySwitch struct {
	base
	Cooldown int
	Nudge    float64
	remain   int
}

// NewGravitySwitch creates a switch. nudge is how far the actor is pushed
// away from the new floor when it fires.
func NewGravitySwitch(id string, box geom.Box, cooldown int, nudge float64) *GravitySwitch {
	return &GravitySwitch{base: newBase(id, KindGravitySwitch, box), Cooldown: cooldown, Nudge: nudge}
}

// Ready reports whether the switch can fire
func (g *GravitySwitch) Ready() bool { return g.remain == 0 }

func (g *GravitySwitch) Solidity(*Actor) Solidity { return NonSolid }

func (g *GravitySwitch) OnContact(ctx Context, _ geom.Side) {
	if g.remain > 0 {
		return
	}
	ctx.FlipGravity()
	g.remain = g.Cooldown
	a := ctx.Actor()
	a.Y -= g.Nudge * ctx.GravityDir()
	ctx.Emit(event.GravityFlip, a.Center())
}

func (g *GravitySwitch) OnTick(TickContext) {
	if g.remain > 0 {
		g.remain--
	}
}

func (g *GravitySwitch) View() View {
	v := g.view()
	v.Active = g.remain == 0
	return v
}

// AccelZone pushes the actor horizontally every tick it is inside
type AccelZone struct {
	base
	Force   float64
	Rate    float64
	Visible bool
}

// NewAccelZone creates a zone adding force*rate to vx per tick
func NewAccelZone(id string, box geom.Box, force, rate float64, visible bool) *AccelZone {
	return &AccelZone{base: newBase(id, KindAccelZone, box), Force: force, Rate: rate, Visible: visible}
}

func (z *AccelZone) Solidity(*Actor) Solidity { return NonSolid }

func (z *AccelZone) OnContact(ctx Context, _ geom.Side) {
	ctx.Actor().VX += z.Force * z.Rate
}

func (z *AccelZone) View() View {
	v := z.view()
	v.Visible = z.Visible
	if z.Force < 0 {
		v.Angle = -1
	} else {
		v.Angle = 1
	}
	return v
}
