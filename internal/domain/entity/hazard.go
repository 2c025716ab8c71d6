package entity

import (
	"math"

	"github.com/younwookim/unfair/internal/domain/event"
	"github.com/younwookim/unfair/internal/domain/geom"
)

// Enemy patrols horizontally. Touching it is fatal unless the actor is
// invincible, in which case the enemy is destroyed instead.
type Enemy struct {
	base
	patrol    patrol
	Destroyed bool
}

// NewEnemy creates an enemy patrolling span pixels to the right of its start
func NewEnemy(id string, box geom.Box, span, speed float64) *Enemy {
	return &Enemy{
		base:   newBase(id, KindEnemy, box),
		patrol: patrol{start: box.X, span: span, vel: speed},
	}
}

func (e *Enemy) Solidity(*Actor) Solidity { return NonSolid }

func (e *Enemy) OnContact(ctx Context, _ geom.Side) {
	if e.Destroyed {
		return
	}
	if ctx.Actor().Invincible() {
		e.Destroyed = true
		ctx.Emit(event.Explosion, e.box.Center())
		return
	}
	ctx.Kill(ReasonEaten, false)
}

func (e *Enemy) OnTick(TickContext) {
	if e.Destroyed {
		return
	}
	e.box.X = e.patrol.step(e.box.X)
}

// Facing returns +1 when moving right and -1 when moving left
func (e *Enemy) Facing() int {
	if e.patrol.vel < 0 {
		return -1
	}
	return 1
}

func (e *Enemy) View() View {
	v := e.view()
	v.Visible = !e.Destroyed
	v.Destroyed = e.Destroyed
	if e.Facing() < 0 {
		v.Angle = math.Pi
	}
	return v
}

// Trap is a static spike strip; any overlap kills, invincible or not
type Trap struct {
	base
}

// NewTrap creates a spike strip
func NewTrap(id string, box geom.Box) *Trap {
	return &Trap{base: newBase(id, KindTrap, box)}
}

func (t *Trap) Solidity(*Actor) Solidity { return NonSolid }

func (t *Trap) OnContact(ctx Context, _ geom.Side) {
	ctx.Kill(ReasonImpaled, true)
}

func (t *Trap) View() View { return t.view() }

// FakeSpike looks exactly like a Trap and does nothing but reveal itself
type FakeSpike struct {
	base
	Revealed bool
}

// NewFakeSpike creates a harmless spike strip
func NewFakeSpike(id string, box geom.Box) *FakeSpike {
	return &FakeSpike{base: newBase(id, KindFakeSpike, box)}
}

func (s *FakeSpike) Solidity(*Actor) Solidity { return NonSolid }

func (s *FakeSpike) OnContact(Context, geom.Side) {
	s.Revealed = true
}

func (s *FakeSpike) View() View {
	v := s.view()
	v.Revealed = s.Revealed
	v.LooksSafe = s.Revealed
	return v
}

// FallingHazard is an inert solid until a trigger sets it falling. While
// falling it accelerates downward on its own and crushes anything it lands
// on, regardless of invincibility.
type FallingHazard struct {
	base
	Text    string
	Falling bool
	Landed  bool

	accel     float64
	fallLimit float64
	vy        float64
}

// NewFallingHazard creates a dormant hazard. accel is the per-tick fall
// acceleration; once its top passes fallLimit it stops moving.
func NewFallingHazard(id string, box geom.Box, text string, accel, fallLimit float64) *FallingHazard {
	return &FallingHazard{
		base:      newBase(id, KindFallingHazard, box),
		Text:      text,
		accel:     accel,
		fallLimit: fallLimit,
	}
}

func (h *FallingHazard) Solidity(*Actor) Solidity { return Solid }

func (h *FallingHazard) OnContact(Context, geom.Side) {}

// Crushing reports whether a head-side contact is fatal
func (h *FallingHazard) Crushing() bool {
	return h.Falling && !h.Landed
}

// Activate starts the fall. It reports false if already falling.
func (h *FallingHazard) Activate() bool {
	if h.Falling {
		return false
	}
	h.Falling = true
	return true
}

func (h *FallingHazard) OnTick(TickContext) {
	if !h.Falling || h.Landed {
		return
	}
	h.vy += h.accel
	h.box.Y += h.vy
	if h.box.Y > h.fallLimit {
		h.Landed = true
	}
}

// Velocity returns the current fall speed
func (h *FallingHazard) Velocity() float64 { return h.vy }

func (h *FallingHazard) View() View {
	v := h.view()
	v.Falling = h.Falling
	v.Text = h.Text
	return v
}

// HomingMissile steers toward the actor's centre with a limited turn rate
type HomingMissile struct {
	base
	Angle     float64 // heading in radians, 0 = +X
	Speed     float64
	MaxSpeed  float64
	Accel     float64
	TurnRate  float64 // max heading change per tick in radians
	Destroyed bool
}

// NewHomingMissile creates a missile heading along angle
func NewHomingMissile(id string, box geom.Box, angle, speed, maxSpeed, accel, turnRate float64) *HomingMissile {
	return &HomingMissile{
		base:     newBase(id, KindHomingMissile, box),
		Angle:    angle,
		Speed:    math.Min(speed, maxSpeed),
		MaxSpeed: maxSpeed,
		Accel:    accel,
		TurnRate: turnRate,
	}
}

func (m *HomingMissile) Solidity(*Actor) Solidity { return NonSolid }

func (m *HomingMissile) OnContact(ctx Context, _ geom.Side) {
	if m.Destroyed {
		return
	}
	if ctx.Actor().Invincible() {
		m.Destroyed = true
		ctx.Emit(event.Explosion, m.box.Center())
		return
	}
	if ctx.Kill(ReasonMissile, false) {
		m.Destroyed = true
		ctx.Emit(event.Explosion, m.box.Center())
	}
}

func (m *HomingMissile) OnTick(tc TickContext) {
	if m.Destroyed {
		return
	}
	if tc.Actor != nil && !tc.Actor.Dead {
		target := tc.Actor.Center()
		c := m.box.Center()
		want := math.Atan2(target.Y-c.Y, target.X-c.X)
		diff := normalizeAngle(want - m.Angle)
		if diff > m.TurnRate {
			diff = m.TurnRate
		} else if diff < -m.TurnRate {
			diff = -m.TurnRate
		}
		m.Angle = normalizeAngle(m.Angle + diff)
	}
	m.Speed = math.Min(m.Speed+m.Accel, m.MaxSpeed)
	m.box.X += math.Cos(m.Angle) * m.Speed
	m.box.Y += math.Sin(m.Angle) * m.Speed
}

// Velocity returns the current velocity vector
func (m *HomingMissile) Velocity() geom.Vec {
	return geom.Vec{X: math.Cos(m.Angle) * m.Speed, Y: math.Sin(m.Angle) * m.Speed}
}

func (m *HomingMissile) View() View {
	v := m.view()
	v.Visible = !m.Destroyed
	v.Destroyed = m.Destroyed
	v.Angle = m.Angle
	return v
}

// normalizeAngle wraps a to (-pi, pi]
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// LaserTrap cycles safe → warning → active every Period ticks and is only
// lethal while active. Invincibility does not help.
type LaserTrap struct {
	base
	Period   int
	WarnAt   int // first tick of the warning phase within a cycle
	ActiveAt int // first tick of the active phase within a cycle
	clock    int
}

// NewLaserTrap creates a laser whose cycle starts offset ticks in
func NewLaserTrap(id string, box geom.Box, period, warnAt, activeAt, offset int) *LaserTrap {
	if period < 1 {
		period = 1
	}
	return &LaserTrap{
		base:     newBase(id, KindLaserTrap, box),
		Period:   period,
		WarnAt:   warnAt,
		ActiveAt: activeAt,
		clock:    ((offset % period) + period) % period,
	}
}

// Phase returns the current cycle phase
func (l *LaserTrap) Phase() LaserPhase {
	switch {
	case l.clock >= l.ActiveAt:
		return PhaseActive
	case l.clock >= l.WarnAt:
		return PhaseWarning
	default:
		return PhaseSafe
	}
}

func (l *LaserTrap) Solidity(*Actor) Solidity { return NonSolid }

func (l *LaserTrap) OnContact(ctx Context, _ geom.Side) {
	if l.Phase() == PhaseActive {
		ctx.Kill(ReasonLaser, true)
	}
}

func (l *LaserTrap) OnTick(TickContext) {
	l.clock = (l.clock + 1) % l.Period
}

func (l *LaserTrap) View() View {
	v := l.view()
	v.Phase = l.Phase()
	v.Active = v.Phase == PhaseActive
	return v
}
