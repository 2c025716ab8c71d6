package entity

import (
	"github.com/younwookim/unfair/internal/domain/event"
	"github.com/younwookim/unfair/internal/domain/geom"
)

// Kind tags each entity variant
type Kind int

const (
	KindStaticBlock Kind = iota
	KindInvisibleBlock
	KindMovingBlock
	KindEnemy
	KindTrap
	KindTriggerZone
	KindGlitchTrigger
	KindFallingHazard
	KindFakeSavePoint
	KindCheckpoint
	KindGoal
	KindLaunchPad
	KindFakeSpike
	KindAccelZone
	KindTrustBlock
	KindGravitySwitch
	KindHomingMissile
	KindBreakableBlock
	KindPowerStar
	KindLaserTrap
	KindSignPost
)

var kindNames = map[Kind]string{
	KindStaticBlock:    "block",
	KindInvisibleBlock: "invisible_block",
	KindMovingBlock:    "moving_block",
	KindEnemy:          "enemy",
	KindTrap:           "trap",
	KindTriggerZone:    "trigger",
	KindGlitchTrigger:  "glitch_trigger",
	KindFallingHazard:  "falling_hazard",
	KindFakeSavePoint:  "fake_save",
	KindCheckpoint:     "checkpoint",
	KindGoal:           "goal",
	KindLaunchPad:      "launchpad",
	KindFakeSpike:      "fake_spike",
	KindAccelZone:      "accel_zone",
	KindTrustBlock:     "trust_block",
	KindGravitySwitch:  "gravity_switch",
	KindHomingMissile:  "homing_missile",
	KindBreakableBlock: "breakable_block",
	KindPowerStar:      "power_star",
	KindLaserTrap:      "laser_trap",
	KindSignPost:       "signpost",
}

// String returns the stage-file tag of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a stage-file tag to a Kind.
// "ui_block" is accepted as an alias of falling_hazard.
func ParseKind(tag string) (Kind, bool) {
	if tag == "ui_block" {
		return KindFallingHazard, true
	}
	for k, name := range kindNames {
		if name == tag {
			return k, true
		}
	}
	return 0, false
}

// Solidity tells the resolver how to treat an entity
type Solidity int

const (
	// NonSolid entities are overlap-only: no positional correction
	NonSolid Solidity = iota
	// Solid entities block the actor on every face
	Solid
	// LandingOnly entities block only the actor's landing face
	LandingOnly
)

// DeathReason describes why the actor died
type DeathReason string

const (
	ReasonFell     DeathReason = "fell"
	ReasonCrushed  DeathReason = "crushed"
	ReasonImpaled  DeathReason = "impaled"
	ReasonEaten    DeathReason = "eaten"
	ReasonExploded DeathReason = "save point exploded"
	ReasonFakeGoal DeathReason = "fake goal"
	ReasonMissile  DeathReason = "missile"
	ReasonLaser    DeathReason = "laser"
)

// Context is the slice of the world an entity reaction may touch.
// The resolver lends it to OnContact; run-level transitions can only be
// requested through Kill and RequestWin.
type Context interface {
	Actor() *Actor
	GravityDir() float64

	// Kill is the single fatal funnel. It returns true only for the call
	// that actually ended the life. When bypass is false an invincible
	// actor survives and Kill returns false.
	Kill(reason DeathReason, bypass bool) bool
	RequestWin()

	SetSpawn(p geom.Vec)
	FlipGravity()

	// Activate sets off the entity with the given id. Unknown ids or targets
	// that cannot be activated are a silent no-op.
	Activate(id string) bool

	Emit(kind event.Kind, at geom.Vec)
}

// TickContext is what per-entity behaviour sees after collision resolution
type TickContext struct {
	Actor      *Actor
	GravityDir float64
	Tick       uint64
}

// Entity is the capability set shared by every interactive level object
type Entity interface {
	ID() string
	Kind() Kind
	Box() geom.Box

	// Solidity is evaluated per tick against the current actor state
	Solidity(a *Actor) Solidity

	// OnContact is called once per tick while the actor touches the entity.
	// side is the actor face in contact for solid entities and SideNone for
	// overlap-only interactions.
	OnContact(ctx Context, side geom.Side)

	// OnTick advances per-entity behaviour; it runs after collision
	// resolution in stage-definition order.
	OnTick(tc TickContext)

	View() View
}

// Carrier is implemented by platforms that move riders along with them
type Carrier interface {
	Carry() geom.Vec
}

// Crusher is implemented by entities whose head-side contact is fatal
type Crusher interface {
	Crushing() bool
}

// Activatable is implemented by trigger targets
type Activatable interface {
	Activate() bool
}

// LaserPhase is the cycle position of a laser trap
type LaserPhase int

const (
	PhaseSafe LaserPhase = iota
	PhaseWarning
	PhaseActive
)

// String returns the string representation of the phase
func (p LaserPhase) String() string {
	switch p {
	case PhaseSafe:
		return "safe"
	case PhaseWarning:
		return "warning"
	case PhaseActive:
		return "active"
	default:
		return "unknown"
	}
}

// View is the read-only render snapshot of an entity
type View struct {
	ID        string
	Kind      Kind
	Box       geom.Box
	Visible   bool
	Revealed  bool
	Destroyed bool
	Active    bool
	Falling   bool
	Fake      bool
	LooksSafe bool
	Phase     LaserPhase
	Angle     float64 // radians, missiles only
	Text      string
	Count     int // trust block landings so far
}
