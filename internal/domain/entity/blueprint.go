package entity

import (
	"fmt"
	"strconv"

	"github.com/younwookim/unfair/internal/domain/geom"
)

// Blueprint is a stage descriptor: a type tag plus constructor parameters.
// Fields a variant does not use are ignored.
type Blueprint struct {
	Type string
	ID   string
	Box  geom.Box

	Decorative bool     // block
	Text       string   // falling_hazard, signpost
	Lie        bool     // signpost
	Target     string   // trigger
	Axis       string   // moving_block: "x" (default) or "y"
	Range      float64  // moving_block, enemy
	Speed      float64  // moving_block, enemy, homing_missile
	Threshold  int      // trust_block
	Force      geom.Vec // launchpad velocity, accel_zone uses X only
	LooksSafe  bool     // launchpad
	Visible    bool     // accel_zone
	Fake       bool     // goal

	Angle    float64 // homing_missile
	MaxSpeed float64
	TurnRate float64

	Period   int // laser_trap
	WarnAt   int
	ActiveAt int
	Offset   int
}

// Tuning carries the gimmick constants shared by every stage
type Tuning struct {
	FallAccel         float64 // falling hazard acceleration per tick
	FallLimit         float64 // falling hazards stop once their top passes this
	LaunchCooldown    int
	GravityCooldown   int
	GravityNudge      float64
	AccelRate         float64
	InvincibleTicks   int
	InvincibleWarning int
	MissileSpeed      float64
	MissileMaxSpeed   float64
	MissileAccel      float64
	MissileTurnRate   float64
	LaserPeriod       int
	LaserWarnAt       int
	LaserActiveAt     int
	TrustThreshold    int
}

// DefaultTuning returns the stock gimmick constants
func DefaultTuning() Tuning {
	return Tuning{
		FallAccel:         0.9,
		FallLimit:         800,
		LaunchCooldown:    30,
		GravityCooldown:   60,
		GravityNudge:      5,
		AccelRate:         0.1,
		InvincibleTicks:   600,
		InvincibleWarning: 120,
		MissileSpeed:      2,
		MissileMaxSpeed:   5,
		MissileAccel:      0.05,
		MissileTurnRate:   0.05,
		LaserPeriod:       180,
		LaserWarnAt:       90,
		LaserActiveAt:     120,
		TrustThreshold:    3,
	}
}

// default footprints for variants whose descriptors usually omit a size
var defaultSize = map[Kind]geom.Vec{
	KindFakeSavePoint: {X: 40, Y: 40},
	KindCheckpoint:    {X: 40, Y: 40},
	KindGoal:          {X: 30, Y: 40},
	KindSignPost:      {X: 80, Y: 60},
	KindPowerStar:     {X: 24, Y: 24},
	KindGravitySwitch: {X: 30, Y: 30},
	KindHomingMissile: {X: 16, Y: 8},
}

// Build constructs the entity described by bp. index is the position of the
// descriptor in its stage and names the entity when bp.ID is empty.
func Build(index int, bp Blueprint, t Tuning) (Entity, error) {
	kind, ok := ParseKind(bp.Type)
	if !ok {
		return nil, fmt.Errorf("descriptor %d: %w: %q", index, ErrUnknownKind, bp.Type)
	}

	id := bp.ID
	if id == "" {
		id = kind.String() + "#" + strconv.Itoa(index)
	}

	box := bp.Box
	if size, ok := defaultSize[kind]; ok {
		if box.W == 0 {
			box.W = size.X
		}
		if box.H == 0 {
			box.H = size.Y
		}
	}
	if box.W <= 0 || box.H <= 0 {
		return nil, fmt.Errorf("descriptor %d (%s): box must have a positive size", index, id)
	}

	switch kind {
	case KindStaticBlock:
		return NewStaticBlock(id, box, bp.Decorative), nil
	case KindInvisibleBlock:
		return NewInvisibleBlock(id, box), nil
	case KindMovingBlock:
		axis := AxisX
		switch bp.Axis {
		case "", "x":
		case "y":
			axis = AxisY
		default:
			return nil, fmt.Errorf("descriptor %d (%s): unknown axis %q", index, id, bp.Axis)
		}
		return NewMovingBlock(id, box, axis, bp.Range, bp.Speed), nil
	case KindEnemy:
		return NewEnemy(id, box, bp.Range, bp.Speed), nil
	case KindTrap:
		return NewTrap(id, box), nil
	case KindTriggerZone:
		return NewTriggerZone(id, box, bp.Target), nil
	case KindGlitchTrigger:
		return NewGlitchTrigger(id, box), nil
	case KindFallingHazard:
		return NewFallingHazard(id, box, bp.Text, t.FallAccel, t.FallLimit), nil
	case KindFakeSavePoint:
		return NewFakeSavePoint(id, box), nil
	case KindCheckpoint:
		return NewCheckpoint(id, box), nil
	case KindGoal:
		return NewGoal(id, box, bp.Fake), nil
	case KindLaunchPad:
		return NewLaunchPad(id, box, bp.Force, bp.LooksSafe, t.LaunchCooldown), nil
	case KindFakeSpike:
		return NewFakeSpike(id, box), nil
	case KindAccelZone:
		return NewAccelZone(id, box, bp.Force.X, t.AccelRate, bp.Visible), nil
	case KindTrustBlock:
		threshold := bp.Threshold
		if threshold == 0 {
			threshold = t.TrustThreshold
		}
		return NewTrustBlock(id, box, threshold), nil
	case KindGravitySwitch:
		return NewGravitySwitch(id, box, t.GravityCooldown, t.GravityNudge), nil
	case KindHomingMissile:
		speed, maxSpeed, turn := bp.Speed, bp.MaxSpeed, bp.TurnRate
		if speed == 0 {
			speed = t.MissileSpeed
		}
		if maxSpeed == 0 {
			maxSpeed = t.MissileMaxSpeed
		}
		if turn == 0 {
			turn = t.MissileTurnRate
		}
		return NewHomingMissile(id, box, bp.Angle, speed, maxSpeed, t.MissileAccel, turn), nil
	case KindBreakableBlock:
		return NewBreakableBlock(id, box), nil
	case KindPowerStar:
		return NewPowerStar(id, box, t.InvincibleTicks, t.InvincibleWarning), nil
	case KindLaserTrap:
		period, warn, active := bp.Period, bp.WarnAt, bp.ActiveAt
		if period == 0 {
			period, warn, active = t.LaserPeriod, t.LaserWarnAt, t.LaserActiveAt
		}
		return NewLaserTrap(id, box, period, warn, active, bp.Offset), nil
	case KindSignPost:
		return NewSignPost(id, box, bp.Text, bp.Lie), nil
	}
	return nil, fmt.Errorf("descriptor %d: %w: %q", index, ErrUnknownKind, bp.Type)
}
