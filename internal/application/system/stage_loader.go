package system

import (
	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/domain/geom"
	"github.com/younwookim/unfair/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage. Descriptors are copied in
// file order; validation happens when the stage is instantiated.
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	blueprints := make([]entity.Blueprint, 0, len(cfg.Entities))
	for _, e := range cfg.Entities {
		blueprints = append(blueprints, entity.Blueprint{
			Type:       e.Type,
			ID:         e.ID,
			Box:        geom.NewBox(e.X, e.Y, e.W, e.H),
			Decorative: e.Decorative,
			Text:       e.Text,
			Lie:        e.Lie,
			Target:     e.Target,
			Axis:       e.Axis,
			Range:      e.Range,
			Speed:      e.Speed,
			Threshold:  e.Threshold,
			Force:      geom.Vec{X: e.ForceX, Y: e.ForceY},
			LooksSafe:  e.LooksSafe,
			Visible:    e.Visible,
			Fake:       e.Fake,
			Angle:      e.Angle,
			MaxSpeed:   e.MaxSpeed,
			TurnRate:   e.TurnRate,
			Period:     e.Period,
			WarnAt:     e.WarnAt,
			ActiveAt:   e.ActiveAt,
			Offset:     e.Offset,
		})
	}

	return &entity.Stage{
		ID:         cfg.ID,
		Name:       cfg.Name,
		Spawn:      geom.Vec{X: cfg.Spawn.X, Y: cfg.Spawn.Y},
		Bounds:     geom.NewBox(cfg.Bounds.X, cfg.Bounds.Y, cfg.Bounds.W, cfg.Bounds.H),
		Blueprints: blueprints,
	}
}

// LoadStages converts a whole campaign
func LoadStages(cfgs []*config.StageConfig) []*entity.Stage {
	stages := make([]*entity.Stage, 0, len(cfgs))
	for _, cfg := range cfgs {
		stages = append(stages, LoadStage(cfg))
	}
	return stages
}

// TuningFrom derives the gimmick constants from physics.json. FallLimit is
// the default world bottom; the world narrows it to each stage's bounds.
func TuningFrom(cfg *config.PhysicsConfig) entity.Tuning {
	g := cfg.Gimmicks
	return entity.Tuning{
		FallAccel:         cfg.Physics.Gravity * g.FallingGravityMultiplier,
		FallLimit:         cfg.Physics.WorldHeight + cfg.Physics.FallMargin,
		LaunchCooldown:    g.LaunchPadCooldown,
		GravityCooldown:   g.GravitySwitchCooldown,
		GravityNudge:      g.GravitySwitchNudge,
		AccelRate:         g.AccelZoneRate,
		InvincibleTicks:   cfg.Invincibility.Duration,
		InvincibleWarning: cfg.Invincibility.Warning,
		MissileSpeed:      g.Missile.Speed,
		MissileMaxSpeed:   g.Missile.MaxSpeed,
		MissileAccel:      g.Missile.Accel,
		MissileTurnRate:   g.Missile.TurnRate,
		LaserPeriod:       g.Laser.Period,
		LaserWarnAt:       g.Laser.WarnAt,
		LaserActiveAt:     g.Laser.ActiveAt,
		TrustThreshold:    g.TrustThreshold,
	}
}
