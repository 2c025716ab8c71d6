package system

import (
	"math"

	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/domain/geom"
	"github.com/younwookim/unfair/internal/infrastructure/config"
)

// Integrator advances the actor's velocity and position for one tick.
// It knows nothing about entities; collision happens afterwards.
type Integrator struct {
	config *config.PhysicsConfig
}

// NewIntegrator creates an integrator for the given tuning
func NewIntegrator(cfg *config.PhysicsConfig) *Integrator {
	return &Integrator{config: cfg}
}

// Step applies input, jump, gravity and position integration.
// dir is the gravity direction (+1 or -1). It returns true when a jump
// (ground or wall) fired this tick.
func (s *Integrator) Step(a *entity.Actor, in Intent, dir float64) bool {
	s.applyHorizontal(a, in)
	jumped := s.applyJump(a, in, dir)

	a.VY += s.config.Physics.Gravity * dir

	a.X += a.VX
	a.Y += a.VY
	return jumped
}

// MaxSpeed returns the horizontal cap, raised while invincible
func (s *Integrator) MaxSpeed(a *entity.Actor) float64 {
	limit := s.config.Movement.MaxSpeed
	if a.Invincible() {
		limit *= s.config.Invincibility.SpeedMultiplier
	}
	return limit
}

func (s *Integrator) applyHorizontal(a *entity.Actor, in Intent) {
	move := in.Direction()
	if move == 0 {
		a.VX *= s.config.Physics.Friction
		return
	}

	// Accelerate toward the cap but never drag down an actor that a launch
	// pad already pushed past it.
	limit := s.MaxSpeed(a)
	next := a.VX + move*s.config.Movement.Acceleration
	if math.Abs(next) > limit && math.Abs(next) > math.Abs(a.VX) {
		if math.Abs(a.VX) >= limit && sameSign(a.VX, move) {
			return
		}
		next = move * limit
	}
	a.VX = next
}

func (s *Integrator) applyJump(a *entity.Actor, in Intent, dir float64) bool {
	if !in.JumpHeld {
		a.JumpLock = false
		return false
	}
	if a.JumpLock {
		return false
	}

	switch {
	case a.Grounded:
		a.VY = -s.config.Jump.Force * dir
		a.Grounded = false
	case a.WallSliding:
		a.VX = -float64(a.WallDir) * s.config.Jump.WallJumpX
		a.VY = -s.config.Jump.WallJumpY * dir
		a.WallSliding = false
		a.WallDir = 0
	default:
		return false
	}
	a.JumpLock = true
	return true
}

// OutOfBounds reports whether the actor has fallen past the stage in the
// direction of gravity
func (s *Integrator) OutOfBounds(a *entity.Actor, dir float64, bounds geom.Box) bool {
	margin := s.config.Physics.FallMargin
	if dir < 0 {
		return a.Y+a.H < bounds.Y-margin
	}
	return a.Y > bounds.Bottom()+margin
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
