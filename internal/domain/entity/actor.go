package entity

import "github.com/younwookim/unfair/internal/domain/geom"

// Actor represents the controllable character.
// Position is the top-left corner in world pixels.
type Actor struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	Grounded    bool
	WallSliding bool
	WallDir     int // -1 wall on the left, +1 wall on the right, 0 none
	Dead        bool

	// JumpLock is set when a jump succeeds and cleared once jump is released
	JumpLock bool

	InvincibleTicks int
	warnTicks       int
}

// NewActor creates an actor of the given size at spawn
func NewActor(spawn geom.Vec, w, h float64) *Actor {
	a := &Actor{W: w, H: h}
	a.Reset(spawn)
	return a
}

// Reset places the actor at spawn with every flag cleared
func (a *Actor) Reset(spawn geom.Vec) {
	*a = Actor{X: spawn.X, Y: spawn.Y, W: a.W, H: a.H, warnTicks: a.warnTicks}
}

// Box returns the collision box
func (a *Actor) Box() geom.Box {
	return geom.NewBox(a.X, a.Y, a.W, a.H)
}

// Pos returns the top-left corner
func (a *Actor) Pos() geom.Vec {
	return geom.Vec{X: a.X, Y: a.Y}
}

// SetPos moves the actor without touching velocity
func (a *Actor) SetPos(p geom.Vec) {
	a.X, a.Y = p.X, p.Y
}

// Center returns the centre of the collision box
func (a *Actor) Center() geom.Vec {
	return a.Box().Center()
}

// Invincible reports whether a power-up is active
func (a *Actor) Invincible() bool {
	return a.InvincibleTicks > 0
}

// InvincibilityWarning reports whether the power-up is about to expire
func (a *Actor) InvincibilityWarning() bool {
	return a.InvincibleTicks > 0 && a.InvincibleTicks <= a.warnTicks
}

// SetInvincible starts (or restarts) invincibility for ticks, warning during
// the last warn ticks
func (a *Actor) SetInvincible(ticks, warn int) {
	a.InvincibleTicks = ticks
	a.warnTicks = warn
}

// AgeInvincibility counts the power-up down by one tick
func (a *Actor) AgeInvincibility() {
	if a.InvincibleTicks > 0 {
		a.InvincibleTicks--
	}
}

// ClearContacts resets the per-tick contact flags before resolution
func (a *Actor) ClearContacts() {
	a.Grounded = false
	a.WallSliding = false
	a.WallDir = 0
}
