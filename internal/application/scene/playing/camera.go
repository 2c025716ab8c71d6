package playing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/unfair/internal/domain/geom"
)

const (
	// The actor is kept a quarter of the view in from the left edge
	followLead = 0.25
	followLerp = 0.1
)

// Camera scrolls horizontally after the actor and carries a decaying shake
type Camera struct {
	x     float64
	viewW float64

	shake    *gween.Tween
	shakeAmp float32
	flip     bool
}

// NewCamera creates a camera for a view viewW pixels wide
func NewCamera(viewW float64) *Camera {
	return &Camera{viewW: viewW}
}

// target is where the camera wants to be for an actor at actorX
func (c *Camera) target(actorX float64) float64 {
	t := actorX - c.viewW*followLead
	if t < 0 {
		t = 0
	}
	return t
}

// Follow eases the camera toward the actor
func (c *Camera) Follow(actorX float64) {
	c.x += (c.target(actorX) - c.x) * followLerp
}

// Snap jumps straight to the actor, used when a life starts
func (c *Camera) Snap(actorX float64) {
	c.x = c.target(actorX)
}

// X returns the scroll position without shake
func (c *Camera) X() float64 { return c.x }

// Shake starts a shake of amplitude amp pixels that dies out over seconds.
// A weaker shake never cuts a stronger one short.
func (c *Camera) Shake(amp, seconds float32) {
	if c.shake != nil && c.shakeAmp >= amp {
		return
	}
	c.shake = gween.New(amp, 0, seconds, ease.OutQuad)
	c.shakeAmp = amp
}

// Update advances the shake by dt seconds
func (c *Camera) Update(dt float32) {
	if c.shake == nil {
		return
	}
	amp, done := c.shake.Update(dt)
	c.shakeAmp = amp
	c.flip = !c.flip
	if done {
		c.shake = nil
		c.shakeAmp = 0
	}
}

// Shaking reports whether a shake is still running
func (c *Camera) Shaking() bool { return c.shake != nil }

// Offset is the translation applied to world coordinates when drawing
func (c *Camera) Offset() geom.Vec {
	jitter := float64(c.shakeAmp) / 2
	if c.flip {
		jitter = -jitter
	}
	return geom.Vec{X: -c.x + jitter, Y: jitter / 2}
}
