package playing

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/unfair/internal/domain/event"
)

// Shake strengths per event, in pixels and seconds
const (
	shakeExplosion = 30
	shakeDeath     = 12
	shakeGravity   = 6
	shakeTime      = 0.6
)

var (
	flashDeath   = color.RGBA{136, 0, 0, 255}
	flashPowerUp = color.RGBA{255, 215, 0, 255}
	flashWin     = color.RGBA{255, 255, 255, 255}
)

// Effects turns simulation events into screen feedback. It never touches the
// simulation; everything here is presentation state.
type Effects struct {
	camera *Camera

	flash      *gween.Sequence
	flashColor color.RGBA
	flashAlpha float32

	glitch       *gween.Sequence
	glitchOffset float32

	counts map[event.Kind]int
}

// NewEffects creates effects that shake the given camera
func NewEffects(camera *Camera) *Effects {
	return &Effects{
		camera: camera,
		counts: make(map[event.Kind]int),
	}
}

// Handle reacts to a batch of drained events
func (fx *Effects) Handle(events []event.Event) {
	for _, e := range events {
		fx.counts[e.Kind]++
		switch e.Kind {
		case event.Explosion:
			fx.camera.Shake(shakeExplosion, shakeTime)
			fx.startFlash(flashWin, 0.6)
		case event.Death:
			fx.camera.Shake(shakeDeath, shakeTime)
			fx.startFlash(flashDeath, 0.5)
		case event.GravityFlip:
			fx.camera.Shake(shakeGravity, shakeTime/2)
		case event.PowerUp:
			fx.startFlash(flashPowerUp, 0.4)
		case event.Win:
			fx.startFlash(flashWin, 0.3)
		case event.Glitch, event.Buzzer:
			fx.startGlitch()
		}
	}
}

func (fx *Effects) startFlash(c color.RGBA, peak float32) {
	fx.flashColor = c
	fx.flash = gween.NewSequence()
	fx.flash.Add(
		gween.New(0, peak, 0.05, ease.Linear),
		gween.New(peak, 0, 0.35, ease.OutQuad),
	)
}

func (fx *Effects) startGlitch() {
	fx.glitch = gween.NewSequence()
	fx.glitch.Add(
		gween.New(0, 14, 0.05, ease.Linear),
		gween.New(14, -10, 0.08, ease.InOutQuad),
		gween.New(-10, 0, 0.12, ease.OutQuad),
	)
}

// Update advances every running effect by dt seconds
func (fx *Effects) Update(dt float32) {
	fx.camera.Update(dt)

	if fx.flash != nil {
		alpha, _, done := fx.flash.Update(dt)
		fx.flashAlpha = alpha
		if done {
			fx.flash = nil
			fx.flashAlpha = 0
		}
	}

	if fx.glitch != nil {
		off, _, done := fx.glitch.Update(dt)
		fx.glitchOffset = off
		if done {
			fx.glitch = nil
			fx.glitchOffset = 0
		}
	}
}

// Flash returns the overlay colour for this frame; ok is false when no
// flash is showing
func (fx *Effects) Flash() (c color.RGBA, ok bool) {
	if fx.flashAlpha <= 0 {
		return color.RGBA{}, false
	}
	a := fx.flashAlpha
	if a > 1 {
		a = 1
	}
	// premultiplied
	return color.RGBA{
		R: uint8(float32(fx.flashColor.R) * a),
		G: uint8(float32(fx.flashColor.G) * a),
		B: uint8(float32(fx.flashColor.B) * a),
		A: uint8(255 * a),
	}, true
}

// GlitchOffset is the horizontal tear applied to alternate bands of the screen
func (fx *Effects) GlitchOffset() float64 { return float64(fx.glitchOffset) }

// Active reports whether any effect is still running
func (fx *Effects) Active() bool {
	return fx.flash != nil || fx.glitch != nil || fx.camera.Shaking()
}

// Count returns how many events of kind k were handled so far
func (fx *Effects) Count(k event.Kind) int { return fx.counts[k] }
