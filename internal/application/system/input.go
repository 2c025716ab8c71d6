package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/unfair/internal/domain/geom"
	"github.com/younwookim/unfair/internal/infrastructure/config"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ, ebiten.KeyArrowUp, ebiten.KeyW}
)

// InputSystem merges keyboard and touch input into an Intent
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// Intent reads the current keyboard and touch state
func (s *InputSystem) Intent() Intent {
	kb := Intent{
		Left:     anyPressed(leftKeys),
		Right:    anyPressed(rightKeys),
		JumpHeld: anyPressed(jumpKeys),
	}

	var touches []geom.Vec
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		touches = append(touches, geom.Vec{X: float64(x), Y: float64(y)})
	}
	return kb.Merge(TouchIntent(touches, float64(s.config.Display.ScreenWidth), s.config.Input))
}

// Confirm reports a just-pressed confirm key, click or tap
func (s *InputSystem) Confirm() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Back reports a just-pressed escape key
func (s *InputSystem) Back() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Pointer returns the position of a fresh click or tap, if any
func (s *InputSystem) Pointer() (geom.Vec, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return geom.Vec{X: float64(x), Y: float64(y)}, true
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		return geom.Vec{X: float64(x), Y: float64(y)}, true
	}
	return geom.Vec{}, false
}

// TouchIntent maps touch points onto the on-screen zones. The left MoveZone
// fraction of the screen moves (left of LeftSplit goes left, the rest goes
// right), everything to the right of it jumps.
func TouchIntent(touches []geom.Vec, screenW float64, zones config.InputConfig) Intent {
	var in Intent
	moveEdge := screenW * zones.MoveZone
	split := screenW * zones.LeftSplit
	for _, p := range touches {
		switch {
		case p.X >= moveEdge:
			in.JumpHeld = true
		case p.X < split:
			in.Left = true
		default:
			in.Right = true
		}
	}
	return in
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
