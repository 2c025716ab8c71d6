// Package game adapts a scene to ebiten.Game: it owns the fixed timestep,
// pauses while the window is in the background and turns scene.ErrQuit into
// a clean shutdown.
package game

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/unfair/internal/application/scene"
)

var colorPaused = color.RGBA{0, 0, 0, 140}

// Game implements ebiten.Game
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	focused func() bool
	paused  bool
}

// New wraps the initial scene and enters it
func New(initial scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
		focused: ebiten.IsFocused,
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene by one fixed step. Nothing advances while
// the window is unfocused, so a death timer never runs out behind the
// player's back.
func (g *Game) Update() error {
	g.paused = !g.focused()
	if g.paused {
		return nil
	}

	next, err := g.current.Update(g.dt)
	switch {
	case errors.Is(err, scene.ErrQuit):
		g.current.OnExit()
		return ebiten.Termination
	case err != nil:
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene, dimmed while paused
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
	if g.paused {
		ebitenutil.DrawRect(screen, 0, 0, float64(g.screenW), float64(g.screenH), colorPaused)
		ebitenutil.DebugPrintAt(screen, "PAUSED", g.screenW/2-20, g.screenH/2)
	}
}

// Layout returns the logical screen size; the window scales it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT overrides the fixed timestep
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Paused reports whether the last Update was skipped for lack of focus
func (g *Game) Paused() bool { return g.paused }
