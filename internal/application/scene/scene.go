// Package scene holds the contract between the game loop and its screens.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit ends the game cleanly when returned from Update. The loop still
// calls OnExit on the scene that returned it.
var ErrQuit = errors.New("quit requested")

// Scene is one screen of the game. Update returns the scene to switch to, or
// nil to stay. Simulation time only advances through Update, so a scene that
// is not updated is paused.
type Scene interface {
	Update(dt float64) (next Scene, err error)
	Draw(screen *ebiten.Image)

	// OnEnter runs every time the scene becomes current
	OnEnter()
	// OnExit runs when the scene is replaced or the game quits; pending
	// recordings are flushed here
	OnExit()
}
