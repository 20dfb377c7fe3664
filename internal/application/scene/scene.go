// Package scene defines the Scene interface for screens.
//
// Each screen (live play, replay viewer) implements the Scene interface to
// handle its own update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents one screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one fixed tick of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the loop.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen. It must not change simulation state.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, and once more when the loop ends.
	// Use this for saving state.
	OnExit()
}
