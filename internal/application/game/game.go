// Package game provides the main loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/platformer/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   int
}

// New creates a new Game with the given initial scene running at a fixed
// tick length of dt seconds (1/60 when dt is not positive).
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, dt float64) *Game {
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      dt,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.ticks++

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene.
func (g *Game) Current() scene.Scene {
	return g.current
}

// Ticks returns the number of successful updates.
func (g *Game) Ticks() int {
	return g.ticks
}

// Close calls OnExit on the active scene. Call once when the loop ends.
func (g *Game) Close() {
	g.current.OnExit()
}
