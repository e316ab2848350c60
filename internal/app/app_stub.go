//go:build !ebiten

package app

import (
	"fmt"

	"heightmap/internal/core"
	"heightmap/internal/render"
	"heightmap/internal/terrain"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct {
	camera core.Camera
}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*render.Renderer, *terrain.Store, Options) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Camera returns the placeholder camera.
func (g *Game) Camera() *core.Camera { return &g.camera }

// OnUpdate is a no-op placeholder.
func (g *Game) OnUpdate(UpdateFunc) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
