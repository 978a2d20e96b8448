//go:build !ebiten

package gui

import (
	"fmt"
	"time"

	"golife/internal/engine"
	"golife/internal/life"
)

// EngineFactory builds a freshly seeded engine for the given seed.
type EngineFactory func(seed int64) (*engine.Engine, error)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(EngineFactory, time.Duration, int, int64) (*Game, error) {
	panic("gui.New requires building with the 'ebiten' tag")
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) error { return nil }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("gui.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// Generation always returns zero in the headless build.
func (g *Game) Generation() life.Generation { return 0 }
