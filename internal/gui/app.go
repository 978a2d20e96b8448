//go:build ebiten

package gui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golife/internal/engine"
	"golife/internal/life"
)

// EngineFactory builds a freshly seeded engine for the given seed, so the
// GUI can reseed without knowing how grids are populated.
type EngineFactory func(seed int64) (*engine.Engine, error)

// Game adapts the stepping engine to the ebiten.Game interface. Pausing and
// single-stepping live here; the engine itself has no such states.
type Game struct {
	newEngine EngineFactory
	eng       *engine.Engine
	painter   *painter
	interval  *interval

	onColor  color.Color
	offColor color.Color

	scale    int
	seed     int64
	paused   bool
	tickOnce bool
}

// New constructs a Game stepping at the given inter-generation delay.
func New(factory EngineFactory, delay time.Duration, scale int, seed int64) (*Game, error) {
	eng, err := factory(seed)
	if err != nil {
		return nil, err
	}
	size := eng.Grid().Size()
	return &Game{
		newEngine: factory,
		eng:       eng,
		painter:   newPainter(size.Width, size.Height),
		interval:  newInterval(delay),
		onColor:   color.White,
		offColor:  color.Black,
		scale:     scale,
		seed:      seed,
	}, nil
}

// Reset rebuilds the engine with the provided seed.
func (g *Game) Reset(seed int64) error {
	eng, err := g.newEngine(seed)
	if err != nil {
		return err
	}
	g.seed = seed
	g.eng = eng
	g.tickOnce = false
	return nil
}

// Update handles per-frame input and advances the simulation on schedule.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if g.tickOnce {
		g.tickOnce = false
		return g.eng.Step()
	}
	if !g.paused && g.interval.Ready() {
		return g.eng.Step()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.eng.Grid(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.eng.Grid().Size()
	return s.Width * g.scale, s.Height * g.scale
}

// Generation exposes the current counter for window titles and final reports.
func (g *Game) Generation() life.Generation { return g.eng.Generation() }
