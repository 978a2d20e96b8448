// Package tui renders the simulation full-screen in the terminal and turns
// quit keystrokes into context cancellation.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"golife/internal/life"
)

// App owns the tcell screen for the duration of a run. Each grid cell is
// drawn two columns wide to keep the board roughly square.
type App struct {
	screen tcell.Screen

	styleAlive  tcell.Style
	styleDead   tcell.Style
	styleStatus tcell.Style
}

// New initializes the terminal screen.
func New() (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return newWithScreen(screen), nil
}

func newWithScreen(screen tcell.Screen) *App {
	return &App{
		screen:      screen,
		styleAlive:  tcell.StyleDefault.Background(tcell.ColorGreen),
		styleDead:   tcell.StyleDefault,
		styleStatus: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
}

// Watch starts the event loop and returns a context that is cancelled when
// the user quits with q, Escape, or Ctrl+C. The loop ends when the screen is
// finalized or the returned context's parent is cancelled.
func (a *App) Watch(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		defer cancel()
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		}
	}()
	return ctx
}

// Render draws one complete generation plus a status line.
func (a *App) Render(grid *life.Grid, gen life.Generation) {
	a.screen.Clear()
	size := grid.Size()

	for row := 0; row < size.Height; row++ {
		for col := 0; col < size.Width; col++ {
			style := a.styleDead
			if grid.Cell(life.Position{Row: row, Col: col}).IsAlive() {
				style = a.styleAlive
			}
			a.screen.SetContent(col*2, row, ' ', nil, style)
			a.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}

	status := fmt.Sprintf("generation %s · population %d · q to quit", gen, grid.Population())
	x := 0
	for _, r := range status {
		a.screen.SetContent(x, size.Height, r, nil, a.styleStatus)
		x++
	}

	a.screen.Show()
}

// Close releases the terminal. Safe to call after the event loop has exited.
func (a *App) Close() {
	a.screen.Fini()
}
