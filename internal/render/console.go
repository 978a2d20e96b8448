// Package render draws simulation frames as plain framed text, suitable for
// dumb terminals and piped output.
package render

import (
	"fmt"
	"io"
	"strings"

	"golife/internal/life"
)

const (
	aliveMark = "██"
	deadMark  = "  "
)

// Console renders one frame per generation to an io.Writer. Every grid cell
// occupies two columns so the board keeps a roughly square aspect ratio.
type Console struct {
	out     io.Writer
	cleared bool
}

// NewConsole returns a renderer writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Render draws the full frame: box border, title with the generation
// counter, the grid body, and a footer hint.
func (c *Console) Render(grid *life.Grid, gen life.Generation) {
	size := grid.Size()
	width := size.Width * 2

	var b strings.Builder
	if !c.cleared {
		b.WriteString("\x1b[2J")
		c.cleared = true
	}
	b.WriteString("\x1b[H")

	b.WriteString("╔" + strings.Repeat("═", width) + "╗\n")
	title := fmt.Sprintf(" Conway's Game of Life - generation %s", gen)
	if len(title) > width {
		title = title[:width]
	}
	fmt.Fprintf(&b, "║%-*s║\n", width, title)
	b.WriteString("╠" + strings.Repeat("═", width) + "╣\n")

	for row := 0; row < size.Height; row++ {
		b.WriteString("║")
		for col := 0; col < size.Width; col++ {
			if grid.Cell(life.Position{Row: row, Col: col}).IsAlive() {
				b.WriteString(aliveMark)
			} else {
				b.WriteString(deadMark)
			}
		}
		b.WriteString("║\n")
	}

	b.WriteString("╚" + strings.Repeat("═", width) + "╝\n")
	fmt.Fprintf(&b, "population %d · press Ctrl+C to stop\n", grid.Population())

	fmt.Fprint(c.out, b.String())
}

// Goodbye prints the final summary after the run loop exits.
func (c *Console) Goodbye(gen life.Generation) {
	fmt.Fprintf(c.out, "\nStopped at generation %s\n", gen)
}
