package seed

import (
	"fmt"
	"sort"

	"golife/internal/life"
)

// Pattern is a named arrangement of alive cells, stored as offsets relative
// to a top-left anchor.
type Pattern struct {
	Name  string
	Cells []life.Position
}

// Extent returns the height and width of the pattern's bounding box.
func (pat Pattern) Extent() (rows, cols int) {
	for _, c := range pat.Cells {
		if c.Row+1 > rows {
			rows = c.Row + 1
		}
		if c.Col+1 > cols {
			cols = c.Col + 1
		}
	}
	return rows, cols
}

// Place writes the pattern onto g anchored at origin. Cells that would land
// outside the grid surface as an error from SetCell.
func (pat Pattern) Place(g *life.Grid, origin life.Position) error {
	for _, c := range pat.Cells {
		p := life.Position{Row: origin.Row + c.Row, Col: origin.Col + c.Col}
		if err := g.SetCell(p, life.Alive); err != nil {
			return fmt.Errorf("placing %q: %w", pat.Name, err)
		}
	}
	return nil
}

// PlaceCentered writes the pattern into the middle of g.
func (pat Pattern) PlaceCentered(g *life.Grid) error {
	rows, cols := pat.Extent()
	size := g.Size()
	origin := life.Position{
		Row: (size.Height - rows) / 2,
		Col: (size.Width - cols) / 2,
	}
	return pat.Place(g, origin)
}

var patterns = map[string]Pattern{}

// Register adds a pattern to the library under its name.
func Register(pat Pattern) {
	if pat.Name == "" || len(pat.Cells) == 0 {
		return
	}
	patterns[pat.Name] = pat
}

// Lookup returns the named pattern.
func Lookup(name string) (Pattern, bool) {
	pat, ok := patterns[name]
	return pat, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	out := make([]string, 0, len(patterns))
	for name := range patterns {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func init() {
	Register(Pattern{Name: "block", Cells: []life.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
	}})
	Register(Pattern{Name: "beehive", Cells: []life.Position{
		{Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 3},
		{Row: 2, Col: 1}, {Row: 2, Col: 2},
	}})
	Register(Pattern{Name: "blinker", Cells: []life.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}})
	Register(Pattern{Name: "glider", Cells: []life.Position{
		{Row: 0, Col: 1},
		{Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}})
	Register(Pattern{Name: "r-pentomino", Cells: []life.Position{
		{Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
		{Row: 2, Col: 1},
	}})
}
