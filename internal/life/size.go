package life

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports a grid dimension below the 1x1 minimum.
var ErrInvalidSize = errors.New("grid dimensions must be at least 1x1")

// Size describes the immutable width and height of a grid.
type Size struct {
	Width  int
	Height int
}

// NewSize validates and returns the grid dimensions.
func NewSize(width, height int) (Size, error) {
	if width < 1 || height < 1 {
		return Size{}, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return Size{Width: width, Height: height}, nil
}

// Contains reports whether the position falls inside the grid bounds.
func (s Size) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < s.Height && p.Col >= 0 && p.Col < s.Width
}

// Area returns the total number of positions in the grid.
func (s Size) Area() int { return s.Width * s.Height }

// Positions returns every in-bounds position in row-major order.
func (s Size) Positions() []Position {
	out := make([]Position, 0, s.Area())
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			out = append(out, Position{Row: row, Col: col})
		}
	}
	return out
}
