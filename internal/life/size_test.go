package life

import (
	"errors"
	"testing"
)

func TestNewSizeRejectsDegenerateDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}, {3, -1}} {
		_, err := NewSize(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewSize(%d, %d) = %v, want ErrInvalidSize", dims[0], dims[1], err)
		}
	}
	if _, err := NewSize(1, 1); err != nil {
		t.Fatalf("1x1 must be valid: %v", err)
	}
}

func TestContains(t *testing.T) {
	s := Size{Width: 4, Height: 3}
	cases := []struct {
		p    Position
		want bool
	}{
		{Position{0, 0}, true},
		{Position{2, 3}, true},
		{Position{3, 0}, false},
		{Position{0, 4}, false},
		{Position{-1, 0}, false},
		{Position{0, -1}, false},
	}
	for _, c := range cases {
		if got := s.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestPositionsRowMajorAndRestartable(t *testing.T) {
	s := Size{Width: 3, Height: 2}
	first := s.Positions()
	want := []Position{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}
	if len(first) != s.Area() {
		t.Fatalf("expected %d positions, got %d", s.Area(), len(first))
	}
	for i, p := range first {
		if p != want[i] {
			t.Fatalf("position %d = %v, want %v", i, p, want[i])
		}
	}
	second := s.Positions()
	for i := range first {
		if first[i] != second[i] {
			t.Fatal("enumeration must be restartable with identical order")
		}
	}
}
