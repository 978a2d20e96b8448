package life

import "testing"

func TestNextStateFullTable(t *testing.T) {
	cases := []struct {
		current   Cell
		neighbors int
		want      Cell
	}{
		{Alive, 0, Dead},
		{Alive, 1, Dead},
		{Alive, 2, Alive},
		{Alive, 3, Alive},
		{Alive, 4, Dead},
		{Alive, 5, Dead},
		{Alive, 6, Dead},
		{Alive, 7, Dead},
		{Alive, 8, Dead},
		{Dead, 0, Dead},
		{Dead, 1, Dead},
		{Dead, 2, Dead},
		{Dead, 3, Alive},
		{Dead, 4, Dead},
		{Dead, 5, Dead},
		{Dead, 6, Dead},
		{Dead, 7, Dead},
		{Dead, 8, Dead},
	}
	if len(cases) != 18 {
		t.Fatalf("transition table must cover 18 entries, has %d", len(cases))
	}
	for _, c := range cases {
		got := NextState(c.current, c.neighbors)
		if got != c.want {
			t.Errorf("NextState(%v, %d) = %v, want %v", c.current, c.neighbors, got, c.want)
		}
	}
}

func TestNextStateIsPure(t *testing.T) {
	for i := 0; i < 100; i++ {
		if got := NextState(Alive, 3); got != Alive {
			t.Fatalf("repeated call %d changed result: %v", i, got)
		}
	}
}
