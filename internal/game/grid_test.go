package game

import "testing"

func TestDirection_Vectors(t *testing.T) {
	cases := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}
	for _, c := range cases {
		dx, dy := c.dir.Vector()
		if dx != c.dx || dy != c.dy {
			t.Errorf("%s: expected vector (%d,%d), got (%d,%d)", c.dir, c.dx, c.dy, dx, dy)
		}
	}
}

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for d := Direction(0); d < directionCount; d++ {
		if d.Opposite().Opposite() != d {
			t.Errorf("%s: opposite of opposite should be itself, got %s", d, d.Opposite().Opposite())
		}
		if d.Opposite() == d {
			t.Errorf("%s: opposite must differ from the direction itself", d)
		}
	}
}

func TestDirection_OppositeCancelsVector(t *testing.T) {
	for d := Direction(0); d < directionCount; d++ {
		dx, dy := d.Vector()
		ox, oy := d.Opposite().Vector()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s: vector (%d,%d) and opposite (%d,%d) do not cancel", d, dx, dy, ox, oy)
		}
	}
}

func TestPosition_Equals(t *testing.T) {
	a := Position{X: 5, Y: 7}
	if !a.Equals(Position{X: 5, Y: 7}) {
		t.Fatal("expected equal positions to match")
	}
	if a.Equals(Position{X: 5, Y: 8}) || a.Equals(Position{X: 6, Y: 7}) {
		t.Fatal("positions differing in one coordinate must not match")
	}
}

func TestPosition_MoveDoesNotMutate(t *testing.T) {
	p := Position{X: 3, Y: 3}
	q := p.Move(DirRight)
	if !q.Equals(Position{X: 4, Y: 3}) {
		t.Fatalf("expected (4,3), got (%d,%d)", q.X, q.Y)
	}
	if !p.Equals(Position{X: 3, Y: 3}) {
		t.Fatalf("receiver mutated: got (%d,%d)", p.X, p.Y)
	}
}

func TestPosition_MoveAllowsOutOfBounds(t *testing.T) {
	// Move itself never clamps; collision checking is the snake's job.
	p := Position{X: 0, Y: 0}
	q := p.Move(DirLeft)
	if q.X != -1 || q.Y != 0 {
		t.Fatalf("expected (-1,0), got (%d,%d)", q.X, q.Y)
	}
	if inGrid(q) {
		t.Fatal("(-1,0) must be outside the grid")
	}
}
