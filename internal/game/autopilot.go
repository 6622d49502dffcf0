package game

// Autopilot is a greedy steering policy used by the headless runner and the
// long-running invariant tests. Each tick it aims the head at the food along
// the dominant axis, vetoing moves that would hit a wall or the body on the
// very next step. It interacts with the game exactly like a player: public
// state in, direction intents out.
type Autopilot struct{}

// Steer issues at most one direction intent for the upcoming tick.
func (a Autopilot) Steer(g *Game) {
	if g.Phase() != PhasePlaying {
		return
	}
	s := g.Snake
	for _, d := range a.preferences(s.Head(), g.Food.Pos) {
		// A reversal would be dropped by the direction buffer; skip it
		// here so the next preference gets a chance instead.
		if d == s.Dir.Opposite() {
			continue
		}
		if a.safeMove(s, d) {
			g.DirectionIntent(d)
			return
		}
	}
	// Every move is lethal: hold course and let the round end.
}

// preferences orders the candidate directions: dominant food axis first,
// then the minor axis, then whatever remains as escape moves.
func (a Autopilot) preferences(head, food Position) []Direction {
	dx := food.X - head.X
	dy := food.Y - head.Y

	toX := DirRight
	if dx < 0 {
		toX = DirLeft
	}
	toY := DirDown
	if dy < 0 {
		toY = DirUp
	}

	prefs := make([]Direction, 0, int(directionCount))
	if abs(dx) >= abs(dy) {
		prefs = append(prefs, toX, toY)
	} else {
		prefs = append(prefs, toY, toX)
	}
	for d := Direction(0); d < directionCount; d++ {
		if d != prefs[0] && d != prefs[1] {
			prefs = append(prefs, d)
		}
	}
	return prefs
}

// safeMove reports whether stepping the head in direction d survives the
// next tick: the cell is inside the grid and not on the body. The tail cell
// counts as free when no growth is pending, because it vacates on the same
// tick the head arrives.
func (a Autopilot) safeMove(s *Snake, d Direction) bool {
	next := s.Head().Move(d)
	if !inGrid(next) {
		return false
	}
	last := len(s.Body) - 1
	for i, cell := range s.Body {
		if i == last && s.growPending == 0 {
			continue
		}
		if next.Equals(cell) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
