package game

// Playfield geometry and pacing constants. These are compile-time fixed;
// there is no runtime configuration surface.
const (
	GridWidth  = 40 // playfield width in cells
	GridHeight = 30 // playfield height in cells

	InitialSpeed  = 10 // ticks per second at score 0
	MaxSpeed      = 20 // speed ramp ceiling
	speedupScore  = 5  // +1 speed per this many points, before clamping
	initialLength = 3  // snake body length after reset

	foodRespawnAttempts = 1000 // random placement budget before the (0,0) fallback
)

// Direction is one of the four cardinal movement directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	directionCount
)

// Vector returns the unit cell offset for this direction. Y grows downward.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reversing direction. Every direction has exactly one.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Position is an immutable grid cell coordinate. Positions are created
// freely, compared by value, and discarded; they carry no lifecycle.
type Position struct {
	X int
	Y int
}

// Equals reports whether both coordinates match exactly.
func (p Position) Equals(o Position) bool {
	return p.X == o.X && p.Y == o.Y
}

// Move returns a new Position offset by the direction's unit vector.
// The receiver is not mutated. No bounds checking happens here; walls are
// the snake's collision concern, not the coordinate's.
func (p Position) Move(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// inGrid reports whether p lies inside [0,GridWidth)x[0,GridHeight).
func inGrid(p Position) bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}
