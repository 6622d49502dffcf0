package game

// Snake is the player body: an ordered run of grid cells, head first.
// It is owned exclusively by the Game controller and mutated only through
// Update (movement) and Grow (deferred lengthening).
type Snake struct {
	Body []Position // head at index 0
	Dir  Direction  // committed direction, applied by Update

	// nextDir buffers the latest direction intent between ticks. It is a
	// single slot, last valid write wins; Update commits it exactly once
	// per tick so rapid input can never turn the snake twice in one step.
	nextDir Direction

	// growPending counts future ticks that skip tail removal. Growth from
	// eating is consumed one cell per tick, never applied instantly.
	growPending int
}

// NewSnake returns a snake in its reset position.
func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Reset places the snake at its starting layout: three cells with the head
// at (GridWidth/4, GridHeight/2) extending leftward, moving right.
func (s *Snake) Reset() {
	head := Position{X: GridWidth / 4, Y: GridHeight / 2}
	s.Body = s.Body[:0]
	for i := 0; i < initialLength; i++ {
		s.Body = append(s.Body, Position{X: head.X - i, Y: head.Y})
	}
	s.Dir = DirRight
	s.nextDir = DirRight
	s.growPending = 0
}

// Head returns the leading cell.
func (s *Snake) Head() Position {
	return s.Body[0]
}

// ChangeDirection records d as the buffered intent for the next tick.
// A request that reverses the committed direction (not the pending one)
// would drive the head into its own neck, so it is silently dropped.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.Dir.Opposite() {
		return
	}
	s.nextDir = d
}

// Update advances the snake one cell: the buffered direction is committed,
// the new head is prepended, and either one unit of pending growth is
// consumed or the tail is removed. This is the single state transition per
// tick; there are no partial steps.
func (s *Snake) Update() {
	s.Dir = s.nextDir
	newHead := s.Head().Move(s.Dir)
	s.Body = append([]Position{newHead}, s.Body...)
	if s.growPending > 0 {
		s.growPending--
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Grow schedules n cells of deferred growth.
func (s *Snake) Grow(n int) {
	s.growPending += n
}

// CheckCollision reports whether the head has left the grid or landed on a
// non-head body segment. Checked once per tick, after Update.
func (s *Snake) CheckCollision() bool {
	head := s.Head()
	if !inGrid(head) {
		return true
	}
	for _, cell := range s.Body[1:] {
		if head.Equals(cell) {
			return true
		}
	}
	return false
}

// Occupies reports whether any body cell equals p.
func (s *Snake) Occupies(p Position) bool {
	for _, cell := range s.Body {
		if p.Equals(cell) {
			return true
		}
	}
	return false
}
