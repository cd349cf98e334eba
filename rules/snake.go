package rules

// Snake is one grid-bound agent. The head is Body[0], the tail is the last
// element. A snake is always at least two segments long outside the single
// tick window in which a collision is being resolved.
type Snake struct {
	Body []Point

	direction Direction
	pending   Direction
	growing   bool
}

// NewSnake creates a snake from an initial body and heading. The body slice
// is copied so callers can reuse theirs.
func NewSnake(body []Point, facing Direction) *Snake {
	s := &Snake{}
	s.Reset(body, facing)
	return s
}

// Head returns the first point in the body.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body.
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Length returns the number of body segments.
func (s *Snake) Length() int {
	return len(s.Body)
}

// Direction returns the heading the snake is currently travelling in.
func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection records the heading for the next move. A reversal of the
// current heading is ignored, as is anything that is not a canonical
// direction, so a snake can never fold back onto its own neck.
func (s *Snake) SetDirection(d Direction) bool {
	if !d.Valid() {
		return false
	}
	if d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Grow marks the snake so its next successful move retains the tail. Used
// when the caller detects a capture before committing the move.
func (s *Snake) Grow() {
	s.growing = true
}

// Move advances the snake one cell in its pending direction. A move that
// would leave the grid is invalid: the body is left untouched and false is
// returned so the caller can reset the agent. Landing on the food cell
// keeps the tail in place, which is how a capture grows the body by one.
func (s *Snake) Move(width, height int32, food Point) bool {
	s.direction = s.pending
	newHead := s.Head().Next(s.direction)
	if newHead.OutOfBounds(width, height) {
		return false
	}

	s.Body = append([]Point{newHead}, s.Body...)
	if newHead.Equal(food) || s.growing {
		s.growing = false
		return true
	}
	s.Body = s.Body[:len(s.Body)-1]
	return true
}

// CollidesWith reports whether this snake's head overlaps its own trailing
// body or any segment of the other snake, the other head included so that
// head-to-head contact is caught too.
func (s *Snake) CollidesWith(other *Snake) bool {
	head := s.Head()
	for _, b := range s.Body[1:] {
		if head.Equal(b) {
			return true
		}
	}
	if other != nil {
		for _, b := range other.Body {
			if head.Equal(b) {
				return true
			}
		}
	}
	return false
}

// Occupies reports whether any body segment sits on the given point.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.Body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// Reset restores the snake to a spawn body and heading, clearing any
// pending growth.
func (s *Snake) Reset(body []Point, facing Direction) {
	s.Body = append([]Point(nil), body...)
	s.direction = facing
	s.pending = facing
	s.growing = false
}
