package rules

// GameState is the read-only snapshot handed to strategies and to UI
// collaborators once per tick. Strategies must not mutate it; Snapshot
// copies the bodies so they cannot.
type GameState struct {
	Snake1 []Point `json:"snake1"`
	Snake2 []Point `json:"snake2"`
	Food   Point   `json:"food"`
	Width  int32   `json:"width"`
	Height int32   `json:"height"`
	Score1 int64   `json:"score1"`
	Score2 int64   `json:"score2"`
	Turn   int64   `json:"turn"`
}

// SnakeBody returns the body of the snake with the given id (1 or 2).
func (gs *GameState) SnakeBody(id int) []Point {
	if id == 1 {
		return gs.Snake1
	}
	return gs.Snake2
}

// OpponentBody returns the body of the other snake.
func (gs *GameState) OpponentBody(id int) []Point {
	if id == 1 {
		return gs.Snake2
	}
	return gs.Snake1
}

// Score returns the score of the snake with the given id.
func (gs *GameState) Score(id int) int64 {
	if id == 1 {
		return gs.Score1
	}
	return gs.Score2
}

// Occupied reports whether the point lies on either snake body.
func (gs *GameState) Occupied(p Point) bool {
	for _, b := range gs.Snake1 {
		if b.Equal(p) {
			return true
		}
	}
	for _, b := range gs.Snake2 {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// Center returns the middle cell of the grid.
func (gs *GameState) Center() Point {
	return Point{X: gs.Width / 2, Y: gs.Height / 2}
}
