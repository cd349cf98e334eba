package rules

// Point is a cell on the grid. X grows rightward, Y grows downward.
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Equal checks if 2 points are the same x,y coordinate.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Next returns the neighbouring cell in the given direction.
func (p Point) Next(d Direction) Point {
	dx, dy := d.Vector()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanDistance returns the grid-walk distance between two points.
func (p Point) ManhattanDistance(other Point) int32 {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// OutOfBounds reports whether the point lies outside [0,width) x [0,height).
func (p Point) OutOfBounds(width, height int32) bool {
	return p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
