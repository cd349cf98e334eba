package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testSnake() *Snake {
	return NewSnake([]Point{{X: 2, Y: 5}, {X: 1, Y: 5}}, DirectionRight)
}

var noFood = Point{X: -1, Y: -1}

func TestSetDirectionIgnoresReversal(t *testing.T) {
	s := testSnake()
	require.False(t, s.SetDirection(DirectionLeft))
	require.True(t, s.Move(10, 10, noFood))
	require.Equal(t, Point{X: 3, Y: 5}, s.Head())
}

func TestSetDirectionIgnoresInvalid(t *testing.T) {
	s := testSnake()
	require.False(t, s.SetDirection(Direction("sideways")))
	require.True(t, s.Move(10, 10, noFood))
	require.Equal(t, Point{X: 3, Y: 5}, s.Head())
}

func TestMoveRemovesTailOffFood(t *testing.T) {
	s := testSnake()
	require.True(t, s.Move(10, 10, noFood))
	require.Equal(t, []Point{{X: 3, Y: 5}, {X: 2, Y: 5}}, s.Body)
}

func TestMoveOntoFoodGrows(t *testing.T) {
	s := testSnake()
	require.True(t, s.Move(10, 10, Point{X: 3, Y: 5}))
	require.Equal(t, []Point{{X: 3, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 5}}, s.Body)

	// Growth is exactly one segment; the next plain move shrinks back down.
	require.True(t, s.Move(10, 10, noFood))
	require.Equal(t, 3, s.Length())
}

func TestGrowRetainsTailOnNextMove(t *testing.T) {
	s := testSnake()
	s.Grow()
	require.True(t, s.Move(10, 10, noFood))
	require.Equal(t, 3, s.Length())
	require.True(t, s.Move(10, 10, noFood))
	require.Equal(t, 3, s.Length())
}

func TestMoveOutOfBoundsIsInvalid(t *testing.T) {
	for _, tc := range []struct {
		body   []Point
		facing Direction
	}{
		{[]Point{{X: 9, Y: 5}, {X: 8, Y: 5}}, DirectionRight},
		{[]Point{{X: 0, Y: 5}, {X: 1, Y: 5}}, DirectionLeft},
		{[]Point{{X: 5, Y: 0}, {X: 5, Y: 1}}, DirectionUp},
		{[]Point{{X: 5, Y: 9}, {X: 5, Y: 8}}, DirectionDown},
	} {
		s := NewSnake(tc.body, tc.facing)
		require.False(t, s.Move(10, 10, noFood))
		// Never wrapped or clamped: the body is untouched.
		require.Equal(t, tc.body, s.Body)
	}
}

func TestCollidesWithSelf(t *testing.T) {
	s := NewSnake([]Point{
		{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 3}, {X: 3, Y: 3},
	}, DirectionUp)
	require.True(t, s.CollidesWith(nil))
}

func TestCollidesWithOther(t *testing.T) {
	s := testSnake()
	other := NewSnake([]Point{{X: 2, Y: 5}, {X: 3, Y: 5}}, DirectionLeft)
	require.True(t, s.CollidesWith(other))

	far := NewSnake([]Point{{X: 8, Y: 8}, {X: 9, Y: 8}}, DirectionLeft)
	require.False(t, s.CollidesWith(far))
}

func TestCollidesHeadToHead(t *testing.T) {
	s := testSnake()
	other := NewSnake([]Point{{X: 2, Y: 5}, {X: 2, Y: 6}}, DirectionUp)
	require.True(t, s.CollidesWith(other))
	require.True(t, other.CollidesWith(s))
}

func TestResetRestoresSpawn(t *testing.T) {
	s := testSnake()
	s.Grow()
	require.True(t, s.Move(10, 10, noFood))
	require.Equal(t, 3, s.Length())

	body, facing := CanonicalStart(1, 10, 10)
	s.Reset(body, facing)
	require.Equal(t, InitialLength, s.Length())
	require.Equal(t, facing, s.Direction())
	// Pending growth does not survive a reset.
	require.True(t, s.Move(10, 10, noFood))
	require.Equal(t, InitialLength, s.Length())
}
