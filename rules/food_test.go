package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpawnNeverLandsOnABody(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s1 := NewSnake([]Point{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}, DirectionRight)
	s2 := NewSnake([]Point{{X: 7, Y: 7}, {X: 8, Y: 7}, {X: 9, Y: 7}}, DirectionLeft)

	spawner := NewFoodSpawner(SpawnRandom, rng)
	for i := 0; i < 10000; i++ {
		p, err := spawner.Spawn(10, 10, s1, s2)
		require.NoError(t, err)
		require.False(t, s1.Occupies(p))
		require.False(t, s2.Occupies(p))
		require.False(t, p.OutOfBounds(10, 10))
	}
}

func TestSpawnCenterFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s1 := NewSnake([]Point{{X: 2, Y: 12}, {X: 1, Y: 12}}, DirectionRight)
	s2 := NewSnake([]Point{{X: 48, Y: 12}, {X: 49, Y: 12}}, DirectionLeft)

	spawner := NewFoodSpawner(SpawnCenterFirst, rng)
	p, err := spawner.Spawn(51, 25, s1, s2)
	require.NoError(t, err)
	require.Equal(t, Point{X: 25, Y: 12}, p)
}

func TestSpawnCenterFirstFallsBackToNearestFreeCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s1 := NewSnake([]Point{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 1}}, DirectionRight)

	spawner := NewFoodSpawner(SpawnCenterFirst, rng)
	p, err := spawner.Spawn(5, 5, s1)
	require.NoError(t, err)
	require.Equal(t, int32(1), p.ManhattanDistance(Point{X: 2, Y: 2}))
	require.False(t, s1.Occupies(p))
}

func TestSpawnGridExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s1 := NewSnake([]Point{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 1, Y: 1}, {X: 0, Y: 1},
	}, DirectionRight)

	spawner := NewFoodSpawner(SpawnRandom, rng)
	_, err := spawner.Spawn(2, 2, s1)
	require.Equal(t, ErrGridExhausted, err)
}

func TestSpawnDeterministicForSeed(t *testing.T) {
	s1 := NewSnake([]Point{{X: 2, Y: 2}, {X: 1, Y: 2}}, DirectionRight)

	run := func() []Point {
		spawner := NewFoodSpawner(SpawnRandom, rand.New(rand.NewSource(7)))
		points := []Point{}
		for i := 0; i < 50; i++ {
			p, err := spawner.Spawn(10, 10, s1)
			require.NoError(t, err)
			points = append(points, p)
		}
		return points
	}

	require.Equal(t, run(), run())
}
