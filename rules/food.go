package rules

import (
	"math/rand"

	"github.com/pkg/errors"
)

// ErrGridExhausted is returned when no unoccupied cell remains for food.
// The runner ends such an episode as a draw instead of looping forever.
var ErrGridExhausted = errors.New("rules: no unoccupied cell left for food")

// SpawnPolicy selects how food cells are chosen.
type SpawnPolicy string

const (
	// SpawnRandom picks uniformly among unoccupied cells.
	SpawnRandom SpawnPolicy = "random"
	// SpawnCenterFirst places the first food of an episode at the grid
	// center (or the nearest free cell), then behaves like SpawnRandom.
	SpawnCenterFirst SpawnPolicy = "center-first"
)

// FoodSpawner picks legal, unoccupied cells for food. It draws from the
// episode's PRNG stream so a fixed seed reproduces identical spawns.
type FoodSpawner struct {
	Policy SpawnPolicy

	rand    *rand.Rand
	spawned bool
}

// NewFoodSpawner creates a spawner for one episode.
func NewFoodSpawner(policy SpawnPolicy, rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{Policy: policy, rand: rng}
}

// Spawn returns the next food cell, never on either snake body.
func (f *FoodSpawner) Spawn(width, height int32, snakes ...*Snake) (Point, error) {
	first := !f.spawned
	f.spawned = true

	if f.Policy == SpawnCenterFirst && first {
		center := Point{X: width / 2, Y: height / 2}
		if !occupied(center, snakes) {
			return center, nil
		}
		if p, ok := nearestUnoccupied(center, width, height, snakes); ok {
			return p, nil
		}
		return Point{}, ErrGridExhausted
	}

	open := unoccupiedPoints(width, height, snakes)
	if len(open) == 0 {
		return Point{}, ErrGridExhausted
	}
	return open[f.rand.Intn(len(open))], nil
}

func occupied(p Point, snakes []*Snake) bool {
	for _, s := range snakes {
		if s != nil && s.Occupies(p) {
			return true
		}
	}
	return false
}

func unoccupiedPoints(width, height int32, snakes []*Snake) []Point {
	open := []Point{}
	for x := int32(0); x < width; x++ {
		for y := int32(0); y < height; y++ {
			p := Point{X: x, Y: y}
			if !occupied(p, snakes) {
				open = append(open, p)
			}
		}
	}
	return open
}

// nearestUnoccupied searches outward from the center in rings of growing
// Manhattan radius, scanning each ring in a fixed order so the fallback is
// deterministic.
func nearestUnoccupied(from Point, width, height int32, snakes []*Snake) (Point, bool) {
	maxRadius := width + height
	for r := int32(1); r <= maxRadius; r++ {
		for dx := -r; dx <= r; dx++ {
			dy := r - abs(dx)
			for _, candidate := range []Point{
				{X: from.X + dx, Y: from.Y + dy},
				{X: from.X + dx, Y: from.Y - dy},
			} {
				if candidate.OutOfBounds(width, height) {
					continue
				}
				if !occupied(candidate, snakes) {
					return candidate, true
				}
				if dy == 0 {
					break
				}
			}
		}
	}
	return Point{}, false
}
