package strategy

import (
	"math/rand"

	"github.com/snakeduel/engine/rules"
)

// Utility weights shared by the food-seeking archetypes.
const (
	baseUtility      = 1000.0
	foodWeight       = 10.0
	approachBonus    = 50.0
	dangerRadius     = 3
	dangerPenalty    = 200.0
	safetyWeight     = 10.0
	safetyBonusCap   = 100.0
	balancedWeight   = 5.0
	repositionWeight = 5.0
	centerWeight     = 2.0
)

// Direct is the pure food chaser: it minimizes Manhattan distance to the
// food and nothing else.
type Direct struct {
	base
}

// NewDirect constructs a Direct strategy with a self-seeded PRNG.
func NewDirect() *Direct { return newDirect(nil) }

func newDirect(rng *rand.Rand) *Direct {
	return &Direct{base: newBase(rng)}
}

// NextMove implements Strategy.
func (s *Direct) NextMove(state rules.GameState, snakeID int) rules.Direction {
	return s.pick(state, snakeID, func(next rules.Point) float64 {
		return baseUtility - foodWeight*float64(next.ManhattanDistance(state.Food))
	})
}

// Balanced chases food but keeps its distance from the opponent: inside
// the danger radius of the opponent's head the utility drops sharply,
// outside it grows with separation up to a cap.
type Balanced struct {
	base
}

// NewBalanced constructs a Balanced strategy with a self-seeded PRNG.
func NewBalanced() *Balanced { return newBalanced(nil) }

func newBalanced(rng *rand.Rand) *Balanced {
	return &Balanced{base: newBase(rng)}
}

// NextMove implements Strategy.
func (s *Balanced) NextMove(state rules.GameState, snakeID int) rules.Direction {
	oppHead := state.OpponentBody(snakeID)[0]
	return s.pick(state, snakeID, func(next rules.Point) float64 {
		score := baseUtility - balancedWeight*float64(next.ManhattanDistance(state.Food))
		oppDist := next.ManhattanDistance(oppHead)
		if oppDist < dangerRadius {
			score -= dangerPenalty
		} else {
			bonus := safetyWeight * float64(oppDist)
			if bonus > safetyBonusCap {
				bonus = safetyBonusCap
			}
			score += bonus
		}
		return score
	})
}
