package strategy

import (
	"math/rand"

	"github.com/snakeduel/engine/rules"
)

// unreachableMargin is how many cells further from the food than the
// opponent a snake must be before it judges the food unreachable and
// repositions instead of chasing.
const unreachableMargin = 3

// contestMargin is how close the race has to be for Interceptor to commit
// to cutting the opponent off rather than repositioning.
const contestMargin = 1

// interceptWeight and raceBonus tune how hard Interceptor pushes for the
// cut-off point when the food is contested.
const (
	interceptWeight = 15.0
	raceBonus       = 200.0
)

// noiseProbability is the chance per tick that Noisy ignores its utility
// and moves randomly among the safe directions.
const noiseProbability = 0.025

// Adaptive chases food while it has a realistic claim to it. Once the
// opponent is decisively closer it gives up the race and repositions to
// the mirror of the opponent's head, with a mild pull toward the center.
type Adaptive struct {
	base
}

// NewAdaptive constructs an Adaptive strategy with a self-seeded PRNG.
func NewAdaptive() *Adaptive { return newAdaptive(nil) }

func newAdaptive(rng *rand.Rand) *Adaptive {
	return &Adaptive{base: newBase(rng)}
}

// NextMove implements Strategy.
func (s *Adaptive) NextMove(state rules.GameState, snakeID int) rules.Direction {
	head := state.SnakeBody(snakeID)[0]
	oppHead := state.OpponentBody(snakeID)[0]
	myDist := head.ManhattanDistance(state.Food)
	oppDist := oppHead.ManhattanDistance(state.Food)
	unreachable := myDist > oppDist+unreachableMargin

	if !unreachable {
		return s.pick(state, snakeID, func(next rules.Point) float64 {
			dist := next.ManhattanDistance(state.Food)
			score := baseUtility - foodWeight*float64(dist)
			if dist < myDist {
				score += approachBonus
			}
			return score
		})
	}

	target := clampPoint(rules.Point{
		X: state.Width - 1 - oppHead.X,
		Y: state.Height - 1 - oppHead.Y,
	}, state.Width, state.Height)
	center := state.Center()
	return s.pick(state, snakeID, func(next rules.Point) float64 {
		score := baseUtility - repositionWeight*float64(next.ManhattanDistance(target))
		centerDist := next.ManhattanDistance(center)
		score += centerWeight * float64(state.Width+state.Height-centerDist)
		return score
	})
}

// Interceptor contests the food directly. While the race is close it aims
// for the point between the opponent and the food to cut it off, with a
// bonus for out-racing the opponent; once clearly beaten it repositions
// toward the midpoint of center and food to be ready for the next spawn.
type Interceptor struct {
	base
}

// NewInterceptor constructs an Interceptor strategy with a self-seeded PRNG.
func NewInterceptor() *Interceptor { return newInterceptor(nil) }

func newInterceptor(rng *rand.Rand) *Interceptor {
	return &Interceptor{base: newBase(rng)}
}

// NextMove implements Strategy.
func (s *Interceptor) NextMove(state rules.GameState, snakeID int) rules.Direction {
	head := state.SnakeBody(snakeID)[0]
	oppHead := state.OpponentBody(snakeID)[0]
	myDist := head.ManhattanDistance(state.Food)
	oppDist := oppHead.ManhattanDistance(state.Food)

	if myDist <= oppDist+contestMargin {
		intercept := rules.Point{
			X: (oppHead.X + state.Food.X) / 2,
			Y: (oppHead.Y + state.Food.Y) / 2,
		}
		return s.pick(state, snakeID, func(next rules.Point) float64 {
			score := baseUtility - interceptWeight*float64(next.ManhattanDistance(intercept))
			if next.ManhattanDistance(state.Food) < oppDist {
				score += raceBonus
			}
			return score
		})
	}

	center := state.Center()
	target := rules.Point{
		X: (center.X + state.Food.X) / 2,
		Y: (center.Y + state.Food.Y) / 2,
	}
	return s.pick(state, snakeID, func(next rules.Point) float64 {
		return baseUtility - repositionWeight*float64(next.ManhattanDistance(target))
	})
}

// Noisy wraps Interceptor with an epsilon of pure exploration: with a
// small fixed probability it ignores the utility and picks uniformly among
// the safe directions instead.
type Noisy struct {
	inner   *Interceptor
	epsilon float64
}

// NewNoisy constructs a Noisy strategy with a self-seeded PRNG.
func NewNoisy() *Noisy { return newNoisy(nil) }

func newNoisy(rng *rand.Rand) *Noisy {
	return &Noisy{inner: newInterceptor(rng), epsilon: noiseProbability}
}

// NextMove implements Strategy.
func (s *Noisy) NextMove(state rules.GameState, snakeID int) rules.Direction {
	if s.inner.rand.Float64() < s.epsilon {
		moves := s.inner.safeMoves(state, snakeID)
		if len(moves) == 0 {
			d := s.inner.fallback(state, snakeID)
			s.inner.history.Record(d)
			return d
		}
		d := moves[s.inner.rand.Intn(len(moves))]
		s.inner.history.Record(d)
		return d
	}
	return s.inner.NextMove(state, snakeID)
}
