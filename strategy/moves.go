package strategy

import (
	"math/rand"
	"time"

	"github.com/snakeduel/engine/rules"
)

// base carries the private state every archetype shares: its movement
// history and its PRNG stream.
type base struct {
	history *MovementHistory
	rand    *rand.Rand
}

// newBase self-seeds when no source is supplied so the no-argument
// constructors stay usable outside seeded batch runs.
func newBase(rng *rand.Rand) base {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return base{history: NewMovementHistory(), rand: rng}
}

// safeMoves returns the directions that are in bounds, avoid both bodies,
// cannot be met head-on by the opponent next tick, and do not oscillate.
// The oscillation filter is waived when it would leave nothing, so a snake
// boxed into a pocket may still double back.
func (b *base) safeMoves(state rules.GameState, snakeID int) []rules.Direction {
	body := state.SnakeBody(snakeID)
	opponent := state.OpponentBody(snakeID)
	head := body[0]
	oppHead := opponent[0]

	safe := []rules.Direction{}
	for _, d := range rules.Directions {
		next := head.Next(d)
		if next.OutOfBounds(state.Width, state.Height) {
			continue
		}
		// The tail cell is fair game, it moves away this tick.
		if containsPoint(body[:len(body)-1], next) {
			continue
		}
		if containsPoint(opponent, next) {
			continue
		}
		if reachableByOpponent(oppHead, next) {
			continue
		}
		safe = append(safe, d)
	}

	nonOscillating := safe[:0:0]
	for _, d := range safe {
		if !b.history.WouldOscillate(d) {
			nonOscillating = append(nonOscillating, d)
		}
	}
	if len(nonOscillating) > 0 {
		return nonOscillating
	}
	return safe
}

// fallback is used when no move is safe: first in-bounds direction in the
// canonical order, or a uniform random pick if even that fails.
func (b *base) fallback(state rules.GameState, snakeID int) rules.Direction {
	head := state.SnakeBody(snakeID)[0]
	for _, d := range rules.Directions {
		if !head.Next(d).OutOfBounds(state.Width, state.Height) {
			return d
		}
	}
	return rules.Directions[b.rand.Intn(len(rules.Directions))]
}

// pick scores each safe direction with the supplied utility, takes the
// argmax with ties broken by the canonical enumeration order, records the
// decision and returns it.
func (b *base) pick(state rules.GameState, snakeID int, utility func(next rules.Point) float64) rules.Direction {
	moves := b.safeMoves(state, snakeID)
	if len(moves) == 0 {
		d := b.fallback(state, snakeID)
		b.history.Record(d)
		return d
	}

	head := state.SnakeBody(snakeID)[0]
	best := moves[0]
	bestScore := utility(head.Next(moves[0]))
	for _, d := range moves[1:] {
		if score := utility(head.Next(d)); score > bestScore {
			best, bestScore = d, score
		}
	}
	b.history.Record(best)
	return best
}

func containsPoint(body []rules.Point, p rules.Point) bool {
	for _, b := range body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// reachableByOpponent reports whether the opponent's head could land on
// the cell with any single move, which is how head-to-head collisions are
// predicted away.
func reachableByOpponent(oppHead, cell rules.Point) bool {
	for _, d := range rules.Directions {
		if oppHead.Next(d).Equal(cell) {
			return true
		}
	}
	return false
}

func clampPoint(p rules.Point, width, height int32) rules.Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.X > width-1 {
		p.X = width - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > height-1 {
		p.Y = height - 1
	}
	return p
}
