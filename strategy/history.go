package strategy

import "github.com/snakeduel/engine/rules"

// historySize is how many recent directions are kept for oscillation
// detection. Four is enough to catch the A-B-A-B patterns.
const historySize = 4

// MovementHistory is a bounded record of the directions one agent actually
// took. Each strategy instance owns exactly one; it is never shared, which
// keeps parallel episodes trivially safe.
type MovementHistory struct {
	moves []rules.Direction
}

// NewMovementHistory returns an empty history.
func NewMovementHistory() *MovementHistory {
	return &MovementHistory{moves: make([]rules.Direction, 0, historySize)}
}

// Record appends a move, dropping the oldest once the window is full.
func (h *MovementHistory) Record(d rules.Direction) {
	h.moves = append(h.moves, d)
	if len(h.moves) > historySize {
		h.moves = h.moves[1:]
	}
}

// Len returns how many moves are currently recorded.
func (h *MovementHistory) Len() int {
	return len(h.moves)
}

// WouldOscillate reports whether taking next would produce no net
// progress: either an immediate reversal of the last move, or the
// completion of a four-move A-B-A-B pattern where B reverses A.
func (h *MovementHistory) WouldOscillate(next rules.Direction) bool {
	n := len(h.moves)
	if n == 0 {
		return false
	}
	if h.moves[n-1].Opposite() == next {
		return true
	}
	if n >= 3 {
		a, b, c := h.moves[n-3], h.moves[n-2], h.moves[n-1]
		if a == c && b == next && a.Opposite() == b {
			return true
		}
	}
	return false
}
