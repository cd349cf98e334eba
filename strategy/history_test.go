package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snakeduel/engine/rules"
)

func historyOf(moves ...rules.Direction) *MovementHistory {
	h := NewMovementHistory()
	for _, m := range moves {
		h.Record(m)
	}
	return h
}

func TestWouldOscillateImmediateReversal(t *testing.T) {
	h := historyOf(rules.DirectionUp)
	require.True(t, h.WouldOscillate(rules.DirectionDown))
	require.False(t, h.WouldOscillate(rules.DirectionLeft))
	require.False(t, h.WouldOscillate(rules.DirectionUp))
}

func TestWouldOscillateEmptyHistory(t *testing.T) {
	h := NewMovementHistory()
	for _, d := range rules.Directions {
		require.False(t, h.WouldOscillate(d))
	}
}

func TestWouldOscillateAlternatingPattern(t *testing.T) {
	h := historyOf(rules.DirectionUp, rules.DirectionDown, rules.DirectionUp)
	require.True(t, h.WouldOscillate(rules.DirectionDown))
}

func TestWouldOscillateNonReversingPattern(t *testing.T) {
	// UP-LEFT-UP-LEFT makes progress diagonally, it is not an oscillation.
	h := historyOf(rules.DirectionUp, rules.DirectionLeft, rules.DirectionUp)
	require.False(t, h.WouldOscillate(rules.DirectionLeft))
}

func TestHistoryWindowIsBounded(t *testing.T) {
	h := NewMovementHistory()
	for i := 0; i < 10; i++ {
		h.Record(rules.DirectionRight)
	}
	require.Equal(t, historySize, h.Len())

	// Old entries fall out: the UP at the front of this sequence no
	// longer participates once four more moves arrive.
	h = historyOf(
		rules.DirectionUp,
		rules.DirectionRight, rules.DirectionRight,
		rules.DirectionRight, rules.DirectionRight,
	)
	require.False(t, h.WouldOscillate(rules.DirectionDown))
}
