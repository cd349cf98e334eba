package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionOppositeIsInvolution(t *testing.T) {
	for _, d := range Directions {
		require.Equal(t, d, d.Opposite().Opposite())
		require.NotEqual(t, d, d.Opposite())
	}
}

func TestDirectionVectors(t *testing.T) {
	for _, tc := range []struct {
		d      Direction
		dx, dy int32
	}{
		{DirectionUp, 0, -1},
		{DirectionDown, 0, 1},
		{DirectionLeft, -1, 0},
		{DirectionRight, 1, 0},
	} {
		dx, dy := tc.d.Vector()
		require.Equal(t, tc.dx, dx)
		require.Equal(t, tc.dy, dy)
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range Directions {
		require.True(t, d.Valid())
	}
	require.False(t, Direction("north").Valid())
	require.False(t, Direction("").Valid())
}
