package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointsDoublePerSegment(t *testing.T) {
	sc := DefaultScoring()
	require.Equal(t, int64(2000), sc.Points(2))
	require.Equal(t, int64(4000), sc.Points(3))
	require.Equal(t, int64(8000), sc.Points(4))
	require.Equal(t, int64(16000), sc.Points(5))
}

func TestPointsShortBodyFloorsAtBase(t *testing.T) {
	sc := DefaultScoring()
	require.Equal(t, int64(2000), sc.Points(1))
}

func TestWon(t *testing.T) {
	sc := DefaultScoring()
	require.False(t, sc.Won(99999))
	require.True(t, sc.Won(100000))
	require.True(t, sc.Won(250000))
}
