package simulation

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snakeduel/engine/rules"
)

func TestPositionVariants(t *testing.T) {
	cfg := rules.DefaultGameConfig()
	variants := PositionVariants(cfg)
	require.Len(t, variants, 4)
	require.Equal(t, "canonical", variants[0].Name)
	require.Nil(t, variants[0].Start1)
	require.Nil(t, variants[0].Start2)

	for _, v := range variants[1:] {
		require.Len(t, v.Start1.Body, 3, v.Name)
		require.Equal(t, rules.Point{X: 25, Y: 12}, v.Start1.Body[0], v.Name)
		require.Equal(t, rules.DirectionRight, v.Start1.Facing, v.Name)
		require.Equal(t, int64(52000), v.Start1.Score, v.Name)
		require.Equal(t, int64(48000), v.Start2.Score, v.Name)
		require.Equal(t, rules.DirectionLeft, v.Start2.Facing, v.Name)
	}
	require.Equal(t, rules.Point{X: 27, Y: 12}, variants[1].Start2.Body[0])
	require.Equal(t, rules.Point{X: 26, Y: 13}, variants[2].Start2.Body[0])
	require.Equal(t, rules.Point{X: 27, Y: 14}, variants[3].Start2.Body[0])
}

func TestPositionVariantGamesStart(t *testing.T) {
	cfg := rules.DefaultGameConfig()
	for _, v := range PositionVariants(cfg) {
		game := cfg
		game.Start1 = v.Start1
		game.Start2 = v.Start2

		run := Config{Game: game, Strategy1: "direct", Strategy2: "direct", Episodes: 1, Seed: 7}
		require.NoError(t, run.Validate())
		rec := RunEpisode(run, 0)
		require.NotEqual(t, OutcomeAborted, rec.Outcome, v.Name)
	}
}

func TestRunTournament(t *testing.T) {
	cfg := TournamentConfig{
		Strategies: []string{"direct", "balanced"},
		Base: Config{
			Game:     rules.DefaultGameConfig(),
			Episodes: 3,
			MaxSteps: 200,
			Seed:     11,
			Workers:  2,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RunTournament(context.Background(), cfg, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// Header plus 2 ordered pairs times 4 positions.
	require.Len(t, rows, 1+2*4)
	require.Equal(t, tournamentHeader, rows[0])
	require.Equal(t, []string{"direct", "balanced", "canonical"}, rows[1][:3])
	require.Equal(t, []string{"balanced", "direct", "canonical"}, rows[5][:3])
}

func TestRunTournamentNeedsTwoStrategies(t *testing.T) {
	err := RunTournament(context.Background(), TournamentConfig{Strategies: []string{"direct"}}, &bytes.Buffer{})
	require.Error(t, err)
}
