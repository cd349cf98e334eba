package simulation

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/snakeduel/engine/rules"
)

// PositionVariant is a named opening layout for one matchup. The zero
// starts mean the canonical opposite-edge spawn.
type PositionVariant struct {
	Name   string
	Start1 *rules.SnakeStart
	Start2 *rules.SnakeStart
}

// PositionVariants returns the opening layouts a tournament cycles
// through: the canonical spawn plus three mid-board duels where the
// first snake starts one capture ahead, with the second snake placed at
// increasing offsets from the centre.
func PositionVariants(cfg rules.GameConfig) []PositionVariant {
	cx, cy := cfg.Width/2, cfg.Height/2
	lead := rules.SnakeStart{
		Body: []rules.Point{
			{X: cx, Y: cy},
			{X: cx - 1, Y: cy},
			{X: cx - 2, Y: cy},
		},
		Facing: rules.DirectionRight,
		Score:  cfg.Scoring.StartingScore + cfg.Scoring.BasePoints,
	}
	trail := func(head rules.Point) *rules.SnakeStart {
		return &rules.SnakeStart{
			Body:   []rules.Point{head, {X: head.X + 1, Y: head.Y}},
			Facing: rules.DirectionLeft,
			Score:  cfg.Scoring.StartingScore - cfg.Scoring.BasePoints,
		}
	}

	return []PositionVariant{
		{Name: "canonical"},
		{Name: "close", Start1: &lead, Start2: trail(rules.Point{X: cx + 2, Y: cy})},
		{Name: "diagonal", Start1: &lead, Start2: trail(rules.Point{X: cx + 1, Y: cy + 1})},
		{Name: "offset", Start1: &lead, Start2: trail(rules.Point{X: cx + 2, Y: cy + 2})},
	}
}

// TournamentConfig pits every ordered strategy pair against each other
// across every position variant.
type TournamentConfig struct {
	Strategies []string
	Positions  []PositionVariant
	Base       Config
}

var tournamentHeader = []string{
	"strategy1", "strategy2", "position",
	"wins1", "wins2",
	"avg_score1", "avg_score2",
	"max_length1", "max_length2",
	"avg_game_length",
}

// RunTournament runs one batch per (pair, position) cell and streams one
// summary row per cell to out as CSV. Every cell reuses the same base
// seed, so two tournaments with the same configuration produce identical
// tables.
func RunTournament(ctx context.Context, cfg TournamentConfig, out io.Writer) error {
	if len(cfg.Strategies) < 2 {
		return errors.Errorf("simulation: tournament needs at least 2 strategies, got %d", len(cfg.Strategies))
	}
	if len(cfg.Positions) == 0 {
		cfg.Positions = PositionVariants(cfg.Base.Game)
	}

	w := csv.NewWriter(out)
	if err := w.Write(tournamentHeader); err != nil {
		return errors.Wrap(err, "writing tournament header")
	}

	for _, s1 := range cfg.Strategies {
		for _, s2 := range cfg.Strategies {
			if s1 == s2 {
				continue
			}
			for _, pos := range cfg.Positions {
				if err := ctx.Err(); err != nil {
					return err
				}

				cell := cfg.Base
				cell.Strategy1 = s1
				cell.Strategy2 = s2
				cell.Game.Start1 = pos.Start1
				cell.Game.Start2 = pos.Start2

				res, err := RunBatch(ctx, cell, NopRecorder{})
				if err != nil {
					return errors.Wrapf(err, "matchup %s vs %s at %s", s1, s2, pos.Name)
				}
				log.WithFields(log.Fields{
					"strategy1": s1,
					"strategy2": s2,
					"position":  pos.Name,
					"wins1":     res.Aggregate.Side1.Wins,
					"wins2":     res.Aggregate.Side2.Wins,
				}).Debug("tournament cell finished")

				if err := w.Write(tournamentRow(s1, s2, pos.Name, &res.Aggregate)); err != nil {
					return errors.Wrap(err, "writing tournament row")
				}
				w.Flush()
				if err := w.Error(); err != nil {
					return errors.Wrap(err, "flushing tournament row")
				}
			}
		}
	}
	return nil
}

func tournamentRow(s1, s2, pos string, a *Aggregate) []string {
	meanOf := func(r runningStat) string {
		m, ok := r.mean()
		if !ok {
			return "n/a"
		}
		return fmt.Sprintf("%.1f", m)
	}
	return []string{
		s1, s2, pos,
		strconv.FormatInt(a.Side1.Wins, 10),
		strconv.FormatInt(a.Side2.Wins, 10),
		meanOf(a.Side1.Score),
		meanOf(a.Side2.Score),
		strconv.FormatFloat(a.Side1.MaxLength.Max, 'f', 0, 64),
		strconv.FormatFloat(a.Side2.MaxLength.Max, 'f', 0, 64),
		meanOf(a.Steps),
	}
}
