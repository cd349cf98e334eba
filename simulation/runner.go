// Package simulation provides the batch execution of episodes: many
// independent games between a fixed pair of strategies, aggregated into
// reproducible statistics. It is the counterpart of the live viewer; both
// drive the same rules.AdvanceTick pipeline.
package simulation

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/snakeduel/engine/rules"
	"github.com/snakeduel/engine/strategy"
)

// Outcome classifies how an episode ended.
type Outcome string

const (
	// OutcomeWin means a score reached the winning threshold.
	OutcomeWin Outcome = "win"
	// OutcomeTimeout means the step cap was reached first.
	OutcomeTimeout Outcome = "timeout"
	// OutcomeDraw means the episode could not continue, e.g. the grid ran
	// out of free food cells with the scores level.
	OutcomeDraw Outcome = "draw"
	// OutcomeAborted means a fault inside the episode was contained at
	// the episode boundary.
	OutcomeAborted Outcome = "aborted"
)

// DefaultMaxSteps is the per-episode tick cap.
const DefaultMaxSteps = 1000

// Config describes one batch: the matchup, how many episodes and the seed
// that makes the whole batch reproducible.
type Config struct {
	Game      rules.GameConfig
	Strategy1 string
	Strategy2 string
	Episodes  int
	MaxSteps  int64
	Seed      int64
	Workers   int
}

// Validate fails fast on configuration errors, before any episode runs.
func (c *Config) Validate() error {
	for _, name := range []string{c.Strategy1, c.Strategy2} {
		if !strategy.Known(name) {
			return errors.Wrap(strategy.ErrUnknownStrategy, name)
		}
	}
	if c.Episodes <= 0 {
		return errors.Errorf("simulation: episode count must be positive, got %d", c.Episodes)
	}
	if c.MaxSteps <= 0 {
		c.MaxSteps = DefaultMaxSteps
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return nil
}

// EpisodeRecord is the per-episode detail line emitted to the recorder.
type EpisodeRecord struct {
	Index    int     `json:"episode_index"`
	Winner   int     `json:"winner"`
	Outcome  Outcome `json:"outcome"`
	Steps    int64   `json:"steps"`
	Score1   int64   `json:"final_score1"`
	Score2   int64   `json:"final_score2"`
	MaxLen1  int     `json:"max_length1"`
	MaxLen2  int     `json:"max_length2"`
	Caps1    int64   `json:"captures1"`
	Caps2    int64   `json:"captures2"`
	Points1  int64   `json:"points1"`
	Points2  int64   `json:"points2"`
	AbortMsg string  `json:"abort_reason,omitempty"`
}

// RunEpisode executes one complete game. Each episode gets its own PRNG
// stream derived from the batch seed and the episode index, so episodes
// are reproducible independently of scheduling. A panic inside the
// episode is contained here and recorded as an aborted outcome; it can
// never corrupt statistics already aggregated from earlier episodes.
func RunEpisode(cfg Config, index int) (record EpisodeRecord) {
	record = EpisodeRecord{Index: index}

	defer func() {
		if r := recover(); r != nil {
			record.Outcome = OutcomeAborted
			record.Winner = 0
			record.AbortMsg = fmt.Sprint(r)
			log.WithFields(log.Fields{
				"episode": index,
				"reason":  record.AbortMsg,
			}).Error("episode aborted")
		}
	}()

	rng := rand.New(rand.NewSource(cfg.Seed + int64(index)))
	s1, err := strategy.Build(cfg.Strategy1, rng)
	if err != nil {
		panic(err)
	}
	s2, err := strategy.Build(cfg.Strategy2, rng)
	if err != nil {
		panic(err)
	}

	game, err := rules.NewGame(cfg.Game, rng)
	if err != nil {
		record.Outcome = OutcomeDraw
		return record
	}

	record.MaxLen1 = game.Snake1.Length()
	record.MaxLen2 = game.Snake2.Length()

	for record.Steps < cfg.MaxSteps {
		state := game.Snapshot()
		d1 := s1.NextMove(state, 1)
		d2 := s2.NextMove(state, 2)

		result, err := rules.AdvanceTick(game, d1, d2)
		record.Steps++
		record.observeTick(game, result)

		if result != nil && result.Winner != 0 {
			record.Outcome = OutcomeWin
			record.Winner = result.Winner
			record.finalize(game)
			return record
		}
		if errors.Cause(err) == rules.ErrGridExhausted {
			record.Outcome = OutcomeDraw
			record.finalize(game)
			return record
		}
		if err != nil {
			panic(err)
		}
	}

	record.Outcome = OutcomeTimeout
	if game.Score1 > game.Score2 {
		record.Winner = 1
	} else if game.Score2 > game.Score1 {
		record.Winner = 2
	}
	record.finalize(game)
	return record
}

func (r *EpisodeRecord) observeTick(game *rules.Game, result *rules.TickResult) {
	if l := game.Snake1.Length(); l > r.MaxLen1 {
		r.MaxLen1 = l
	}
	if l := game.Snake2.Length(); l > r.MaxLen2 {
		r.MaxLen2 = l
	}
	if result == nil {
		return
	}
	for _, c := range result.Captures {
		if c.SnakeID == 1 {
			r.Caps1++
			r.Points1 += c.Points
		} else {
			r.Caps2++
			r.Points2 += c.Points
		}
	}
}

func (r *EpisodeRecord) finalize(game *rules.Game) {
	r.Score1 = game.Score1
	r.Score2 = game.Score2
}
