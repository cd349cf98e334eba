package commands

import (
	"context"
	"fmt"
	"math/rand"

	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/snakeduel/engine/config"
	"github.com/snakeduel/engine/rules"
	"github.com/snakeduel/engine/strategy"
)

var (
	watchStrategy1 string
	watchStrategy2 string
	watchSeed      int64
	watchMaxSteps  int64
)

func init() {
	watchCmd.Flags().StringVarP(&watchStrategy1, "strategy1", "1", "direct", "strategy for player 1")
	watchCmd.Flags().StringVarP(&watchStrategy2, "strategy2", "2", "balanced", "strategy for player 2")
	watchCmd.Flags().Int64VarP(&watchSeed, "seed", "s", 42, "seed for the game")
	watchCmd.Flags().Int64Var(&watchMaxSteps, "max-steps", 1000, "tick cap for the game")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "plays one game live in the terminal",
	Run: func(*cobra.Command, []string) {
		if err := watchGame(); err != nil {
			log.WithError(err).Fatal("watch failed")
		}
	},
}

// watchGame plays a single game at the playback tick rate. Space pauses,
// Esc quits.
func watchGame() error {
	rng := rand.New(rand.NewSource(watchSeed))
	s1, err := strategy.Build(watchStrategy1, rng)
	if err != nil {
		return err
	}
	s2, err := strategy.Build(watchStrategy2, rng)
	if err != nil {
		return err
	}
	game, err := rules.NewGame(rules.DefaultGameConfig(), rng)
	if err != nil {
		return err
	}

	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	eventQueue := setupEventQueue()
	limiter := rate.NewLimiter(config.TickRate, config.TickBurst)
	ticks := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		for {
			if err := limiter.Wait(ctx); err != nil {
				close(ticks)
				return
			}
			ticks <- struct{}{}
		}
	}()

	paused := false
	done := false
	winner := 0

	if err := render(game.Snapshot(), watchStrategy1, watchStrategy2); err != nil {
		return err
	}

	for steps := int64(0); !done && steps < watchMaxSteps; {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch ev.Key {
			case termbox.KeyEsc:
				done = true
			case termbox.KeySpace:
				paused = !paused
			}
		case <-ticks:
			if paused {
				continue
			}
			state := game.Snapshot()
			result, err := rules.AdvanceTick(game, s1.NextMove(state, 1), s2.NextMove(state, 2))
			steps++
			if err != nil || result.Winner != 0 {
				winner = result.Winner
				done = true
			}
			if err := render(game.Snapshot(), watchStrategy1, watchStrategy2); err != nil {
				return err
			}
		}
	}

	if winner != 0 {
		tbprint(0, 0, defaultColor, defaultColor, fmt.Sprintf("Player %d wins! Press any key to exit...", winner))
	} else {
		tbprint(0, 0, defaultColor, defaultColor, "Press any key to exit...")
	}
	if err := termbox.Flush(); err != nil {
		return err
	}
	termbox.PollEvent()
	return nil
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
