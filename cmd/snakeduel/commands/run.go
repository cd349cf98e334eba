package commands

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snakeduel/engine/rules"
	"github.com/snakeduel/engine/simulation"
)

// Each command binds its own flag variables: pflag writes the default
// into the bound variable at registration time, so sharing variables
// across commands would leave whichever init ran last in control.
var (
	runStrategy1 string
	runStrategy2 string
	runEpisodes  int
	runSeed      int64
	runWorkers   int
	runMaxSteps  int64
	runOut       string
)

func init() {
	runCmd.Flags().StringVarP(&runStrategy1, "strategy1", "1", "direct", "strategy for player 1")
	runCmd.Flags().StringVarP(&runStrategy2, "strategy2", "2", "balanced", "strategy for player 2")
	runCmd.Flags().IntVarP(&runEpisodes, "episodes", "n", 100, "number of episodes to run")
	runCmd.Flags().Int64VarP(&runSeed, "seed", "s", 42, "base seed for the batch")
	runCmd.Flags().IntVarP(&runWorkers, "workers", "w", runtime.NumCPU(), "parallel episode workers")
	runCmd.Flags().Int64Var(&runMaxSteps, "max-steps", simulation.DefaultMaxSteps, "tick cap per episode")
	runCmd.Flags().StringVarP(&runOut, "out", "o", "", "write per-episode records to this CSV file")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "runs a batch of episodes between two strategies",
	Run: func(*cobra.Command, []string) {
		prometheus()

		cfg := simulation.Config{
			Game:      rules.DefaultGameConfig(),
			Strategy1: runStrategy1,
			Strategy2: runStrategy2,
			Episodes:  runEpisodes,
			MaxSteps:  runMaxSteps,
			Seed:      runSeed,
			Workers:   runWorkers,
		}

		var rec simulation.Recorder = simulation.NopRecorder{}
		if runOut != "" {
			f, err := os.Create(runOut)
			if err != nil {
				log.WithError(err).WithField("path", runOut).Fatal("opening output file")
			}
			rec, err = simulation.NewCSVRecorder(f)
			if err != nil {
				log.WithError(err).Fatal("setting up csv recorder")
			}
		}
		rec = simulation.InstrumentRecorder(rec)

		res, err := simulation.RunBatch(interruptContext(), cfg, rec)
		if cerr := rec.Close(); cerr != nil {
			log.WithError(cerr).Error("closing recorder")
		}
		if err != nil {
			log.WithError(err).Fatal("batch failed")
		}

		if err := res.Aggregate.WriteReport(os.Stdout, runStrategy1, runStrategy2); err != nil {
			log.WithError(err).Fatal("writing report")
		}
	},
}

// interruptContext cancels on the first SIGINT/SIGTERM so a stopped batch
// still flushes what it has.
func interruptContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		log.Info("interrupted, finishing in-flight episodes")
		cancel()
	}()
	return ctx
}
