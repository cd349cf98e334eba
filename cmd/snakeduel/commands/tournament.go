package commands

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snakeduel/engine/rules"
	"github.com/snakeduel/engine/simulation"
	"github.com/snakeduel/engine/strategy"
)

var (
	tournamentStrategies []string
	tournamentEpisodes   int
	tournamentSeed       int64
	tournamentWorkers    int
	tournamentOut        string
)

func init() {
	tournamentCmd.Flags().StringSliceVar(&tournamentStrategies, "strategies", strategy.Names(), "strategies to pit against each other")
	tournamentCmd.Flags().IntVarP(&tournamentEpisodes, "episodes", "n", 50, "episodes per matchup cell")
	tournamentCmd.Flags().Int64VarP(&tournamentSeed, "seed", "s", 42, "base seed shared by every cell")
	tournamentCmd.Flags().IntVarP(&tournamentWorkers, "workers", "w", 4, "parallel episode workers")
	tournamentCmd.Flags().StringVarP(&tournamentOut, "out", "o", "tournament.csv", "summary CSV file")
}

var tournamentCmd = &cobra.Command{
	Use:   "tournament",
	Short: "runs every strategy pair across every opening position",
	Run: func(*cobra.Command, []string) {
		prometheus()

		f, err := os.Create(tournamentOut)
		if err != nil {
			log.WithError(err).WithField("path", tournamentOut).Fatal("opening output file")
		}
		defer f.Close()

		cfg := simulation.TournamentConfig{
			Strategies: tournamentStrategies,
			Base: simulation.Config{
				Game:     rules.DefaultGameConfig(),
				Episodes: tournamentEpisodes,
				Seed:     tournamentSeed,
				Workers:  tournamentWorkers,
			},
		}
		if err := simulation.RunTournament(interruptContext(), cfg, f); err != nil {
			log.WithError(err).Fatal("tournament failed")
		}
		log.WithField("path", tournamentOut).Info("tournament finished")
	},
}
