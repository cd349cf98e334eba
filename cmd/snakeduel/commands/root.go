package commands

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snakeduel/engine/version"
)

var rootCmd = &cobra.Command{
	Use:     "snakeduel",
	Short:   "snakeduel runs two-snake strategy duels",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		runCmd.Run(c, args)
	},
}

var (
	apiAddr    string
	promEnable bool
	promListen = ":9000"
)

// Execute runs the root command.
func Execute() {
	rootCmd.PersistentFlags().StringVar(&apiAddr, "api-addr", "http://localhost:3005", "address of the api server")
	rootCmd.PersistentFlags().BoolVar(&promEnable, "prometheus", false, "enable prometheus metrics")
	rootCmd.PersistentFlags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tournamentCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func prometheus() {
	if !promEnable {
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
