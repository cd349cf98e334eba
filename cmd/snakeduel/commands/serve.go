package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snakeduel/engine/api"
)

var apiListen = ":3005"

func init() {
	serveCmd.Flags().StringVarP(&apiListen, "listen", "l", apiListen, "api address to listen on")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves live games over http for browser viewers",
	Run: func(*cobra.Command, []string) {
		prometheus()

		server := api.New(apiListen)
		if err := server.WaitForExit(); err != nil {
			log.WithError(err).WithField("listen", apiListen).Fatal("api server failed")
		}
	},
}
