package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snakeduel/engine/api"
)

var gameID string

func init() {
	statusCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the id of the live game to inspect")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "dumps the latest frame of a live game",
	Args: func(c *cobra.Command, args []string) error {
		if len(gameID) == 0 {
			return errors.New("game id is required")
		}
		return nil
	},
	Run: func(*cobra.Command, []string) {
		spew.Dump(getStatus(gameID))
	},
}

func getStatus(id string) *api.Frame {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("%s/games/%s", apiAddr, id))
	if err != nil {
		fmt.Println("error while calling status endpoint", err)
		return nil
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		fmt.Println("unable to read response body", err)
		return nil
	}

	frame := &api.Frame{}
	if err := json.Unmarshal(data, frame); err != nil {
		log.WithFields(log.Fields{
			"body": string(data),
		}).WithError(err).Error("unable to decode frame")
		return nil
	}
	return frame
}
