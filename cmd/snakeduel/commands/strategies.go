package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snakeduel/engine/strategy"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "lists the registered strategies",
	Run: func(*cobra.Command, []string) {
		for _, name := range strategy.Names() {
			fmt.Println(name)
		}
	},
}
