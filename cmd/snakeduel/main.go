package main

import (
	"math/rand"
	"time"

	"github.com/snakeduel/engine/cmd/snakeduel/commands"
)

func main() {
	rand.Seed(time.Now().UnixNano())
	commands.Execute()
}
