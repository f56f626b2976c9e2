package main

import (
	"os"

	"todolist/internal/cli"
	"todolist/internal/clock"
)

func main() {
	// cobra has already printed the error.
	if err := cli.NewRootCommand(clock.RealClock{}).Execute(); err != nil {
		os.Exit(1)
	}
}
