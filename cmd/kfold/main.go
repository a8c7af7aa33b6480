// Command kfold runs the stochastic kinetic folding engine: it builds
// a starting structure from a sequence and an optional dot-bracket seed
// structure, simulates one or more independent Gillespie trajectories
// against it, and writes each to its own trajectory file.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	run(os.Args)
}

// run is separated from main for the same testability reason
// _examples/bebop-poly/poly/main.go separates it.
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:  "kfold",
		Usage: "Simulate stochastic RNA folding kinetics via the Gillespie algorithm.",
		Commands: []*cli.Command{
			foldCommand(),
			energyCommand(),
		},
	}
}
