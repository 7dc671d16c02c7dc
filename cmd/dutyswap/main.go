package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// App data structure
var App = cli.App{
	Name:     "Duty Swap Optimizer",
	HelpName: "dutyswap",
	Usage:    "match duty swap requests into disjoint exchange chains",
	Commands: []*cli.Command{
		&OptimizeCommand,
		&ServeCommand,
		&GenerateCommand,
	},
}

// main implements dutyswap functions
func main() {
	if err := App.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
