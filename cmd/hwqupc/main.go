// Command hwqupc runs the disjoint-set client and the timing experiments.
package main

import (
	"os"

	"github.com/maruel/subcommands"
)

var application = &subcommands.DefaultApplication{
	Name:  "hwqupc",
	Title: "Weighted quick-union with path compression: client and benchmarks",
	Commands: []*subcommands.Command{
		cmdCount,
		cmdDoubling,
		cmdSortBench,
		cmdUnionBench,
		subcommands.CmdHelp,
	},
}

func main() {
	os.Exit(subcommands.Run(application, nil))
}
