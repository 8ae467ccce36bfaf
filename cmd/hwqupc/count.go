package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	disjointset "github.com/wallarm/disjoint-set"
)

var cmdCount = &subcommands.Command{
	UsageLine: "count -n <objects> [-seed <seed>]",
	ShortDesc: "counts random connections needed to join n objects",
	LongDesc: `Creates n singleton sets and connects uniformly random pairs until a
single set remains, then prints how many connections were made.`,
	CommandRun: func() subcommands.CommandRun {
		c := &countRun{}
		c.registerCommonFlags()
		c.Flags.IntVar(&c.n, "n", -1, "Number of objects.")
		return c
	},
}

type countRun struct {
	commonFlags
	n int
}

func (c *countRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if err := c.setup(a); err != nil {
		return c.fail(a, err)
	}
	if len(args) != 0 {
		return c.fail(a, errors.Errorf("unexpected arguments %q", args))
	}
	if c.n < 0 {
		return c.fail(a, errors.New("-n is required and must be non-negative"))
	}

	count, err := disjointset.NewClient(c.seed).Count(c.n)
	if err != nil {
		return c.fail(a, err)
	}
	fmt.Fprintf(a.GetOut(), "The number of objects is %s, and the number of connections is %s\n",
		humanize.Comma(int64(c.n)), humanize.Comma(int64(count)))
	return 0
}
