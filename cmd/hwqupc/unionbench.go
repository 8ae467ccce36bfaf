package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	disjointset "github.com/wallarm/disjoint-set"
	"github.com/wallarm/disjoint-set/benchmark"
)

var cmdUnionBench = &subcommands.Command{
	UsageLine: "unionbench [-n <objects>] [-runs <m>]",
	ShortDesc: "times the random-pair client with and without path compression",
	CommandRun: func() subcommands.CommandRun {
		c := &unionBenchRun{}
		c.registerCommonFlags()
		c.Flags.IntVar(&c.n, "n", 100000, "Number of objects.")
		c.Flags.IntVar(&c.runs, "runs", 20, "Timed runs per variant.")
		return c
	},
}

type unionBenchRun struct {
	commonFlags
	n, runs int
}

func (c *unionBenchRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if err := c.setup(a); err != nil {
		return c.fail(a, err)
	}

	variants := []struct {
		name string
		opts []disjointset.Option
	}{
		{"weighted, path compression", nil},
		{"weighted only", []disjointset.Option{disjointset.WithoutPathCompression()}},
	}

	w := tabwriter.NewWriter(a.GetOut(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "variant\tn\tmean (ms)\n")
	for _, v := range variants {
		client := disjointset.NewClient(c.seed)
		var runErr error
		t := benchmark.Timer[int]{
			Description: v.name,
			Run: func(n int) {
				if _, err := client.Count(n, v.opts...); err != nil && runErr == nil {
					runErr = err
				}
			},
			Logger: c.log,
		}
		mean, err := t.RunWith(c.n, c.runs)
		if err == nil {
			err = runErr
		}
		if err != nil {
			return c.fail(a, errors.Wrap(err, v.name))
		}
		fmt.Fprintf(w, "%s\t%s\t%.3f\n", v.name, humanize.Comma(int64(c.n)), benchmark.Millis(mean))
	}
	if err := w.Flush(); err != nil {
		return c.fail(a, err)
	}
	return 0
}
