package main

import (
	"context"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"

	disjointset "github.com/wallarm/disjoint-set"
)

var cmdDoubling = &subcommands.Command{
	UsageLine: "doubling [-from <n>] [-to <n>] [-trials <k>] [-workers <w>]",
	ShortDesc: "relates the number of connections m to the number of objects n",
	LongDesc: `Runs the random-pair client for n = from, 2·from, 4·from, ... below to,
averaging several trials per n, and compares the mean with ½·n·ln n.`,
	CommandRun: func() subcommands.CommandRun {
		c := &doublingRun{}
		c.registerCommonFlags()
		c.Flags.IntVar(&c.from, "from", 1000, "Smallest n.")
		c.Flags.IntVar(&c.to, "to", 1000000, "Exclusive upper bound on n.")
		c.Flags.IntVar(&c.trials, "trials", 100, "Trials per n.")
		c.Flags.IntVar(&c.workers, "workers", 0, "Concurrent trials. Zero means GOMAXPROCS.")
		return c
	},
}

type doublingRun struct {
	commonFlags
	from, to, trials, workers int
}

func (c *doublingRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if err := c.setup(a); err != nil {
		return c.fail(a, err)
	}

	exp, err := disjointset.NewExperiment(disjointset.ExperimentConfig{
		From:    c.from,
		To:      c.to,
		Trials:  c.trials,
		Workers: c.workers,
		Seed:    c.seed,
		Logger:  c.log,
	})
	if err != nil {
		return c.fail(a, err)
	}

	results, err := exp.Run(context.Background())
	if err != nil {
		return c.fail(a, err)
	}

	w := tabwriter.NewWriter(a.GetOut(), 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "n\tmean m\tstddev\tm / (½ n ln n)\t")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.3f\t\n",
			humanize.Comma(int64(r.N)), humanize.Comma(int64(math.Round(r.Mean))), r.StdDev, r.Ratio)
	}
	if err := w.Flush(); err != nil {
		return c.fail(a, err)
	}
	return 0
}
