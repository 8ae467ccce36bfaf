package main

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	"github.com/wallarm/disjoint-set/benchmark"
	"github.com/wallarm/disjoint-set/sorting"
)

var cmdSortBench = &subcommands.Command{
	UsageLine: "sortbench [-from <n>] [-to <n>] [-runs <m>]",
	ShortDesc: "times insertion sort on random, ordered, reverse and partially ordered input",
	LongDesc: `Times insertion sort for n = from, 2·from, 4·from, ... below to, on each
input order, and prints the mean milliseconds per sort.`,
	CommandRun: func() subcommands.CommandRun {
		c := &sortBenchRun{}
		c.registerCommonFlags()
		c.Flags.IntVar(&c.from, "from", 2000, "Smallest n.")
		c.Flags.IntVar(&c.to, "to", 35000, "Exclusive upper bound on n.")
		c.Flags.IntVar(&c.runs, "runs", 10, "Timed runs per measurement.")
		return c
	},
}

type sortBenchRun struct {
	commonFlags
	from, to, runs int
}

func (c *sortBenchRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if err := c.setup(a); err != nil {
		return c.fail(a, err)
	}
	if c.from < 1 {
		return c.fail(a, errors.Errorf("-from must be positive, got %d", c.from))
	}

	r := rand.New(rand.NewPCG(c.seed, c.seed))

	w := tabwriter.NewWriter(a.GetOut(), 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "n\t")
	for _, o := range sorting.Orders {
		fmt.Fprintf(w, "%s (ms)\t", o)
	}
	fmt.Fprintln(w)

	for n := c.from; n < c.to; n *= 2 {
		fmt.Fprintf(w, "%s\t", humanize.Comma(int64(n)))
		for _, o := range sorting.Orders {
			mean, err := timeSort(c, o, sorting.Generate(o, r, n))
			if err != nil {
				return c.fail(a, err)
			}
			fmt.Fprintf(w, "%.3f\t", benchmark.Millis(mean))
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return c.fail(a, err)
	}
	return 0
}

// timeSort times insertion sort over copies of input. Copying happens in the
// untimed pre step.
func timeSort(c *sortBenchRun, o sorting.Order, input []int) (mean time.Duration, err error) {
	var unsorted bool
	t := benchmark.Timer[[]int]{
		Description: fmt.Sprintf("%s sort, n=%d", o, len(input)),
		Pre:         func(xs []int) []int { return slices.Clone(xs) },
		Run:         func(xs []int) { sorting.Insertion(xs, 0, len(xs)) },
		Post: func(xs []int) {
			if !sorting.IsSorted(xs, 0, len(xs)) {
				unsorted = true
			}
		},
		Logger: c.log,
	}
	mean, err = t.RunWith(input, c.runs)
	if err == nil && unsorted {
		err = errors.Errorf("%s: output not sorted", t.Description)
	}
	return mean, err
}
