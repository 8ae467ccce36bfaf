/*
Package disjointset provides a disjoint-set (union-find) data structure over a
fixed universe of n elements, together with a random-pair client and an
experiment that measures how many random connections it takes to join
everything into one set.

# Overview

The DisjointSet type implements weighted quick-union with path compression
(HWQUPC):

  - Union attaches the root of the smaller tree under the root of the larger
    one, so no tree is ever taller than lg n.
  - Find relinks every node it visits directly to the root.

Together the two heuristics give O(α(n)) amortized time per operation, where
α is the inverse Ackermann function.

# Quick Start

	import ds "github.com/wallarm/disjoint-set"

	set, err := ds.New(5)
	if err != nil {
		// only for negative sizes
	}

	set.Union(0, 1) // 4 components
	set.Union(2, 3) // 3 components
	set.Union(1, 2) // 2 components

	ok, _ := set.Connected(0, 3) // true
	n := set.Components()         // 2

# Tie-breaking

When two trees of equal size are merged by Union(i, j), the root of j's tree
is attached under the root of i's tree. This only affects tree shape, never
the partition itself.

# Errors

New returns an error wrapping ErrInvalidArgument for a negative size. Find,
Union, Connect, Connected and Depth return an error wrapping
ErrIndexOutOfRange for an index outside [0, n). Rejected calls leave the set
unchanged. Use errors.Is to test for either condition.

# Thread Safety

A DisjointSet is meant for a single goroutine. Find mutates the structure
(path compression), so every method, Connected included, must be serialized
by the caller if an instance is shared.

# Random Pairs

Client repeatedly connects uniformly random pairs until one set remains and
reports how many Connect calls that took, counting pairs that were already
connected. The expected count grows like ½·n·ln n (see ExpectedPairs).

	count, err := ds.NewClient(seed).Count(1000)

Experiment runs many such trials for a doubling sequence of n, in parallel,
and memoizes the per-n results:

	exp, err := ds.NewExperiment(ds.ExperimentConfig{
		From:   1000,
		To:     1000000,
		Trials: 100,
	})
	results, err := exp.Run(ctx)

# Benchmarks

The benchmark sub-package holds a generic timer that runs a pre step, a
timed step and a post step, with warmup; the sorting sub-package holds the
insertion sort it is usually pointed at. The hwqupc command under cmd/ wires
all of these together.
*/
package disjointset
