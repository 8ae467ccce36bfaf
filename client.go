package disjointset

import (
	"math"
	"math/rand/v2"
)

// Client drives a DisjointSet with uniformly random pairs until every element
// is connected. The random source is owned by the Client rather than shared
// process-wide, so runs are reproducible from a seed.
type Client struct {
	rng *rand.Rand
}

// NewClient creates a Client whose pairs are drawn from a PCG source seeded
// with seed.
func NewClient(seed uint64) *Client {
	return NewClientWithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewClientWithRand creates a Client drawing pairs from r.
func NewClientWithRand(r *rand.Rand) *Client {
	return &Client{rng: r}
}

// Count creates a DisjointSet of n elements and connects random pairs
// (a, b), a and b uniform in [0, n), until a single component remains.
// It returns the number of Connect calls issued, counting calls on pairs
// that were already connected.
//
// For n of 0 or 1 no pairs are needed and Count returns 0. opts are passed
// to New.
func (c *Client) Count(n int, opts ...Option) (int, error) {
	ds, err := New(n, opts...)
	if err != nil {
		return 0, err
	}

	count := 0
	for ds.Components() > 1 {
		a := c.rng.IntN(n)
		b := c.rng.IntN(n)
		if err := ds.Connect(a, b); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ExpectedPairs returns ½·n·ln(n), the approximate number of random pairs
// needed to reduce n singletons to one component.
func ExpectedPairs(n int) float64 {
	if n < 2 {
		return 0
	}
	return 0.5 * float64(n) * math.Log(float64(n))
}
