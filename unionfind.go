package disjointset

import (
	"fmt"
)

// DisjointSet implements the union-find data structure over a fixed universe
// of n elements, identified by the indices 0..n-1. It uses weighted
// quick-union (union by size) together with full path compression, which
// gives near-constant O(α(n)) amortized time per operation, where α is the
// inverse Ackermann function.
//
// A DisjointSet is not safe for concurrent use. Find compresses paths in
// place, so even queries mutate the structure: callers sharing an instance
// between goroutines must serialize every call, Connected included.
type DisjointSet struct {
	parent     []int // parent[i] = parent of i in its tree; roots point to themselves
	size       []int // size[r] = number of elements in the tree rooted at r (roots only)
	components int   // number of distinct roots
	compress   bool  // whether Find relinks visited nodes to the root
}

// Option configures a DisjointSet at construction time.
type Option func(*DisjointSet)

// WithoutPathCompression disables path compression in Find, leaving plain
// weighted quick-union. It exists for benchmarking the heuristic.
func WithoutPathCompression() Option {
	return func(ds *DisjointSet) {
		ds.compress = false
	}
}

// New creates a DisjointSet of n singleton sets.
// It returns ErrInvalidArgument if n is negative.
func New(n int, opts ...Option) (*DisjointSet, error) {
	if n < 0 {
		return nil, invalidSize(n)
	}

	ds := &DisjointSet{
		parent:     make([]int, n),
		size:       make([]int, n),
		components: n,
		compress:   true,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	for _, opt := range opts {
		opt(ds)
	}
	return ds, nil
}

// Len returns the number of elements the set was created with.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Components returns the current number of disjoint sets.
//
// Time complexity: O(1)
func (ds *DisjointSet) Components() int {
	return ds.components
}

// Find returns the root of the tree containing i.
//
// Find is a mutating operation: every node on the path from i to the root is
// relinked to point directly at the root (full path compression), so that
// later lookups along the same path take a single step.
//
// Time complexity: O(α(n)) amortized
func (ds *DisjointSet) Find(i int) (int, error) {
	if err := ds.validate(i); err != nil {
		return 0, err
	}
	return ds.root(i), nil
}

// root is Find without bounds checks. Callers validate i first.
func (ds *DisjointSet) root(i int) int {
	r := i
	for ds.parent[r] != r {
		r = ds.parent[r]
	}
	if ds.compress {
		for i != r {
			i, ds.parent[i] = ds.parent[i], r
		}
	}
	return r
}

// Connected reports whether i and j belong to the same set.
// It compresses paths as a side effect of the underlying Find calls.
//
// Time complexity: O(α(n)) amortized
func (ds *DisjointSet) Connected(i, j int) (bool, error) {
	if err := ds.validatePair(i, j); err != nil {
		return false, err
	}
	return ds.root(i) == ds.root(j), nil
}

// Union merges the sets containing i and j.
//
// The root of the smaller tree is attached under the root of the larger one.
// When both trees have the same size, the root of j's tree is attached under
// the root of i's tree. Union of two elements that are already connected
// changes nothing, including the component count.
//
// Time complexity: O(α(n)) amortized
func (ds *DisjointSet) Union(i, j int) error {
	if err := ds.validatePair(i, j); err != nil {
		return err
	}

	ri := ds.root(i)
	rj := ds.root(j)

	// Already in the same set
	if ri == rj {
		return nil
	}

	if ds.size[ri] < ds.size[rj] {
		ds.parent[ri] = rj
		ds.size[rj] += ds.size[ri]
	} else {
		ds.parent[rj] = ri
		ds.size[ri] += ds.size[rj]
	}
	ds.components--
	return nil
}

// Connect is Union under the name used by the random-pair client.
func (ds *DisjointSet) Connect(i, j int) error {
	return ds.Union(i, j)
}

// Depth returns the number of parent links between i and its root.
// Unlike Find it does not compress the path, so it can be used to observe
// tree shape.
func (ds *DisjointSet) Depth(i int) (int, error) {
	if err := ds.validate(i); err != nil {
		return 0, err
	}
	depth := 0
	for ds.parent[i] != i {
		i = ds.parent[i]
		depth++
	}
	return depth, nil
}

func (ds *DisjointSet) String() string {
	return fmt.Sprintf("n=%d components=%d", len(ds.parent), ds.components)
}

func (ds *DisjointSet) validate(i int) error {
	if i < 0 || i >= len(ds.parent) {
		return outOfRange(i, len(ds.parent))
	}
	return nil
}

func (ds *DisjointSet) validatePair(i, j int) error {
	if err := ds.validate(i); err != nil {
		return err
	}
	return ds.validate(j)
}
