package sorting

import (
	"math/rand/v2"
)

// Order names an arrangement of benchmark input.
type Order string

const (
	OrderRandom  Order = "random"
	OrderOrdered Order = "ordered"
	OrderReverse Order = "reverse"
	OrderPartial Order = "partial"
)

// Orders lists every input order, in reporting order.
var Orders = []Order{OrderRandom, OrderOrdered, OrderReverse, OrderPartial}

// Random returns n values drawn uniformly from [0, n).
func Random(r *rand.Rand, n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = r.IntN(n)
	}
	return xs
}

// Ordered returns 1..n.
func Ordered(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i + 1
	}
	return xs
}

// Reverse returns n..1.
func Reverse(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = n - i
	}
	return xs
}

// Partial returns a slice whose first half (indices up to n/2) is 0, 1, 2, ...
// and whose remainder is drawn uniformly from [0, n).
func Partial(r *rand.Rand, n int) []int {
	xs := make([]int, n)
	for i := range xs {
		if i > n/2 {
			xs[i] = r.IntN(n)
		} else {
			xs[i] = i
		}
	}
	return xs
}

// Generate returns n values arranged in the given order. It returns nil for
// an unknown order.
func Generate(o Order, r *rand.Rand, n int) []int {
	switch o {
	case OrderRandom:
		return Random(r, n)
	case OrderOrdered:
		return Ordered(n)
	case OrderReverse:
		return Reverse(n)
	case OrderPartial:
		return Partial(r, n)
	}
	return nil
}
