// Package sorting provides insertion sort and the input orders it is
// benchmarked against.
package sorting

import (
	"golang.org/x/exp/constraints"
)

// Insertion sorts xs[from:to] in place in ascending order. It is stable.
// Elements outside the range are left untouched.
func Insertion[T constraints.Ordered](xs []T, from, to int) {
	for i := from + 1; i < to; i++ {
		for j := i; j > from && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

// IsSorted reports whether xs[from:to] is in ascending order.
func IsSorted[T constraints.Ordered](xs []T, from, to int) bool {
	for i := from + 1; i < to; i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}
	return true
}
