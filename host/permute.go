package host

import (
	"iter"
	"slices"
)

// Permutations yields every ordering of items, using Heap's algorithm.
// Each yielded slice is a fresh copy.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		perm := slices.Clone(items)
		if !yield(slices.Clone(perm)) {
			return
		}

		c := make([]int, len(perm))
		for n := 1; n < len(perm); {
			if c[n] < n {
				if n%2 == 0 {
					perm[0], perm[n] = perm[n], perm[0]
				} else {
					perm[c[n]], perm[n] = perm[n], perm[c[n]]
				}
				if !yield(slices.Clone(perm)) {
					return
				}
				c[n]++
				n = 1
			} else {
				c[n] = 0
				n++
			}
		}
	}
}
