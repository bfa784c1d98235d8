package tuplegen

import (
	"iter"
	"slices"
)

// Arities returns the sequence of arities from lo to hi inclusive.
func Arities(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := lo; n <= hi; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// Partition divides the positions of a tuple into a prefix (Left)
// and the suffix that follows it (Right).
type Partition struct {
	Left  []int
	Right []int
}

// Arity returns the arity of the partitioned tuple.
func (p Partition) Arity() int {
	return len(p.Left) + len(p.Right)
}

// Partitions returns every partition of the positions of an n-tuple,
// in order of increasing prefix length. There are exactly n+1 of them.
//
// The slices in a yielded Partition must not be modified.
func Partitions(n int) iter.Seq[Partition] {
	pending := make([]int, n)
	for i := range pending {
		pending[i] = i
	}
	return func(yield func(Partition) bool) {
		partitions(nil, pending, yield)
	}
}

// partitions yields the partition with the given left and pending
// positions, then recurs with the first pending position moved to the
// left. It reports whether iteration should continue.
func partitions(left, pending []int, yield func(Partition) bool) bool {
	if !yield(Partition{Left: left, Right: pending}) {
		return false
	}
	if len(pending) == 0 {
		return true
	}
	return partitions(append(slices.Clone(left), pending[0]), pending[1:], yield)
}
