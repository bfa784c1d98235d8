package tuplegen

import (
	"slices"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestArities(t *testing.T) {
	c := qt.New(t)
	c.Assert(slices.Collect(Arities(2, 5)), qt.DeepEquals, []int{2, 3, 4, 5})
	c.Assert(slices.Collect(Arities(0, 0)), qt.DeepEquals, []int{0})
	c.Assert(slices.Collect(Arities(3, 2)), qt.HasLen, 0)
}

func TestPartitions(t *testing.T) {
	c := qt.New(t)
	for n := 0; n <= 8; n++ {
		var want []Partition
		for l := 0; l <= n; l++ {
			want = append(want, Partition{
				Left:  count(l),
				Right: count(n)[l:],
			})
		}
		got := slices.Collect(Partitions(n))
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			c.Fatalf("partitions of %d (-want +got):\n%s", n, diff)
		}
		for _, p := range got {
			c.Assert(p.Arity(), qt.Equals, n)
		}
	}
}

func TestPartitionsUnique(t *testing.T) {
	c := qt.New(t)
	seen := make(map[int]bool)
	for p := range Partitions(16) {
		c.Assert(seen[len(p.Left)], qt.IsFalse, qt.Commentf("left length %d", len(p.Left)))
		seen[len(p.Left)] = true
	}
	c.Assert(seen, qt.HasLen, 17)
}

func TestPartitionsStop(t *testing.T) {
	c := qt.New(t)
	var got []int
	for p := range Partitions(10) {
		if len(p.Left) == 3 {
			break
		}
		got = append(got, len(p.Left))
	}
	c.Assert(got, qt.DeepEquals, []int{0, 1, 2})
}

func TestPartitionsReusable(t *testing.T) {
	c := qt.New(t)
	seq := Partitions(3)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	c.Assert(first, qt.CmpEquals(cmpopts.EquateEmpty()), second)
}
