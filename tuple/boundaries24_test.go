//go:build tuple24 || tuple32

package tuple_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tuplestructops/tuple"
)

func TestBoundaries24(t *testing.T) {
	out := tuple.Join_12_12(
		tuple.MkT12(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11),
		tuple.MkT12(12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23),
	)
	qt.Assert(t, qt.Equals(out.Len(), 24))
	qt.Assert(t, qt.Equals(out.A0, 0))
	qt.Assert(t, qt.Equals(out.A12, 12))
	qt.Assert(t, qt.Equals(out.A23, 23))
	qt.Assert(t, qt.Equals(tuple.Idx_24_17(out), 17))

	left, right := out.Split12()
	qt.Assert(t, qt.Equals(tuple.Join_12_12(left, right), out))
	qt.Assert(t, qt.IsTrue(tuple.MaxArity >= 24))
}
