//go:build tuple32

package tuple_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tuplestructops/tuple"
)

func TestBoundaries32(t *testing.T) {
	out := tuple.Join_16_16(
		tuple.MkT16(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15),
		tuple.MkT16(16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31),
	)
	qt.Assert(t, qt.Equals(out.Len(), 32))
	qt.Assert(t, qt.Equals(out.A15, 15))
	qt.Assert(t, qt.Equals(out.A16, 16))
	qt.Assert(t, qt.Equals(out.A31, 31))
	qt.Assert(t, qt.Equals(tuple.MaxArity, 32))

	left, right := out.Split16()
	qt.Assert(t, qt.Equals(tuple.Join_16_16(left, right), out))
}
