//go:build !tuple24 && !tuple32

package tuple_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tuplestructops/tuple"
)

func TestMaxArity16(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.MaxArity, 16))
}
