package tuple_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tuplestructops/tuple"
)

func TestJoin(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.Join_1_1(tuple.MkT1(1), tuple.MkT1(2)), tuple.MkT2(1, 2)))
	qt.Assert(t, qt.Equals(
		tuple.Join_2_2(tuple.MkT2(1, 'a'), tuple.MkT2(2, 'b')),
		tuple.MkT4(1, 'a', 2, 'b'),
	))
}

func TestJoinOrder(t *testing.T) {
	a := tuple.MkT3("a0", 1, 2.5)
	b := tuple.MkT2(true, "b1")
	out := tuple.Join_3_2(a, b)
	qt.Assert(t, qt.Equals(out.Len(), 5))
	qt.Assert(t, qt.Equals(out.A0, a.A0))
	qt.Assert(t, qt.Equals(out.A1, a.A1))
	qt.Assert(t, qt.Equals(out.A2, a.A2))
	qt.Assert(t, qt.Equals(out.A3, b.A0))
	qt.Assert(t, qt.Equals(out.A4, b.A1))
}

func TestJoinRef(t *testing.T) {
	l := tuple.MkT2(1, 'a')
	r := tuple.MkT2(2, 'b')
	out := tuple.JoinRef_2_2(&l, &r)
	qt.Assert(t, qt.Equals(out.A0, &l.A0))
	qt.Assert(t, qt.Equals(out.A1, &l.A1))
	qt.Assert(t, qt.Equals(out.A2, &r.A0))
	qt.Assert(t, qt.Equals(out.A3, &r.A1))
	qt.Assert(t, qt.Equals(*out.A3, 'b'))

	// The operands are untouched and still usable.
	qt.Assert(t, qt.Equals(l, tuple.MkT2(1, 'a')))
	qt.Assert(t, qt.Equals(r, tuple.MkT2(2, 'b')))
}

func TestJoinUnit(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.Join_0_0(tuple.T0{}, tuple.T0{}), tuple.T0{}))
	qt.Assert(t, qt.Equals(tuple.Join_1_0(tuple.MkT1(1), tuple.T0{}), tuple.MkT1(1)))
	qt.Assert(t, qt.Equals(tuple.Join_0_1(tuple.T0{}, tuple.MkT1(1)), tuple.MkT1(1)))
	qt.Assert(t, qt.Equals(
		tuple.Join_0_3(tuple.MkT0(), tuple.MkT3(1, "x", 'y')),
		tuple.MkT3(1, "x", 'y'),
	))
}

func TestSplit(t *testing.T) {
	left, rest := tuple.MkT4(1, 'a', 2, 'b').Split2()
	a, b := left.T()
	qt.Assert(t, qt.Equals(a, 1))
	qt.Assert(t, qt.Equals(b, 'a'))
	qt.Assert(t, qt.Equals(rest, tuple.MkT2(2, 'b')))
}

func TestSplitLastThree(t *testing.T) {
	src := tuple.MkT8(1, 2, 3, 4, 5, 'a', 'b', 'c')
	left, last := src.Split5()
	a, b, c := last.T()
	qt.Assert(t, qt.Equals(left, tuple.MkT5(1, 2, 3, 4, 5)))
	qt.Assert(t, qt.Equals(a, 'a'))
	qt.Assert(t, qt.Equals(b, 'b'))
	qt.Assert(t, qt.Equals(c, 'c'))
}

func TestSplitRef(t *testing.T) {
	src := tuple.MkT4(1, 'a', 2, 'b')
	left, rest := tuple.SplitRef_4_2(&src)
	a, b := left.T()
	qt.Assert(t, qt.Equals(a, &src.A0))
	qt.Assert(t, qt.Equals(b, &src.A1))
	qt.Assert(t, qt.Equals(*a, 1))
	qt.Assert(t, qt.Equals(*b, 'a'))
	qt.Assert(t, qt.Equals(rest.A0, &src.A2))
	qt.Assert(t, qt.Equals(rest.A1, &src.A3))
	qt.Assert(t, qt.Equals(src, tuple.MkT4(1, 'a', 2, 'b')))
}

func TestSplitUnit(t *testing.T) {
	l, r := tuple.MkT0().Split0()
	qt.Assert(t, qt.Equals(l, tuple.T0{}))
	qt.Assert(t, qt.Equals(r, tuple.T0{}))

	l1, r0 := tuple.MkT1(1).Split1()
	qt.Assert(t, qt.Equals(l1, tuple.MkT1(1)))
	qt.Assert(t, qt.Equals(r0, tuple.T0{}))

	l0, r1 := tuple.MkT1(1).Split0()
	qt.Assert(t, qt.Equals(l0, tuple.T0{}))
	qt.Assert(t, qt.Equals(r1, tuple.MkT1(1)))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	src := tuple.MkT6(1, "two", 3.0, '4', true, uint8(6))

	l0, r0 := src.Split0()
	qt.Assert(t, qt.Equals(tuple.Join_0_6(l0, r0), src))
	l1, r1 := src.Split1()
	qt.Assert(t, qt.Equals(tuple.Join_1_5(l1, r1), src))
	l2, r2 := src.Split2()
	qt.Assert(t, qt.Equals(tuple.Join_2_4(l2, r2), src))
	l3, r3 := src.Split3()
	qt.Assert(t, qt.Equals(tuple.Join_3_3(l3, r3), src))
	l4, r4 := src.Split4()
	qt.Assert(t, qt.Equals(tuple.Join_4_2(l4, r4), src))
	l5, r5 := src.Split5()
	qt.Assert(t, qt.Equals(tuple.Join_5_1(l5, r5), src))
	l6, r6 := src.Split6()
	qt.Assert(t, qt.Equals(tuple.Join_6_0(l6, r6), src))
}

func TestSplitRefJoinRoundTrip(t *testing.T) {
	src := tuple.MkT3([]int{1}, map[string]int{"a": 1}, "c")
	l, r := tuple.SplitRef_3_1(&src)
	out := tuple.Join_1_2(l, r)
	qt.Assert(t, qt.Equals(out, tuple.Ref_3(&src)))

	// Borrowing the borrowed halves still reaches the fields of src.
	qt.Assert(t, qt.Equals(*tuple.JoinRef_1_2(&l, &r).A2, &src.A2))
}

func TestBoundaries(t *testing.T) {
	out := tuple.Join_8_8(
		tuple.MkT8(0, 1, 2, 3, 4, 5, 6, 7),
		tuple.MkT8(8, 9, 10, 11, 12, 13, 14, 15),
	)
	qt.Assert(t, qt.Equals(out, tuple.MkT16(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)))
	qt.Assert(t, qt.Equals(out.Len(), 16))
	qt.Assert(t, qt.IsTrue(tuple.MaxArity >= 16))
}

func TestIdx(t *testing.T) {
	src := tuple.MkT3(1, 'a', 2.3)
	qt.Assert(t, qt.Equals(tuple.Idx_3_1(src), 'a'))
	qt.Assert(t, qt.Equals(src.Idx0(), 1))
	qt.Assert(t, qt.Equals(src.Idx1(), 'a'))
	qt.Assert(t, qt.Equals(src.Idx2(), 2.3))
}

func TestIdxRef(t *testing.T) {
	src := tuple.MkT3(1, 'a', []string{"x"})
	qt.Assert(t, qt.Equals(src.IdxRef1(), &src.A1))
	qt.Assert(t, qt.Equals(tuple.IdxRef_3_2(&src), &src.A2))

	*src.IdxRef0() = 5
	qt.Assert(t, qt.Equals(src.A0, 5))
}

func TestField(t *testing.T) {
	src := tuple.MkT3(1, 'a', "b")
	var f tuple.Field3_2[int, rune, string]
	qt.Assert(t, qt.Equals(f.Index(), 2))
	qt.Assert(t, qt.Equals(f.Index(), tuple.Field3_2Index))
	qt.Assert(t, qt.Equals(f.Get(src), "b"))
	qt.Assert(t, qt.Equals(f.Ref(&src), &src.A2))

	qt.Assert(t, qt.Equals(describe[tuple.T3[int, rune, string], rune](tuple.Field3_1[int, rune, string]{}, src), "1=97"))
	qt.Assert(t, qt.Equals(describe[tuple.T3[int, rune, string], string](f, src), "2=b"))
}

// describe is an example of generic code that learns which
// position a selector refers to.
func describe[T, V any](s tuple.Selector[T, V], t T) string {
	return fmt.Sprintf("%d=%v", s.Index(), s.Get(t))
}

func TestRef(t *testing.T) {
	src := tuple.MkT2("a", 1)
	ref := tuple.Ref_2(&src)
	qt.Assert(t, qt.Equals(ref.A0, &src.A0))
	qt.Assert(t, qt.Equals(ref.A1, &src.A1))
	*ref.A1 = 2
	qt.Assert(t, qt.Equals(src.A1, 2))
}

func TestLen(t *testing.T) {
	tuples := []tuple.Tuple{
		tuple.MkT0(),
		tuple.MkT1("a"),
		tuple.MkT2(1, 2),
		tuple.MkT5(1, 2, 3, 4, 5),
	}
	var lens []int
	for _, tup := range tuples {
		lens = append(lens, tup.Len())
	}
	qt.Assert(t, qt.DeepEquals(lens, []int{0, 1, 2, 5}))
}

func TestT(t *testing.T) {
	a, b, c := tuple.MkT3("a", 1, true).T()
	qt.Assert(t, qt.Equals(a, "a"))
	qt.Assert(t, qt.Equals(b, 1))
	qt.Assert(t, qt.IsTrue(c))
	qt.Assert(t, qt.Equals(tuple.MkT1(4).T(), 4))
}

func TestRefUnit(t *testing.T) {
	var u tuple.T0
	qt.Assert(t, qt.Equals(tuple.Ref_0(&u), tuple.T0{}))
	l, r := tuple.SplitRef_0_0(&u)
	qt.Assert(t, qt.Equals(l, tuple.T0{}))
	qt.Assert(t, qt.Equals(r, tuple.T0{}))
}

func TestFieldIndexConstant(t *testing.T) {
	// The index constants can size arrays, so they are known at
	// compile time.
	var byIndex [tuple.Field3_2Index + 1]string
	qt.Assert(t, qt.HasLen(byIndex[:], 3))
	qt.Assert(t, qt.Equals(tuple.Field16_15Index, 15))
	qt.Assert(t, qt.Equals(tuple.Field1_0[bool]{}.Index(), tuple.Field1_0Index))
}
