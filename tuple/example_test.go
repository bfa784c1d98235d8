package tuple_test

import (
	"fmt"

	"github.com/rogpeppe/tuplestructops/tuple"
)

func Example_join() {
	out := tuple.Join_3_2(tuple.MkT3(1, "a", "b"), tuple.MkT2(1.5, 2.5))
	fmt.Println(out)
	fmt.Println(tuple.Join_0_3(tuple.T0{}, tuple.MkT3(1, 2, 3)))
	// Output:
	// {1 a b 1.5 2.5}
	// {1 2 3}
}

func Example_split() {
	sometuple := tuple.MkT8(1, 2, 3, 4, 5, "a", "b", "c")
	left, last := sometuple.Split5()
	a, b, c := last.T()
	fmt.Println(left, a, b, c)
	// Output:
	// {1 2 3 4 5} a b c
}

func Example_index() {
	t := tuple.MkT3(1, "a", 2.3)
	fmt.Println(tuple.Idx_3_1(t), t.Idx2())

	var f tuple.Field3_1[int, string, float64]
	fmt.Println(f.Index(), f.Get(t))
	// Output:
	// a 2.3
	// 1 a
}
