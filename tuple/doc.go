// Package tuple provides generic struct types that hold a fixed number
// of values, together with operations that rearrange them:
// joining two tuples into one, splitting one tuple into a prefix and
// a suffix, and extracting a single value by position.
//
// The tuple of arity N is TN, with type parameters A0 to AN-1 and
// fields of the same names. T0 is the empty tuple.
//
// Every operation is an ordinary generic function or method and the
// positions involved are part of its name, so an operation that does
// not make sense for a given shape simply does not exist:
//
//	Join_L_R(l, r)         l's values followed by r's; TL + TR -> TN
//	JoinRef_L_R(&l, &r)    the same, as pointers into l and r
//	t.SplitL()             the first L values of t and the rest
//	SplitRef_N_L(&t)       the same, as pointers into t
//	t.IdxI(), Idx_N_I(t)   the value at index I
//	t.IdxRefI()            a pointer to the value at index I
//	Ref_N(&t)              t as a tuple of pointers into t
//	FieldN_I               a Selector for index I of TN
//	FieldN_IIndex          the constant I
//
// For example:
//
//	out := tuple.Join_3_2(tuple.MkT3(1, 'a', "b"), tuple.MkT2(1.0, 2.0))
//	left, rest := out.Split2()
//
// The Ref forms never copy a value: each result field points at the
// corresponding field of the operand, which remains usable. Those that
// produce a tuple of pointers are functions rather than methods, since
// a method of TN cannot mention TN[*A0, ...].
//
// Arities up to 16 are always available. Building with the tuple24 tag
// raises the limit to 24 and building with tuple32 raises it to 32, at
// the cost of considerably more code to compile. MaxArity holds the
// limit in effect.
package tuple

//go:generate go run ../cmd/tuplegen -config tuplegen.yaml
