package tuple

// Tuple is implemented by every tuple type in this package
// and by no other types.
type Tuple interface {
	// Len returns the arity of the tuple.
	Len() int

	tuple()
}

// Selector selects a single value from a tuple of type T.
// It is implemented by the FieldN_I types in this package
// and by no other types.
type Selector[T, V any] interface {
	// Index returns the position of the selected value.
	Index() int

	// Get returns the selected value of t.
	Get(t T) V

	// Ref returns a pointer to the selected value of *t.
	Ref(t *T) *V

	selector()
}
