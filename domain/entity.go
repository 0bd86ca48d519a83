package domain

// Field names a data member of T and reads its current value. It is used by
// matchers that compare values member by member, where the list of members is
// given explicitly instead of being discovered at runtime.
type Field[T any] struct {
	// Name is used when describing the field.
	Name string
	// Value reads the field from an instance of T.
	Value func(T) any
}
