// Package domain contains the core contracts of gematcher.
//
// This package defines the interfaces every matcher and description sink must
// implement, as well as the error types returned when a matcher cannot be
// constructed and the functional options used by the assertion front end.
package domain

// SelfDescribing is implemented by values that can write a human-readable
// description of themselves.
type SelfDescribing interface {
	// DescribeTo appends a description of the receiver to d.
	DescribeTo(d Description)
}

// Matcher evaluates whether a value satisfies a condition and explains both
// what it expects and why a given value was rejected.
//
// Implementations are immutable once constructed and hold no evaluation
// state, so the same Matcher can be used by multiple goroutines at once as
// long as each goroutine uses its own [Description].
type Matcher interface {
	// SelfDescribing appends what would satisfy this matcher, regardless of
	// any actual value.
	SelfDescribing

	// Matches reports whether actual satisfies the matcher. It must accept
	// nil and values of any dynamic type without panicking.
	Matches(actual any) bool

	// DescribeMismatch appends to d the reason why actual was rejected. It
	// is only meaningful if Matches(actual) returns false.
	DescribeMismatch(actual any, d Description)
}

// Description is a write-only text sink used to render matcher descriptions.
// Every method returns the receiver so calls can be chained.
type Description interface {
	// AppendText appends literal text.
	AppendText(text string) Description
	// AppendValue appends a rendered representation of value.
	AppendValue(value any) Description
	// AppendValueList appends rendered values between start and end,
	// separated by sep.
	AppendValueList(start, sep, end string, values ...any) Description
	// AppendDescriptionOf appends the self-description of v.
	AppendDescriptionOf(v SelfDescribing) Description
	// AppendList appends the self-descriptions of items between start and
	// end, separated by sep.
	AppendList(start, sep, end string, items ...SelfDescribing) Description
}

// DescriberFunc adapts a function into a [SelfDescribing].
type DescriberFunc func(d Description)

// DescribeTo implements [SelfDescribing].
func (f DescriberFunc) DescribeTo(d Description) { f(d) }

// SelfDescribings converts a slice of any SelfDescribing implementation into a
// slice usable by [Description.AppendList].
func SelfDescribings[T SelfDescribing](items []T) []SelfDescribing {
	res := make([]SelfDescribing, len(items))
	for n, item := range items {
		res[n] = item
	}
	return res
}

// Comparer defines the ordering used by ordering matchers.
type Comparer interface {
	// Compare returns a negative number if a is less than b, a positive
	// number if a is greater than b and zero if they are equal. An error
	// is returned if the values have no defined order.
	Compare(a, b any) (int, error)
	// Comparable reports whether a and b are of kinds that can be ordered
	// against each other.
	Comparable(a, b any) bool
}

// Decoder copies the content of a loosely typed source, such as a map, into
// the value pointed to by target.
type Decoder interface {
	Decode(source, target any) error
}
