package base

// WithNarrow sets the function used to convert the input of a type-safe
// matcher into T. It should report false for values it cannot convert. A nil
// function is ignored.
func WithNarrow[T any](f func(any) (T, bool)) Option[T] {
	return func(o *Options[T]) {
		if f != nil {
			o.Narrow = f
		}
	}
}

// Option configures type narrowing through the functional options pattern.
type Option[T any] func(*Options[T])

// Options contains the parameters used by type-safe matchers.
type Options[T any] struct {
	// Narrow converts the input of the matcher into T.
	Narrow func(any) (T, bool)
}

func newOptions[T any](options []Option[T]) Options[T] {
	opts := Options[T]{Narrow: Narrow[T]}
	for _, option := range options {
		option(&opts)
	}
	return opts
}
