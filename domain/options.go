package domain

import "github.com/rs/zerolog"

// WithAssertLogger sets the logger used to report failed assertions. Failed
// assertions are logged at debug level.
func WithAssertLogger(l zerolog.Logger) AssertOption {
	return func(ao *AssertOptions) {
		ao.Logger = l
	}
}

// WithAssertDescriptionFactory sets the function used to create the
// [Description] every assertion renders its message into.
func WithAssertDescriptionFactory(f func() Description) AssertOption {
	return func(ao *AssertOptions) {
		ao.DescriptionFactory = f
	}
}

// AssertOption configures the assertion front end through the functional
// options pattern.
type AssertOption func(*AssertOptions)

// AssertOptions contains the parameters used by the assertion front end.
type AssertOptions struct {
	// Logger receives a debug event for every failed assertion.
	Logger zerolog.Logger
	// DescriptionFactory creates a new description for each assertion.
	DescriptionFactory func() Description
}
