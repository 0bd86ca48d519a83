package gematcher

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/description"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

var defaultAsserter = NewAsserter()

// TestingT is the subset of [testing.TB] used by [Asserter.AssertThat].
type TestingT = assert.TestingT

// FailNowT is the subset of [testing.TB] used by [Asserter.RequireThat].
type FailNowT interface {
	TestingT
	FailNow()
}

type tHelper interface {
	Helper()
}

// AssertOption configures an [Asserter].
type AssertOption = domain.AssertOption

// WithLogger sets the logger that receives a debug event for every failed
// assertion. Defaults to a disabled logger.
func WithLogger(l zerolog.Logger) AssertOption {
	return domain.WithAssertLogger(l)
}

// WithDescriptionFactory sets the function that creates the description each
// assertion message is written into. The description must implement
// [fmt.Stringer].
func WithDescriptionFactory(f func() Description) AssertOption {
	return domain.WithAssertDescriptionFactory(f)
}

// Asserter checks values against matchers and reports failures.
type Asserter struct {
	logger         zerolog.Logger
	newDescription func() domain.Description
}

// NewAsserter returns an [Asserter] configured with options:
//
// - [WithLogger]: sets the logger for failed assertions.
//
// - [WithDescriptionFactory]: sets the description used to render messages.
func NewAsserter(options ...AssertOption) *Asserter {
	opts := domain.AssertOptions{
		Logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(&opts)
	}
	if opts.DescriptionFactory == nil {
		opts.DescriptionFactory = func() domain.Description {
			return description.NewStringDescription()
		}
	}
	return &Asserter{
		logger:         opts.Logger,
		newDescription: opts.DescriptionFactory,
	}
}

// Check returns nil if actual satisfies m, or an [*ErrMismatch] describing
// the expectation and the mismatch otherwise. A nil matcher results in
// [ErrNilMatcher].
func (a *Asserter) Check(reason string, actual any, m Matcher) error {
	if m == nil {
		return ErrNilMatcher
	}
	if m.Matches(actual) {
		return nil
	}

	expected := a.newDescription()
	expected.AppendDescriptionOf(m)
	mismatch := a.newDescription()
	m.DescribeMismatch(actual, mismatch)

	err := &domain.ErrMismatch{
		Reason:   reason,
		Expected: fmt.Sprint(expected),
		Actual:   fmt.Sprint(mismatch),
	}
	a.logger.Debug().
		Str("reason", err.Reason).
		Str("expected", err.Expected).
		Str("actual", err.Actual).
		Msg("assertion failed")
	return err
}

// AssertThat reports a failure to t if actual does not satisfy m, and
// returns whether the assertion passed. msgAndArgs are used as the failure
// reason, the first one being a format string if there are several.
func (a *Asserter) AssertThat(t TestingT, actual any, m Matcher, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	err := a.Check(messageFromMsgAndArgs(msgAndArgs...), actual, m)
	if err == nil {
		return true
	}
	return assert.Fail(t, err.Error())
}

// RequireThat is like [Asserter.AssertThat] but stops the test on failure.
func (a *Asserter) RequireThat(t FailNowT, actual any, m Matcher, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !a.AssertThat(t, actual, m, msgAndArgs...) {
		t.FailNow()
	}
}

// Check is [Asserter.Check] on a default [Asserter], without a reason.
func Check(actual any, m Matcher) error {
	return defaultAsserter.Check("", actual, m)
}

// AssertThat is [Asserter.AssertThat] on a default [Asserter].
func AssertThat(t TestingT, actual any, m Matcher, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return defaultAsserter.AssertThat(t, actual, m, msgAndArgs...)
}

// RequireThat is [Asserter.RequireThat] on a default [Asserter].
func RequireThat(t FailNowT, actual any, m Matcher, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	defaultAsserter.RequireThat(t, actual, m, msgAndArgs...)
}

func messageFromMsgAndArgs(msgAndArgs ...any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return fmt.Sprint(msgAndArgs...)
	}
}
