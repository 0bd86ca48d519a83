// Package base contains the building blocks shared by every matcher: the
// default mismatch description, type narrowing and feature extraction.
//
// Leaf matchers are usually written as small types implementing
// [SafeMatcher] or [DiagnosingMatcher] for the type they accept, and wrapped
// with [NewTypeSafe] or [NewTypeSafeDiagnosing]. The wrapper rejects null
// values and values of other types before the leaf logic ever runs, so leaf
// implementations never have to check the dynamic type of their input.
package base

import (
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/description"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
	"github.com/vinicius-lino-figueiredo/gematcher/pkg/structure"
)

// DescribeMismatch appends the default mismatch description, "was" followed
// by the rendered value.
func DescribeMismatch(actual any, d domain.Description) {
	d.AppendText("was ").AppendValue(actual)
}

// IsNotNull reports whether actual is not null. If it is, "was null" is
// appended to d.
func IsNotNull(actual any, d domain.Description) bool {
	if structure.IsNull(actual) {
		d.AppendText("was null")
		return false
	}
	return true
}

// SafeMatcher is the logic of a matcher that only accepts non-null values of
// type T.
type SafeMatcher[T any] interface {
	domain.SelfDescribing
	// MatchesSafely is only called with non-null values of type T.
	MatchesSafely(actual T) bool
}

// SafeMismatchDescriber may be implemented by a [SafeMatcher] to replace the
// default mismatch description of values of the right type.
type SafeMismatchDescriber[T any] interface {
	DescribeMismatchSafely(actual T, d domain.Description)
}

// DiagnosingMatcher is the logic of a matcher that only accepts non-null
// values of type T and explains the mismatch while evaluating it.
type DiagnosingMatcher[T any] interface {
	domain.SelfDescribing
	// MatchesSafely reports whether actual matches, writing the reason to
	// d when it does not. It is only called with non-null values of type
	// T.
	MatchesSafely(actual T, d domain.Description) bool
}

// Diagnoser is the logic of a matcher that accepts any input and explains
// the mismatch while evaluating it.
type Diagnoser interface {
	domain.SelfDescribing
	// MatchesDiagnosing reports whether actual matches, writing the reason
	// to d when it does not.
	MatchesDiagnosing(actual any, d domain.Description) bool
}

// TypeSafe implements [domain.Matcher] for a [SafeMatcher].
type TypeSafe[T any] struct {
	impl   SafeMatcher[T]
	narrow func(any) (T, bool)
}

// NewTypeSafe returns an implementation of domain.Matcher that rejects null
// values and values that cannot be narrowed to T, delegating everything else
// to impl.
func NewTypeSafe[T any](impl SafeMatcher[T], options ...Option[T]) domain.Matcher {
	opts := newOptions(options)
	return &TypeSafe[T]{
		impl:   impl,
		narrow: opts.Narrow,
	}
}

// Matches implements [domain.Matcher].
func (m *TypeSafe[T]) Matches(actual any) bool {
	if structure.IsNull(actual) {
		return false
	}
	t, ok := m.narrow(actual)
	return ok && m.impl.MatchesSafely(t)
}

// DescribeTo implements [domain.Matcher].
func (m *TypeSafe[T]) DescribeTo(d domain.Description) {
	m.impl.DescribeTo(d)
}

// DescribeMismatch implements [domain.Matcher].
func (m *TypeSafe[T]) DescribeMismatch(actual any, d domain.Description) {
	if !IsNotNull(actual, d) {
		return
	}
	t, ok := m.narrow(actual)
	if !ok {
		d.AppendText("was a ").
			AppendText(structure.TypeName(actual)).
			AppendText(" (").
			AppendValue(actual).
			AppendText(")")
		return
	}
	if describer, ok := m.impl.(SafeMismatchDescriber[T]); ok {
		describer.DescribeMismatchSafely(t, d)
		return
	}
	DescribeMismatch(actual, d)
}

// TypeSafeDiagnosing implements [domain.Matcher] for a [DiagnosingMatcher].
type TypeSafeDiagnosing[T any] struct {
	impl   DiagnosingMatcher[T]
	narrow func(any) (T, bool)
}

// NewTypeSafeDiagnosing returns an implementation of domain.Matcher that
// rejects null values and values that cannot be narrowed to T, delegating
// everything else to impl.
func NewTypeSafeDiagnosing[T any](impl DiagnosingMatcher[T], options ...Option[T]) domain.Matcher {
	opts := newOptions(options)
	return &TypeSafeDiagnosing[T]{
		impl:   impl,
		narrow: opts.Narrow,
	}
}

// Matches implements [domain.Matcher].
func (m *TypeSafeDiagnosing[T]) Matches(actual any) bool {
	return m.matches(actual, description.NewNullDescription())
}

// DescribeTo implements [domain.Matcher].
func (m *TypeSafeDiagnosing[T]) DescribeTo(d domain.Description) {
	m.impl.DescribeTo(d)
}

// DescribeMismatch implements [domain.Matcher].
func (m *TypeSafeDiagnosing[T]) DescribeMismatch(actual any, d domain.Description) {
	m.matches(actual, d)
}

func (m *TypeSafeDiagnosing[T]) matches(actual any, d domain.Description) bool {
	if !IsNotNull(actual, d) {
		return false
	}
	t, ok := m.narrow(actual)
	if !ok {
		d.AppendText("was ").
			AppendText(structure.SimpleTypeName(actual)).
			AppendText(" ").
			AppendValue(actual)
		return false
	}
	return m.impl.MatchesSafely(t, d)
}

// Diagnosing implements [domain.Matcher] for a [Diagnoser].
type Diagnosing struct {
	impl Diagnoser
}

// NewDiagnosing returns an implementation of domain.Matcher that computes
// the match result and the mismatch description in the same pass.
func NewDiagnosing(impl Diagnoser) domain.Matcher {
	return &Diagnosing{impl: impl}
}

// Matches implements [domain.Matcher].
func (m *Diagnosing) Matches(actual any) bool {
	return m.impl.MatchesDiagnosing(actual, description.NewNullDescription())
}

// DescribeTo implements [domain.Matcher].
func (m *Diagnosing) DescribeTo(d domain.Description) {
	m.impl.DescribeTo(d)
}

// DescribeMismatch implements [domain.Matcher].
func (m *Diagnosing) DescribeMismatch(actual any, d domain.Description) {
	m.impl.MatchesDiagnosing(actual, d)
}

// Narrow is the default narrowing function, a plain type assertion.
func Narrow[T any](actual any) (T, bool) {
	t, ok := actual.(T)
	return t, ok
}
