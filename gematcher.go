// Package gematcher provides composable matchers for expressing and checking
// expectations over arbitrary values, mostly in tests.
//
// A [Matcher] decides whether a value satisfies it, describes what it expects
// and explains why a given value was rejected. Matchers are built from the
// factories in this package and combined with [AllOf], [AnyOf], [Not],
// [Both] and [Either]. The result is checked with [AssertThat], [RequireThat]
// or [Check]:
//
//	gematcher.AssertThat(t, users, gematcher.HasItem(
//		gematcher.HasPropertyValue("Name", "ana"),
//	))
//
// Every factory is defined in a subpackage of adapter, so custom matchers can
// reuse the building blocks in [base] and [description].
package gematcher

import (
	"regexp"

	"github.com/google/go-cmp/cmp"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/collection"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/description"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/equality"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/expression"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/jsonpath"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/logic"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/object"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/ordering"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/text"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

var (
	// ErrNilMatcher is returned when a nil [Matcher] is passed to a function
	// that needs to evaluate it.
	ErrNilMatcher = domain.ErrNilMatcher
)

// Matcher evaluates whether a value satisfies a condition. See
// [domain.Matcher].
type Matcher = domain.Matcher

// Description is the text sink matchers describe themselves into.
type Description = domain.Description

// SelfDescribing is implemented by anything that can describe itself.
type SelfDescribing = domain.SelfDescribing

// Field names a value extracted from T, for use with [HasEqualValues].
type Field[T any] = domain.Field[T]

// Combinable is returned by [BothBuilder.And] and [EitherBuilder.Or] and is
// extended with [Combinable.And] and [Combinable.Or].
type Combinable = logic.Combinable

// BothBuilder is returned by [Both]. It only allows a conjunction.
type BothBuilder = logic.BothBuilder

// EitherBuilder is returned by [Either]. It only allows a disjunction.
type EitherBuilder = logic.EitherBuilder

// ErrMismatch is returned by [Check] when a value does not satisfy a matcher.
type ErrMismatch = domain.ErrMismatch

// ErrInvalidPattern is returned when a regex, glob or CEL pattern cannot be
// compiled.
type ErrInvalidPattern = domain.ErrInvalidPattern

// ErrNonStruct is returned by [HasEqualValues] when no field is given and
// the expected value is not a struct.
type ErrNonStruct = domain.ErrNonStruct

// ErrExpressionType is returned by [Satisfies] when the expression does not
// evaluate to a boolean.
type ErrExpressionType = domain.ErrExpressionType

// StringOf returns the description of v.
func StringOf(v SelfDescribing) string {
	return description.ToString(v)
}

// MismatchOf returns the description of why actual does not satisfy m.
func MismatchOf(m Matcher, actual any) string {
	return description.MismatchString(m, actual)
}

// AllOf matches when every matcher matches. See [logic.AllOf].
func AllOf(matchers ...Matcher) Matcher { return logic.AllOf(matchers...) }

// AnyOf matches when at least one matcher matches. See [logic.AnyOf].
func AnyOf(matchers ...Matcher) Matcher { return logic.AnyOf(matchers...) }

// Both starts a conjunction, completed with [BothBuilder.And].
func Both(m Matcher) *BothBuilder { return logic.Both(m) }

// Either starts a disjunction, completed with [EitherBuilder.Or].
func Either(m Matcher) *EitherBuilder { return logic.Either(m) }

// Not inverts m.
func Not(m Matcher) Matcher { return logic.Not(m) }

// NotValue is a shortcut for Not(EqualTo(value)).
func NotValue(value any) Matcher { return logic.NotValue(value) }

// Is decorates m for readability, without changing its behavior.
func Is(m Matcher) Matcher { return logic.Is(m) }

// IsValue is a shortcut for Is(EqualTo(value)).
func IsValue(value any) Matcher { return logic.IsValue(value) }

// IsA is a shortcut for Is(InstanceOf[T]()).
func IsA[T any]() Matcher { return logic.IsA[T]() }

// DescribedAs replaces the description of m. See [logic.DescribedAs].
func DescribedAs(template string, m Matcher, values ...any) Matcher {
	return logic.DescribedAs(template, m, values...)
}

// Anything matches every value.
func Anything() Matcher { return logic.Anything() }

// AnythingDescribed matches every value and is described by description.
func AnythingDescribed(description string) Matcher { return logic.AnythingDescribed(description) }

// EqualTo matches values equal to expected. See [equality.EqualTo].
func EqualTo(expected any) Matcher { return equality.EqualTo(expected) }

// DeepEqualTo matches values deeply equal to expected, reporting a diff on
// mismatch. See [equality.DeepEqualTo].
func DeepEqualTo(expected any, options ...cmp.Option) Matcher {
	return equality.DeepEqualTo(expected, options...)
}

// SameInstance matches the very same instance as target.
func SameInstance(target any) Matcher { return equality.SameInstance(target) }

// TheInstance is an alias of [SameInstance].
func TheInstance(target any) Matcher { return equality.TheInstance(target) }

// NullValue matches nil and nil pointers.
func NullValue() Matcher { return equality.NullValue() }

// NotNullValue matches everything but nil and nil pointers.
func NotNullValue() Matcher { return equality.NotNullValue() }

// ContainsString matches strings containing substring.
func ContainsString(substring string) Matcher { return text.ContainsString(substring) }

// ContainsStringIgnoringCase matches strings containing substring, ignoring
// case.
func ContainsStringIgnoringCase(substring string) Matcher {
	return text.ContainsStringIgnoringCase(substring)
}

// StartsWith matches strings starting with prefix.
func StartsWith(prefix string) Matcher { return text.StartsWith(prefix) }

// StartsWithIgnoringCase matches strings starting with prefix, ignoring case.
func StartsWithIgnoringCase(prefix string) Matcher { return text.StartsWithIgnoringCase(prefix) }

// EndsWith matches strings ending with suffix.
func EndsWith(suffix string) Matcher { return text.EndsWith(suffix) }

// EndsWithIgnoringCase matches strings ending with suffix, ignoring case.
func EndsWithIgnoringCase(suffix string) Matcher { return text.EndsWithIgnoringCase(suffix) }

// MatchesRegex matches strings entirely matched by pattern.
func MatchesRegex(pattern string) (Matcher, error) { return text.MatchesRegex(pattern) }

// MatchesRegexIgnoringCase is like [MatchesRegex] but ignores case.
func MatchesRegexIgnoringCase(pattern string) (Matcher, error) {
	return text.MatchesRegexIgnoringCase(pattern)
}

// MatchesRegexp matches strings entirely matched by re.
func MatchesRegexp(re *regexp.Regexp) Matcher { return text.MatchesRegexp(re) }

// MustMatchRegex is like [MatchesRegex] but panics on invalid patterns.
func MustMatchRegex(pattern string) Matcher { return text.MustMatchRegex(pattern) }

// MatchesPattern is like [MatchesRegex] but accepts backtracking syntax, such
// as lookarounds and backreferences.
func MatchesPattern(pattern string) (Matcher, error) { return text.MatchesPattern(pattern) }

// MustMatchPattern is like [MatchesPattern] but panics on invalid patterns.
func MustMatchPattern(pattern string) Matcher { return text.MustMatchPattern(pattern) }

// MatchesGlob matches strings matched by a glob pattern.
func MatchesGlob(pattern string, separators ...rune) (Matcher, error) {
	return text.MatchesGlob(pattern, separators...)
}

// MustMatchGlob is like [MatchesGlob] but panics on invalid patterns.
func MustMatchGlob(pattern string, separators ...rune) Matcher {
	return text.MustMatchGlob(pattern, separators...)
}

// IsUUID matches strings holding a UUID.
func IsUUID() Matcher { return text.IsUUID() }

// HasItem matches lists with at least one item matching m.
func HasItem(m Matcher) Matcher { return collection.HasItem(m) }

// HasItemValue is a shortcut for HasItem(EqualTo(value)).
func HasItemValue(value any) Matcher { return collection.HasItemValue(value) }

// HasItems matches lists in which every matcher finds an item.
func HasItems(matchers ...Matcher) Matcher { return collection.HasItems(matchers...) }

// HasItemValues matches lists containing every value.
func HasItemValues(values ...any) Matcher { return collection.HasItemValues(values...) }

// EveryItem matches lists whose items all match m.
func EveryItem(m Matcher) Matcher { return collection.EveryItem(m) }

// IterableWithSize matches lists whose size matches m.
func IterableWithSize(m Matcher) Matcher { return collection.IterableWithSize(m) }

// IterableWithSizeValue matches lists with exactly size items.
func IterableWithSizeValue(size int) Matcher { return collection.IterableWithSizeValue(size) }

// EmptyIterable matches empty lists.
func EmptyIterable() Matcher { return collection.EmptyIterable() }

// InstanceOf matches non-null values of type T.
func InstanceOf[T any]() Matcher { return object.InstanceOf[T]() }

// Any is an alias of [InstanceOf].
func Any[T any]() Matcher { return object.Any[T]() }

// TypeCompatibleWith matches reflect.Type values assignable to T.
func TypeCompatibleWith[T any]() Matcher { return object.TypeCompatibleWith[T]() }

// HasToString matches values whose string form matches m.
func HasToString(m Matcher) Matcher { return object.HasToString(m) }

// HasToStringValue matches values whose string form is expected.
func HasToStringValue(expected string) Matcher { return object.HasToStringValue(expected) }

// HasProperty matches values with a property at path matching m.
func HasProperty(path string, m Matcher) Matcher { return object.HasProperty(path, m) }

// HasPropertyValue matches values with value at path.
func HasPropertyValue(path string, value any) Matcher { return object.HasPropertyValue(path, value) }

// HasEqualValues matches values whose fields equal the fields of expected.
func HasEqualValues[T any](expected T, fields ...Field[T]) (Matcher, error) {
	return object.HasEqualValues(expected, fields...)
}

// MustHaveEqualValues is like [HasEqualValues] but panics on error.
func MustHaveEqualValues[T any](expected T, fields ...Field[T]) Matcher {
	return object.MustHaveEqualValues(expected, fields...)
}

// GreaterThan matches values greater than expected.
func GreaterThan(expected any) Matcher { return ordering.GreaterThan(expected) }

// GreaterThanOrEqualTo matches values greater than or equal to expected.
func GreaterThanOrEqualTo(expected any) Matcher { return ordering.GreaterThanOrEqualTo(expected) }

// LessThan matches values less than expected.
func LessThan(expected any) Matcher { return ordering.LessThan(expected) }

// LessThanOrEqualTo matches values less than or equal to expected.
func LessThanOrEqualTo(expected any) Matcher { return ordering.LessThanOrEqualTo(expected) }

// ComparesEqualTo matches values neither less nor greater than expected.
func ComparesEqualTo(expected any) Matcher { return ordering.ComparesEqualTo(expected) }

// CloseTo matches numbers within delta of value.
func CloseTo(value, delta float64) Matcher { return ordering.CloseTo(value, delta) }

// HasJSONPath matches JSON text with a value at path matching m.
func HasJSONPath(path string, m Matcher) Matcher { return jsonpath.HasJSONPath(path, m) }

// HasJSONPathValue matches JSON text with value at path.
func HasJSONPathValue(path string, value any) Matcher { return jsonpath.HasJSONPathValue(path, value) }

// IsJSON matches valid JSON text.
func IsJSON() Matcher { return jsonpath.IsJSON() }

// Satisfies matches values for which a CEL expression over actual is true.
func Satisfies(expr string) (Matcher, error) { return expression.Satisfies(expr) }

// MustSatisfy is like [Satisfies] but panics on invalid expressions.
func MustSatisfy(expr string) Matcher { return expression.MustSatisfy(expr) }

// DecodesTo matches values that, once decoded into T, match m.
func DecodesTo[T any](m Matcher) Matcher { return decoder.DecodesTo[T](m) }

// NewFeature builds a matcher over a feature extracted from values of type T.
// See [base.NewFeature].
func NewFeature[T, U any](m Matcher, featureDescription, featureName string, extract func(T) U) Matcher {
	return base.NewFeature(m, featureDescription, featureName, extract)
}
