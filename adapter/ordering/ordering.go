// Package ordering contains the matchers that compare values by order, such
// as [GreaterThan] and [CloseTo].
package ordering

import (
	"math"

	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/comparer"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

var comparisonText = [...]string{"less than", "equal to", "greater than"}

// Comparison implements [base.SafeMatcher] for values ordered by a
// [domain.Comparer].
type Comparison struct {
	expected    any
	minCompare  int
	maxCompare  int
	description string
	comparer    domain.Comparer
}

func newComparison(expected any, minCompare, maxCompare int, description string, options []Option) domain.Matcher {
	c := &Comparison{
		expected:    expected,
		minCompare:  minCompare,
		maxCompare:  maxCompare,
		description: description,
		comparer:    comparer.NewComparer(),
	}
	for _, option := range options {
		option(c)
	}
	return base.NewTypeSafe[any](c, base.WithNarrow(c.narrow))
}

// GreaterThan returns a matcher that is satisfied by values greater than
// expected.
func GreaterThan(expected any, options ...Option) domain.Matcher {
	return newComparison(expected, 1, 1, "greater than", options)
}

// GreaterThanOrEqualTo returns a matcher that is satisfied by values greater
// than or equal to expected.
func GreaterThanOrEqualTo(expected any, options ...Option) domain.Matcher {
	return newComparison(expected, 0, 1, "equal to or greater than", options)
}

// LessThan returns a matcher that is satisfied by values less than expected.
func LessThan(expected any, options ...Option) domain.Matcher {
	return newComparison(expected, -1, -1, "less than", options)
}

// LessThanOrEqualTo returns a matcher that is satisfied by values less than or
// equal to expected.
func LessThanOrEqualTo(expected any, options ...Option) domain.Matcher {
	return newComparison(expected, -1, 0, "less than or equal to", options)
}

// ComparesEqualTo returns a matcher that is satisfied by values neither less
// nor greater than expected, such as 1 and 1.0.
func ComparesEqualTo(expected any, options ...Option) domain.Matcher {
	return newComparison(expected, 0, 0, "equal to", options)
}

// narrow only accepts values that can be ordered against the expected value.
func (c *Comparison) narrow(actual any) (any, bool) {
	return actual, c.comparer.Comparable(actual, c.expected)
}

// MatchesSafely implements [base.SafeMatcher].
func (c *Comparison) MatchesSafely(actual any) bool {
	comp, err := c.comparer.Compare(actual, c.expected)
	if err != nil {
		return false
	}
	comp = sign(comp)
	return c.minCompare <= comp && comp <= c.maxCompare
}

// DescribeMismatchSafely implements [base.SafeMismatchDescriber].
func (c *Comparison) DescribeMismatchSafely(actual any, d domain.Description) {
	comp, err := c.comparer.Compare(actual, c.expected)
	if err != nil {
		d.AppendValue(actual).AppendText(" could not be compared: ").AppendText(err.Error())
		return
	}
	d.AppendValue(actual).
		AppendText(" was ").
		AppendText(comparisonText[sign(comp)+1]).
		AppendText(" ").
		AppendValue(c.expected)
}

// DescribeTo implements [base.SafeMatcher].
func (c *Comparison) DescribeTo(d domain.Description) {
	d.AppendText("a value ").
		AppendText(c.description).
		AppendText(" ").
		AppendValue(c.expected)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Closeness implements [base.SafeMatcher] for numbers within a delta of an
// expected number.
type Closeness struct {
	value float64
	delta float64
}

// CloseTo returns a matcher that is satisfied by numbers of any type that
// differ from value by at most delta.
func CloseTo(value, delta float64) domain.Matcher {
	return base.NewTypeSafe[float64](&Closeness{
		value: value,
		delta: delta,
	}, base.WithNarrow(comparer.AsFloat))
}

// MatchesSafely implements [base.SafeMatcher].
func (c *Closeness) MatchesSafely(actual float64) bool {
	return c.actualDelta(actual) <= 0
}

// DescribeMismatchSafely implements [base.SafeMismatchDescriber].
func (c *Closeness) DescribeMismatchSafely(actual float64, d domain.Description) {
	d.AppendValue(actual).
		AppendText(" differed by ").
		AppendValue(c.actualDelta(actual)).
		AppendText(" more than delta ").
		AppendValue(c.delta)
}

// DescribeTo implements [base.SafeMatcher].
func (c *Closeness) DescribeTo(d domain.Description) {
	d.AppendText("a numeric value within ").
		AppendValue(c.delta).
		AppendText(" of ").
		AppendValue(c.value)
}

func (c *Closeness) actualDelta(actual float64) float64 {
	return math.Abs(actual-c.value) - c.delta
}
