// Package collection contains the matchers over iterable values: slices,
// arrays and iter.Seq[any].
package collection

import (
	"iter"

	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/equality"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/logic"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
	"github.com/vinicius-lino-figueiredo/gematcher/pkg/structure"
)

// asItems narrows any iterable into its items.
var asItems = base.WithNarrow(structure.Items)

// asSeq narrows any iterable into a sequence that is only pulled as far as
// needed.
var asSeq = base.WithNarrow(func(actual any) (iter.Seq[any], bool) {
	seq, _, err := structure.Seq(actual)
	return seq, err == nil
})

// Containing implements [base.DiagnosingMatcher] for iterables that must
// contain at least one item satisfying a matcher.
type Containing struct {
	item domain.Matcher
}

// HasItem returns a matcher that is satisfied by iterables with at least one
// item satisfying m. Evaluation stops at the first item that does.
func HasItem(m domain.Matcher) domain.Matcher {
	return base.NewTypeSafeDiagnosing[iter.Seq[any]](&Containing{item: m}, asSeq)
}

// HasItemValue is a shortcut for HasItem(equality.EqualTo(value)).
func HasItemValue(value any) domain.Matcher {
	return HasItem(equality.EqualTo(value))
}

// HasItems returns a matcher that is satisfied by iterables containing, for
// each of matchers, at least one item satisfying it. The same item may
// satisfy more than one matcher.
func HasItems(matchers ...domain.Matcher) domain.Matcher {
	all := make([]domain.Matcher, len(matchers))
	for n, m := range matchers {
		all[n] = HasItem(m)
	}
	return logic.AllOf(all...)
}

// HasItemValues is a shortcut for HasItems with an equality matcher for each
// of values.
func HasItemValues(values ...any) domain.Matcher {
	all := make([]domain.Matcher, len(values))
	for n, v := range values {
		all[n] = HasItemValue(v)
	}
	return logic.AllOf(all...)
}

// MatchesSafely implements [base.DiagnosingMatcher].
func (c *Containing) MatchesSafely(seq iter.Seq[any], d domain.Description) bool {
	// rejected items are kept for the mismatch description
	var items []any
	for item := range seq {
		if c.item.Matches(item) {
			return true
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		d.AppendText("was empty")
		return false
	}
	d.AppendText("mismatches were: [")
	for n, item := range items {
		if n > 0 {
			d.AppendText(", ")
		}
		c.item.DescribeMismatch(item, d)
	}
	d.AppendText("]")
	return false
}

// DescribeTo implements [base.DiagnosingMatcher].
func (c *Containing) DescribeTo(d domain.Description) {
	d.AppendText("a collection containing ").AppendDescriptionOf(c.item)
}

// Every implements [base.DiagnosingMatcher] for iterables whose items must
// all satisfy a matcher.
type Every struct {
	item domain.Matcher
}

// EveryItem returns a matcher that is satisfied by iterables whose items all
// satisfy m. An empty iterable satisfies it. Only the first failing item is
// mentioned in the mismatch description.
func EveryItem(m domain.Matcher) domain.Matcher {
	return base.NewTypeSafeDiagnosing[iter.Seq[any]](&Every{item: m}, asSeq)
}

// MatchesSafely implements [base.DiagnosingMatcher].
func (e *Every) MatchesSafely(seq iter.Seq[any], d domain.Description) bool {
	for item := range seq {
		if !e.item.Matches(item) {
			d.AppendText("an item ")
			e.item.DescribeMismatch(item, d)
			return false
		}
	}
	return true
}

// DescribeTo implements [base.DiagnosingMatcher].
func (e *Every) DescribeTo(d domain.Description) {
	d.AppendText("every item is ").AppendDescriptionOf(e.item)
}

// IterableWithSize returns a matcher that is satisfied by iterables whose
// number of items satisfies m.
func IterableWithSize(m domain.Matcher) domain.Matcher {
	return base.NewFeature(m, "an iterable with size", "iterable size", func(items []any) int {
		return len(items)
	}, asItems)
}

// IterableWithSizeValue is a shortcut for
// IterableWithSize(equality.EqualTo(size)).
func IterableWithSizeValue(size int) domain.Matcher {
	return IterableWithSize(equality.EqualTo(size))
}

// EmptyIterable returns a matcher that is satisfied by iterables without
// items.
func EmptyIterable() domain.Matcher {
	return base.NewTypeSafe[[]any](empty{}, asItems)
}

type empty struct{}

// MatchesSafely implements [base.SafeMatcher].
func (empty) MatchesSafely(items []any) bool {
	return len(items) == 0
}

// DescribeTo implements [base.SafeMatcher].
func (empty) DescribeTo(d domain.Description) {
	d.AppendText("an empty iterable")
}

// DescribeMismatchSafely implements [base.SafeMismatchDescriber].
func (empty) DescribeMismatchSafely(items []any, d domain.Description) {
	d.AppendValueList("[", ",", "]", items...)
}
