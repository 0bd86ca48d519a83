package logic

import (
	"regexp"
	"strconv"

	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/equality"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/object"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

var argPattern = regexp.MustCompile(`%([0-9]+)`)

type not struct {
	matcher domain.Matcher
}

// Not returns a matcher that inverts the result of m.
func Not(m domain.Matcher) domain.Matcher {
	return &not{matcher: m}
}

// NotValue is a shortcut for Not(equality.EqualTo(value)).
func NotValue(value any) domain.Matcher {
	return Not(equality.EqualTo(value))
}

// Matches implements [domain.Matcher].
func (n *not) Matches(actual any) bool {
	return !n.matcher.Matches(actual)
}

// DescribeTo implements [domain.Matcher].
func (n *not) DescribeTo(d domain.Description) {
	d.AppendText("not ").AppendDescriptionOf(n.matcher)
}

// DescribeMismatch implements [domain.Matcher].
func (n *not) DescribeMismatch(actual any, d domain.Description) {
	n.matcher.DescribeMismatch(actual, d)
}

type is struct {
	matcher domain.Matcher
}

// Is decorates m without changing its behavior, only prefixing its
// description with "is", for readability.
func Is(m domain.Matcher) domain.Matcher {
	return &is{matcher: m}
}

// IsValue is a shortcut for Is(equality.EqualTo(value)).
func IsValue(value any) domain.Matcher {
	return Is(equality.EqualTo(value))
}

// IsA is a shortcut for Is(object.InstanceOf[T]()).
func IsA[T any]() domain.Matcher {
	return Is(object.InstanceOf[T]())
}

// Matches implements [domain.Matcher].
func (i *is) Matches(actual any) bool {
	return i.matcher.Matches(actual)
}

// DescribeTo implements [domain.Matcher].
func (i *is) DescribeTo(d domain.Description) {
	d.AppendText("is ").AppendDescriptionOf(i.matcher)
}

// DescribeMismatch implements [domain.Matcher].
func (i *is) DescribeMismatch(actual any, d domain.Description) {
	i.matcher.DescribeMismatch(actual, d)
}

type describedAs struct {
	template string
	matcher  domain.Matcher
	values   []any
}

// DescribedAs wraps m, replacing its description with template. Occurrences
// of %0, %1 and so on in the template are replaced with the rendered value at
// that index of values. Matching and mismatch descriptions are delegated to m.
func DescribedAs(template string, m domain.Matcher, values ...any) domain.Matcher {
	return &describedAs{
		template: template,
		matcher:  m,
		values:   values,
	}
}

// Matches implements [domain.Matcher].
func (da *describedAs) Matches(actual any) bool {
	return da.matcher.Matches(actual)
}

// DescribeTo implements [domain.Matcher].
func (da *describedAs) DescribeTo(d domain.Description) {
	textStart := 0
	for _, loc := range argPattern.FindAllStringSubmatchIndex(da.template, -1) {
		index, err := strconv.Atoi(da.template[loc[2]:loc[3]])
		if err != nil || index >= len(da.values) {
			// unknown placeholders are kept as text
			continue
		}
		d.AppendText(da.template[textStart:loc[0]])
		d.AppendValue(da.values[index])
		textStart = loc[1]
	}
	if textStart < len(da.template) {
		d.AppendText(da.template[textStart:])
	}
}

// DescribeMismatch implements [domain.Matcher].
func (da *describedAs) DescribeMismatch(actual any, d domain.Description) {
	da.matcher.DescribeMismatch(actual, d)
}

type anything struct {
	description string
}

// Anything returns a matcher that is always satisfied.
func Anything() domain.Matcher {
	return AnythingDescribed("ANYTHING")
}

// AnythingDescribed returns a matcher that is always satisfied, described by
// the given text.
func AnythingDescribed(description string) domain.Matcher {
	return &anything{description: description}
}

// Matches implements [domain.Matcher].
func (a *anything) Matches(any) bool {
	return true
}

// DescribeTo implements [domain.Matcher].
func (a *anything) DescribeTo(d domain.Description) {
	d.AppendText(a.description)
}

// DescribeMismatch implements [domain.Matcher].
func (a *anything) DescribeMismatch(actual any, d domain.Description) {
	base.DescribeMismatch(actual, d)
}
