// Package object contains the matchers that inspect values as objects: their
// dynamic type, their string form, their fields and nested properties.
package object

import (
	"fmt"
	stdreflect "reflect"
	"strings"

	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/equality"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
	"github.com/vinicius-lino-figueiredo/gematcher/pkg/structure"
)

type instanceOf[T any] struct{}

// InstanceOf returns a matcher that is satisfied by non-null values whose
// dynamic type is T or, if T is an interface, implements T.
func InstanceOf[T any]() domain.Matcher {
	return base.NewDiagnosing(instanceOf[T]{})
}

// Any is an alias of [InstanceOf].
func Any[T any]() domain.Matcher {
	return InstanceOf[T]()
}

// MatchesDiagnosing implements [base.Diagnoser].
func (instanceOf[T]) MatchesDiagnosing(actual any, d domain.Description) bool {
	if structure.IsNull(actual) {
		d.AppendText("null")
		return false
	}
	if _, ok := actual.(T); !ok {
		d.AppendValue(actual).AppendText(" is a " + structure.TypeName(actual))
		return false
	}
	return true
}

// DescribeTo implements [base.Diagnoser].
func (instanceOf[T]) DescribeTo(d domain.Description) {
	d.AppendText("an instance of ").AppendText(structure.TypeNameOf[T]())
}

type compatibleType struct {
	target stdreflect.Type
}

// TypeCompatibleWith returns a matcher over [stdreflect.Type] values that is
// satisfied by types assignable to T. If T is an interface, that means types
// implementing it.
func TypeCompatibleWith[T any]() domain.Matcher {
	return base.NewTypeSafe[stdreflect.Type](&compatibleType{
		target: stdreflect.TypeFor[T](),
	})
}

// MatchesSafely implements [base.SafeMatcher].
func (c *compatibleType) MatchesSafely(actual stdreflect.Type) bool {
	return actual.AssignableTo(c.target)
}

// DescribeMismatchSafely implements [base.SafeMismatchDescriber].
func (c *compatibleType) DescribeMismatchSafely(actual stdreflect.Type, d domain.Description) {
	d.AppendValue(actual.String())
}

// DescribeTo implements [base.SafeMatcher].
func (c *compatibleType) DescribeTo(d domain.Description) {
	d.AppendText("type < ").AppendText(c.target.String())
}

// HasToString returns a matcher that is satisfied by values whose string
// form, as returned by [fmt.Sprint], satisfies m. Values implementing
// [fmt.Stringer] are therefore represented by their String method.
func HasToString(m domain.Matcher) domain.Matcher {
	return base.NewFeature(m, "with String()", "String()", func(actual any) string {
		return fmt.Sprint(actual)
	})
}

// HasToStringValue is a shortcut for HasToString(equality.EqualTo(expected)).
func HasToStringValue(expected string) domain.Matcher {
	return HasToString(equality.EqualTo(expected))
}

type property struct {
	path    string
	parts   []string
	matcher domain.Matcher
}

// HasProperty returns a matcher that is satisfied by values with a property
// at path that satisfies m. The path is a dot-separated list of map keys,
// exported struct field names (or their gematcher tag name) and list indexes.
func HasProperty(path string, m domain.Matcher) domain.Matcher {
	var parts []string
	if path != "" {
		parts = strings.Split(path, ".")
	}
	return base.NewTypeSafeDiagnosing[any](&property{
		path:    path,
		parts:   parts,
		matcher: m,
	})
}

// HasPropertyValue is a shortcut for
// HasProperty(path, equality.EqualTo(value)).
func HasPropertyValue(path string, value any) domain.Matcher {
	return HasProperty(path, equality.EqualTo(value))
}

// MatchesSafely implements [base.DiagnosingMatcher].
func (p *property) MatchesSafely(actual any, d domain.Description) bool {
	value, ok := structure.Lookup(actual, p.parts...)
	if !ok {
		d.AppendText("no property ").AppendValue(p.path).AppendText(" in ").AppendValue(actual)
		return false
	}
	if !p.matcher.Matches(value) {
		d.AppendText("property ").AppendValue(p.path).AppendText(" ")
		p.matcher.DescribeMismatch(value, d)
		return false
	}
	return true
}

// DescribeTo implements [base.DiagnosingMatcher].
func (p *property) DescribeTo(d domain.Description) {
	d.AppendText("an object with property ").
		AppendValue(p.path).
		AppendText(" ").
		AppendDescriptionOf(p.matcher)
}
