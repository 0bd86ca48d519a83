// Package logic contains the matchers that combine or decorate other
// matchers: conjunction, disjunction, negation and the combinable chains
// built with [Both] and [Either].
package logic

import (
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

// shortcut evaluates its matchers in order and stops as soon as one of them
// returns stopOn.
type shortcut struct {
	matchers []domain.Matcher
	stopOn   bool
	operator string
}

// matches returns the combined result along with the matcher that decided
// it, which is nil if none of them returned stopOn.
func (s *shortcut) matches(actual any) (bool, domain.Matcher) {
	for _, m := range s.matchers {
		if m.Matches(actual) == s.stopOn {
			return s.stopOn, m
		}
	}
	return !s.stopOn, nil
}

// DescribeTo implements [domain.SelfDescribing].
func (s *shortcut) DescribeTo(d domain.Description) {
	d.AppendList("(", " "+s.operator+" ", ")", domain.SelfDescribings(s.matchers)...)
}

type allOf struct {
	shortcut
}

// AllOf returns a matcher that is satisfied only if every one of matchers is
// satisfied. Matchers are evaluated in order and evaluation stops at the first
// one that fails. An empty AllOf is always satisfied.
//
// The mismatch description only mentions the first failing matcher.
func AllOf(matchers ...domain.Matcher) domain.Matcher {
	return base.NewDiagnosing(&allOf{
		shortcut: shortcut{
			matchers: matchers,
			stopOn:   false,
			operator: "and",
		},
	})
}

// MatchesDiagnosing implements [base.Diagnoser].
func (a *allOf) MatchesDiagnosing(actual any, d domain.Description) bool {
	ok, failed := a.matches(actual)
	if !ok {
		d.AppendDescriptionOf(failed).AppendText(" ")
		failed.DescribeMismatch(actual, d)
	}
	return ok
}

type anyOf struct {
	shortcut
}

// AnyOf returns a matcher that is satisfied if at least one of matchers is
// satisfied. Matchers are evaluated in order and evaluation stops at the first
// one that succeeds. An empty AnyOf is never satisfied.
func AnyOf(matchers ...domain.Matcher) domain.Matcher {
	return &anyOf{
		shortcut: shortcut{
			matchers: matchers,
			stopOn:   true,
			operator: "or",
		},
	}
}

// Matches implements [domain.Matcher].
func (a *anyOf) Matches(actual any) bool {
	ok, _ := a.matches(actual)
	return ok
}

// DescribeMismatch implements [domain.Matcher].
func (a *anyOf) DescribeMismatch(actual any, d domain.Description) {
	base.DescribeMismatch(actual, d)
}
