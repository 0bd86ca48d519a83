package base

import "github.com/vinicius-lino-figueiredo/gematcher/domain"

// Feature is the logic of a matcher that extracts a U from a T and checks it
// against another matcher. It is wrapped by [NewFeature].
type Feature[T, U any] struct {
	sub         domain.Matcher
	description string
	name        string
	extract     func(T) U
}

// NewFeature returns an implementation of domain.Matcher that narrows its
// input to T, extracts a feature from it and matches the feature against sub.
// featureDescription is used when describing the expectation and featureName
// when describing a mismatch.
func NewFeature[T, U any](sub domain.Matcher, featureDescription, featureName string, extract func(T) U, options ...Option[T]) domain.Matcher {
	return NewTypeSafeDiagnosing[T](&Feature[T, U]{
		sub:         sub,
		description: featureDescription,
		name:        featureName,
		extract:     extract,
	}, options...)
}

// MatchesSafely implements [DiagnosingMatcher].
func (f *Feature[T, U]) MatchesSafely(actual T, d domain.Description) bool {
	feature := f.extract(actual)
	if !f.sub.Matches(feature) {
		d.AppendText(f.name).AppendText(" ")
		f.sub.DescribeMismatch(feature, d)
		return false
	}
	return true
}

// DescribeTo implements [DiagnosingMatcher].
func (f *Feature[T, U]) DescribeTo(d domain.Description) {
	d.AppendText(f.description).AppendText(" ").AppendDescriptionOf(f.sub)
}
