package text

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
	"github.com/gobwas/glob"
	"github.com/google/uuid"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

// Regex implements [base.DiagnosingMatcher] for [regexp] patterns. The whole
// string must match the pattern.
type Regex struct {
	pattern *regexp.Regexp
	whole   *regexp.Regexp
}

// MatchesRegex returns a matcher that is satisfied by strings entirely
// matched by pattern. An error is returned if the pattern is invalid.
func MatchesRegex(pattern string) (domain.Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		errPattern := domain.ErrInvalidPattern{Kind: "regex", Pattern: pattern}
		return nil, fmt.Errorf("%w: %w", errPattern, err)
	}
	return MatchesRegexp(re), nil
}

// MatchesRegexIgnoringCase is the same as [MatchesRegex], ignoring case.
func MatchesRegexIgnoringCase(pattern string) (domain.Matcher, error) {
	return MatchesRegex("(?i)" + pattern)
}

// MustMatchRegex is like [MatchesRegex] but panics if the pattern is invalid.
func MustMatchRegex(pattern string) domain.Matcher {
	return must(MatchesRegex(pattern))
}

// MatchesRegexp returns a matcher that is satisfied by strings entirely
// matched by re.
func MatchesRegexp(re *regexp.Regexp) domain.Matcher {
	return base.NewTypeSafeDiagnosing[string](&Regex{
		pattern: re,
		whole:   regexp.MustCompile(`^(?:` + re.String() + `)$`),
	})
}

// MatchesSafely implements [base.DiagnosingMatcher].
func (r *Regex) MatchesSafely(actual string, d domain.Description) bool {
	if !r.whole.MatchString(actual) {
		d.AppendText("the string was ").AppendValue(actual)
		return false
	}
	return true
}

// DescribeTo implements [base.DiagnosingMatcher].
func (r *Regex) DescribeTo(d domain.Description) {
	d.AppendText("a string matching the pattern ").AppendValue(r.pattern)
}

// Pattern implements [base.DiagnosingMatcher] for [regexp2] patterns, which
// support backtracking constructs such as lookarounds and backreferences.
type Pattern struct {
	source string
	re     *regexp2.Regexp
}

// MatchesPattern returns a matcher that is satisfied by strings entirely
// matched by a .NET-style regular expression. An error is returned if the
// pattern is invalid.
func MatchesPattern(pattern string) (domain.Matcher, error) {
	re, err := regexp2.Compile(`\A(?:`+pattern+`)\z`, regexp2.None)
	if err != nil {
		errPattern := domain.ErrInvalidPattern{Kind: "regex2", Pattern: pattern}
		return nil, fmt.Errorf("%w: %w", errPattern, err)
	}
	return base.NewTypeSafeDiagnosing[string](&Pattern{source: pattern, re: re}), nil
}

// MustMatchPattern is like [MatchesPattern] but panics if the pattern is
// invalid.
func MustMatchPattern(pattern string) domain.Matcher {
	return must(MatchesPattern(pattern))
}

// MatchesSafely implements [base.DiagnosingMatcher].
func (p *Pattern) MatchesSafely(actual string, d domain.Description) bool {
	ok, err := p.re.MatchString(actual)
	if err != nil {
		d.AppendText("the string ").AppendValue(actual).AppendText(" could not be matched: ").AppendText(err.Error())
		return false
	}
	if !ok {
		d.AppendText("the string was ").AppendValue(actual)
		return false
	}
	return true
}

// DescribeTo implements [base.DiagnosingMatcher].
func (p *Pattern) DescribeTo(d domain.Description) {
	d.AppendText("a string matching the pattern ").AppendValue(p.source)
}

// Glob implements [base.SafeMatcher] for shell-like glob patterns.
type Glob struct {
	source string
	g      glob.Glob
}

// MatchesGlob returns a matcher that is satisfied by strings matching a glob
// pattern. Separators, if given, are the characters "*" does not cross. An
// error is returned if the pattern is invalid.
func MatchesGlob(pattern string, separators ...rune) (domain.Matcher, error) {
	g, err := glob.Compile(pattern, separators...)
	if err != nil {
		errPattern := domain.ErrInvalidPattern{Kind: "glob", Pattern: pattern}
		return nil, fmt.Errorf("%w: %w", errPattern, err)
	}
	return base.NewTypeSafe[string](&Glob{source: pattern, g: g}), nil
}

// MustMatchGlob is like [MatchesGlob] but panics if the pattern is invalid.
func MustMatchGlob(pattern string, separators ...rune) domain.Matcher {
	return must(MatchesGlob(pattern, separators...))
}

// MatchesSafely implements [base.SafeMatcher].
func (g *Glob) MatchesSafely(actual string) bool {
	return g.g.Match(actual)
}

// DescribeTo implements [base.SafeMatcher].
func (g *Glob) DescribeTo(d domain.Description) {
	d.AppendText("a string matching the glob ").AppendValue(g.source)
}

// UUID implements [base.DiagnosingMatcher] for textual UUIDs.
type UUID struct{}

// IsUUID returns a matcher that is satisfied by strings holding a valid UUID
// in any of the forms accepted by [uuid.Parse].
func IsUUID() domain.Matcher {
	return base.NewTypeSafeDiagnosing[string](UUID{})
}

// MatchesSafely implements [base.DiagnosingMatcher].
func (UUID) MatchesSafely(actual string, d domain.Description) bool {
	if _, err := uuid.Parse(actual); err != nil {
		d.AppendValue(actual).AppendText(" is not a UUID: ").AppendText(err.Error())
		return false
	}
	return true
}

// DescribeTo implements [base.DiagnosingMatcher].
func (UUID) DescribeTo(d domain.Description) {
	d.AppendText("a UUID string")
}

func must(m domain.Matcher, err error) domain.Matcher {
	if err != nil {
		panic(err)
	}
	return m
}
