// Package text contains the matchers that only accept strings: the substring
// family, regular expressions, globs and UUIDs.
package text

import (
	"strings"

	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

// Substring implements [base.SafeMatcher] for the substring family.
type Substring struct {
	relationship string
	ignoringCase bool
	substring    string
	eval         func(s, substr string) bool
}

func newSubstring(relationship string, ignoringCase bool, substring string, eval func(s, substr string) bool) domain.Matcher {
	return base.NewTypeSafe[string](&Substring{
		relationship: relationship,
		ignoringCase: ignoringCase,
		substring:    substring,
		eval:         eval,
	})
}

// ContainsString returns a matcher that is satisfied by strings containing
// substring.
func ContainsString(substring string) domain.Matcher {
	return newSubstring("containing", false, substring, strings.Contains)
}

// ContainsStringIgnoringCase returns a matcher that is satisfied by strings
// containing substring, ignoring case.
func ContainsStringIgnoringCase(substring string) domain.Matcher {
	return newSubstring("containing", true, substring, strings.Contains)
}

// StartsWith returns a matcher that is satisfied by strings starting with
// prefix.
func StartsWith(prefix string) domain.Matcher {
	return newSubstring("starting with", false, prefix, strings.HasPrefix)
}

// StartsWithIgnoringCase returns a matcher that is satisfied by strings
// starting with prefix, ignoring case.
func StartsWithIgnoringCase(prefix string) domain.Matcher {
	return newSubstring("starting with", true, prefix, strings.HasPrefix)
}

// EndsWith returns a matcher that is satisfied by strings ending with
// suffix.
func EndsWith(suffix string) domain.Matcher {
	return newSubstring("ending with", false, suffix, strings.HasSuffix)
}

// EndsWithIgnoringCase returns a matcher that is satisfied by strings ending
// with suffix, ignoring case.
func EndsWithIgnoringCase(suffix string) domain.Matcher {
	return newSubstring("ending with", true, suffix, strings.HasSuffix)
}

// MatchesSafely implements [base.SafeMatcher].
func (s *Substring) MatchesSafely(actual string) bool {
	return s.eval(s.converted(actual), s.converted(s.substring))
}

// DescribeMismatchSafely implements [base.SafeMismatchDescriber].
func (s *Substring) DescribeMismatchSafely(actual string, d domain.Description) {
	d.AppendText(`was "`).AppendText(actual).AppendText(`"`)
}

// DescribeTo implements [base.SafeMatcher].
func (s *Substring) DescribeTo(d domain.Description) {
	d.AppendText("a string ").
		AppendText(s.relationship).
		AppendText(" ").
		AppendValue(s.substring)
	if s.ignoringCase {
		d.AppendText(" ignoring case")
	}
}

func (s *Substring) converted(str string) string {
	if s.ignoringCase {
		return strings.ToLower(str)
	}
	return str
}
