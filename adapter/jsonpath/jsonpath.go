// Package jsonpath contains matchers over JSON text.
package jsonpath

import (
	"github.com/tidwall/gjson"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/equality"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

// Path implements [base.DiagnosingMatcher] for JSON documents with a value at
// a given path.
type Path struct {
	path    string
	matcher domain.Matcher
}

// HasJSONPath returns a matcher over JSON text, given as a string or a byte
// slice, that is satisfied when the value found at path satisfies m. The path
// uses gjson syntax. Values are decoded the way encoding/json does it, so
// numbers are float64 and objects are map[string]any.
func HasJSONPath(path string, m domain.Matcher) domain.Matcher {
	return base.NewTypeSafeDiagnosing[[]byte](&Path{
		path:    path,
		matcher: m,
	}, base.WithNarrow(jsonBytes))
}

// HasJSONPathValue is a shortcut for HasJSONPath(path, equality.EqualTo(value)).
func HasJSONPathValue(path string, value any) domain.Matcher {
	return HasJSONPath(path, equality.EqualTo(value))
}

// IsJSON returns a matcher that is satisfied by valid JSON text.
func IsJSON() domain.Matcher {
	return base.NewTypeSafeDiagnosing[[]byte](&Path{}, base.WithNarrow(jsonBytes))
}

func jsonBytes(actual any) ([]byte, bool) {
	switch t := actual.(type) {
	case []byte:
		return t, true
	case string:
		return []byte(t), true
	default:
		return nil, false
	}
}

// MatchesSafely implements [base.DiagnosingMatcher].
func (p *Path) MatchesSafely(actual []byte, d domain.Description) bool {
	if !gjson.ValidBytes(actual) {
		d.AppendText("was invalid JSON ").AppendValue(string(actual))
		return false
	}
	if p.matcher == nil {
		return true
	}
	res := gjson.GetBytes(actual, p.path)
	if !res.Exists() {
		d.AppendText("no value at ").AppendValue(p.path).AppendText(" in ").AppendValue(string(actual))
		return false
	}
	value := res.Value()
	if !p.matcher.Matches(value) {
		d.AppendText("value at ").AppendValue(p.path).AppendText(" ")
		p.matcher.DescribeMismatch(value, d)
		return false
	}
	return true
}

// DescribeTo implements [base.DiagnosingMatcher].
func (p *Path) DescribeTo(d domain.Description) {
	if p.matcher == nil {
		d.AppendText("valid JSON")
		return
	}
	d.AppendText("JSON with ").
		AppendValue(p.path).
		AppendText(" ").
		AppendDescriptionOf(p.matcher)
}
