package equality

import (
	stdreflect "reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

// exportAll lets go-cmp look into unexported fields, which it refuses to do
// by default.
var exportAll = cmp.Exporter(func(stdreflect.Type) bool { return true })

type deepEqual struct {
	expected any
	options  cmp.Options
}

// DeepEqualTo returns a matcher that compares values with [cmp.Equal],
// including unexported fields. The mismatch description contains the
// difference between expected and actual values. Extra options are passed to
// go-cmp after the default ones.
func DeepEqualTo(expected any, options ...cmp.Option) domain.Matcher {
	opts := make(cmp.Options, 0, len(options)+1)
	opts = append(opts, exportAll)
	opts = append(opts, options...)
	return base.NewDiagnosing(&deepEqual{
		expected: expected,
		options:  opts,
	})
}

// MatchesDiagnosing implements [base.Diagnoser].
func (de *deepEqual) MatchesDiagnosing(actual any, d domain.Description) (matches bool) {
	defer func() {
		// go-cmp panics on options it cannot apply
		if r := recover(); r != nil {
			matches = false
			base.DescribeMismatch(actual, d)
		}
	}()
	if cmp.Equal(de.expected, actual, de.options) {
		return true
	}
	d.AppendText("differed (-expected +actual):\n").
		AppendText(cmp.Diff(de.expected, actual, de.options))
	return false
}

// DescribeTo implements [base.Diagnoser].
func (de *deepEqual) DescribeTo(d domain.Description) {
	d.AppendText("deeply equal to ").AppendValue(de.expected)
}
