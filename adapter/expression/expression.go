// Package expression contains matchers defined by CEL expressions.
package expression

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/cel-go/cel"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
	"github.com/vinicius-lino-figueiredo/gematcher/pkg/structure"
)

// Variable is the name under which the actual value is exposed to
// expressions.
const Variable = "actual"

// Expression implements [base.Diagnoser] for values that make a compiled CEL
// expression evaluate to true.
type Expression struct {
	source  string
	program cel.Program
}

// Satisfies compiles expr and returns a matcher that is satisfied by values
// for which it evaluates to true. The value is available to the expression as
// actual, and structs are exposed as maps keyed by field name (or gematcher
// tag name). An error is returned if expr does not compile or if its result
// is known not to be a boolean.
func Satisfies(expr string) (domain.Matcher, error) {
	env, err := cel.NewEnv(cel.Variable(Variable, cel.DynType))
	if err != nil {
		return nil, err
	}

	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		errPattern := domain.ErrInvalidPattern{Kind: "cel", Pattern: expr}
		return nil, fmt.Errorf("%w: %w", errPattern, iss.Err())
	}

	out := ast.OutputType()
	if !reflect.DeepEqual(out, cel.BoolType) && !reflect.DeepEqual(out, cel.DynType) {
		return nil, domain.ErrExpressionType{Expression: expr, Got: out.String()}
	}

	prg, err := env.Program(ast, cel.EvalOptions(cel.OptOptimize))
	if err != nil {
		return nil, err
	}
	return base.NewDiagnosing(&Expression{source: expr, program: prg}), nil
}

// MustSatisfy is like [Satisfies] but panics if the expression is invalid.
func MustSatisfy(expr string) domain.Matcher {
	m, err := Satisfies(expr)
	if err != nil {
		panic(err)
	}
	return m
}

// MatchesDiagnosing implements [base.Diagnoser].
func (e *Expression) MatchesDiagnosing(actual any, d domain.Description) bool {
	out, _, err := e.program.Eval(map[string]any{Variable: native(actual)})
	if err != nil {
		d.AppendValue(actual).AppendText(" could not be evaluated: ").AppendText(err.Error())
		return false
	}
	if out.Value() != true {
		d.AppendText("was ").AppendValue(actual)
		return false
	}
	return true
}

// DescribeTo implements [base.Diagnoser].
func (e *Expression) DescribeTo(d domain.Description) {
	d.AppendText("a value satisfying ").AppendValue(e.source)
}

// native converts values CEL cannot adapt by itself. Nil pointers become
// null and structs become maps, recursively. Times and byte slices are
// supported natively.
func native(v any) any {
	if structure.IsNull(v) {
		return nil
	}
	switch v.(type) {
	case time.Time, []byte:
		return v
	}
	fields, size, err := structure.Fields(v)
	if err == nil {
		res := make(map[string]any, size)
		for name, value := range fields {
			res[name] = native(value)
		}
		return res
	}
	if items, ok := structure.Items(v); ok {
		for n, item := range items {
			items[n] = native(item)
		}
		return items
	}
	return v
}
