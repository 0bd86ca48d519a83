package object

import (
	"fmt"
	stdreflect "reflect"

	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/equality"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
	"github.com/vinicius-lino-figueiredo/gematcher/pkg/structure"
)

// EqualValues implements [base.DiagnosingMatcher] for values compared field
// by field.
type EqualValues[T any] struct {
	typeName string
	fields   []*fieldMatcher[T]
}

// HasEqualValues returns a matcher that is satisfied by values of the same
// dynamic type as expected whose fields are equal to the fields of expected. Fields are compared in
// the given order, and the first different one is reported.
//
// If no field is given, the exported fields of the struct held by expected
// are used. In that case, an error is returned if expected is not a struct,
// nor a pointer to one.
func HasEqualValues[T any](expected T, fields ...domain.Field[T]) (domain.Matcher, error) {
	if len(fields) == 0 {
		var err error
		if fields, err = structFields[T](expected); err != nil {
			return nil, err
		}
	}
	matchers := make([]*fieldMatcher[T], len(fields))
	for n, f := range fields {
		matchers[n] = &fieldMatcher[T]{
			field:   f,
			matcher: equality.EqualTo(f.Value(expected)),
		}
	}
	return base.NewTypeSafeDiagnosing[T](&EqualValues[T]{
		typeName: structure.SimpleTypeName(expected),
		fields:   matchers,
	}, base.WithNarrow(sameTypeAs(expected))), nil
}

// sameTypeAs narrows values whose dynamic type is the one of expected. A null
// expected value falls back to a plain type assertion.
func sameTypeAs[T any](expected T) func(any) (T, bool) {
	typ := stdreflect.TypeOf(expected)
	if typ == nil {
		return nil
	}
	return func(actual any) (T, bool) {
		if stdreflect.TypeOf(actual) != typ {
			var zero T
			return zero, false
		}
		return base.Narrow[T](actual)
	}
}

// MustHaveEqualValues is like [HasEqualValues] but panics if the fields of
// expected cannot be enumerated.
func MustHaveEqualValues[T any](expected T, fields ...domain.Field[T]) domain.Matcher {
	m, err := HasEqualValues(expected, fields...)
	if err != nil {
		panic(err)
	}
	return m
}

func structFields[T any](expected T) ([]domain.Field[T], error) {
	found, err := structure.StructFields(expected)
	if err != nil {
		errNonStruct := domain.ErrNonStruct{Type: structure.TypeName(expected)}
		return nil, fmt.Errorf("%w: %w", errNonStruct, err)
	}
	fields := make([]domain.Field[T], len(found))
	for n, f := range found {
		fields[n] = domain.Field[T]{
			Name: f.Name,
			Value: func(t T) any {
				v, err := structure.FieldValue(t, f.Index)
				if err != nil {
					panic(fmt.Errorf("reading field %q: %w", f.Name, err))
				}
				return v
			},
		}
	}
	return fields, nil
}

// MatchesSafely implements [base.DiagnosingMatcher].
func (e *EqualValues[T]) MatchesSafely(actual T, d domain.Description) bool {
	for _, f := range e.fields {
		if !f.matches(actual, d) {
			return false
		}
	}
	return true
}

// DescribeTo implements [base.DiagnosingMatcher].
func (e *EqualValues[T]) DescribeTo(d domain.Description) {
	d.AppendText(e.typeName).
		AppendText(" has values ").
		AppendList("[", ", ", "]", domain.SelfDescribings(e.fields)...)
}

type fieldMatcher[T any] struct {
	field   domain.Field[T]
	matcher domain.Matcher
}

func (f *fieldMatcher[T]) matches(actual T, d domain.Description) bool {
	value := f.field.Value(actual)
	if f.matcher.Matches(value) {
		return true
	}
	d.AppendText("'").AppendText(f.field.Name).AppendText("' ")
	f.matcher.DescribeMismatch(value, d)
	return false
}

// DescribeTo implements [domain.SelfDescribing].
func (f *fieldMatcher[T]) DescribeTo(d domain.Description) {
	d.AppendText(f.field.Name).AppendText(": ").AppendDescriptionOf(f.matcher)
}
