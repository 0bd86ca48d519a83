// Package equality contains the matchers based on value equality and
// reference identity.
package equality

import (
	stdreflect "reflect"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
	"github.com/vinicius-lino-figueiredo/gematcher/pkg/structure"
)

var boolType = reflect.TypeOf(false)

type isEqual struct {
	expected any
}

// EqualTo returns a matcher that is satisfied by values equal to expected,
// as defined by [AreEqual].
func EqualTo(expected any) domain.Matcher {
	return &isEqual{expected: expected}
}

// Matches implements [domain.Matcher].
func (e *isEqual) Matches(actual any) bool {
	return AreEqual(actual, e.expected)
}

// DescribeTo implements [domain.Matcher].
func (e *isEqual) DescribeTo(d domain.Description) {
	d.AppendValue(e.expected)
}

// DescribeMismatch implements [domain.Matcher].
func (e *isEqual) DescribeMismatch(actual any, d domain.Description) {
	base.DescribeMismatch(actual, d)
}

// AreEqual reports whether a and b are equal. Two null values are equal and a
// null value is never equal to a non-null one. Two lists (slices or arrays)
// are equal if they have the same length and their items are equal under the
// same rules, recursively. Values of a type with an Equal method accepting the
// type of the other value use it. Comparable values of the same type are
// compared with ==, and everything else with [stdreflect.DeepEqual].
func AreEqual(a, b any) bool {
	aNull, bNull := structure.IsNull(a), structure.IsNull(b)
	if aNull || bNull {
		return aNull && bNull
	}

	if aItems, ok := structure.Items(a); ok {
		bItems, ok := structure.Items(b)
		if !ok || len(aItems) != len(bItems) {
			return false
		}
		for n := range aItems {
			if !AreEqual(aItems[n], bItems[n]) {
				return false
			}
		}
		return true
	}
	if structure.IsList(b) {
		return false
	}

	if equal, ok := callEqual(a, b); ok {
		return equal
	}

	if reflect.TypeOf(a) == reflect.TypeOf(b) && stdreflect.ValueOf(a).Comparable() {
		return a == b
	}

	return stdreflect.DeepEqual(a, b)
}

// callEqual calls a.Equal(b) if a has such a method returning bool.
func callEqual(a, b any) (bool, bool) {
	method := reflect.ValueNoEscapeOf(a).MethodByName("Equal")
	if !method.IsValid() {
		return false, false
	}
	typ := method.Type()
	if typ.NumIn() != 1 || typ.NumOut() != 1 || typ.Out(0) != boolType {
		return false, false
	}
	arg := reflect.ValueOf(b)
	if !arg.Type().AssignableTo(typ.In(0)) {
		return false, false
	}
	return method.Call([]reflect.Value{arg})[0].Bool(), true
}
