// Package comparer contains the default [domain.Comparer] implementation.
//
// Values are ordered by kind first and by value within the same kind. From
// the smallest kind to the largest: null, numbers, strings, booleans, times
// and lists. Lists are compared item by item, and the longest one wins if
// their common section is identical.
package comparer

import (
	"cmp"
	"math"
	"math/big"
	"time"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
	"github.com/vinicius-lino-figueiredo/gematcher/pkg/structure"
)

// Comparer implements domain.Comparer.
type Comparer struct{}

// NewComparer returns a new implementation of domain.Comparer.
func NewComparer() domain.Comparer {
	return &Comparer{}
}

// Comparable implements domain.Comparer. Non-null values of the same kind are
// comparable.
func (c *Comparer) Comparable(a, b any) bool {
	if structure.IsNull(a) || structure.IsNull(b) {
		return false
	}

	equal := false
	if _, ok := AsNumber(a); ok {
		_, equal = AsNumber(b)
		return equal
	}

	switch a.(type) {
	case string:
		_, equal = b.(string)
	case bool:
		_, equal = b.(bool)
	case time.Time:
		_, equal = b.(time.Time)
	default:
		// items are only checked by Compare
		return structure.IsList(a) && structure.IsList(b)
	}
	return equal
}

// Compare implements domain.Comparer.
func (c *Comparer) Compare(a any, b any) (int, error) {

	// null
	if c, ok := c.checkNull(a, b); ok {
		return c, nil
	}

	// Numbers
	if c, ok := c.checkNumbers(a, b); ok {
		return c, nil
	}

	// Strings
	if c, ok := c.checkStrings(a, b); ok {
		return c, nil
	}

	// Booleans
	if c, ok := c.checkBooleans(a, b); ok {
		return c, nil
	}

	// Dates
	if c, ok := c.checkTime(a, b); ok {
		return c, nil
	}

	// Lists
	if c, ok, err := c.checkLists(a, b); err != nil || ok {
		return c, err
	}

	return 0, domain.ErrCannotCompare{A: a, B: b}
}

func (c *Comparer) checkNull(a, b any) (int, bool) {
	aNull, bNull := structure.IsNull(a), structure.IsNull(b)
	if aNull {
		if bNull {
			return 0, true
		}
		return -1, true
	}
	if bNull {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) checkNumbers(a, b any) (int, bool) {
	if a, ok := AsNumber(a); ok {
		// big.Float compares int64 and float64 without precision loss
		if b, ok := AsNumber(b); ok {
			return a.Cmp(b), true
		}
		return -1, true
	}
	if _, ok := AsNumber(b); ok {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) checkStrings(a, b any) (int, bool) {
	if a, ok := a.(string); ok {
		if b, ok := b.(string); ok {
			return cmp.Compare(a, b), true
		}
		return -1, true
	}
	if _, ok := b.(string); ok {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) checkBooleans(a, b any) (int, bool) {
	if a, ok := a.(bool); ok {
		if b, ok := b.(bool); ok {
			return c.compareBool(a, b), true
		}
		return -1, true
	}
	if _, ok := b.(bool); ok {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) checkTime(a, b any) (int, bool) {
	if a, ok := a.(time.Time); ok {
		if b, ok := b.(time.Time); ok {
			return a.Compare(b), true
		}
		return -1, true
	}
	if _, ok := b.(time.Time); ok {
		return 1, true
	}
	return 0, false
}

func (c *Comparer) checkLists(a, b any) (int, bool, error) {
	if a, ok := structure.Items(a); ok {
		if b, ok := structure.Items(b); ok {
			comp, err := c.compareList(a, b)
			return comp, true, err
		}
		return -1, true, nil
	}
	if structure.IsList(b) {
		return 1, true, nil
	}
	return 0, false, nil
}

func (c *Comparer) compareList(a, b []any) (int, error) {
	minLength := min(len(a), len(b))

	var comp int
	var err error
	for i := range minLength {
		comp, err = c.Compare(a[i], b[i])
		if err != nil {
			return 0, err
		}

		if comp != 0 {
			return comp, nil
		}
	}

	// Common section was identical, longest one wins
	return cmp.Compare(len(a), len(b)), nil
}

func (c *Comparer) compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if a {
		return 1
	}
	return -1
}

// AsNumber converts any integer or floating point value, including values of
// named numeric types such as [time.Duration], into a [big.Float]. NaN is not
// a number here, as it has no order.
func AsNumber(v any) (*big.Float, bool) {
	r := big.NewFloat(0)
	switch n := v.(type) {
	case int:
		return r.SetInt64(int64(n)), true
	case int64:
		return r.SetInt64(n), true
	case uint64:
		return r.SetUint64(n), true
	case float64:
		if math.IsNaN(n) {
			return nil, false
		}
		return r.SetFloat64(n), true
	case nil:
		return nil, false
	}

	value := reflect.ValueNoEscapeOf(v)
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		r.SetInt64(value.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		r.SetUint64(value.Uint())
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(value.Float()) {
			return nil, false
		}
		r.SetFloat64(value.Float())
	default:
		return nil, false
	}
	return r, true
}

// AsFloat is the same as [AsNumber], returning the closest float64.
func AsFloat(v any) (float64, bool) {
	n, ok := AsNumber(v)
	if !ok {
		return 0, false
	}
	f, _ := n.Float64()
	return f, true
}
