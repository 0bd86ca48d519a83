package equality

import (
	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
	"github.com/vinicius-lino-figueiredo/gematcher/pkg/structure"
)

type sameInstance struct {
	target any
}

// SameInstance returns a matcher that is satisfied only by the same instance
// as target. Pointers, maps, channels and functions are the same instance if
// they point to the same address. Slices must also have the same length. Two
// null values are the same instance, and values of any other kind never are.
func SameInstance(target any) domain.Matcher {
	return &sameInstance{target: target}
}

// TheInstance is an alias of [SameInstance].
func TheInstance(target any) domain.Matcher {
	return SameInstance(target)
}

// Matches implements [domain.Matcher].
func (s *sameInstance) Matches(actual any) bool {
	return IsSameInstance(actual, s.target)
}

// DescribeTo implements [domain.Matcher].
func (s *sameInstance) DescribeTo(d domain.Description) {
	d.AppendText("sameInstance(").AppendValue(s.target).AppendText(")")
}

// DescribeMismatch implements [domain.Matcher].
func (s *sameInstance) DescribeMismatch(actual any, d domain.Description) {
	base.DescribeMismatch(actual, d)
}

// IsSameInstance reports whether a and b refer to the same instance, as
// described in [SameInstance].
func IsSameInstance(a, b any) bool {
	aNull, bNull := structure.IsNull(a), structure.IsNull(b)
	if aNull || bNull {
		return aNull && bNull
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	va, vb := reflect.ValueNoEscapeOf(a), reflect.ValueNoEscapeOf(b)
	switch va.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	default:
		return false
	}
}

type isNull struct{}

// NullValue returns a matcher that is satisfied by untyped nil and nil
// pointers.
func NullValue() domain.Matcher {
	return isNull{}
}

// Matches implements [domain.Matcher].
func (isNull) Matches(actual any) bool {
	return structure.IsNull(actual)
}

// DescribeTo implements [domain.Matcher].
func (isNull) DescribeTo(d domain.Description) {
	d.AppendText("null")
}

// DescribeMismatch implements [domain.Matcher].
func (isNull) DescribeMismatch(actual any, d domain.Description) {
	base.DescribeMismatch(actual, d)
}

type notNull struct{}

// NotNullValue returns a matcher that is satisfied by every value that is
// not null.
func NotNullValue() domain.Matcher {
	return notNull{}
}

// Matches implements [domain.Matcher].
func (notNull) Matches(actual any) bool {
	return !structure.IsNull(actual)
}

// DescribeTo implements [domain.Matcher].
func (notNull) DescribeTo(d domain.Description) {
	d.AppendText("not null")
}

// DescribeMismatch implements [domain.Matcher].
func (notNull) DescribeMismatch(actual any, d domain.Description) {
	base.DescribeMismatch(actual, d)
}
