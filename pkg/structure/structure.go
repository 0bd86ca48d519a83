// Package structure contains type-related operations, such as detecting null
// values, iterating over a value of type any, enumerating struct fields and
// following dotted paths into nested values.
package structure

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-reflect"
)

// TagName is the struct tag read when enumerating struct fields.
const TagName = "gematcher"

var (
	// ErrNilObj may be returned by [Seq] or [Fields] when a nil value is
	// passed as argument.
	ErrNilObj = errors.New("nil object")
)

// ErrorNonObject is returned by [Fields] when a value that is neither a struct
// nor a pointer to a struct is passed as argument.
type ErrorNonObject struct {
	Type reflect.Type
}

func (e ErrorNonObject) Error() string {
	return fmt.Sprintf("expected struct, got %s", e.Type.String())
}

// ErrorNonList is returned by [Seq] when a value that is neither a slice, an
// array nor an [iter.Seq] is passed as argument.
type ErrorNonList struct {
	Type reflect.Type
}

func (e ErrorNonList) Error() string {
	return fmt.Sprintf("expected list, got %s", e.Type.String())
}

// IsNull reports whether v is an untyped nil or a nil pointer. Nil slices,
// maps, channels and functions are regular values.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	r := reflect.ValueNoEscapeOf(v)
	return r.Kind() == reflect.Ptr && r.IsNil()
}

// TypeName returns the full name of the dynamic type of v, or "nil".
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// SimpleTypeName returns the unqualified name of the dynamic type of v. Unnamed
// types, such as []int, are returned in full.
func SimpleTypeName(v any) string {
	if v == nil {
		return "nil"
	}
	t := reflect.TypeOf(v)
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// TypeNameOf returns the full name of T, including interface types.
func TypeNameOf[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// IsList reports whether v is a slice or an array.
func IsList(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueNoEscapeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// Seq returns an iterator over a slice, an array or an iter.Seq[any], along
// with the number of items. The length of an iter.Seq is not known in advance
// and is returned as -1.
func Seq(obj any) (iter.Seq[any], int, error) {
	if obj == nil {
		return nil, 0, ErrNilObj
	}
	if i, length := checkLists(obj); i != nil {
		return i, length, nil
	}
	return iterReflectList(obj)
}

// Items collects the items of obj as described in [Seq]. It reports false if
// obj is not a list.
func Items(obj any) ([]any, bool) {
	seq, length, err := Seq(obj)
	if err != nil {
		return nil, false
	}
	return slices.AppendSeq(make([]any, 0, max(length, 0)), seq), true
}

func checkLists(obj any) (iter.Seq[any], int) {
	switch t := obj.(type) {
	case []any:
		return iterSlice(t), len(t)
	case []string:
		return iterSlice(t), len(t)
	case []bool:
		return iterSlice(t), len(t)
	case []int:
		return iterSlice(t), len(t)
	case []int64:
		return iterSlice(t), len(t)
	case []uint8:
		return iterSlice(t), len(t)
	case []float64:
		return iterSlice(t), len(t)
	case []time.Time:
		return iterSlice(t), len(t)
	case []*regexp.Regexp:
		return iterSlice(t), len(t)
	case iter.Seq[any]:
		return t, -1
	}
	return nil, 0
}

func iterReflectList(obj any) (iter.Seq[any], int, error) {
	v := reflect.ValueNoEscapeOf(obj)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, 0, ErrorNonList{Type: v.Type()}
	}
	l := v.Len()
	return func(yield func(any) bool) {
		for n := range l {
			if !yield(v.Index(n).Interface()) {
				return
			}
		}
	}, l, nil
}

func iterSlice[T any](m []T) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range m {
			if !yield(v) {
				return
			}
		}
	}
}

// Field describes an exported struct field found by [StructFields].
type Field struct {
	// Name is the field name, or the name set in the struct tag.
	Name string
	// Index is the position of the field in the struct.
	Index int
}

// StructFields lists the exported fields of the struct type of obj, in
// declaration order. Pointers are followed. Fields tagged with "-" are skipped.
func StructFields(obj any) ([]Field, error) {
	v, err := structValue(obj)
	if err != nil {
		return nil, err
	}
	typ := v.Type()
	fields := make([]Field, 0, typ.NumField())
	for n := range typ.NumField() {
		field := typ.Field(n)
		if field.PkgPath != "" {
			continue
		}
		name, ok := fieldName(field.Name, field.Tag.Get(TagName))
		if !ok {
			continue
		}
		fields = append(fields, Field{Name: name, Index: n})
	}
	return fields, nil
}

// FieldValue reads the field at index from the struct held by obj. Pointers
// are followed.
func FieldValue(obj any, index int) (any, error) {
	v, err := structValue(obj)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= v.NumField() {
		return nil, fmt.Errorf("field index %d out of range for %s", index, v.Type().String())
	}
	return v.Field(index).Interface(), nil
}

// Fields returns an iterator over the exported fields of a struct, keyed by
// field name (or tag name), along with the number of fields.
func Fields(obj any) (iter.Seq2[string, any], int, error) {
	if obj == nil {
		return nil, 0, ErrNilObj
	}
	fields, err := StructFields(obj)
	if err != nil {
		return nil, 0, err
	}
	v, _ := structValue(obj)
	return func(yield func(string, any) bool) {
		for _, f := range fields {
			if !yield(f.Name, v.Field(f.Index).Interface()) {
				return
			}
		}
	}, len(fields), nil
}

func structValue(obj any) (reflect.Value, error) {
	if obj == nil {
		return reflect.Value{}, ErrNilObj
	}
	v := reflect.ValueNoEscapeOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, ErrNilObj
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, ErrorNonObject{Type: v.Type()}
	}
	return v, nil
}

func fieldName(name, tag string) (string, bool) {
	if tag == "" {
		return name, true
	}
	if tag == "-" {
		return "", false
	}
	if found := strings.IndexRune(tag, ','); found >= 0 {
		tag = tag[:found]
	}
	if tag == "" {
		return name, true
	}
	return tag, true
}

// Lookup follows path into obj and returns the value found at its end. Each
// part of the path is a map key, a struct field name (or tag name) or a list
// index. Pointers are followed. It reports false if any part cannot be
// resolved.
func Lookup(obj any, path ...string) (any, bool) {
	curr := obj
	for _, part := range path {
		next, ok := lookupPart(curr, part)
		if !ok {
			return nil, false
		}
		curr = next
	}
	return curr, true
}

func lookupPart(obj any, part string) (any, bool) {
	if obj == nil {
		return nil, false
	}
	if m, ok := obj.(map[string]any); ok {
		v, found := m[part]
		return v, found
	}

	v := reflect.ValueNoEscapeOf(obj)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		for _, key := range v.MapKeys() {
			if key.String() == part {
				return v.MapIndex(key).Interface(), true
			}
		}
		return nil, false
	case reflect.Struct:
		i, l, err := Fields(v.Interface())
		if err != nil || l == 0 {
			return nil, false
		}
		for name, value := range i {
			if name == part {
				return value, true
			}
		}
		return nil, false
	case reflect.Slice, reflect.Array:
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n >= v.Len() {
			return nil, false
		}
		return v.Index(n).Interface(), true
	default:
		return nil, false
	}
}
