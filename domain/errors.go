package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatcher is returned when a nil [Matcher] is passed to a
	// function that needs to evaluate it.
	ErrNilMatcher = errors.New("matcher is nil")
	// ErrTargetNil is returned when a nil decoding target is given.
	ErrTargetNil = errors.New("target interface is nil")
	// ErrNonPointer is returned when a decoding target is not a pointer.
	ErrNonPointer = errors.New("target should be a pointer")
)

// ErrInvalidPattern is returned when a pattern given to a matcher cannot be
// compiled. Kind tells which pattern language was used (regex, glob, cel).
type ErrInvalidPattern struct {
	Kind    string
	Pattern string
}

func (e ErrInvalidPattern) Error() string {
	return fmt.Sprintf("invalid %s pattern %q", e.Kind, e.Pattern)
}

// ErrNonStruct is returned when the fields of a value have to be enumerated
// but the value is not a struct, nor a pointer to one.
type ErrNonStruct struct {
	Type string
}

func (e ErrNonStruct) Error() string {
	return fmt.Sprintf("cannot enumerate fields of non-struct type %s", e.Type)
}

// ErrExpressionType is returned when an expression matcher is built with an
// expression that does not evaluate to a boolean.
type ErrExpressionType struct {
	Expression string
	Got        string
}

func (e ErrExpressionType) Error() string {
	return fmt.Sprintf("expression %q should evaluate to bool, got %s", e.Expression, e.Got)
}

// ErrCannotCompare is returned by a [Comparer] when two values have no
// defined order.
type ErrCannotCompare struct {
	A any
	B any
}

func (e ErrCannotCompare) Error() string {
	return fmt.Sprintf("cannot compare %T and %T", e.A, e.B)
}

// ErrDecode is returned when a value cannot be decoded into the type a
// matcher expects.
type ErrDecode struct {
	Source any
	Target any
}

func (e ErrDecode) Error() string {
	return fmt.Sprintf("cannot decode %T into %T", e.Source, e.Target)
}

// ErrMismatch is returned by checks that do not depend on a testing framework
// when the actual value does not satisfy the matcher.
type ErrMismatch struct {
	Reason   string
	Expected string
	Actual   string
}

func (e *ErrMismatch) Error() string {
	msg := fmt.Sprintf("Expected: %s\n     but: %s", e.Expected, e.Actual)
	if e.Reason == "" {
		return msg
	}
	return e.Reason + "\n" + msg
}
