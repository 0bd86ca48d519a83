// Package decoder contains the default [domain.Decoder] implementation and
// the [DecodesTo] matcher built on it.
package decoder

import (
	"fmt"

	"github.com/goccy/go-reflect"
	"github.com/mitchellh/mapstructure"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/base"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
	"github.com/vinicius-lino-figueiredo/gematcher/pkg/structure"
)

// Decoder implements domain.Decoder.
type Decoder struct {
	weak   bool
	strict bool
}

// NewDecoder returns a new implementation of domain.Decoder. Struct fields are
// matched by their gematcher tag, or by name if they have none.
func NewDecoder(options ...Option) domain.Decoder {
	d := &Decoder{}
	for _, option := range options {
		option(d)
	}
	return d
}

// Decode implements domain.Decoder.
func (d *Decoder) Decode(source any, target any) error {
	if target == nil {
		return domain.ErrTargetNil
	}

	value := reflect.ValueNoEscapeOf(target)
	if value.Kind() != reflect.Ptr {
		return domain.ErrNonPointer
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          structure.TagName,
		WeaklyTypedInput: d.weak,
		ErrorUnused:      d.strict,
		Result:           target,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(source); err != nil {
		errDec := domain.ErrDecode{Source: source, Target: target}
		return fmt.Errorf("%w: %w", errDec, err)
	}
	return nil
}

// Decoded implements [base.DiagnosingMatcher] for values that satisfy a
// matcher once decoded into T.
type Decoded[T any] struct {
	decoder domain.Decoder
	matcher domain.Matcher
}

// DecodesTo returns a matcher that decodes the actual value, usually a map,
// into a new T and checks it against m. Values that cannot be decoded do not
// match.
func DecodesTo[T any](m domain.Matcher, options ...Option) domain.Matcher {
	return base.NewTypeSafeDiagnosing[any](&Decoded[T]{
		decoder: NewDecoder(options...),
		matcher: m,
	})
}

// MatchesSafely implements [base.DiagnosingMatcher].
func (d *Decoded[T]) MatchesSafely(actual any, desc domain.Description) bool {
	var target T
	if err := d.decoder.Decode(actual, &target); err != nil {
		desc.AppendValue(actual).
			AppendText(" could not be decoded into ").
			AppendText(structure.TypeNameOf[T]()).
			AppendText(": ").
			AppendText(err.Error())
		return false
	}
	if !d.matcher.Matches(target) {
		desc.AppendText("decoded ")
		d.matcher.DescribeMismatch(target, desc)
		return false
	}
	return true
}

// DescribeTo implements [base.DiagnosingMatcher].
func (d *Decoded[T]) DescribeTo(desc domain.Description) {
	desc.AppendText("a value decoding to ").
		AppendText(structure.TypeNameOf[T]()).
		AppendText(" ").
		AppendDescriptionOf(d.matcher)
}
