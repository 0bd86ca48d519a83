// Package description contains the default [domain.Description]
// implementations and the rendering of values into readable text.
package description

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vinicius-lino-figueiredo/gematcher/domain"
	"github.com/vinicius-lino-figueiredo/gematcher/pkg/structure"
)

// StringDescription implements [domain.Description] by accumulating text in
// memory.
type StringDescription struct {
	buf      strings.Builder
	renderer func(any) string
}

// NewStringDescription returns a new, empty implementation of
// domain.Description that keeps everything appended to it.
func NewStringDescription(options ...Option) domain.Description {
	d := &StringDescription{
		renderer: RenderValue,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// AppendText implements [domain.Description].
func (d *StringDescription) AppendText(text string) domain.Description {
	d.buf.WriteString(text)
	return d
}

// AppendValue implements [domain.Description].
func (d *StringDescription) AppendValue(value any) domain.Description {
	d.buf.WriteString(d.renderer(value))
	return d
}

// AppendValueList implements [domain.Description].
func (d *StringDescription) AppendValueList(start, sep, end string, values ...any) domain.Description {
	d.buf.WriteString(start)
	for n, v := range values {
		if n > 0 {
			d.buf.WriteString(sep)
		}
		d.buf.WriteString(d.renderer(v))
	}
	d.buf.WriteString(end)
	return d
}

// AppendDescriptionOf implements [domain.Description].
func (d *StringDescription) AppendDescriptionOf(v domain.SelfDescribing) domain.Description {
	if v == nil {
		return d.AppendText("null")
	}
	v.DescribeTo(d)
	return d
}

// AppendList implements [domain.Description].
func (d *StringDescription) AppendList(start, sep, end string, items ...domain.SelfDescribing) domain.Description {
	d.buf.WriteString(start)
	for n, item := range items {
		if n > 0 {
			d.buf.WriteString(sep)
		}
		d.AppendDescriptionOf(item)
	}
	d.buf.WriteString(end)
	return d
}

// String returns everything appended so far.
func (d *StringDescription) String() string {
	return d.buf.String()
}

// NullDescription implements [domain.Description] by discarding everything.
// It is used when only the result of a diagnosing match is needed.
type NullDescription struct{}

// NewNullDescription returns an implementation of domain.Description that
// discards all input.
func NewNullDescription() domain.Description {
	return NullDescription{}
}

// AppendText implements [domain.Description].
func (n NullDescription) AppendText(string) domain.Description { return n }

// AppendValue implements [domain.Description].
func (n NullDescription) AppendValue(any) domain.Description { return n }

// AppendValueList implements [domain.Description].
func (n NullDescription) AppendValueList(string, string, string, ...any) domain.Description {
	return n
}

// AppendDescriptionOf implements [domain.Description].
func (n NullDescription) AppendDescriptionOf(domain.SelfDescribing) domain.Description { return n }

// AppendList implements [domain.Description].
func (n NullDescription) AppendList(string, string, string, ...domain.SelfDescribing) domain.Description {
	return n
}

// String returns an empty string.
func (n NullDescription) String() string { return "" }

// ToString renders the self-description of v.
func ToString(v domain.SelfDescribing) string {
	d := &StringDescription{renderer: RenderValue}
	d.AppendDescriptionOf(v)
	return d.String()
}

// MismatchString renders the reason why m rejects actual.
func MismatchString(m domain.Matcher, actual any) string {
	d := &StringDescription{renderer: RenderValue}
	m.DescribeMismatch(actual, d)
	return d.String()
}

// maxListDepth bounds the nesting of rendered lists, so that lists holding
// themselves are still rendered.
const maxListDepth = 16

// RenderValue returns the text used to represent a value inside a
// description. Null values are rendered as null, strings are quoted, lists are
// rendered item by item between brackets and everything else is wrapped in
// angle brackets. Lists nested deeper than 16 levels are rendered as [...].
func RenderValue(value any) string {
	return renderValue(value, 0)
}

func renderValue(value any, depth int) string {
	if structure.IsNull(value) {
		return "null"
	}
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return "<" + v.String() + ">"
	}
	if items, ok := structure.Items(value); ok {
		if depth >= maxListDepth {
			return "[...]"
		}
		var sb strings.Builder
		sb.WriteByte('[')
		for n, item := range items {
			if n > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(renderValue(item, depth+1))
		}
		sb.WriteByte(']')
		return sb.String()
	}
	return "<" + fmt.Sprint(value) + ">"
}
