package logic

import (
	"slices"

	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

const (
	opAnd = iota
	opOr
)

// BothBuilder holds the first operand of a conjunction. It only exposes
// [BothBuilder.And].
type BothBuilder struct {
	first domain.Matcher
}

// Both starts a conjunction with m.
func Both(m domain.Matcher) *BothBuilder {
	return &BothBuilder{first: m}
}

// And returns a Combinable satisfied when both the first operand and other
// are satisfied.
func (b *BothBuilder) And(other domain.Matcher) *Combinable {
	return newCombinable(opAnd, []domain.Matcher{b.first, other})
}

// EitherBuilder holds the first operand of a disjunction. It only exposes
// [EitherBuilder.Or].
type EitherBuilder struct {
	first domain.Matcher
}

// Either starts a disjunction with m.
func Either(m domain.Matcher) *EitherBuilder {
	return &EitherBuilder{first: m}
}

// Or returns a Combinable satisfied when either the first operand or other
// is satisfied.
func (e *EitherBuilder) Or(other domain.Matcher) *Combinable {
	return newCombinable(opOr, []domain.Matcher{e.first, other})
}

// Combinable is a [domain.Matcher] that can be extended with further
// conjunctions or disjunctions. It is created from [Both] or [Either].
//
// Every value returned by And or Or is a new Combinable. Chaining the same
// operator extends a flat list, so Both(a).And(b).And(c) is described as
// (a and b and c). Changing the operator nests the current combination as the
// first operand of the new one.
type Combinable struct {
	op       int
	matchers []domain.Matcher
	combined domain.Matcher
}

func newCombinable(op int, matchers []domain.Matcher) *Combinable {
	c := &Combinable{op: op, matchers: matchers}
	if op == opAnd {
		c.combined = AllOf(matchers...)
	} else {
		c.combined = AnyOf(matchers...)
	}
	return c
}

// And returns a new Combinable that is satisfied when both the receiver and
// other are satisfied.
func (c *Combinable) And(other domain.Matcher) *Combinable {
	return c.extend(opAnd, other)
}

// Or returns a new Combinable that is satisfied when either the receiver or
// other is satisfied.
func (c *Combinable) Or(other domain.Matcher) *Combinable {
	return c.extend(opOr, other)
}

func (c *Combinable) extend(op int, other domain.Matcher) *Combinable {
	if c.op == op {
		matchers := slices.Clone(c.matchers)
		return newCombinable(op, append(matchers, other))
	}
	return newCombinable(op, []domain.Matcher{c, other})
}

// Matches implements [domain.Matcher].
func (c *Combinable) Matches(actual any) bool {
	return c.combined.Matches(actual)
}

// DescribeTo implements [domain.Matcher].
func (c *Combinable) DescribeTo(d domain.Description) {
	d.AppendDescriptionOf(c.combined)
}

// DescribeMismatch implements [domain.Matcher].
func (c *Combinable) DescribeMismatch(actual any, d domain.Description) {
	c.combined.DescribeMismatch(actual, d)
}
