package expression

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/description"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

type point struct {
	X     int
	Y     int `gematcher:"y"`
	Label *string
}

type ExpressionTestSuite struct {
	suite.Suite
}

func (s *ExpressionTestSuite) TestSatisfies() {
	m, err := Satisfies("actual > 3")
	s.NoError(err)
	s.True(m.Matches(4))
	s.False(m.Matches(3))
	s.False(m.Matches("4"))

	s.True(MustSatisfy(`actual.name.startsWith("an")`).Matches(map[string]any{"name": "ana"}))
	s.True(MustSatisfy("size(actual) == 2").Matches([]string{"a", "b"}))
	s.True(MustSatisfy("actual == null").Matches(nil))
	s.True(MustSatisfy("actual == null").Matches((*point)(nil)))
	s.True(MustSatisfy("actual").Matches(true))
	s.False(MustSatisfy("actual").Matches(1))
}

func (s *ExpressionTestSuite) TestStructs() {
	m := MustSatisfy("actual.X + actual.y == 3 && actual.Label == null")
	s.True(m.Matches(point{X: 1, Y: 2}))
	s.True(m.Matches(&point{X: 2, Y: 1}))
	s.False(m.Matches(point{X: 2, Y: 2}))

	s.True(MustSatisfy("[actual][0].X == 1").Matches(point{X: 1}))
	s.True(MustSatisfy("actual[1].y == 5").Matches([]point{{}, {Y: 5}}))
}

func (s *ExpressionTestSuite) TestTimes() {
	m := MustSatisfy(`actual > timestamp("2020-01-01T00:00:00Z")`)
	s.True(m.Matches(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
	s.False(m.Matches(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func (s *ExpressionTestSuite) TestDescriptions() {
	m := MustSatisfy("actual > 3")
	s.Equal(`a value satisfying "actual > 3"`, description.ToString(m))
	s.Equal("was <2>", description.MismatchString(m, 2))
	s.Contains(description.MismatchString(m, "a"), `"a" could not be evaluated: `)
}

func (s *ExpressionTestSuite) TestInvalidExpression() {
	_, err := Satisfies("actual >")
	var errPattern domain.ErrInvalidPattern
	s.True(errors.As(err, &errPattern))
	s.Equal("cel", errPattern.Kind)

	_, err = Satisfies("1 + 2")
	s.ErrorIs(err, domain.ErrExpressionType{Expression: "1 + 2", Got: "int"})

	_, err = Satisfies("other > 1")
	s.Error(err)

	s.Panics(func() { MustSatisfy(`"abc"`) })
}

func TestExpressionTestSuite(t *testing.T) {
	suite.Run(t, new(ExpressionTestSuite))
}
