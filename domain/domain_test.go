package domain_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

type descriptionMock struct {
	mock.Mock
}

// AppendDescriptionOf implements [domain.Description].
func (d *descriptionMock) AppendDescriptionOf(v domain.SelfDescribing) domain.Description {
	return d.Called(v).Get(0).(domain.Description)
}

// AppendList implements [domain.Description].
func (d *descriptionMock) AppendList(start string, sep string, end string, items ...domain.SelfDescribing) domain.Description {
	return d.Called(start, sep, end, items).Get(0).(domain.Description)
}

// AppendText implements [domain.Description].
func (d *descriptionMock) AppendText(text string) domain.Description {
	return d.Called(text).Get(0).(domain.Description)
}

// AppendValue implements [domain.Description].
func (d *descriptionMock) AppendValue(value any) domain.Description {
	return d.Called(value).Get(0).(domain.Description)
}

// AppendValueList implements [domain.Description].
func (d *descriptionMock) AppendValueList(start string, sep string, end string, values ...any) domain.Description {
	return d.Called(start, sep, end, values).Get(0).(domain.Description)
}

type DomainTestSuite struct {
	suite.Suite
}

func (s *DomainTestSuite) TestOptions() {
	var buf strings.Builder
	l := zerolog.New(&buf)
	factory := func() domain.Description { return nil }

	var aos domain.AssertOptions
	ao := []domain.AssertOption{
		domain.WithAssertLogger(l),
		domain.WithAssertDescriptionFactory(factory),
	}
	for _, opt := range ao {
		opt(&aos)
	}
	aos.Logger.Info().Msg("hello")
	s.Contains(buf.String(), `"message":"hello"`)
	s.NotNil(aos.DescriptionFactory)
	s.Nil(aos.DescriptionFactory())
}

func (s *DomainTestSuite) TestDescriberFunc() {
	d := new(descriptionMock)
	d.On("AppendText", "something").Return(d).Once()

	var called int
	f := domain.DescriberFunc(func(d domain.Description) {
		called++
		d.AppendText("something")
	})
	f.DescribeTo(d)

	s.Equal(1, called)
	d.AssertExpectations(s.T())
}

func (s *DomainTestSuite) TestSelfDescribings() {
	a := domain.DescriberFunc(func(domain.Description) {})
	b := domain.DescriberFunc(func(domain.Description) {})

	items := domain.SelfDescribings([]domain.DescriberFunc{a, b})
	s.Len(items, 2)

	s.Empty(domain.SelfDescribings([]domain.DescriberFunc(nil)))
}

func (s *DomainTestSuite) TestErrorMessages() {
	var e error

	e = domain.ErrNilMatcher
	s.Equal("matcher is nil", e.Error())

	e = domain.ErrInvalidPattern{Kind: "glob", Pattern: "[a"}
	s.Equal(`invalid glob pattern "[a"`, e.Error())

	e = domain.ErrNonStruct{Type: "int"}
	s.Equal("cannot enumerate fields of non-struct type int", e.Error())

	e = domain.ErrExpressionType{Expression: "actual + 1", Got: "int"}
	s.Equal(`expression "actual + 1" should evaluate to bool, got int`, e.Error())

	e = domain.ErrCannotCompare{A: "a", B: 2}
	s.Equal("cannot compare string and int", e.Error())

	e = domain.ErrDecode{Source: 123, Target: new(string)}
	s.Equal("cannot decode int into *string", e.Error())

	e = &domain.ErrMismatch{Reason: "r", Expected: "<1>", Actual: "was <2>"}
	s.Equal("r\nExpected: <1>\n     but: was <2>", e.Error())

	e = &domain.ErrMismatch{Expected: "<1>", Actual: "was <2>"}
	s.Equal("Expected: <1>\n     but: was <2>", e.Error())
}

func TestDomainTestSuite(t *testing.T) {
	suite.Run(t, new(DomainTestSuite))
}
