package text

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gematcher/adapter/description"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
)

func describe(m domain.Matcher) string {
	return description.ToString(m)
}

func mismatch(m domain.Matcher, actual any) string {
	return description.MismatchString(m, actual)
}

type TextTestSuite struct {
	suite.Suite
}

func (s *TextTestSuite) TestContainsString() {
	m := ContainsString("ring")
	s.True(m.Matches("myStringOfNote"))
	s.True(m.Matches("ring"))
	s.False(m.Matches("myStRINGOfNote"))
	s.False(m.Matches(nil))
	s.False(m.Matches(12))

	s.Equal(`a string containing "ring"`, describe(m))
	s.Equal(`was "my\"str"`, mismatch(m, `my\"str`))
	s.Equal("was null", mismatch(m, nil))
	s.Equal("was a int (<12>)", mismatch(m, 12))
}

func (s *TextTestSuite) TestContainsStringIgnoringCase() {
	m := ContainsStringIgnoringCase("RING")
	s.True(m.Matches("myStringOfNote"))
	s.True(m.Matches("RING"))
	s.False(m.Matches("rin"))
	s.Equal(`a string containing "RING" ignoring case`, describe(m))
}

// Prefix matching should be case sensitive unless stated otherwise.
func (s *TextTestSuite) TestStartsWith() {
	s.True(StartsWith("my").Matches("myValue"))
	s.False(StartsWith("my").Matches("Myvalue"))
	s.True(StartsWithIgnoringCase("my").Matches("Myvalue"))
	s.Equal(`a string starting with "my"`, describe(StartsWith("my")))
	s.Equal(`a string starting with "my" ignoring case`, describe(StartsWithIgnoringCase("my")))
}

func (s *TextTestSuite) TestEndsWith() {
	s.True(EndsWith("Note").Matches("myStringOfNote"))
	s.False(EndsWith("note").Matches("myStringOfNote"))
	s.True(EndsWithIgnoringCase("note").Matches("myStringOfNote"))
	s.Equal(`a string ending with "Note"`, describe(EndsWith("Note")))
	s.Equal(`was "abc"`, mismatch(EndsWith("x"), "abc"))
}

func (s *TextTestSuite) TestEmptySubstring() {
	s.True(ContainsString("").Matches(""))
	s.True(StartsWith("").Matches("abc"))
	s.True(EndsWithIgnoringCase("").Matches("abc"))
}

// The whole string should match, not only a part of it.
func (s *TextTestSuite) TestMatchesRegex() {
	m, err := MatchesRegex("[a-z]+")
	s.NoError(err)
	s.True(m.Matches("abc"))
	s.False(m.Matches("abc1"))
	s.False(m.Matches("1abc"))
	s.False(m.Matches("ABC"))
	s.False(m.Matches(nil))

	s.Equal("a string matching the pattern <[a-z]+>", describe(m))
	s.Equal(`the string was "abc1"`, mismatch(m, "abc1"))
	s.Equal("was null", mismatch(m, nil))
	s.Equal("was int <1>", mismatch(m, 1))

	alt := MustMatchRegex("a|bc")
	s.True(alt.Matches("a"))
	s.True(alt.Matches("bc"))
	s.False(alt.Matches("abc"))
}

func (s *TextTestSuite) TestMatchesRegexIgnoringCase() {
	m, err := MatchesRegexIgnoringCase("[a-z]+")
	s.NoError(err)
	s.True(m.Matches("ABC"))
	s.True(MatchesRegexp(regexp.MustCompile(`\d{2}`)).Matches("42"))
}

func (s *TextTestSuite) TestInvalidRegex() {
	_, err := MatchesRegex("[a-")
	s.ErrorAs(err, new(domain.ErrInvalidPattern))
	s.ErrorIs(err, domain.ErrInvalidPattern{Kind: "regex", Pattern: "[a-"})
	s.Panics(func() { MustMatchRegex("(") })
}

func (s *TextTestSuite) TestMatchesPattern() {
	m, err := MatchesPattern(`(\w)\1`)
	s.NoError(err)
	s.True(m.Matches("aa"))
	s.False(m.Matches("ab"))
	s.False(m.Matches("aab"))

	lookahead := MustMatchPattern(`(?=.*\d)\w+`)
	s.True(lookahead.Matches("abc1"))
	s.False(lookahead.Matches("abc"))

	s.Equal(`a string matching the pattern "(\\w)\\1"`, describe(m))
	s.Equal(`the string was "ab"`, mismatch(m, "ab"))

	_, err = MatchesPattern("(")
	s.ErrorIs(err, domain.ErrInvalidPattern{Kind: "regex2", Pattern: "("})
	s.Panics(func() { MustMatchPattern("[") })
}

func (s *TextTestSuite) TestMatchesGlob() {
	m, err := MatchesGlob("*.go")
	s.NoError(err)
	s.True(m.Matches("main.go"))
	s.True(m.Matches("cmd/main.go"))
	s.False(m.Matches("main.rs"))

	sep := MustMatchGlob("*.go", '/')
	s.True(sep.Matches("main.go"))
	s.False(sep.Matches("cmd/main.go"))

	s.Equal(`a string matching the glob "*.go"`, describe(m))
	s.Equal(`was "main.rs"`, mismatch(m, "main.rs"))

	_, err = MatchesGlob("[a")
	s.ErrorIs(err, domain.ErrInvalidPattern{Kind: "glob", Pattern: "[a"})
	s.Panics(func() { MustMatchGlob("[a") })
}

func (s *TextTestSuite) TestIsUUID() {
	m := IsUUID()
	s.True(m.Matches(uuid.NewString()))
	s.True(m.Matches("urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	s.False(m.Matches("abc"))
	s.False(m.Matches(uuid.New()))

	s.Equal("a UUID string", describe(m))
	s.Contains(mismatch(m, "abc"), `"abc" is not a UUID: `)
	s.Equal("was UUID <00000000-0000-0000-0000-000000000000>", mismatch(m, uuid.Nil))
}

func TestTextTestSuite(t *testing.T) {
	suite.Run(t, new(TextTestSuite))
}
