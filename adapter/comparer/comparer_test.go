package comparer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gematcher/domain"
	"github.com/vinicius-lino-figueiredo/gematcher/pkg/structure"
)

type ComparerTestSuite struct {
	suite.Suite
	c *Comparer
}

func (s *ComparerTestSuite) SetupTest() {
	s.c = NewComparer().(*Comparer)
}

// null should always be the smallest value.
func (s *ComparerTestSuite) TestNullIsSmallest() {
	var nilPtr *int
	otherStuff := [...]any{"string", "", -1, 0, uint(12), false,
		time.UnixMilli(12345), []any{}, []any{"quite", 5},
	}
	for _, null := range [...]any{nil, nilPtr} {
		for _, stuff := range otherStuff {
			comp, err := s.c.Compare(null, stuff)
			s.NoError(err)
			s.Equal(-1, comp)
			comp, err = s.c.Compare(stuff, null)
			s.NoError(err)
			s.Equal(1, comp)
		}
	}
	comp, err := s.c.Compare(nil, nilPtr)
	s.NoError(err)
	s.Zero(comp)
}

// number should be the second smallest type (any number type).
func (s *ComparerTestSuite) TestNumberIsSecondSmallest() {
	testCases := []struct {
		arg1 any
		arg2 any
		res  int
	}{
		{arg1: int64(-12), arg2: int16(0), res: -1},
		{arg1: uint8(0), arg2: int8(-3), res: 1},
		{arg1: 5.7, arg2: uint32(2), res: 1},
		{arg1: 5.7, arg2: float32(12.3), res: -1},
		{arg1: uint64(0), arg2: uint16(0), res: 0},
		{arg1: -2.6, arg2: -2.6, res: 0},
		{arg1: int32(5), arg2: 5, res: 0},
		{arg1: uint64(math.MaxUint64), arg2: int64(math.MaxInt64), res: 1},
		{arg1: time.Second, arg2: time.Minute, res: -1},
		{arg1: time.Second, arg2: int64(time.Second), res: 0},
	}

	for _, tc := range testCases {
		comp, err := s.c.Compare(tc.arg1, tc.arg2)
		s.NoError(err)
		s.Equal(tc.res, comp)
	}

	otherStuff := [...]any{"string", "", false, time.UnixMilli(12345),
		[]any{}, []any{"quite", 5},
	}
	for _, number := range [...]any{-12, uint(0), 12, 5.7} {
		for _, stuff := range otherStuff {
			comp, err := s.c.Compare(number, stuff)
			s.NoError(err)
			s.Equal(-1, comp)
			comp, err = s.c.Compare(stuff, number)
			s.NoError(err)
			s.Equal(1, comp)
		}
	}
}

// string should be the third smallest type.
func (s *ComparerTestSuite) TestStringIsThirdSmallest() {
	testCases := []struct {
		arg1 string
		arg2 string
		res  int
	}{
		{arg1: "", arg2: "hey", res: -1},
		{arg1: "hey", arg2: "", res: 1},
		{arg1: "hey", arg2: "hew", res: 1},
		{arg1: "hey", arg2: "hey", res: 0},
	}

	for _, tc := range testCases {
		comp, err := s.c.Compare(tc.arg1, tc.arg2)
		s.NoError(err)
		s.Equal(tc.res, comp)
	}

	otherStuff := [...]any{false, time.UnixMilli(12345), []any{}, []any{"quite", 5}}
	for _, str := range [...]string{"", "string", "hello world"} {
		for _, stuff := range otherStuff {
			comp, err := s.c.Compare(str, stuff)
			s.NoError(err)
			s.Equal(-1, comp)
			comp, err = s.c.Compare(stuff, str)
			s.NoError(err)
			s.Equal(1, comp)
		}
	}
}

// bool should be the fourth smallest type.
func (s *ComparerTestSuite) TestBoolIsFourthSmallest() {
	testCases := []struct {
		arg1 bool
		arg2 bool
		res  int
	}{
		{arg1: true, arg2: true, res: 0},
		{arg1: false, arg2: false, res: 0},
		{arg1: true, arg2: false, res: 1},
		{arg1: false, arg2: true, res: -1},
	}

	for _, tc := range testCases {
		comp, err := s.c.Compare(tc.arg1, tc.arg2)
		s.NoError(err)
		s.Equal(tc.res, comp)
	}

	otherStuff := [...]any{time.UnixMilli(12345), []any{}, []any{"quite", 5}}
	for _, b := range [...]bool{true, false} {
		for _, stuff := range otherStuff {
			comp, err := s.c.Compare(b, stuff)
			s.NoError(err)
			s.Equal(-1, comp)
			comp, err = s.c.Compare(stuff, b)
			s.NoError(err)
			s.Equal(1, comp)
		}
	}
}

// time should be the fifth smallest type.
func (s *ComparerTestSuite) TestTimeIsFifthSmallest() {
	now := time.Now()
	testCases := []struct {
		arg1 time.Time
		arg2 time.Time
		res  int
	}{
		{arg1: now, arg2: now, res: 0},
		{arg1: time.UnixMilli(54341), arg2: now, res: -1},
		{arg1: now, arg2: time.UnixMilli(54341), res: 1},
		{arg1: time.UnixMilli(0), arg2: time.UnixMilli(-54341), res: 1},
		{arg1: time.UnixMilli(123), arg2: time.UnixMilli(4341), res: -1},
	}

	for _, tc := range testCases {
		comp, err := s.c.Compare(tc.arg1, tc.arg2)
		s.NoError(err)
		s.Equal(tc.res, comp)
	}

	otherStuff := [...]any{[]any{}, []any{"quite", 5}, [2]int{}}
	for _, t := range [...]time.Time{time.UnixMilli(-123), now, time.UnixMilli(0)} {
		for _, stuff := range otherStuff {
			comp, err := s.c.Compare(t, stuff)
			s.NoError(err)
			s.Equal(-1, comp)
			comp, err = s.c.Compare(stuff, t)
			s.NoError(err)
			s.Equal(1, comp)
		}
	}
}

// lists should be the greatest type, compared item by item.
func (s *ComparerTestSuite) TestListIsGreatest() {
	testCases := []struct {
		arg1 any
		arg2 any
		res  int
	}{
		{arg1: []any{}, arg2: []any{}, res: 0},
		{arg1: []any{"hello"}, arg2: []any{}, res: 1},
		{arg1: []any{}, arg2: []any{"hello"}, res: -1},
		{arg1: []any{"hello"}, arg2: []any{"hello", "world"}, res: -1},
		{arg1: []any{"hello", "earth"}, arg2: []any{"hello", "world"}, res: -1},
		{arg1: []any{"hello", "zzz"}, arg2: []any{"hello", "world"}, res: 1},
		{arg1: []string{"hello", "world"}, arg2: [2]any{"hello", "world"}, res: 0},
		{arg1: []int{1, 2}, arg2: []float64{1, 2.5}, res: -1},
	}

	for _, tc := range testCases {
		comp, err := s.c.Compare(tc.arg1, tc.arg2)
		s.NoError(err)
		s.Equal(tc.res, comp)
	}
}

// comparison between two unknown types should return errors.
func (s *ComparerTestSuite) TestErrorOnUnknownPair() {
	testCases := []struct {
		arg1 any
		arg2 any
	}{
		{arg1: struct{}{}, arg2: struct{}{}},
		{arg1: make(map[string]any), arg2: make(map[string]any)},
		{arg1: []any{struct{}{}}, arg2: []any{struct{}{}}},
	}

	for _, tc := range testCases {
		_, err := s.c.Compare(tc.arg1, tc.arg2)
		s.ErrorAs(err, &domain.ErrCannotCompare{})
	}
}

func (s *ComparerTestSuite) TestComparable() {
	now := time.Now()
	arr := []any{1, "2", 3.0}

	values := []any{nil, false, true, 1, now, "abc", arr}

	cannotCompare := func(v any) func() {
		return func() {
			for _, value := range values {
				s.False(s.c.Comparable(v, value))
			}
		}
	}

	canCompareKind := func(v any, same func(any) bool) func() {
		return func() {
			for _, value := range values {
				s.Equal(same(value), s.c.Comparable(v, value))
			}
		}
	}

	isNumber := func(v any) bool { _, ok := AsNumber(v); return ok }
	isString := func(v any) bool { _, ok := v.(string); return ok }
	isTime := func(v any) bool { _, ok := v.(time.Time); return ok }

	isBool := func(v any) bool { _, ok := v.(bool); return ok }
	isList := structure.IsList

	s.Run("Nil", cannotCompare(nil))
	s.Run("Bool", func() {
		s.Run("False", canCompareKind(false, isBool))
		s.Run("True", canCompareKind(true, isBool))
	})
	s.Run("Number", func() {
		s.Run("Int", canCompareKind(int(1), isNumber))
		s.Run("Int8", canCompareKind(int8(1), isNumber))
		s.Run("Uint64", canCompareKind(uint64(1), isNumber))
		s.Run("Float32", canCompareKind(float32(1), isNumber))
		s.Run("Duration", canCompareKind(time.Second, isNumber))
	})
	s.Run("String", canCompareKind("abc", isString))
	s.Run("Time", canCompareKind(now, isTime))
	s.Run("Array", canCompareKind(arr, isList))
	s.Run("Slice", canCompareKind([]int{1}, isList))
}

func (s *ComparerTestSuite) TestAsFloat() {
	f, ok := AsFloat(uint8(3))
	s.True(ok)
	s.Equal(3.0, f)

	f, ok = AsFloat(float32(0.5))
	s.True(ok)
	s.Equal(0.5, f)

	_, ok = AsFloat("1")
	s.False(ok)
	_, ok = AsFloat(nil)
	s.False(ok)
	_, ok = AsFloat(math.NaN())
	s.False(ok)
	_, ok = AsFloat(float32(math.NaN()))
	s.False(ok)
}

func TestComparerTestSuite(t *testing.T) {
	suite.Run(t, new(ComparerTestSuite))
}
