package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RecoverTestSuite struct {
	suite.Suite
}

var errBadInput = stderrors.New("bad input")

// parseEven wraps an asserting body into an error-returning function.
func parseEven(v int) (ret int, err error) {
	defer RecoverErrorPanic(&err, &ret)
	ret = v
	if v%2 != 0 {
		panic(errBadInput)
	}
	return ret, nil
}

func (s *RecoverTestSuite) TestRecoverErrorPanic() {
	v, err := parseEven(4)
	s.Require().NoError(err)
	s.Require().Equal(4, v)

	v, err = parseEven(5)
	s.Require().ErrorIs(err, errBadInput)
	s.Require().Equal(0, v)
}

func (s *RecoverTestSuite) TestNonErrorPanicReraised() {
	f := func() (ret int, err error) {
		defer RecoverErrorPanic(&err, &ret)
		panic("not an error")
	}
	s.Require().PanicsWithValue("not an error", func() { _, _ = f() })
}

func TestRecover(t *testing.T) {
	suite.Run(t, new(RecoverTestSuite))
}
