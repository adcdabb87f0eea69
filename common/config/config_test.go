package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestGetString() {
	SetString("CFG_TEST_STR", "hello")
	s.Require().Equal("hello", GetString("CFG_TEST_STR"))
	s.Require().Equal("fallback", GetString("CFG_TEST_STR_MISSING", "fallback"))
	s.Require().Panics(func() { GetString("CFG_TEST_STR_MISSING") })
}

func (s *ConfigTestSuite) TestTypedGetters() {
	SetString("CFG_TEST_BOOL", "true")
	SetString("CFG_TEST_INT", "-12")
	SetString("CFG_TEST_UINT", "34")
	SetString("CFG_TEST_INT64", "5000000000")
	SetString("CFG_TEST_MS", "1500")

	s.Require().True(GetBool("CFG_TEST_BOOL"))
	s.Require().Equal(-12, GetInt("CFG_TEST_INT"))
	s.Require().Equal(uint(34), GetUint("CFG_TEST_UINT"))
	s.Require().Equal(int64(5000000000), GetInt64("CFG_TEST_INT64"))
	s.Require().Equal(1500*time.Millisecond, GetMillisecond("CFG_TEST_MS"))

	// Parsed settings are cached, later raw writes do not change them.
	SetString("CFG_TEST_INT", "99")
	s.Require().Equal(-12, GetInt("CFG_TEST_INT"))

	s.Require().True(GetBool("CFG_TEST_BOOL_MISSING", true))
	s.Require().Panics(func() { GetInt("CFG_TEST_INT_MISSING") })
}

func (s *ConfigTestSuite) TestParseFailure() {
	SetString("CFG_TEST_BAD_INT", "zzz")
	s.Require().Panics(func() { GetInt("CFG_TEST_BAD_INT") })
}

func TestConfig(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
