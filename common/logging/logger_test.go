package logging

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type capturedEntry struct {
	level  level
	labels labelMap
	log    string
}

// captureOutput records every entry it receives for assertions.
type captureOutput struct {
	mu      sync.Mutex
	entries []capturedEntry
}

func (o *captureOutput) output(level level, labels labelMap, log string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries = append(o.entries, capturedEntry{level, labels, log})
}

func (o *captureOutput) take() []capturedEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.entries
}

type LoggerTestSuite struct {
	suite.Suite
}

func (s *LoggerTestSuite) TestThreshold() {
	rec := &captureOutput{}
	l := NewLoggerTag("threshold", &loggerOpt{thresholdLevel: warnLevel, output: rec})
	l.Debug("dropped %d", 1)
	l.Info("dropped too")
	l.Warn("kept")
	l.Error("kept %s", "also")

	entries := rec.take()
	s.Require().Len(entries, 2)
	s.Require().Equal(warnLevel, entries[0].level)
	s.Require().Equal("kept\n", entries[0].log)
	s.Require().Equal(errorLevel, entries[1].level)
	s.Require().Equal("kept also\n", entries[1].log)

	// Only error and above carry call-site labels.
	s.Require().NotContains(entries[0].labels, labelFileName)
	s.Require().Contains(entries[1].labels, labelFileName)
	s.Require().Contains(entries[1].labels, labelLineNumber)
}

func (s *LoggerTestSuite) TestNewLoggerDefaultTag() {
	rec := &captureOutput{}
	l := NewLogger(&loggerOpt{output: rec})
	l.Info("untagged")

	entries := rec.take()
	s.Require().Len(entries, 1)
	s.Require().Equal("untagged\n", entries[0].log)
	// An empty tag falls back to the host name when the line prints.
	s.Require().Equal(hostName, entries[0].labels[LabelTag])
}

func (s *LoggerTestSuite) TestLabels() {
	rec := &captureOutput{}
	l := NewLoggerTag("labeled", &loggerOpt{output: rec})
	l.SetLabel("shard", "7")
	l.Info("hello")

	entries := rec.take()
	s.Require().Len(entries, 1)
	s.Require().Equal("labeled", entries[0].labels[LabelTag])
	s.Require().Equal("7", entries[0].labels["shard"])
}

func (s *LoggerTestSuite) TestCloneIsolation() {
	rec := &captureOutput{}
	l := NewLoggerTag("origin", &loggerOpt{output: rec})
	l.SetLabel("shared", "yes")
	c := l.CloneLogger()
	c.SetLabel("only", "clone")
	c.Info("from clone")
	l.Info("from origin")

	entries := rec.take()
	s.Require().Len(entries, 2)
	s.Require().Equal("yes", entries[0].labels["shared"])
	s.Require().Equal("clone", entries[0].labels["only"])
	s.Require().NotContains(entries[1].labels, "only")
}

func (s *LoggerTestSuite) TestAppendOutput() {
	first := &captureOutput{}
	second := &captureOutput{}
	l := NewLoggerTag("fanout", &loggerOpt{output: first})
	l.AppendOutput(second)
	l.Notice("both")

	s.Require().Len(first.take(), 1)
	s.Require().Len(second.take(), 1)
}

func (s *LoggerTestSuite) TestRemoveColor() {
	colored := styleMap[errorLevel].Style("boom")
	s.Require().NotEqual("boom", colored)
	s.Require().Equal("boom", removeColor(colored))
	s.Require().Equal("plain", removeColor("plain"))
}

func TestLogger(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
