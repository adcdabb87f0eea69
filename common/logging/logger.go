package logging

import (
	"fmt"
	"os"
	"sync"
)

// Logger defines the logger interface.
type Logger interface {
	CloneLogger() Logger

	AppendOutput(output)

	SetLabel(label string, value string)

	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Critical(format string, args ...interface{})
}

// assertLoggerInterface
func _() {
	var _ Logger = (*logger)(nil)
}

// logger defines the logger.
type logger struct {
	sync.RWMutex

	labelMap       labelMap
	thresholdLevel level
	output         output
}

// loggerOpt defines the logger options.
type loggerOpt struct {
	labelMap       labelMap
	thresholdLevel level
	output         output
}

// NewLogger returns a new logger.
func NewLogger(opt ...*loggerOpt) Logger {
	return NewLoggerTag("", opt...)
}

// NewLoggerTag returns a new logger.
func NewLoggerTag(tag string, opt ...*loggerOpt) Logger {
	// init new logger instance.
	logger := &logger{
		labelMap:       labelMap{LabelTag: tag},
		thresholdLevel: defaultThresholdLevel(),
	}

	// config with opt if specified.
	if len(opt) == 1 && opt[0] != nil {
		if len(opt[0].labelMap) > 0 {
			for k, v := range opt[0].labelMap {
				logger.labelMap[k] = v
			}
		}
		if opt[0].thresholdLevel.IsValid() {
			logger.thresholdLevel = opt[0].thresholdLevel
		}
		if opt[0].output != nil {
			logger.output = opt[0].output
		}
	}
	if logger.output == nil {
		logger.output = defaultOutput()
	}

	// check if level is valid.
	if !logger.thresholdLevel.IsValid() {
		panic(fmt.Sprintf("invalid log threshold level (%d, %d), [%d]",
			firstLevel, lastLevel, logger.thresholdLevel))
	}
	return logger
}

// CloneLogger returns a cloned logger.
func (l *logger) CloneLogger() Logger {
	l.RLock()
	defer l.RUnlock()
	m := labelMap{}
	for key, value := range l.labelMap {
		m[key] = value
	}
	return &logger{
		labelMap:       m,
		thresholdLevel: l.thresholdLevel,
		output:         l.output,
	}
}

// AppendOutput appends a output.
func (l *logger) AppendOutput(o output) {
	l.output = newMultiOutput(l.output, o)
}

// SetLabel sets a label.
func (l *logger) SetLabel(label string, value string) {
	l.Lock()
	defer l.Unlock()
	l.labelMap[label] = value
}

// Debug - logger level of dubug
func (l *logger) Debug(format string, args ...interface{}) {
	l.print(3, debugLevel, format, args...)
}

// Info - logger level of info
func (l *logger) Info(format string, args ...interface{}) {
	l.print(3, infoLevel, format, args...)
}

// Notice - logger level of notice
func (l *logger) Notice(format string, args ...interface{}) {
	l.print(3, noticeLevel, format, args...)
}

// Warn - logger level of warn
func (l *logger) Warn(format string, args ...interface{}) {
	l.print(3, warnLevel, format, args...)
}

// Error - logger level of error
func (l *logger) Error(format string, args ...interface{}) {
	l.print(3, errorLevel, format, args...)
}

// Critical - logger level of error
func (l *logger) Critical(format string, args ...interface{}) {
	l.print(3, criticalLevel, format, args...)
}

func (l *logger) print(numStackFrame int, level level,
	format string, args ...interface{}) {
	defer func() {
		if level <= criticalLevel {
			Finalize()
			os.Exit(1)
		}
	}()
	if level > l.thresholdLevel {
		return
	}
	l.RLock()
	m := labelMap{}
	for key, value := range l.labelMap {
		m[key] = value
	}
	l.RUnlock()

	// Setup default tags.
	m["pod"] = hostName
	if t := m[LabelTag]; t == "" {
		m[LabelTag] = hostName
	}

	if level <= errorLevel {
		m.addDebugInfo(numStackFrame)
	}

	l.output.output(level, m, fmt.Sprintf(format, args...)+"\n")
}
