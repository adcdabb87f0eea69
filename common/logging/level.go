package logging

import (
	"cloud.google.com/go/logging"

	"github.com/mcdexio/blockdeque/common/config"
)

// level of logger
type level int

// defaultThresholdLevel returns the default log level.
func defaultThresholdLevel() level {
	return level(config.GetInt64("SERVER_LOGLEVEL", 6))
}

// Log / Severity Levels
const (
	firstLevel level = iota
	criticalLevel
	errorLevel
	warnLevel
	noticeLevel
	infoLevel
	debugLevel
	lastLevel
)

// IsValid returns if the l is valid.
func (l level) IsValid() bool {
	return l < lastLevel && l > firstLevel
}

// String returns the string description of l.
func (l level) String() string {
	switch l {
	case criticalLevel:
		return " CRIT"
	case errorLevel:
		return "ERROR"
	case warnLevel:
		return " WARN"
	case noticeLevel:
		return " NOTE"
	case infoLevel:
		return " INFO"
	case debugLevel:
		return "DEBUG"
	default:
		return ""
	}
}

// Severity returns the stackdriver severity of l.
func (l level) Severity() logging.Severity {
	switch l {
	case criticalLevel:
		return logging.Critical
	case errorLevel:
		return logging.Error
	case warnLevel:
		return logging.Warning
	case noticeLevel:
		return logging.Notice
	case infoLevel:
		return logging.Info
	case debugLevel:
		return logging.Debug
	default:
		return -1
	}
}
