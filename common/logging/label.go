package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ttacon/chalk"
)

// labelMap are log labels.
type labelMap map[string]string

// LabelTag Enumeration of Label.
const (
	LabelTag = "tag"
)

const (
	labelProcessID   = "pid"
	labelGoroutineID = "go_id"
	labelFuncName    = "func_name"
	labelFileName    = "file_name"
	labelLineNumber  = "line_number"
)

var (
	plainStyle      = chalk.ResetColor.NewStyle()
	funcNameStyle   = chalk.Cyan.NewStyle()
	fileNameStyle   = chalk.Magenta.NewStyle()
	lineNumberStyle = chalk.Yellow.NewStyle()
)

// goroutineID digs the current goroutine id out of the stack header.
func goroutineID() string {
	buffer := make([]byte, 64)
	buffer = buffer[:runtime.Stack(buffer, false)]
	fields := bytes.Fields(buffer)
	if len(fields) < 2 {
		return "-1"
	}
	return string(fields[1])
}

// addDebugInfo records process, goroutine and call-site labels.
// numStackFrame counts frames from addDebugInfo up to the logging caller.
func (l *labelMap) addDebugInfo(numStackFrame int) {
	(*l)[labelProcessID] = fmt.Sprintf("%d", os.Getpid())
	(*l)[labelGoroutineID] = goroutineID()

	funcName := "???"
	pc, file, line, ok := runtime.Caller(numStackFrame)
	if !ok {
		file = "???"
		line = -1
	} else {
		funcName = runtime.FuncForPC(pc).Name()
		file = filepath.Base(file)
	}
	(*l)[labelFuncName] = funcName + "()"
	(*l)[labelFileName] = file
	(*l)[labelLineNumber] = fmt.Sprintf("%d", line)
}

// debugInfo renders the call-site labels, styled for terminals when asked.
func (l *labelMap) debugInfo(styled bool) string {
	if !styled {
		return fmt.Sprintf(
			"PID_%s:GoID_%s:%s:%s:%s",
			(*l)[labelProcessID],
			(*l)[labelGoroutineID],
			(*l)[labelFuncName],
			(*l)[labelFileName],
			(*l)[labelLineNumber],
		)
	}
	return fmt.Sprintf(
		"%s%s:%s%s:%s:%s:%s",
		plainStyle.Style("PID_"),
		plainStyle.Style((*l)[labelProcessID]),
		plainStyle.Style("GoID_"),
		plainStyle.Style((*l)[labelGoroutineID]),
		funcNameStyle.Style((*l)[labelFuncName]),
		fileNameStyle.Style((*l)[labelFileName]),
		lineNumberStyle.Style((*l)[labelLineNumber]),
	)
}
