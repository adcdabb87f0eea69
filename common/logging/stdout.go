package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ttacon/chalk"

	"github.com/mcdexio/blockdeque/cache/cacher"
	"github.com/mcdexio/blockdeque/channel"
	"github.com/mcdexio/blockdeque/env"
)

// timeFormat lays out log line timestamps.
const timeFormat = "2006-01-02 15:04:05.000000"

var (
	styleMap = map[level]chalk.Style{
		debugLevel:    chalk.ResetColor.NewStyle(),
		infoLevel:     chalk.Green.NewStyle(),
		noticeLevel:   chalk.Cyan.NewStyle(),
		warnLevel:     chalk.Yellow.NewStyle(),
		errorLevel:    chalk.Red.NewStyle(),
		criticalLevel: chalk.Magenta.NewStyle(),
	}

	timeStyle = chalk.ResetColor.NewStyle().WithTextStyle(chalk.Inverse)
	tagStyle  = chalk.ResetColor.NewStyle().WithBackground(chalk.Blue)

	stdout = cacher.NewConst(func() *stdOutput {
		return newStdOutput()
	})
)

// Stdout returns the stdout output.
func Stdout() output {
	return stdout.Get()
}

type stdOutput struct {
	writer     io.Writer
	ctx        context.Context
	cancel     context.CancelFunc
	withColor  bool
	workerChan *channel.Unlimited[[]byte]
	closeChan  chan struct{}
}

// assertOutputInterface
func _() {
	var _ output = (*stdOutput)(nil)
}

func newStdOutput() *stdOutput {
	o := &stdOutput{
		writer:     os.Stdout,
		withColor:  !env.IsCI(),
		workerChan: channel.NewUnlimited[[]byte](),
		closeChan:  make(chan struct{}),
	}
	o.ctx, o.cancel = context.WithCancel(context.Background())
	go o.work()
	return o
}

func (o *stdOutput) output(level level, labelMap labelMap, log string) {
	var b []byte
	defer func() {
		select {
		case o.workerChan.In() <- b:
		case <-o.ctx.Done():
			fmt.Println("Stdout worker channel closed")
		}
	}()

	tsRaw := time.Now().Format(timeFormat)
	svRaw := fmt.Sprintf("%6s", level.String())
	tagRaw := fmt.Sprintf("%16s", labelMap[LabelTag])
	if !o.withColor {
		if level <= errorLevel {
			log = fmt.Sprintf("%s: %s", labelMap.debugInfo(false), log)
		}
		log = removeColor(log)
		b = []byte(fmt.Sprintf("%s %s %s %s", tsRaw, svRaw, tagRaw, log))
		return
	}

	if level <= errorLevel {
		log = fmt.Sprintf("%s: %s", labelMap.debugInfo(true), log)
	}
	severityStyle := styleMap[level]
	timestamp := timeStyle.Style(tsRaw)
	severity := severityStyle.Style(svRaw)
	tag := tagStyle.Style(tagRaw)

	b = []byte(fmt.Sprintf("%s %s %s %s", timestamp, severity, tag, log))
}

func (o *stdOutput) work() {
	defer func() { close(o.closeChan) }()
	for {
		select {
		case <-o.ctx.Done():
			o.workerChan.Close()
			<-o.workerChan.Done()
			o.flush()
			return
		case b := <-o.workerChan.Out():
			if len(b) == 0 {
				continue
			}
			_, _ = o.writer.Write(b)
		}
	}
}

func (o *stdOutput) flush() {
	for _, b := range o.workerChan.Dump() {
		_, _ = o.writer.Write(b)
	}
}

func (o *stdOutput) close() {
	o.cancel()
	<-o.closeChan
}
