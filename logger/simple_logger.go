package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// SimpleLogger implements the [Logger] interface, writing one line per
// record in the form "<time> <LEVEL> msg=<msg>, key=value".
type SimpleLogger struct {
	mtx    sync.Mutex
	out    io.Writer
	level  Level
	clock  func() time.Time
	layout string
}

var _ Logger = (*SimpleLogger)(nil)

// NewSimpleLogger returns a new [SimpleLogger] writing records at or above
// the given level to out.
func NewSimpleLogger(out io.Writer, level Level) *SimpleLogger {
	return &SimpleLogger{
		out:    out,
		level:  level,
		clock:  time.Now,
		layout: time.DateTime,
	}
}

// Trace logs at the trace level.
func (l *SimpleLogger) Trace(msg string, args ...any) {
	l.write(LevelTrace, msg, args)
}

// Debug logs at the debug level.
func (l *SimpleLogger) Debug(msg string, args ...any) {
	l.write(LevelDebug, msg, args)
}

// Info logs at the info level.
func (l *SimpleLogger) Info(msg string, args ...any) {
	l.write(LevelInfo, msg, args)
}

// Warn logs at the warn level.
func (l *SimpleLogger) Warn(msg string, args ...any) {
	l.write(LevelWarn, msg, args)
}

// Error logs at the error level.
func (l *SimpleLogger) Error(msg string, args ...any) {
	l.write(LevelError, msg, args)
}

// Enabled reports whether the SimpleLogger handles records at the given level.
func (l *SimpleLogger) Enabled(level Level) bool {
	return level >= l.level && level < LevelOff
}

func (l *SimpleLogger) write(level Level, msg string, args []any) {
	if !l.Enabled(level) {
		return
	}
	line := fmt.Sprintf("%s %s %s\n", l.clock().Format(l.layout), level, formatMessage(msg, args))

	l.mtx.Lock()
	defer l.mtx.Unlock()
	_, _ = io.WriteString(l.out, line)
}

func formatMessage(msg string, args []any) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "msg=%s", msg)

	n := len(args)
	for i := 0; i < n; i += 2 {
		if i+1 < n {
			_, _ = fmt.Fprintf(&b, ", %v=%v", args[i], args[i+1])
		} else {
			_, _ = fmt.Fprintf(&b, ", %v", args[i])
		}
	}

	return b.String()
}
