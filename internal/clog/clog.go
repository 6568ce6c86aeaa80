// Package clog is the compiler's own progress logger: short, colored,
// level-tagged lines written to stderr about what the driver is doing
// (files loaded, passes run, targets written) — distinct from
// internal/diag, which reports structured problems found in source.
package clog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// Level orders clog's severities, lowest first.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	}
	return "?"
}

var (
	debugColor = color.New(color.Faint).SprintFunc()
	infoColor  = color.New(color.FgCyan).SprintFunc()
	warnColor  = color.New(color.FgYellow).SprintFunc()
	errorColor = color.New(color.Bold, color.FgRed).SprintFunc()
	dimColor   = color.New(color.Faint).SprintFunc()
)

func colorFor(l Level) func(a ...interface{}) string {
	switch l {
	case Debug:
		return debugColor
	case Warn:
		return warnColor
	case Error:
		return errorColor
	default:
		return infoColor
	}
}

// Logger writes level-tagged lines to an underlying writer, dropping
// anything below its configured minimum Level.
type Logger struct {
	w     io.Writer
	level Level
}

// New creates a Logger writing to w, showing Level and above.
func New(w io.Writer, level Level) *Logger {
	return &Logger{w: w, level: level}
}

// Default returns a Logger writing to stderr at Info level, the
// compiler's normal verbosity.
func Default() *Logger {
	return New(os.Stderr, Info)
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	ts := dimColor(time.Now().Format("15:04:05"))
	tag := colorFor(level)(fmt.Sprintf("%-5s", level.String()))
	fmt.Fprintf(l.w, "%s %s %s\n", ts, tag, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.log(Debug, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log(Info, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log(Warn, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(Error, format, args...) }
