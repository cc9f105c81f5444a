// Package logger provides structured logging for fanout, wrapping logrus
// with a key-value pair style API.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger handles structured logging of messages from fanout code.
type Logger struct {
	logrus *logrus.Logger
	entry  *logrus.Entry
}

// NewLogger returns a new Logger instance configured by the given Config,
// with an "ns" (namespace) field added to all messages.
func NewLogger(ns string, conf Config) *Logger {
	log := logrus.New()
	l := &Logger{logrus: log, entry: log.WithField("ns", ns)}
	l.Configure(conf)
	return l
}

// NewNopLogger returns a logger that discards all logs.
func NewNopLogger() *Logger {
	l := NewLogger("nop", DefaultConfig())
	l.Discard()
	return l
}

// Sub returns a new child logger with the given namespace and fields.
func (l *Logger) Sub(ns string, args ...interface{}) *Logger {
	f := fields(args...)
	f["ns"] = ns
	return &Logger{logrus: l.logrus, entry: l.entry.WithFields(f)}
}

// WithFields returns a new Logger with the given fields added to all messages.
func (l *Logger) WithFields(args ...interface{}) *Logger {
	return &Logger{logrus: l.logrus, entry: l.entry.WithFields(fields(args...))}
}

// SetOutput sets the logging output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.logrus.SetOutput(w)
}

// Discard configures the logger to discard all logs.
func (l *Logger) Discard() {
	l.SetOutput(io.Discard)
}

// Debug logs a debug message.
//
// After the first argument, arguments are key-value pairs which are written
// as structured logs.
//
//	log.Debug("Some message here", "key1", value1, "key2", value2)
func (l *Logger) Debug(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry.WithFields(fields(args...)).Debug(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry.WithFields(fields(args...)).Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry.WithFields(fields(args...)).Warn(msg)
}

// Error logs an error message.
//
// Error has a two-argument shortcut for logging an error value.
//
//	err := submit()
//	log.Error("Couldn't submit job", err)
func (l *Logger) Error(msg string, args ...interface{}) {
	defer recoverLogErr()
	var f map[string]interface{}
	if len(args) == 1 {
		f = fields("error", args[0])
	} else {
		f = fields(args...)
	}
	l.entry.WithFields(f).Error(msg)
}

// recoverLogErr recovers from any panic during logging. Logging should
// never crash the program.
func recoverLogErr() {
	if r := recover(); r != nil {
		fmt.Println("Recovered from logging panic", r)
	}
}

// PrintSimpleError prints an error message to stderr with a red
// "ERROR:" prefix.
func PrintSimpleError(err error) {
	fmt.Fprintf(os.Stderr, "\x1b[31mERROR:\x1b[0m %s\n", err.Error())
}

func fields(args ...interface{}) map[string]interface{} {
	f := make(map[string]interface{}, len(args)/2)
	if len(args) == 1 {
		f["unknown"] = args[0]
		return f
	}
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			k = fmt.Sprintf("%v", args[i])
		}
		f[k] = args[i+1]
	}
	if len(args)%2 != 0 && len(args) > 1 {
		f["unknown"] = args[len(args)-1]
	}
	return f
}
