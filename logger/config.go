package logger

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultTimestampFormat = time.RFC3339

// Config describes logging configuration.
type Config struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// Formatter is one of "text", "json".
	Formatter string
	// OutputFile, when set, appends logs to the given file instead of stderr.
	OutputFile string
}

// DefaultConfig returns a Config instance with default values.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Formatter: "text",
	}
}

// Configure applies the logging level, formatter, and output path.
func (l *Logger) Configure(conf Config) {
	switch strings.ToLower(conf.Level) {
	case "debug":
		l.logrus.SetLevel(logrus.DebugLevel)
	case "warn":
		l.logrus.SetLevel(logrus.WarnLevel)
	case "error":
		l.logrus.SetLevel(logrus.ErrorLevel)
	default:
		l.logrus.SetLevel(logrus.InfoLevel)
	}

	switch conf.Formatter {
	case "json":
		l.logrus.SetFormatter(&logrus.JSONFormatter{
			DisableHTMLEscape: true,
			TimestampFormat:   defaultTimestampFormat,
		})
	// Default to text
	default:
		l.logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: defaultTimestampFormat,
		})
	}

	if conf.OutputFile != "" {
		logFile, err := os.OpenFile(
			conf.OutputFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666,
		)
		if err != nil {
			l.Error("Can't open log output", "output", conf.OutputFile)
		} else {
			l.SetOutput(logFile)
		}
	}
}
