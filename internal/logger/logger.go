// Package logger exposes process-wide leveled logging backed by log/slog.
// The level is set once from configuration at startup; handlers and workers
// use the package-level helpers rather than threading a logger through every
// call.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	level   = new(slog.LevelVar)
	slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
)

// Init replaces the default logger with one writing to out at the given
// level. Call it once from main before anything logs.
func Init(logLevel string, out io.Writer) error {
	parsed, err := ParseLevel(logLevel)
	if err != nil {
		return err
	}
	level.Set(parsed)
	slogger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return nil
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unrecognized log level %q", s)
	}
}

func Debug(v ...interface{}) {
	slogger.Debug(fmt.Sprint(v...))
}

func Debugf(format string, v ...interface{}) {
	slogger.Debug(fmt.Sprintf(format, v...))
}

func Info(v ...interface{}) {
	slogger.Info(fmt.Sprint(v...))
}

func Infof(format string, v ...interface{}) {
	slogger.Info(fmt.Sprintf(format, v...))
}

func Warn(v ...interface{}) {
	slogger.Warn(fmt.Sprint(v...))
}

func Warnf(format string, v ...interface{}) {
	slogger.Warn(fmt.Sprintf(format, v...))
}

func Error(v ...interface{}) {
	slogger.Error(fmt.Sprint(v...))
}

func Errorf(format string, v ...interface{}) {
	slogger.Error(fmt.Sprintf(format, v...))
}
