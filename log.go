package lview

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logger is a plain package var; lview runs on a single goroutine.
var logger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger replaces the package logger. By default lview logs warnings
// and errors as text to stderr. Pass nil to restore the default.
//
// Levels used by lview:
//   - Debug: per-frame stats and periodic tree dumps (debug mode only)
//   - Info: engine start-up
//   - Warn: oversized trees, screenshot failures
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	logger = l
}

// Logger returns the current package logger.
func Logger() *logrus.Logger {
	return logger
}
