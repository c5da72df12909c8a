// Package logx is a thin facade over logrus so call sites stay stable
// if the logging backend changes.
package logx

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Level mirrors the backend's severity levels.
type Level uint32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000 -0700",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel sets the minimum severity that gets emitted.
func SetLevel(level Level) {
	switch level {
	case LevelDebug:
		logger.SetLevel(logrus.DebugLevel)
	case LevelInfo:
		logger.SetLevel(logrus.InfoLevel)
	case LevelWarn:
		logger.SetLevel(logrus.WarnLevel)
	case LevelError:
		logger.SetLevel(logrus.ErrorLevel)
	}
}

func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Fatalf(format string, args ...any) { logger.Fatalf(format, args...) }
