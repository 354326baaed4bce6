package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger tags every entry with the protocol it belongs to. Info and above
// are always emitted; Debug only when the debug flag is set.
type Logger struct {
	proto string
	debug bool
}

func New(debug bool, proto string) *Logger {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return &Logger{
		proto: proto,
		debug: debug,
	}
}

func (l *Logger) DebugMode() bool {
	return l.debug
}

func (l *Logger) fields() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"protocol": l.proto,
	})
}

func (l *Logger) Info(args ...interface{}) {
	l.fields().Info(args...)
}

func (l *Logger) Debug(args ...interface{}) {
	l.fields().Debug(args...)
}

func (l *Logger) Warn(args ...interface{}) {
	l.fields().Warn(args...)
}

func (l *Logger) Error(args ...interface{}) {
	l.fields().Error(args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.fields().Infof(format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.fields().Debugf(format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.fields().Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.fields().Errorf(format, args...)
}
