package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used throughout the RADIUS library.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// DefaultLogger backs the Logger interface with logrus.
type DefaultLogger struct {
	logger *logrus.Logger
}

// NewDefaultLogger creates a logger with timestamped text output at info level.
func NewDefaultLogger() *DefaultLogger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)

	return &DefaultLogger{logger: logger}
}

// NewLoggerWithLevel creates a logger at the named level.
// Unknown level names fall back to info.
func NewLoggerWithLevel(level string) *DefaultLogger {
	logger := NewDefaultLogger()

	if lvl, err := logrus.ParseLevel(level); err == nil {
		logger.logger.SetLevel(lvl)
	}

	return logger
}

func (l *DefaultLogger) Debug(args ...interface{}) {
	l.logger.Debug(args...)
}

func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

func (l *DefaultLogger) Info(args ...interface{}) {
	l.logger.Info(args...)
}

func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

func (l *DefaultLogger) Warn(args ...interface{}) {
	l.logger.Warn(args...)
}

func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

func (l *DefaultLogger) Error(args ...interface{}) {
	l.logger.Error(args...)
}

func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

// SetLevel changes the log level. Unknown level names are ignored.
func (l *DefaultLogger) SetLevel(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		l.logger.SetLevel(lvl)
	}
}
