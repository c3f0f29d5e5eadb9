package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger implements internal.LogHandler on top of logrus.
type Logger struct {
	entry *logrus.Logger
}

func NewLogger(out io.Writer, format string, debugMode bool) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	if format == FormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	l.SetLevel(logrus.InfoLevel)
	if debugMode {
		l.SetLevel(logrus.DebugLevel)
	}
	return &Logger{entry: l}
}

func (l *Logger) FeatureEvent(feature, id, text string) {
	if id == "" {
		id = "*"
	}
	l.entry.WithFields(logrus.Fields{"feature": feature, "id": id}).Info(text)
}

func (l *Logger) Debug(text string) {
	l.entry.Debug(text)
}

func (l *Logger) Warn(text string) {
	l.entry.Warn(text)
}

func (l *Logger) Error(text string, err error) {
	l.entry.WithError(err).Error(text)
}
