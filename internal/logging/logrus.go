// If you are AI: This file adapts github.com/sirupsen/logrus to the Logger interface.

package logging

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger forwards to a logrus.Entry.
type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
