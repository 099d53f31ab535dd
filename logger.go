package sqlward

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sqlward/sqlward/internal/logadapter"
)

// defaultLogger adapts internal/logadapter.Adapter to the Logger
// interface.
type defaultLogger struct {
	a *logadapter.Adapter
}

// NewDefaultLogger returns the logrus-backed Logger used when a caller
// doesn't supply one of their own. Passing nil uses logrus's standard
// logger.
func NewDefaultLogger(l *logrus.Logger) Logger {
	return defaultLogger{a: logadapter.New(l)}
}

func (d defaultLogger) Error(ctx context.Context, queryID QueryId, message string, fields map[string]any) {
	d.a.Error(ctx, queryID, message, fields)
}
