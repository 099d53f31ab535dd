// Package logadapter is the default Logger: a thin logrus.FieldLogger
// wrapper, grounded on k3s's pervasive use of sirupsen/logrus for
// structured logging throughout its daemon components.
package logadapter

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Adapter is wrapped by the root package's defaultLogger to satisfy the
// sqlward.Logger interface without internal/logadapter importing sqlward.
type Adapter struct {
	entry *logrus.Entry
}

// New wraps a *logrus.Logger. Passing nil uses logrus's standard logger.
func New(l *logrus.Logger) *Adapter {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Adapter{entry: logrus.NewEntry(l)}
}

func (a *Adapter) Error(ctx context.Context, queryID fmt.Stringer, message string, fields map[string]any) {
	e := a.entry.WithContext(ctx).WithField("query_id", queryID.String())
	if len(fields) > 0 {
		e = e.WithFields(logrus.Fields(fields))
	}
	e.Error(message)
}
