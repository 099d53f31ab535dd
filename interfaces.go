package sqlward

import "context"

// Logger is the structured record sink every shape error is logged
// through before it is raised, per spec §4.5's last paragraph. The
// default implementation (package internal/logadapter) is logrus-backed.
type Logger interface {
	Error(ctx context.Context, queryID QueryId, message string, fields map[string]any)
}

// Notice is an informational, non-error message the backend emits
// asynchronously during a session.
type Notice struct {
	Message  string
	Severity string
}

// EventEmitter receives every notice the driver adapter forwards.
type EventEmitter interface {
	EmitNotice(Notice)
}

// DSNFields is what a DSNParser yields from a connection-string form.
type DSNFields struct {
	Host            string
	Port            string
	DatabaseName    string
	Username        string
	Password        string
	SSLMode         SSLMode
	ApplicationName string
	Options         string
}

// DSNParser is the out-of-core collaborator that turns a connection URI
// into its constituent fields. The default implementation (package
// internal/dsnparse) treats the URI as a standard postgres:// URL.
type DSNParser interface {
	Parse(dsn string) (DSNFields, error)
}
