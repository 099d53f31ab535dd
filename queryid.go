package sqlward

import "github.com/google/uuid"

// QueryId is an opaque correlating token, unique per logical query,
// propagated through every log record and error raised for that query.
type QueryId struct {
	id uuid.UUID
}

func NewQueryId() QueryId {
	return QueryId{id: uuid.New()}
}

func (q QueryId) String() string {
	return q.id.String()
}

// InheritOrNew is the sole policy for query-id propagation: return the
// inherited id if the caller supplied one, otherwise mint a fresh one.
func InheritOrNew(inherited *QueryId) QueryId {
	if inherited != nil {
		return *inherited
	}
	return NewQueryId()
}
