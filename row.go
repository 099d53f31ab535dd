package sqlward

import "github.com/sqlward/sqlward/internal/wireclient"

// Field describes one result column.
type Field struct {
	Name       string
	DataTypeID uint32
}

// Row is a single returned row: an ordered value sequence plus the
// fields that name and type each position. Get reads a value by column
// name, looking up its position in Fields; there are no typed getters.
type Row struct {
	Fields []Field
	Values []any
}

// Get returns the raw decoded value for column name, and whether that
// name was present.
func (r Row) Get(name string) (any, bool) {
	for i, f := range r.Fields {
		if f.Name == name {
			return r.Values[i], true
		}
	}
	return nil, false
}

// First returns the value of the row's first column. Callers that reach
// this method have already gone through a shape method guaranteeing
// exactly one column exists.
func (r Row) First() any {
	if len(r.Values) == 0 {
		return nil
	}
	return r.Values[0]
}

// QueryResult is the normalized response to a single, non-streaming
// query.
type QueryResult struct {
	Command  string
	Fields   []Field
	RowCount *int64
	Rows     []Row
}

func fieldsFromWire(fs []wireclient.Field) []Field {
	out := make([]Field, len(fs))
	for i, f := range fs {
		out[i] = Field{Name: f.Name, DataTypeID: uint32(f.OID)}
	}
	return out
}

func rowsFromWire(fields []Field, raw [][]any) []Row {
	out := make([]Row, len(raw))
	for i, vals := range raw {
		out[i] = Row{Fields: fields, Values: vals}
	}
	return out
}
