package sqlward

import "context"

// errorLogContext carries what every shape-error log record must include:
// the query-id and the logger to emit through. Keeping it as a small
// struct (rather than threading five positional parameters) mirrors how
// lib/pq's stmt.go/rows.go share a narrow internal helper surface across
// several exported entry points.
type errorLogContext struct {
	ctx    context.Context
	logger Logger
	id     QueryId
}

func logShapeError(c errorLogContext, message string) {
	if c.logger == nil {
		return
	}
	c.logger.Error(c.ctx, c.id, message, nil)
}

// rowCountCheck validates the number of rows returned against a shape's
// contract, returning a *DriverError (NotFound or DataIntegrity) when
// violated.
type rowCountCheck func(c errorLogContext, n int) error

func checkAny(c errorLogContext, n int) error { return nil }

func checkAtMostOne(c errorLogContext, n int) error {
	if n > 1 {
		return dataIntegrityError(c, "query returned more than one row")
	}
	return nil
}

func checkExactlyOne(c errorLogContext, n int) error {
	if n == 0 {
		return notFoundError(c)
	}
	if n > 1 {
		return dataIntegrityError(c, "query returned more than one row")
	}
	return nil
}

func checkAtLeastOne(c errorLogContext, n int) error {
	if n == 0 {
		return notFoundError(c)
	}
	return nil
}

// columnCountCheck validates the first row's column count, per spec
// §4.5: "Column-count checks inspect the first row only."
type columnCountCheck func(c errorLogContext, rows []Row) error

func anyColumns(c errorLogContext, rows []Row) error { return nil }

func exactlyOneColumn(c errorLogContext, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	switch len(rows[0].Fields) {
	case 1:
		return nil
	case 0:
		return dataIntegrityError(c, "result row has no columns")
	default:
		return dataIntegrityError(c, "result row has more than one column")
	}
}

// shapeQuery is the single primitive every query-method wraps: derive a
// query-id, run the base query, validate row count, validate column
// count. Projection (whole rows vs. first-column values) is left to each
// public entry point, since the two return different Go types.
func shapeQuery(ctx context.Context, logger Logger, conn *Connection, sql string, args []any, inherited *QueryId, rowCheck rowCountCheck, colCheck columnCountCheck) ([]Row, QueryId, error) {
	id := InheritOrNew(inherited)
	lc := errorLogContext{ctx: ctx, logger: logger, id: id}

	res, err := conn.Query(ctx, sql, args)
	if err != nil {
		return nil, id, err
	}
	if err := rowCheck(lc, len(res.Rows)); err != nil {
		return nil, id, err
	}
	if err := colCheck(lc, res.Rows); err != nil {
		return nil, id, err
	}
	return res.Rows, id, nil
}

// Query runs sql and returns the raw QueryResult unshaped. Failures are
// driver errors only.
func Query(ctx context.Context, logger Logger, conn *Connection, sql string, args []any, inherited *QueryId) (*QueryResult, error) {
	return conn.Query(ctx, sql, args)
}

// Any returns every row, possibly none. Failures are driver errors only.
func Any(ctx context.Context, logger Logger, conn *Connection, sql string, args []any, inherited *QueryId) ([]Row, error) {
	rows, _, err := shapeQuery(ctx, logger, conn, sql, args, inherited, checkAny, anyColumns)
	return rows, err
}

// AnyFirst returns the first-column value of every row. DataIntegrity if
// any row has other than one column.
func AnyFirst(ctx context.Context, logger Logger, conn *Connection, sql string, args []any, inherited *QueryId) ([]any, error) {
	rows, _, err := shapeQuery(ctx, logger, conn, sql, args, inherited, checkAny, exactlyOneColumn)
	if err != nil {
		return nil, err
	}
	return firstColumns(rows), nil
}

// Many returns every row. NotFound if there are none.
func Many(ctx context.Context, logger Logger, conn *Connection, sql string, args []any, inherited *QueryId) ([]Row, error) {
	rows, _, err := shapeQuery(ctx, logger, conn, sql, args, inherited, checkAtLeastOne, anyColumns)
	return rows, err
}

// ManyFirst returns the first-column value of every row. NotFound if
// there are none; DataIntegrity if the first row has other than one
// column.
func ManyFirst(ctx context.Context, logger Logger, conn *Connection, sql string, args []any, inherited *QueryId) ([]any, error) {
	rows, _, err := shapeQuery(ctx, logger, conn, sql, args, inherited, checkAtLeastOne, exactlyOneColumn)
	if err != nil {
		return nil, err
	}
	return firstColumns(rows), nil
}

// MaybeOne returns the single row, or (Row{}, false, nil) if there were
// none. DataIntegrity if there was more than one.
func MaybeOne(ctx context.Context, logger Logger, conn *Connection, sql string, args []any, inherited *QueryId) (Row, bool, error) {
	rows, _, err := shapeQuery(ctx, logger, conn, sql, args, inherited, checkAtMostOne, anyColumns)
	if err != nil {
		return Row{}, false, err
	}
	if len(rows) == 0 {
		return Row{}, false, nil
	}
	return rows[0], true, nil
}

// MaybeOneFirst returns the single row's first-column value, or
// (nil, false, nil) if there were none. DataIntegrity on >1 row or ≠1
// column.
func MaybeOneFirst(ctx context.Context, logger Logger, conn *Connection, sql string, args []any, inherited *QueryId) (any, bool, error) {
	rows, _, err := shapeQuery(ctx, logger, conn, sql, args, inherited, checkAtMostOne, exactlyOneColumn)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0].First(), true, nil
}

// One returns the single row. NotFound if there were none; DataIntegrity
// if there was more than one.
func One(ctx context.Context, logger Logger, conn *Connection, sql string, args []any, inherited *QueryId) (Row, error) {
	rows, _, err := shapeQuery(ctx, logger, conn, sql, args, inherited, checkExactlyOne, anyColumns)
	if err != nil {
		return Row{}, err
	}
	return rows[0], nil
}

// OneFirst returns the single row's first-column value. NotFound if
// there were none; DataIntegrity on >1 row or ≠1 column.
func OneFirst(ctx context.Context, logger Logger, conn *Connection, sql string, args []any, inherited *QueryId) (any, error) {
	rows, _, err := shapeQuery(ctx, logger, conn, sql, args, inherited, checkExactlyOne, exactlyOneColumn)
	if err != nil {
		return nil, err
	}
	return rows[0].First(), nil
}

func firstColumns(rows []Row) []any {
	out := make([]any, len(rows))
	for i, r := range rows {
		out[i] = r.First()
	}
	return out
}
