package sqlward

import (
	"context"
	"fmt"

	"github.com/sqlward/sqlward/internal/pqsql"
	"github.com/sqlward/sqlward/internal/typeparser"
	"github.com/sqlward/sqlward/internal/wireclient"
	"github.com/sqlward/sqlward/internal/wireclient/oid"
)

// UnderlyingClient is the abstract wire-protocol client the driver
// adapter assumes, satisfied today by package internal/wireclient's
// *Conn. Naming it as an interface here (rather than depending on
// wireclient.Conn directly) means a differently-shaped transport could
// stand in without touching the query-method layer above it: Connection
// holds one as its conn field, and DriverFactory builds one through a
// replaceable constructor rather than calling wireclient.New directly.
type UnderlyingClient interface {
	Connect(ctx context.Context) error
	End(ctx context.Context) error
	Query(ctx context.Context, sql string, args []any) (*wireclient.Result, error)
	Stream(ctx context.Context, sql string, args []any, yield func(wireclient.Row, error) bool)
	OnNotice(func(*wireclient.Notice))
	SetDecoder(scalarOid, arrayOid oid.Oid, d wireclient.Decoder)
}

// clientFactory builds the UnderlyingClient a new Connection wraps. The
// default, installed by NewDriverFactory, dials the real backend through
// internal/wireclient; tests or alternate transports can swap it in via
// DriverFactory.WithClientFactory.
type clientFactory func(wireclient.Config) UnderlyingClient

func defaultClientFactory(cfg wireclient.Config) UnderlyingClient {
	return wireclient.New(cfg)
}

// DriverFactory is constructed once per ClientConfiguration and owns the
// memoized type-parser registry shared across every connection it
// builds, per spec §3's lifecycle rule and §5's "shared resources"
// section.
type DriverFactory struct {
	cfg       ClientConfiguration
	emitter   EventEmitter
	dsn       DSNParser
	registry  *typeparser.Registry
	newClient clientFactory
}

// NewDriverFactory builds a DriverFactory. A nil dsn uses the default
// postgres://-URL parser.
func NewDriverFactory(cfg ClientConfiguration, emitter EventEmitter, dsn DSNParser) *DriverFactory {
	if dsn == nil {
		dsn = NewDefaultDSNParser()
	}
	entries := make([]typeparser.Entry, len(cfg.TypeParsers))
	for i, tp := range cfg.TypeParsers {
		entries[i] = typeparser.Entry{Name: tp.Name, Parse: tp.Parse}
	}
	return &DriverFactory{
		cfg:       cfg,
		emitter:   emitter,
		dsn:       dsn,
		registry:  typeparser.New(entries),
		newClient: defaultClientFactory,
	}
}

// WithClientFactory replaces the UnderlyingClient constructor a
// DriverFactory uses for every subsequent NewConnection call, for
// standing in a differently-shaped transport (or a test double) in
// place of internal/wireclient. Returns f for chaining.
func (f *DriverFactory) WithClientFactory(newClient func(wireclient.Config) UnderlyingClient) *DriverFactory {
	f.newClient = newClient
	return f
}

// Connection wraps a single UnderlyingClient and the typed operations
// layered over it. Connection adds no locking of its own; the default
// underlying client (wireclient.Conn) serializes Query/Stream calls
// through its own mutex, so a concurrent caller queues behind the
// in-flight statement rather than racing it.
type Connection struct {
	conn    UnderlyingClient
	emitter EventEmitter
	factory *DriverFactory
}

// NewConnection yields a fresh, not-yet-connected Connection. Spec: each
// connection acquisition yields a fresh underlying client.
func (f *DriverFactory) NewConnection(ctx context.Context) (*Connection, error) {
	dsn, err := f.dsn.Parse(f.cfg.ConnectionURI)
	if err != nil {
		return nil, fmt.Errorf("sqlward: parsing connection URI: %w", err)
	}
	dc := mapConfiguration(f.cfg, dsn)
	conn := f.newClient(wireConfig(dc))

	c := &Connection{conn: conn, emitter: f.emitter, factory: f}
	if f.emitter != nil {
		conn.OnNotice(func(n *wireclient.Notice) {
			if n.Message != "" {
				f.emitter.EmitNotice(Notice{Message: n.Message, Severity: n.Severity})
			}
		})
	}
	return c, nil
}

// Connect opens the underlying client and runs type-parser bring-up.
// Must succeed before any Query/Stream call.
func (c *Connection) Connect(ctx context.Context) error {
	if err := c.conn.Connect(ctx); err != nil {
		return err
	}
	if err := c.factory.registry.Resolve(ctx, c.conn); err != nil {
		return err
	}
	return nil
}

// End closes the underlying client and detaches its notice listener.
// Idempotence is not required, per spec §4.4.
func (c *Connection) End(ctx context.Context) error {
	c.conn.OnNotice(nil)
	return c.conn.End(ctx)
}

// Query runs a single statement, awaiting the full result, and maps any
// raw error through the error taxonomy together with the originating
// {sql, values}, per spec §4.4.
func (c *Connection) Query(ctx context.Context, sql string, args []any) (*QueryResult, error) {
	if pqsql.StartsWithCopy(sql) {
		return nil, &DriverError{Kind: KindInvalidInput, Message: "COPY is not supported through Query/Stream", SQL: sql, Values: args}
	}
	res, err := c.conn.Query(ctx, sql, args)
	if err != nil {
		return nil, mapBackendError(err, sql, args)
	}
	fields := fieldsFromWire(res.Fields)
	return &QueryResult{
		Command:  res.Command,
		Fields:   fields,
		RowCount: res.RowCount,
		Rows:     rowsFromWire(fields, res.Rows),
	}, nil
}

// Stream opens a streaming cursor over sql. Nothing is sent to the
// backend until the caller starts ranging over the result; each emitted
// Row carries the fields the underlying client reports alongside it.
func (c *Connection) Stream(ctx context.Context, sql string, args []any) StreamResult {
	return func(yield func(Row, error) bool) {
		if pqsql.StartsWithCopy(sql) {
			yield(Row{}, &DriverError{Kind: KindInvalidInput, Message: "COPY is not supported through Query/Stream", SQL: sql, Values: args})
			return
		}
		c.conn.Stream(ctx, sql, args, func(wr wireclient.Row, err error) bool {
			if err != nil {
				return yield(Row{}, mapBackendError(err, sql, args))
			}
			fields := fieldsFromWire(wr.Fields)
			return yield(Row{Fields: fields, Values: wr.Values}, nil)
		})
	}
}
