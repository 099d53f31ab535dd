// Package wireclient is the generalized, lib/pq-derived implementation of
// the UnderlyingClient the driver adapter assumes (see package sqlward). It
// owns the wire protocol: startup, authentication (cleartext, MD5,
// SCRAM-SHA-256, GSSAPI/SSPI), the extended query protocol used for
// parameterized statements, and notice delivery. Everything above this
// package treats it as opaque transport.
package wireclient

import (
	"bufio"
	"context"
	"crypto/md5"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/sqlward/sqlward/internal/proto"
	"github.com/sqlward/sqlward/internal/wireclient/oid"
)

// Config is the fully-resolved set of parameters needed to open a wire
// connection. It is produced by the configuration mapper in package
// sqlward from a ClientConfiguration; wireclient itself knows nothing
// about DSNs or sslmode strings.
type Config struct {
	Host            string
	Port            string
	Database        string
	User            string
	Password        string
	ApplicationName string
	Options         string
	TLS             *tls.Config // nil disables SSL negotiation
}

// Field describes one result column, as reported by the backend's
// RowDescription message.
type Field struct {
	Name   string
	OID    oid.Oid
}

// Result is the fully materialized response to a non-streaming Query.
type Result struct {
	Command  string
	Fields   []Field
	RowCount *int64
	Rows     [][]any
}

// Row is one element of a streamed result.
type Row struct {
	Fields []Field
	Values []any
}

// Conn is a single connection to a PostgreSQL-compatible backend. It
// serializes Query and Stream through connMu, matching spec's per-connection
// FIFO ordering guarantee: the adapter must not issue a second query before
// the first completes.
type Conn struct {
	cfg Config

	connMu sync.Mutex // enforces one in-flight request per connection
	c      net.Conn
	buf    *bufio.Reader
	scratch [512]byte

	noticeMu sync.Mutex
	onNotice func(*Notice)

	codec *codec
}

// New constructs a Conn that is not yet connected.
func New(cfg Config) *Conn {
	return &Conn{cfg: cfg, codec: newCodec()}
}

// OnNotice registers the callback invoked for every notice the backend
// sends for the lifetime of the connection. Passing nil detaches it.
func (cn *Conn) OnNotice(f func(*Notice)) {
	cn.noticeMu.Lock()
	cn.onNotice = f
	cn.noticeMu.Unlock()
}

// SetDecoder installs a decoder for scalarOid (and, if arrayOid is
// non-zero, its array form), overriding the built-in codec. This is the
// hook the type-parser registry (package internal/typeparser) uses.
func (cn *Conn) SetDecoder(scalarOid, arrayOid oid.Oid, d Decoder) {
	cn.codec.setDecoder(scalarOid, arrayOid, d)
}

// Connect dials the backend, performs SSL negotiation if configured, and
// runs the startup/authentication handshake.
func (cn *Conn) Connect(ctx context.Context) (err error) {
	defer recoverInto(&err)

	var d net.Dialer
	raw, dialErr := d.DialContext(ctx, "tcp", net.JoinHostPort(cn.cfg.Host, cn.cfg.Port))
	if dialErr != nil {
		return dialErr
	}

	if cn.cfg.TLS != nil {
		raw, err = cn.negotiateSSL(raw)
		if err != nil {
			return err
		}
	}

	cn.c = raw
	cn.buf = bufio.NewReader(raw)
	cn.startup()
	return nil
}

// End sends a Terminate message and closes the underlying socket,
// detaching the notice listener. Idempotence is not required, matching
// spec. The Terminate send is best-effort: a write error here just means
// the backend already went away, which Close will also observe.
func (cn *Conn) End(ctx context.Context) error {
	cn.OnNotice(nil)
	if cn.c == nil {
		return nil
	}
	func() {
		defer func() { recover() }()
		cn.send(cn.writeBuf(byte(proto.Terminate)))
	}()
	return cn.c.Close()
}

func (cn *Conn) negotiateSSL(raw net.Conn) (net.Conn, error) {
	w := make([]byte, 8)
	w[0], w[1], w[2], w[3] = 0, 0, 0, 8
	w[4] = byte(proto.NegotiateSSLCode >> 24)
	w[5] = byte(proto.NegotiateSSLCode >> 16)
	w[6] = byte(proto.NegotiateSSLCode >> 8)
	w[7] = byte(proto.NegotiateSSLCode)
	if _, err := raw.Write(w); err != nil {
		return nil, err
	}
	resp := make([]byte, 1)
	if _, err := raw.Read(resp); err != nil {
		return nil, err
	}
	if resp[0] != 'S' {
		return nil, fmt.Errorf("wireclient: server refused SSL negotiation")
	}
	return tls.Client(raw, cn.cfg.TLS), nil
}

// --- wire-level send/recv, grounded on lib/pq's conn.go send/recv/recv1 ---

func (cn *Conn) writeBuf(b byte) *writeBuf {
	cn.scratch[0] = b
	w := writeBuf(cn.scratch[:5])
	return &w
}

// Assumes len(*m) is > 5.
func (cn *Conn) send(m *writeBuf) {
	buf := m.buf[1:]
	// length prefix excludes the leading type byte
	putInt32(buf, len(buf))
	if m.buf[0] == 0 {
		m.buf = buf
	}
	if _, err := cn.c.Write(m.buf); err != nil {
		panic(err)
	}
}

func putInt32(b []byte, n int) {
	b[0] = byte(n >> 24)
	b[1] = byte(n >> 16)
	b[2] = byte(n >> 8)
	b[3] = byte(n)
}

func (cn *Conn) recv1() (byte, *readBuf) {
	head := cn.scratch[:5]
	if _, err := ioReadFull(cn.buf, head); err != nil {
		panic(err)
	}
	t := head[0]
	n := int(int32be(head[1:])) - 4
	y := make([]byte, n)
	if _, err := ioReadFull(cn.buf, y); err != nil {
		panic(err)
	}
	rb := readBuf(y)
	return t, &rb
}

func int32be(b []byte) int32 {
	return int32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// recv reads one message, forwarding and swallowing notices, and panics
// with the parsed RawError on an ErrorResponse. This mirrors lib/pq's
// conn.recv, generalized to forward notices rather than discard them.
func (cn *Conn) recv() (t byte, r *readBuf) {
	for {
		t, r = cn.recv1()
		switch proto.ResponseCode(t) {
		case proto.ErrorResponse:
			panic(parseError(r))
		case proto.NoticeResponse:
			cn.dispatchNotice(parseNotice(r))
		default:
			return
		}
	}
}

func (cn *Conn) dispatchNotice(n *Notice) {
	cn.noticeMu.Lock()
	handler := cn.onNotice
	cn.noticeMu.Unlock()
	if handler != nil && n.Message != "" {
		handler(n)
	}
}

// --- startup & authentication ---

func (cn *Conn) startup() {
	w := cn.writeBuf(0)
	w.int32(proto.ProtocolVersion30)
	w.string("user")
	w.string(cn.cfg.User)
	w.string("database")
	w.string(cn.cfg.Database)
	if cn.cfg.ApplicationName != "" {
		w.string("application_name")
		w.string(cn.cfg.ApplicationName)
	}
	if cn.cfg.Options != "" {
		w.string("options")
		w.string(cn.cfg.Options)
	}
	w.string("")
	cn.send(w)

	for {
		t, r := cn.recv()
		switch proto.ResponseCode(t) {
		case proto.BackendKeyData, proto.ParameterStatus:
			// not needed by the core.
		case proto.AuthenticationRequest:
			cn.auth(r)
		case proto.ReadyForQuery:
			return
		default:
			errorf("unexpected response during startup: %q", t)
		}
	}
}

func (cn *Conn) auth(r *readBuf) {
	switch code := proto.AuthCode(r.int32()); code {
	case proto.AuthReqOk:
		return
	case proto.AuthReqPassword:
		w := cn.writeBuf(byte(proto.PasswordMessage))
		w.string(cn.cfg.Password)
		cn.send(w)
		cn.expectAuthOK()
	case proto.AuthReqMD5:
		salt := string(r.next(4))
		w := cn.writeBuf(byte(proto.PasswordMessage))
		w.string("md5" + md5s(md5s(cn.cfg.Password+cn.cfg.User)+salt))
		cn.send(w)
		cn.expectAuthOK()
	case proto.AuthReqSASL:
		mechanisms := []string{}
		for {
			m := r.string()
			if m == "" {
				break
			}
			mechanisms = append(mechanisms, m)
		}
		if !containsString(mechanisms, "SCRAM-SHA-256") {
			errorf("server does not offer SCRAM-SHA-256 authentication")
		}
		cn.doScramAuth(cn.cfg.Password)
	case proto.AuthReqGSS, proto.AuthReqSSPI:
		cn.gssAuth()
	default:
		errorf("unsupported authentication method: %d", code)
	}
}

func containsString(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func (cn *Conn) expectAuthOK() {
	t, r := cn.recv()
	if proto.ResponseCode(t) != proto.AuthenticationRequest {
		errorf("unexpected password response: %q", t)
	}
	if proto.AuthCode(r.int32()) != proto.AuthReqOk {
		errorf("unexpected authentication response")
	}
}

func md5s(s string) string {
	h := md5.New()
	h.Write([]byte(s))
	return fmt.Sprintf("%x", h.Sum(nil))
}

func ioReadFull(r interface{ Read([]byte) (int, error) }, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// --- query execution: unnamed-statement extended protocol ---

func (cn *Conn) Query(ctx context.Context, sql string, args []any) (res *Result, err error) {
	cn.connMu.Lock()
	defer cn.connMu.Unlock()
	defer recoverInto(&err)

	fields, paramTypes := cn.describe(sql)
	cn.bindAndExecute(sql, args, paramTypes)

	result := &Result{Fields: fields}
	for {
		t, r := cn.recv()
		switch proto.ResponseCode(t) {
		case proto.RowDescription:
			result.Fields = parseRowDescription(r)
		case proto.DataRow:
			result.Rows = append(result.Rows, cn.decodeRow(r, result.Fields))
		case proto.CommandComplete:
			result.Command, result.RowCount = parseCommandTag(r.string())
		case proto.ReadyForQuery:
			return result, nil
		case proto.ParseComplete, proto.BindComplete, proto.NoData:
		default:
			errorf("unexpected message during query execution: %q", t)
		}
	}
}

// Stream opens the same extended-protocol execution as Query but returns
// rows to the caller one at a time through yield as they arrive, instead
// of buffering the full result set. yield stops early if the caller
// returns false, matching a range-over-func iterator's early-exit contract.
func (cn *Conn) Stream(ctx context.Context, sql string, args []any, yield func(Row, error) bool) {
	cn.connMu.Lock()
	defer cn.connMu.Unlock()

	var fields []Field
	var caught error
	func() {
		defer recoverInto(&caught)
		fields, _ = cn.describe(sql)
		cn.bindAndExecute(sql, args, nil)

		for {
			t, r := cn.recv()
			switch proto.ResponseCode(t) {
			case proto.RowDescription:
				fields = parseRowDescription(r)
			case proto.DataRow:
				row := Row{Fields: fields, Values: cn.decodeRow(r, fields)}
				if !yield(row, nil) {
					return
				}
			case proto.CommandComplete, proto.ParseComplete, proto.BindComplete, proto.NoData:
				// nothing to yield
			case proto.ReadyForQuery:
				return
			default:
				errorf("unexpected message during streaming execution: %q", t)
			}
		}
	}()
	if caught != nil {
		yield(Row{}, caught)
	}
}

// describe runs Parse+Describe(Statement)+Sync for the unnamed statement so
// the caller learns parameter OIDs (needed to encode args) and, when there
// is no syntax error, the result field OIDs ahead of Bind. Matches
// spec: "the row-description event ... does not fire at all if the query
// has a syntax error" — a syntax error here surfaces as a RawError from
// recv() before any 'T' message arrives.
func (cn *Conn) describe(sql string) (fields []Field, paramTypes []oid.Oid) {
	w := cn.writeBuf(byte(proto.Parse))
	w.string("")
	w.string(sql)
	w.int16(0)
	cn.send(w)

	w = cn.writeBuf(byte(proto.Describe))
	w.byte('S')
	w.string("")
	cn.send(w)

	cn.send(cn.writeBuf(byte(proto.Sync)))

	for {
		t, r := cn.recv()
		switch proto.ResponseCode(t) {
		case proto.ParseComplete:
		case proto.ParameterDescription:
			n := r.int16()
			paramTypes = make([]oid.Oid, n)
			for i := range paramTypes {
				paramTypes[i] = r.oid()
			}
		case proto.RowDescription:
			fields = parseRowDescription(r)
		case proto.NoData:
		case proto.ReadyForQuery:
			return fields, paramTypes
		default:
			errorf("unexpected message during describe: %q", t)
		}
	}
}

func (cn *Conn) bindAndExecute(sql string, args []any, paramTypes []oid.Oid) {
	w := cn.writeBuf(byte(proto.Bind))
	w.string("")
	w.string("")
	w.int16(0)
	w.int16(len(args))
	for i, a := range args {
		if a == nil {
			w.int32(-1)
			continue
		}
		var typ oid.Oid
		if i < len(paramTypes) {
			typ = paramTypes[i]
		}
		b := encodeParam(a, typ)
		w.int32(len(b))
		w.bytes(b)
	}
	w.int16(0)
	cn.send(w)

	w = cn.writeBuf(byte(proto.Execute))
	w.string("")
	w.int32(0)
	cn.send(w)

	w = cn.writeBuf(byte(proto.Describe))
	w.byte('P')
	w.string("")
	cn.send(w)

	cn.send(cn.writeBuf(byte(proto.Sync)))
}

func (cn *Conn) decodeRow(r *readBuf, fields []Field) []any {
	n := r.int16()
	vals := make([]any, n)
	for i := 0; i < n; i++ {
		l := r.int32()
		if l == -1 {
			vals[i] = nil
			continue
		}
		raw := r.next(l)
		var typ oid.Oid
		if i < len(fields) {
			typ = fields[i].OID
		}
		v, err := cn.codec.decode(raw, typ)
		if err != nil {
			panic(err)
		}
		vals[i] = v
	}
	return vals
}

func parseRowDescription(r *readBuf) []Field {
	n := r.int16()
	fields := make([]Field, n)
	for i := range fields {
		fields[i].Name = r.string()
		r.next(6) // table OID, column attnum
		fields[i].OID = r.oid()
		r.next(8) // type size, type modifier
		r.next(2) // format code
	}
	return fields
}

func parseCommandTag(s string) (command string, rowCount *int64) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return "", nil
	}
	command = strings.ToUpper(parts[0])
	if n, err := strconv.ParseInt(parts[len(parts)-1], 10, 64); err == nil && len(parts) > 1 {
		rowCount = &n
	}
	return command, rowCount
}
