package wireclient

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/sqlward/sqlward/internal/wireclient/oid"
)

// Decoder turns the raw text-format wire bytes for one column value into a
// Go value. The default decoders implement the built-in PostgreSQL types;
// for any OID without a decoder, decode hands back the text unchanged as a
// string, and a caller-supplied decoder (installed via setDecoder) can
// take over that OID.
type Decoder func(s []byte) (any, error)

// codec is the per-connection, OID-keyed decode table. The query-method
// layer never sees it directly; the driver adapter installs decoders into
// it on behalf of the type-parser registry (see internal/typeparser) and
// consults it while shaping a QueryResult.
type codec struct {
	decoders map[oid.Oid]Decoder
	// arrayDecoders is allocated but never filled: setDecoder stores the
	// element-wise array decoder in decoders, keyed by the array OID.
	arrayDecoders map[oid.Oid]Decoder
}

func newCodec() *codec {
	c := &codec{
		decoders:      make(map[oid.Oid]Decoder),
		arrayDecoders: make(map[oid.Oid]Decoder),
	}
	c.decoders[oid.T_bytea] = decodeBytea
	c.decoders[oid.T_timestamptz] = decodeTimestamptz
	c.decoders[oid.T_timestamp] = decodeTimestamp
	c.decoders[oid.T_time] = decodeTime
	c.decoders[oid.T_timetz] = decodeTimetz
	c.decoders[oid.T_date] = decodeDate
	c.decoders[oid.T_bool] = decodeBool
	c.decoders[oid.T_int2] = decodeInt
	c.decoders[oid.T_int4] = decodeInt
	c.decoders[oid.T_int8] = decodeInt
	c.decoders[oid.T_float4] = decodeFloat32
	c.decoders[oid.T_float8] = decodeFloat64
	return c
}

// setDecoder installs a caller-supplied decoder for a scalar OID, and for
// its array OID (if non-zero) an element-wise decoder that first splits the
// "{...}" wire literal. This is the hook the type-parser registry uses to
// satisfy spec: "type parsers installed for name N apply to both scalar OID
// and array OID of N."
func (c *codec) setDecoder(scalarOid oid.Oid, arrayOid oid.Oid, d Decoder) {
	c.decoders[scalarOid] = d
	if arrayOid != 0 {
		c.decoders[arrayOid] = arrayElementDecoder(d)
	}
}

// decode returns the value for typ, falling back to the raw text when no
// decoder is installed — the "delegate to the underlying client's default
// parser" branch of the type-parser registry contract.
func (c *codec) decode(s []byte, typ oid.Oid) (any, error) {
	if d, ok := c.decoders[typ]; ok {
		return d(s)
	}
	return string(s), nil
}

func decodeBytea(s []byte) (any, error) {
	if len(s) < 2 || s[0] != '\\' || s[1] != 'x' {
		return s, nil
	}
	s = s[2:]
	d := make([]byte, hex.DecodedLen(len(s)))
	if _, err := hex.Decode(d, s); err != nil {
		return nil, fmt.Errorf("wireclient: decode bytea: %w", err)
	}
	return d, nil
}

func decodeTimestamptz(s []byte) (any, error) { return mustParseTime("2006-01-02 15:04:05-07", true, s) }
func decodeTimestamp(s []byte) (any, error)   { return mustParseTime("2006-01-02 15:04:05", false, s) }
func decodeTime(s []byte) (any, error)        { return mustParseTime("15:04:05", false, s) }
func decodeTimetz(s []byte) (any, error)      { return mustParseTime("15:04:05-07", true, s) }
func decodeDate(s []byte) (any, error)        { return mustParseTime("2006-01-02", false, s) }

func decodeBool(s []byte) (any, error) {
	if len(s) == 0 {
		return false, nil
	}
	return s[0] == 't', nil
}

func decodeInt(s []byte) (any, error) {
	return strconv.ParseInt(string(s), 10, 64)
}

func decodeFloat32(s []byte) (any, error) {
	return strconv.ParseFloat(string(s), 32)
}

func decodeFloat64(s []byte) (any, error) {
	return strconv.ParseFloat(string(s), 64)
}

func mustParseTime(layout string, hasZoneOffset bool, s []byte) (any, error) {
	str := string(s)
	if len(str) > 0 && str[len(str)-2] == '.' {
		str += "0"
	}
	if hasZoneOffset && len(str) > 3 && str[len(str)-3] == ':' {
		layout += ":00"
	}
	t, err := time.Parse(layout, str)
	if err != nil {
		return nil, fmt.Errorf("wireclient: decode time: %w", err)
	}
	return t, nil
}
