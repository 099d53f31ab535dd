// Package oid contains numeric identifiers for the PostgreSQL types
// referenced directly by the wire client. It is not a full pg_type
// catalog mirror: unlisted OIDs simply flow through decode() as raw
// text, which is correct for any type without a built-in fast path.
package oid

// Oid is a PostgreSQL OID (object identifier), used here to identify
// built-in and catalog-resolved data types.
type Oid uint32

// Built-in type OIDs, stable across PostgreSQL versions.
const (
	T_bool        Oid = 16
	T_bytea       Oid = 17
	T_char        Oid = 18
	T_name        Oid = 19
	T_int8        Oid = 20
	T_int2        Oid = 21
	T_int4        Oid = 23
	T_text        Oid = 25
	T_json        Oid = 114
	T_xml         Oid = 142
	T_point       Oid = 600
	T_float4      Oid = 700
	T_float8      Oid = 701
	T_unknown     Oid = 705
	T_inet        Oid = 869
	T_varchar     Oid = 1043
	T_date        Oid = 1082
	T_time        Oid = 1083
	T_timestamp   Oid = 1114
	T_timestamptz Oid = 1184
	T_interval    Oid = 1186
	T_timetz      Oid = 1266
	T_numeric     Oid = 1700
	T_uuid        Oid = 2950
	T_jsonb       Oid = 3802

	T_int4range Oid = 3904
	T_int8range Oid = 3926
	T_numrange  Oid = 3906
	T_daterange Oid = 3912

	T_cidr    Oid = 650
	T_macaddr Oid = 829

	T_hstore Oid = 0 // resolved at runtime; hstore is an extension type, not built-in
)
