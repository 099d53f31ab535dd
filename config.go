package sqlward

import (
	"crypto/tls"

	"github.com/sqlward/sqlward/internal/pgpass"
	"github.com/sqlward/sqlward/internal/wireclient"
)

// SSLMode is the closed set of SSL policies a ClientConfiguration can
// name, either directly or via a DSN's sslmode field.
type SSLMode string

const (
	SSLUnset    SSLMode = ""
	SSLDisable  SSLMode = "disable"
	SSLRequire  SSLMode = "require"
	SSLNoVerify SSLMode = "no-verify"
)

// TimeoutMillis is a timeout axis: either disabled entirely, or a
// duration in milliseconds (0 meaning "the minimum positive value", per
// spec's zero-remapping rule, not "no timeout").
type TimeoutMillis struct {
	Disabled bool
	Millis   int64
}

// TypeParser pairs a backend type name with the function that decodes its
// wire-format text representation.
type TypeParser struct {
	Name  string
	Parse func(raw string) (any, error)
}

// SSLPolicy is an explicit override of the DSN-derived sslMode.
type SSLPolicy struct {
	Mode SSLMode
}

// ClientConfiguration is the immutable input bundle a DriverFactory is
// built from.
type ClientConfiguration struct {
	ConnectionURI                   string
	SSL                              *SSLPolicy // nil = DSN-derived
	ConnectionTimeout                TimeoutMillis
	StatementTimeout                 TimeoutMillis
	IdleInTransactionSessionTimeout  TimeoutMillis
	TypeParsers                      []TypeParser
}

// resolveSSLMode implements spec §4.3's precedence rule: an explicit SSL
// policy on the client configuration overrides whatever the DSN carried.
func resolveSSLMode(cfg ClientConfiguration, dsnMode SSLMode) SSLMode {
	if cfg.SSL != nil {
		return cfg.SSL.Mode
	}
	return dsnMode
}

// tlsConfigForMode renders an SSLMode into a *tls.Config, grounded on
// lib/pq's ssl.go ssl() dispatch over sslmode (disable/require/
// verify-full/verify-ca), generalized to spec's closed four-value set.
// "require" negotiates TLS with full certificate verification against
// the host's name; only "no-verify" disables verification. A nil
// return disables SSL negotiation entirely.
func tlsConfigForMode(mode SSLMode, host string) *tls.Config {
	switch mode {
	case SSLRequire:
		return &tls.Config{ServerName: host}
	case SSLNoVerify:
		return &tls.Config{InsecureSkipVerify: true}
	case SSLDisable, SSLUnset:
		return nil
	default:
		return nil
	}
}

// remapTimeout implements spec §4.3: "DISABLE_TIMEOUT" (Disabled: true)
// omits the field entirely (nil); 0 becomes 1; any other value passes
// through unchanged.
func remapTimeout(t TimeoutMillis) *int64 {
	if t.Disabled {
		return nil
	}
	v := t.Millis
	if v == 0 {
		v = 1
	}
	return &v
}

// driverConfig is the native, typed configuration passed to the
// underlying client, mirroring lib/pq's values map (connector.go) but
// typed rather than string-keyed.
type driverConfig struct {
	ApplicationName string
	Database        string
	Host            string
	Port            string
	Options         string
	Password        string
	User            string

	ConnectTimeoutMillis               *int64
	StatementTimeoutMillis             *int64
	IdleInTransactionSessionTimeoutMillis *int64

	TLS *tls.Config
}

// mapConfiguration translates a ClientConfiguration (DSN + timeout policy
// + SSL policy) into the native driverConfig, per spec §4.3.
func mapConfiguration(cfg ClientConfiguration, dsn DSNFields) driverConfig {
	mode := resolveSSLMode(cfg, dsn.SSLMode)
	return driverConfig{
		ApplicationName: dsn.ApplicationName,
		Database:        dsn.DatabaseName,
		Host:            dsn.Host,
		Port:            dsn.Port,
		Options:         dsn.Options,
		Password:        resolvePassword(dsn),
		User:            dsn.Username,

		ConnectTimeoutMillis:                  remapTimeout(cfg.ConnectionTimeout),
		StatementTimeoutMillis:                remapTimeout(cfg.StatementTimeout),
		IdleInTransactionSessionTimeoutMillis: remapTimeout(cfg.IdleInTransactionSessionTimeout),

		TLS: tlsConfigForMode(mode, dsn.Host),
	}
}

// resolvePassword falls back to the user's ~/.pgpass file when the DSN
// carries no password, matching lib/pq's connector.go behavior
// (internal/pgpass.PasswordFromPgpass, ported from its pgpass.go).
func resolvePassword(dsn DSNFields) string {
	if dsn.Password != "" {
		return dsn.Password
	}
	return pgpass.PasswordFromPgpass(map[string]string{
		"host":   dsn.Host,
		"port":   dsn.Port,
		"dbname": dsn.DatabaseName,
		"user":   dsn.Username,
	})
}

// wireConfig renders a driverConfig into the wireclient.Config the
// underlying client actually dials with. Statement/idle timeouts are
// carried as startup "options" (-c statement_timeout=...), the same
// mechanism lib/pq's connector.go uses for non-libpq-standard GUCs.
// ConnectTimeoutMillis has no wire representation and is not carried into
// wireclient.Config; nothing applies it, so the dial is bounded only by
// the context passed to Connect.
func wireConfig(dc driverConfig) wireclient.Config {
	opts := dc.Options
	if dc.StatementTimeoutMillis != nil {
		opts = appendOption(opts, "statement_timeout", *dc.StatementTimeoutMillis)
	}
	if dc.IdleInTransactionSessionTimeoutMillis != nil {
		opts = appendOption(opts, "idle_in_transaction_session_timeout", *dc.IdleInTransactionSessionTimeoutMillis)
	}
	return wireclient.Config{
		Host:            dc.Host,
		Port:            dc.Port,
		Database:        dc.Database,
		User:            dc.User,
		Password:        dc.Password,
		ApplicationName: dc.ApplicationName,
		Options:         opts,
		TLS:             dc.TLS,
	}
}

func appendOption(opts, gucName string, millis int64) string {
	clause := "-c " + gucName + "=" + itoa(millis) + "ms"
	if opts == "" {
		return clause
	}
	return opts + " " + clause
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
