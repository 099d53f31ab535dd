// Package dsnparse is the default DSNParser: a postgres:// URL reader,
// grounded on lib/pq's url.go parseURL (net/url host/user/path/query
// extraction), generalized from lib/pq's keyword/value string output into
// the structured DSNFields the sqlward package's configuration mapper
// consumes directly.
package dsnparse

import (
	"fmt"
	"net"
	"net/url"

	"github.com/sqlward/sqlward/internal/pqutil"
)

// Fields mirrors sqlward.DSNFields without importing package sqlward, so
// this package has no dependency on the core; sqlward's defaultDSNParser
// (dsn.go) adapts it.
type Fields struct {
	Host            string
	Port            string
	DatabaseName    string
	Username        string
	Password        string
	SSLMode         string
	ApplicationName string
	Options         string
}

// Parse reads a postgres:// or postgresql:// connection URI.
func Parse(dsn string) (Fields, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return Fields{}, err
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return Fields{}, fmt.Errorf("dsnparse: invalid connection protocol: %s", u.Scheme)
	}

	var f Fields
	if u.User != nil {
		f.Username = u.User.Username()
		f.Password, _ = u.User.Password()
	}
	if f.Username == "" {
		f.Username, _ = pqutil.User()
	}

	if host, port, err := net.SplitHostPort(u.Host); err == nil {
		f.Host = host
		f.Port = port
	} else {
		f.Host = u.Host
	}
	if f.Port == "" {
		f.Port = "5432"
	}

	if len(u.Path) > 1 {
		f.DatabaseName = u.Path[1:]
	}

	q := u.Query()
	f.SSLMode = q.Get("sslmode")
	f.ApplicationName = q.Get("application_name")
	f.Options = q.Get("options")

	return f, nil
}
