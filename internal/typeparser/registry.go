// Package typeparser implements spec §4.2's type-parser registry: a
// one-shot pg_type lookup that installs per-OID decoders into an
// UnderlyingClient, memoized per driver instance with
// golang.org/x/sync/singleflight so concurrent first-use callers share a
// single in-flight resolution. Grounded on lib/pq's codec.go OID-keyed
// decode table, generalized from a compiled-in switch to one resolved at
// runtime against the backend's own pg_type catalog.
package typeparser

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/sqlward/sqlward/internal/wireclient"
	"github.com/sqlward/sqlward/internal/wireclient/oid"
)

// Entry is a requested (name, decode function) pair, structurally
// equivalent to sqlward.TypeParser but free of any import-cycle
// dependency on the root package.
type Entry struct {
	Name  string
	Parse func(raw string) (any, error)
}

// Queryer is the minimal surface typeparser needs from the underlying
// client to run its bring-up query; wireclient.Conn satisfies it.
type Queryer interface {
	Query(ctx context.Context, sql string, args []any) (*wireclient.Result, error)
}

// Client is the full surface Resolve needs: running the bring-up query
// and installing the decoders it resolves. wireclient.Conn (and any
// other UnderlyingClient) satisfies it.
type Client interface {
	Queryer
	SetDecoder(scalarOid, arrayOid oid.Oid, d wireclient.Decoder)
}

// resolvedEntry is the outcome of resolving one Entry against pg_type:
// its scalar and array OIDs, paired with the decode function to install
// under them.
type resolvedEntry struct {
	oid, arrayOid oid.Oid
	decode        func(raw string) (any, error)
}

// Registry memoizes resolution at driver scope: every connection built
// from the same DriverFactory shares one Registry. The bring-up query
// itself runs at most once, guarded by once/err/resolved below;
// singleflight only collapses callers racing to trigger that single
// run, it is not itself the cache — sequential callers after the first
// completed run hit the cached resolved slice instead of re-querying.
type Registry struct {
	entries []Entry
	group   singleflight.Group

	once     sync.Once
	err      error
	resolved []resolvedEntry
}

func New(entries []Entry) *Registry {
	return &Registry{entries: entries}
}

// Resolve runs the bring-up query at most once per Registry lifetime,
// regardless of how many connections call it sequentially or
// concurrently, and installs the resulting decoders into client on
// every call. Absence of any named type is fatal, per spec §4.2 step 2
// and §7 ("Type-parser bring-up failure is fatal to the driver
// instance").
func (reg *Registry) Resolve(ctx context.Context, client Client) error {
	if len(reg.entries) == 0 {
		return nil
	}

	reg.once.Do(func() {
		_, err, _ := reg.group.Do("resolve", func() (any, error) {
			resolved, err := reg.resolveOnce(ctx, client)
			reg.resolved = resolved
			return nil, err
		})
		reg.err = err
	})
	if reg.err != nil {
		return reg.err
	}

	for _, r := range reg.resolved {
		decode := r.decode
		client.SetDecoder(r.oid, r.arrayOid, func(s []byte) (any, error) {
			return decode(string(s))
		})
	}
	return nil
}

func (reg *Registry) resolveOnce(ctx context.Context, q Queryer) ([]resolvedEntry, error) {
	res, err := q.Query(ctx, `SELECT oid, typarray, typname FROM pg_type WHERE typname = ANY($1::text[])`, []any{pqStringArray(reg.entries)})
	if err != nil {
		return nil, fmt.Errorf("typeparser: resolving pg_type metadata: %w", err)
	}

	found := make(map[string]struct {
		oid, arrayOid oid.Oid
	}, len(res.Rows))
	for _, row := range res.Rows {
		if len(row) != 3 {
			continue
		}
		name, _ := row[2].(string)
		found[name] = struct{ oid, arrayOid oid.Oid }{toOid(row[0]), toOid(row[1])}
	}

	resolved := make([]resolvedEntry, 0, len(reg.entries))
	for _, e := range reg.entries {
		f, ok := found[e.Name]
		if !ok {
			return nil, fmt.Errorf("typeparser: backend has no type named %q", e.Name)
		}
		resolved = append(resolved, resolvedEntry{oid: f.oid, arrayOid: f.arrayOid, decode: e.Parse})
	}
	return resolved, nil
}

func toOid(v any) oid.Oid {
	switch x := v.(type) {
	case int64:
		return oid.Oid(x)
	case int32:
		return oid.Oid(x)
	case int:
		return oid.Oid(x)
	case string:
		// pg_type's oid/typarray columns have type oid, for which the
		// codec has no decoder, so they arrive as their decimal text.
		n, err := strconv.ParseUint(x, 10, 32)
		if err != nil {
			return 0
		}
		return oid.Oid(n)
	default:
		return 0
	}
}

// pqStringArray renders the requested names as a PostgreSQL text-array
// literal, the wire format the ANY($1::text[]) bind parameter expects.
func pqStringArray(entries []Entry) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(e.Name, `"`, `\"`))
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}
