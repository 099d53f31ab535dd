// Package lock provides PostgreSQL advisory locking built on top of the
// shape-method query layer, rather than a raw database/sql connection.
// See https://www.postgresql.org/docs/current/static/explicit-locking.html#ADVISORY-LOCKS
package lock

import (
	"context"
	"errors"
	"sync"

	"github.com/sqlward/sqlward"
)

type Lock struct {
	key   int32
	space int32
	ctx   context.Context
	conn  *sqlward.Connection
}

var ErrLockNotHeld = errors.New("lock wasn't held")

// NewLock opens a dedicated Connection (advisory locks are
// session-scoped, so this connection must not be shared with unrelated
// queries) and returns a Lock bound to it.
func NewLock(ctx context.Context, cfg sqlward.ClientConfiguration, space int32, key int32) (*Lock, error) {
	factory := sqlward.NewDriverFactory(cfg, nil, nil)
	conn, err := factory.NewConnection(ctx)
	if err != nil {
		return nil, err
	}
	if err := conn.Connect(ctx); err != nil {
		return nil, err
	}
	return &Lock{key: key, space: space, ctx: ctx, conn: conn}, nil
}

// Close ends the underlying connection. Any lock still held by the
// session is released automatically by the backend on disconnect.
func (l *Lock) Close() error {
	return l.conn.End(l.ctx)
}

// Lock locks l. If the lock is already in use, the calling goroutine
// blocks until the lock is available.
func (l *Lock) Lock() error {
	return l.lock("SELECT pg_advisory_lock($1, $2)")
}

// RLock locks l for reading.
func (l *Lock) RLock() error {
	return l.lock("SELECT pg_advisory_lock_shared($1, $2)")
}

func (l *Lock) lock(query string) error {
	_, err := sqlward.Query(l.ctx, nil, l.conn, query, []any{l.space, l.key}, nil)
	return err
}

// Unlock unlocks l.
func (l *Lock) Unlock() error {
	return l.unlock("SELECT pg_advisory_unlock($1, $2)")
}

// RUnlock undoes a single RLock call.
func (l *Lock) RUnlock() error {
	return l.unlock("SELECT pg_advisory_unlock_shared($1, $2)")
}

func (l *Lock) unlock(query string) error {
	success, err := sqlward.OneFirst(l.ctx, nil, l.conn, query, []any{l.space, l.key}, nil)
	if err != nil {
		return err
	}
	if ok, _ := success.(bool); !ok {
		return ErrLockNotHeld
	}
	return nil
}

// Locker returns a sync.Locker that panics on error, for callers that
// can't thread an error return through (e.g. deferred unlocks).
func (l *Lock) Locker() sync.Locker {
	return (*locker)(l)
}

// RLocker is the RLock/RUnlock counterpart to Locker.
func (l *Lock) RLocker() sync.Locker {
	return (*rlocker)(l)
}

type locker Lock

func (l *locker) Lock() {
	if err := (*Lock)(l).Lock(); err != nil {
		panic(err)
	}
}

func (l *locker) Unlock() {
	if err := (*Lock)(l).Unlock(); err != nil {
		panic(err)
	}
}

type rlocker Lock

func (l *rlocker) Lock() {
	if err := (*Lock)(l).RLock(); err != nil {
		panic(err)
	}
}

func (l *rlocker) Unlock() {
	if err := (*Lock)(l).RUnlock(); err != nil {
		panic(err)
	}
}
