// Package sqldb opens relational catalog stores (PostgreSQL, SQLite) behind
// database/sql and smooths over placeholder differences between them.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/kailas-cloud/vitrine/internal/db"
)

// Dialect selects driver and placeholder style.
type Dialect string

const (
	// Postgres uses $n placeholders.
	Postgres Dialect = "postgres"
	// SQLite uses ? placeholders.
	SQLite Dialect = "sqlite"
)

func (d Dialect) driverName() (string, error) {
	switch d {
	case Postgres:
		return "postgres", nil
	case SQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported sql dialect %q", d)
	}
}

// Config holds connection parameters for a SQL store.
type Config struct {
	Dialect Dialect
	DSN     string
	// MaxOpenConns caps the pool; SQLite in-memory databases need 1.
	MaxOpenConns int
}

// DB is a database/sql handle bound to a dialect.
type DB struct {
	sql     *sql.DB
	dialect Dialect
}

// Open creates a pool. It does not wait for the server; see WaitForReady.
func Open(cfg Config) (*DB, error) {
	driver, err := cfg.Dialect.driverName()
	if err != nil {
		return nil, err
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("dsn is required")
	}

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	return &DB{sql: conn, dialect: cfg.Dialect}, nil
}

// Dialect returns the dialect the handle was opened with.
func (d *DB) Dialect() Dialect { return d.dialect }

// SQL exposes the underlying pool.
func (d *DB) SQL() *sql.DB { return d.sql }

// Ping checks connectivity.
func (d *DB) Ping(ctx context.Context) error {
	if err := d.sql.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close releases the pool.
func (d *DB) Close() {
	_ = d.sql.Close()
}

// WaitForReady retries Ping with exponential backoff until it succeeds or
// timeout expires.
func (d *DB) WaitForReady(ctx context.Context, timeout time.Duration) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxInterval = 2 * time.Second
	bo.MaxElapsedTime = timeout

	if err := backoff.Retry(func() error {
		return d.Ping(ctx)
	}, backoff.WithContext(bo, ctx)); err != nil {
		return fmt.Errorf("timeout waiting for database: %w", err)
	}
	return nil
}

// Rebind rewrites ? placeholders into the dialect's style.
func (d *DB) Rebind(query string) string {
	if d.dialect != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// QueryContext runs a query written with ? placeholders.
func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := d.sql.QueryContext(ctx, d.Rebind(query), args...)
	if err != nil {
		return nil, &db.Error{Op: db.OpQuery, Err: err}
	}
	return rows, nil
}

// QueryRowContext runs a single-row query written with ? placeholders.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.sql.QueryRowContext(ctx, d.Rebind(query), args...)
}

// ExecContext runs a statement written with ? placeholders.
func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := d.sql.ExecContext(ctx, d.Rebind(query), args...)
	if err != nil {
		return nil, &db.Error{Op: db.OpExec, Err: err}
	}
	return res, nil
}

// Tx is a transaction that rebinds placeholders like DB.
type Tx struct {
	tx *sql.Tx
	db *DB
}

// InTx runs fn inside a transaction, committing on nil and rolling back otherwise.
func (d *DB) InTx(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return &db.Error{Op: db.OpTx, Err: err}
	}
	if err := fn(&Tx{tx: tx, db: d}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return &db.Error{Op: db.OpTx, Err: err}
	}
	return nil
}

// ExecContext runs a statement written with ? placeholders.
func (t *Tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := t.tx.ExecContext(ctx, t.db.Rebind(query), args...)
	if err != nil {
		return nil, &db.Error{Op: db.OpExec, Err: err}
	}
	return res, nil
}
