// Package db wraps a pgx connection pool with positional-parameter execution,
// unified error mapping, and failure logging. All statements pass through
// here; nothing above this layer touches the pool directly.
package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Balraaj27/lawcrusade/internal/metrics"
)

type DB struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// New opens a pool for the given connection string and verifies connectivity.
// TLS behavior (required-but-unverified for managed providers) is carried in
// the DSN, e.g. sslmode=require.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return &DB{pool: pool, logger: slog.Default()}, nil
}

func (d *DB) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
}

func (d *DB) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

// Exec runs a statement that returns no rows.
func (d *DB) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := d.pool.Exec(ctx, query, args...)
	return tag, d.finish(query, args, start, err)
}

// Query runs a statement that returns rows. The caller must close them.
func (d *DB) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := d.pool.Query(ctx, query, args...)
	return rows, d.finish(query, args, start, err)
}

// QueryRow runs a statement expected to return at most one row. Error mapping
// and timing happen at Scan time because pgx defers execution until then.
func (d *DB) QueryRow(ctx context.Context, query string, args ...any) *Row {
	return &Row{raw: d.pool.QueryRow(ctx, query, args...), query: query, args: args, db: d, start: time.Now()}
}

// WithTx runs fn inside a transaction, committing on nil and rolling back on
// error.
func (d *DB) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := d.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return mapError("BEGIN", nil, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (d *DB) finish(query string, args []any, start time.Time, err error) error {
	metrics.QueryDuration.Observe(time.Since(start).Seconds())
	mapped := mapError(query, args, err)
	d.logFailure(query, args, mapped)
	return mapped
}

// logFailure records the offending statement and parameters before the error
// propagates. Not-found is an expected outcome, not a failure.
func (d *DB) logFailure(query string, args []any, err error) {
	if err == nil || IsNotFound(err) {
		return
	}
	metrics.QueryFailures.Inc()
	d.logger.Error("database query error",
		slog.String("query", query),
		slog.Any("args", args),
		slog.String("error", err.Error()),
	)
}

// Row wraps pgx.Row so Scan errors go through the same mapping and logging as
// every other statement.
type Row struct {
	raw   pgx.Row
	query string
	args  []any
	db    *DB
	start time.Time
}

func (r *Row) Scan(dest ...any) error {
	err := r.raw.Scan(dest...)
	metrics.QueryDuration.Observe(time.Since(r.start).Seconds())
	mapped := mapError(r.query, r.args, err)
	r.db.logFailure(r.query, r.args, mapped)
	return mapped
}
