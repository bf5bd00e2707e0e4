package base

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnavailable marks failures where the store itself could not be
// reached, as opposed to a query-level failure. Callers branch on it
// instead of falling back to an empty stand-in result.
var ErrUnavailable = errors.New("store unavailable")

// Repository holds the shared pool helpers
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates the base repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Pool returns the connection pool
func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}

// QueryRow runs a query expected to return a single row
func (r *Repository) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	return r.pool.QueryRow(ctx, query, args...)
}

// Query runs a query returning multiple rows
func (r *Repository) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	return r.pool.Query(ctx, query, args...)
}

// ExecAffected runs a command and returns the affected row count
func (r *Repository) ExecAffected(ctx context.Context, query string, args ...interface{}) (int64, error) {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// IsNotFound checks whether err is the "no rows" error
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// ClassifyErr tags connectivity failures with ErrUnavailable so callers
// can distinguish "postgres is down" from a bad query. Other errors pass
// through unchanged.
func ClassifyErr(err error) error {
	if err == nil {
		return nil
	}
	if IsUnavailable(err) {
		return errors.Join(ErrUnavailable, err)
	}
	return err
}

// IsUnavailable reports whether err looks like a lost or refused connection
func IsUnavailable(err error) bool {
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
