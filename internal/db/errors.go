package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a statement matches no rows.
	ErrNotFound = errors.New("db: record not found")

	// ErrDuplicate is returned on unique-constraint violations (duplicate
	// email, duplicate slug).
	ErrDuplicate = errors.New("db: duplicate key")
)

func IsNotFound(err error) bool  { return errors.Is(err, ErrNotFound) }
func IsDuplicate(err error) bool { return errors.Is(err, ErrDuplicate) }

// QueryError wraps any other store failure with the statement and parameters
// that caused it. Parameters are always bound positionally, so the statement
// text never contains user input.
type QueryError struct {
	Query string
	Args  []any
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("db: query failed: %v (query: %s)", e.Err, e.Query)
}

func (e *QueryError) Unwrap() error { return e.Err }

// uniqueViolation is the Postgres error code for unique-constraint failures.
const uniqueViolation = "23505"

func mapError(query string, args []any, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return &QueryError{Query: query, Args: args, Err: err}
}
