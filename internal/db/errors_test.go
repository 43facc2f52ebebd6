package db

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapErrorNoRows(t *testing.T) {
	err := mapError("SELECT 1", nil, pgx.ErrNoRows)
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestMapErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "blog_posts_slug_key"}
	err := mapError("INSERT INTO blog_posts ...", []any{"slug"}, pgErr)
	if !IsDuplicate(err) {
		t.Fatalf("expected duplicate, got %v", err)
	}
}

func TestMapErrorWrapsQuery(t *testing.T) {
	cause := errors.New("connection refused")
	err := mapError("SELECT * FROM admins WHERE id = $1", []any{"a-1"}, cause)

	var qerr *QueryError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected QueryError, got %T", err)
	}
	if qerr.Query != "SELECT * FROM admins WHERE id = $1" {
		t.Fatalf("statement not preserved: %s", qerr.Query)
	}
	if len(qerr.Args) != 1 || qerr.Args[0] != "a-1" {
		t.Fatalf("args not preserved: %v", qerr.Args)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not unwrappable")
	}
	if IsNotFound(err) || IsDuplicate(err) {
		t.Fatalf("generic failure must not match sentinels")
	}
}

func TestMapErrorNil(t *testing.T) {
	if err := mapError("SELECT 1", nil, nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
