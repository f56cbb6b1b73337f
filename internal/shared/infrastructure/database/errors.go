package database

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoRows is returned when a query expected to return a row returns none.
var ErrNoRows = errors.New("no rows in result set")

// IsNoRows returns true if the error indicates no rows were found.
// This handles both pgx.ErrNoRows and sql.ErrNoRows.
func IsNoRows(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, pgx.ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, ErrNoRows)
}

// ErrorKind is a locally recognized store failure category.
type ErrorKind string

const (
	KindMissingRelation  ErrorKind = "missing_relation"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindNotFound         ErrorKind = "not_found"
	KindOther            ErrorKind = "other"
)

// PostgreSQL SQLSTATE codes recognized by Classify.
const (
	codeUndefinedTable        = "42P01"
	codeInsufficientPrivilege = "42501"
)

// StoreError is a failure reported by the store, reduced to a kind, an
// optional machine code and the store's own message.
type StoreError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return "store error (code " + e.Code + ")"
	}
	return string(e.Kind)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Classify maps a store error onto an ErrorKind. Structured codes win;
// drivers that carry no code (SQLite) fall back to message matching.
func Classify(err error) *StoreError {
	if err == nil {
		return nil
	}

	var se *StoreError
	if errors.As(err, &se) {
		return se
	}

	if IsNoRows(err) {
		return &StoreError{Kind: KindNotFound, Message: "record not found", Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		out := &StoreError{Kind: KindOther, Code: pgErr.Code, Message: pgErr.Message, Err: err}
		switch pgErr.Code {
		case codeUndefinedTable:
			out.Kind = KindMissingRelation
		case codeInsufficientPrivilege:
			out.Kind = KindPermissionDenied
		}
		return out
	}

	return &StoreError{Kind: classifyMessage(err.Error()), Message: err.Error(), Err: err}
}

func classifyMessage(msg string) ErrorKind {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "no such table"),
		strings.Contains(lower, "relation") && strings.Contains(lower, "does not exist"):
		return KindMissingRelation
	case strings.Contains(lower, "permission denied"),
		strings.Contains(lower, "not authorized"),
		strings.Contains(lower, "attempt to write a readonly database"):
		return KindPermissionDenied
	default:
		return KindOther
	}
}

// IsServerError reports whether err was produced by the store itself
// rather than by the transport.
func IsServerError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return true
	}
	if IsNoRows(err) {
		return true
	}
	// SQLite runs in-process; every error it returns is store-reported.
	var se *sqliteError
	return errors.As(err, &se)
}

// sqliteError tags errors returned by the SQLite connection.
type sqliteError struct {
	err error
}

func (e *sqliteError) Error() string { return e.err.Error() }
func (e *sqliteError) Unwrap() error { return e.err }

// WrapSQLiteError marks err as reported by SQLite. Nil stays nil and
// no-rows errors are returned unchanged.
func WrapSQLiteError(err error) error {
	if err == nil || IsNoRows(err) {
		return err
	}
	return &sqliteError{err: err}
}
