package errors

// Postgres-specific helpers for mapping pgx errors to project ErrorCode

import (
	stderrs "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the codebook store cares about
const (
	pgErrUndefinedTable            = "42P01"
	pgErrUndefinedColumn           = "42703"
	pgErrInvalidTextRepresentation = "22P02"
	pgErrInsufficientPrivilege     = "42501"
	pgErrCannotConnectNow          = "57P03"
	pgErrAdminShutdown             = "57P01"
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError.
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether the error is a Postgres error with the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsUndefinedTable reports whether the statement referenced a table that does not exist
func IsUndefinedTable(err error) bool { return IsSQLState(err, pgErrUndefinedTable) }

// IsConnectionUnavailable reports whether the server refused work while starting or stopping
func IsConnectionUnavailable(err error) bool {
	return IsSQLState(err, pgErrCannotConnectNow) || IsSQLState(err, pgErrAdminShutdown)
}

// DBErrorCode maps a Postgres error to an ErrorCode with an ok flag
// !ok means err wasn't a PgError; caller may fall back to generic handling
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgErrUndefinedTable, pgErrUndefinedColumn:
		return ErrorCodeNotFound, true
	case pgErrInvalidTextRepresentation:
		return ErrorCodeInvalidArgument, true
	case pgErrCannotConnectNow, pgErrAdminShutdown, pgErrInsufficientPrivilege:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a pg error with a mapped ErrorCode and message.
// If err is nil, returns nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// FromPostgresf is the formatted variant of FromPostgres
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}
