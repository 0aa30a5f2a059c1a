package errors

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the laudo store can hit
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
	pgStringTooLong       = "22001"
	pgReadOnlyTx          = "25006"
	pgCannotConnectNow    = "57P03"
	pgAdminShutdown       = "57P01"
)

// PgCode returns the SQLSTATE of the Postgres error at the root of err
func PgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool {
	code, ok := PgCode(err)
	return ok && code == pgUniqueViolation
}

// DBErrorCode classifies a Postgres error, ok is false for anything else
func DBErrorCode(err error) (ErrorCode, bool) {
	code, ok := PgCode(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch code {
	case pgUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgForeignKeyViolation, pgNotNullViolation, pgCheckViolation, pgNumericOutOfRange, pgStringTooLong:
		return ErrorCodeValidation, true
	case pgReadOnlyTx, pgCannotConnectNow, pgAdminShutdown:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err under its mapped code, nil stays nil
// the constraint or column name becomes the field when present
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	out := Wrap(err, code, msg)

	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		switch {
		case pgErr.ColumnName != "":
			out = WithField(out, pgErr.ColumnName)
		case pgErr.ConstraintName != "":
			out = WithField(out, pgErr.ConstraintName)
		}
	}
	return out
}
