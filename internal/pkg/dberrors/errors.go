package dberrors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeQueryCanceled  = "57014"
	codeUndefinedTable = "42P01"
	classConnection    = "08"
)

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	return pgErr.Code, true
}

// IsQueryCanceled reports whether PostgreSQL aborted the statement, either
// through statement_timeout or an explicit cancel request.
func IsQueryCanceled(err error) bool {
	code, ok := pgCode(err)
	return ok && code == codeQueryCanceled
}

// IsUndefinedTable reports whether the query referenced a missing relation,
// which usually means migrations have not been applied.
func IsUndefinedTable(err error) bool {
	code, ok := pgCode(err)
	return ok && code == codeUndefinedTable
}

// IsConnectionFailure checks for SQLSTATE class 08 (connection exception).
func IsConnectionFailure(err error) bool {
	code, ok := pgCode(err)
	return ok && strings.HasPrefix(code, classConnection)
}
