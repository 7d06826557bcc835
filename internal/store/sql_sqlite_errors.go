package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
// It inspects the sqlite3 error code returned by the mattn/go-sqlite3 driver
// and maps it to a [ErrorClassification] value.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// sqlite3.Error and delegates to [ClassifySQLiteError]. If err is nil or is
// not a SQLite driver error, [NonRetryable] is returned.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	// Attempt to unwrap to a sqlite3.Error.
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	// Default: treat unrecognised errors as non-retryable.
	return NonRetryable
}

// ClassifySQLiteError maps a sqlite3.Error to an [ErrorClassification] based
// on the primary result code.
// See https://www.sqlite.org/rescode.html for the full list of SQLite result
// codes.
//
// Retryable codes:
//   - SQLITE_BUSY (5) and SQLITE_LOCKED (6) — lock contention that clears
//     once the competing connection finishes its work
//   - SQLITE_PROTOCOL (15) — locking protocol collision on a shared database file
//
// Any code not listed above is classified as [NonRetryable]. Constraint
// violations, data type mismatches and schema errors will fail the same way
// on a second attempt.
func ClassifySQLiteError(sqliteErr sqlite3.Error) ErrorClassification {
	switch sqliteErr.Code {
	case sqlite3.ErrBusy,
		sqlite3.ErrLocked,
		sqlite3.ErrProtocol:
		return Retryable
	}

	return NonRetryable
}
