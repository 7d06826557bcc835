package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.WithTransaction] whether a failed statement
// is worth one more attempt or the transaction should be abandoned.
type ErrorClassification int

const (
	// NonRetryable marks failures that will not go away on their own:
	// constraint violations, bad SQL, data errors, and anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// failures, deadlock rollbacks.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] over the error
// codes reported by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Anything that does not unwrap to
// a *pgconn.PgError is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
//
// Retryable: class 08 (connection exceptions), class 40 (transaction
// rollback: serialization failure, deadlock) and 57P03 (cannot connect now).
// Every other code — including class 22 data exceptions, class 23 constraint
// violations and class 42 syntax errors — is [NonRetryable].
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,  // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected,     // 40P01
		pgerrcode.CannotConnectNow:     // 57P03
		return Retryable
	}

	return NonRetryable
}
