package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
)

// touchQuery is a stand-in statement executed inside the transaction under test.
const touchQuery = `UPDATE subscriptions SET unread = 0, alert = false, updated_at = CURRENT_TIMESTAMP WHERE rid = $1;`

func execTouch(t *testing.T, storeDB *DB) error {
	t.Helper()
	return storeDB.WithTransaction(testContext(), func(tx *sql.Tx) error {
		_, execErr := tx.ExecContext(testContext(), touchQuery, "rid-1")
		return execErr
	})
}

func TestWithTransaction_CommitsOnSuccess(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
		WithArgs("rid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, execTouch(t, storeDB))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RetriesOnceOnDeadlock(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	deadlock := &pgconn.PgError{Code: pgerrcode.DeadlockDetected}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
		WithArgs("rid-1").
		WillReturnError(deadlock)
	mock.ExpectRollback()

	// второй прогон той же транзакции
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
		WithArgs("rid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, execTouch(t, storeDB))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RetriesOnceOnSQLiteBusy(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := &DB{
		DB:                 db,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
		WithArgs("rid-1").
		WillReturnError(busy)
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
		WithArgs("rid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, execTouch(t, storeDB))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_NonRetryableErrorSurfacesAfterOneAttempt(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
		WithArgs("rid-1").
		WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err := execTouch(t, storeDB)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
	// ExpectationsWereMet проверяет что второго Begin не было
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := storeDB.WithTransaction(testContext(), func(tx *sql.Tx) error {
		t.Fatal("transaction body must not run when Begin fails")
		return nil
	})

	require.ErrorIs(t, err, ErrBeginningTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_CommitError(t *testing.T) {
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
		WithArgs("rid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	err := execTouch(t, storeDB)

	require.ErrorIs(t, err, ErrCommitingTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}
