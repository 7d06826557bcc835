package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/migrations"
)

// DB wraps the opened database handle together with the engine-specific
// error classifier and the migration dialect it was opened with.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

// Migrate applies pending schema migrations using the dialect the connection
// was opened with.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// WithTransaction runs fn inside a transaction. A transaction that fails with
// an error the classifier deems transient is retried exactly once; everything
// else surfaces to the caller after rollback. Work inside fn must be safe to
// re-run from scratch.
func (db *DB) WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	err := db.runInTransaction(ctx, fn)
	if err == nil {
		return nil
	}

	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		db.logger.Warn().
			Err(err).
			Str("func", "DB.WithTransaction").
			Msg("retrying transaction after transient database error")
		return db.runInTransaction(ctx, fn)
	}

	return err
}

func (db *DB) runInTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	// rollback on panic so the connection is not left holding locks
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
