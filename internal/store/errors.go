package store

import "errors"

// Domain sentinels, matched with [errors.Is].
var (
	// ErrSessionNotFound: no session row stored locally, or an update named a
	// session that is not there.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSubscriptionNotFound: an update named a rid with no local row.
	ErrSubscriptionNotFound = errors.New("subscription was not found")
)

// SQL-level sentinels wrapped into repository errors when a statement fails
// before any domain logic runs.
var (
	// ErrBuildingSQLQuery: squirrel could not render the statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction: the driver refused to open a transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction: commit failed; the transaction counts as
	// rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
