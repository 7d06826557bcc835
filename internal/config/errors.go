package config

import "errors"

// Sentinel errors for [ClientConfig.validate]. Each one covers a whole
// configuration group so callers can tell which part of the startup
// configuration needs fixing.
var (
	// ErrInvalidAdapterConfigs: chat-server address or request timeout missing.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs: DSN empty or in-memory, or the engine is not
	// one of sqlite3/postgres.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs: login credentials missing.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs: sync interval unset.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
