package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-sync/internal/config"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
)

// ClientStorages bundles the repositories the service layer works with: one
// for synchronized subscription rows, one for login sessions and their fetch
// watermarks.
type ClientStorages struct {
	SubscriptionRepository SubscriptionRepository
	SessionRepository      SessionRepository
}

// NewClientStorages opens the local cache database for the engine named in
// cfg.DB.Engine (SQLite unless postgres is requested), applies pending schema
// migrations and wires fresh repositories on top of the connection.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("engine", cfg.DB.Engine).Msg("opening local storage")

	open := NewConnectSQLite
	if cfg.DB.Engine == config.EnginePostgres {
		open = NewConnectPostgres
	}

	db, err := open(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("connect local database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	return &ClientStorages{
		SubscriptionRepository: NewSubscriptionRepository(db, logger),
		SessionRepository:      NewSessionRepository(db, logger),
	}, nil
}
