package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-chat-sync/internal/config"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
)

// Pool sizing for a single-user client: the sync job, read acknowledgments
// and the occasional interactive query.
const (
	pgMaxOpenConns = 10
	pgMaxIdleConns = 4
)

// NewConnectPostgres opens a PostgreSQL connection for clients that keep
// their local store in a shared server instead of an on-disk file.
func NewConnectPostgres(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("open postgres database")
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	conn.SetMaxOpenConns(pgMaxOpenConns)
	conn.SetMaxIdleConns(pgMaxIdleConns)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("ping postgres database")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to postgres")

	return &DB{
		DB:                 conn,
		dialect:            config.EnginePostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}, nil
}
