package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs the SQL-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// CurrentSession returns the most recently created session.
// [ErrSessionNotFound] is returned when no session has been stored yet.
func (s *sessionRepository) CurrentSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := s.DB.QueryRowContext(ctx, getCurrentSession)

	scanErr := row.Scan(
		&session.ID,
		&session.UserID,
		&session.Token,
		&session.ServerURL,
		&session.LastSubscriptionFetch,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(scanErr).
			Str("func", "sessionRepository.CurrentSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	return session, nil
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, saveSession,
		session.ID,
		session.UserID,
		session.Token,
		session.ServerURL,
		session.LastSubscriptionFetch,
		session.ExpiresAt,
		session.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("session_id", session.ID).
			Str("user_id", session.UserID).
			Msg("failed to execute upsert for session")
		return fmt.Errorf("failed to save session (session_id=%s): %w", session.ID, err)
	}

	return nil
}

// SetLastSubscriptionFetch moves the session watermark on its own, outside a
// subscription batch. The rooms path uses it to backdate the watermark before
// merging room fields.
func (s *sessionRepository) SetLastSubscriptionFetch(ctx context.Context, sessionID string, fetchedAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, setLastSubscriptionFetch, fetchedAt, sessionID)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SetLastSubscriptionFetch").
			Str("session_id", sessionID).
			Msg("failed to execute watermark update")
		return fmt.Errorf("failed to set last subscription fetch (session_id=%s): %w", sessionID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SetLastSubscriptionFetch").
			Str("session_id", sessionID).
			Msg("failed to get rows affected after watermark update")
		return fmt.Errorf("failed to get rows affected (session_id=%s): %w", sessionID, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "sessionRepository.SetLastSubscriptionFetch").
			Str("session_id", sessionID).
			Msg("no rows affected during watermark update: session not found")
		return fmt.Errorf("%w (session_id=%s)", ErrSessionNotFound, sessionID)
	}

	return nil
}
