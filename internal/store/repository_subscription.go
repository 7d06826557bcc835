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

type subscriptionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSubscriptionRepository constructs the SQL-backed [SubscriptionRepository].
func NewSubscriptionRepository(db *DB, logger *logger.Logger) SubscriptionRepository {
	return &subscriptionRepository{
		DB:     db,
		logger: logger,
	}
}

// ApplyBatch persists one subscription delta atomically. Upserts re-link their
// rows to the owning session, removals keep the row but clear the link, and
// the session watermark advances in the same transaction as the rows it
// covers. An empty batch still advances the watermark.
func (s *subscriptionRepository) ApplyBatch(ctx context.Context, batch models.SubscriptionBatch) error {
	log := logger.FromContext(ctx)

	err := s.WithTransaction(ctx, func(tx *sql.Tx) error {
		for _, record := range batch.Upserts {
			if upsertErr := upsertSubscription(ctx, tx, record, &batch.SessionID, batch.FetchedAt); upsertErr != nil {
				return upsertErr
			}
		}

		for _, record := range batch.Removals {
			if removeErr := upsertSubscription(ctx, tx, record, nil, batch.FetchedAt); removeErr != nil {
				return removeErr
			}
		}

		result, execErr := tx.ExecContext(ctx, setLastSubscriptionFetch, batch.FetchedAt, batch.SessionID)
		if execErr != nil {
			return fmt.Errorf("failed to advance subscription watermark: %w", execErr)
		}

		rowsAffected, rowsErr := result.RowsAffected()
		if rowsErr != nil {
			return fmt.Errorf("failed to get rows affected after watermark advance: %w", rowsErr)
		}
		// ряды без отметки не коммитим: иначе дельта применится, а окно
		// следующей выборки её не покроет
		if rowsAffected == 0 {
			return fmt.Errorf("%w (session_id=%s)", ErrSessionNotFound, batch.SessionID)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "subscriptionRepository.ApplyBatch").
			Str("session_id", batch.SessionID).
			Int("upserts", len(batch.Upserts)).
			Int("removals", len(batch.Removals)).
			Msg("failed to apply subscription batch")
		return fmt.Errorf("failed to apply subscription batch: %w", err)
	}

	return nil
}

// upsertSubscription writes one record inside the batch transaction. A nil
// sessionID stores the row without an owner, which is how removals survive
// as plain unowned rows.
func upsertSubscription(ctx context.Context, tx *sql.Tx, record models.SubscriptionRecord, sessionID *string, now time.Time) error {
	query, args, err := buildUpsertSubscriptionQuery(record, sessionID, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert subscription (rid=%s): %w", record.RoomID, err)
	}

	return nil
}

// ApplyRoomBatch copies room-level fields onto existing subscription rows and
// reports how many rows matched. Rooms without a matching row are ignored:
// the rooms feed enriches subscriptions, it never creates them.
func (s *subscriptionRepository) ApplyRoomBatch(ctx context.Context, batch models.RoomBatch) (int, error) {
	log := logger.FromContext(ctx)

	var matched int
	err := s.WithTransaction(ctx, func(tx *sql.Tx) error {
		matched = 0 // the transaction may run a second time

		for _, room := range batch.Rooms {
			if !room.HasUpdates() {
				continue
			}

			query, args, buildErr := buildEnrichRoomQuery(room)
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}

			result, execErr := tx.ExecContext(ctx, query, args...)
			if execErr != nil {
				return fmt.Errorf("failed to enrich subscription (rid=%s): %w", room.RoomID, execErr)
			}

			rowsAffected, rowsErr := result.RowsAffected()
			if rowsErr != nil {
				return fmt.Errorf("failed to get rows affected (rid=%s): %w", room.RoomID, rowsErr)
			}
			if rowsAffected > 0 {
				matched++
			}
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "subscriptionRepository.ApplyRoomBatch").
			Int("rooms", len(batch.Rooms)).
			Msg("failed to apply room batch")
		return 0, fmt.Errorf("failed to apply room batch: %w", err)
	}

	return matched, nil
}

func (s *subscriptionRepository) GetSubscription(ctx context.Context, roomID string) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	var item models.Subscription
	err := s.DB.QueryRowContext(ctx, getSubscription, roomID).Scan(
		&item.RoomID,
		&item.SessionID,
		&item.Name,
		&item.FullName,
		&item.Type,
		&item.Unread,
		&item.Alert,
		&item.Open,
		&item.ReadOnly,
		&item.Topic,
		&item.Announcement,
		&item.Description,
		&item.LastSeen,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Subscription{}, fmt.Errorf("%w (rid=%s)", ErrSubscriptionNotFound, roomID)
	}
	if err != nil {
		log.Err(err).
			Str("func", "subscriptionRepository.GetSubscription").
			Str("rid", roomID).
			Msg("failed to query subscription")
		return models.Subscription{}, fmt.Errorf("failed to query subscription (rid=%s): %w", roomID, err)
	}

	return item, nil
}

func (s *subscriptionRepository) GetOwnedSubscriptions(ctx context.Context, sessionID string) ([]models.Subscription, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getOwnedSubscriptions, sessionID)
	if err != nil {
		log.Err(err).
			Str("func", "subscriptionRepository.GetOwnedSubscriptions").
			Str("session_id", sessionID).
			Msg("failed to execute query for owned subscriptions")
		return nil, fmt.Errorf("failed to query owned subscriptions: %w", err)
	}
	defer rows.Close()

	var items []models.Subscription

	for rows.Next() {
		var item models.Subscription

		scanErr := rows.Scan(
			&item.RoomID,
			&item.SessionID,
			&item.Name,
			&item.FullName,
			&item.Type,
			&item.Unread,
			&item.Alert,
			&item.Open,
			&item.ReadOnly,
			&item.Topic,
			&item.Announcement,
			&item.Description,
			&item.LastSeen,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "subscriptionRepository.GetOwnedSubscriptions").
				Str("session_id", sessionID).
				Msg("failed to scan subscription row")
			return nil, fmt.Errorf("failed to scan subscription row: %w", scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "subscriptionRepository.GetOwnedSubscriptions").
			Str("session_id", sessionID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating subscription rows: %w", rowsErr)
	}

	return items, nil
}

func (s *subscriptionRepository) ClearUnread(ctx context.Context, roomID string) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, clearUnread, roomID)
	if err != nil {
		log.Err(err).
			Str("func", "subscriptionRepository.ClearUnread").
			Str("rid", roomID).
			Msg("failed to execute unread reset")
		return fmt.Errorf("failed to clear unread (rid=%s): %w", roomID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "subscriptionRepository.ClearUnread").
			Str("rid", roomID).
			Msg("failed to get rows affected after unread reset")
		return fmt.Errorf("failed to get rows affected (rid=%s): %w", roomID, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "subscriptionRepository.ClearUnread").
			Str("rid", roomID).
			Msg("no rows affected during unread reset: subscription not found")
		return fmt.Errorf("%w (rid=%s)", ErrSubscriptionNotFound, roomID)
	}

	return nil
}
