package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/adapter"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/internal/store"
	"github.com/MKhiriev/go-chat-sync/models"
)

// roomsBackdate is how far the subscriptions watermark moves back before a
// room merge, so the next subscription fetch re-covers the room window.
const roomsBackdate = time.Second

type clientSyncService struct {
	storages  *store.ClientStorages
	adapter   adapter.ServerAdapter
	caller    realtime.MethodCaller
	readState ReadStateService
	logger    *logger.Logger

	now func() time.Time
}

// NewClientSyncService wires the sync orchestrator. caller may be nil when no
// realtime endpoint is configured; the legacy fallback then reports
// [ErrRealtimeUnavailable].
func NewClientSyncService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, caller realtime.MethodCaller, readState ReadStateService, log *logger.Logger) ClientSyncService {
	return &clientSyncService{
		storages:  storages,
		adapter:   serverAdapter,
		caller:    caller,
		readState: readState,
		logger:    log,
		now:       time.Now,
	}
}

// SyncSubscriptions implements [ClientSyncService].
func (s *clientSyncService) SyncSubscriptions(ctx context.Context, since *time.Time) (models.SyncResult, error) {
	session, err := s.storages.SessionRepository.CurrentSession(ctx)
	if err != nil {
		return failed(models.ProtocolAPI), fmt.Errorf("load current session: %w", err)
	}
	if since == nil {
		since = session.LastSubscriptionFetch
	}

	// The watermark candidate is taken before the request goes out, so
	// changes racing the fetch stay inside the next delta window.
	fetchedAt := s.now()

	resp, err := s.adapter.GetSubscriptions(ctx, since)
	if errors.Is(err, adapter.ErrVersionUnsupported) {
		s.logger.Info().Str("func", "clientSyncService.SyncSubscriptions").Msg("typed api unsupported, falling back to realtime channel")
		return s.syncSubscriptionsLegacy(ctx, session, since)
	}
	if err != nil {
		return failed(models.ProtocolAPI), fmt.Errorf("fetch subscriptions: %w", err)
	}
	if !resp.Success {
		return models.SyncResult{Outcome: models.SyncSkipped, Protocol: models.ProtocolAPI}, nil
	}

	batch := buildSubscriptionBatch(session.ID, fetchedAt, resp.List, resp.Update, resp.Remove)
	return s.commitSubscriptionBatch(ctx, models.ProtocolAPI, batch)
}

// SyncRooms implements [ClientSyncService]. A missing session is tolerated:
// the merge still runs, only the watermark backdate is skipped.
func (s *clientSyncService) SyncRooms(ctx context.Context, since *time.Time) (models.SyncResult, error) {
	session, err := s.storages.SessionRepository.CurrentSession(ctx)
	hasSession := err == nil
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		return failed(models.ProtocolAPI), fmt.Errorf("load current session: %w", err)
	}

	resp, err := s.adapter.GetRooms(ctx, since)
	if errors.Is(err, adapter.ErrVersionUnsupported) {
		s.logger.Info().Str("func", "clientSyncService.SyncRooms").Msg("typed api unsupported, falling back to realtime channel")
		return s.syncRoomsLegacy(ctx, session, hasSession, since)
	}
	if err != nil {
		return failed(models.ProtocolAPI), fmt.Errorf("fetch rooms: %w", err)
	}
	if !resp.Success {
		return models.SyncResult{Outcome: models.SyncSkipped, Protocol: models.ProtocolAPI}, nil
	}

	batch := buildRoomBatch(resp.List, resp.Update)
	return s.commitRoomBatch(ctx, models.ProtocolAPI, session, hasSession, batch)
}

// AcknowledgeRead implements [ClientSyncService].
func (s *clientSyncService) AcknowledgeRead(ctx context.Context, roomID string) error {
	err := s.adapter.MarkRead(ctx, roomID)
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrVersionUnsupported) {
		if fallbackErr := s.readState.MarkRead(ctx, roomID); fallbackErr != nil {
			return fmt.Errorf("legacy read fallback (rid=%s): %w", roomID, fallbackErr)
		}
		return nil
	}

	s.logger.Warn().Err(err).Str("func", "clientSyncService.AcknowledgeRead").Str("rid", roomID).Msg("read acknowledgment failed")
	return fmt.Errorf("acknowledge read (rid=%s): %w", roomID, err)
}

// OwnedSubscriptions implements [ClientSyncService].
func (s *clientSyncService) Subscription(ctx context.Context, roomID string) (models.Subscription, error) {
	return s.storages.SubscriptionRepository.GetSubscription(ctx, roomID)
}

func (s *clientSyncService) OwnedSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	session, err := s.storages.SessionRepository.CurrentSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("load current session: %w", err)
	}

	return s.storages.SubscriptionRepository.GetOwnedSubscriptions(ctx, session.ID)
}

// commitSubscriptionBatch applies the batch and shapes the applied result.
// An empty batch still goes through ApplyBatch: the watermark advances even
// when the delta carried nothing.
func (s *clientSyncService) commitSubscriptionBatch(ctx context.Context, protocol models.SyncProtocol, batch models.SubscriptionBatch) (models.SyncResult, error) {
	if err := s.storages.SubscriptionRepository.ApplyBatch(ctx, batch); err != nil {
		return failed(protocol), fmt.Errorf("apply subscription batch: %w", err)
	}

	result := models.SyncResult{
		Outcome:  models.SyncApplied,
		Protocol: protocol,
		Upserted: len(batch.Upserts),
		Removed:  len(batch.Removals),
		Dropped:  batch.Dropped,
	}
	s.logger.Info().
		Str("func", "clientSyncService.commitSubscriptionBatch").
		Str("protocol", string(protocol)).
		Int("upserted", result.Upserted).
		Int("removed", result.Removed).
		Int("dropped", result.Dropped).
		Msg("subscription sync applied")

	return result, nil
}

// commitRoomBatch backdates the watermark in its own transaction, then
// applies the enrichment. Skipping the backdate when no session exists is the
// only session dependence of the rooms path.
func (s *clientSyncService) commitRoomBatch(ctx context.Context, protocol models.SyncProtocol, session models.Session, hasSession bool, batch models.RoomBatch) (models.SyncResult, error) {
	if hasSession {
		backdated := s.now().Add(-roomsBackdate)
		if err := s.storages.SessionRepository.SetLastSubscriptionFetch(ctx, session.ID, backdated); err != nil {
			return failed(protocol), fmt.Errorf("backdate subscription watermark: %w", err)
		}
	}

	matched, err := s.storages.SubscriptionRepository.ApplyRoomBatch(ctx, batch)
	if err != nil {
		return failed(protocol), fmt.Errorf("apply room batch: %w", err)
	}

	result := models.SyncResult{
		Outcome:  models.SyncApplied,
		Protocol: protocol,
		Matched:  matched,
		Dropped:  batch.Dropped,
	}
	s.logger.Info().
		Str("func", "clientSyncService.commitRoomBatch").
		Str("protocol", string(protocol)).
		Int("matched", result.Matched).
		Int("dropped", result.Dropped).
		Msg("room sync applied")

	return result, nil
}

func failed(protocol models.SyncProtocol) models.SyncResult {
	return models.SyncResult{Outcome: models.SyncFailed, Protocol: protocol}
}
