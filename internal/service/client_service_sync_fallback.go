package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/models"
	"github.com/tidwall/gjson"
)

// syncSubscriptionsLegacy serves the subscriptions sync over the realtime
// channel after the typed API reported a version mismatch. The legacy path
// carries no retry of its own: any failure ends this sync attempt.
func (s *clientSyncService) syncSubscriptionsLegacy(ctx context.Context, session models.Session, since *time.Time) (models.SyncResult, error) {
	fetchedAt := s.now()

	result, err := s.callLegacy(ctx, realtime.MethodGetSubscriptions, since)
	if err != nil {
		return failed(models.ProtocolRealtime), err
	}

	list, update, remove := splitLegacySubscriptions(result)
	batch := buildSubscriptionBatch(session.ID, fetchedAt, list, update, remove)
	return s.commitSubscriptionBatch(ctx, models.ProtocolRealtime, batch)
}

// syncRoomsLegacy serves the rooms sync over the realtime channel.
func (s *clientSyncService) syncRoomsLegacy(ctx context.Context, session models.Session, hasSession bool, since *time.Time) (models.SyncResult, error) {
	result, err := s.callLegacy(ctx, realtime.MethodGetRooms, since)
	if err != nil {
		return failed(models.ProtocolRealtime), err
	}

	batch := buildRoomBatch(splitLegacyRooms(result), nil)
	return s.commitRoomBatch(ctx, models.ProtocolRealtime, session, hasSession, batch)
}

func (s *clientSyncService) callLegacy(ctx context.Context, method string, since *time.Time) (gjson.Result, error) {
	if s.caller == nil {
		return gjson.Result{}, fmt.Errorf("call %s: %w", method, ErrRealtimeUnavailable)
	}

	var params []any
	if since != nil {
		params = append(params, realtime.NewDateParam(*since))
	}

	result, err := s.caller.Call(ctx, method, params...)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("legacy %s: %w", method, err)
	}
	return result, nil
}
