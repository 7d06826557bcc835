package service

import (
	"context"

	"github.com/MKhiriev/go-chat-sync/internal/store"
)

// localReadStateService advances read state directly in the local store. It
// backs AcknowledgeRead on servers that cannot acknowledge reads themselves.
type localReadStateService struct {
	subscriptions store.SubscriptionRepository
}

func NewLocalReadStateService(subscriptions store.SubscriptionRepository) ReadStateService {
	return &localReadStateService{subscriptions: subscriptions}
}

// MarkRead implements [ReadStateService].
func (r *localReadStateService) MarkRead(ctx context.Context, roomID string) error {
	return r.subscriptions.ClearUnread(ctx, roomID)
}
