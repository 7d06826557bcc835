package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SubscriptionRepository is the local store of subscription rows.
type SubscriptionRepository interface {
	// ApplyBatch merges one subscription delta in a single transaction:
	// upserts link rows to the batch session, removals clear the link, and
	// the session watermark advances to the batch fetch time. Either the
	// whole batch lands or none of it does.
	ApplyBatch(ctx context.Context, batch models.SubscriptionBatch) error

	// ApplyRoomBatch enriches stored subscriptions with room metadata and
	// reports how many records matched an existing row. Rooms never create
	// rows.
	ApplyRoomBatch(ctx context.Context, batch models.RoomBatch) (int, error)

	// GetSubscription returns one row by rid or [ErrSubscriptionNotFound].
	GetSubscription(ctx context.Context, roomID string) (models.Subscription, error)

	// GetOwnedSubscriptions returns the rows linked to the given session,
	// ordered by name.
	GetOwnedSubscriptions(ctx context.Context, sessionID string) ([]models.Subscription, error)

	// ClearUnread zeroes the unread counter and alert flag of one row.
	ClearUnread(ctx context.Context, roomID string) error
}

// SessionRepository is the local store of session state.
type SessionRepository interface {
	// CurrentSession returns the most recently created session or
	// [ErrSessionNotFound].
	CurrentSession(ctx context.Context) (models.Session, error)

	// SaveSession persists a session, replacing any stored state under the
	// same identifier.
	SaveSession(ctx context.Context, session models.Session) error

	// SetLastSubscriptionFetch moves the subscriptions watermark of one
	// session.
	SetLastSubscriptionFetch(ctx context.Context, sessionID string, fetchedAt time.Time) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
