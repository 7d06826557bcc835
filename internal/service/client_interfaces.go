package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-sync/models"
)


// ClientSyncService defines the client-side contract for reconciling the
// local store with the server's view of the user's subscriptions and rooms.
// Implementations own the protocol choice: they fetch over the typed HTTP API
// first and fall back to the legacy realtime channel when the server rejects
// the typed endpoints.
type ClientSyncService interface {
	// SyncSubscriptions fetches the subscription delta accumulated since the
	// given watermark and merges it into the local store atomically together
	// with the watermark advance. A nil since falls back to the persisted
	// session watermark, and a nil watermark requests the full set.
	// The returned result always carries a terminal outcome; when the outcome
	// is [models.SyncFailed] the error return carries the failure kind.
	SyncSubscriptions(ctx context.Context, since *time.Time) (models.SyncResult, error)

	// SyncRooms fetches the room delta accumulated since the given watermark
	// and enriches the stored subscriptions with it. Rooms never create
	// subscription rows. Before the merge the session watermark is backdated
	// by one second so the next subscription fetch re-reads the window the
	// room delta covered.
	SyncRooms(ctx context.Context, since *time.Time) (models.SyncResult, error)

	// AcknowledgeRead marks the room as read on the server, fire-and-forget.
	// Against a server without the typed endpoint the read state is advanced
	// locally instead. Other failures are logged and returned, but callers
	// are free to ignore them.
	AcknowledgeRead(ctx context.Context, roomID string) error

	// Subscription returns the locally stored row for one room, wrapping
	// [store.ErrSubscriptionNotFound] for rooms never synced.
	Subscription(ctx context.Context, roomID string) (models.Subscription, error)

	// OwnedSubscriptions returns the locally stored rows linked to the
	// current session, ordered by name.
	OwnedSubscriptions(ctx context.Context) ([]models.Subscription, error)
}

// ClientAuthService defines the client-side contract for obtaining and
// restoring the session the sync engine operates under.
type ClientAuthService interface {
	// EstablishSession logs in with the given credentials, persists the
	// resulting session locally and primes the server adapter with the
	// bearer token. Returns an error if the login or the local save fails.
	EstablishSession(ctx context.Context, login, password string) (models.Session, error)

	// RestoreSession loads the most recent persisted session and primes the
	// server adapter with its token. Returns [store.ErrSessionNotFound]
	// (wrapped) when no session was ever established and [ErrSessionExpired]
	// when the stored token lifetime has passed.
	RestoreSession(ctx context.Context) (models.Session, error)
}

// ReadStateService advances the local read state of one room. It backs the
// legacy fallback of AcknowledgeRead on servers without the typed endpoint.
type ReadStateService interface {
	// MarkRead zeroes the unread counter and alert flag of the room's
	// stored subscription.
	MarkRead(ctx context.Context, roomID string) error
}

// ClientSyncJob defines the contract for a background worker that
// periodically runs a full subscription and room sync.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
