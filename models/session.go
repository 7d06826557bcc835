package models

import "time"

// Session is the locally persisted authentication state of one login against
// one server. LastSubscriptionFetch is the subscriptions watermark: the next
// delta fetch asks only for changes after this moment.
type Session struct {
	// ID is the client-generated session identifier (UUID).
	ID string

	// UserID is the server-side user identifier extracted from the token.
	UserID string

	// Token is the bearer token sent with every authenticated request.
	Token string

	// ServerURL is the base URL the session was established against.
	ServerURL string

	// LastSubscriptionFetch is the subscriptions watermark. Nil means no
	// successful fetch happened yet and the next fetch is a full one.
	LastSubscriptionFetch *time.Time

	// ExpiresAt is the token expiry, when the server issued one.
	ExpiresAt *time.Time

	// CreatedAt is the moment the session was established.
	CreatedAt time.Time
}

// Expired reports whether the session token lifetime has passed.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}
