package models

import "time"

// Token carries the claims the client extracts from a server-issued bearer
// token. The client never verifies the signature: it only needs the subject
// for session bookkeeping and the expiry to know when a re-login is due.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature) exactly as received.
	SignedString string

	// UserID is the server-side user identifier from the "sub" claim.
	UserID string

	// ExpiresAt is the "exp" claim, when the server set one.
	ExpiresAt *time.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
