package models

// SubscriptionsResponse is the typed payload of GET /api/v1/subscriptions.get.
// List carries the full subscription state of a fresh sync, Update created
// and changed subscriptions, Remove the ones revoked since the requested
// watermark.
type SubscriptionsResponse struct {
	Success bool                 `json:"success"`
	List    []SubscriptionRecord `json:"list"`
	Update  []SubscriptionRecord `json:"update"`
	Remove  []SubscriptionRecord `json:"remove"`
}

// RoomsResponse is the typed payload of GET /api/v1/rooms.get. Remove entries
// are accepted on the wire but ignored by the merge: rooms only enrich
// subscriptions, they never take anything away.
type RoomsResponse struct {
	Success bool         `json:"success"`
	List    []RoomRecord `json:"list"`
	Update  []RoomRecord `json:"update"`
	Remove  []RoomRecord `json:"remove"`
}

// ReadRequest is the body of POST /api/v1/subscriptions.read.
type ReadRequest struct {
	RoomID string `json:"rid"`
}

// ReadResponse is the typed payload of POST /api/v1/subscriptions.read.
type ReadResponse struct {
	Success bool `json:"success"`
}

// LoginRequest is the body of POST /api/v1/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
