// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the chat server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) speaking the typed /api/v1 endpoints; the legacy
// websocket RPC transport lives in the realtime package and is selected by the
// service layer when a server rejects the typed endpoints.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrVersionUnsupported] for 404/426/501, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the chat
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login or when a persisted session is restored.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// BaseURL returns the normalised server address all requests of this
	// adapter are issued against.
	BaseURL() string

	// Login authenticates the user with the server. On success it extracts
	// the bearer token from the Authorization response header, stores it via
	// SetToken and returns the parsed token claims. Returns an error if the
	// request fails, the server responds with a non-2xx status, or the token
	// cannot be parsed.
	Login(ctx context.Context, login, password string) (models.Token, error)

	// GetSubscriptions fetches the subscription delta accumulated on the
	// server since the given watermark. A nil since requests the full set.
	// Transient failures are retried a bounded number of times; a server
	// without the typed endpoint yields [ErrVersionUnsupported] (wrapped)
	// without any retry.
	GetSubscriptions(ctx context.Context, since *time.Time) (models.SubscriptionsResponse, error)

	// GetRooms fetches the room delta accumulated on the server since the
	// given watermark. Same retry and version semantics as GetSubscriptions.
	GetRooms(ctx context.Context, since *time.Time) (models.RoomsResponse, error)

	// MarkRead acknowledges the given room as read on the server. Returns
	// [ErrVersionUnsupported] (wrapped) if the server predates the typed
	// endpoint, or another error if the request fails.
	MarkRead(ctx context.Context, roomID string) error
}
