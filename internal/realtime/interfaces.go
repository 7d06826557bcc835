// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realtime implements the legacy RPC-over-websocket transport spoken
// by chat servers that predate the typed REST API.
//
// The protocol is a thin message-passing scheme: the client opens a websocket,
// announces itself with a "connect" message, and then invokes named server
// methods ("subscriptions/get", "rooms/get") that are answered asynchronously
// by "result" messages correlated through a per-call id. Responses are loosely
// typed, so results are handed to callers as [gjson.Result] values.
package realtime

import (
	"context"

	"github.com/tidwall/gjson"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/method_caller_mock.go -package=mock

// MethodCaller invokes a named server method over the persistent realtime
// connection and returns the raw result payload.
type MethodCaller interface {
	// Call sends one method invocation and blocks until the matching result
	// arrives, ctx is done, or the connection is torn down. Returns
	// [ErrMethodFailed] (wrapped) when the server answers with an error
	// payload and [ErrChannelClosed] (wrapped) when the connection is lost
	// while the call is in flight.
	Call(ctx context.Context, method string, params ...any) (gjson.Result, error)
}
