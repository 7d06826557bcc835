package realtime

import "errors"

var (
	ErrChannelClosed   = errors.New("realtime channel closed")
	ErrHandshakeFailed = errors.New("realtime handshake failed")
	ErrMethodFailed    = errors.New("realtime method call failed")
)
