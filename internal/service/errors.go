package service

import "errors"

var (
	ErrRealtimeUnavailable = errors.New("no realtime channel configured")
	ErrSessionExpired      = errors.New("session is expired")
)
