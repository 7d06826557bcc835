// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context-aware helpers used throughout the go-chat-sync application.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Warn,
// Err, ...) is available directly. Code passes *Logger by pointer and picks
// up operation-scoped loggers via FromContext.
package logger

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog.Logger so helper methods can be added without
// touching the upstream type.
type Logger struct {
	zerolog.Logger
}

// configureGlobalFormat applies the process-wide zerolog settings shared by
// all constructors: Debug level and a "func" caller field carrying the
// fully-qualified function name instead of file:line.
func configureGlobalFormat() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a JSON logger on os.Stdout for the given role label
// (e.g. "sync-client", "worker"). Every entry carries the role, a timestamp
// and the calling function.
func NewLogger(role string) *Logger {
	configureGlobalFormat()

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger constructs the logger for the headless client process.
// Entries go to a "logs" file next to the executable so they do not mix with
// the process's own stdout; when the file cannot be opened the logger falls
// back to os.Stdout.
func NewClientLogger(role string) *Logger {
	configureGlobalFormat()

	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logFile = os.Stdout
	}

	logger := zerolog.New(logFile).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver; the child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the zerolog.Logger attached to ctx (zerolog's log.Ctx
// convention) as a *Logger. With nothing attached zerolog hands back its
// global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
