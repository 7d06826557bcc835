// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatEnvKeys перечисляет все переменные окружения, которые читает parseEnv.
var chatEnvKeys = []string{
	"CONFIG",
	"APP_LOGIN",
	"APP_PASSWORD",
	"APP_VERSION",
	"ADAPTER_ADDRESS",
	"ADAPTER_REALTIME_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",
	"STORAGE_DB_DATABASE_URI",
	"STORAGE_DB_ENGINE",
	"WORKERS_SYNC_INTERVAL",
}

// clearEnvVars снимает все переменные конфигурации, чтобы окружение процесса
// не протекало в тест.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range chatEnvKeys {
		require.NoError(t, os.Unsetenv(k))
	}
}

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_FullEnvironment(t *testing.T) {
	setEnv(t, map[string]string{
		"CONFIG":                   "/etc/chat-sync/config.json",
		"APP_LOGIN":                "carol",
		"APP_PASSWORD":             "hunter2",
		"APP_VERSION":              "0.4.0",
		"ADAPTER_ADDRESS":          "chat.internal:8443",
		"ADAPTER_REALTIME_ADDRESS": "wss://chat.internal/websocket",
		"ADAPTER_REQUEST_TIMEOUT":  "45s",
		"STORAGE_DB_DATABASE_URI":  "file:chat.db",
		"STORAGE_DB_ENGINE":        "sqlite3",
		"WORKERS_SYNC_INTERVAL":    "90s",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/etc/chat-sync/config.json", cfg.JSONFilePath)
	assert.Equal(t, "carol", cfg.App.Login)
	assert.Equal(t, "hunter2", cfg.App.Password)
	assert.Equal(t, "0.4.0", cfg.App.Version)
	assert.Equal(t, "chat.internal:8443", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "wss://chat.internal/websocket", cfg.Adapter.RealtimeAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file:chat.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Engine)
	assert.Equal(t, 90*time.Second, cfg.Workers.SyncInterval)
}

func TestParseEnv_SubsetLeavesRestZero(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_LOGIN":       "alice",
		"ADAPTER_ADDRESS": "localhost:3000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "alice", cfg.App.Login)
	assert.Equal(t, "localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.App.Password)
	assert.Empty(t, cfg.Adapter.RealtimeAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_DSNOnly(t *testing.T) {
	// вложенные префиксы: STORAGE_ + DB_
	setEnv(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://chat@localhost/chatdb",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "postgres://chat@localhost/chatdb", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.DB.Engine)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_BadDuration(t *testing.T) {
	setEnv(t, map[string]string{"WORKERS_SYNC_INTERVAL": "soon"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env config")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"30s", 30 * time.Second},
		{"15m", 15 * time.Minute},
		{"1h", time.Hour},
		{"1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			setEnv(t, map[string]string{"WORKERS_SYNC_INTERVAL": tt.raw})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.want, cfg.Workers.SyncInterval)
		})
	}
}
