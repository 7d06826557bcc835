// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Database engines the client can persist into. The engine name doubles as
// the database/sql driver name and the migration dialect.
const (
	EngineSQLite   = "sqlite3"
	EnginePostgres = "pgx"
)

// StructuredConfig mirrors every configuration source of the chat sync
// client: environment variables (via the caarlos0/env tags below),
// command-line flags and an optional JSON file. The zero value is a valid
// empty source; merging fills the gaps field by field.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath names the JSON config file to merge in last. Set through
	// CONFIG or the -c / -config flag, never by the file itself.
	JSONFilePath string `env:"CONFIG"`
}

// App identifies the account and the build of the running client.
type App struct {
	Login    string `env:"LOGIN"`    // APP_LOGIN, account name for sign-in
	Password string `env:"PASSWORD"` // APP_PASSWORD
	Version  string `env:"VERSION"`  // APP_VERSION, reported at startup
}

// Storage wraps the local database settings. The nesting keeps the
// STORAGE_DB_ env prefix stable if other storage kinds appear later.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB selects the local cache database. DSN is a file path for SQLite
// ("chat-sync.db") or a postgres URI; Engine picks the driver,
// [EngineSQLite] when left empty.
type DB struct {
	DSN    string `env:"DATABASE_URI"` // STORAGE_DB_DATABASE_URI
	Engine string `env:"ENGINE"`       // STORAGE_DB_ENGINE
}

// Adapter addresses the chat server. HTTPAddress takes "host:port" or a
// full base URL; RealtimeAddress is the websocket URL of the method-call
// channel and may stay empty to disable it; RequestTimeout caps a single
// outbound request.
type Adapter struct {
	HTTPAddress     string        `env:"ADDRESS"`
	RealtimeAddress string        `env:"REALTIME_ADDRESS"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers tunes the background jobs. SyncInterval is the period of the
// subscription and room refresh.
type Workers struct {
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig assembles the configuration from every source and
// validates the merge. Earlier sources win: environment first, then flags,
// then the JSON file whose path the first two name.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().withEnv().withFlags().withJSON().build()
}
