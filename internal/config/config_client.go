package config

import (
	"fmt"
	"time"
)

// ClientApp carries the account identity the sync client signs in with and
// the client version reported to the chat server.
type ClientApp struct {
	// Login is the account name used to establish a session.
	Login string
	// Password is the account password paired with Login.
	Password string
	// Version is the semantic version string of the running client.
	Version string
}

// ClientAdapter groups the chat-server endpoints and timeouts the transport
// layer needs.
type ClientAdapter struct {
	// HTTPAddress is the typed REST API endpoint of the chat server.
	HTTPAddress string
	// RealtimeAddress is the websocket URL of the legacy method-call channel.
	// Empty disables the legacy fallback.
	RealtimeAddress string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
}

// ClientDB holds the connection settings of the local cache database.
type ClientDB struct {
	// DSN is the SQLite or PostgreSQL connection string.
	DSN string
	// Engine selects the database driver, [EngineSQLite] when unset.
	Engine string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers sets the cadence of the background sync job.
type ClientWorkers struct {
	SyncInterval time.Duration
}

// ClientConfig is the runtime view of the merged configuration consumed by
// the chat sync client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig assembles the client view from the merged structured
// configuration, fills in the engine default and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("get structured config: %w", err)
	}

	engine := cfg.Storage.DB.Engine
	if engine == "" {
		engine = EngineSQLite
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Login:    cfg.App.Login,
			Password: cfg.App.Password,
			Version:  cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			RealtimeAddress: cfg.Adapter.RealtimeAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:    cfg.Storage.DB.DSN,
				Engine: engine,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
