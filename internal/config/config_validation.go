// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate runs after the sources are merged. The structured form carries no
// invariants of its own; the checks live on the [ClientConfig] view the
// runtime consumes, so a partially-filled StructuredConfig is fine here.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// validate rejects configurations the client cannot start with. The local
// store must be durable, so in-memory DSNs are refused alongside empty ones.
func (cfg *ClientConfig) validate() error {
	db := cfg.Storage.DB
	switch {
	case db.DSN == "", strings.Contains(db.DSN, "memory"):
		return ErrInvalidStorageConfigs
	case db.Engine != EngineSQLite && db.Engine != EnginePostgres:
		return ErrInvalidStorageConfigs
	case cfg.Adapter.HTTPAddress == "", cfg.Adapter.RequestTimeout == 0:
		return ErrInvalidAdapterConfigs
	case cfg.Workers.SyncInterval == 0:
		return ErrInvalidWorkerConfigs
	case cfg.App.Login == "", cfg.App.Password == "":
		return ErrInvalidAppConfigs
	}

	return nil
}
