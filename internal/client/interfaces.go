// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the sync client runtime: Run blocks
// from session bootstrap until shutdown and reports the terminal error.
type Client interface {
	Run() error
}
