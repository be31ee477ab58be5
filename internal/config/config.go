// Package config defines the worker process's configuration: identity,
// store location, listen/dial addresses, and the Primary Handler's RPC
// tunables.
//
// Kept internal so the process entrypoint (cmd/worker) can grow new fields
// without that being a breaking change to anything outside this module.
package config

import "time"

// Config holds the values a worker process needs to start.
type Config struct {
	// Identity
	AuthorityID string
	WorkerID    uint32

	// Logging
	EnableDebugLogging bool

	// Storage
	StoreDir string

	// Transport
	ListenAddress  string // this worker's own RPC listen address
	PrimaryAddress string // local primary's RPC address (Primary Client target)
	MetricsAddress string // Prometheus /metrics listen address

	// Primary Handler tunables: the outbound RequestBatches RPC's deadline
	// and retry fan-out width.
	RequestBatchTimeout    time.Duration
	RequestBatchRetryNodes int

	// EnableNetwork/EnableFetcher gate whether the Primary Handler is
	// constructed with a live network handle / batch fetcher, or in
	// local-only mode: when false, the corresponding handler methods fail
	// fast with BadRequest rather than being wired to real collaborators.
	EnableNetwork bool
	EnableFetcher bool
}

// Default constructs a Config with conservative defaults. Identity and
// address fields have no sane default and must be set by the caller.
func Default() *Config {
	return &Config{
		EnableDebugLogging:     false,
		StoreDir:               defaultStoreDir,
		RequestBatchTimeout:    defaultRequestBatchTimeout,
		RequestBatchRetryNodes: defaultRequestBatchRetryNodes,
		EnableNetwork:          true,
		EnableFetcher:          true,
	}
}
