// This file centralizes default configuration constants. Keeping them
// separate makes it easy to review and adjust the worker's baseline
// behavior without touching code that depends on Config.
package config

import "time"

const (
	// defaultStoreDir is the on-disk directory for the LevelDB batch
	// store when the caller doesn't specify one.
	defaultStoreDir = "./data/worker-batches"

	// defaultRequestBatchTimeout is the deadline applied to the single
	// outbound RequestBatches RPC synchronize() issues.
	defaultRequestBatchTimeout = 5 * time.Second

	// defaultRequestBatchRetryNodes is the number of randomly selected
	// peers internal/fetcher.WorkerFanout queries per fetch.
	defaultRequestBatchRetryNodes = 3
)

// ApplyDefaults fills zero-valued fields of c with the package defaults.
// Default already sets every field handled here, but ApplyDefaults lets a caller who
// only overrides a few fields on an otherwise-zero Config still get sane
// values for the rest.
func ApplyDefaults(c *Config) {
	if c.StoreDir == "" {
		c.StoreDir = defaultStoreDir
	}
	if c.RequestBatchTimeout <= 0 {
		c.RequestBatchTimeout = defaultRequestBatchTimeout
	}
	if c.RequestBatchRetryNodes <= 0 {
		c.RequestBatchRetryNodes = defaultRequestBatchRetryNodes
	}
}
