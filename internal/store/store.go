// Package store defines the BatchStore contract: a persistent mapping from
// BatchDigest to Batch. Absence is represented in-band ("no value"); the
// only errors a BatchStore returns are storage I/O failures.
package store

import "github.com/dagconsensus/worker/internal/batchtypes"

// BatchStore is the durable batch store the Peer and Primary Handlers share.
// Implementations must serialize concurrent writes to the same key
// internally; handlers perform no external locking around these calls.
type BatchStore interface {
	// Get returns the batch for d, or (nil, false) if absent. An error
	// indicates a storage I/O failure, never absence.
	Get(d batchtypes.BatchDigest) (*batchtypes.Batch, bool, error)

	// MultiGet returns one result per digest in ds, preserving input
	// order. A nil entry at index i means ds[i] is absent.
	MultiGet(ds []batchtypes.BatchDigest) ([]*batchtypes.Batch, error)

	// Insert stores b under d. Inserting the same (d, b) twice is a no-op
	// from the caller's perspective: content-addressed keys make repeated
	// inserts idempotent.
	Insert(d batchtypes.BatchDigest, b *batchtypes.Batch) error

	// Remove deletes d if present. Removing an absent key is not an error.
	Remove(d batchtypes.BatchDigest) error

	// Close releases any resources held by the store.
	Close() error
}
