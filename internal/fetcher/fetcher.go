// Package fetcher defines the BatchFetcher external collaborator and one
// concrete implementation, WorkerFanout.
package fetcher

import (
	"context"

	"github.com/dagconsensus/worker/internal/batchtypes"
	"github.com/dagconsensus/worker/internal/committee"
)

// Fetcher retrieves payloads for a set of digests from an arbitrary subset
// of workers. Partial results are acceptable; a Fetcher is responsible for
// its own retries, peer selection, and caching.
type Fetcher interface {
	Fetch(ctx context.Context, digests []batchtypes.BatchDigest, knownWorkers []committee.AuthorityIdentifier) (map[batchtypes.BatchDigest]*batchtypes.Batch, error)
}
