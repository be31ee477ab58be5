package fetcher

import (
	"context"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/dagconsensus/worker/internal/batchtypes"
	"github.com/dagconsensus/worker/internal/committee"
	"github.com/dagconsensus/worker/internal/log"
	"github.com/dagconsensus/worker/internal/netreg"
	"github.com/dagconsensus/worker/internal/peerclient"
)

// PeerBatchRequester is the one Peer Client capability a fanout fetch
// needs.
type PeerBatchRequester interface {
	RequestBatches(ctx context.Context, digests []batchtypes.BatchDigest) ([]*batchtypes.Batch, bool, error)
}

// WorkerFanout implements Fetcher by querying each candidate worker over
// its already-registered connection, concurrently, and merging whatever partial results come back, matching
// the contract that a fetcher handles its own retries, peer selection, and
// caching. Caching is intentionally not added: nothing in this repo needs
// cross-call batch caching beyond the Batch Store itself.
type WorkerFanout struct {
	Committee    *committee.Committee
	WorkerCache  *committee.WorkerCache
	Network      *netreg.Registry
	SelfWorkerID committee.WorkerId

	// RetryNodes caps how many of the known workers are queried, chosen
	// at random, mirroring request_batch_retry_nodes: the number of
	// randomly selected peers to query on retry. Zero means query
	// every known worker.
	RetryNodes int

	Logger log.Logger

	newPeerClient func(conn *grpc.ClientConn) PeerBatchRequester
}

func (f *WorkerFanout) peerClient(conn *grpc.ClientConn) PeerBatchRequester {
	if f.newPeerClient != nil {
		return f.newPeerClient(conn)
	}
	return peerclient.New(conn)
}

// candidates returns the workers to query, randomly sampled down to
// RetryNodes if it is set and smaller than knownWorkers.
func (f *WorkerFanout) candidates(knownWorkers []committee.AuthorityIdentifier) []committee.AuthorityIdentifier {
	if f.RetryNodes <= 0 || len(knownWorkers) <= f.RetryNodes {
		return knownWorkers
	}
	shuffled := append([]committee.AuthorityIdentifier(nil), knownWorkers...)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:f.RetryNodes]
}

// Fetch implements Fetcher.
func (f *WorkerFanout) Fetch(ctx context.Context, digests []batchtypes.BatchDigest, knownWorkers []committee.AuthorityIdentifier) (map[batchtypes.BatchDigest]*batchtypes.Batch, error) {
	results := make(map[batchtypes.BatchDigest]*batchtypes.Batch, len(digests))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, authorityID := range f.candidates(knownWorkers) {
		authorityID := authorityID
		g.Go(func() error {
			batches, err := f.fetchFromWorker(gctx, authorityID, digests)
			if err != nil {
				f.Logger.Warnf("fetcher: worker %s unavailable: %v", authorityID, err)
				return nil // partial results are acceptable
			}
			mu.Lock()
			for _, b := range batches {
				results[b.Digest()] = b
			}
			mu.Unlock()
			return nil
		})
	}
	// The group's own error is always nil (every Go func swallows its
	// error into a log line), but Wait still joins every goroutine.
	_ = g.Wait()
	return results, nil
}

// fetchFromWorker resolves authorityID to a live connection and requests
// digests, with one bounded retry on transport error.
func (f *WorkerFanout) fetchFromWorker(ctx context.Context, authorityID committee.AuthorityIdentifier, digests []batchtypes.BatchDigest) ([]*batchtypes.Batch, error) {
	authority, err := f.Committee.Authority(authorityID)
	if err != nil {
		return nil, err
	}
	workerInfo, err := f.WorkerCache.Worker(authority.ProtocolKey, f.SelfWorkerID)
	if err != nil {
		return nil, err
	}
	conn, ok := f.Network.Peer(workerInfo.Name)
	if !ok {
		return nil, errNotConnected(workerInfo.Name)
	}

	client := f.peerClient(conn)
	batches, _, err := client.RequestBatches(ctx, digests)
	if err != nil {
		batches, _, err = client.RequestBatches(ctx, digests) // one bounded retry
	}
	return batches, err
}
