// Package primaryhandler implements the primary-to-worker RPC surface:
// serving synchronize, fetch_batches, and delete_batches to the local
// primary only. Resolving the synchronize target's committee entry returns
// an Internal error on a miss rather than panicking.
package primaryhandler

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/dagconsensus/worker/internal/batchtypes"
	"github.com/dagconsensus/worker/internal/committee"
	"github.com/dagconsensus/worker/internal/fetcher"
	"github.com/dagconsensus/worker/internal/log"
	"github.com/dagconsensus/worker/internal/metrics"
	"github.com/dagconsensus/worker/internal/netreg"
	"github.com/dagconsensus/worker/internal/peerclient"
	"github.com/dagconsensus/worker/internal/rpcerr"
	"github.com/dagconsensus/worker/internal/store"
	"github.com/dagconsensus/worker/internal/transport"
	"github.com/dagconsensus/worker/internal/validator"
)

// PeerBatchRequester is the one Peer Client capability synchronize needs:
// issuing a single bulk RequestBatches RPC to a resolved peer.
type PeerBatchRequester interface {
	RequestBatches(ctx context.Context, digests []batchtypes.BatchDigest) ([]*batchtypes.Batch, bool, error)
}

// Config holds the Primary Handler's RPC tunables.
type Config struct {
	// RequestBatchTimeout bounds the outbound RequestBatches RPC
	// synchronize issues.
	RequestBatchTimeout time.Duration

	// RequestBatchRetryNodes is not read by this handler; retry is a
	// higher layer's concern. cmd/worker passes the same configured value
	// to internal/fetcher.WorkerFanout's RetryNodes.
	RequestBatchRetryNodes int
}

// Handler implements transport.PrimaryService.
type Handler struct {
	AuthorityID committee.AuthorityIdentifier
	WorkerID    committee.WorkerId

	Committee   *committee.Committee
	WorkerCache *committee.WorkerCache

	Store     store.BatchStore
	Validator validator.Validator
	Logger    log.Logger

	Config Config

	// Network is the outbound RPC network handle. A nil Network signals
	// the handler was constructed in local-only mode; Synchronize then
	// fails fast with BadRequest "unsupported via RPC".
	Network *netreg.Registry

	// Fetcher is the external batch-fetcher collaborator. A nil Fetcher
	// means fetch_batches fails fast the same way.
	Fetcher fetcher.Fetcher

	// newPeerClient builds a PeerBatchRequester over a live connection.
	// Overridable for tests; defaults to peerclient.New.
	newPeerClient func(conn *grpc.ClientConn) PeerBatchRequester
}

var _ transport.PrimaryService = (*Handler)(nil)

func (h *Handler) peerClient(conn *grpc.ClientConn) PeerBatchRequester {
	if h.newPeerClient != nil {
		return h.newPeerClient(conn)
	}
	return peerclient.New(conn)
}

// Synchronize pulls the given digests from the primary's chosen target
// node for whichever ones this worker doesn't already have stored.
func (h *Handler) Synchronize(ctx context.Context, req *transport.SynchronizeRequest) (*transport.SynchronizeResponse, error) {
	if h.Network == nil {
		return nil, rpcerr.BadRequestf("synchronize() is unsupported via RPC interface, please call via local worker handler instead")
	}

	metrics.SyncAttempts.Inc()
	start := time.Now()
	succeeded := false
	defer func() {
		metrics.SyncLatency.Observe(time.Since(start).Seconds())
		if !succeeded {
			metrics.SyncFailures.Inc()
		}
	}()

	missing := make(map[batchtypes.BatchDigest]struct{}, len(req.Digests))
	for _, d := range req.Digests {
		_, ok, err := h.Store.Get(d)
		if err != nil {
			return nil, rpcerr.Wrap("failed to read from batch store", err)
		}
		if !ok {
			missing[d] = struct{}{}
		}
	}
	if len(missing) == 0 {
		succeeded = true
		return &transport.SynchronizeResponse{Ok: true}, nil
	}

	authority, err := h.Committee.Authority(req.Target)
	if err != nil {
		return nil, rpcerr.Wrap("the primary asked worker to sync with an unknown node", err)
	}
	workerInfo, err := h.WorkerCache.Worker(authority.ProtocolKey, h.WorkerID)
	if err != nil {
		return nil, rpcerr.Wrap("the primary asked worker to sync with an unknown node", err)
	}
	conn, ok := h.Network.Peer(workerInfo.Name)
	if !ok {
		return nil, rpcerr.Internalf("not connected with worker peer %s", workerInfo.Name)
	}

	missingList := make([]batchtypes.BatchDigest, 0, len(missing))
	for d := range missing {
		missingList = append(missingList, d)
	}

	rpcCtx := ctx
	if h.Config.RequestBatchTimeout > 0 {
		var cancel context.CancelFunc
		rpcCtx, cancel = context.WithTimeout(ctx, h.Config.RequestBatchTimeout)
		defer cancel()
	}

	h.Logger.Debugf("sending RequestBatches to %s for %d missing digests", workerInfo.Name, len(missingList))
	batches, _, err := h.peerClient(conn).RequestBatches(rpcCtx, missingList)
	if err != nil {
		// Network/timeout errors from the outbound RPC propagate
		// unchanged.
		return nil, err
	}

	for _, b := range batches {
		if !req.IsCertified {
			if err := h.Validator.ValidateBatch(ctx, b); err != nil {
				return nil, rpcerr.BadRequestf("invalid batch: %v", err)
			}
		}
		digest := b.Digest()
		if _, stillMissing := missing[digest]; !stillMissing {
			// Defensive against a malicious or confused peer: ignore
			// batches we didn't ask for.
			continue
		}
		if err := h.Store.Insert(digest, b); err != nil {
			return nil, rpcerr.Wrap("failed to write to batch store", err)
		}
		delete(missing, digest)
	}

	if len(missing) == 0 {
		succeeded = true
		return &transport.SynchronizeResponse{Ok: true}, nil
	}
	return nil, rpcerr.Internalf("failed to synchronize batches!")
}

// FetchBatches delegates to the configured Fetcher to retrieve payloads
// for the given digests from any of the known workers.
func (h *Handler) FetchBatches(ctx context.Context, req *transport.FetchBatchesRequest) (*transport.FetchBatchesResponse, error) {
	if h.Fetcher == nil {
		return nil, rpcerr.BadRequestf("fetch_batches() is unsupported via RPC interface, please call via local worker handler instead")
	}
	batches, err := h.Fetcher.Fetch(ctx, req.Digests, req.KnownWorkers)
	if err != nil {
		return nil, rpcerr.Wrap("batch fetcher failed", err)
	}
	return &transport.FetchBatchesResponse{Batches: batches}, nil
}

// DeleteBatches garbage-collects the given digests from the store.
func (h *Handler) DeleteBatches(_ context.Context, req *transport.DeleteBatchesRequest) (*transport.DeleteBatchesResponse, error) {
	for _, d := range req.Digests {
		if err := h.Store.Remove(d); err != nil {
			return nil, rpcerr.Wrap("failed to remove from batch store", err)
		}
	}
	return &transport.DeleteBatchesResponse{Ok: true}, nil
}
