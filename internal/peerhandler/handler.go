// Package peerhandler implements the worker-to-worker RPC surface: serving
// report_batch, request_batch, and request_batches to remote peer workers.
package peerhandler

import (
	"context"

	"github.com/dagconsensus/worker/internal/batchtypes"
	"github.com/dagconsensus/worker/internal/committee"
	"github.com/dagconsensus/worker/internal/log"
	"github.com/dagconsensus/worker/internal/metrics"
	"github.com/dagconsensus/worker/internal/rpcerr"
	"github.com/dagconsensus/worker/internal/store"
	"github.com/dagconsensus/worker/internal/transport"
	"github.com/dagconsensus/worker/internal/validator"
)

// chunkSize bounds how many digests request_batches reads from the store in
// a single MultiGet call.
const chunkSize = 200

// responseBudgetBytes bounds the cumulative size of batches request_batches
// returns.
const responseBudgetBytes = 6_000_000

// PrimaryNotifier is the Primary Client capability report_batch needs: a
// fire-and-forget notification that a batch was accepted from a peer.
type PrimaryNotifier interface {
	ReportOthersBatch(ctx context.Context, digest batchtypes.BatchDigest, workerID committee.WorkerId) error
}

// Handler implements transport.WorkerService.
type Handler struct {
	WorkerID  committee.WorkerId
	Store     store.BatchStore
	Validator validator.Validator
	Primary   PrimaryNotifier
	Logger    log.Logger
}

var _ transport.WorkerService = (*Handler)(nil)

// ReportBatch validates, stores, and notifies the primary of a batch
// reported by a peer.
func (h *Handler) ReportBatch(ctx context.Context, req *transport.ReportBatchRequest) (*transport.ReportBatchResponse, error) {
	if err := h.Validator.ValidateBatch(ctx, req.Batch); err != nil {
		return nil, rpcerr.BadRequestf("invalid batch: %v", err)
	}

	digest := req.Batch.Digest()
	if err := h.Store.Insert(digest, req.Batch); err != nil {
		return nil, rpcerr.Wrap("failed to write to batch store", err)
	}

	if err := h.Primary.ReportOthersBatch(ctx, digest, h.WorkerID); err != nil {
		return nil, rpcerr.Wrap("failed to notify primary", err)
	}

	metrics.BatchesReported.Inc()
	return &transport.ReportBatchResponse{Ok: true}, nil
}

// RequestBatch returns the batch for a single digest if present.
//
// TODO: do some per-peer accounting here to prevent a bad actor from
// monopolizing this worker's resources with repeated requests.
func (h *Handler) RequestBatch(_ context.Context, req *transport.RequestBatchRequest) (*transport.RequestBatchResponse, error) {
	b, ok, err := h.Store.Get(req.Digest)
	if err != nil {
		return nil, rpcerr.Wrap("failed to read from batch store", err)
	}
	if ok {
		metrics.BatchesServed.Inc()
	}
	return &transport.RequestBatchResponse{Batch: b}, nil
}

// RequestBatches returns every stored batch for the given digests, within
// a fixed cumulative response size budget.
func (h *Handler) RequestBatches(_ context.Context, req *transport.RequestBatchesRequest) (*transport.RequestBatchesResponse, error) {
	var (
		batches            []*batchtypes.Batch
		totalSize          int
		isSizeLimitReached bool
	)

	for start := 0; start < len(req.Digests) && !isSizeLimitReached; start += chunkSize {
		end := start + chunkSize
		if end > len(req.Digests) {
			end = len(req.Digests)
		}
		chunk := req.Digests[start:end]

		stored, err := h.Store.MultiGet(chunk)
		if err != nil {
			return nil, rpcerr.Wrap("failed to read from batch store", err)
		}

		for _, b := range stored {
			if b == nil {
				continue
			}
			size := b.Size()
			if totalSize+size <= responseBudgetBytes {
				batches = append(batches, b)
				totalSize += size
			} else {
				isSizeLimitReached = true
				break
			}
		}
	}

	metrics.BatchesServed.Add(float64(len(batches)))
	if isSizeLimitReached {
		metrics.RequestBatchesSizeLimitHits.Inc()
	}
	return &transport.RequestBatchesResponse{
		Batches:            batches,
		IsSizeLimitReached: isSizeLimitReached,
	}, nil
}
