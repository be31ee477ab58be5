// Package transport wires the Peer Handler and Primary Handler onto a
// single gRPC server, and provides the outbound client stubs
// internal/peerclient and internal/primaryclient use. Messages here are
// plain Go structs carried over gRPC via a small gob-based codec (codec.go)
// instead of generated protobuf stubs, keeping the business types
// (batchtypes.Batch, committee.AuthorityIdentifier, ...) as ordinary Go
// values shared directly between the wire layer and the handler layer.
package transport

import (
	"github.com/dagconsensus/worker/internal/batchtypes"
	"github.com/dagconsensus/worker/internal/committee"
)

// --- Worker-to-Worker surface ---

// ReportBatchRequest carries a single freshly-produced batch from a peer.
type ReportBatchRequest struct {
	Batch *batchtypes.Batch
}

// ReportBatchResponse is an acknowledgment. Ok carries no information of
// its own; gob refuses to encode a struct with no exported fields, so this
// field exists purely to keep the empty-ack types on the wire.
type ReportBatchResponse struct {
	Ok bool
}

// RequestBatchRequest asks for a single digest.
type RequestBatchRequest struct {
	Digest batchtypes.BatchDigest
}

// RequestBatchResponse carries the batch if present; Batch is nil if
// absent. Absence is never an error.
type RequestBatchResponse struct {
	Batch *batchtypes.Batch
}

// RequestBatchesRequest asks for a (possibly large) set of digests.
type RequestBatchesRequest struct {
	Digests []batchtypes.BatchDigest
}

// RequestBatchesResponse carries every batch found within the response
// budget, in discovery order, plus whether the budget was hit.
type RequestBatchesResponse struct {
	Batches            []*batchtypes.Batch
	IsSizeLimitReached bool
}

// --- Primary-to-Worker surface ---

// SynchronizeRequest asks the worker to pull missing digests from target.
type SynchronizeRequest struct {
	Digests     []batchtypes.BatchDigest
	Target      committee.AuthorityIdentifier
	IsCertified bool
}

// SynchronizeResponse is an acknowledgment; see ReportBatchResponse.Ok.
type SynchronizeResponse struct {
	Ok bool
}

// FetchBatchesRequest asks the worker to retrieve payloads for digests from
// any of KnownWorkers via the BatchFetcher collaborator.
type FetchBatchesRequest struct {
	Digests      []batchtypes.BatchDigest
	KnownWorkers []committee.AuthorityIdentifier
}

// FetchBatchesResponse carries whatever the fetcher managed to obtain.
type FetchBatchesResponse struct {
	Batches map[batchtypes.BatchDigest]*batchtypes.Batch
}

// DeleteBatchesRequest asks the worker to garbage-collect digests.
type DeleteBatchesRequest struct {
	Digests []batchtypes.BatchDigest
}

// DeleteBatchesResponse is an acknowledgment; see ReportBatchResponse.Ok.
type DeleteBatchesResponse struct {
	Ok bool
}

// --- Worker-to-Primary outbound surface ---

// ReportOthersBatchRequest notifies the primary a peer's batch was accepted.
type ReportOthersBatchRequest struct {
	Digest   batchtypes.BatchDigest
	WorkerID committee.WorkerId
}

// ReportOthersBatchResponse is an acknowledgment; see ReportBatchResponse.Ok.
type ReportOthersBatchResponse struct {
	Ok bool
}
