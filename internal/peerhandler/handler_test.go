package peerhandler

import (
	"context"
	"errors"
	"testing"

	"github.com/dagconsensus/worker/internal/batchtypes"
	"github.com/dagconsensus/worker/internal/committee"
	"github.com/dagconsensus/worker/internal/log"
	"github.com/dagconsensus/worker/internal/rpcerr"
	"github.com/dagconsensus/worker/internal/store/memstore"
	"github.com/dagconsensus/worker/internal/transport"
	"github.com/dagconsensus/worker/internal/validator"
)

type fakePrimary struct {
	notified []batchtypes.BatchDigest
	err      error
}

func (f *fakePrimary) ReportOthersBatch(_ context.Context, digest batchtypes.BatchDigest, _ committee.WorkerId) error {
	if f.err != nil {
		return f.err
	}
	f.notified = append(f.notified, digest)
	return nil
}

func newHandler(v validator.Validator, primary PrimaryNotifier) *Handler {
	return &Handler{
		WorkerID:  1,
		Store:     memstore.New(),
		Validator: v,
		Primary:   primary,
		Logger:    log.Nop(),
	}
}

func TestReportBatch_HappyPath(t *testing.T) {
	primary := &fakePrimary{}
	h := newHandler(validator.Func(func(context.Context, *batchtypes.Batch) error { return nil }), primary)

	b := batchtypes.NewBatch([][]byte{{1, 2, 3}})
	resp, err := h.ReportBatch(context.Background(), &transport.ReportBatchRequest{Batch: b})
	if err != nil {
		t.Fatalf("ReportBatch: %v", err)
	}
	if resp == nil {
		t.Fatal("expected a non-nil response")
	}

	stored, ok, err := h.Store.Get(b.Digest())
	if err != nil || !ok {
		t.Fatalf("expected the batch to be stored, ok=%v err=%v", ok, err)
	}
	if stored.Digest() != b.Digest() {
		t.Fatal("stored batch does not match the reported one")
	}

	if len(primary.notified) != 1 || primary.notified[0] != b.Digest() {
		t.Fatal("primary was not notified of the accepted batch")
	}
}

func TestReportBatch_ValidatorRejects(t *testing.T) {
	primary := &fakePrimary{}
	rejectErr := errors.New("batch too large")
	h := newHandler(validator.Func(func(context.Context, *batchtypes.Batch) error { return rejectErr }), primary)

	b := batchtypes.NewBatch([][]byte{{1}})
	_, err := h.ReportBatch(context.Background(), &transport.ReportBatchRequest{Batch: b})
	if err == nil {
		t.Fatal("expected an error when the validator rejects the batch")
	}
	var rpcErr *rpcerr.Error
	if !errors.As(err, &rpcErr) || rpcErr.Code != rpcerr.BadRequest {
		t.Fatalf("expected a BadRequest rpcerr.Error, got %v", err)
	}

	if _, ok, _ := h.Store.Get(b.Digest()); ok {
		t.Fatal("a rejected batch must not be stored")
	}
	if len(primary.notified) != 0 {
		t.Fatal("the primary must not be notified of a rejected batch")
	}
}

func TestReportBatch_PrimaryNotifyFailureIsInternal(t *testing.T) {
	primary := &fakePrimary{err: errors.New("primary unreachable")}
	h := newHandler(validator.Func(func(context.Context, *batchtypes.Batch) error { return nil }), primary)

	b := batchtypes.NewBatch([][]byte{{7}})
	_, err := h.ReportBatch(context.Background(), &transport.ReportBatchRequest{Batch: b})
	if err == nil {
		t.Fatal("expected an error when notifying the primary fails")
	}
	var rpcErr *rpcerr.Error
	if !errors.As(err, &rpcErr) || rpcErr.Code != rpcerr.Internal {
		t.Fatalf("expected an Internal rpcerr.Error, got %v", err)
	}

	// The batch was already durably stored before the notification step;
	// a retry of report_batch must still find it (the store's idempotent
	// insert semantics), so it is not rolled back.
	if _, ok, _ := h.Store.Get(b.Digest()); !ok {
		t.Fatal("expected the batch to remain stored despite the notify failure")
	}
}

func TestRequestBatch_AbsenceIsNotAnError(t *testing.T) {
	h := newHandler(validator.Func(func(context.Context, *batchtypes.Batch) error { return nil }), &fakePrimary{})

	var digest batchtypes.BatchDigest
	resp, err := h.RequestBatch(context.Background(), &transport.RequestBatchRequest{Digest: digest})
	if err != nil {
		t.Fatalf("unexpected error for a missing digest: %v", err)
	}
	if resp.Batch != nil {
		t.Fatal("expected a nil Batch for a missing digest")
	}
}

func TestRequestBatches_RespectsSizeBudget(t *testing.T) {
	h := newHandler(validator.Func(func(context.Context, *batchtypes.Batch) error { return nil }), &fakePrimary{})

	// Each batch is well within budget individually; force the budget to
	// be exceeded cumulatively by inserting enough large batches.
	const perBatch = responseBudgetBytes/3 + 1
	var digests []batchtypes.BatchDigest
	for i := 0; i < 4; i++ {
		tx := make([]byte, perBatch)
		tx[0] = byte(i) // keep digests distinct
		b := batchtypes.NewBatch([][]byte{tx})
		d := b.Digest()
		if err := h.Store.Insert(d, b); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		digests = append(digests, d)
	}

	resp, err := h.RequestBatches(context.Background(), &transport.RequestBatchesRequest{Digests: digests})
	if err != nil {
		t.Fatalf("RequestBatches: %v", err)
	}
	if !resp.IsSizeLimitReached {
		t.Fatal("expected IsSizeLimitReached to be true")
	}
	if len(resp.Batches) == 0 || len(resp.Batches) >= len(digests) {
		t.Fatalf("expected a partial result strictly smaller than the full set, got %d of %d", len(resp.Batches), len(digests))
	}
}

func TestRequestBatches_MissingDigestsAreSkipped(t *testing.T) {
	h := newHandler(validator.Func(func(context.Context, *batchtypes.Batch) error { return nil }), &fakePrimary{})

	present := batchtypes.NewBatch([][]byte{{1}})
	pd := present.Digest()
	if err := h.Store.Insert(pd, present); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	var missing batchtypes.BatchDigest
	missing[0] = 0xee

	resp, err := h.RequestBatches(context.Background(), &transport.RequestBatchesRequest{Digests: []batchtypes.BatchDigest{pd, missing}})
	if err != nil {
		t.Fatalf("RequestBatches: %v", err)
	}
	if resp.IsSizeLimitReached {
		t.Fatal("did not expect the size budget to be hit")
	}
	if len(resp.Batches) != 1 || resp.Batches[0].Digest() != pd {
		t.Fatalf("expected exactly the present batch, got %d batches", len(resp.Batches))
	}
}
