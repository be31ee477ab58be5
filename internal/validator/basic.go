package validator

import (
	"context"
	"fmt"

	"github.com/dagconsensus/worker/internal/batchtypes"
)

// Basic is a default Validator standing in for a real transaction-semantic
// validator plugin. It performs no transaction-semantic validation; it
// only rejects batches that are structurally unreasonable: empty, or
// larger than MaxBatchSize.
type Basic struct {
	// MaxBatchSize is the largest accepted Batch.Size() in bytes. Zero
	// means unbounded.
	MaxBatchSize int
}

// ValidateBatch implements Validator.
func (v Basic) ValidateBatch(_ context.Context, b *batchtypes.Batch) error {
	if len(b.Transactions) == 0 {
		return fmt.Errorf("batch has no transactions")
	}
	if v.MaxBatchSize > 0 && b.Size() > v.MaxBatchSize {
		return fmt.Errorf("batch size %d exceeds maximum %d", b.Size(), v.MaxBatchSize)
	}
	return nil
}
