// Package validator defines the pluggable batch-validation capability: a
// single method closed over one interface, so callers can supply a real
// transaction-semantic validator without this core depending on it.
package validator

import (
	"context"

	"github.com/dagconsensus/worker/internal/batchtypes"
)

// Validator validates a batch's content before it is accepted into the
// store. Implementations must be safe for concurrent invocation. A non-nil
// error means the batch is rejected; its message is surfaced to the caller
// via rpcerr.BadRequest.
type Validator interface {
	ValidateBatch(ctx context.Context, b *batchtypes.Batch) error
}

// Func adapts a plain function to a Validator, the way http.HandlerFunc
// adapts a function to http.Handler.
type Func func(ctx context.Context, b *batchtypes.Batch) error

// ValidateBatch calls f.
func (f Func) ValidateBatch(ctx context.Context, b *batchtypes.Batch) error {
	return f(ctx, b)
}
