// Package peerclient is the outbound Worker-to-Worker RPC client, used by
// synchronize and by internal/fetcher.WorkerFanout. A *grpc.ClientConn is
// itself a cloneable handle over a shared connection pool, so a Client is
// safe to share across concurrent handler invocations.
package peerclient

import (
	"context"

	grpc_retry "github.com/grpc-ecosystem/go-grpc-middleware/retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dagconsensus/worker/internal/batchtypes"
	"github.com/dagconsensus/worker/internal/transport"
)

// Client is the outbound Worker-to-Worker RPC surface.
type Client struct {
	inner transport.WorkerService
}

// New wraps an established connection to a peer worker. Dialing and retry
// policy live in Dial below, grounded on the grpc.Dial +
// grpc_retry.UnaryClientInterceptor pattern used for outbound RPC clients
// elsewhere in the corpus.
func New(conn *grpc.ClientConn) *Client {
	return &Client{inner: transport.NewWorkerServiceClient(conn)}
}

// ReportBatch reports a freshly produced batch to the peer.
func (c *Client) ReportBatch(ctx context.Context, b *batchtypes.Batch) error {
	_, err := c.inner.ReportBatch(ctx, &transport.ReportBatchRequest{Batch: b})
	return err
}

// RequestBatch asks the peer for a single digest.
func (c *Client) RequestBatch(ctx context.Context, d batchtypes.BatchDigest) (*batchtypes.Batch, error) {
	resp, err := c.inner.RequestBatch(ctx, &transport.RequestBatchRequest{Digest: d})
	if err != nil {
		return nil, err
	}
	return resp.Batch, nil
}

// RequestBatches asks the peer for a set of digests, applying ctx's
// deadline to the single underlying RPC.
func (c *Client) RequestBatches(ctx context.Context, digests []batchtypes.BatchDigest) ([]*batchtypes.Batch, bool, error) {
	resp, err := c.inner.RequestBatches(ctx, &transport.RequestBatchesRequest{Digests: digests})
	if err != nil {
		return nil, false, err
	}
	return resp.Batches, resp.IsSizeLimitReached, nil
}

// retryDialOption is the default retry policy for outbound peer dials:
// retry idempotent unary calls up to 3 times, mirroring the
// grpc.Dial+grpc_retry combination used for outbound RPC clients in the
// corpus (e.g. a build-remote-execution client retrying a flaky dial).
func retryDialOption() grpc.DialOption {
	return grpc.WithUnaryInterceptor(grpc_retry.UnaryClientInterceptor(grpc_retry.WithMax(3)))
}

// Dial connects to a peer worker at addr, applying the package's default
// retry interceptor. Authenticating the connection is a deployment's own
// concern; this default uses plaintext transport credentials, matching a
// same-committee internal network.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	all := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		retryDialOption(),
	}, opts...)
	return grpc.NewClient(addr, all...)
}
