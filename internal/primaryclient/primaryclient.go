// Package primaryclient is the outbound Worker-to-Primary RPC client, used
// by report_batch to deliver batch-accepted notifications to the local
// primary.
package primaryclient

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dagconsensus/worker/internal/batchtypes"
	"github.com/dagconsensus/worker/internal/committee"
	"github.com/dagconsensus/worker/internal/transport"
)

// Client is the outbound Worker-to-Primary RPC surface.
type Client struct {
	inner transport.PrimaryNotifyService
}

// New wraps an established connection to the local primary.
func New(conn *grpc.ClientConn) *Client {
	return &Client{inner: transport.NewPrimaryNotifyServiceClient(conn)}
}

// ReportOthersBatch notifies the primary that digest was accepted from a
// peer worker. The primary is responsible for deduplicating repeated
// notifications for the same digest; this client re-sends on every call.
func (c *Client) ReportOthersBatch(ctx context.Context, digest batchtypes.BatchDigest, workerID committee.WorkerId) error {
	_, err := c.inner.ReportOthersBatch(ctx, &transport.ReportOthersBatchRequest{
		Digest:   digest,
		WorkerID: workerID,
	})
	return err
}

// Dial connects to the local primary at addr.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	all := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	return grpc.NewClient(addr, all...)
}
