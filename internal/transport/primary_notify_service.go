package transport

import (
	"context"

	"google.golang.org/grpc"
)

// primaryNotifyServiceName is the Worker-to-Primary outbound surface. The
// primary process itself lives outside this repo; this file only provides
// the client stub internal/primaryclient uses to call report_others_batch
// on whatever implements it.
const primaryNotifyServiceName = "dagconsensus.worker.PrimaryNotifyService"

// PrimaryNotifyService is the interface a local primary process exposes to
// its workers.
type PrimaryNotifyService interface {
	ReportOthersBatch(ctx context.Context, req *ReportOthersBatchRequest) (*ReportOthersBatchResponse, error)
}

type primaryNotifyServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPrimaryNotifyServiceClient returns a client calling
// PrimaryNotifyService over cc.
func NewPrimaryNotifyServiceClient(cc grpc.ClientConnInterface) PrimaryNotifyService {
	return &primaryNotifyServiceClient{cc: cc}
}

func (c *primaryNotifyServiceClient) ReportOthersBatch(ctx context.Context, req *ReportOthersBatchRequest) (*ReportOthersBatchResponse, error) {
	out := new(ReportOthersBatchResponse)
	if err := c.cc.Invoke(ctx, "/"+primaryNotifyServiceName+"/ReportOthersBatch", req, out); err != nil {
		return nil, err
	}
	return out, nil
}
