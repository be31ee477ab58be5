package transport

import (
	"context"

	"google.golang.org/grpc"
)

// WorkerService is the server-side Worker-to-Worker surface, implemented
// by internal/peerhandler.Handler.
type WorkerService interface {
	ReportBatch(ctx context.Context, req *ReportBatchRequest) (*ReportBatchResponse, error)
	RequestBatch(ctx context.Context, req *RequestBatchRequest) (*RequestBatchResponse, error)
	RequestBatches(ctx context.Context, req *RequestBatchesRequest) (*RequestBatchesResponse, error)
}

const workerServiceName = "dagconsensus.worker.WorkerService"

// workerServiceDesc is the hand-written analogue of what protoc-gen-go-grpc
// would emit for a 3-method service; written by hand because the wire
// format is out of scope (see messages.go).
var workerServiceDesc = grpc.ServiceDesc{
	ServiceName: workerServiceName,
	HandlerType: (*WorkerService)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ReportBatch",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(ReportBatchRequest)
				if err := dec(req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(WorkerService).ReportBatch(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + workerServiceName + "/ReportBatch"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(WorkerService).ReportBatch(ctx, req.(*ReportBatchRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "RequestBatch",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(RequestBatchRequest)
				if err := dec(req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(WorkerService).RequestBatch(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + workerServiceName + "/RequestBatch"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(WorkerService).RequestBatch(ctx, req.(*RequestBatchRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "RequestBatches",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(RequestBatchesRequest)
				if err := dec(req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(WorkerService).RequestBatches(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + workerServiceName + "/RequestBatches"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(WorkerService).RequestBatches(ctx, req.(*RequestBatchesRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
	},
	Metadata: "worker_service",
}

// RegisterWorkerService registers impl as the Worker-to-Worker RPC service
// on s.
func RegisterWorkerService(s *grpc.Server, impl WorkerService) {
	s.RegisterService(&workerServiceDesc, impl)
}

// workerServiceClient is a thin gRPC client for WorkerService.
type workerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewWorkerServiceClient returns a client calling WorkerService methods over
// cc.
func NewWorkerServiceClient(cc grpc.ClientConnInterface) WorkerService {
	return &workerServiceClient{cc: cc}
}

func (c *workerServiceClient) ReportBatch(ctx context.Context, req *ReportBatchRequest) (*ReportBatchResponse, error) {
	out := new(ReportBatchResponse)
	if err := c.cc.Invoke(ctx, "/"+workerServiceName+"/ReportBatch", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workerServiceClient) RequestBatch(ctx context.Context, req *RequestBatchRequest) (*RequestBatchResponse, error) {
	out := new(RequestBatchResponse)
	if err := c.cc.Invoke(ctx, "/"+workerServiceName+"/RequestBatch", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workerServiceClient) RequestBatches(ctx context.Context, req *RequestBatchesRequest) (*RequestBatchesResponse, error) {
	out := new(RequestBatchesResponse)
	if err := c.cc.Invoke(ctx, "/"+workerServiceName+"/RequestBatches", req, out); err != nil {
		return nil, err
	}
	return out, nil
}
