package transport

import (
	"context"

	"google.golang.org/grpc"
)

// PrimaryService is the server-side Primary-to-Worker surface, implemented
// by internal/primaryhandler.Handler. Served only to the local primary,
// never to remote peers.
type PrimaryService interface {
	Synchronize(ctx context.Context, req *SynchronizeRequest) (*SynchronizeResponse, error)
	FetchBatches(ctx context.Context, req *FetchBatchesRequest) (*FetchBatchesResponse, error)
	DeleteBatches(ctx context.Context, req *DeleteBatchesRequest) (*DeleteBatchesResponse, error)
}

const primaryServiceName = "dagconsensus.worker.PrimaryService"

var primaryServiceDesc = grpc.ServiceDesc{
	ServiceName: primaryServiceName,
	HandlerType: (*PrimaryService)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Synchronize",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(SynchronizeRequest)
				if err := dec(req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(PrimaryService).Synchronize(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + primaryServiceName + "/Synchronize"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(PrimaryService).Synchronize(ctx, req.(*SynchronizeRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "FetchBatches",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(FetchBatchesRequest)
				if err := dec(req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(PrimaryService).FetchBatches(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + primaryServiceName + "/FetchBatches"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(PrimaryService).FetchBatches(ctx, req.(*FetchBatchesRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "DeleteBatches",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(DeleteBatchesRequest)
				if err := dec(req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(PrimaryService).DeleteBatches(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + primaryServiceName + "/DeleteBatches"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(PrimaryService).DeleteBatches(ctx, req.(*DeleteBatchesRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
	},
	Metadata: "primary_service",
}

// RegisterPrimaryService registers impl as the Primary-to-Worker RPC service
// on s.
func RegisterPrimaryService(s *grpc.Server, impl PrimaryService) {
	s.RegisterService(&primaryServiceDesc, impl)
}
