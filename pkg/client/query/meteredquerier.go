package query

import (
	"context"
	"time"

	"github.com/cosmos/gogoproto/grpc"
	googlegrpc "google.golang.org/grpc"
)

// grpcClientWithMetrics is a wrapper around grpc.ClientConn that captures the
// duration of unary gRPC calls made against the chain node.
type grpcClientWithMetrics struct {
	grpc.ClientConn
}

// NewGRPCClientWithMetrics wraps the provided grpc.ClientConn so that every
// Invoke is observed by GRPCCallDurationSeconds.
func NewGRPCClientWithMetrics(clientConn grpc.ClientConn) grpc.ClientConn {
	return &grpcClientWithMetrics{
		ClientConn: clientConn,
	}
}

// Invoke wraps the ClientConn's Invoke method to capture the duration of the call.
func (m *grpcClientWithMetrics) Invoke(
	ctx context.Context,
	method string,
	args, reply any,
	opts ...googlegrpc.CallOption,
) error {
	defer CaptureGRPCCallDuration(method, time.Now())

	return m.ClientConn.Invoke(ctx, method, args, reply, opts...)
}
