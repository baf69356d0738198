package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/dmitrijs2005/hexplay/internal/server/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// loggingInterceptor logs every call with its duration and status code and
// records request metrics.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	code := status.Code(err)
	metrics.ObserveRequest("grpc", info.FullMethod, metrics.GRPCOutcome(code), elapsed.Seconds())

	args := []any{"method", info.FullMethod, "code", code.String(), "duration", elapsed}
	if id := requestID(ctx); id != "" {
		args = append(args, "request_id", id)
	}
	s.logger.Info(ctx, "gRPC request", args...)

	return resp, err
}

// recoveryInterceptor turns a handler panic into Internal.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error(ctx, "panic in handler", "method", info.FullMethod, "panic", p)
			err = status.Error(codes.Internal, msgInternal)
		}
	}()
	return handler(ctx, req)
}

func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDHeaderName); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
