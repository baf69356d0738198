package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Messages sent for conflicts. The client tells the two conflict kinds apart by them.
const (
	msgVersionConflict = "version conflict"
	msgConflict        = "conflict"
	msgNotFound        = "not found"
	msgInternal        = "internal error"
)

// toStatus maps a use-case error to a gRPC status. Unexpected errors are
// logged with their cause and reported as a bare Internal.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, msgNotFound)
	case errors.Is(err, common.ErrVersionConflict):
		return status.Error(codes.Aborted, msgVersionConflict)
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.Aborted, msgConflict)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, context.Canceled.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, context.DeadlineExceeded.Error())
	}

	s.logger.Error(ctx, "unhandled error", "method", method, "error", err.Error())
	return status.Error(codes.Internal, msgInternal)
}
