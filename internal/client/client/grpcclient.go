package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hexplay/internal/common"
	pb "github.com/dmitrijs2005/hexplay/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// versionConflictMessage is the status message the server sends with Aborted
// when the expected version was stale.
const versionConflictMessage = "version conflict"

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	users       pb.UserServiceClient
	system      pb.SystemServiceClient
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults, so tests can swap the dialer.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}

	c.conn = conn
	c.users = pb.NewUserServiceClient(conn)
	c.system = pb.NewSystemServiceClient(conn)
	return c, nil
}

// requestIDInterceptor tags every call with a fresh request id unless the
// caller already set one.
func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) == 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Status(ctx context.Context, question string) (string, error) {
	resp, err := s.system.Status(ctx, &pb.StatusRequest{Question: question})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Answer, nil
}

func (s *GRPCClient) CreateUser(ctx context.Context, name, email string, age *int32) (*pb.User, error) {
	resp, err := s.users.Create(ctx, &pb.CreateUserRequest{Name: name, Email: email, Age: age})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.User, nil
}

func (s *GRPCClient) GetUser(ctx context.Context, id int64) (*pb.User, error) {
	resp, err := s.users.Get(ctx, &pb.GetUserRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.User, nil
}

func (s *GRPCClient) GetUserByToken(ctx context.Context, token string) (*pb.User, error) {
	resp, err := s.users.GetByToken(ctx, &pb.GetUserByTokenRequest{Token: token})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.User, nil
}

func (s *GRPCClient) GetUserByEmail(ctx context.Context, email string) (*pb.User, error) {
	resp, err := s.users.GetByEmail(ctx, &pb.GetUserByEmailRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.User, nil
}

func (s *GRPCClient) ListUsers(ctx context.Context, startID int64, pageSize *int32) ([]*pb.User, error) {
	resp, err := s.users.List(ctx, &pb.ListUsersRequest{StartId: startID, PageSize: pageSize})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Users, nil
}

func (s *GRPCClient) UpdateUser(ctx context.Context, id, version int64, name *string, age *int32) (*pb.User, error) {
	resp, err := s.users.Update(ctx, &pb.UpdateUserRequest{Id: id, Version: version, Name: name, Age: age})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.User, nil
}

func (s *GRPCClient) DeleteUser(ctx context.Context, id, version int64) (*pb.User, error) {
	resp, err := s.users.Delete(ctx, &pb.DeleteUserRequest{Id: id, Version: version})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.User, nil
}

// mapError converts a gRPC status into a common sentinel. Validation
// failures keep the server's message.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	case codes.NotFound:
		return common.ErrNotFound
	case codes.Aborted:
		if st.Message() == versionConflictMessage {
			return common.ErrVersionConflict
		}
		return common.ErrConflict
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Canceled:
		return context.Canceled
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
