package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/hexplay/internal/logging"
	pb "github.com/dmitrijs2005/hexplay/internal/proto"
	"github.com/dmitrijs2005/hexplay/internal/server/services"
	"google.golang.org/grpc"
)

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	pb.UnimplementedSystemServiceServer
	address string
	users   services.Users
	health  HealthChecker
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us services.Users, hc HealthChecker) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		health:  hc,
	}
}

// newServer creates the gRPC server with interceptors and registered services.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.recoveryInterceptor, s.loggingInterceptor))
	pb.RegisterUserServiceServer(srv, s)
	pb.RegisterSystemServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on l until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, l net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", l.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(l); err != nil {
		return err
	}

	return nil
}
