// Package httpserver exposes the user service over HTTP/JSON using echo.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/hexplay/internal/logging"
	"github.com/dmitrijs2005/hexplay/internal/server/services"
	"github.com/labstack/echo/v4"
)

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type HTTPServer struct {
	address         string
	users           services.Users
	health          HealthChecker
	logger          logging.Logger
	shutdownTimeout time.Duration
	echo            *echo.Echo
}

func NewHTTPServer(a string, l logging.Logger, us services.Users, hc HealthChecker, shutdownTimeout time.Duration) *HTTPServer {
	s := &HTTPServer{
		address:         a,
		users:           us,
		health:          hc,
		logger:          l.With("module", "http_server"),
		shutdownTimeout: shutdownTimeout,
	}
	s.echo = s.newRouter()
	return s
}

// Handler returns the configured echo instance.
func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on l until ctx is done, then drains in-flight
// requests for at most the shutdown timeout.
func (s *HTTPServer) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 5 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", l.Addr().String())

	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
