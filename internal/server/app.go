// Package server wires storage, the user service and both transports
// together and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/hexplay/internal/logging"
	"github.com/dmitrijs2005/hexplay/internal/server/config"
	"github.com/dmitrijs2005/hexplay/internal/server/httpserver"
	"github.com/dmitrijs2005/hexplay/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hexplay/internal/server/services"

	gs "github.com/dmitrijs2005/hexplay/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	manager     repomanager.RepositoryManager
	userService *services.UserService
}

// NewApp opens the configured storage, applies migrations and builds the
// user service.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(c.LogBackend, c.LogLevel, os.Stdout)

	manager, err := openStorage(ctx, c)
	if err != nil {
		return nil, err
	}

	if err := manager.RunMigrations(ctx); err != nil {
		_ = manager.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	logger.Info(ctx, "Storage ready", "backend", c.StorageBackend)

	return &App{
		config:      c,
		logger:      logger,
		manager:     manager,
		userService: services.NewUserService(manager),
	}, nil
}

func openStorage(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.StorageBackend {
	case config.StorageMemory:
		return repomanager.NewMemoryRepositoryManager(nil), nil
	case config.StoragePostgres:
		db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		return repomanager.NewPostgresRepositoryManager(db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// runServer runs one transport and cancels the whole app if it fails.
func (app *App) runServer(ctx context.Context, cancelFunc context.CancelFunc, name string, run func(context.Context) error) {
	if err := run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err.Error())
		cancelFunc()
	}
}

// Run serves gRPC and HTTP until ctx is cancelled or a signal arrives, then
// closes storage.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.manager)
	httpServer := httpserver.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.manager, app.config.ShutdownTimeout)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.runServer(ctx, cancelFunc, "grpc", grpcServer.Run)
	}()
	go func() {
		defer wg.Done()
		app.runServer(ctx, cancelFunc, "http", httpServer.Run)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
}
