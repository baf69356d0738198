package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/hexplay/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string            gRPC bind address (e.g. ":50051")
//	-h string            HTTP bind address (e.g. ":8080")
//	-d string            PostgreSQL DSN
//	-storage string      storage backend: postgres or memory
//	-l string            log level
//	-log-backend string  slog or zerolog
//	-shutdown duration   graceful shutdown timeout
//
// Other arguments (like -c) are filtered out before parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-h", "-d", "-storage", "-l", "-log-backend", "-shutdown"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "h", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.StorageBackend, "storage", config.StorageBackend, "storage backend (postgres|memory)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogBackend, "log-backend", config.LogBackend, "log backend (slog|zerolog)")
	fs.DurationVar(&config.ShutdownTimeout, "shutdown", config.ShutdownTimeout, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
