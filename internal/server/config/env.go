package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// EnvPrefix is prepended to every environment variable the server reads,
// e.g. HPLAY_DATABASE_DSN.
const EnvPrefix = "HPLAY_"

// parseEnv loads an optional .env file and overlays HPLAY_* variables.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if err := applyEnv(context.Background(), config, envconfig.OsLookuper()); err != nil {
		panic(fmt.Sprintf("config: failed to read environment: %v", err))
	}
}

func applyEnv(ctx context.Context, config *Config, l envconfig.Lookuper) error {
	return envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   config,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, l),
	})
}
