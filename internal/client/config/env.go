package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const EnvPrefix = "HPLAY_CLIENT_"

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
