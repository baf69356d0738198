package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/hexplay/internal/buildinfo"
	"github.com/dmitrijs2005/hexplay/internal/client/cli"
	"github.com/dmitrijs2005/hexplay/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()
	args := config.Args()

	if len(args) > 0 && args[0] == "version" {
		buildinfo.PrintBuildData(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := app.Run(ctx, args); err != nil {
		if !errors.Is(err, cli.ErrUsage) || len(args) > 0 {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}
