package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/noah-isme/lectio-cli/internal/cli"
	"github.com/noah-isme/lectio-cli/internal/lectio"
	"github.com/noah-isme/lectio-cli/internal/schedule"
	"github.com/noah-isme/lectio-cli/pkg/cache"
	"github.com/noah-isme/lectio-cli/pkg/config"
	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
	"github.com/noah-isme/lectio-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx := context.Background()

	client := lectio.NewClient(cfg.Service, logr)
	if err := client.Authenticate(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Not authenticated!")
		logr.Error("authentication failed", zap.Error(err))
		os.Exit(1)
	}

	var svc lectio.Service = client
	if cfg.Cache.Enabled {
		rdb, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			logr.Warn("schedule cache unavailable, querying directly", zap.Error(err))
		} else {
			svc = lectio.NewCachedService(client, rdb, cfg.Cache.TTL, logr)
		}
	}

	app := cli.New(cli.Params{
		Service: svc,
		Labels:  schedule.NewLabeler(cfg.Labels.Placeholder, cfg.Labels.MaxNames),
		Logger:  logr,
	})

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.FromError(err).Message)
		os.Exit(apperrors.ExitCodeOf(err))
	}
}
