package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/colegottdank/debateai-engagement/internal/app"
	"github.com/colegottdank/debateai-engagement/internal/cache"
	"github.com/colegottdank/debateai-engagement/internal/clock"
	"github.com/colegottdank/debateai-engagement/internal/config"
	"github.com/colegottdank/debateai-engagement/internal/db"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	"github.com/colegottdank/debateai-engagement/internal/server"
	"github.com/colegottdank/debateai-engagement/internal/service/engagement"
	"github.com/colegottdank/debateai-engagement/internal/service/topics"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB. Without a store the read paths still answer with fallbacks.
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db, running degraded", "err", err)
		database = nil
	}

	clk := clock.System()

	// Init read cache (memory, redis or none)
	readCache, err := cache.New(cfg, clk)
	if err != nil {
		log.Warn("read cache unavailable, continuing without it", "backend", cfg.Cache.Backend, "err", err)
		readCache = cache.Noop{}
	}

	// Inject logger into app context
	appCtx := app.New(cfg, database, readCache, clk, log)

	if cfg.App.ENV == "development" && !appCtx.Degraded() {
		if err := db.SeedDevData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	registrars := []server.Registrar{
		engagement.NewRegistrar(appCtx),
		topics.NewRegistrar(appCtx),
	}

	go func() {
		if err := server.StartMetricsServer(ctx, cfg.Metrics.Addr, log); err != nil {
			log.Error("metrics server failed", "err", err)
		}
	}()

	if err := server.StartGRPCServer(ctx, cfg, log, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
