package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ogurasousui/kintai-points/internal/adapters/repository/postgres"
	"github.com/ogurasousui/kintai-points/internal/core/roster"
	"github.com/ogurasousui/kintai-points/internal/core/settings"
	"github.com/ogurasousui/kintai-points/internal/core/storetag"
	"github.com/ogurasousui/kintai-points/internal/platform/config"
	pg "github.com/ogurasousui/kintai-points/internal/platform/db/postgres"
	"github.com/ogurasousui/kintai-points/internal/platform/server"
	"github.com/ogurasousui/kintai-points/internal/platform/sweeper"
	"go.uber.org/zap"
)

// appVersion はリリース時に -ldflags で上書きされます。
var appVersion = "1.4.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize database pool", zap.Error(err))
	}
	defer dbPool.Close()

	rosterRepo := postgres.NewRosterRepository(dbPool)
	storeRepo := postgres.NewStoreTagRepository(dbPool)
	settingsRepo := postgres.NewSettingsRepository(dbPool)

	rosterSvc := roster.NewService(rosterRepo, nil)
	storeSvc := storetag.NewService(storeRepo)
	settingsSvc := settings.NewService(settingsRepo, nil, appVersion)

	loadCtx, cancelLoad := context.WithTimeout(ctx, 10*time.Second)
	defer cancelLoad()
	if err := rosterSvc.Load(loadCtx); err != nil {
		logger.Fatal("failed to load roster state", zap.Error(err))
	}
	if err := storeSvc.Load(loadCtx); err != nil {
		logger.Fatal("failed to load store state", zap.Error(err))
	}
	if err := settingsSvc.Load(loadCtx); err != nil {
		logger.Fatal("failed to load settings state", zap.Error(err))
	}

	if cfg.Retention.Enabled {
		runner := sweeper.NewRunner(rosterSvc, cfg.Retention.Days, cfg.Retention.Interval, logger)
		if err := runner.SweepOnce(ctx); err != nil {
			logger.Warn("initial retention sweep failed", zap.Error(err))
		}
		go runner.Run(ctx)
	}

	grpcServer := server.New(cfg.Server.ListenAddr, rosterSvc, storeSvc, settingsSvc)

	logger.Info("gRPC server listening", zap.String("addr", cfg.Server.ListenAddr))

	if err := grpcServer.Run(ctx); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}

	flushCtx, cancelFlush := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelFlush()
	if err := rosterSvc.Flush(flushCtx); err != nil {
		logger.Error("failed to flush roster state", zap.Error(err))
	}
	if err := storeSvc.Flush(flushCtx); err != nil {
		logger.Error("failed to flush store state", zap.Error(err))
	}

	logger.Info("shutdown complete")
}
