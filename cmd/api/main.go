package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/wavepark/shift-manager/internal/api/http"
	"github.com/wavepark/shift-manager/internal/api/http/handlers"
	"github.com/wavepark/shift-manager/internal/auth"
	"github.com/wavepark/shift-manager/internal/config"
	"github.com/wavepark/shift-manager/internal/observability"
	"github.com/wavepark/shift-manager/internal/persistence"
	"github.com/wavepark/shift-manager/internal/repository"
	"github.com/wavepark/shift-manager/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	repos := httptransport.Repositories{
		Users:       repository.NewUserRepository(pool),
		Employees:   repository.NewEmployeeRepository(pool),
		Tasks:       repository.NewTaskRepository(pool),
		Shifts:      repository.NewShiftRepository(pool),
		Assignments: repository.NewAssignmentRepository(pool),
	}

	if _, err := service.EnsureAdmin(ctx, repos.Users, cfg.Admin, cfg.Auth.BcryptCost, logger); err != nil {
		logger.Fatal("failed to ensure default admin", zap.Error(err))
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.AccessTokenTTL())
	if err != nil {
		logger.Fatal("invalid token settings", zap.Error(err))
	}

	var throttle auth.LoginThrottle = auth.NopThrottle{}
	probes := map[string]handlers.Pinger{"postgres": pg}
	if redis != nil {
		throttle = auth.NewRedisThrottle(redis.Client, cfg.Auth.LoginMaxFailures, cfg.Auth.LoginLockout(), logger)
		probes["redis"] = redis
	}

	app := httptransport.NewServer(httptransport.Dependencies{
		Config:       *cfg,
		Logger:       logger,
		Metrics:      observability.NewMetrics(),
		Repositories: repos,
		Tokens:       tokens,
		Throttle:     throttle,
		Probes:       probes,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
