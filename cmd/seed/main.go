package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/wavepark/shift-manager/internal/config"
	"github.com/wavepark/shift-manager/internal/observability"
	"github.com/wavepark/shift-manager/internal/persistence"
	"github.com/wavepark/shift-manager/internal/repository"
	"github.com/wavepark/shift-manager/internal/seed"
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

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	admin, err := service.EnsureAdmin(ctx, repository.NewUserRepository(pg.PoolHandle()), cfg.Admin, cfg.Auth.BcryptCost, logger)
	if err != nil {
		logger.Fatal("failed to ensure default admin", zap.Error(err))
	}
	logger.Info("admin user", zap.String("email", admin.Email), zap.String("role", string(admin.Role)))

	employees := service.NewEmployeeService(repository.NewEmployeeRepository(pg.PoolHandle()))
	roster, err := seed.EnsureRoster(ctx, employees, seed.Lifeguards, logger)
	if err != nil {
		logger.Fatal("failed to seed lifeguards", zap.Error(err))
	}
	logger.Info("lifeguard roster ready", zap.Int("count", len(roster)))
}
