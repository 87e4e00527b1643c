package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wavepark/shift-manager/internal/auth"
	"github.com/wavepark/shift-manager/internal/config"
	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/repository"
)

// EnsureAdmin creates the default administrator when no user has the
// configured email. An existing account is returned unmodified, whatever its
// role or password.
func EnsureAdmin(ctx context.Context, users repository.UserRepository, admin config.AdminConfig, bcryptCost int, logger *zap.Logger) (*domain.User, error) {
	existing, err := users.GetByEmail(ctx, admin.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := auth.HashPassword(admin.Password, bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	user := &domain.User{
		Email:        admin.Email,
		FullName:     admin.FullName,
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// another process created it first
			return users.GetByEmail(ctx, admin.Email)
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	logger.Info("default admin created", zap.String("email", admin.Email), zap.Int64("user_id", user.ID))
	return user, nil
}
