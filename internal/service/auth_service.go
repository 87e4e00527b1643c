package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wavepark/shift-manager/internal/auth"
	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/repository"
	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

const invalidCredentialsMessage = "Incorrect email or password"

// LoginResult is the outcome of a successful password login.
type LoginResult struct {
	User        *domain.User
	AccessToken string
	ExpiresAt   time.Time
}

// AuthService exchanges credentials for bearer tokens.
type AuthService struct {
	users    repository.UserRepository
	tokens   *auth.TokenManager
	throttle auth.LoginThrottle
	logger   *zap.Logger
	now      func() time.Time
}

// AuthDependencies encapsulates collaborators of the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Tokens   *auth.TokenManager
	Throttle auth.LoginThrottle
	Logger   *zap.Logger
}

// NewAuthService builds the service. A nil throttle never blocks.
func NewAuthService(deps AuthDependencies) *AuthService {
	throttle := deps.Throttle
	if throttle == nil {
		throttle = auth.NopThrottle{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:    deps.UserRepo,
		tokens:   deps.Tokens,
		throttle: throttle,
		logger:   logger,
		now:      time.Now,
	}
}

// Login checks the password of the user whose email equals username and
// issues a token. Unknown users and wrong passwords share one error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("username and password are required", nil)
	}
	if !s.throttle.Allow(ctx, username) {
		return nil, apperrors.NewTooManyRequests("Too many failed login attempts, try again later")
	}

	user, err := s.users.GetByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.throttle.Fail(ctx, username)
			return nil, apperrors.NewBadRequest(invalidCredentialsMessage)
		}
		return nil, apperrors.MapError(err)
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		s.throttle.Fail(ctx, username)
		s.logger.Info("login rejected", zap.Int64("user_id", user.ID))
		return nil, apperrors.NewBadRequest(invalidCredentialsMessage)
	}
	s.throttle.Reset(ctx, username)

	token, exp, err := s.tokens.Issue(user.ID, user.Role, s.now())
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{User: user, AccessToken: token, ExpiresAt: exp}, nil
}
