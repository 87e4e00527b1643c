package service

import (
	"context"
	"errors"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"github.com/wavepark/shift-manager/internal/auth"
	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/repository"
	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

// UserInput carries the fields of a new API account. An empty Role means manager.
type UserInput struct {
	Email    string
	FullName string
	Password string
	Role     domain.Role
}

// UserService manages API accounts.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// Create validates the input, hashes the password and stores the user.
func (s *UserService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleManager
	}
	problems := fieldErrors{}
	if addr, err := mail.ParseAddress(input.Email); err != nil || addr.Address != input.Email {
		problems["email"] = "must be a valid email address"
	}
	problems.required("full_name", input.FullName)
	switch {
	case input.Password == "":
		problems["password"] = "is required"
	case len(input.Password) > auth.MaxPasswordBytes:
		problems["password"] = "must be at most 72 bytes"
	}
	if !role.Valid() {
		problems["role"] = "must be one of admin, manager, viewer"
	}
	if err := problems.err("invalid user"); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperrors.NewValidationError("invalid user", map[string]any{"password": "must be at most 72 bytes"})
	}
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	user := &domain.User{
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         role,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewBadRequest("Email already registered")
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// List returns all accounts by id.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}
