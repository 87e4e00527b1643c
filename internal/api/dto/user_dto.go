package dto

import (
	"time"

	"github.com/wavepark/shift-manager/internal/domain"
	"github.com/wavepark/shift-manager/internal/service"
)

// TokenRequest is the password grant, sent form-encoded or as JSON.
type TokenRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse is returned by POST /auth/token.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// UserCreateRequest payload for new API accounts.
type UserCreateRequest struct {
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

func (r UserCreateRequest) Input() service.UserInput {
	return service.UserInput{Email: r.Email, FullName: r.FullName, Password: r.Password, Role: r.Role}
}

// UserResponse never includes the password hash.
type UserResponse struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Role     domain.Role `json:"role"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role}
}

func NewUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
