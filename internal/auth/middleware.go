package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/wavepark/shift-manager/internal/domain"
	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

const userKey = "auth_user"

const credentialsMessage = "Could not validate credentials"

// UserLookup loads users by id.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Authenticator resolves bearer tokens to stored users.
type Authenticator struct {
	tokens *TokenManager
	users  UserLookup
	now    func() time.Time
}

// NewAuthenticator builds an Authenticator using the wall clock.
func NewAuthenticator(tokens *TokenManager, users UserLookup) *Authenticator {
	return &Authenticator{tokens: tokens, users: users, now: time.Now}
}

// Authenticate verifies the token and loads its user. Tokens are not
// revoked when a user is deleted, so that case fails here at the lookup.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	identity, err := a.tokens.Verify(token, a.now())
	if err != nil {
		return nil, apperrors.NewUnauthorized(credentialsMessage)
	}
	user, err := a.users.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized(credentialsMessage)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// AuthMiddleware validates bearer tokens and loads the calling user.
type AuthMiddleware struct {
	authenticator *Authenticator
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(authenticator *Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return apperrors.NewUnauthorized("Not authenticated")
	}

	user, err := m.authenticator.Authenticate(c.UserContext(), token)
	if err != nil {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return err
	}

	c.Locals(userKey, user)
	return c.Next()
}

// UserFromContext retrieves the authenticated user.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(userKey).(*domain.User)
	return user, ok && user != nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
