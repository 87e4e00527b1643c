package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wavepark/shift-manager/internal/domain"
	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

// Authorize passes when the user's role is one of allowed. There is no
// hierarchy: admin does not satisfy a manager-only check.
func Authorize(user *domain.User, allowed ...domain.Role) error {
	if user == nil {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}
	for _, role := range allowed {
		if user.Role == role {
			return nil
		}
	}
	return apperrors.NewForbidden("Insufficient permissions")
}

// RequireRole ensures the authenticated user has one of the allowed roles.
// It must run after AuthMiddleware.Handle.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	roles := append([]domain.Role(nil), allowed...)
	return func(c *fiber.Ctx) error {
		user, _ := UserFromContext(c)
		if err := Authorize(user, roles...); err != nil {
			return err
		}
		return c.Next()
	}
}
