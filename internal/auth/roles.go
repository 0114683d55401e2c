package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

// RequireRole ensures the caller holds one of the allowed roles.
func RequireRole(allowed ...domain.UserRole) fiber.Handler {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("Authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("Insufficient role")
		}
		return c.Next()
	}
}
