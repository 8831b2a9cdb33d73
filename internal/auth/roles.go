package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bizcard-service/internal/domain"
	apperrors "github.com/spec-kit/bizcard-service/pkg/util"
)

// Authorize decides whether the identity satisfies the required role tag.
// Each protected route carries at most one tag; admins do not implicitly
// satisfy business- or user-gated routes.
func Authorize(identity domain.Identity, required domain.Role) error {
	if identity.Satisfies(required) {
		return nil
	}
	return apperrors.NewForbidden("insufficient permissions")
}

// RequireRole builds route middleware enforcing a single role tag.
// It must run after AuthMiddleware.Handle; an absent identity is an
// authentication failure, not a policy denial.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("not authenticated")
		}
		if err := Authorize(identity, required); err != nil {
			return err
		}
		return c.Next()
	}
}
