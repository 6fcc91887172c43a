package middleware

import (
	"github.com/gofiber/fiber/v2"

	"travelblog/internal/models"
)

// RequireAdmin returns a middleware that rejects non-admin callers. It must
// run after RequireAuth on the same route.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied"})
		}
		return c.Next()
	}
}
