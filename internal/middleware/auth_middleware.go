package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"travelblog/internal/auth"
)

// claimsKey is the Locals key under which RequireAuth stores decoded claims.
const claimsKey = "claims"

// RequireAuth returns a middleware that validates the bearer token and
// stores its claims in the request context. A missing header is 401, a
// header that fails verification is 403.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := auth.VerifyToken(secret, tokenStr)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Invalid token"})
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFromCtx returns the claims stored by RequireAuth. Handlers behind
// RequireAuth can rely on a non-nil result.
func ClaimsFromCtx(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(claimsKey).(*auth.Claims)
	return claims
}
