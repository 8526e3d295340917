package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that checks the role carried in the JWT
// claims. It runs before validators and body parsing, so a role mismatch is
// rejected without touching the request body or the database.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("userId").(uint); !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		role, ok := c.Locals("role").(string)
		if !ok || role != requiredRole {
			return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
		}

		return c.Next()
	}
}
