package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "schoolku_backend/internals/helpers"
)

// OnlyRoles allows the request through when the authenticated role is one of
// the given roles.
func OnlyRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: you are not authorized to access this resource")
	}
}
