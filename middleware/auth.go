package middleware

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	"lms/utils"
)

// AuthMiddleware resolves the request principal and stores it in Locals
// for downstream handlers.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := utils.ExtractPrincipal(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals("userID", userID)
		c.Locals("role", role)
		return c.Next()
	}
}
