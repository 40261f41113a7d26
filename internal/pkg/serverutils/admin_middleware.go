package serverutils

import (
	"crypto/subtle"
	"os"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware guards the admin surface with the single shared operator
// token. This deployment is single-operator; there are no user accounts.
func AdminMiddleware(ctx *fiber.Ctx) error {
	secret := os.Getenv("ADMIN_TOKEN")
	if secret == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Admin access not configured"})
	}

	token := ctx.Get("X-Admin-Token")
	if token == "" {
		// Websocket upgrades cannot set headers from the browser.
		token = ctx.Query("token")
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	return ctx.Next()
}
