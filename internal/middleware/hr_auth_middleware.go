package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// RequireHRKey guards HR-only endpoints with the X-HR-API-Key shared secret.
//
// An empty server-side key is a misconfiguration and fails closed with 500;
// it is never treated as "no auth required". The comparison is constant time.
func RequireHRKey(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "HR API key is not configured on the server",
			})
		}

		provided := c.Get("X-HR-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or missing HR API key",
			})
		}

		return c.Next()
	}
}
