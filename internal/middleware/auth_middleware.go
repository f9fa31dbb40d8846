package middleware

import (
	"github.com/GosriPerdomo/Back2finalPerdomo/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the jwt session cookie and extracts user details
func AuthMiddleware(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("jwt")
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token no proporcionado"})
		}

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token inválido"})
		}

		// Retrieve user identity from token
		userID, idExists := claims["id"].(string)
		email, emailExists := claims["email"].(string)
		role, roleExists := claims["role"].(string)

		if !idExists || !emailExists || !roleExists {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token inválido"})
		}

		// Store user info in context for next handlers
		c.Locals("user_id", userID)
		c.Locals("email", email)
		c.Locals("role", role)
		if cart, ok := claims["cart"].(string); ok {
			c.Locals("cart", cart)
		}

		return c.Next()
	}
}
