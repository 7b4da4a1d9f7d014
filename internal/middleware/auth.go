// Package middleware provides HTTP middleware components for the
// application, built for the fiber web framework.
package middleware

import (
	"log"
	"strings"

	"github.com/Ramiogue/dashboard-app2/internal/models"
	"github.com/Ramiogue/dashboard-app2/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the session token and places the user claims in
// the request context. Every dashboard request carries its merchant binding
// in those claims; handlers never consult global session state.
type AuthMiddleware struct{}

func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// Handler accepts the access token from the Authorization header or, for
// browser sessions, the access_token cookie.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	tokenString := ""

	authHeader := c.Get("Authorization")
	switch {
	case strings.HasPrefix(authHeader, "Bearer "):
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	case authHeader != "":
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	default:
		tokenString = c.Cookies("access_token")
	}

	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not logged in"})
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	if claims.MerchantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
	}

	c.Locals("claims", claims)
	return c.Next()
}

// Claims pulls the verified user claims out of the request context.
func Claims(c *fiber.Ctx) (*models.UserClaims, bool) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	return claims, ok
}
