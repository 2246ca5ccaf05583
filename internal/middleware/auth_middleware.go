package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/photodrop-app/photodrop-backend/internal/models"
	"github.com/photodrop-app/photodrop-backend/internal/repository"
	"github.com/photodrop-app/photodrop-backend/pkg/token"
)

// AuthMiddleware guards the photo routes. It accepts a Bearer token, checks
// signature and expiry, re-reads the user row (so a deleted account is
// rejected even with a valid signature) and puts the identity in Locals.
func AuthMiddleware(tokens *token.Manager, userRepo *repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).
				JSON(models.ErrorResponse("Missing or invalid authorization header"))
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(models.ErrorResponse("Missing token"))
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(models.ErrorResponse("Invalid or expired token"))
		}

		user, err := userRepo.GetByID(claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).
					JSON(models.ErrorResponse("User not found"))
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(models.ErrorResponse("Auth check failed"))
		}

		c.Locals("userID", user.ID)
		c.Locals("userEmail", user.Email)
		c.Locals("userName", user.Name)

		return c.Next()
	}
}
