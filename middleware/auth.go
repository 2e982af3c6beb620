package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/localserve/marketplace-api/auth"
	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/models"
	"github.com/localserve/marketplace-api/utils"
)

// Protected verifies the bearer token and resolves it to a persisted user.
// The user record is exposed to handlers through c.Locals for the duration
// of the request only. A valid token whose subject no longer exists is
// rejected as unauthenticated, not as not-found.
func Protected(issuer *auth.TokenIssuer) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   issuer.SigningKey(),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return utils.Fail(c, models.ErrUnauthenticated)
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return utils.Fail(c, models.ErrUnauthenticated)
			}
			email, ok := claims["sub"].(string)
			if !ok || email == "" {
				return utils.Fail(c, models.ErrUnauthenticated)
			}

			var user models.User
			if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
				return utils.Fail(c, models.ErrUnauthenticated)
			}

			c.Locals("currentUser", &user)
			return c.Next()
		},
	})
}

// RequireRole rejects requests from users outside the given role.
func RequireRole(role models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return utils.Fail(c, models.ErrUnauthenticated)
		}
		if user.Role != role {
			return utils.Fail(c, models.ErrForbidden)
		}
		return c.Next()
	}
}

// CurrentUser returns the user resolved by Protected, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("currentUser").(*models.User)
	return user
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
		Message: "invalid or expired token",
	})
}
