package middleware

import (
	"strings"

	"EmpTrack/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// Principal is the authorization context built once per request by
// Protected. Controllers branch on its methods instead of comparing
// role strings.
type Principal struct {
	User Models.User
}

func (p *Principal) IsAdmin() bool {
	return p.User.Role == Models.RoleAdmin
}

// PrincipalFrom returns the authenticated principal stored by
// Protected. Only call it behind the guard.
func PrincipalFrom(c *fiber.Ctx) *Principal {
	return c.Locals("principal").(*Principal)
}

// Protected verifies the bearer token and loads the caller. Missing,
// malformed, expired or tampered tokens all fail with 401.
func Protected(db *gorm.DB, secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" || tokenString == header {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No token provided",
			})
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
			})
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token claims",
			})
		}

		var user Models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "User not found",
			})
		}

		c.Locals("principal", &Principal{User: user})
		return c.Next()
	}
}

// AdminOnly rejects non-admin principals. Must run behind Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !PrincipalFrom(c).IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		return c.Next()
	}
}
